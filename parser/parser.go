// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package parser implements a recursive-descent parser for tinfer source programs and type
// signatures.
package parser

import (
	"fmt"
	"strings"

	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/lexer"
	"golang.org/x/exp/slices"
)

// Error is a syntax error.
type Error struct {
	Pos lexer.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
}

type parser struct {
	toks []lexer.Token
	i    int
	tok  lexer.Token
}

// bailout carries a syntax error up to the entry point.
type bailout struct{ err *Error }

// ParseString parses a complete program.
func ParseString(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseProgram(toks)
}

// ParseTypeString parses a type signature, such as `<T, U>(url: string, opts: T) -> U`.
func ParseTypeString(src string) (ast.TypeExpr, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseType(toks)
}

// ParseProgram parses a token stream, which must end with an EOF token, into a program.
func ParseProgram(toks []lexer.Token) (prog *ast.Program, err error) {
	p := newParser(toks)
	defer p.recover(&err)
	prog = &ast.Program{}
	for p.tok.Type != lexer.EOF {
		prog.Body = append(prog.Body, p.parseStmt())
	}
	return prog, nil
}

// ParseType parses a token stream, which must end with an EOF token, as a single type.
func ParseType(toks []lexer.Token) (t ast.TypeExpr, err error) {
	p := newParser(toks)
	defer p.recover(&err)
	t = p.parseType()
	if p.tok.Type != lexer.EOF {
		p.errorf("Unexpected %s after type", p.tok.Type)
	}
	return t, nil
}

func newParser(toks []lexer.Token) *parser {
	if len(toks) == 0 || toks[len(toks)-1].Type != lexer.EOF {
		toks = append(slices.Clone(toks), lexer.Token{Type: lexer.EOF})
	}
	return &parser{toks: toks, tok: toks[0]}
}

func (p *parser) recover(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

func (p *parser) errorf(format string, args ...interface{}) {
	panic(bailout{&Error{Pos: p.tok.Span.Start, Msg: fmt.Sprintf(format, args...)}})
}

func (p *parser) next() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
	p.tok = p.toks[p.i]
}

func (p *parser) peek() lexer.Token {
	if p.i < len(p.toks)-1 {
		return p.toks[p.i+1]
	}
	return p.toks[p.i]
}

func (p *parser) got(ttype lexer.TokenType) bool {
	if p.tok.Type == ttype {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(ttype lexer.TokenType, context string) lexer.Token {
	tok := p.tok
	if !p.got(ttype) {
		if context == "" {
			p.errorf("Expected %s", ttype)
		}
		p.errorf("Expected %s %s", ttype, context)
	}
	return tok
}

func (p *parser) expectIdent(context string) string {
	return p.expect(lexer.Ident, context).Data
}

// Closing angle brackets of nested type arguments may be lexed as a shift operator: `Array<Array<T>>`.
func (p *parser) expectCloseAngle() {
	switch p.tok.Type {
	case lexer.GreaterThan:
		p.next()
	case lexer.RightShift:
		p.tok.Type = lexer.GreaterThan
		p.tok.Span.Start.Offset++
		p.tok.Span.Start.Column++
		p.toks[p.i] = p.tok
	default:
		p.errorf("Expected token '>'")
	}
}

// Statements:

func (p *parser) parseStmt() ast.Node {
	switch p.tok.Type {
	case lexer.Fun:
		if p.peek().Type == lexer.Ident {
			return p.parseFuncDecl(false)
		}
	case lexer.Async:
		if p.peek().Type == lexer.Fun {
			p.next()
			if p.peek().Type == lexer.Ident {
				return p.parseFuncDecl(true)
			}
			lambda := p.parseLambda()
			lambda.Async = true
			return p.finishExprStmt(p.parsePostfix(lambda))
		}
	case lexer.Let:
		let := p.parseLet()
		p.expectSemi("after variable declaration")
		return let
	case lexer.If:
		return p.parseIf()
	case lexer.While:
		return p.parseWhile()
	case lexer.For:
		return p.parseFor()
	case lexer.Return:
		return p.parseReturn()
	case lexer.Break:
		p.next()
		p.expectSemi("after break")
		return &ast.Break{}
	case lexer.Continue:
		p.next()
		p.expectSemi("after continue")
		return &ast.Continue{}
	case lexer.LeftBrace:
		return p.parseBlock()
	case lexer.Struct:
		return p.parseStructDecl()
	case lexer.Enum:
		return p.parseEnumDecl()
	case lexer.Semicolon:
		p.next()
		return p.parseStmt()
	}
	return p.finishExprStmt(p.parseExpr())
}

func (p *parser) finishExprStmt(x ast.Node) ast.Node {
	p.expectSemi("after expression")
	return &ast.ExprStmt{Expr: x}
}

// A semicolon may be omitted before a closing brace or the end of input.
func (p *parser) expectSemi(context string) {
	if p.got(lexer.Semicolon) || p.tok.Type == lexer.RightBrace || p.tok.Type == lexer.EOF {
		return
	}
	p.errorf("Expected ';' %s", context)
}

func (p *parser) parseBlock() *ast.Block {
	p.expect(lexer.LeftBrace, "to open block")
	block := &ast.Block{}
	for p.tok.Type != lexer.RightBrace && p.tok.Type != lexer.EOF {
		block.Body = append(block.Body, p.parseStmt())
	}
	p.expect(lexer.RightBrace, "to close block")
	return block
}

func (p *parser) parseFuncDecl(async bool) *ast.FuncDecl {
	p.expect(lexer.Fun, "")
	fn := &ast.FuncDecl{Name: p.expectIdent("for function name"), Async: async}
	fn.TypeParams, fn.Params, fn.ReturnType = p.parseSignature()
	fn.Body = p.parseBlock()
	return fn
}

func (p *parser) parseLambda() *ast.Lambda {
	p.expect(lexer.Fun, "")
	fn := &ast.Lambda{}
	fn.TypeParams, fn.Params, fn.ReturnType = p.parseSignature()
	fn.Body = p.parseBlock()
	return fn
}

// Signature = [ "<" TypeParams ">" ] "(" Params ")" [ ":" Type ]
func (p *parser) parseSignature() (tps []*ast.TypeParam, params []*ast.Param, ret ast.TypeExpr) {
	if p.got(lexer.LessThan) {
		tps = p.parseTypeParams()
		p.expectCloseAngle()
	}
	p.expect(lexer.LeftParen, "before parameters")
	if p.tok.Type != lexer.RightParen {
		for {
			params = append(params, p.parseParam(false))
			if !p.got(lexer.Comma) {
				break
			}
		}
	}
	p.expect(lexer.RightParen, "after parameters")
	if p.got(lexer.Colon) {
		ret = p.parseType()
	}
	return tps, params, ret
}

// Param = [ "..." ] ident [ ":" Type ]
//
// Within a function type, a parameter may be written as a bare type: `(integer, T) -> U`.
func (p *parser) parseParam(inType bool) *ast.Param {
	param := &ast.Param{Variadic: p.got(lexer.Ellipsis)}
	if inType && !(p.tok.Type == lexer.Ident && p.peek().Type == lexer.Colon) {
		param.TypeAnn = p.parseType()
		return param
	}
	param.Name = p.expectIdent("for parameter name")
	if p.got(lexer.Colon) {
		param.TypeAnn = p.parseType()
	}
	return param
}

func (p *parser) parseLet() *ast.Let {
	p.expect(lexer.Let, "")
	let := &ast.Let{}
	for {
		v := &ast.Variable{Name: p.expectIdent("for variable name")}
		if p.got(lexer.Colon) {
			v.TypeAnn = p.parseType()
		}
		if p.got(lexer.Equals) {
			v.Value = p.parseAssignExpr()
		}
		let.Vars = append(let.Vars, v)
		if !p.got(lexer.Comma) {
			return let
		}
	}
}

func (p *parser) parseParenExpr(context string) ast.Node {
	p.expect(lexer.LeftParen, "after '"+context+"'")
	x := p.parseExpr()
	p.expect(lexer.RightParen, "after "+context+" condition")
	return x
}

func (p *parser) parseIf() *ast.If {
	p.expect(lexer.If, "")
	n := &ast.If{Cond: p.parseParenExpr("if")}
	n.Then = p.parseStmt()
	if p.got(lexer.Else) {
		n.Else = p.parseStmt()
	}
	return n
}

func (p *parser) parseWhile() *ast.While {
	p.expect(lexer.While, "")
	n := &ast.While{Cond: p.parseParenExpr("while")}
	n.Body = p.parseStmt()
	return n
}

func (p *parser) parseFor() *ast.For {
	p.expect(lexer.For, "")
	p.expect(lexer.LeftParen, "after 'for'")
	n := &ast.For{}
	switch p.tok.Type {
	case lexer.Semicolon:
	case lexer.Let:
		n.Init = p.parseLet()
	default:
		n.Init = p.parseExpr()
	}
	p.expect(lexer.Semicolon, "after loop initializer")
	if p.tok.Type != lexer.Semicolon {
		n.Cond = p.parseExpr()
	}
	p.expect(lexer.Semicolon, "after loop condition")
	if p.tok.Type != lexer.RightParen {
		n.Update = p.parseExpr()
	}
	p.expect(lexer.RightParen, "after loop clauses")
	n.Body = p.parseStmt()
	return n
}

func (p *parser) parseReturn() *ast.Return {
	p.expect(lexer.Return, "")
	n := &ast.Return{}
	if p.got(lexer.Semicolon) {
		return n
	}
	if p.tok.Type != lexer.RightBrace {
		n.Value = p.parseExpr()
	}
	p.expectSemi("after return statement")
	return n
}

// StructDecl = "struct" ident [ "<" TypeParams ">" ] "{" Fields "}"
func (p *parser) parseStructDecl() *ast.StructDecl {
	p.expect(lexer.Struct, "")
	n := &ast.StructDecl{Name: p.expectIdent("for struct name")}
	if p.got(lexer.LessThan) {
		n.TypeParams = p.parseTypeParams()
		p.expectCloseAngle()
	}
	p.expect(lexer.LeftBrace, "to open struct body")
	n.Fields = p.parseFields()
	p.expect(lexer.RightBrace, "to close struct body")
	p.got(lexer.Semicolon)
	return n
}

func (p *parser) parseFields() []*ast.Field {
	var fields []*ast.Field
	for p.tok.Type != lexer.RightBrace {
		f := &ast.Field{Name: p.expectIdent("for field name")}
		if p.got(lexer.Colon) {
			f.TypeAnn = p.parseType()
		}
		fields = append(fields, f)
		if !p.got(lexer.Comma) && p.tok.Type != lexer.RightBrace {
			p.errorf("Expected ',' after field declaration")
		}
	}
	return fields
}

// EnumDecl = "enum" ident [ "<" TypeParams ">" ] "{" Variants "}"
func (p *parser) parseEnumDecl() *ast.EnumDecl {
	p.expect(lexer.Enum, "")
	n := &ast.EnumDecl{Name: p.expectIdent("for enum name")}
	if p.got(lexer.LessThan) {
		n.TypeParams = p.parseTypeParams()
		p.expectCloseAngle()
	}
	p.expect(lexer.LeftBrace, "to open enum body")
	for p.tok.Type != lexer.RightBrace {
		v := &ast.EnumVariant{Name: p.expectIdent("for enum variant")}
		switch {
		case p.got(lexer.LeftBrace):
			v.Kind = ast.StructVariant
			v.Fields = p.parseFields()
			p.expect(lexer.RightBrace, "to close struct variant")
		case p.got(lexer.LeftParen):
			v.Kind = ast.TupleVariant
			for {
				v.Tuple = append(v.Tuple, p.parseType())
				if !p.got(lexer.Comma) {
					break
				}
			}
			p.expect(lexer.RightParen, "to close tuple variant")
		case p.got(lexer.Equals):
			v.Kind = ast.ConstantVariant
			v.Value = p.parseLiteral()
		}
		n.Variants = append(n.Variants, v)
		if !p.got(lexer.Comma) && p.tok.Type != lexer.RightBrace {
			p.errorf("Expected ',' after enum variant")
		}
	}
	p.expect(lexer.RightBrace, "to close enum body")
	p.got(lexer.Semicolon)
	return n
}

// Expressions:

// Expr = AssignExpr { "," AssignExpr }
func (p *parser) parseExpr() ast.Node {
	x := p.parseAssignExpr()
	if p.tok.Type != lexer.Comma {
		return x
	}
	seq := &ast.Sequence{Exprs: []ast.Node{x}}
	for p.got(lexer.Comma) {
		seq.Exprs = append(seq.Exprs, p.parseAssignExpr())
	}
	return seq
}

// AssignExpr = TernaryExpr [ assign_op AssignExpr ]
func (p *parser) parseAssignExpr() ast.Node {
	start := p.tok
	x := p.parseTernary()
	if !p.tok.Type.IsAssignment() {
		return x
	}
	switch x.(type) {
	case *ast.Ident, *ast.Member, *ast.Index:
	default:
		p.tok = start
		p.errorf("Invalid assignment target")
	}
	op := p.tok.Text()
	p.next()
	return &ast.Assign{Op: op, Target: x, Value: p.parseAssignExpr()}
}

// TernaryExpr = BinaryExpr [ "?" Expr ":" TernaryExpr ]
func (p *parser) parseTernary() ast.Node {
	cond := p.parseBinaryExpr(lexer.MinPrec)
	if !p.got(lexer.QuestionMark) {
		return cond
	}
	then := p.parseAssignExpr()
	p.expect(lexer.Colon, "in conditional expression")
	return &ast.Ternary{Cond: cond, Then: then, Else: p.parseTernary()}
}

func (p *parser) parseBinaryExpr(minPrec int) ast.Node {
	x := p.parseUnary()
	for p.tok.Type.IsBinaryOp() && p.tok.Type.Prec() >= minPrec {
		op := p.tok
		p.next()
		rhs := p.parseBinaryExpr(op.Type.Prec() + 1)
		switch op.Type {
		case lexer.LogicalAnd, lexer.LogicalOr:
			x = &ast.Logical{Op: op.Text(), Left: x, Right: rhs}
		default:
			x = &ast.Binary{Op: op.Text(), Left: x, Right: rhs}
		}
	}
	return x
}

func (p *parser) parseUnary() ast.Node {
	switch {
	case p.tok.Type == lexer.Await:
		p.next()
		return &ast.Await{Expr: p.parseUnary()}
	case p.tok.Type == lexer.Increment || p.tok.Type == lexer.Decrement:
		op := p.tok.Text()
		p.next()
		return &ast.Update{Op: op, Operand: p.parseUnary(), Prefix: true}
	case p.tok.Type.IsPrefixOp():
		op := p.tok.Text()
		p.next()
		return &ast.Unary{Op: op, Operand: p.parseUnary()}
	}
	x := p.parsePostfix(p.parsePrimary())
	if p.tok.Type == lexer.Increment || p.tok.Type == lexer.Decrement {
		op := p.tok.Text()
		p.next()
		return &ast.Update{Op: op, Operand: x}
	}
	return x
}

// Postfix = Primary { "[" Expr "]" | "(" Args ")" | "." ident | "->" ident }
func (p *parser) parsePostfix(x ast.Node) ast.Node {
	for {
		switch p.tok.Type {
		case lexer.LeftBracket:
			p.next()
			index := p.parseExpr()
			p.expect(lexer.RightBracket, "after array index")
			x = &ast.Index{Object: x, Index: index}
		case lexer.LeftParen:
			p.next()
			call := &ast.Call{Callee: x}
			if p.tok.Type != lexer.RightParen {
				for {
					call.Args = append(call.Args, p.parseAssignExpr())
					if !p.got(lexer.Comma) {
						break
					}
				}
			}
			p.expect(lexer.RightParen, "after function arguments")
			x = call
		case lexer.Period:
			p.next()
			x = &ast.Member{Object: x, Property: p.expectIdent("after '.'")}
		case lexer.RightArrow:
			p.next()
			x = &ast.Member{Object: x, Property: p.expectIdent("after '->'"), Arrow: true}
		default:
			return x
		}
	}
}

func (p *parser) parsePrimary() ast.Node {
	switch p.tok.Type {
	case lexer.Number, lexer.String, lexer.True, lexer.False:
		return p.parseLiteral()
	case lexer.LeftBracket:
		return p.parseArray()
	case lexer.LeftBrace:
		return p.parseObject()
	case lexer.Fun:
		return p.parseLambda()
	case lexer.Async:
		p.next()
		lambda := p.parseLambda()
		lambda.Async = true
		return lambda
	case lexer.Ident:
		name := p.tok.Data
		p.next()
		if p.tok.Type == lexer.LeftBrace {
			return &ast.StructLit{Name: name, Object: p.parseObject()}
		}
		return &ast.Ident{Name: name}
	case lexer.LeftParen:
		p.next()
		x := p.parseExpr()
		p.expect(lexer.RightParen, "after expression")
		return x
	}
	p.errorf("Unexpected %s", p.tok.Type)
	return nil
}

func (p *parser) parseLiteral() ast.Node {
	tok := p.tok
	switch tok.Type {
	case lexer.Number:
		p.next()
		return &ast.Number{Raw: tok.Data, IsFloat: strings.Contains(tok.Data, ".")}
	case lexer.String:
		p.next()
		return &ast.StringLit{Value: tok.Data}
	case lexer.True, lexer.False:
		p.next()
		return &ast.Bool{Value: tok.Type == lexer.True}
	}
	p.errorf("Expected a literal")
	return nil
}

func (p *parser) parseArray() *ast.ArrayLit {
	p.expect(lexer.LeftBracket, "")
	arr := &ast.ArrayLit{}
	for p.tok.Type != lexer.RightBracket {
		arr.Elements = append(arr.Elements, p.parseTernary())
		if !p.got(lexer.Comma) {
			break
		}
	}
	p.expect(lexer.RightBracket, "to close array")
	return arr
}

// Object = "{" [ Property { "," Property } [ "," ] ] "}"
func (p *parser) parseObject() *ast.ObjectLit {
	p.expect(lexer.LeftBrace, "")
	obj := &ast.ObjectLit{}
	for p.tok.Type != lexer.RightBrace {
		var key string
		switch p.tok.Type {
		case lexer.Ident, lexer.String:
			key = p.tok.Data
			p.next()
		default:
			p.errorf("Unexpected property name")
		}
		p.expect(lexer.Colon, "after property name")
		obj.Props = append(obj.Props, &ast.Property{Key: key, Value: p.parseAssignExpr()})
		if !p.got(lexer.Comma) {
			break
		}
	}
	p.expect(lexer.RightBrace, "to close object")
	return obj
}

// Types:

// Type =
//
//	| "<" TypeParams ">" Type
//	| "Array" "<" Type ">"
//	| "Map" "<" Type "," Type ">"
//	| "Promise" "<" Type ">"
//	| "(" Params ")" "->" Type
//	| "struct" ident [ "<" Types ">" ]
//	| "enum" ident [ "<" Types ">" ]
//	| ident
func (p *parser) parseType() ast.TypeExpr {
	switch p.tok.Type {
	case lexer.LessThan:
		p.next()
		tps := p.parseTypeParams()
		p.expectCloseAngle()
		return &ast.GenericType{TypeParams: tps, Base: p.parseType()}

	case lexer.LeftParen:
		p.next()
		ft := &ast.FuncType{}
		if p.tok.Type != lexer.RightParen {
			for {
				ft.Params = append(ft.Params, p.parseParam(true))
				if !p.got(lexer.Comma) {
					break
				}
			}
		}
		p.expect(lexer.RightParen, "after parameter types")
		p.expect(lexer.RightArrow, "in function type")
		ft.Return = p.parseType()
		return ft

	case lexer.Struct:
		p.next()
		return &ast.StructType{Name: p.expectIdent("for struct name"), Args: p.parseTypeArgs()}

	case lexer.Enum:
		p.next()
		return &ast.EnumType{Name: p.expectIdent("for enum name"), Args: p.parseTypeArgs()}

	case lexer.Ident:
		name := p.tok.Data
		if p.peek().Type != lexer.LessThan {
			p.next()
			return &ast.NamedType{Name: name}
		}
		switch name {
		case "Array":
			p.next()
			p.next()
			t := &ast.ArrayType{Elem: p.parseType()}
			p.expectCloseAngle()
			return t
		case "Promise":
			p.next()
			p.next()
			t := &ast.PromiseType{Elem: p.parseType()}
			p.expectCloseAngle()
			return t
		case "Map":
			p.next()
			p.next()
			t := &ast.MapType{Key: p.parseType()}
			p.expect(lexer.Comma, "between map key and value types")
			t.Value = p.parseType()
			p.expectCloseAngle()
			return t
		}
		p.next()
		return &ast.NamedType{Name: name}
	}
	p.errorf("Expected a type")
	return nil
}

func (p *parser) parseTypeArgs() []ast.TypeExpr {
	if !p.got(lexer.LessThan) {
		return nil
	}
	var args []ast.TypeExpr
	for {
		args = append(args, p.parseType())
		if !p.got(lexer.Comma) {
			break
		}
	}
	p.expectCloseAngle()
	return args
}

// TypeParams = TypeParam { "," TypeParam }
// TypeParam  = ident [ ":" ident { "+" ident } ]
func (p *parser) parseTypeParams() []*ast.TypeParam {
	var tps []*ast.TypeParam
	for {
		tp := &ast.TypeParam{Name: p.expectIdent("for type parameter")}
		if p.got(lexer.Colon) {
			for {
				tp.Constraints = append(tp.Constraints, p.expectIdent("for type-class constraint"))
				if !p.got(lexer.Plus) {
					break
				}
			}
		}
		tps = append(tps, tp)
		if !p.got(lexer.Comma) {
			return tps
		}
	}
}

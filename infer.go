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

package tinfer

import (
	"errors"

	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/types"
)

// Infer the type of n within frame, emitting equality constraints for later solving.
//
// Statements which do not produce a value (declarations, loops, returns, assignment statements)
// produce a nil type.
func (c *Checker) infer(frame *Frame, n ast.Node) (types.Type, error) {
	switch n := n.(type) {
	case nil:
		return nil, nil

	case *ast.Program:
		for _, stmt := range n.Body {
			if _, err := c.infer(frame, stmt); err != nil {
				return nil, err
			}
		}
		return nil, nil

	case *ast.Block:
		return c.inferBlock(NewFrame(frame), n)

	case *ast.ExprStmt:
		t, err := c.infer(frame, n.Expr)
		if _, isAssign := n.Expr.(*ast.Assign); isAssign {
			return nil, err
		}
		return t, err

	case *ast.If:
		if err := c.inferCondition(frame, n.Cond); err != nil {
			return nil, err
		}
		// The branches are statements and need not agree; the consequent's type is the value.
		then, err := c.infer(frame, n.Then)
		if err != nil || n.Else == nil {
			return then, err
		}
		if _, err := c.infer(frame, n.Else); err != nil {
			return nil, err
		}
		return then, nil

	case *ast.While:
		if err := c.inferCondition(frame, n.Cond); err != nil {
			return nil, err
		}
		_, err := c.infer(NewFrame(frame), n.Body)
		return nil, err

	case *ast.For:
		loop := NewFrame(frame)
		if n.Init != nil {
			if _, err := c.infer(loop, n.Init); err != nil {
				return nil, err
			}
		}
		if n.Cond != nil {
			if err := c.inferCondition(loop, n.Cond); err != nil {
				return nil, err
			}
		}
		if n.Update != nil {
			if _, err := c.infer(loop, n.Update); err != nil {
				return nil, err
			}
		}
		_, err := c.infer(NewFrame(loop), n.Body)
		return nil, err

	case *ast.Return:
		var t types.Type = c.primitive(types.Void)
		if n.Value != nil {
			vt, err := c.infer(frame, n.Value)
			if err != nil {
				return nil, err
			}
			if vt != nil {
				t = vt
			}
		}
		frame.AddReturn(t)
		return nil, nil

	case *ast.Break, *ast.Continue:
		return nil, nil

	case *ast.Let:
		for _, v := range n.Vars {
			if _, err := c.inferVariable(frame, v); err != nil {
				return nil, err
			}
		}
		return nil, nil

	case *ast.Variable:
		return c.inferVariable(frame, n)

	case *ast.FuncDecl:
		_, err := c.inferFunc(frame, n.Name, n.TypeParams, n.Params, n.ReturnType, n.Body, n.Async)
		return nil, err

	case *ast.Lambda:
		return c.inferFunc(frame, "", n.TypeParams, n.Params, n.ReturnType, n.Body, n.Async)

	case *ast.StructDecl:
		frame.DeclareDecl(n.Name, n)
		return nil, nil

	case *ast.EnumDecl:
		frame.DeclareDecl(n.Name, n)
		return nil, nil

	case *ast.Number:
		if n.IsFloat {
			return c.primitive(types.Float), nil
		}
		return c.primitive(types.Integer), nil

	case *ast.StringLit:
		return c.primitive(types.String), nil

	case *ast.Bool:
		return c.primitive(types.Boolean), nil

	case *ast.Ident:
		if t := frame.Lookup(n.Name); t != nil {
			if s, ok := c.schemes[t]; ok {
				return Instantiate(c.gen, s), nil
			}
			return t, nil
		}
		return c.fresh(), nil

	case *ast.Binary:
		left, right, err := c.inferOperands(frame, n.Op, n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return c.inferBinary(frame, n.Op, left, right)

	case *ast.Logical:
		left, right, err := c.inferOperands(frame, n.Op, n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		c.solver.Equal(left, c.primitive(types.Boolean))
		c.solver.Equal(right, c.primitive(types.Boolean))
		return c.primitive(types.Boolean), nil

	case *ast.Unary:
		t, err := c.infer(frame, n.Operand)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, &InvalidOperandsError{Op: n.Op}
		}
		if n.Op == "!" {
			c.solver.Equal(t, c.primitive(types.Boolean))
			return c.primitive(types.Boolean), nil
		}
		if !CheckTypeClass(t, frame.LookupTypeClass(types.Num.Name), frame) {
			return nil, &OperatorError{Op: n.Op, Left: t, Right: t}
		}
		return t, nil

	case *ast.Update:
		t, err := c.infer(frame, n.Operand)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, &InvalidOperandsError{Op: n.Op}
		}
		if !CheckTypeClass(t, frame.LookupTypeClass(types.Num.Name), frame) {
			return nil, &OperatorError{Op: n.Op, Left: t, Right: t}
		}
		return t, nil

	case *ast.Assign:
		target, value, err := c.inferOperands(frame, n.Op, n.Target, n.Value)
		if err != nil {
			return nil, err
		}
		c.solver.Equal(target, value)
		if id, ok := n.Target.(*ast.Ident); ok && frame.Lookup(id.Name) == nil {
			frame.Declare(id.Name, target)
		}
		return target, nil

	case *ast.Ternary:
		if err := c.inferCondition(frame, n.Cond); err != nil {
			return nil, err
		}
		then, alt, err := c.inferOperands(frame, "?:", n.Then, n.Else)
		if err != nil {
			return nil, err
		}
		c.solver.Equal(then, alt)
		return then, nil

	case *ast.Sequence:
		var last types.Type
		for _, x := range n.Exprs {
			t, err := c.infer(frame, x)
			if err != nil {
				return nil, err
			}
			last = t
		}
		return last, nil

	case *ast.Call:
		return c.inferCall(frame, n, false)

	case *ast.Await:
		return c.inferAwait(frame, n)

	case *ast.Member:
		if id, ok := n.Object.(*ast.Ident); ok && frame.Lookup(id.Name) == nil {
			if decl, ok := frame.LookupDecl(id.Name).(*ast.EnumDecl); ok {
				return c.variantType(frame, decl, n.Property)
			}
		}
		obj, err := c.infer(frame, n.Object)
		if err != nil {
			return nil, err
		}
		return c.memberType(obj, n.Property, true), nil

	case *ast.Index:
		obj, err := c.infer(frame, n.Object)
		if err != nil {
			return nil, err
		}
		if _, err := c.infer(frame, n.Index); err != nil {
			return nil, err
		}
		if key, ok := n.Index.(*ast.StringLit); ok {
			return c.memberType(obj, key.Value, true), nil
		}
		return c.memberType(obj, "", false), nil

	case *ast.ArrayLit:
		var first types.Type
		for _, x := range n.Elements {
			t, err := c.infer(frame, x)
			if err != nil {
				return nil, err
			}
			if t == nil {
				continue
			}
			if first == nil {
				first = t
				continue
			}
			c.solver.Equal(first, t)
		}
		if first == nil {
			first = c.primitive(types.Unknown)
		}
		return types.NewConArgs(types.ArrayName, first), nil

	case *ast.ObjectLit:
		fields := types.NewFieldMapBuilder()
		for _, p := range n.Props {
			t, err := c.infer(frame, p.Value)
			if err != nil {
				return nil, err
			}
			if t != nil {
				fields = fields.Set(p.Key, t)
			}
		}
		return types.NewRec(types.AnonRecord, fields.Build()), nil

	case *ast.StructLit:
		return c.inferStructLit(frame, n)

	case ast.TypeExpr:
		return c.resolveType(frame, n)
	}

	return nil, errors.New("Unhandled node " + n.NodeName())
}

func (c *Checker) primitive(name string) *types.TCon {
	return types.NewCon(name, c.global.Instances(name)...)
}

func (c *Checker) inferBlock(frame *Frame, b *ast.Block) (types.Type, error) {
	if b == nil {
		return nil, nil
	}
	var last types.Type
	for _, stmt := range b.Body {
		t, err := c.infer(frame, stmt)
		if err != nil {
			return nil, err
		}
		last = t
	}
	return last, nil
}

func (c *Checker) inferCondition(frame *Frame, cond ast.Node) error {
	t, err := c.infer(frame, cond)
	if err != nil {
		return err
	}
	if t != nil {
		c.solver.Equal(t, c.primitive(types.Boolean))
	}
	return nil
}

// Both operands must produce a value.
func (c *Checker) inferOperands(frame *Frame, op string, l, r ast.Node) (left, right types.Type, err error) {
	if left, err = c.infer(frame, l); err != nil {
		return nil, nil, err
	}
	if right, err = c.infer(frame, r); err != nil {
		return nil, nil, err
	}
	if left == nil || right == nil {
		return nil, nil, &InvalidOperandsError{Op: op}
	}
	return left, right, nil
}

func (c *Checker) inferBinary(frame *Frame, op string, left, right types.Type) (types.Type, error) {
	var className string
	switch op {
	case "+":
		tc, ok := additionClass(left, right, frame)
		if !ok {
			return nil, &OperatorError{Op: op, Left: left, Right: right}
		}
		if tc != nil {
			CheckTypeClass(left, tc, frame)
			CheckTypeClass(right, tc, frame)
		}
		c.solver.Equal(left, right)
		return left, nil
	case "-", "*", "/", "%", "&", "|", "^", "<<", ">>":
		className = types.Num.Name
	case "<", ">", "<=", ">=":
		className = types.Ord.Name
	case "==", "!=":
		className = types.Eq.Name
	default:
		return nil, errors.New("Unsupported operator: " + op)
	}

	tc := frame.LookupTypeClass(className)
	if !CheckTypeClass(left, tc, frame) || !CheckTypeClass(right, tc, frame) {
		return nil, &OperatorError{Op: op, Left: left, Right: right}
	}
	c.solver.Equal(left, right)
	if className == types.Num.Name {
		return left, nil
	}
	return c.primitive(types.Boolean), nil
}

func (c *Checker) inferVariable(frame *Frame, v *ast.Variable) (types.Type, error) {
	if existing := frame.LookupLocal(v.Name); existing != nil {
		v.SetType(existing)
		return existing, nil
	}

	var declared types.Type
	if v.TypeAnn != nil {
		var err error
		if declared, err = c.resolveType(frame, v.TypeAnn); err != nil {
			return nil, err
		}
	}

	var inferred types.Type
	if v.Value != nil {
		var err error
		if inferred, err = c.infer(frame, v.Value); err != nil {
			return nil, err
		}
	}
	switch {
	case inferred == nil && declared != nil:
		inferred = declared
	case inferred == nil:
		inferred = c.fresh()
	case declared != nil:
		c.solver.Equal(declared, inferred)
	}
	v.SetType(inferred)
	frame.Declare(v.Name, inferred)

	if rec, ok := declared.(*types.TRec); ok && rec.Name != types.MapName {
		return declared, nil
	}
	return inferred, nil
}

// The type of a function is bound to its name in the enclosing frame before the body is visited,
// so recursive calls resolve against it.
func (c *Checker) inferFunc(frame *Frame, name string, tps []*ast.TypeParam, params []*ast.Param, retAnn ast.TypeExpr, body *ast.Block, async bool) (types.Type, error) {
	fn := NewFuncFrame(frame)
	if _, err := c.declareTypeParams(fn, tps, nil); err != nil {
		return nil, err
	}

	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		var t types.Type
		switch {
		case p.TypeAnn != nil:
			var err error
			if t, err = c.resolveType(fn, p.TypeAnn); err != nil {
				return nil, err
			}
		case p.Variadic:
			t = types.NewConArgs(types.ArrayName, c.fresh())
		default:
			t = c.fresh()
		}
		paramTypes[i] = t
		fn.Declare(p.Name, t)
	}

	var ret types.Type = c.fresh()
	if retAnn != nil {
		var err error
		if ret, err = c.resolveType(fn, retAnn); err != nil {
			return nil, err
		}
	}
	result := ret
	if async {
		result = types.NewConArgs(types.PromiseName, ret)
	}
	ftype := types.NewArrow(paramTypes, result)
	if name != "" {
		frame.Declare(name, ftype)
	}

	value, err := c.inferBlock(NewFrame(fn), body)
	if err != nil {
		return nil, err
	}
	candidates := fn.Returns()
	if len(candidates) == 0 && value != nil {
		candidates = []types.Type{value}
	}
	if len(candidates) == 0 && retAnn == nil {
		candidates = []types.Type{c.primitive(types.Void)}
	}
	for _, t := range candidates {
		c.solver.Equal(ret, t)
	}
	return ftype, nil
}

// The callee must be a function of the argument types. An awaited call returns a promise.
func (c *Checker) inferCall(frame *Frame, n *ast.Call, awaited bool) (types.Type, error) {
	callee, err := c.infer(frame, n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]types.Type, len(n.Args))
	for i, arg := range n.Args {
		t, err := c.infer(frame, arg)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, &InvalidOperandsError{Op: "()"}
		}
		args[i] = t
	}
	var ret types.Type = c.fresh()
	if awaited {
		ret = types.NewConArgs(types.PromiseName, ret)
	}
	if callee != nil {
		c.solver.Equal(callee, types.NewArrow(args, ret))
	}
	return ret, nil
}

func (c *Checker) inferAwait(frame *Frame, n *ast.Await) (types.Type, error) {
	var t types.Type
	var err error
	if call, ok := n.Expr.(*ast.Call); ok {
		t, err = c.inferCall(frame, call, true)
	} else {
		t, err = c.infer(frame, n.Expr)
	}
	if err != nil || t == nil {
		return t, err
	}
	switch p := t.(type) {
	case *types.TCon:
		if p.Name == types.PromiseName && len(p.Args) == 1 {
			return p.Args[0], nil
		}
	case *types.TVar:
		elem := c.fresh()
		c.solver.Equal(p, types.NewConArgs(types.PromiseName, elem))
		return elem, nil
	}
	return t, nil
}

// Arrays yield their element type, maps their value type, and records the type of the named
// field. Unresolved receivers and absent fields yield a fresh type-variable.
func (c *Checker) memberType(obj types.Type, name string, named bool) types.Type {
	switch t := obj.(type) {
	case *types.TCon:
		switch {
		case t.Name == types.ArrayName && len(t.Args) == 1:
			return t.Args[0]
		case types.IsMapCon(t) && len(t.Args) > 0:
			return t.Args[len(t.Args)-1]
		}
	case *types.TRec:
		if named {
			if ft, ok := t.Field(name); ok {
				return ft
			}
		}
	}
	return c.fresh()
}

// A struct literal renames its anonymous record to the struct name, and is constrained against a
// fresh instance of the declared struct.
func (c *Checker) inferStructLit(frame *Frame, n *ast.StructLit) (types.Type, error) {
	decl, ok := frame.LookupDecl(n.Name).(*ast.StructDecl)
	if !ok {
		return nil, &UndeclaredError{Kind: "Struct", Name: n.Name}
	}
	var obj types.Type = types.NewRec(types.AnonRecord, types.EmptyFieldMap)
	if n.Object != nil {
		var err error
		if obj, err = c.infer(frame, n.Object); err != nil {
			return nil, err
		}
	}
	rec, ok := obj.(*types.TRec)
	if !ok {
		return obj, nil
	}
	if rec.IsAnonymous() {
		rec.Name = n.Name
		rec.AddConstraint(types.Struct)
	}
	declared, err := c.structType(frame, decl, nil)
	if err != nil {
		return nil, err
	}
	c.solver.Equal(declared, rec)
	return rec, nil
}

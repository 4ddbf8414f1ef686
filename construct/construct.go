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

package construct

import (
	"strconv"

	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/types"
)

// Types

// Create a type-variable. Without a name, the variable is fresh (allocated from
// types.DefaultVarGen).
func TVar(name ...string) *types.TVar {
	if len(name) == 0 {
		return types.DefaultVarGen.New()
	}
	return types.NewNamedVar(name[0])
}

// Type constant with its predefined type-classes: `integer`, `string`, etc
func TCon(name string) *types.TCon {
	return types.NewCon(name, types.PrimitiveInstances()[name]...)
}

// Type application: `Array<integer>`
func TConEx(name string, args ...types.Type) *types.TCon {
	return types.NewConArgs(name, args...)
}

// `Array<elem>`
func TArray(elem types.Type) *types.TCon { return types.NewConArgs(types.ArrayName, elem) }

// `Promise<elem>`
func TPromise(elem types.Type) *types.TCon { return types.NewConArgs(types.PromiseName, elem) }

// Function type: `(integer, integer) -> integer`
func TFun(params []types.Type, ret types.Type) *types.TCon {
	return types.NewArrow(params, ret)
}

// Function type: `integer -> integer`
func TFun1(param types.Type, ret types.Type) *types.TCon {
	return types.NewArrow([]types.Type{param}, ret)
}

// Function type: `(integer, integer) -> integer`
func TFun2(param1, param2 types.Type, ret types.Type) *types.TCon {
	return types.NewArrow([]types.Type{param1, param2}, ret)
}

// Record type: `Point { x: integer }`, or `{ x: integer }` if name is empty
func TRecord(name string, fields map[string]types.Type) *types.TRec {
	if name == "" {
		name = types.AnonRecord
	}
	return types.NewRec(name, types.FieldMapOf(fields))
}

// Syntax Nodes

func Prog(body ...ast.Node) *ast.Program { return &ast.Program{Body: body} }

func Block(body ...ast.Node) *ast.Block { return &ast.Block{Body: body} }

func Stmt(expr ast.Node) *ast.ExprStmt { return &ast.ExprStmt{Expr: expr} }

// `let name = value;`
func Let(name string, value ast.Node) *ast.Let {
	return &ast.Let{Vars: []*ast.Variable{{Name: name, Value: value}}}
}

// `let name: ann = value;`
func LetAnn(name string, ann ast.TypeExpr, value ast.Node) *ast.Let {
	return &ast.Let{Vars: []*ast.Variable{{Name: name, TypeAnn: ann, Value: value}}}
}

func Var(name string) *ast.Ident { return &ast.Ident{Name: name} }

func Int(v int) *ast.Number { return &ast.Number{Raw: strconv.Itoa(v)} }

func Float(raw string) *ast.Number { return &ast.Number{Raw: raw, IsFloat: true} }

func Str(v string) *ast.StringLit { return &ast.StringLit{Value: v} }

func Bool(v bool) *ast.Bool { return &ast.Bool{Value: v} }

func Binary(op string, left, right ast.Node) *ast.Binary {
	return &ast.Binary{Op: op, Left: left, Right: right}
}

func Call(callee ast.Node, args ...ast.Node) *ast.Call { return &ast.Call{Callee: callee, Args: args} }

func Return(value ast.Node) *ast.Return { return &ast.Return{Value: value} }

// `fun name(params...) { body... }`
func Func(name string, params []string, body ...ast.Node) *ast.FuncDecl {
	return &ast.FuncDecl{Name: name, Params: Params(params...), Body: Block(body...)}
}

// `fun (params...) { body... }`
func Lambda(params []string, body ...ast.Node) *ast.Lambda {
	return &ast.Lambda{Params: Params(params...), Body: Block(body...)}
}

func Params(names ...string) []*ast.Param {
	params := make([]*ast.Param, len(names))
	for i, name := range names {
		params[i] = &ast.Param{Name: name}
	}
	return params
}

func Member(obj ast.Node, prop string) *ast.Member { return &ast.Member{Object: obj, Property: prop} }

func Array(elems ...ast.Node) *ast.ArrayLit { return &ast.ArrayLit{Elements: elems} }

// Object literal from alternating keys and values: `Object("a", Int(1), "b", Str("x"))`
func Object(kvs ...interface{}) *ast.ObjectLit {
	obj := &ast.ObjectLit{}
	for i := 0; i+1 < len(kvs); i += 2 {
		obj.Props = append(obj.Props, &ast.Property{Key: kvs[i].(string), Value: kvs[i+1].(ast.Node)})
	}
	return obj
}

// Named type annotation: `integer`, `T`, `Point`
func Named(name string) *ast.NamedType { return &ast.NamedType{Name: name} }

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

package ast

// Walk visits n and its descendants in depth-first order. If f returns false, the children of the
// current node are skipped.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Number, *StringLit, *Bool, *Ident, *Break, *Continue, *NamedType:

	case *Program:
		walkList(n.Body, f)

	case *Block:
		walkList(n.Body, f)

	case *ExprStmt:
		Walk(n.Expr, f)

	case *If:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		Walk(n.Else, f)

	case *While:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *For:
		Walk(n.Init, f)
		Walk(n.Cond, f)
		Walk(n.Update, f)
		Walk(n.Body, f)

	case *Return:
		Walk(n.Value, f)

	case *Let:
		for _, v := range n.Vars {
			Walk(v, f)
		}

	case *Variable:
		walkType(n.TypeAnn, f)
		Walk(n.Value, f)

	case *FuncDecl:
		walkParams(n.Params, f)
		walkType(n.ReturnType, f)
		if n.Body != nil {
			Walk(n.Body, f)
		}

	case *Lambda:
		walkParams(n.Params, f)
		walkType(n.ReturnType, f)
		if n.Body != nil {
			Walk(n.Body, f)
		}

	case *StructDecl:
		for _, field := range n.Fields {
			walkType(field.TypeAnn, f)
		}

	case *EnumDecl:
		for _, v := range n.Variants {
			for _, t := range v.Tuple {
				walkType(t, f)
			}
			for _, field := range v.Fields {
				walkType(field.TypeAnn, f)
			}
			Walk(v.Value, f)
		}

	case *Binary:
		Walk(n.Left, f)
		Walk(n.Right, f)

	case *Logical:
		Walk(n.Left, f)
		Walk(n.Right, f)

	case *Assign:
		Walk(n.Target, f)
		Walk(n.Value, f)

	case *Unary:
		Walk(n.Operand, f)

	case *Update:
		Walk(n.Operand, f)

	case *Ternary:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		Walk(n.Else, f)

	case *Sequence:
		walkList(n.Exprs, f)

	case *Call:
		Walk(n.Callee, f)
		walkList(n.Args, f)

	case *Await:
		Walk(n.Expr, f)

	case *Member:
		Walk(n.Object, f)

	case *Index:
		Walk(n.Object, f)
		Walk(n.Index, f)

	case *ArrayLit:
		walkList(n.Elements, f)

	case *ObjectLit:
		for _, p := range n.Props {
			Walk(p.Value, f)
		}

	case *StructLit:
		if n.Object != nil {
			Walk(n.Object, f)
		}

	case *ArrayType:
		walkType(n.Elem, f)

	case *MapType:
		walkType(n.Key, f)
		walkType(n.Value, f)

	case *PromiseType:
		walkType(n.Elem, f)

	case *FuncType:
		walkParams(n.Params, f)
		walkType(n.Return, f)

	case *StructType:
		for _, t := range n.Args {
			walkType(t, f)
		}

	case *EnumType:
		for _, t := range n.Args {
			walkType(t, f)
		}

	case *GenericType:
		walkType(n.Base, f)

	default:
		panic("unknown node type: " + n.NodeName())
	}
}

func walkList(nodes []Node, f func(Node) bool) {
	for _, n := range nodes {
		Walk(n, f)
	}
}

// Type annotations are stored as TypeExpr; a nil TypeExpr must not become a non-nil Node.
func walkType(t TypeExpr, f func(Node) bool) {
	if t != nil {
		Walk(t, f)
	}
}

func walkParams(ps []*Param, f func(Node) bool) {
	for _, p := range ps {
		walkType(p.TypeAnn, f)
	}
}

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

import (
	"strconv"
	"strings"
)

// String returns a single-line source representation of a node. Compound operands are
// parenthesized, so the output shows how the parser grouped an expression.
func String(n Node) string {
	var sb strings.Builder
	nodeString(&sb, false, n)
	return sb.String()
}

func nodeString(sb *strings.Builder, simple bool, n Node) {
	switch n := n.(type) {
	case nil:

	case *Program:
		list(sb, " ", n.Body)

	case *Block:
		if len(n.Body) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		list(sb, " ", n.Body)
		sb.WriteString(" }")

	case *ExprStmt:
		nodeString(sb, false, n.Expr)
		sb.WriteByte(';')

	case *If:
		sb.WriteString("if (")
		nodeString(sb, false, n.Cond)
		sb.WriteString(") ")
		nodeString(sb, false, n.Then)
		if n.Else != nil {
			sb.WriteString(" else ")
			nodeString(sb, false, n.Else)
		}

	case *While:
		sb.WriteString("while (")
		nodeString(sb, false, n.Cond)
		sb.WriteString(") ")
		nodeString(sb, false, n.Body)

	case *For:
		sb.WriteString("for (")
		if let, ok := n.Init.(*Let); ok {
			letVars(sb, let)
		} else {
			nodeString(sb, false, n.Init)
		}
		sb.WriteString("; ")
		nodeString(sb, false, n.Cond)
		sb.WriteString("; ")
		nodeString(sb, false, n.Update)
		sb.WriteString(") ")
		nodeString(sb, false, n.Body)

	case *Return:
		if n.Value == nil {
			sb.WriteString("return;")
			return
		}
		sb.WriteString("return ")
		nodeString(sb, false, n.Value)
		sb.WriteByte(';')

	case *Break:
		sb.WriteString("break;")

	case *Continue:
		sb.WriteString("continue;")

	case *Let:
		letVars(sb, n)
		sb.WriteByte(';')

	case *Variable:
		sb.WriteString(n.Name)
		if n.TypeAnn != nil {
			sb.WriteString(": ")
			nodeString(sb, false, n.TypeAnn)
		}
		if n.Value != nil {
			sb.WriteString(" = ")
			nodeString(sb, false, n.Value)
		}

	case *FuncDecl:
		if n.Async {
			sb.WriteString("async ")
		}
		sb.WriteString("fun ")
		sb.WriteString(n.Name)
		signature(sb, n.TypeParams, n.Params, n.ReturnType)
		sb.WriteByte(' ')
		nodeString(sb, false, n.Body)

	case *Lambda:
		if simple {
			sb.WriteByte('(')
		}
		if n.Async {
			sb.WriteString("async ")
		}
		sb.WriteString("fun ")
		signature(sb, n.TypeParams, n.Params, n.ReturnType)
		sb.WriteByte(' ')
		nodeString(sb, false, n.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *StructDecl:
		sb.WriteString("struct ")
		sb.WriteString(n.Name)
		typeParams(sb, n.TypeParams)
		sb.WriteByte(' ')
		fields(sb, n.Fields)

	case *EnumDecl:
		sb.WriteString("enum ")
		sb.WriteString(n.Name)
		typeParams(sb, n.TypeParams)
		sb.WriteString(" { ")
		for i, v := range n.Variants {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(v.Name)
			switch v.Kind {
			case TupleVariant:
				sb.WriteByte('(')
				for j, t := range v.Tuple {
					if j > 0 {
						sb.WriteString(", ")
					}
					nodeString(sb, false, t)
				}
				sb.WriteByte(')')
			case StructVariant:
				sb.WriteByte(' ')
				fields(sb, v.Fields)
			case ConstantVariant:
				sb.WriteString(" = ")
				nodeString(sb, false, v.Value)
			}
		}
		sb.WriteString(" }")

	case *Number:
		sb.WriteString(n.Raw)

	case *StringLit:
		sb.WriteString(strconv.Quote(n.Value))

	case *Bool:
		sb.WriteString(strconv.FormatBool(n.Value))

	case *Ident:
		sb.WriteString(n.Name)

	case *Binary:
		infix(sb, simple, n.Op, n.Left, n.Right)

	case *Logical:
		infix(sb, simple, n.Op, n.Left, n.Right)

	case *Assign:
		infix(sb, simple, n.Op, n.Target, n.Value)

	case *Unary:
		sb.WriteString(n.Op)
		nodeString(sb, true, n.Operand)

	case *Update:
		if n.Prefix {
			sb.WriteString(n.Op)
			nodeString(sb, true, n.Operand)
		} else {
			nodeString(sb, true, n.Operand)
			sb.WriteString(n.Op)
		}

	case *Ternary:
		if simple {
			sb.WriteByte('(')
		}
		nodeString(sb, true, n.Cond)
		sb.WriteString(" ? ")
		nodeString(sb, true, n.Then)
		sb.WriteString(" : ")
		nodeString(sb, true, n.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Sequence:
		sb.WriteByte('(')
		list(sb, ", ", n.Exprs)
		sb.WriteByte(')')

	case *Call:
		nodeString(sb, true, n.Callee)
		sb.WriteByte('(')
		list(sb, ", ", n.Args)
		sb.WriteByte(')')

	case *Await:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("await ")
		nodeString(sb, true, n.Expr)
		if simple {
			sb.WriteByte(')')
		}

	case *Member:
		nodeString(sb, true, n.Object)
		if n.Arrow {
			sb.WriteString("->")
		} else {
			sb.WriteByte('.')
		}
		sb.WriteString(n.Property)

	case *Index:
		nodeString(sb, true, n.Object)
		sb.WriteByte('[')
		nodeString(sb, false, n.Index)
		sb.WriteByte(']')

	case *ArrayLit:
		sb.WriteByte('[')
		list(sb, ", ", n.Elements)
		sb.WriteByte(']')

	case *ObjectLit:
		if len(n.Props) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, p := range n.Props {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Key)
			sb.WriteString(": ")
			nodeString(sb, false, p.Value)
		}
		sb.WriteString(" }")

	case *StructLit:
		sb.WriteString(n.Name)
		sb.WriteByte(' ')
		nodeString(sb, false, n.Object)

	case *NamedType:
		sb.WriteString(n.Name)

	case *ArrayType:
		sb.WriteString("Array<")
		nodeString(sb, false, n.Elem)
		sb.WriteByte('>')

	case *MapType:
		sb.WriteString("Map<")
		nodeString(sb, false, n.Key)
		sb.WriteString(", ")
		nodeString(sb, false, n.Value)
		sb.WriteByte('>')

	case *PromiseType:
		sb.WriteString("Promise<")
		nodeString(sb, false, n.Elem)
		sb.WriteByte('>')

	case *FuncType:
		params(sb, n.Params)
		sb.WriteString(" -> ")
		nodeString(sb, false, n.Return)

	case *StructType:
		sb.WriteString("struct ")
		sb.WriteString(n.Name)
		typeArgs(sb, n.Args)

	case *EnumType:
		sb.WriteString("enum ")
		sb.WriteString(n.Name)
		typeArgs(sb, n.Args)

	case *GenericType:
		typeParams(sb, n.TypeParams)
		nodeString(sb, false, n.Base)

	default:
		panic("unknown node type: " + n.NodeName())
	}
}

func list(sb *strings.Builder, sep string, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(sep)
		}
		nodeString(sb, false, n)
	}
}

func infix(sb *strings.Builder, simple bool, op string, left, right Node) {
	if simple {
		sb.WriteByte('(')
	}
	nodeString(sb, true, left)
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	nodeString(sb, true, right)
	if simple {
		sb.WriteByte(')')
	}
}

func letVars(sb *strings.Builder, n *Let) {
	sb.WriteString("let ")
	for i, v := range n.Vars {
		if i > 0 {
			sb.WriteString(", ")
		}
		nodeString(sb, false, v)
	}
}

func signature(sb *strings.Builder, tps []*TypeParam, ps []*Param, ret TypeExpr) {
	typeParams(sb, tps)
	params(sb, ps)
	if ret != nil {
		sb.WriteString(": ")
		nodeString(sb, false, ret)
	}
}

func params(sb *strings.Builder, ps []*Param) {
	sb.WriteByte('(')
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Variadic {
			sb.WriteString("...")
		}
		switch {
		case p.Name == "":
			nodeString(sb, false, p.TypeAnn)
		case p.TypeAnn != nil:
			sb.WriteString(p.Name)
			sb.WriteString(": ")
			nodeString(sb, false, p.TypeAnn)
		default:
			sb.WriteString(p.Name)
		}
	}
	sb.WriteByte(')')
}

func typeParams(sb *strings.Builder, tps []*TypeParam) {
	if len(tps) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, tp := range tps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tp.Name)
		if len(tp.Constraints) > 0 {
			sb.WriteString(": ")
			sb.WriteString(strings.Join(tp.Constraints, " + "))
		}
	}
	sb.WriteByte('>')
}

func typeArgs(sb *strings.Builder, args []TypeExpr) {
	if len(args) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, t := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		nodeString(sb, false, t)
	}
	sb.WriteByte('>')
}

func fields(sb *strings.Builder, fs []*Field) {
	if len(fs) == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteString("{ ")
	for i, f := range fs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		if f.TypeAnn != nil {
			sb.WriteString(": ")
			nodeString(sb, false, f.TypeAnn)
		}
	}
	sb.WriteString(" }")
}

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

// Node is the base for all syntax nodes. The set of node types is closed: every implementation
// is declared in this package.
type Node interface {
	// Name of the syntax-type of the node.
	NodeName() string
	node()
}

var (
	_ Node = (*Number)(nil)
	_ Node = (*StringLit)(nil)
	_ Node = (*Bool)(nil)
	_ Node = (*Ident)(nil)
	_ Node = (*Binary)(nil)
	_ Node = (*Logical)(nil)
	_ Node = (*Unary)(nil)
	_ Node = (*Update)(nil)
	_ Node = (*Assign)(nil)
	_ Node = (*Ternary)(nil)
	_ Node = (*Sequence)(nil)
	_ Node = (*Call)(nil)
	_ Node = (*Await)(nil)
	_ Node = (*Member)(nil)
	_ Node = (*Index)(nil)
	_ Node = (*ArrayLit)(nil)
	_ Node = (*ObjectLit)(nil)
	_ Node = (*StructLit)(nil)
	_ Node = (*Lambda)(nil)
)

// Number literal: `1`, `2.5`
type Number struct {
	// Raw is the literal as written, without digit separators.
	Raw     string
	IsFloat bool
}

// String literal: `"hi"`
type StringLit struct {
	Value string
}

// Boolean literal: `true`, `false`
type Bool struct {
	Value bool
}

// Identifier: `x`
type Ident struct {
	Name string
}

// Binary operation: `a + b`, `a < b`, `a << b`
type Binary struct {
	Op    string
	Left  Node
	Right Node
}

// Short-circuit logical operation: `a && b`, `a || b`
type Logical struct {
	Op    string
	Left  Node
	Right Node
}

// Prefix operation: `!a`, `-a`, `~a`
type Unary struct {
	Op      string
	Operand Node
}

// Increment or decrement: `i++`, `--i`
type Update struct {
	Op      string
	Operand Node
	Prefix  bool
}

// Assignment: `a = b`, `a.b += c`
type Assign struct {
	Op     string
	Target Node
	Value  Node
}

// Conditional expression: `c ? a : b`
type Ternary struct {
	Cond Node
	Then Node
	Else Node
}

// Comma-separated expressions: `a, b, c`
type Sequence struct {
	Exprs []Node
}

// Application: `f(x, y)`
type Call struct {
	Callee Node
	Args   []Node
}

// Awaited expression: `await f(x)`
type Await struct {
	Expr Node
}

// Member access: `a.b`, `a->b`
type Member struct {
	Object   Node
	Property string
	// Arrow is true for `a->b`.
	Arrow bool
}

// Computed member access: `a[i]`
type Index struct {
	Object Node
	Index  Node
}

// Array literal: `[1, 2, 3]`
type ArrayLit struct {
	Elements []Node
}

// Object literal: `{ a: 1, "b": 2 }`
type ObjectLit struct {
	Props []*Property
}

// Key/value pair within an object literal
type Property struct {
	Key   string
	Value Node
}

// Struct literal: `Point { x: 1, y: 2 }`
type StructLit struct {
	Name   string
	Object *ObjectLit
}

// Anonymous function: `fun (x) { return x; }`
type Lambda struct {
	TypeParams []*TypeParam
	Params     []*Param
	ReturnType TypeExpr
	Body       *Block
	Async      bool
}

func (*Number) NodeName() string    { return "Number" }
func (*StringLit) NodeName() string { return "String" }
func (*Bool) NodeName() string      { return "Boolean" }
func (*Ident) NodeName() string     { return "Identifier" }
func (*Binary) NodeName() string    { return "BinaryExpression" }
func (*Logical) NodeName() string   { return "LogicalExpression" }
func (*Unary) NodeName() string     { return "UnaryExpression" }
func (*Update) NodeName() string    { return "UpdateExpression" }
func (*Assign) NodeName() string    { return "AssignmentExpression" }
func (*Ternary) NodeName() string   { return "TernaryExpression" }
func (*Sequence) NodeName() string  { return "Sequence" }
func (*Call) NodeName() string      { return "CallExpression" }
func (*Await) NodeName() string     { return "AwaitExpression" }
func (*Member) NodeName() string    { return "MemberExpression" }
func (*Index) NodeName() string     { return "IndexExpression" }
func (*ArrayLit) NodeName() string  { return "Array" }
func (*ObjectLit) NodeName() string { return "Object" }
func (*StructLit) NodeName() string { return "StructLiteral" }
func (*Lambda) NodeName() string    { return "Lambda" }

func (*Number) node()    {}
func (*StringLit) node() {}
func (*Bool) node()      {}
func (*Ident) node()     {}
func (*Binary) node()    {}
func (*Logical) node()   {}
func (*Unary) node()     {}
func (*Update) node()    {}
func (*Assign) node()    {}
func (*Ternary) node()   {}
func (*Sequence) node()  {}
func (*Call) node()      {}
func (*Await) node()     {}
func (*Member) node()    {}
func (*Index) node()     {}
func (*ArrayLit) node()  {}
func (*ObjectLit) node() {}
func (*StructLit) node() {}
func (*Lambda) node()    {}

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

var (
	_ Node = (*Program)(nil)
	_ Node = (*Block)(nil)
	_ Node = (*ExprStmt)(nil)
	_ Node = (*If)(nil)
	_ Node = (*While)(nil)
	_ Node = (*For)(nil)
	_ Node = (*Return)(nil)
	_ Node = (*Break)(nil)
	_ Node = (*Continue)(nil)
)

// Root of a parsed source file
type Program struct {
	Body []Node
}

// Braced statement list: `{ ... }`
type Block struct {
	Body []Node
}

// Expression evaluated for its effects: `f(x);`
type ExprStmt struct {
	Expr Node
}

// Conditional statement: `if (c) a else b`. Else may be nil.
type If struct {
	Cond Node
	Then Node
	Else Node
}

// Loop: `while (c) body`
type While struct {
	Cond Node
	Body Node
}

// Loop: `for (init; cond; update) body`. Init, Cond and Update may be nil.
type For struct {
	Init   Node
	Cond   Node
	Update Node
	Body   Node
}

// Return from the enclosing function: `return x;`. Value may be nil.
type Return struct {
	Value Node
}

// `break;`
type Break struct{}

// `continue;`
type Continue struct{}

func (*Program) NodeName() string  { return "SourceElements" }
func (*Block) NodeName() string    { return "Block" }
func (*ExprStmt) NodeName() string { return "ExpressionStatement" }
func (*If) NodeName() string       { return "IfElse" }
func (*While) NodeName() string    { return "While" }
func (*For) NodeName() string      { return "For" }
func (*Return) NodeName() string   { return "Return" }
func (*Break) NodeName() string    { return "Break" }
func (*Continue) NodeName() string { return "Continue" }

func (*Program) node()  {}
func (*Block) node()    {}
func (*ExprStmt) node() {}
func (*If) node()       {}
func (*While) node()    {}
func (*For) node()      {}
func (*Return) node()   {}
func (*Break) node()    {}
func (*Continue) node() {}

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
	"github.com/wdamron/tinfer/types"
)

var (
	_ Node = (*Let)(nil)
	_ Node = (*Variable)(nil)
	_ Node = (*FuncDecl)(nil)
	_ Node = (*StructDecl)(nil)
	_ Node = (*EnumDecl)(nil)
)

// Variable declaration list: `let a = 1, b: string = "x";`
type Let struct {
	Vars []*Variable
}

// Declared variable within a Let: `a: integer = 1`. TypeAnn and Value may be nil.
type Variable struct {
	Name     string
	TypeAnn  TypeExpr
	Value    Node
	inferred types.Type
}

// Get the inferred type of v. Inferred types are only available after type-checking.
func (v *Variable) Type() types.Type { return v.inferred }

// Assign a type to v. Type assignments should occur indirectly, during type-checking.
func (v *Variable) SetType(t types.Type) { v.inferred = t }

// Function declaration: `async fun name<T>(a: T, ...rest): T { ... }`
type FuncDecl struct {
	Name       string
	TypeParams []*TypeParam
	Params     []*Param
	ReturnType TypeExpr
	Body       *Block
	Async      bool
}

// Function parameter: `a: T`, `...rest`
type Param struct {
	Name     string
	TypeAnn  TypeExpr
	Variadic bool
}

// Struct declaration: `struct Point<T> { x: T, y }`
type StructDecl struct {
	Name       string
	TypeParams []*TypeParam
	Fields     []*Field
}

// Struct field: `x: T`. TypeAnn may be nil.
type Field struct {
	Name    string
	TypeAnn TypeExpr
}

// Enum declaration: `enum Shape<T> { Empty, Circle(T), Rect { w: T, h: T }, Unit = 1 }`
type EnumDecl struct {
	Name       string
	TypeParams []*TypeParam
	Variants   []*EnumVariant
}

type VariantKind int

const (
	UnitVariant VariantKind = iota
	TupleVariant
	StructVariant
	ConstantVariant
)

// Enum variant. Tuple is set for tuple variants, Fields for struct variants and Value for
// constant variants.
type EnumVariant struct {
	Name   string
	Kind   VariantKind
	Tuple  []TypeExpr
	Fields []*Field
	Value  Node
}

// Type parameter with optional type-class bounds: `T: Num + Eq`
type TypeParam struct {
	Name        string
	Constraints []string
}

func (*Let) NodeName() string        { return "Let" }
func (*Variable) NodeName() string   { return "Variable" }
func (*FuncDecl) NodeName() string   { return "FunctionDec" }
func (*StructDecl) NodeName() string { return "Struct" }
func (*EnumDecl) NodeName() string   { return "Enum" }

func (*Let) node()        {}
func (*Variable) node()   {}
func (*FuncDecl) node()   {}
func (*StructDecl) node() {}
func (*EnumDecl) node()   {}

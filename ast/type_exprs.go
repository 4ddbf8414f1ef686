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

// TypeExpr is the base for type annotations.
type TypeExpr interface {
	Node
	typeExpr()
}

var (
	_ TypeExpr = (*NamedType)(nil)
	_ TypeExpr = (*ArrayType)(nil)
	_ TypeExpr = (*MapType)(nil)
	_ TypeExpr = (*PromiseType)(nil)
	_ TypeExpr = (*FuncType)(nil)
	_ TypeExpr = (*StructType)(nil)
	_ TypeExpr = (*EnumType)(nil)
	_ TypeExpr = (*GenericType)(nil)
)

// Primitive or type-parameter name: `integer`, `T`
type NamedType struct {
	Name string
}

// `Array<T>`
type ArrayType struct {
	Elem TypeExpr
}

// `Map<K, V>`
type MapType struct {
	Key   TypeExpr
	Value TypeExpr
}

// `Promise<T>`
type PromiseType struct {
	Elem TypeExpr
}

// Function type: `(a: integer, b) -> string`
type FuncType struct {
	Params []*Param
	Return TypeExpr
}

// Reference to a declared struct: `struct Box<string>`
type StructType struct {
	Name string
	Args []TypeExpr
}

// Reference to a declared enum: `enum Option<integer>`
type EnumType struct {
	Name string
	Args []TypeExpr
}

// Type quantified over type parameters: `<T: Show, U>(x: T) -> U`
type GenericType struct {
	TypeParams []*TypeParam
	Base       TypeExpr
}

func (*NamedType) NodeName() string   { return "Type" }
func (*ArrayType) NodeName() string   { return "Type" }
func (*MapType) NodeName() string     { return "Type" }
func (*PromiseType) NodeName() string { return "Type" }
func (*FuncType) NodeName() string    { return "Type" }
func (*StructType) NodeName() string  { return "Type" }
func (*EnumType) NodeName() string    { return "Type" }
func (*GenericType) NodeName() string { return "GenericType" }

func (*NamedType) node()   {}
func (*ArrayType) node()   {}
func (*MapType) node()     {}
func (*PromiseType) node() {}
func (*FuncType) node()    {}
func (*StructType) node()  {}
func (*EnumType) node()    {}
func (*GenericType) node() {}

func (*NamedType) typeExpr()   {}
func (*ArrayType) typeExpr()   {}
func (*MapType) typeExpr()     {}
func (*PromiseType) typeExpr() {}
func (*FuncType) typeExpr()    {}
func (*StructType) typeExpr()  {}
func (*EnumType) typeExpr()    {}
func (*GenericType) typeExpr() {}

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
	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/types"
)

// Frame is a lexical scope containing mappings from identifiers to inferred types, along with the
// declarations, type-parameters, and type-classes visible within the scope.
//
// A frame cannot be used concurrently.
type Frame struct {
	// Enclosing scope, or nil for the global frame
	Parent *Frame
	// Mappings from identifiers to inferred types in the current scope
	Types map[string]types.Type
	// Struct and enum declarations in the current scope
	Decls map[string]ast.Node
	// Generic type-parameters in the current scope: the `T` of `<T>`
	TypeParams map[string]types.Type
	// Type-classes declared in the current scope
	TypeClasses map[string]*types.TypeClass
	// Type-class memberships of type-constructors declared in the current scope
	Members map[string]types.ClassSet

	fn      bool
	returns []types.Type
}

var _ ClassRegistry = (*Frame)(nil)

// Create a frame. The new frame will inherit bindings from the parent, if the parent is not nil.
func NewFrame(parent *Frame) *Frame {
	return &Frame{Parent: parent, Types: make(map[string]types.Type)}
}

// Create the frame of a function body. Return statements within the body (and its nested blocks)
// are collected by the function frame.
func NewFuncFrame(parent *Frame) *Frame {
	f := NewFrame(parent)
	f.fn = true
	return f
}

// Declare a type for an identifier within the frame.
func (f *Frame) Declare(name string, t types.Type) { f.Types[name] = t }

// Lookup the type for an identifier in the frame or its parent frame(s).
func (f *Frame) Lookup(name string) types.Type {
	for ; f != nil; f = f.Parent {
		if t, ok := f.Types[name]; ok {
			return t
		}
	}
	return nil
}

// LookupLocal returns the type declared for an identifier in the frame, ignoring parent frames.
func (f *Frame) LookupLocal(name string) types.Type { return f.Types[name] }

// Declare a struct or enum within the frame. An existing declaration with the same name in the
// frame is kept.
func (f *Frame) DeclareDecl(name string, decl ast.Node) {
	if f.Decls == nil {
		f.Decls = make(map[string]ast.Node)
	}
	if _, exists := f.Decls[name]; !exists {
		f.Decls[name] = decl
	}
}

// Lookup a struct or enum declaration in the frame or its parent frame(s).
func (f *Frame) LookupDecl(name string) ast.Node {
	for ; f != nil; f = f.Parent {
		if d, ok := f.Decls[name]; ok {
			return d
		}
	}
	return nil
}

// Declare a generic type-parameter within the frame.
func (f *Frame) DeclareTypeParam(name string, t types.Type) {
	if f.TypeParams == nil {
		f.TypeParams = make(map[string]types.Type)
	}
	f.TypeParams[name] = t
}

// Lookup a generic type-parameter in the frame or its parent frame(s).
func (f *Frame) LookupTypeParam(name string) types.Type {
	for ; f != nil; f = f.Parent {
		if t, ok := f.TypeParams[name]; ok {
			return t
		}
	}
	return nil
}

// Declare a type-class within the frame.
func (f *Frame) DeclareTypeClass(tc *types.TypeClass) {
	if f.TypeClasses == nil {
		f.TypeClasses = make(map[string]*types.TypeClass)
	}
	f.TypeClasses[tc.Name] = tc
}

// Lookup a declared type-class in the frame or its parent frame(s).
func (f *Frame) LookupTypeClass(name string) *types.TypeClass {
	for ; f != nil; f = f.Parent {
		if tc, ok := f.TypeClasses[name]; ok {
			return tc
		}
	}
	return nil
}

// Declare the type-classes which a type-constructor is an instance of.
func (f *Frame) DeclareInstances(conName string, classes types.ClassSet) {
	if f.Members == nil {
		f.Members = make(map[string]types.ClassSet)
	}
	f.Members[conName] = f.Members[conName].Union(classes)
}

// Instances returns the type-classes which a type-constructor is declared an instance of, in the
// frame or its parent frame(s).
func (f *Frame) Instances(conName string) types.ClassSet {
	for ; f != nil; f = f.Parent {
		if cs, ok := f.Members[conName]; ok {
			return cs
		}
	}
	return nil
}

// FuncFrame returns the innermost enclosing function frame, or nil outside of a function.
func (f *Frame) FuncFrame() *Frame {
	for ; f != nil; f = f.Parent {
		if f.fn {
			return f
		}
	}
	return nil
}

// AddReturn records the type of a return statement in the innermost enclosing function frame.
// It returns false outside of a function.
func (f *Frame) AddReturn(t types.Type) bool {
	fn := f.FuncFrame()
	if fn == nil {
		return false
	}
	fn.returns = append(fn.returns, t)
	return true
}

// Returns lists the types of the return statements collected by a function frame.
func (f *Frame) Returns() []types.Type { return f.returns }

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
	"golang.org/x/exp/slices"
)

// Resolve a type annotation within frame.
func (c *Checker) resolveType(frame *Frame, t ast.TypeExpr) (types.Type, error) {
	switch t := t.(type) {
	case *ast.NamedType:
		if slices.Contains(c.primitives, t.Name) || t.Name == types.Void || t.Name == types.Unknown {
			return c.primitive(t.Name), nil
		}
		if tp := frame.LookupTypeParam(t.Name); tp != nil {
			return tp, nil
		}
		switch decl := frame.LookupDecl(t.Name).(type) {
		case *ast.StructDecl:
			return c.structType(frame, decl, nil)
		case *ast.EnumDecl:
			return c.enumType(frame, decl, nil)
		}
		return nil, &UnknownTypeError{Name: t.Name}

	case *ast.ArrayType:
		elem, err := c.resolveType(frame, t.Elem)
		if err != nil {
			return nil, err
		}
		return types.NewConArgs(types.ArrayName, elem), nil

	case *ast.MapType:
		if _, err := c.resolveType(frame, t.Key); err != nil {
			return nil, err
		}
		val, err := c.resolveType(frame, t.Value)
		if err != nil {
			return nil, err
		}
		return types.NewConArgs(types.MapName, val), nil

	case *ast.PromiseType:
		elem, err := c.resolveType(frame, t.Elem)
		if err != nil {
			return nil, err
		}
		return types.NewConArgs(types.PromiseName, elem), nil

	case *ast.FuncType:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			switch {
			case p.TypeAnn != nil:
				pt, err := c.resolveType(frame, p.TypeAnn)
				if err != nil {
					return nil, err
				}
				params[i] = pt
			case p.Variadic:
				params[i] = types.NewConArgs(types.ArrayName, c.fresh())
			default:
				params[i] = c.fresh()
			}
		}
		var ret types.Type = c.primitive(types.Void)
		if t.Return != nil {
			var err error
			if ret, err = c.resolveType(frame, t.Return); err != nil {
				return nil, err
			}
		}
		return types.NewArrow(params, ret), nil

	case *ast.StructType:
		decl, ok := frame.LookupDecl(t.Name).(*ast.StructDecl)
		if !ok {
			return nil, &UndeclaredError{Kind: "Struct", Name: t.Name}
		}
		args, err := c.resolveTypes(frame, t.Args)
		if err != nil {
			return nil, err
		}
		return c.structType(frame, decl, args)

	case *ast.EnumType:
		decl, ok := frame.LookupDecl(t.Name).(*ast.EnumDecl)
		if !ok {
			return nil, &UndeclaredError{Kind: "Enum", Name: t.Name}
		}
		args, err := c.resolveTypes(frame, t.Args)
		if err != nil {
			return nil, err
		}
		return c.enumType(frame, decl, args)

	case *ast.GenericType:
		generic := NewFrame(frame)
		if _, err := c.declareTypeParams(generic, t.TypeParams, nil); err != nil {
			return nil, err
		}
		return c.resolveType(generic, t.Base)
	}

	return nil, errors.New("Missing type annotation")
}

func (c *Checker) resolveTypes(frame *Frame, ts []ast.TypeExpr) ([]types.Type, error) {
	resolved := make([]types.Type, len(ts))
	for i, t := range ts {
		rt, err := c.resolveType(frame, t)
		if err != nil {
			return nil, err
		}
		resolved[i] = rt
	}
	return resolved, nil
}

// Declare type-parameters within frame. Each parameter is bound to the corresponding argument, or
// to a fresh type-variable. The classes a parameter is constrained by are attached to a fresh
// variable, and must already be satisfied by an argument.
func (c *Checker) declareTypeParams(frame *Frame, tps []*ast.TypeParam, args []types.Type) ([]types.Type, error) {
	params := make([]types.Type, len(tps))
	for i, tp := range tps {
		var t types.Type
		if i < len(args) && args[i] != nil {
			t = args[i]
		} else {
			t = c.fresh()
		}
		for _, name := range tp.Constraints {
			tc := frame.LookupTypeClass(name)
			if tc == nil {
				return nil, &UnknownTypeError{Name: name}
			}
			if !CheckTypeClass(t, tc, frame) {
				return nil, &ClassConstraintError{Type: t, Classes: types.ClassSet{tc}}
			}
		}
		frame.DeclareTypeParam(tp.Name, t)
		params[i] = t
	}
	return params, nil
}

// Instantiate a struct declaration as a record type. A field without an annotation has the type of
// the struct's only type-parameter, or a fresh type-variable if the struct does not have exactly
// one type-parameter.
func (c *Checker) structType(frame *Frame, decl *ast.StructDecl, args []types.Type) (*types.TRec, error) {
	scope := NewFrame(frame)
	params, err := c.declareTypeParams(scope, decl.TypeParams, args)
	if err != nil {
		return nil, err
	}
	fields := types.NewFieldMapBuilder()
	for _, f := range decl.Fields {
		var t types.Type
		switch {
		case f.TypeAnn != nil:
			if t, err = c.resolveType(scope, f.TypeAnn); err != nil {
				return nil, err
			}
		case len(params) == 1:
			t = params[0]
		default:
			t = c.fresh()
		}
		fields = fields.Set(f.Name, t)
	}
	return types.NewRec(decl.Name, fields.Build(), types.Struct), nil
}

// Instantiate an enum declaration as a type-constructor applied to its type-parameters.
func (c *Checker) enumType(frame *Frame, decl *ast.EnumDecl, args []types.Type) (*types.TCon, error) {
	params, err := c.declareTypeParams(NewFrame(frame), decl.TypeParams, args)
	if err != nil {
		return nil, err
	}
	return types.NewConArgs(decl.Name, params...), nil
}

// The type of `Enum.Variant`: unit and constant variants have the enum type; tuple variants are
// functions from the tuple types to the enum type; struct variants are functions from a record of
// the variant's fields to the enum type.
func (c *Checker) variantType(frame *Frame, decl *ast.EnumDecl, name string) (types.Type, error) {
	i := slices.IndexFunc(decl.Variants, func(v *ast.EnumVariant) bool { return v.Name == name })
	if i < 0 {
		return nil, &UndeclaredError{Kind: "Variant", Name: decl.Name + "." + name}
	}
	variant := decl.Variants[i]

	scope := NewFrame(frame)
	params, err := c.declareTypeParams(scope, decl.TypeParams, nil)
	if err != nil {
		return nil, err
	}
	enum := types.NewConArgs(decl.Name, params...)

	switch variant.Kind {
	case ast.TupleVariant:
		elems, err := c.resolveTypes(scope, variant.Tuple)
		if err != nil {
			return nil, err
		}
		return types.NewArrow(elems, enum), nil

	case ast.StructVariant:
		fields := types.NewFieldMapBuilder()
		for _, f := range variant.Fields {
			var t types.Type = c.fresh()
			if f.TypeAnn != nil {
				if t, err = c.resolveType(scope, f.TypeAnn); err != nil {
					return nil, err
				}
			}
			fields = fields.Set(f.Name, t)
		}
		rec := types.NewRec(variant.Name, fields.Build(), types.Struct)
		return types.NewArrow([]types.Type{rec}, enum), nil

	case ast.ConstantVariant:
		if variant.Value != nil {
			if _, err := c.infer(scope, variant.Value); err != nil {
				return nil, err
			}
		}
	}
	return enum, nil
}

// Annotate each declared variable in prog with its solved type.
func (c *Checker) annotate(prog *ast.Program) {
	ast.Walk(prog, func(n ast.Node) bool {
		if v, ok := n.(*ast.Variable); ok && v.Type() != nil {
			v.SetType(c.subst.Apply(v.Type()))
		}
		return true
	})
}

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

package types

// Names of the builtin type-constructors.
const (
	Integer = "integer"
	Float   = "float"
	Boolean = "boolean"
	String  = "string"
	Void    = "void"
	Unknown = "unknown"

	ArrayName   = "Array"
	MapName     = "Map"
	PromiseName = "Promise"
	// ArrowName is the constructor name for function types: `(P1, ..., Pn) -> R` is `->[P1, ..., Pn, R]`.
	ArrowName = "->"

	// AnonRecord is the name of a record type inferred for an object literal which has not (yet)
	// been associated with a declared struct.
	AnonRecord = "map"
)

// Type is the base interface for all types.
//
// Types are reference types: type-class constraints attached to a type are visible to every
// holder of the same *TVar, *TCon, or *TRec.
type Type interface {
	TypeName() string
	// Constraints returns the type-classes attached to the type.
	Constraints() ClassSet
	// AddConstraint attaches a type-class to the type. Attaching a class which is already
	// present (by name) has no effect.
	AddConstraint(tc *TypeClass)
}

func (t *TVar) TypeName() string { return "TVar" }
func (t *TCon) TypeName() string { return "TCon" }
func (t *TRec) TypeName() string { return "TRec" }

func (t *TVar) Constraints() ClassSet { return t.constraints }
func (t *TCon) Constraints() ClassSet { return t.constraints }
func (t *TRec) Constraints() ClassSet { return t.constraints }

func (t *TVar) AddConstraint(tc *TypeClass) { t.constraints = t.constraints.With(tc) }
func (t *TCon) AddConstraint(tc *TypeClass) { t.constraints = t.constraints.With(tc) }
func (t *TRec) AddConstraint(tc *TypeClass) { t.constraints = t.constraints.With(tc) }

// Type constructor: `integer`, `Array<T>`, `(integer) -> string`
type TCon struct {
	Name        string
	Args        []Type
	constraints ClassSet
}

// Create a type-constructor without arguments.
func NewCon(name string, constraints ...*TypeClass) *TCon {
	return &TCon{Name: name, constraints: ClassSet(nil).With(constraints...)}
}

// Create a type-constructor applied to arguments.
func NewConArgs(name string, args ...Type) *TCon {
	return &TCon{Name: name, Args: args}
}

// Create a function type: `(params...) -> ret`
func NewArrow(params []Type, ret Type) *TCon {
	args := make([]Type, 0, len(params)+1)
	args = append(args, params...)
	return &TCon{Name: ArrowName, Args: append(args, ret)}
}

// IsArrow returns true if t is a function type.
func (t *TCon) IsArrow() bool { return t.Name == ArrowName && len(t.Args) > 0 }

// Params returns the parameter types of a function type.
func (t *TCon) Params() []Type {
	if !t.IsArrow() {
		return nil
	}
	return t.Args[:len(t.Args)-1]
}

// Return returns the result type of a function type.
func (t *TCon) Return() Type {
	if !t.IsArrow() {
		return nil
	}
	return t.Args[len(t.Args)-1]
}

// SetConstraints replaces the type-classes attached to the type-constructor.
func (t *TCon) SetConstraints(cs ClassSet) { t.constraints = cs }

// Structural record: `Point { x: integer, y: integer }`
type TRec struct {
	Name        string
	Fields      FieldMap
	constraints ClassSet
}

// Create a record type. An empty name creates an anonymous record.
func NewRec(name string, fields FieldMap, constraints ...*TypeClass) *TRec {
	if name == "" {
		name = AnonRecord
	}
	return &TRec{Name: name, Fields: fields, constraints: ClassSet(nil).With(constraints...)}
}

// IsAnonymous returns true if the record was inferred from an object literal which has not been
// associated with a declared struct.
func (t *TRec) IsAnonymous() bool { return t.Name == AnonRecord }

// Field returns the type of a field, if the record declares it.
func (t *TRec) Field(name string) (Type, bool) { return t.Fields.Get(name) }

// SetConstraints replaces the type-classes attached to the record.
func (t *TRec) SetConstraints(cs ClassSet) { t.constraints = cs }

// IsMapCon returns true for the generic map constructors which unify against every field of a record.
func IsMapCon(t *TCon) bool { return t.Name == AnonRecord || t.Name == MapName }

// Same returns true if a and b are the same type-variable (by id) or the same reference.
func Same(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if av, ok := a.(*TVar); ok {
		if bv, ok := b.(*TVar); ok {
			return av.Id == bv.Id
		}
		return false
	}
	return a == b
}

// Equal reports structural equality: constructors and records compare by name and components,
// type-variables compare by id. Attached constraints are ignored.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *TVar:
		b, ok := b.(*TVar)
		return ok && a.Id == b.Id
	case *TCon:
		b, ok := b.(*TCon)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *TRec:
		b, ok := b.(*TRec)
		if !ok || a.Name != b.Name || a.Fields.Len() != b.Fields.Len() {
			return false
		}
		equal := true
		a.Fields.Range(func(name string, at Type) bool {
			bt, ok := b.Fields.Get(name)
			equal = ok && Equal(at, bt)
			return equal
		})
		return equal
	case nil:
		return b == nil
	}
	return false
}

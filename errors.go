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
	"strings"

	"github.com/samber/lo"
	"github.com/wdamron/tinfer/types"
)

// OccursCheckError is returned when a type-variable would be bound to a type which contains it.
type OccursCheckError struct {
	Var  *types.TVar
	Type types.Type
}

func (e *OccursCheckError) Error() string {
	return "Occurs check fails: " + e.Var.Id + " in " + types.TypeString(e.Type)
}

// MismatchError is returned when two type-constructors or records cannot be unified.
type MismatchError struct {
	Left, Right types.Type
}

func (e *MismatchError) Error() string {
	return "Types mismatch: Can't unify '" + types.TypeString(e.Left) + "' with '" + types.TypeString(e.Right) + "'"
}

// MissingFieldError is returned when a record is unified with a record which has a field it lacks.
type MissingFieldError struct {
	Field  string
	Record *types.TRec
}

func (e *MissingFieldError) Error() string {
	return "Missing field '" + e.Field + "' in type '" + e.Record.Name + "'"
}

// ClassConstraintError is returned when a type-variable with attached type-classes is bound to a
// type which is not an instance of every class.
type ClassConstraintError struct {
	Type    types.Type
	Classes types.ClassSet
}

func (e *ClassConstraintError) Error() string {
	return "Type '" + types.TypeString(e.Type) + "' does not satisfy constraint " + e.Classes.String()
}

// OperatorError is returned when an operand of a binary operator is not an instance of the
// type-class the operator requires.
type OperatorError struct {
	Op          string
	Left, Right types.Type
}

func (e *OperatorError) Error() string {
	operands := shortName(e.Left) + " and " + shortName(e.Right)
	switch e.Op {
	case "+":
		return "Operator '+' requires either Num or Stringable type class for types " + operands
	case "<", ">", "<=", ">=":
		return "Comparison requires Ord type class for types " + operands
	case "==", "!=":
		return "Equality comparison requires Eq type class for types " + operands
	}
	return "Operator '" + e.Op + "' requires Num type class for types " + operands
}

// UnknownTypeError is returned for a type annotation naming neither a primitive, a type-parameter,
// nor a declared struct or enum.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string { return "Couldn't find generic type <" + e.Name + ">" }

// UndeclaredError is returned when a struct, enum, or enum variant referenced by the program has
// not been declared.
type UndeclaredError struct {
	Kind string // "Struct", "Enum", or "Variant"
	Name string
}

func (e *UndeclaredError) Error() string { return e.Kind + " " + e.Name + " not found" }

// InvalidOperandsError is returned when an operand of an operator or assignment does not produce
// a value.
type InvalidOperandsError struct {
	Op string
}

func (e *InvalidOperandsError) Error() string { return "Invalid operands for '" + e.Op + "'" }

// FileError prefixes an error with the name of the checked source.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string { return e.Name + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// TypeErrors collects the unification failures found while solving constraints.
type TypeErrors struct {
	Errors []error
}

func (e *TypeErrors) Error() string {
	msgs := lo.Map(e.Errors, func(err error, _ int) string { return err.Error() })
	return "Types errors found:\n" + strings.Join(msgs, "\n")
}

func (e *TypeErrors) Unwrap() []error { return e.Errors }

// Short operand names: the constructor or record name, or the variable id.
func shortName(t types.Type) string {
	switch t := t.(type) {
	case *types.TVar:
		return t.Id
	case *types.TCon:
		return t.Name
	case *types.TRec:
		return t.Name
	}
	return types.Unknown
}

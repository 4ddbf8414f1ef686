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
	"github.com/wdamron/tinfer/types"
)

// Seed a global frame with the predefined type-classes and the class memberships of the
// primitive type-constructors.
func seedTypeClasses(frame *Frame) {
	for _, tc := range types.Classes() {
		frame.DeclareTypeClass(tc)
	}
	for name, classes := range types.PrimitiveInstances() {
		frame.DeclareInstances(name, classes)
	}
}

// CheckTypeClass reports whether t is an instance of tc.
//
// A type-constructor with a registered membership in tc has the class attached. A type-variable
// always has the class attached and is reported as an instance; the membership is verified when
// the variable is bound during unification.
func CheckTypeClass(t types.Type, tc *types.TypeClass, frame *Frame) bool {
	if t == nil || tc == nil {
		return false
	}
	if t.Constraints().Has(tc.Name) {
		return true
	}
	switch t := t.(type) {
	case *types.TCon:
		if frame.Instances(t.Name).Has(tc.Name) {
			t.AddConstraint(tc)
			return true
		}
	case *types.TVar:
		t.AddConstraint(tc)
		return true
	}
	return false
}

// hasClass reports whether t is known to be an instance of tc, without attaching the class.
func hasClass(t types.Type, tc *types.TypeClass, frame *Frame) bool {
	if t.Constraints().Has(tc.Name) {
		return true
	}
	con, ok := t.(*types.TCon)
	return ok && frame.Instances(con.Name).Has(tc.Name)
}

// admitsClass reports whether t is, or may later become, an instance of tc.
func admitsClass(t types.Type, tc *types.TypeClass, frame *Frame) bool {
	if _, ok := t.(*types.TVar); ok {
		return true
	}
	return hasClass(t, tc, frame)
}

// Select the class required of the operands of `+`: Stringable is tried before Num. A class is
// selected only if one operand is known to be an instance and the other may become one. If both
// operands are unconstrained type-variables, no class is selected and ok is true.
func additionClass(left, right types.Type, frame *Frame) (tc *types.TypeClass, ok bool) {
	for _, name := range []string{types.Stringable.Name, types.Num.Name} {
		tc := frame.LookupTypeClass(name)
		if tc == nil {
			continue
		}
		if !admitsClass(left, tc, frame) || !admitsClass(right, tc, frame) {
			continue
		}
		if hasClass(left, tc, frame) || hasClass(right, tc, frame) {
			return tc, true
		}
	}
	_, leftIsVar := left.(*types.TVar)
	_, rightIsVar := right.(*types.TVar)
	return nil, leftIsVar && rightIsVar
}

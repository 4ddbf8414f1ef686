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

import (
	"strconv"
	"sync/atomic"
)

// Type-variable
type TVar struct {
	// Id identifies the variable; two type-variables are the same variable iff their ids match.
	Id          string
	constraints ClassSet
}

// Create a named type-variable. Named type-variables are not checked for uniqueness.
func NewNamedVar(name string, constraints ...*TypeClass) *TVar {
	return &TVar{Id: name, constraints: ClassSet(nil).With(constraints...)}
}

// SetConstraints replaces the type-classes attached to the type-variable.
func (tv *TVar) SetConstraints(cs ClassSet) { tv.constraints = cs }

// VarGen allocates type-variables with unique ids (`T0`, `T1`, ...).
//
// A VarGen may be shared by nested checkers; ids are allocated atomically.
type VarGen struct {
	next atomic.Uint64
}

// DefaultVarGen is the process-wide generator used when no generator is supplied.
var DefaultVarGen = &VarGen{}

// NewVarGen creates a generator whose first id is `T0`.
func NewVarGen() *VarGen { return &VarGen{} }

// New creates a fresh, unbound type-variable.
func (g *VarGen) New() *TVar {
	return &TVar{Id: "T" + strconv.FormatUint(g.next.Add(1)-1, 10)}
}

// NewList creates n fresh type-variables.
func (g *VarGen) NewList(n int) []Type {
	vars := make([]Type, n)
	for i := range vars {
		vars[i] = g.New()
	}
	return vars
}

// Peek returns the number of ids allocated so far.
func (g *VarGen) Peek() uint64 { return g.next.Load() }

// VarOrder orders type-variable ids by allocation: generated ids (`T<n>`) compare numerically and
// sort before named variables, which compare lexically. It returns -1, 0, or +1.
func VarOrder(a, b string) int {
	an, aok := generatedSeq(a)
	bn, bok := generatedSeq(b)
	switch {
	case aok && bok:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aok:
		return -1
	case bok:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func generatedSeq(id string) (uint64, bool) {
	if len(id) < 2 || id[0] != 'T' {
		return 0, false
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	return n, err == nil
}

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
	"github.com/hashicorp/go-set/v2"
)

// VarSet is a set of type-variables, ordered by first occurrence.
type VarSet struct {
	ids  *set.Set[string]
	vars []*TVar
}

func NewVarSet() *VarSet { return &VarSet{ids: set.New[string](0)} }

// Insert adds a type-variable to the set. It returns false if a type-variable with the same id
// was already present.
func (vs *VarSet) Insert(tv *TVar) bool {
	if !vs.ids.Insert(tv.Id) {
		return false
	}
	vs.vars = append(vs.vars, tv)
	return true
}

// Contains returns true if a type-variable with the given id is in the set.
func (vs *VarSet) Contains(id string) bool { return vs.ids.Contains(id) }

// Len returns the number of type-variables in the set.
func (vs *VarSet) Len() int { return vs.ids.Size() }

// Vars returns the type-variables in first-occurrence order.
func (vs *VarSet) Vars() []*TVar { return vs.vars }

// FreeVars returns the type-variables reachable from t.
func FreeVars(t Type) *VarSet {
	vs := NewVarSet()
	CollectFreeVars(vs, t)
	return vs
}

// CollectFreeVars adds the type-variables reachable from t to vs.
func CollectFreeVars(vs *VarSet, t Type) {
	switch t := t.(type) {
	case *TVar:
		vs.Insert(t)
	case *TCon:
		for _, arg := range t.Args {
			CollectFreeVars(vs, arg)
		}
	case *TRec:
		t.Fields.Range(func(_ string, ft Type) bool {
			CollectFreeVars(vs, ft)
			return true
		})
	}
}

// Occurs returns true if the type-variable with the given id is reachable from t.
func Occurs(id string, t Type) bool {
	switch t := t.(type) {
	case *TVar:
		return t.Id == id
	case *TCon:
		for _, arg := range t.Args {
			if Occurs(id, arg) {
				return true
			}
		}
	case *TRec:
		found := false
		t.Fields.Range(func(_ string, ft Type) bool {
			found = Occurs(id, ft)
			return !found
		})
		return found
	}
	return false
}

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
	"github.com/benbjohnson/immutable"
)

// Subst is an immutable mapping from type-variable ids to types.
//
// The zero value is the empty substitution.
type Subst struct {
	m *immutable.SortedMap
}

// EmptySubst is the substitution with no bindings.
var EmptySubst = Subst{emptyMap}

// Create a substitution binding a single type-variable.
func SingletonSubst(tv *TVar, t Type) Subst {
	return Subst{emptyMap.Set(tv.Id, t)}
}

// Get the number of bindings.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Lookup returns the type bound to the type-variable with the given id.
func (s Subst) Lookup(id string) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of the substitution with id bound to t.
func (s Subst) Set(id string, t Type) Subst {
	imm := s.m
	if imm == nil {
		imm = emptyMap
	}
	return Subst{imm.Set(id, t)}
}

// Iterate over bindings in id order.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Apply replaces every bound type-variable in t with its binding.
//
// Unbound type-variables are returned as-is (the same reference). Constructors and records are
// rebuilt; each rebuilt node carries a copy of the original node's type-class constraints.
func (s Subst) Apply(t Type) Type {
	if t == nil {
		return nil
	}
	if s.Len() == 0 {
		return t
	}
	switch t := t.(type) {
	case *TVar:
		if bound, ok := s.Lookup(t.Id); ok {
			return bound
		}
		return t
	case *TCon:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &TCon{Name: t.Name, Args: args, constraints: append(ClassSet(nil), t.constraints...)}
	case *TRec:
		return &TRec{Name: t.Name, Fields: t.Fields.Map(s.Apply), constraints: append(ClassSet(nil), t.constraints...)}
	}
	return t
}

// Compose returns the substitution equivalent to applying b, then a.
//
// Bindings of b are rewritten by a; bindings only present in a are kept. On collision, the
// rewritten binding from b wins.
func Compose(a, b Subst) Subst {
	if a.Len() == 0 {
		return b
	}
	builder := immutable.NewSortedMapBuilder(emptyMap)
	a.Range(func(id string, t Type) bool {
		builder.Set(id, t)
		return true
	})
	b.Range(func(id string, t Type) bool {
		builder.Set(id, a.Apply(t))
		return true
	})
	return Subst{builder.Map()}
}

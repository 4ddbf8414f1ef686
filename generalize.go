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

// Scheme is a type quantified over a set of type-variables: `forall Vars. Type`
type Scheme struct {
	Vars []*types.TVar
	Type types.Type
}

func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		return types.TypeString(s.Type)
	}
	ids := lo.Map(s.Vars, func(tv *types.TVar, _ int) string { return tv.Id })
	return "forall " + strings.Join(ids, " ") + ". " + types.TypeString(s.Type)
}

// Generalize t over the type-variables which are free in t but not bound by any identifier in
// frame or its parent frame(s).
func Generalize(frame *Frame, t types.Type) Scheme {
	env := types.NewVarSet()
	for f := frame; f != nil; f = f.Parent {
		for _, bound := range f.Types {
			types.CollectFreeVars(env, bound)
		}
	}
	vars := lo.Filter(types.FreeVars(t).Vars(), func(tv *types.TVar, _ int) bool {
		return !env.Contains(tv.Id)
	})
	return Scheme{Vars: vars, Type: t}
}

// Instantiate replaces each quantified variable of the scheme with a fresh type-variable from gen.
// Fresh variables carry copies of the type-classes attached to the quantified variables.
func Instantiate(gen *types.VarGen, s Scheme) types.Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	subst := types.EmptySubst
	for _, tv := range s.Vars {
		fresh := gen.New()
		fresh.SetConstraints(append(types.ClassSet(nil), tv.Constraints()...))
		subst = subst.Set(tv.Id, fresh)
	}
	return subst.Apply(s.Type)
}

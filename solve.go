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

// Solve unifies the accumulated equality constraints in emission order, under the substitution
// accumulated from earlier constraints.
//
// A failing constraint does not stop the pass. If any constraint fails, the returned error is a
// *TypeErrors holding every failure, and the returned substitution holds the bindings of the
// constraints which were solved. Constraint kinds other than EqualityCon are skipped.
func (s *Solver) Solve() (types.Subst, error) {
	subst := types.EmptySubst
	var errs []error
	for i, c := range s.constraints {
		if c.Kind != EqualityCon {
			continue
		}
		next, err := s.Unify(subst.Apply(c.Left), subst.Apply(c.Right))
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("constraint %d failed: %v", i, err)
			}
			errs = append(errs, err)
			continue
		}
		if next.Len() != 0 {
			subst = types.Compose(next, subst)
		}
	}
	if s.logger != nil {
		subst.Range(func(id string, t types.Type) bool {
			s.logger.Printf("solved %s = %s", id, types.TypeString(t))
			return true
		})
	}
	if len(errs) > 0 {
		return subst, &TypeErrors{Errors: errs}
	}
	return subst, nil
}

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

package tinfer_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/wdamron/tinfer"
	. "github.com/wdamron/tinfer/construct"

	"github.com/wdamron/tinfer/types"
)

type registry map[string]types.ClassSet

func (r registry) Instances(conName string) types.ClassSet { return r[conName] }

func TestBindSelf(t *testing.T) {
	s := NewSolver(nil)
	a := TVar("a")
	subst, err := s.Bind(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if subst.Len() != 0 {
		t.Fatalf("expected empty substitution, found %d bindings", subst.Len())
	}
}

func TestOccursCheck(t *testing.T) {
	s := NewSolver(nil)
	a := TVar("a")
	_, err := s.Unify(a, TArray(a))
	var occurs *OccursCheckError
	if !errors.As(err, &occurs) {
		t.Fatalf("expected occurs check error, found %v", err)
	}
	if err.Error() != "Occurs check fails: a in Array<a>" {
		t.Fatalf("error: %s", err)
	}

	_, err = s.Unify(TFun1(a, TCon(types.Integer)), TFun1(TArray(a), TCon(types.Integer)))
	if !errors.As(err, &occurs) {
		t.Fatalf("expected occurs check error, found %v", err)
	}
}

func TestUnifyCommutes(t *testing.T) {
	a, b, c := TVar("a"), TVar("b"), TVar("c")
	integer, str := TCon(types.Integer), TCon(types.String)
	pairs := [][2]types.Type{
		{a, b},
		{a, integer},
		{TFun1(a, integer), TFun1(str, b)},
		{TFun2(a, b, a), TFun2(b, integer, c)},
		{TArray(a), TArray(TPromise(b))},
		{TRecord("Point", map[string]types.Type{"x": a, "y": b}), TRecord("", map[string]types.Type{"x": integer})},
		{TConEx(types.MapName, a), TRecord("", map[string]types.Type{"x": str, "y": b})},
	}
	s := NewSolver(nil)
	for _, pair := range pairs {
		ab, err := s.Unify(pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		ba, err := s.Unify(pair[1], pair[0])
		if err != nil {
			t.Fatal(err)
		}
		for _, x := range []types.Type{pair[0], pair[1], a, b, c} {
			l, r := types.TypeString(ab.Apply(x)), types.TypeString(ba.Apply(x))
			if l != r {
				t.Fatalf("unify(%s, %s): %s != %s", types.TypeString(pair[0]), types.TypeString(pair[1]), l, r)
			}
		}
		if l, r := types.TypeString(ab.Apply(pair[0])), types.TypeString(ab.Apply(pair[1])); l != r && pair[1].TypeName() != "TRec" {
			t.Fatalf("unifier does not equate operands: %s != %s", l, r)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	a, b, c := TVar("a"), TVar("b"), TVar("c")
	integer := TCon(types.Integer)
	s := NewSolver(nil)
	subst, err := s.Unify(TFun2(a, b, a), TFun2(b, integer, c))
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []types.Type{a, b, c, TFun2(a, b, c)} {
		once := subst.Apply(x)
		twice := subst.Apply(once)
		if types.TypeString(once) != types.TypeString(twice) {
			t.Fatalf("apply is not idempotent: %s != %s", types.TypeString(once), types.TypeString(twice))
		}
	}
	if ts := types.TypeString(subst.Apply(TFun2(a, b, c))); ts != "(integer, integer) -> integer" {
		t.Fatalf("type: %s", ts)
	}
}

func TestUnifyVarsMergesClasses(t *testing.T) {
	a, b := types.NewVarGen().NewList(2)[0].(*types.TVar), types.NewNamedVar("b", types.Num)
	a.AddConstraint(types.Eq)
	s := NewSolver(nil)
	subst, err := s.Unify(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Constraints().HasAll(types.ClassSet{types.Num, types.Eq}) || !b.Constraints().HasAll(types.ClassSet{types.Num, types.Eq}) {
		t.Fatalf("classes not merged: %s / %s", a.Constraints(), b.Constraints())
	}
	// The generated variable is older than the named variable.
	if ts := types.TypeString(subst.Apply(b)); ts != a.Id {
		t.Fatalf("expected %s, found %s", a.Id, ts)
	}
}

func TestClassCheckAtBind(t *testing.T) {
	s := NewSolver(registry{types.Integer: {types.Num, types.Ord, types.Eq, types.Show}})

	num := types.NewNamedVar("n", types.Num)
	if _, err := s.Unify(num, types.NewCon(types.Integer)); err != nil {
		t.Fatalf("integer should satisfy Num: %v", err)
	}

	num = types.NewNamedVar("n", types.Num)
	_, err := s.Unify(TCon(types.String), num)
	var classErr *ClassConstraintError
	if !errors.As(err, &classErr) {
		t.Fatalf("expected class constraint error, found %v", err)
	}
	if err.Error() != "Type 'string' does not satisfy constraint 'Num'" {
		t.Fatalf("error: %s", err)
	}

	// Every attached class must be satisfied.
	both := types.NewNamedVar("m", types.Num, types.Stringable)
	if _, err = s.Unify(both, types.NewCon(types.Integer)); !errors.As(err, &classErr) {
		t.Fatalf("expected class constraint error, found %v", err)
	}
	if len(classErr.Classes) != 1 || classErr.Classes[0] != types.Stringable {
		t.Fatalf("missing classes: %s", classErr.Classes)
	}
}

func TestUnifyRecords(t *testing.T) {
	integer := TCon(types.Integer)
	s := NewSolver(nil)

	narrow := TRecord("Point", map[string]types.Type{"x": integer})
	wide := TRecord("Point", map[string]types.Type{"x": integer, "y": integer})
	if _, err := s.Unify(wide, narrow); err != nil {
		t.Fatal(err)
	}

	_, err := s.Unify(narrow, wide)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected missing field error, found %v", err)
	}
	if err.Error() != "Missing field 'y' in type 'Point'" {
		t.Fatalf("error: %s", err)
	}

	// An anonymous record unifies with a named record in either position.
	anon := TRecord("", map[string]types.Type{"x": TVar("a")})
	if _, err := s.Unify(anon, wide); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Unify(wide, anon); err != nil {
		t.Fatal(err)
	}

	other := TRecord("Size", map[string]types.Type{"x": integer})
	var mismatch *MismatchError
	if _, err := s.Unify(narrow, other); !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch error, found %v", err)
	}
}

func TestUnifyMapWithRecord(t *testing.T) {
	a := TVar("a")
	integer, str := TCon(types.Integer), TCon(types.String)
	s := NewSolver(nil)

	subst, err := s.Unify(TConEx(types.MapName, a), TRecord("", map[string]types.Type{"x": integer, "y": integer}))
	if err != nil {
		t.Fatal(err)
	}
	if ts := types.TypeString(subst.Apply(a)); ts != "integer" {
		t.Fatalf("type: %s", ts)
	}

	_, err = s.Unify(TConEx(types.MapName, integer), TRecord("", map[string]types.Type{"x": integer, "y": str}))
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch error, found %v", err)
	}

	if _, err = s.Unify(TArray(integer), TRecord("", nil)); !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch error, found %v", err)
	}
}

func TestUnifyMismatch(t *testing.T) {
	s := NewSolver(nil)
	cases := []struct {
		a, b types.Type
		msg  string
	}{
		{TCon(types.Integer), TCon(types.String), "Types mismatch: Can't unify 'integer' with 'string'"},
		{TArray(TCon(types.Integer)), TPromise(TCon(types.Integer)), "Types mismatch: Can't unify 'Array<integer>' with 'Promise<integer>'"},
		{TFun1(TCon(types.Integer), TCon(types.Integer)), TFun2(TVar("a"), TVar("b"), TVar("c")), "Types mismatch: Can't unify '(integer) -> integer' with '(a, b) -> c'"},
	}
	for _, c := range cases {
		_, err := s.Unify(c.a, c.b)
		if err == nil || err.Error() != c.msg {
			t.Fatalf("expected %q, found %v", c.msg, err)
		}
	}
}

func TestSolveInOrder(t *testing.T) {
	a, b := TVar("a"), TVar("b")
	s := NewSolver(nil)
	s.Equal(a, TCon(types.Integer))
	s.Equal(b, a)
	s.Add(Constraint{Kind: TypeClassCon, Left: b, Class: types.Stringable})
	subst, err := s.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if ts := types.TypeString(subst.Apply(b)); ts != "integer" {
		t.Fatalf("type: %s", ts)
	}
	if len(s.Constraints()) != 3 {
		t.Fatalf("constraints: %v", s.Constraints())
	}
	if s.Constraints()[1].String() != "EQUALITY_CON b ~ a" {
		t.Fatalf("constraint: %s", s.Constraints()[1])
	}
	s.Reset()
	if len(s.Constraints()) != 0 {
		t.Fatalf("expected no constraints after reset")
	}
}

func TestSolveCollectsErrors(t *testing.T) {
	a := TVar("a")
	s := NewSolver(nil)
	s.Equal(TCon(types.Integer), TCon(types.String))
	s.Equal(a, TCon(types.Boolean))
	s.Equal(TCon(types.Boolean), TCon(types.Integer))
	subst, err := s.Solve()
	var typeErrs *TypeErrors
	if !errors.As(err, &typeErrs) {
		t.Fatalf("expected type errors, found %v", err)
	}
	if len(typeErrs.Errors) != 2 {
		t.Fatalf("expected 2 errors, found %d", len(typeErrs.Errors))
	}
	if !strings.HasPrefix(err.Error(), "Types errors found:\n") {
		t.Fatalf("error: %s", err)
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected a mismatch error within %v", err)
	}
	// Constraints which were solved are kept.
	if ts := types.TypeString(subst.Apply(a)); ts != "boolean" {
		t.Fatalf("type: %s", ts)
	}
}

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

package types_test

import (
	"testing"

	. "github.com/wdamron/tinfer/types"
)

func TestVarGen(t *testing.T) {
	gen := NewVarGen()
	a, b := gen.New(), gen.New()
	if a.Id != "T0" || b.Id != "T1" || gen.Peek() != 2 {
		t.Fatalf("ids: %s %s", a.Id, b.Id)
	}
	list := gen.NewList(3)
	if len(list) != 3 || list[2].(*TVar).Id != "T4" {
		t.Fatalf("list: %v", list)
	}

	ordered := [][2]string{{"T2", "T10"}, {"T9", "a"}, {"a", "b"}, {"T", "Ta"}}
	for _, pair := range ordered {
		if VarOrder(pair[0], pair[1]) != -1 || VarOrder(pair[1], pair[0]) != 1 {
			t.Fatalf("expected %s before %s", pair[0], pair[1])
		}
	}
	if VarOrder("T3", "T3") != 0 {
		t.Fatalf("expected equal order")
	}
}

func TestClassSet(t *testing.T) {
	cs := ClassSet{Num}.With(Eq, Num)
	if len(cs) != 2 || !cs.Has("Num") || !cs.Has("Eq") || cs.Has("Ord") {
		t.Fatalf("set: %s", cs)
	}
	if !cs.HasAll(ClassSet{Eq}) || cs.HasAll(ClassSet{Eq, Ord}) {
		t.Fatalf("has all: %s", cs)
	}
	if missing := cs.Missing(ClassSet{Ord, Eq, Show}); missing.String() != "'Ord', 'Show'" {
		t.Fatalf("missing: %s", missing)
	}
	if union := cs.Union(ClassSet{Show, Eq}); len(union) != 3 || union.Names()[2] != "Show" {
		t.Fatalf("union: %s", union)
	}
	if ClassSet(nil).Union(nil) != nil {
		t.Fatalf("expected empty union")
	}

	instances := PrimitiveInstances()
	if !instances[Integer].HasAll(ClassSet{Show, Num, Ord, Eq}) || instances[String].Has("Num") || !instances[String].Has("Stringable") {
		t.Fatalf("instances: %v", instances)
	}
}

func TestFieldMap(t *testing.T) {
	integer := NewCon(Integer)
	m := NewFieldMapBuilder().Set("y", integer).Set("x", integer).Set("z", integer).Delete("z").Build()
	if m.Len() != 2 {
		t.Fatalf("len: %d", m.Len())
	}
	if names := m.Names(); len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Fatalf("names: %v", names)
	}
	m2 := m.Set("w", NewCon(String))
	if m.Len() != 2 || m2.Len() != 3 {
		t.Fatalf("set modified the receiver")
	}
	if ft, ok := m2.Get("w"); !ok || TypeString(ft) != "string" {
		t.Fatalf("get: %v", ft)
	}
	if _, ok := EmptyFieldMap.Get("w"); ok {
		t.Fatalf("empty map has a field")
	}
	if SingletonFieldMap("a", integer).Len() != 1 {
		t.Fatalf("singleton")
	}
}

func TestSubst(t *testing.T) {
	a, b, c := NewNamedVar("a"), NewNamedVar("b"), NewNamedVar("c")
	integer := NewCon(Integer, Num)

	s := SingletonSubst(b, NewConArgs(ArrayName, a))
	s2 := s.Set("c", b)
	if s.Len() != 1 || s2.Len() != 2 {
		t.Fatalf("set modified the receiver")
	}
	if bound, ok := s2.Lookup("c"); !ok || bound != b {
		t.Fatalf("lookup: %v", bound)
	}
	if _, ok := EmptySubst.Lookup("a"); ok {
		t.Fatalf("empty subst has a binding")
	}
	if (Subst{}).Apply(a) != a {
		t.Fatalf("zero subst")
	}

	// Compose(x, y) applies y, then x.
	composed := Compose(SingletonSubst(a, integer), SingletonSubst(c, NewArrow([]Type{a}, b)))
	if ts := TypeString(composed.Apply(c)); ts != "(integer) -> b" {
		t.Fatalf("compose: %s", ts)
	}
	if ts := TypeString(composed.Apply(NewConArgs(PromiseName, a))); ts != "Promise<integer>" {
		t.Fatalf("apply: %s", ts)
	}
	// Rebuilt nodes carry copies of constraints.
	applied := composed.Apply(NewArrow([]Type{a}, integer)).(*TCon)
	if !applied.Return().Constraints().Has("Num") {
		t.Fatalf("constraints lost")
	}

	var ids []string
	composed.Range(func(id string, _ Type) bool {
		ids = append(ids, id)
		return true
	})
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Fatalf("range: %v", ids)
	}
}

func TestFreeVars(t *testing.T) {
	a, b := NewNamedVar("a"), NewNamedVar("b")
	rec := NewRec("Point", FieldMapOf(map[string]Type{"x": a, "y": NewConArgs(ArrayName, b)}))
	arrow := NewArrow([]Type{a, rec}, b)

	vs := FreeVars(arrow)
	if vs.Len() != 2 || vs.Vars()[0] != a || vs.Vars()[1] != b || !vs.Contains("b") {
		t.Fatalf("free vars: %v", vs.Vars())
	}
	if !Occurs("b", rec) || Occurs("c", arrow) {
		t.Fatalf("occurs")
	}
	if FreeVars(NewCon(Integer)).Len() != 0 {
		t.Fatalf("constants have no free vars")
	}
}

func TestEquality(t *testing.T) {
	a := NewNamedVar("a")
	if !Same(a, NewNamedVar("a")) || Same(NewCon(Integer), NewCon(Integer)) {
		t.Fatalf("same")
	}
	if !Equal(NewConArgs(ArrayName, a), NewConArgs(ArrayName, NewNamedVar("a"))) {
		t.Fatalf("equal constructors")
	}
	p1 := NewRec("P", SingletonFieldMap("x", NewCon(Integer)))
	p2 := NewRec("P", SingletonFieldMap("x", NewCon(Integer, Num)))
	if !Equal(p1, p2) || Equal(p1, NewRec(AnonRecord, p1.Fields)) {
		t.Fatalf("equal records")
	}
	if !IsMapCon(NewConArgs(MapName, a)) || IsMapCon(NewConArgs(ArrayName, a)) {
		t.Fatalf("map constructors")
	}
}

func TestTypeString(t *testing.T) {
	n := NewNamedVar("n", Num, Ord)
	e := NewNamedVar("e", Eq)
	cases := []struct {
		t           Type
		plain, full string
	}{
		{NewCon(Integer), "integer", "integer"},
		{NewConArgs(ArrayName, NewConArgs(PromiseName, NewCon(String))), "Array<Promise<string>>", "Array<Promise<string>>"},
		{NewArrow(nil, NewCon(Void)), "() -> void", "() -> void"},
		{NewArrow([]Type{n, n}, NewCon(Boolean)), "(n, n) -> boolean", "(Num n, Ord n) => (n, n) -> boolean"},
		{NewArrow([]Type{n}, e), "(n) -> e", "(Num n, Ord n, Eq e) => (n) -> e"},
		{NewArrow([]Type{e}, e), "(e) -> e", "Eq e => (e) -> e"},
		{NewRec("Point", FieldMapOf(map[string]Type{"x": NewCon(Integer), "y": NewCon(Float)})), "Point { x: integer, y: float }", "Point { x: integer, y: float }"},
		{NewRec(AnonRecord, SingletonFieldMap("a", e)), "{ a: e }", "Eq e => { a: e }"},
		{NewRec("Empty", EmptyFieldMap), "Empty {}", "Empty {}"},
	}
	for _, c := range cases {
		if s := TypeString(c.t); s != c.plain {
			t.Fatalf("expected %s, found %s", c.plain, s)
		}
		if s := TypeStringWithClasses(c.t); s != c.full {
			t.Fatalf("expected %s, found %s", c.full, s)
		}
	}
}

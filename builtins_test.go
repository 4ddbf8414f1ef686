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
	"strconv"
	"strings"
	"testing"

	. "github.com/wdamron/tinfer"

	"github.com/wdamron/tinfer/types"
)

func TestDefaultBuiltins(t *testing.T) {
	b := DefaultBuiltins()
	names := b.Names()
	if strings.Join(names, ",") != "fetchJS,fetch_inbuilt,print" {
		t.Fatalf("names: %v", names)
	}
	if b["print"].Kind != BuiltinFunction || b["print"].Signature != "<T>(args: T) -> integer" {
		t.Fatalf("print: %+v", b["print"])
	}

	c := mustCheck(t, `let x = 1;`)
	if ts := types.TypeString(c.Lookup("fetch_inbuilt")); !strings.HasPrefix(ts, "(string, T") || !strings.Contains(ts, ") -> Promise<T") {
		t.Fatalf("fetch_inbuilt: %s", ts)
	}
}

func TestBuiltinSignaturesShareVarGen(t *testing.T) {
	gen := types.NewVarGen()
	c := NewChecker(WithVarGen(gen))
	if _, err := c.Check("", `let x = fetchJS("http://x", 1); let y = fetch_inbuilt("http://y", 2);`, DefaultBuiltins()); err != nil {
		t.Fatal(err)
	}

	seq := func(tv *types.TVar) uint64 {
		n, err := strconv.ParseUint(strings.TrimPrefix(tv.Id, "T"), 10, 64)
		if err != nil || n >= gen.Peek() {
			t.Fatalf("%s was not allocated by the checker's generator (next id T%d)", tv.Id, gen.Peek())
		}
		return n
	}

	owner := make(map[string]string)
	var lastBuiltin uint64
	for _, name := range DefaultBuiltins().Names() {
		for _, tv := range types.FreeVars(c.Lookup(name)).Vars() {
			if prev, ok := owner[tv.Id]; ok {
				t.Fatalf("%s is shared by the signatures of %s and %s", tv.Id, prev, name)
			}
			owner[tv.Id] = name
			if n := seq(tv); n > lastBuiltin {
				lastBuiltin = n
			}
		}
	}
	if len(owner) == 0 {
		t.Fatalf("expected generic builtin signatures")
	}

	for _, name := range []string{"x", "y"} {
		vars := types.FreeVars(c.Lookup(name)).Vars()
		if len(vars) == 0 {
			t.Fatalf("%s: expected an unresolved type-variable, found %s", name, types.TypeString(c.Lookup(name)))
		}
		for _, tv := range vars {
			if prev, ok := owner[tv.Id]; ok {
				t.Fatalf("%s: %s collides with the signature of %s", name, tv.Id, prev)
			}
			if seq(tv) <= lastBuiltin {
				t.Fatalf("%s: %s was allocated before the builtin signatures were bound", name, tv.Id)
			}
		}
	}
}

func TestLoadBuiltins(t *testing.T) {
	doc := `
builtins:
  - name: version
    kind: variable
    signature: string
  - name: exit
    kind: variable
  - name: sum
    kind: function
    signature: "<T: Num>(xs: Array<T>) -> T"
`
	b, err := LoadBuiltins(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	c := NewChecker(WithVarGen(types.NewVarGen()))
	if _, err := c.Check("", `let v = version; let e = exit; let s = sum([1.5]); let n = sum([1]);`, b); err != nil {
		t.Fatal(err)
	}
	for name, expected := range map[string]string{"v": "string", "e": "void", "s": "float", "n": "integer"} {
		if ts := types.TypeString(c.Lookup(name)); ts != expected {
			t.Fatalf("%s: expected %s, found %s", name, expected, ts)
		}
	}

	_, err = c.Check("", `let s = sum(["a"]);`, b)
	var classErr *ClassConstraintError
	if !errors.As(err, &classErr) {
		t.Fatalf("expected class constraint error, found %v", err)
	}
}

func TestParseBuiltinsErrors(t *testing.T) {
	cases := []struct {
		doc, msg string
	}{
		{"builtins: [{kind: function}]", "builtin 0 has no name"},
		{"builtins: [{name: f, kind: macro}]", `builtin f has unknown kind "macro"`},
		{"builtins: {", "failed to parse builtins"},
	}
	for _, tc := range cases {
		_, err := ParseBuiltins([]byte(tc.doc))
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Fatalf("%s: expected %q, found %v", tc.doc, tc.msg, err)
		}
	}

	// Signatures are resolved when bound.
	b, err := ParseBuiltins([]byte("builtins: [{name: f, kind: function, signature: '(x: Foo) -> integer'}]"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewChecker().Check("", `let x = 1;`, b)
	if err == nil || err.Error() != "builtin f: Couldn't find generic type <Foo>" {
		t.Fatalf("error: %v", err)
	}
}

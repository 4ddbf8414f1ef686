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

package parser_test

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/parser"
)

func TestParsePrograms(t *testing.T) {
	cases := []struct{ src, want string }{
		{`let a = 1;`, `let a = 1;`},
		{`let a = 1, b: string = "x";`, `let a = 1, b: string = "x";`},
		{`1 + 2 * 3;`, `1 + (2 * 3);`},
		{`1 - 2 - 3;`, `(1 - 2) - 3;`},
		{`a < b == c;`, `(a < b) == c;`},
		{`a && b || !c;`, `(a && b) || !c;`},
		{`x = y = 2;`, `x = (y = 2);`},
		{`p.x += 1;`, `p.x += 1;`},
		{`c ? a : b;`, `c ? a : b;`},
		{`f(1, "a")[0].b->c;`, `f(1, "a")[0].b->c;`},
		{`await fetch(url);`, `await fetch(url);`},
		{`i++;`, `i++;`},
		{`a, b;`, `(a, b);`},
		{`let p = Point { x: 1, y: 2 };`, `let p = Point { x: 1, y: 2 };`},
		{`let o = { a: 1, "b c": [1, 2] };`, `let o = { a: 1, b c: [1, 2] };`},
		{`fun add(a, b) { return a + b; }`, `fun add(a, b) { return a + b; }`},
		{`async fun get<T: Show + Eq>(url: string, ...rest): T { return url; }`, `async fun get<T: Show + Eq>(url: string, ...rest): T { return url; }`},
		{`let id = fun (x) { x };`, `let id = fun (x) { x; };`},
		{`if (a) { b; } else c;`, `if (a) { b; } else c;`},
		{`while (true) { break; continue; }`, `while (true) { break; continue; }`},
		{`for (let i = 0; i < 10; i++) {}`, `for (let i = 0; i < 10; i++) {}`},
		{`for (;;) {}`, `for (; ; ) {}`},
		{`struct Box<T> { value, other: Array<T> }`, `struct Box<T> { value, other: Array<T> }`},
		{`enum Shape<T> { Empty, Circle(T), Rect { w: T, h: T }, Unit = 1 }`, `enum Shape<T> { Empty, Circle(T), Rect { w: T, h: T }, Unit = 1 }`},
		{`let m: Map<string, Array<Array<integer>>> = {};`, `let m: Map<string, Array<Array<integer>>> = {};`},
		{`let b: struct Box<string> = Box { value: "hi" };`, `let b: struct Box<string> = Box { value: "hi" };`},
		{`let f: (a: integer, string) -> Promise<boolean> = g;`, `let f: (a: integer, string) -> Promise<boolean> = g;`},
	}
	for _, c := range cases {
		prog, err := parser.ParseString(c.src)
		if err != nil {
			t.Errorf("%s: %v", c.src, err)
			continue
		}
		if got := ast.String(prog); got != c.want {
			t.Errorf("%s:\n  want: %s\n  got:  %s", c.src, c.want, got)
		}
	}
}

func TestParseAST(t *testing.T) {
	prog, err := parser.ParseString(`let c = a + b;`)
	if err != nil {
		t.Fatal(err)
	}
	expected := &ast.Program{Body: []ast.Node{
		&ast.Let{Vars: []*ast.Variable{{
			Name:  "c",
			Value: &ast.Binary{Op: "+", Left: &ast.Ident{Name: "a"}, Right: &ast.Ident{Name: "b"}},
		}}},
	}}
	if diff := pretty.Diff(expected, prog); len(diff) > 0 {
		pretty.Ldiff(t, expected, prog)
		t.Fail()
	}
}

func TestParseType(t *testing.T) {
	cases := []struct{ src, want string }{
		{`integer`, `integer`},
		{`<T, U>(url: string, opts: T) -> U`, `<T, U>(url: string, opts: T) -> U`},
		{`<T>(args: T) -> integer`, `<T>(args: T) -> integer`},
		{`<T: Num>(Array<T>) -> Promise<T>`, `<T: Num>(Array<T>) -> Promise<T>`},
		{`enum Option<integer>`, `enum Option<integer>`},
		{`() -> void`, `() -> void`},
	}
	for _, c := range cases {
		typ, err := parser.ParseTypeString(c.src)
		if err != nil {
			t.Errorf("%s: %v", c.src, err)
			continue
		}
		if got := ast.String(typ); got != c.want {
			t.Errorf("%s:\n  want: %s\n  got:  %s", c.src, c.want, got)
		}
	}

	typ, err := parser.ParseTypeString(`<T>(x: T) -> T`)
	if err != nil {
		t.Fatal(err)
	}
	generic, ok := typ.(*ast.GenericType)
	if !ok || len(generic.TypeParams) != 1 || generic.TypeParams[0].Name != "T" {
		t.Fatalf("expected generic type, got %# v", pretty.Formatter(typ))
	}
	if _, ok := generic.Base.(*ast.FuncType); !ok {
		t.Fatalf("expected function type, got %# v", pretty.Formatter(generic.Base))
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct{ src, msg string }{
		{`let a = 1 let`, `Expected ';' after variable declaration at line 1, column 11`},
		{`1 = 2;`, `Invalid assignment target at line 1, column 1`},
		{`fun f( { }`, `Expected Ident for parameter name at line 1, column 8`},
		{`let a = ;`, `Unexpected ';' at line 1, column 9`},
	}
	for _, c := range cases {
		_, err := parser.ParseString(c.src)
		var perr *parser.Error
		if !errors.As(err, &perr) {
			t.Errorf("%s: expected *parser.Error, got %v", c.src, err)
			continue
		}
		if perr.Error() != c.msg {
			t.Errorf("%s:\n  want: %s\n  got:  %s", c.src, c.msg, perr.Error())
		}
	}

	if _, err := parser.ParseTypeString(`Array<integer> x`); err == nil {
		t.Error("expected trailing-token error")
	}
}

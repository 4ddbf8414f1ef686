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

package construct_test

import (
	"testing"

	. "github.com/wdamron/tinfer/construct"

	"github.com/wdamron/tinfer"
	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/types"
)

func TestFreshVars(t *testing.T) {
	a, b := TVar(), TVar()
	if a.Id == b.Id {
		t.Fatalf("fresh type-variables share id %s", a.Id)
	}
	if TVar("x").Id != "x" {
		t.Fatalf("named type-variable")
	}
	if !TCon(types.Integer).Constraints().Has("Num") || TCon(types.Void).Constraints() != nil {
		t.Fatalf("constant classes")
	}
	fn := TFun([]types.Type{TConEx(types.MapName, TCon(types.String))}, TPromise(TArray(a)))
	if ts := types.TypeString(fn); ts != "(Map<string>) -> Promise<Array<"+a.Id+">>" {
		t.Fatalf("type: %s", ts)
	}
}

func TestBuildProgram(t *testing.T) {
	prog := Prog(
		LetAnn("ratio", Named(types.Float), Float("0.5")),
		Let("o", Object("name", Str("x"), "ok", Bool(true))),
		Let("name", Member(Var("o"), "name")),
		Let("twice", Lambda([]string{"f", "x"}, Stmt(Call(Var("f"), Call(Var("f"), Var("x")))))),
		Let("xs", Array(Int(1), Int(2))),
		Func("inc", []string{"n"}, Return(Binary("+", Var("n"), Int(1)))),
		Let("three", Call(Var("twice"), Var("inc"), Int(1))),
	)
	if s := ast.String(prog.Body[4]); s != "let xs = [1, 2];" {
		t.Fatalf("printed: %s", s)
	}

	c := tinfer.NewChecker(tinfer.WithVarGen(types.NewVarGen()))
	if _, err := c.Run(prog, nil); err != nil {
		t.Fatal(err)
	}
	expected := map[string]string{
		"ratio": "float",
		"o":     "{ name: string, ok: boolean }",
		"name":  "string",
		"twice": "((integer) -> integer, integer) -> integer",
		"xs":    "Array<integer>",
		"three": "integer",
	}
	for name, ts := range expected {
		if found := types.TypeString(c.Lookup(name)); found != ts {
			t.Fatalf("%s: expected %s, found %s", name, ts, found)
		}
	}
}

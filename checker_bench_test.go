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
	"testing"

	. "github.com/wdamron/tinfer"
	. "github.com/wdamron/tinfer/construct"

	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/types"
)

func BenchmarkRecursiveFunc(b *testing.B) {
	c := NewChecker(WithVarGen(types.NewVarGen()))
	builtins := DefaultBuiltins()

	n := Var("n")
	prog := Prog(
		Func("fact", []string{"n"},
			&ast.If{Cond: Binary("<", n, Int(1)), Then: Block(Return(Int(1)))},
			Return(Binary("*", n, Call(Var("fact"), Binary("-", n, Int(1))))),
		),
		Let("r", Call(Var("fact"), Int(5))),
		Stmt(Call(Var("print"), Var("r"))),
	)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Run(prog, builtins); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStructsAndEnums(b *testing.B) {
	c := NewChecker(WithVarGen(types.NewVarGen()))
	builtins := DefaultBuiltins()

	src := `
struct Box<T> { value }
enum Shape { Empty, Circle(float), Rect { w: float, h: float } }

let b: struct Box<string> = Box { value: "hi" };
let v = b.value + "!";
let shapes = [Shape.Empty, Shape.Circle(1.5), Shape.Rect({ w: 1.0, h: 2.0 })];

async fun load(url: string) {
	let res = await fetch_inbuilt(url, { retries: 3 });
	return res;
}
`

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Check("bench", src, builtins); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	gen := types.NewVarGen()
	vars := gen.NewList(64)
	integer := TCon(types.Integer)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := NewSolver(nil)
		for j := 1; j < len(vars); j++ {
			s.Equal(TFun1(vars[j-1], TArray(vars[j])), TFun1(vars[j], TArray(vars[j-1])))
		}
		s.Equal(vars[len(vars)-1], integer)
		subst, err := s.Solve()
		if err != nil {
			b.Fatal(err)
		}
		if types.TypeString(subst.Apply(vars[0])) != "integer" {
			b.Fatal("unsolved")
		}
	}
}

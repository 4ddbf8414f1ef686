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

package lexer_test

import (
	"testing"

	"github.com/kr/pretty"
	. "github.com/wdamron/tinfer/lexer"
	"golang.org/x/exp/slices"
)

func single(ttyp TokenType, pos Pos) Token {
	return Token{Type: ttyp, Span: Span{Start: pos, End: pos}}
}

func double(ttyp TokenType, start Pos) Token {
	return Token{Type: ttyp, Span: Span{Start: start, End: Pos{Offset: start.Offset + 1, Line: start.Line, Column: start.Column + 1}}}
}

func keyword(ttyp TokenType, start, end Pos) Token {
	return Token{Type: ttyp, Span: Span{Start: start, End: end}}
}

func dataTok(ttyp TokenType, start, end Pos, data string) Token {
	return Token{Type: ttyp, Span: Span{Start: start, End: end}, Data: data}
}

func exactEq(a, b Token) bool { return a == b }

func TestLexer(t *testing.T) {
	run := func(name, data string, expected []Token) {
		t.Run(name, func(t *testing.T) {
			got, err := Tokenize(data)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.EqualFunc(got, expected, exactEq) {
				pretty.Ldiff(t, expected, got)
				t.Fail()
			}
		})
	}

	run("empty", "", []Token{single(EOF, Pos{0, 1, 1})})

	run("singlechar", "+ ; ( ) { } < > = ! : .", []Token{
		single(Plus, Pos{0, 1, 1}),
		single(Semicolon, Pos{2, 1, 3}),
		single(LeftParen, Pos{4, 1, 5}),
		single(RightParen, Pos{6, 1, 7}),
		single(LeftBrace, Pos{8, 1, 9}),
		single(RightBrace, Pos{10, 1, 11}),
		single(LessThan, Pos{12, 1, 13}),
		single(GreaterThan, Pos{14, 1, 15}),
		single(Equals, Pos{16, 1, 17}),
		single(Not, Pos{18, 1, 19}),
		single(Colon, Pos{20, 1, 21}),
		single(Period, Pos{22, 1, 23}),
		single(EOF, Pos{23, 1, 24}),
	})

	run("doublechar", "-> && || <= >= == != += ++", []Token{
		double(RightArrow, Pos{0, 1, 1}),
		double(LogicalAnd, Pos{3, 1, 4}),
		double(LogicalOr, Pos{6, 1, 7}),
		double(LessThanEquals, Pos{9, 1, 10}),
		double(GreaterThanEquals, Pos{12, 1, 13}),
		double(LogicalEquals, Pos{15, 1, 16}),
		double(NotEquals, Pos{18, 1, 19}),
		double(PlusEquals, Pos{21, 1, 22}),
		double(Increment, Pos{24, 1, 25}),
		single(EOF, Pos{26, 1, 27}),
	})

	run("ellipsis", "...rest", []Token{
		keyword(Ellipsis, Pos{0, 1, 1}, Pos{2, 1, 3}),
		dataTok(Ident, Pos{3, 1, 4}, Pos{6, 1, 7}, "rest"),
		single(EOF, Pos{7, 1, 8}),
	})

	run("keywords", "fun let\nasync await", []Token{
		keyword(Fun, Pos{0, 1, 1}, Pos{2, 1, 3}),
		keyword(Let, Pos{4, 1, 5}, Pos{6, 1, 7}),
		keyword(Async, Pos{8, 2, 1}, Pos{12, 2, 5}),
		keyword(Await, Pos{14, 2, 7}, Pos{18, 2, 11}),
		single(EOF, Pos{19, 2, 12}),
	})

	run("identifiers", "_ a_b a12 अखिल", []Token{
		dataTok(Ident, Pos{0, 1, 1}, Pos{0, 1, 1}, "_"),
		dataTok(Ident, Pos{2, 1, 3}, Pos{4, 1, 5}, "a_b"),
		dataTok(Ident, Pos{6, 1, 7}, Pos{8, 1, 9}, "a12"),
		dataTok(Ident, Pos{10, 1, 11}, Pos{13, 1, 14}, "अखिल"),
		single(EOF, Pos{14, 1, 15}),
	})

	run("numbers", "0 12 1.5 1_000", []Token{
		dataTok(Number, Pos{0, 1, 1}, Pos{0, 1, 1}, "0"),
		dataTok(Number, Pos{2, 1, 3}, Pos{3, 1, 4}, "12"),
		dataTok(Number, Pos{5, 1, 6}, Pos{7, 1, 8}, "1.5"),
		dataTok(Number, Pos{9, 1, 10}, Pos{13, 1, 14}, "1000"),
		single(EOF, Pos{14, 1, 15}),
	})

	run("strings", `"hi" 'a\n'`, []Token{
		dataTok(String, Pos{0, 1, 1}, Pos{3, 1, 4}, "hi"),
		dataTok(String, Pos{5, 1, 6}, Pos{9, 1, 10}, "a\n"),
		single(EOF, Pos{10, 1, 11}),
	})

	run("comments", "a // b\n/* c */ d", []Token{
		dataTok(Ident, Pos{0, 1, 1}, Pos{0, 1, 1}, "a"),
		dataTok(Ident, Pos{15, 2, 9}, Pos{15, 2, 9}, "d"),
		single(EOF, Pos{16, 2, 10}),
	})
}

func TestLexerErrors(t *testing.T) {
	for _, src := range []string{`"unterminated`, "a @ b", "/* open", `"\q"`} {
		if _, err := Tokenize(src); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
	_, err := Tokenize("let x = 1;\nlet y = #;")
	if err == nil || err.Error() != "Unexpected character '#' at line 2, column 9" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokenText(t *testing.T) {
	toks, err := Tokenize("a += 1")
	if err != nil {
		t.Fatal(err)
	}
	got := []string{toks[0].Text(), toks[1].Text(), toks[2].Text()}
	if !slices.Equal(got, []string{"a", "+=", "1"}) {
		t.Fatalf("unexpected token text: %v", got)
	}
	if !toks[1].Type.IsAssignment() || toks[0].Type.IsAssignment() {
		t.Fatal("expected += to be an assignment operator")
	}
}

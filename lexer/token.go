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

package lexer

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type TokenType int

const (
	EOF TokenType = iota
	Illegal

	Plus
	Minus
	Times
	Divide
	Remainder
	And
	Or
	Caret
	Tilde
	Not
	LessThan
	GreaterThan
	Equals
	Colon
	Comma
	Period
	Semicolon
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	QuestionMark

	LogicalAnd
	LogicalOr
	LeftShift
	RightShift
	LogicalEquals
	NotEquals
	LessThanEquals
	GreaterThanEquals
	RightArrow
	PlusEquals
	MinusEquals
	TimesEquals
	DivideEquals
	RemainderEquals
	AndEquals
	OrEquals
	CaretEquals
	Increment
	Decrement

	Ellipsis
	LeftShiftEquals
	RightShiftEquals

	Fun
	Async
	Await
	Let
	If
	Else
	While
	For
	Return
	Break
	Continue
	Struct
	Enum
	True
	False

	Ident
	Number
	String
)

var tokenNames = [...]string{
	EOF:               "EOF",
	Illegal:           "Illegal",
	Plus:              "'+'",
	Minus:             "'-'",
	Times:             "'*'",
	Divide:            "'/'",
	Remainder:         "'%'",
	And:               "'&'",
	Or:                "'|'",
	Caret:             "'^'",
	Tilde:             "'~'",
	Not:               "'!'",
	LessThan:          "'<'",
	GreaterThan:       "'>'",
	Equals:            "'='",
	Colon:             "':'",
	Comma:             "','",
	Period:            "'.'",
	Semicolon:         "';'",
	LeftParen:         "'('",
	RightParen:        "')'",
	LeftBrace:         "'{'",
	RightBrace:        "'}'",
	LeftBracket:       "'['",
	RightBracket:      "']'",
	QuestionMark:      "'?'",
	LogicalAnd:        "'&&'",
	LogicalOr:         "'||'",
	LeftShift:         "'<<'",
	RightShift:        "'>>'",
	LogicalEquals:     "'=='",
	NotEquals:         "'!='",
	LessThanEquals:    "'<='",
	GreaterThanEquals: "'>='",
	RightArrow:        "'->'",
	PlusEquals:        "'+='",
	MinusEquals:       "'-='",
	TimesEquals:       "'*='",
	DivideEquals:      "'/='",
	RemainderEquals:   "'%='",
	AndEquals:         "'&='",
	OrEquals:          "'|='",
	CaretEquals:       "'^='",
	Increment:         "'++'",
	Decrement:         "'--'",
	Ellipsis:          "'...'",
	LeftShiftEquals:   "'<<='",
	RightShiftEquals:  "'>>='",
	Fun:               "fun",
	Async:             "async",
	Await:             "await",
	Let:               "let",
	If:                "if",
	Else:              "else",
	While:             "while",
	For:               "for",
	Return:            "return",
	Break:             "break",
	Continue:          "continue",
	Struct:            "struct",
	Enum:              "enum",
	True:              "true",
	False:             "false",
	Ident:             "Ident",
	Number:            "Number",
	String:            "String",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenNames[t]
}

var SingleCharTokens = map[rune]TokenType{
	'+': Plus,
	'-': Minus,
	'*': Times,
	'/': Divide,
	'%': Remainder,
	'&': And,
	'|': Or,
	'^': Caret,
	'~': Tilde,
	'!': Not,
	'<': LessThan,
	'>': GreaterThan,
	'=': Equals,
	':': Colon,
	',': Comma,
	'.': Period,
	';': Semicolon,
	'(': LeftParen,
	')': RightParen,
	'{': LeftBrace,
	'}': RightBrace,
	'[': LeftBracket,
	']': RightBracket,
	'?': QuestionMark,
	eof: EOF,
}

var DoubleCharTokens = map[[2]rune]TokenType{
	{'&', '&'}: LogicalAnd,
	{'|', '|'}: LogicalOr,
	{'<', '<'}: LeftShift,
	{'>', '>'}: RightShift,
	{'=', '='}: LogicalEquals,
	{'!', '='}: NotEquals,
	{'<', '='}: LessThanEquals,
	{'>', '='}: GreaterThanEquals,
	{'-', '>'}: RightArrow,
	{'+', '='}: PlusEquals,
	{'-', '='}: MinusEquals,
	{'*', '='}: TimesEquals,
	{'/', '='}: DivideEquals,
	{'%', '='}: RemainderEquals,
	{'&', '='}: AndEquals,
	{'|', '='}: OrEquals,
	{'^', '='}: CaretEquals,
	{'+', '+'}: Increment,
	{'-', '-'}: Decrement,
}

var TripleCharTokens = map[[3]rune]TokenType{
	{'.', '.', '.'}: Ellipsis,
	{'<', '<', '='}: LeftShiftEquals,
	{'>', '>', '='}: RightShiftEquals,
}

var Keywords = map[string]TokenType{
	"fun":      Fun,
	"async":    Async,
	"await":    Await,
	"let":      Let,
	"if":       If,
	"else":     Else,
	"while":    While,
	"for":      For,
	"return":   Return,
	"break":    Break,
	"continue": Continue,
	"struct":   Struct,
	"enum":     Enum,
	"true":     True,
	"false":    False,
}

// AssignmentOps are the token types of `=` and the compound assignment operators.
var AssignmentOps = []TokenType{
	Equals, PlusEquals, MinusEquals, TimesEquals, DivideEquals, RemainderEquals,
	AndEquals, OrEquals, CaretEquals, LeftShiftEquals, RightShiftEquals,
}

func (t TokenType) IsAssignment() bool { return slices.Contains(AssignmentOps, t) }

type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

type Token struct {
	Type TokenType
	Span Span
	Data string
}

func (t Token) String() string {
	if t.Data == "" {
		return fmt.Sprintf("%s:%s", t.Span, t.Type)
	}
	return fmt.Sprintf("%s:%s %q", t.Span, t.Type, t.Data)
}

// Text returns the source text of the token: the data of identifiers and literals, or the
// operator/keyword spelling.
func (t Token) Text() string {
	if t.Data != "" {
		return t.Data
	}
	name := t.Type.String()
	if len(name) > 2 && name[0] == '\'' {
		return name[1 : len(name)-1]
	}
	return name
}

func (t Token) Eq(o Token) bool { return t.Type == o.Type && t.Data == o.Data }

const MinPrec = 1

var binaryPrec = map[TokenType]int{
	LogicalOr:         1,
	LogicalAnd:        2,
	Or:                3,
	Caret:             4,
	And:               5,
	LogicalEquals:     6,
	NotEquals:         6,
	LessThan:          7,
	GreaterThan:       7,
	LessThanEquals:    7,
	GreaterThanEquals: 7,
	LeftShift:         8,
	RightShift:        8,
	Plus:              9,
	Minus:             9,
	Times:             10,
	Divide:            10,
	Remainder:         10,
}

// IsBinaryOp returns true for infix operators. All infix operators are left-associative.
func (t TokenType) IsBinaryOp() bool {
	_, ok := binaryPrec[t]
	return ok
}

// Prec returns the binding power of an infix operator, or 0 for other tokens.
func (t TokenType) Prec() int { return binaryPrec[t] }

func (t TokenType) IsPrefixOp() bool {
	switch t {
	case Not, Minus, Plus, Tilde, Increment, Decrement:
		return true
	}
	return false
}

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
	"strings"
	"unicode"

	"github.com/smasher164/xid"
)

type Lexer struct {
	src  []rune
	ch   rune
	pos  int
	line int
	col  int
}

const eof = -1

// New creates a lexer over src.
func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), pos: -1, line: 1}
	l.next()
	return l
}

// Error reports an illegal token.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
}

// Tokenize lexes all of src. The returned tokens end with an EOF token.
func Tokenize(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok := l.Next()
		if tok.Type == Illegal {
			return nil, &Error{Pos: tok.Span.Start, Msg: tok.Data}
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

func isLetter(ch rune) bool { return ch == '_' || ch == '$' || xid.Start(ch) }

func isDecimal(ch rune) bool { return '0' <= ch && ch <= '9' }

func (l *Lexer) next() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.pos++
	l.col++
	if l.pos < len(l.src) {
		l.ch = l.src[l.pos]
	} else {
		l.pos = len(l.src)
		l.ch = eof
	}
}

func (l *Lexer) peekN(n int) rune {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}
	return eof
}

func (l *Lexer) here() Pos { return Pos{Offset: l.pos, Line: l.line, Column: l.col} }

func (l *Lexer) skipTrivia() *Token {
	for {
		switch {
		case unicode.IsSpace(l.ch):
			l.next()
		case l.ch == '/' && l.peekN(1) == '/':
			for l.ch != '\n' && l.ch != eof {
				l.next()
			}
		case l.ch == '/' && l.peekN(1) == '*':
			start := l.here()
			l.next()
			l.next()
			for !(l.ch == '*' && l.peekN(1) == '/') {
				if l.ch == eof {
					return &Token{Type: Illegal, Span: Span{start, start}, Data: "unterminated comment"}
				}
				l.next()
			}
			l.next()
			l.next()
		default:
			return nil
		}
	}
}

// Next returns the next token, skipping whitespace and comments.
func (l *Lexer) Next() Token {
	if illegal := l.skipTrivia(); illegal != nil {
		return *illegal
	}
	start := l.here()
	switch {
	case l.ch == eof:
		return Token{Type: EOF, Span: Span{start, start}}
	case isLetter(l.ch):
		return l.lexIdentOrKeyword(start)
	case isDecimal(l.ch):
		return l.lexNumber(start)
	case l.ch == '"' || l.ch == '\'':
		return l.lexString(start)
	}
	if ttyp, ok := TripleCharTokens[[3]rune{l.ch, l.peekN(1), l.peekN(2)}]; ok {
		l.next()
		l.next()
		end := l.here()
		l.next()
		return Token{Type: ttyp, Span: Span{start, end}}
	}
	if ttyp, ok := DoubleCharTokens[[2]rune{l.ch, l.peekN(1)}]; ok {
		l.next()
		end := l.here()
		l.next()
		return Token{Type: ttyp, Span: Span{start, end}}
	}
	if ttyp, ok := SingleCharTokens[l.ch]; ok {
		l.next()
		return Token{Type: ttyp, Span: Span{start, start}}
	}
	ch := l.ch
	l.next()
	return Token{Type: Illegal, Span: Span{start, start}, Data: fmt.Sprintf("Unexpected character %q", ch)}
}

func (l *Lexer) lexIdentOrKeyword(start Pos) Token {
	var sb strings.Builder
	end := start
	for isLetter(l.ch) || xid.Continue(l.ch) {
		end = l.here()
		sb.WriteRune(l.ch)
		l.next()
	}
	ident := sb.String()
	if ttyp, ok := Keywords[ident]; ok {
		return Token{Type: ttyp, Span: Span{start, end}}
	}
	return Token{Type: Ident, Span: Span{start, end}, Data: ident}
}

func (l *Lexer) lexNumber(start Pos) Token {
	var sb strings.Builder
	end := start
	for isDecimal(l.ch) || l.ch == '_' {
		end = l.here()
		if l.ch != '_' {
			sb.WriteRune(l.ch)
		}
		l.next()
	}
	// `1.5` is a float; `1..` and `1.x` are not part of the number.
	if l.ch == '.' && isDecimal(l.peekN(1)) {
		sb.WriteRune('.')
		l.next()
		for isDecimal(l.ch) {
			end = l.here()
			sb.WriteRune(l.ch)
			l.next()
		}
	}
	return Token{Type: Number, Span: Span{start, end}, Data: sb.String()}
}

func (l *Lexer) lexString(start Pos) Token {
	delim := l.ch
	l.next()
	var sb strings.Builder
	for l.ch != delim {
		switch l.ch {
		case eof, '\n':
			return Token{Type: Illegal, Span: Span{start, l.here()}, Data: "unterminated string literal"}
		case '\\':
			l.next()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '0':
				sb.WriteByte(0)
			case '\\', '"', '\'':
				sb.WriteRune(l.ch)
			default:
				return Token{Type: Illegal, Span: Span{start, l.here()}, Data: fmt.Sprintf("unknown escape sequence '\\%c'", l.ch)}
			}
		default:
			sb.WriteRune(l.ch)
		}
		l.next()
	}
	end := l.here()
	l.next()
	return Token{Type: String, Span: Span{start, end}, Data: sb.String()}
}

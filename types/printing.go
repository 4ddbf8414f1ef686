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

package types

import (
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{preds: make(map[string][]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.preds {
		delete(p.preds, k)
	}
	p.order = p.order[:0]
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	preds map[string][]string
	order []string
	sb    strings.Builder
}

// TypeString returns a string representation of a Type.
//
//	integer
//	Array<T3>
//	(integer, string) -> boolean
//	Point { x: integer, y: integer }
//	{ a: string }
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStringWithClasses returns a string representation of a Type, prefixed by the type-classes
// attached to its type-variables: `(Num T1, Ord T1) => (T1, T1) -> boolean`
func TypeStringWithClasses(t Type) string {
	p := newTypePrinter()
	typeString(p, t)
	if len(p.order) == 0 {
		s := p.sb.String()
		p.Release()
		return s
	}

	var sb strings.Builder
	multiplePreds := len(p.order) > 1 || len(p.preds[p.order[0]]) > 1
	if multiplePreds {
		sb.WriteByte('(')
	}
	for i, id := range p.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		for j, pred := range p.preds[id] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(pred)
			sb.WriteByte(' ')
			sb.WriteString(id)
		}
	}
	if multiplePreds {
		sb.WriteByte(')')
	}
	sb.WriteString(" => ")
	sb.WriteString(p.sb.String())
	p.Release()
	return sb.String()
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString(Unknown)

	case *TVar:
		p.sb.WriteString(t.Id)
		if len(t.constraints) == 0 {
			return
		}
		if _, seen := p.preds[t.Id]; seen {
			return
		}
		p.preds[t.Id] = t.constraints.Names()
		p.order = append(p.order, t.Id)

	case *TCon:
		if t.IsArrow() {
			p.sb.WriteByte('(')
			for i, param := range t.Params() {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, param)
			}
			p.sb.WriteString(") -> ")
			typeString(p, t.Return())
			return
		}
		p.sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		p.sb.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, arg)
		}
		p.sb.WriteByte('>')

	case *TRec:
		if !t.IsAnonymous() {
			p.sb.WriteString(t.Name)
			p.sb.WriteByte(' ')
		}
		if t.Fields.Len() == 0 {
			p.sb.WriteString("{}")
			return
		}
		p.sb.WriteString("{ ")
		i := 0
		t.Fields.Range(func(name string, ft Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			i++
			p.sb.WriteString(name)
			p.sb.WriteString(": ")
			typeString(p, ft)
			return true
		})
		p.sb.WriteString(" }")
	}
}

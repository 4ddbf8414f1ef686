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

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// Nominal type-class: membership is decided by name, not by the method set.
type TypeClass struct {
	Name    string
	Methods []string
}

// Predefined type-classes
var (
	Num        = &TypeClass{Name: "Num", Methods: []string{"+", "-", "*", "/"}}
	Stringable = &TypeClass{Name: "Stringable", Methods: []string{"+"}}
	Ord        = &TypeClass{Name: "Ord", Methods: []string{"<", ">", "<=", ">="}}
	Eq         = &TypeClass{Name: "Eq", Methods: []string{"==", "!="}}
	Show       = &TypeClass{Name: "Show", Methods: []string{"str"}}
	Struct     = &TypeClass{Name: "Struct", Methods: []string{}}
)

// Classes lists the predefined type-classes.
func Classes() []*TypeClass { return []*TypeClass{Num, Stringable, Ord, Eq, Show, Struct} }

// PrimitiveInstances lists the predefined class memberships of the primitive type-constructors.
func PrimitiveInstances() map[string]ClassSet {
	return map[string]ClassSet{
		Integer: {Show, Num, Ord, Eq},
		Float:   {Show, Num, Ord, Eq},
		String:  {Show, Stringable, Eq},
		Boolean: {Show, Eq},
	}
}

// ClassSet is an ordered set of type-classes, keyed by class name.
type ClassSet []*TypeClass

// Has returns true if the set contains a class with the given name.
func (cs ClassSet) Has(name string) bool {
	return lo.ContainsBy(cs, func(tc *TypeClass) bool { return tc.Name == name })
}

// HasAll returns true if every class in required is in the set.
func (cs ClassSet) HasAll(required ClassSet) bool {
	for _, tc := range required {
		if !cs.Has(tc.Name) {
			return false
		}
	}
	return true
}

// Missing returns the classes in required which are not in the set.
func (cs ClassSet) Missing(required ClassSet) ClassSet {
	return lo.Filter(required, func(tc *TypeClass, _ int) bool { return !cs.Has(tc.Name) })
}

// With returns a set containing cs and the given classes. The receiver is not modified.
func (cs ClassSet) With(classes ...*TypeClass) ClassSet {
	if len(classes) == 0 {
		return cs
	}
	return cs.Union(classes)
}

// Union returns a new set with the classes of both sets (by name), in first-occurrence order.
func (cs ClassSet) Union(other ClassSet) ClassSet {
	if len(cs)+len(other) == 0 {
		return nil
	}
	seen := set.New[string](len(cs) + len(other))
	union := make(ClassSet, 0, len(cs)+len(other))
	for _, tc := range append(append(make(ClassSet, 0, len(cs)+len(other)), cs...), other...) {
		if tc != nil && seen.Insert(tc.Name) {
			union = append(union, tc)
		}
	}
	return union
}

// Names returns the class names in order.
func (cs ClassSet) Names() []string {
	return lo.Map(cs, func(tc *TypeClass, _ int) string { return tc.Name })
}

// String formats the set as `'Num', 'Eq'`.
func (cs ClassSet) String() string {
	quoted := lo.Map(cs, func(tc *TypeClass, _ int) string { return "'" + tc.Name + "'" })
	return strings.Join(quoted, ", ")
}

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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyFieldMap = FieldMap{emptyMap}

// FieldMap contains immutable mappings from field names to types. Entries are sorted by name.
type FieldMap struct {
	m *immutable.SortedMap
}

func NewFieldMap() FieldMap { return FieldMap{emptyMap} }

// Create a FieldMap from a Go map.
func FieldMapOf(m map[string]Type) FieldMap {
	b := NewFieldMapBuilder()
	for name, t := range m {
		b.Set(name, t)
	}
	return b.Build()
}

// Create a FieldMap with a single entry.
func SingletonFieldMap(name string, t Type) FieldMap {
	return FieldMap{emptyMap.Set(name, t)}
}

// Get the number of entries in the map.
func (m FieldMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type of a field.
func (m FieldMap) Get(name string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of the map with the given entry added or replaced.
func (m FieldMap) Set(name string, t Type) FieldMap {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return FieldMap{imm.Set(name, t)}
}

// Iterate over entries in the map, in name order.
// If f returns false, iteration will be stopped.
func (m FieldMap) Range(f func(string, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Names returns the field names in sorted order.
func (m FieldMap) Names() []string {
	names := make([]string, 0, m.Len())
	m.Range(func(name string, _ Type) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Map rewrites every field type with f and returns the resulting map.
func (m FieldMap) Map(f func(Type) Type) FieldMap {
	if m.Len() == 0 {
		return m
	}
	b := m.Builder()
	m.Range(func(name string, t Type) bool {
		b.Set(name, f(t))
		return true
	})
	return b.Build()
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m FieldMap) Builder() FieldMapBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return FieldMapBuilder{immutable.NewSortedMapBuilder(imm)}
}

// FieldMapBuilder enables in-place updates of a map before finalization.
type FieldMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewFieldMapBuilder() FieldMapBuilder {
	return FieldMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b FieldMapBuilder) Len() int { return b.b.Len() }

// Set the type for the given field in the builder.
func (b FieldMapBuilder) Set(name string, t Type) FieldMapBuilder {
	b.b.Set(name, t)
	return b
}

// Delete the given field from the builder.
func (b FieldMapBuilder) Delete(name string) FieldMapBuilder {
	b.b.Delete(name)
	return b
}

// Finalize the builder into an immutable map.
func (b FieldMapBuilder) Build() FieldMap { return FieldMap{b.b.Map()} }

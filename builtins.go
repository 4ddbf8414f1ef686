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

package tinfer

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/wdamron/tinfer/parser"
	"github.com/wdamron/tinfer/types"
	"gopkg.in/yaml.v3"
)

// Kinds of builtins
const (
	BuiltinFunction = "function"
	BuiltinVariable = "variable"
)

// Builtin declares a host-provided identifier. The signature of a function is written in the
// type-annotation grammar: `<T, U>(url: string, opts: T) -> U`.
type Builtin struct {
	Kind      string `yaml:"kind"`
	Signature string `yaml:"signature"`
}

// Builtins maps builtin names to their declarations.
type Builtins map[string]Builtin

type builtinsFile struct {
	Builtins []struct {
		Name    string `yaml:"name"`
		Builtin `yaml:",inline"`
	} `yaml:"builtins"`
}

//go:embed builtins.yaml
var defaultBuiltins []byte

// DefaultBuiltins returns the builtins available to every program: print, fetchJS, and
// fetch_inbuilt.
func DefaultBuiltins() Builtins {
	b, err := ParseBuiltins(defaultBuiltins)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseBuiltins decodes a YAML builtins document:
//
//	builtins:
//	  - name: print
//	    kind: function
//	    signature: "<T>(args: T) -> integer"
func ParseBuiltins(data []byte) (Builtins, error) {
	var file builtinsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse builtins: %w", err)
	}
	builtins := make(Builtins, len(file.Builtins))
	for i, b := range file.Builtins {
		if b.Name == "" {
			return nil, fmt.Errorf("builtin %d has no name", i)
		}
		switch b.Kind {
		case BuiltinFunction, BuiltinVariable:
		default:
			return nil, fmt.Errorf("builtin %s has unknown kind %q", b.Name, b.Kind)
		}
		builtins[b.Name] = b.Builtin
	}
	return builtins, nil
}

// LoadBuiltins reads a YAML builtins document from r.
func LoadBuiltins(r io.Reader) (Builtins, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBuiltins(data)
}

// LoadBuiltinsFile reads a YAML builtins document from the file at path.
func LoadBuiltinsFile(path string) (Builtins, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadBuiltins(f)
}

// Names returns the builtin names in sorted order.
func (b Builtins) Names() []string {
	names := lo.Keys(b)
	sort.Strings(names)
	return names
}

// Bind each builtin in the global frame, in name order. Functions are bound to the type of their
// signature; variables are bound to the type of their signature, or void if it is empty. The
// type-variables of a signature are generalized, so each use of a builtin is instantiated with
// fresh type-variables.
func (c *Checker) bindBuiltins(builtins Builtins) error {
	for _, name := range builtins.Names() {
		b := builtins[name]
		var t types.Type
		switch {
		case b.Kind == BuiltinFunction || (b.Kind == BuiltinVariable && b.Signature != ""):
			var err error
			if t, err = c.signatureType(b.Signature); err != nil {
				return fmt.Errorf("builtin %s: %w", name, err)
			}
		case b.Kind == BuiltinVariable:
			t = types.NewCon(types.Void)
		default:
			continue
		}
		scheme := Generalize(c.global, t)
		c.tracef("builtin %s: %s", name, scheme)
		c.schemes[t] = scheme
		c.global.Declare(name, t)
	}
	return nil
}

// Resolve a signature with a nested checker. The nested checker shares the generator of c, so
// the variables of the signature never collide with the variables of c.
func (c *Checker) signatureType(signature string) (types.Type, error) {
	typ, err := parser.ParseTypeString(signature)
	if err != nil {
		return nil, err
	}
	nested := NewChecker(WithVarGen(c.gen), WithLogger(c.logger), WithPrimitives(c.primitives...))
	t, err := nested.resolveType(nested.top, typ)
	if err != nil {
		return nil, err
	}
	subst, err := nested.solver.Solve()
	if err != nil {
		return nil, err
	}
	return subst.Apply(t), nil
}

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
	"errors"
	"log"

	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/parser"
	"github.com/wdamron/tinfer/types"
)

// DefaultPrimitives are the type-constructor names which may be used in type annotations without
// a declaration.
var DefaultPrimitives = []string{types.Integer, types.Float, types.Boolean, types.String}

// Checker infers the types of a program.
//
// A checker may be reused for multiple programs, but cannot be used concurrently.
type Checker struct {
	gen        *types.VarGen
	logger     *log.Logger
	primitives []string

	solver  *Solver
	global  *Frame
	top     *Frame
	schemes map[types.Type]Scheme
	subst   types.Subst
	err     error
}

// Option configures a Checker.
type Option func(*Checker)

// WithVarGen sets the generator of fresh type-variables. Checkers which share a generator never
// allocate the same type-variable id.
func WithVarGen(gen *types.VarGen) Option { return func(c *Checker) { c.gen = gen } }

// WithLogger enables tracing of constraints, builtin signatures, and solved bindings.
func WithLogger(logger *log.Logger) Option { return func(c *Checker) { c.logger = logger } }

// WithPrimitives replaces the set of primitive type-constructor names.
func WithPrimitives(names ...string) Option {
	return func(c *Checker) { c.primitives = append([]string(nil), names...) }
}

// Create a checker. By default, fresh type-variables are allocated from types.DefaultVarGen.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{gen: types.DefaultVarGen, primitives: DefaultPrimitives}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

func (c *Checker) reset() {
	c.global = NewFrame(nil)
	seedTypeClasses(c.global)
	c.top = NewFrame(c.global)
	c.solver = NewSolver(c.global)
	c.solver.SetLogger(c.logger)
	c.schemes = make(map[types.Type]Scheme)
	c.subst, c.err = types.EmptySubst, nil
}

// Run infers the types of prog, after binding each builtin's signature in the global frame.
//
// On success, each declared variable in prog is annotated with its solved type and prog is
// returned. Errors found while visiting the program are returned immediately; unification
// failures are collected and returned together as a *TypeErrors.
func (c *Checker) Run(prog *ast.Program, builtins Builtins) (*ast.Program, error) {
	c.reset()
	if prog == nil {
		c.err = errors.New("Empty program")
		return nil, c.err
	}
	if err := c.bindBuiltins(builtins); err != nil {
		c.err = err
		return nil, err
	}
	if _, err := c.infer(c.top, prog); err != nil {
		c.err = err
		return nil, err
	}
	subst, err := c.solver.Solve()
	c.subst = subst
	if err != nil {
		c.err = err
		return nil, err
	}
	c.annotate(prog)
	return prog, nil
}

// Check parses src and runs the checker on the parsed program. If name is not empty, errors are
// prefixed with name.
func (c *Checker) Check(name, src string, builtins Builtins) (*ast.Program, error) {
	prog, err := parser.ParseString(src)
	if err == nil {
		prog, err = c.Run(prog, builtins)
	}
	if err != nil && name != "" {
		err = &FileError{Name: name, Err: err}
	}
	return prog, err
}

// Subst returns the substitution computed by the last run.
func (c *Checker) Subst() types.Subst { return c.subst }

// Constraints returns the constraints emitted by the last run.
func (c *Checker) Constraints() []Constraint { return c.solver.Constraints() }

// Err returns the error which caused the last run to fail.
func (c *Checker) Err() error { return c.err }

// TypeOf returns the solved type of a declared variable.
func (c *Checker) TypeOf(v *ast.Variable) types.Type { return c.subst.Apply(v.Type()) }

// Lookup returns the solved type bound to a top-level identifier or builtin.
func (c *Checker) Lookup(name string) types.Type { return c.subst.Apply(c.top.Lookup(name)) }

func (c *Checker) fresh() *types.TVar { return c.gen.New() }

func (c *Checker) tracef(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

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
	"log"

	"github.com/wdamron/tinfer/types"
)

// ConstraintKind identifies the kind of a deferred constraint.
type ConstraintKind int

const (
	// EqualityCon requires Left and Right to unify.
	EqualityCon ConstraintKind = iota
	// ExplicitCon requires Left to be an instance of the scheme Right. Not solved.
	ExplicitCon
	// ImplicitCon requires Left to be an instance of the generalization of Right. Not solved.
	ImplicitCon
	// TypeClassCon requires Left to be an instance of Class. Not solved.
	TypeClassCon
)

var constraintKindNames = [...]string{
	EqualityCon:  "EQUALITY_CON",
	ExplicitCon:  "EXPLICIT_CON",
	ImplicitCon:  "IMPLICIT_CON",
	TypeClassCon: "TYPECLASS_CON",
}

func (k ConstraintKind) String() string {
	if k < 0 || int(k) >= len(constraintKindNames) {
		return "UNKNOWN_CON"
	}
	return constraintKindNames[k]
}

// Constraint is a deferred obligation, collected during inference and discharged by Solve.
type Constraint struct {
	Kind        ConstraintKind
	Left, Right types.Type
	Class       *types.TypeClass
}

func (c Constraint) String() string {
	switch c.Kind {
	case TypeClassCon:
		return c.Kind.String() + " " + c.Class.Name + " " + types.TypeString(c.Left)
	}
	return c.Kind.String() + " " + types.TypeString(c.Left) + " ~ " + types.TypeString(c.Right)
}

// ClassRegistry reports the registered type-class memberships of a type-constructor.
type ClassRegistry interface {
	Instances(conName string) types.ClassSet
}

// Solver accumulates constraints and unifies them.
//
// A solver cannot be used concurrently.
type Solver struct {
	constraints []Constraint
	registry    ClassRegistry
	logger      *log.Logger
}

// Create a solver. Class memberships of type-constructors are checked against the registry, if
// the registry is not nil.
func NewSolver(registry ClassRegistry) *Solver { return &Solver{registry: registry} }

// SetLogger enables tracing of emitted constraints and unification failures.
func (s *Solver) SetLogger(logger *log.Logger) { s.logger = logger }

// Constraints returns the accumulated constraints in emission order.
func (s *Solver) Constraints() []Constraint { return s.constraints }

// Reset discards all accumulated constraints.
func (s *Solver) Reset() { s.constraints = s.constraints[:0] }

// Add a constraint.
func (s *Solver) Add(c Constraint) {
	if s.logger != nil {
		s.logger.Printf("constraint %d: %s", len(s.constraints), c)
	}
	s.constraints = append(s.constraints, c)
}

// Equal adds an equality constraint between left and right.
func (s *Solver) Equal(left, right types.Type) {
	s.Add(Constraint{Kind: EqualityCon, Left: left, Right: right})
}

// Bind a to b. Binding a type-variable to itself yields the empty substitution.
func (s *Solver) Bind(a *types.TVar, b types.Type) (types.Subst, error) {
	if bv, ok := b.(*types.TVar); ok && bv.Id == a.Id {
		return types.EmptySubst, nil
	}
	if types.Occurs(a.Id, b) {
		return types.EmptySubst, &OccursCheckError{Var: a, Type: b}
	}
	return types.SingletonSubst(a, b), nil
}

// Unify computes the most general substitution which makes a and b equal.
//
// When both operands are type-variables, their type-classes are merged in place onto both
// variables and the younger variable is bound to the older. When one operand is a type-variable,
// the other operand must be an instance of every type-class attached to the variable.
func (s *Solver) Unify(a, b types.Type) (types.Subst, error) {
	if a == nil || b == nil || types.Same(a, b) {
		return types.EmptySubst, nil
	}

	av, aIsVar := a.(*types.TVar)
	bv, bIsVar := b.(*types.TVar)
	switch {
	case aIsVar && bIsVar:
		merged := av.Constraints().Union(bv.Constraints())
		av.SetConstraints(merged)
		bv.SetConstraints(merged)
		if types.VarOrder(av.Id, bv.Id) <= 0 {
			return s.Bind(bv, av)
		}
		return s.Bind(av, bv)

	case aIsVar:
		if err := s.checkClasses(av, b); err != nil {
			return types.EmptySubst, err
		}
		return s.Bind(av, b)

	case bIsVar:
		if err := s.checkClasses(bv, a); err != nil {
			return types.EmptySubst, err
		}
		return s.Bind(bv, a)
	}

	switch a := a.(type) {
	case *types.TCon:
		switch b := b.(type) {
		case *types.TCon:
			return s.unifyCons(a, b)
		case *types.TRec:
			return s.unifyConRec(a, b)
		}

	case *types.TRec:
		switch b := b.(type) {
		case *types.TCon:
			return s.unifyConRec(b, a)
		case *types.TRec:
			return s.unifyRecs(a, b)
		}
	}

	return types.EmptySubst, &MismatchError{Left: a, Right: b}
}

func (s *Solver) unifyCons(a, b *types.TCon) (types.Subst, error) {
	if a.Name != b.Name || len(a.Args) != len(b.Args) {
		return types.EmptySubst, &MismatchError{Left: a, Right: b}
	}
	subst := types.EmptySubst
	for i := range a.Args {
		next, err := s.Unify(subst.Apply(a.Args[i]), subst.Apply(b.Args[i]))
		if err != nil {
			return types.EmptySubst, err
		}
		subst = types.Compose(next, subst)
	}
	return subst, nil
}

// A map constructor unifies its value type with every field of a record.
func (s *Solver) unifyConRec(con *types.TCon, rec *types.TRec) (types.Subst, error) {
	if !types.IsMapCon(con) || len(con.Args) == 0 {
		return types.EmptySubst, &MismatchError{Left: con, Right: rec}
	}
	elem := con.Args[len(con.Args)-1]
	subst := types.EmptySubst
	var err error
	rec.Fields.Range(func(_ string, ft types.Type) bool {
		var next types.Subst
		next, err = s.Unify(subst.Apply(elem), subst.Apply(ft))
		if err != nil {
			return false
		}
		subst = types.Compose(next, subst)
		return true
	})
	if err != nil {
		return types.EmptySubst, err
	}
	return subst, nil
}

// Every field of the right record must be declared by the left record. An anonymous record unifies
// with a record of any name.
func (s *Solver) unifyRecs(a, b *types.TRec) (types.Subst, error) {
	if a.Name != b.Name {
		switch {
		case b.IsAnonymous():
		case a.IsAnonymous():
			a, b = b, a
		default:
			return types.EmptySubst, &MismatchError{Left: a, Right: b}
		}
	}
	subst := types.EmptySubst
	var err error
	b.Fields.Range(func(name string, bt types.Type) bool {
		at, ok := a.Field(name)
		if !ok {
			err = &MissingFieldError{Field: name, Record: a}
			return false
		}
		var next types.Subst
		next, err = s.Unify(subst.Apply(at), subst.Apply(bt))
		if err != nil {
			return false
		}
		subst = types.Compose(next, subst)
		return true
	})
	if err != nil {
		return types.EmptySubst, err
	}
	return subst, nil
}

// Verify t is an instance of every type-class attached to tv.
func (s *Solver) checkClasses(tv *types.TVar, t types.Type) error {
	required := tv.Constraints()
	if len(required) == 0 {
		return nil
	}
	have := t.Constraints()
	if con, ok := t.(*types.TCon); ok && s.registry != nil {
		have = have.Union(s.registry.Instances(con.Name))
	}
	if missing := have.Missing(required); len(missing) > 0 {
		return &ClassConstraintError{Type: t, Classes: missing}
	}
	return nil
}

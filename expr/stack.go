// Copyright 2026 The Firn Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import "github.com/miretskiy/firn/frame"

// Stack is the transient, last-in-first-out container of Expressions
// spec.md section 3 describes: scoped to a single chain execution (or a
// FilterExpr embedded sub-program's own private instance), never
// exposed outside the builder that owns it.
type Stack struct {
	items []Expression

	// pendingPredicate/pendingThen hold the When/Then fragments of an
	// in-progress conditional until Otherwise assembles the CaseExpr
	// and pushes it, per spec.md 4.2.
	pendingPredicate Expression
	pendingThen      Expression
}

// NewStack returns an empty expression stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push adds an expression to the top of the stack.
func (s *Stack) Push(e Expression) {
	s.items = append(s.items, e)
}

// Pop removes and returns the top expression, or an underflow error if
// the stack is empty.
func (s *Stack) Pop() (Expression, error) {
	if len(s.items) == 0 {
		return nil, frame.ErrStackUnderflow.New(0, 1)
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// PopN pops n expressions and returns them in the order they were
// pushed (oldest first), or an underflow error if fewer than n remain.
func (s *Stack) PopN(n int) ([]Expression, error) {
	if len(s.items) < n {
		return nil, frame.ErrStackUnderflow.New(0, n)
	}
	out := append([]Expression(nil), s.items[len(s.items)-n:]...)
	s.items = s.items[:len(s.items)-n]
	return out, nil
}

// Len reports the current stack depth.
func (s *Stack) Len() int { return len(s.items) }

// Empty reports whether the stack holds no expressions.
func (s *Stack) Empty() bool { return len(s.items) == 0 }

// Drain empties the stack and returns its contents in pushed order,
// used by the expression-consuming frame opcodes (SelectExpr,
// WithColumns, Agg) per spec.md section 3's invariant that the stack
// is drained, not just peeked, by those ops.
func (s *Stack) Drain() []Expression {
	out := s.items
	s.items = nil
	return out
}

// DrainOne drains the stack expecting exactly one expression, the
// contract FilterExpr's embedded sub-program and a plain filter
// predicate both require (spec.md 4.4, "must terminate with exactly
// one expression").
func (s *Stack) DrainOne() (Expression, error) {
	if len(s.items) != 1 {
		return nil, frame.ErrExpressionShape.New("expected exactly one expression on the stack, found")
	}
	e := s.items[0]
	s.items = nil
	return e, nil
}

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

// CaseExpr is the When/Then/Otherwise conditional, grounded on
// expression's case/when-then pattern in the teacher
// (sql/expression/case_test.go). spec.md 4.2: "When reads a predicate
// off the stack, Then reads a true-branch expression, Otherwise reads
// a false-branch, yielding a single conditional expression."
type CaseExpr struct {
	predicate Expression
	then      Expression
	otherwise Expression
}

// NewCase builds a When/Then/Otherwise conditional expression.
func NewCase(predicate, then, otherwise Expression) *CaseExpr {
	return &CaseExpr{predicate: predicate, then: then, otherwise: otherwise}
}

func (c *CaseExpr) Name() string           { return "case" }
func (c *CaseExpr) Type() frame.ColumnType { return c.then.Type() }
func (c *CaseExpr) IsAggregate() bool      { return false }
func (c *CaseExpr) Children() []Expression {
	return []Expression{c.predicate, c.then, c.otherwise}
}
func (c *CaseExpr) String() string {
	return "CASE WHEN " + c.predicate.String() + " THEN " + c.then.String() + " ELSE " + c.otherwise.String() + " END"
}

func (c *CaseExpr) Eval(ctx *EvalContext) (interface{}, error) {
	p, err := c.predicate.Eval(ctx)
	if err != nil {
		return nil, err
	}
	if b, ok := p.(bool); ok && b {
		return c.then.Eval(ctx)
	}
	return c.otherwise.Eval(ctx)
}

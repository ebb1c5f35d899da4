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

// Package expr implements the postfix expression stack machine: the
// Expression tree values spec.md section 3/4.2 describes, and the
// ExpressionStack that builds them one opcode at a time. Expressions
// are immutable values once built (apart from the type a ColumnExpr
// records on Eval, see Expression); they are never handles and are
// never exposed outside a single chain execution.
package expr

import "github.com/miretskiy/firn/frame"

// EvalContext carries everything an Expression needs to evaluate: the
// schema it resolves column names against, the candidate rows (the
// whole table for a row-wise projection/filter, the group's rows for
// an aggregation, the partition's rows for a window function), and
// which row is "current" for row-wise and window evaluation.
type EvalContext struct {
	Schema   frame.Schema
	Rows     []frame.Row
	RowIndex int
}

// CurrentRow returns the row EvalContext.RowIndex names.
func (c *EvalContext) CurrentRow() frame.Row {
	return c.Rows[c.RowIndex]
}

// Expression is a tree describing a column-valued or scalar-valued
// computation, per spec.md section 3. Implementations are immutable
// once constructed, with one exception: a ColumnExpr records its
// column's type on each Eval, so its Type is the zero ColumnType until
// it has been evaluated once.
type Expression interface {
	// Name is the expression's output column name: the column name for
	// a bare Column reference, the alias for an Alias-wrapped
	// expression, or a generated name (e.g. the rendered expression
	// text) otherwise.
	Name() string
	// Type is the expression's best-effort inferred output type.
	Type() frame.ColumnType
	// IsAggregate reports whether Eval expects ctx.Rows to be the full
	// group being reduced, rather than a single current row.
	IsAggregate() bool
	// Eval computes the expression's value against ctx.
	Eval(ctx *EvalContext) (interface{}, error)
	// Children lists the expression's direct operands, for tree walks.
	Children() []Expression
	// String renders the expression for logging/debugging.
	String() string
}

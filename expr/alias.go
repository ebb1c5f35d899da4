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

// AliasArgs is the Alias opcode's decoded argument.
type AliasArgs struct {
	Name frame.StringView
}

// AliasExpr renames its wrapped expression's output column, grounded
// on expression.NewAlias in the teacher. Per spec.md 4.2, Alias renames
// the top expression "in-place" — modeled here as wrapping rather than
// mutating, since Expressions are immutable values once built.
type AliasExpr struct {
	name  string
	inner Expression
}

// NewAlias builds an Alias{name} expression wrapping inner.
func NewAlias(name string, inner Expression) *AliasExpr {
	return &AliasExpr{name: name, inner: inner}
}

func (a *AliasExpr) Name() string            { return a.name }
func (a *AliasExpr) Type() frame.ColumnType  { return a.inner.Type() }
func (a *AliasExpr) IsAggregate() bool       { return a.inner.IsAggregate() }
func (a *AliasExpr) Children() []Expression  { return []Expression{a.inner} }
func (a *AliasExpr) String() string          { return a.inner.String() + " AS " + a.name }

func (a *AliasExpr) Eval(ctx *EvalContext) (interface{}, error) {
	return a.inner.Eval(ctx)
}

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

// ColumnArgs is the Column opcode's decoded argument: a single column
// name. Modeled on expression.NewGetField's (idx, typ, name, nullable)
// constructor in the teacher, minus the physical index — column
// resolution here is always by name against the current schema.
type ColumnArgs struct {
	Name frame.StringView
}

// ColumnExpr resolves to the named column's value in the current row,
// grounded on expression.NewGetField / sql.GetField in the teacher.
type ColumnExpr struct {
	name string
	typ  frame.ColumnType
}

// NewColumn builds a Column{name} expression, spec.md section 4.2.
func NewColumn(name string) *ColumnExpr {
	return &ColumnExpr{name: name}
}

func (c *ColumnExpr) Name() string            { return c.name }
func (c *ColumnExpr) Type() frame.ColumnType  { return c.typ }
func (c *ColumnExpr) IsAggregate() bool       { return false }
func (c *ColumnExpr) Children() []Expression  { return nil }
func (c *ColumnExpr) String() string          { return c.name }

func (c *ColumnExpr) Eval(ctx *EvalContext) (interface{}, error) {
	idx := ctx.Schema.IndexOf(c.name)
	if idx < 0 {
		return nil, frame.ErrBackingLibrary.New("column not found: " + c.name)
	}
	c.typ = ctx.Schema[idx].Type
	return ctx.CurrentRow()[idx], nil
}

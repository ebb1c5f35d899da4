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

import (
	"fmt"

	"github.com/miretskiy/firn/frame"
)

// LiteralArgs is the Literal opcode's decoded argument: the tagged
// value struct itself.
type LiteralArgs struct {
	Value frame.Literal
}

// LiteralExpr pushes a constant value, grounded on expression.NewLiteral
// in the teacher.
type LiteralExpr struct {
	value interface{}
	typ   frame.ColumnType
}

// NewLiteral builds a Literal{tag,value} expression, reading value per
// spec.md section 4.2 ("tag selects which union field is read").
func NewLiteral(lit frame.Literal) (*LiteralExpr, error) {
	v, err := lit.Value()
	if err != nil {
		return nil, err
	}
	var typ frame.ColumnType
	switch lit.Tag {
	case frame.LiteralI64:
		typ = frame.TypeInt64
	case frame.LiteralF64:
		typ = frame.TypeFloat64
	case frame.LiteralString:
		typ = frame.TypeUtf8
	case frame.LiteralBool:
		typ = frame.TypeBool
	}
	return &LiteralExpr{value: v, typ: typ}, nil
}

func (l *LiteralExpr) Name() string           { return fmt.Sprintf("%v", l.value) }
func (l *LiteralExpr) Type() frame.ColumnType { return l.typ }
func (l *LiteralExpr) IsAggregate() bool      { return false }
func (l *LiteralExpr) Children() []Expression { return nil }
func (l *LiteralExpr) String() string         { return fmt.Sprintf("%v", l.value) }

func (l *LiteralExpr) Eval(ctx *EvalContext) (interface{}, error) {
	return l.value, nil
}

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

// BoolBinaryKind names `and`/`or`.
type BoolBinaryKind int

const (
	BoolAnd BoolBinaryKind = iota
	BoolOr
)

// BooleanExpr implements binary `and`/`or`.
type BooleanExpr struct {
	kind        BoolBinaryKind
	left, right Expression
}

// NewBoolean builds a binary boolean expression.
func NewBoolean(kind BoolBinaryKind, left, right Expression) *BooleanExpr {
	return &BooleanExpr{kind: kind, left: left, right: right}
}

func (b *BooleanExpr) Name() string           { return b.String() }
func (b *BooleanExpr) Type() frame.ColumnType { return frame.TypeBool }
func (b *BooleanExpr) IsAggregate() bool      { return false }
func (b *BooleanExpr) Children() []Expression { return []Expression{b.left, b.right} }
func (b *BooleanExpr) String() string {
	op := "AND"
	if b.kind == BoolOr {
		op = "OR"
	}
	return "(" + b.left.String() + " " + op + " " + b.right.String() + ")"
}

func (b *BooleanExpr) Eval(ctx *EvalContext) (interface{}, error) {
	lv, err := b.left.Eval(ctx)
	if err != nil {
		return nil, err
	}
	rv, err := b.right.Eval(ctx)
	if err != nil {
		return nil, err
	}
	lb, lok := lv.(bool)
	rb, rok := rv.(bool)
	if b.kind == BoolAnd {
		if lok && !lb {
			return false, nil
		}
		if rok && !rb {
			return false, nil
		}
		if !lok || !rok {
			return nil, nil
		}
		return lb && rb, nil
	}
	if lok && lb {
		return true, nil
	}
	if rok && rb {
		return true, nil
	}
	if !lok || !rok {
		return nil, nil
	}
	return lb || rb, nil
}

// NotExpr implements unary `not`.
type NotExpr struct {
	inner Expression
}

// NewNot builds a Not expression; unary ops require >=1 operand, and
// are applied to the top of the stack (spec.md section 4.2).
func NewNot(inner Expression) *NotExpr {
	return &NotExpr{inner: inner}
}

func (n *NotExpr) Name() string            { return n.String() }
func (n *NotExpr) Type() frame.ColumnType  { return frame.TypeBool }
func (n *NotExpr) IsAggregate() bool       { return false }
func (n *NotExpr) Children() []Expression  { return []Expression{n.inner} }
func (n *NotExpr) String() string          { return "NOT(" + n.inner.String() + ")" }

func (n *NotExpr) Eval(ctx *EvalContext) (interface{}, error) {
	v, err := n.inner.Eval(ctx)
	if err != nil {
		return nil, err
	}
	b, ok := v.(bool)
	if !ok {
		return nil, nil
	}
	return !b, nil
}

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
	"github.com/spf13/cast"
)

// CompareKind names one of the six comparison operators.
type CompareKind int

const (
	CmpEq CompareKind = iota
	CmpNeq
	CmpLt
	CmpLte
	CmpGt
	CmpGte
)

var cmpSymbols = map[CompareKind]string{
	CmpEq: "=", CmpNeq: "!=", CmpLt: "<", CmpLte: "<=", CmpGt: ">", CmpGte: ">=",
}

// ComparisonExpr implements `= < >` and friends, always producing a
// bool (or nil, if either operand is null).
type ComparisonExpr struct {
	kind        CompareKind
	left, right Expression
}

// NewComparison builds a binary comparison expression.
func NewComparison(kind CompareKind, left, right Expression) *ComparisonExpr {
	return &ComparisonExpr{kind: kind, left: left, right: right}
}

func (c *ComparisonExpr) Name() string           { return c.String() }
func (c *ComparisonExpr) Type() frame.ColumnType { return frame.TypeBool }
func (c *ComparisonExpr) IsAggregate() bool      { return false }
func (c *ComparisonExpr) Children() []Expression { return []Expression{c.left, c.right} }
func (c *ComparisonExpr) String() string {
	return "(" + c.left.String() + " " + cmpSymbols[c.kind] + " " + c.right.String() + ")"
}

func (c *ComparisonExpr) Eval(ctx *EvalContext) (interface{}, error) {
	lv, err := c.left.Eval(ctx)
	if err != nil {
		return nil, err
	}
	rv, err := c.right.Eval(ctx)
	if err != nil {
		return nil, err
	}
	if lv == nil || rv == nil {
		return nil, nil
	}

	if c.kind == CmpEq || c.kind == CmpNeq {
		eq := fmt.Sprintf("%v", lv) == fmt.Sprintf("%v", rv)
		if lf, err := cast.ToFloat64E(lv); err == nil {
			if rf, err2 := cast.ToFloat64E(rv); err2 == nil {
				eq = lf == rf
			}
		}
		if c.kind == CmpEq {
			return eq, nil
		}
		return !eq, nil
	}

	lf, err := cast.ToFloat64E(lv)
	if err != nil {
		return nil, frame.ErrBackingLibrary.New(err.Error())
	}
	rf, err := cast.ToFloat64E(rv)
	if err != nil {
		return nil, frame.ErrBackingLibrary.New(err.Error())
	}
	switch c.kind {
	case CmpLt:
		return lf < rf, nil
	case CmpLte:
		return lf <= rf, nil
	case CmpGt:
		return lf > rf, nil
	case CmpGte:
		return lf >= rf, nil
	}
	return nil, frame.ErrBackingLibrary.New("unreachable comparison kind")
}

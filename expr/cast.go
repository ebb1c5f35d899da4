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
	"github.com/miretskiy/firn/frame"
	"github.com/spf13/cast"
)

// CastArgs is the Cast opcode's decoded argument: spec.md section 4.2.
type CastArgs struct {
	TypeCode    uint32
	Strict      bool
	WrapNumeric bool
}

// CastExpr pops and pushes, coercing its inner expression's value to
// the requested ColumnType via spf13/cast, the same coercion library
// frame.Literal.Coerce uses.
type CastExpr struct {
	inner       Expression
	target      frame.ColumnType
	strict      bool
	wrapNumeric bool
}

// NewCast builds a Cast{type-code, strict, wrap-numeric} expression.
func NewCast(inner Expression, target frame.ColumnType, strict, wrapNumeric bool) *CastExpr {
	return &CastExpr{inner: inner, target: target, strict: strict, wrapNumeric: wrapNumeric}
}

func (c *CastExpr) Name() string           { return c.inner.Name() }
func (c *CastExpr) Type() frame.ColumnType { return c.target }
func (c *CastExpr) IsAggregate() bool      { return c.inner.IsAggregate() }
func (c *CastExpr) Children() []Expression { return []Expression{c.inner} }
func (c *CastExpr) String() string         { return "CAST(" + c.inner.String() + " AS " + c.target.String() + ")" }

func (c *CastExpr) Eval(ctx *EvalContext) (interface{}, error) {
	v, err := c.inner.Eval(ctx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	out, err := coerce(v, c.target)
	if err != nil {
		if c.strict {
			return nil, frame.ErrBackingLibrary.New(err.Error())
		}
		return nil, nil
	}
	if c.wrapNumeric {
		out = wrapNumeric(out, c.target)
	}
	return out, nil
}

func coerce(v interface{}, target frame.ColumnType) (interface{}, error) {
	switch target.Family {
	case frame.FamilyInt:
		return cast.ToInt64E(v)
	case frame.FamilyFloat:
		return cast.ToFloat64E(v)
	case frame.FamilyString:
		return cast.ToStringE(v)
	case frame.FamilyBool:
		return cast.ToBoolE(v)
	default:
		return v, nil
	}
}

// wrapNumeric emulates width-wrapping overflow (e.g. casting to i8)
// when the caller asked for wrap-numeric semantics. Without it, an int
// result keeps its full int64 value whatever the target width; it is
// neither range-checked nor saturated.
func wrapNumeric(v interface{}, target frame.ColumnType) interface{} {
	if target.Family != frame.FamilyInt {
		return v
	}
	i, ok := v.(int64)
	if !ok {
		return v
	}
	switch target.Variant {
	case frame.VariantI8:
		return int64(int8(i))
	case frame.VariantI16:
		return int64(int16(i))
	case frame.VariantI32:
		return int64(int32(i))
	case frame.VariantU8:
		return int64(uint8(i))
	case frame.VariantU16:
		return int64(uint16(i))
	case frame.VariantU32:
		return int64(uint32(i))
	default:
		return i
	}
}

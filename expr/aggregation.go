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
	"math"
	"sort"

	"github.com/miretskiy/firn/frame"
	"github.com/spf13/cast"
)

// AggArgs is the decoded argument shared by every aggregation opcode:
// Std/Var read DDOF (degrees of freedom), Count reads IncludeNulls.
// Both are harmless zero values for aggregations that ignore them.
type AggArgs struct {
	DDOF         int
	IncludeNulls bool
}

// AggKind names one of the aggregation reductions spec.md 4.2 lists.
type AggKind int

const (
	AggSum AggKind = iota
	AggMean
	AggMin
	AggMax
	AggStd
	AggVar
	AggMedian
	AggFirst
	AggLast
	AggNUnique
	AggCount
	AggCountNulls
)

var aggNames = map[AggKind]string{
	AggSum: "sum", AggMean: "mean", AggMin: "min", AggMax: "max", AggStd: "std",
	AggVar: "var", AggMedian: "median", AggFirst: "first", AggLast: "last",
	AggNUnique: "n_unique", AggCount: "count", AggCountNulls: "count_nulls",
}

// AggregationExpr pops one expression and wraps it with a reduction
// (spec.md 4.2). Std/Var additionally carry a degrees-of-freedom flag;
// Count carries an include-nulls flag choosing between element-count
// and null-excluding count.
type AggregationExpr struct {
	kind         AggKind
	inner        Expression
	ddof         int
	includeNulls bool
}

// NewAggregation builds a reduction over inner.
func NewAggregation(kind AggKind, inner Expression, ddof int, includeNulls bool) *AggregationExpr {
	return &AggregationExpr{kind: kind, inner: inner, ddof: ddof, includeNulls: includeNulls}
}

func (a *AggregationExpr) Name() string { return aggNames[a.kind] + "(" + a.inner.Name() + ")" }
func (a *AggregationExpr) Type() frame.ColumnType {
	switch a.kind {
	case AggCount, AggCountNulls, AggNUnique:
		return frame.TypeInt64
	case AggFirst, AggLast:
		return a.inner.Type()
	default:
		return frame.TypeFloat64
	}
}
func (a *AggregationExpr) IsAggregate() bool      { return true }
func (a *AggregationExpr) Children() []Expression { return []Expression{a.inner} }
func (a *AggregationExpr) String() string         { return a.Name() }

func (a *AggregationExpr) Eval(ctx *EvalContext) (interface{}, error) {
	values := make([]interface{}, 0, len(ctx.Rows))
	for i := range ctx.Rows {
		sub := &EvalContext{Schema: ctx.Schema, Rows: ctx.Rows, RowIndex: i}
		v, err := a.inner.Eval(sub)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	switch a.kind {
	case AggCount:
		if a.includeNulls {
			return int64(len(values)), nil
		}
		n := int64(0)
		for _, v := range values {
			if v != nil {
				n++
			}
		}
		return n, nil
	case AggCountNulls:
		n := int64(0)
		for _, v := range values {
			if v == nil {
				n++
			}
		}
		return n, nil
	case AggFirst:
		if len(values) == 0 {
			return nil, nil
		}
		return values[0], nil
	case AggLast:
		if len(values) == 0 {
			return nil, nil
		}
		return values[len(values)-1], nil
	case AggNUnique:
		seen := map[string]struct{}{}
		for _, v := range values {
			seen[fmt.Sprintf("%v|%T", v, v)] = struct{}{}
		}
		return int64(len(seen)), nil
	}

	floats := make([]float64, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, frame.ErrBackingLibrary.New(err.Error())
		}
		floats = append(floats, f)
	}
	if len(floats) == 0 {
		return nil, nil
	}

	switch a.kind {
	case AggSum:
		var s float64
		for _, f := range floats {
			s += f
		}
		return s, nil
	case AggMean:
		var s float64
		for _, f := range floats {
			s += f
		}
		return s / float64(len(floats)), nil
	case AggMin:
		m := floats[0]
		for _, f := range floats[1:] {
			if f < m {
				m = f
			}
		}
		return m, nil
	case AggMax:
		m := floats[0]
		for _, f := range floats[1:] {
			if f > m {
				m = f
			}
		}
		return m, nil
	case AggMedian:
		sorted := append([]float64(nil), floats...)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid], nil
		}
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	case AggVar, AggStd:
		n := len(floats)
		if n-a.ddof <= 0 {
			return nil, nil
		}
		var mean float64
		for _, f := range floats {
			mean += f
		}
		mean /= float64(n)
		var ss float64
		for _, f := range floats {
			d := f - mean
			ss += d * d
		}
		v := ss / float64(n-a.ddof)
		if a.kind == AggStd {
			return math.Sqrt(v), nil
		}
		return v, nil
	}
	return nil, frame.ErrBackingLibrary.New("unreachable aggregation kind")
}

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
	"sort"

	"github.com/miretskiy/firn/frame"
	"github.com/spf13/cast"
)

// WinFuncKind names Rank, DenseRank, RowNumber — the window functions
// spec.md 4.2 says are "typically followed by Over".
type WinFuncKind int

const (
	WinRank WinFuncKind = iota
	WinDenseRank
	WinRowNumber
)

// WindowFuncExpr is the placeholder Rank/DenseRank/RowNumber pushes
// before Over wraps it. Evaluated standalone (no enclosing Over) it
// treats ctx.Rows/ctx.RowIndex as the whole window: RowNumber is always
// exact; Rank/DenseRank without an order degrade to "every row ties at
// rank 1", a documented limitation per spec.md section 9's window
// function design note, not a silently wrong constant.
type WindowFuncExpr struct {
	kind   WinFuncKind
	orders []frame.SortField
}

// NewWindowFunc builds a bare Rank/DenseRank/RowNumber placeholder.
func NewWindowFunc(kind WinFuncKind) *WindowFuncExpr {
	return &WindowFuncExpr{kind: kind}
}

func (w *WindowFuncExpr) Name() string {
	switch w.kind {
	case WinRank:
		return "rank"
	case WinDenseRank:
		return "dense_rank"
	default:
		return "row_number"
	}
}
func (w *WindowFuncExpr) Type() frame.ColumnType  { return frame.TypeInt64 }
func (w *WindowFuncExpr) IsAggregate() bool       { return false }
func (w *WindowFuncExpr) Children() []Expression  { return nil }
func (w *WindowFuncExpr) String() string          { return w.Name() + "()" }

func (w *WindowFuncExpr) Eval(ctx *EvalContext) (interface{}, error) {
	if w.kind == WinRowNumber {
		return int64(ctx.RowIndex + 1), nil
	}
	if len(w.orders) == 0 {
		return int64(1), nil
	}
	rank := int64(1)
	dense := int64(1)
	for i := 1; i <= ctx.RowIndex; i++ {
		if CompareByOrders(ctx.Schema, ctx.Rows[i-1], ctx.Rows[i], w.orders) != 0 {
			rank = int64(i + 1)
			dense++
		}
	}
	if w.kind == WinRank {
		return rank, nil
	}
	return dense, nil
}

// OverArgs is the Over opcode's decoded argument.
type OverArgs struct {
	Partitions []frame.StringView
	Orders     []frame.SortField
}

// OverExpr pops the top expression and wraps it with a partitioning
// context (and ordering, if supplied), per spec.md 4.2.
type OverExpr struct {
	inner      Expression
	partitions []string
	orders     []frame.SortField
}

// NewOver builds an Over-wrapped expression. If inner is a bare window
// function placeholder, its ordering is rebuilt with orders so Rank/
// DenseRank can detect ties.
func NewOver(inner Expression, partitions []string, orders []frame.SortField) Expression {
	if wf, ok := inner.(*WindowFuncExpr); ok {
		inner = &WindowFuncExpr{kind: wf.kind, orders: orders}
	}
	return &OverExpr{inner: inner, partitions: partitions, orders: orders}
}

func (o *OverExpr) Name() string            { return o.inner.Name() }
func (o *OverExpr) Type() frame.ColumnType  { return o.inner.Type() }
func (o *OverExpr) IsAggregate() bool       { return false }
func (o *OverExpr) Children() []Expression  { return []Expression{o.inner} }
func (o *OverExpr) String() string          { return o.inner.String() + " OVER(...)" }

func (o *OverExpr) Eval(ctx *EvalContext) (interface{}, error) {
	cur := ctx.CurrentRow()

	type member struct {
		idx int
		row frame.Row
	}
	var members []member
	for i, r := range ctx.Rows {
		if partitionMatch(ctx.Schema, r, cur, o.partitions) {
			members = append(members, member{idx: i, row: r})
		}
	}
	sort.SliceStable(members, func(a, b int) bool {
		return CompareByOrders(ctx.Schema, members[a].row, members[b].row, o.orders) < 0
	})

	sortedRows := make([]frame.Row, len(members))
	pos := -1
	for i, m := range members {
		sortedRows[i] = m.row
		if m.idx == ctx.RowIndex {
			pos = i
		}
	}
	if pos < 0 {
		return nil, frame.ErrBackingLibrary.New("window: current row not found in its own partition")
	}
	sub := &EvalContext{Schema: ctx.Schema, Rows: sortedRows, RowIndex: pos}
	return o.inner.Eval(sub)
}

// LagLeadArgs is the Lag/Lead opcode's decoded argument.
type LagLeadArgs struct {
	Offset int
}

// LagLeadExpr pops one expression, reads a signed offset, and pushes a
// shifted expression: lag looks backward, lead looks forward.
type LagLeadExpr struct {
	inner  Expression
	offset int
	isLag  bool
}

// NewLag builds a Lag(inner, offset) expression.
func NewLag(inner Expression, offset int) *LagLeadExpr {
	return &LagLeadExpr{inner: inner, offset: offset, isLag: true}
}

// NewLead builds a Lead(inner, offset) expression.
func NewLead(inner Expression, offset int) *LagLeadExpr {
	return &LagLeadExpr{inner: inner, offset: offset, isLag: false}
}

func (l *LagLeadExpr) Name() string {
	if l.isLag {
		return "lag"
	}
	return "lead"
}
func (l *LagLeadExpr) Type() frame.ColumnType  { return l.inner.Type() }
func (l *LagLeadExpr) IsAggregate() bool       { return false }
func (l *LagLeadExpr) Children() []Expression  { return []Expression{l.inner} }
func (l *LagLeadExpr) String() string          { return l.Name() + "(" + l.inner.String() + ")" }

func (l *LagLeadExpr) Eval(ctx *EvalContext) (interface{}, error) {
	idx := ctx.RowIndex
	if l.isLag {
		idx -= l.offset
	} else {
		idx += l.offset
	}
	if idx < 0 || idx >= len(ctx.Rows) {
		return nil, nil
	}
	sub := &EvalContext{Schema: ctx.Schema, Rows: ctx.Rows, RowIndex: idx}
	return l.inner.Eval(sub)
}

// PartitionMatch reports whether rows a and b carry equal values for
// every named partition column, the same check Over applies through
// partitionMatch. The backend's group-by does not use it; it keys rows
// with its own groupKey.
func PartitionMatch(schema frame.Schema, a, b frame.Row, partitions []string) bool {
	return partitionMatch(schema, a, b, partitions)
}

func partitionMatch(schema frame.Schema, a, b frame.Row, partitions []string) bool {
	for _, name := range partitions {
		idx := schema.IndexOf(name)
		if idx < 0 {
			continue
		}
		if fmt.Sprintf("%v", a[idx]) != fmt.Sprintf("%v", b[idx]) {
			return false
		}
	}
	return true
}

// CompareByOrders compares rows a and b according to orders, returning
// <0, 0, >0. Nulls sort per each field's NullsOrder. Exported for reuse
// by the backend's Sort operator, which honors the same SortField
// semantics outside an expression context.
func CompareByOrders(schema frame.Schema, a, b frame.Row, orders []frame.SortField) int {
	for _, sf := range orders {
		name := sf.Column.Borrow()
		idx := schema.IndexOf(name)
		if idx < 0 {
			continue
		}
		cmp := CompareValues(a[idx], b[idx], sf.NullsOrder)
		if sf.Direction == frame.Descending {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp
		}
	}
	return 0
}

// CompareValues compares two scalar cell values, honoring nulls
// ordering. CompareByOrders calls it; the backend reaches it only
// through CompareByOrders in its Sort operator.
func CompareValues(a, b interface{}, nulls frame.NullsOrder) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		if nulls == frame.NullsFirst {
			return -1
		}
		return 1
	}
	if b == nil {
		if nulls == frame.NullsFirst {
			return 1
		}
		return -1
	}
	if af, err := cast.ToFloat64E(a); err == nil {
		if bf, err2 := cast.ToFloat64E(b); err2 == nil {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	as, bs := fmt.Sprintf("%v", a), fmt.Sprintf("%v", b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

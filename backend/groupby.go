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

package backend

import (
	"fmt"

	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
)

// GroupedOp is the only operator tree node that cannot Materialize
// directly: spec.md's GroupedPlan, reachable only via GroupBy and
// resolvable only via Agg (section 3's invariant, enforced again here
// by GroupedOp not implementing Op).
type GroupedOp struct {
	src  Op
	keys []string
}

// NewGroupedOp builds a GroupBy operator over src, partitioned by keys.
func NewGroupedOp(src Op, keys []string) *GroupedOp {
	return &GroupedOp{src: src, keys: keys}
}

// Resolve consumes the pending aggregation expressions and returns an
// Op producing one row per distinct combination of key values, plus
// one column per aggregation. Groups preserve first-seen order.
func (g *GroupedOp) Resolve(aggs []expr.Expression) Op {
	return &groupAggOp{src: g.src, keys: g.keys, aggs: aggs}
}

type groupAggOp struct {
	src  Op
	keys []string
	aggs []expr.Expression
}

func (g *groupAggOp) Materialize() (*Table, error) {
	in, err := g.src.Materialize()
	if err != nil {
		return nil, err
	}

	keyIdx := make([]int, len(g.keys))
	for i, name := range g.keys {
		idx := in.Schema.IndexOf(name)
		if idx < 0 {
			return nil, frame.ErrBackingLibrary.New("group-by column not found: " + name)
		}
		keyIdx[i] = idx
	}

	n := int(in.RowCount())
	order := []string{}
	groups := map[string][]int{}
	keyValues := map[string][]interface{}{}
	for i := 0; i < n; i++ {
		row := in.Row(i)
		key := groupKey(row, keyIdx)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
			vals := make([]interface{}, len(keyIdx))
			for j, idx := range keyIdx {
				vals[j] = row[idx]
			}
			keyValues[key] = vals
		}
		groups[key] = append(groups[key], i)
	}

	schema := make(frame.Schema, 0, len(g.keys)+len(g.aggs))
	for _, idx := range keyIdx {
		schema = append(schema, in.Schema[idx])
	}
	for _, a := range g.aggs {
		schema = append(schema, frame.Column{Name: a.Name(), Type: a.Type(), Nullable: true})
	}

	cols := make([][]interface{}, len(schema))
	for c := range cols {
		cols[c] = make([]interface{}, 0, len(order))
	}

	for _, key := range order {
		for j, v := range keyValues[key] {
			cols[j] = append(cols[j], v)
		}
		groupRows := make([]frame.Row, len(groups[key]))
		for i, rowIdx := range groups[key] {
			groupRows[i] = in.Row(rowIdx)
		}
		ctx := &expr.EvalContext{Schema: in.Schema, Rows: groupRows, RowIndex: 0}
		for a, aggExpr := range g.aggs {
			v, err := aggExpr.Eval(ctx)
			if err != nil {
				return nil, err
			}
			cols[len(keyIdx)+a] = append(cols[len(keyIdx)+a], v)
		}
	}

	return frame.NewFrame(schema, cols), nil
}

func groupKey(row frame.Row, keyIdx []int) string {
	key := ""
	for _, idx := range keyIdx {
		key += fmt.Sprintf("%v\x1f", row[idx])
	}
	return key
}

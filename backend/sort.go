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
	"sort"

	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
)

// sortOp implements Sort: per-field direction and nulls-ordering are
// honored exactly, with a stable sort so equal keys preserve relative
// row order (spec.md section 8's sort-stability property).
type sortOp struct {
	src    Op
	fields []frame.SortField
}

// NewSortOp builds a Sort operator over src.
func NewSortOp(src Op, fields []frame.SortField) Op {
	return &sortOp{src: src, fields: fields}
}

func (s *sortOp) Materialize() (*Table, error) {
	in, err := s.src.Materialize()
	if err != nil {
		return nil, err
	}
	n := int(in.RowCount())
	idx := make([]int, n)
	rows := make([]frame.Row, n)
	for i := 0; i < n; i++ {
		idx[i] = i
		rows[i] = in.Row(i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return expr.CompareByOrders(in.Schema, rows[idx[a]], rows[idx[b]], s.fields) < 0
	})

	cols := make([][]interface{}, len(in.Schema))
	for c := range cols {
		cols[c] = make([]interface{}, n)
		for i, srcIdx := range idx {
			cols[c][i] = in.Columns[c][srcIdx]
		}
	}
	schema := append(frame.Schema(nil), in.Schema...)
	return frame.NewFrame(schema, cols), nil
}

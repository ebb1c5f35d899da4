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
	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
)

// filterOp implements FilterExpr: predicate is evaluated per row, rows
// for which it is not exactly true are dropped.
type filterOp struct {
	src       Op
	predicate expr.Expression
}

// NewFilterOp builds a FilterExpr operator over src.
func NewFilterOp(src Op, predicate expr.Expression) Op {
	return &filterOp{src: src, predicate: predicate}
}

func (f *filterOp) Materialize() (*Table, error) {
	in, err := f.src.Materialize()
	if err != nil {
		return nil, err
	}

	rows := make([]frame.Row, in.RowCount())
	for i := range rows {
		rows[i] = in.Row(i)
	}

	cols := make([][]interface{}, len(in.Schema))
	for c := range cols {
		cols[c] = make([]interface{}, 0, len(rows))
	}
	for i, row := range rows {
		ctx := &expr.EvalContext{Schema: in.Schema, Rows: rows, RowIndex: i}
		v, err := f.predicate.Eval(ctx)
		if err != nil {
			return nil, err
		}
		keep, ok := v.(bool)
		if !ok || !keep {
			continue
		}
		for c := range cols {
			cols[c] = append(cols[c], row[c])
		}
	}
	schema := append(frame.Schema(nil), in.Schema...)
	return frame.NewFrame(schema, cols), nil
}

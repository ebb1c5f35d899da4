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

import "github.com/miretskiy/firn/frame"

// limitOp implements Limit: truncates to the first n rows, or the full
// row count if n exceeds it.
type limitOp struct {
	src Op
	n   int64
}

// NewLimitOp builds a Limit operator over src. n must be > 0; the
// zero-is-an-error contract (spec.md 4.4) is enforced at the plan
// layer before this constructor is called.
func NewLimitOp(src Op, n int64) Op {
	return &limitOp{src: src, n: n}
}

func (l *limitOp) Materialize() (*Table, error) {
	in, err := l.src.Materialize()
	if err != nil {
		return nil, err
	}
	total := in.RowCount()
	keep := l.n
	if keep > total {
		keep = total
	}
	cols := make([][]interface{}, len(in.Schema))
	for c := range cols {
		cols[c] = append([]interface{}(nil), in.Columns[c][:keep]...)
	}
	schema := append(frame.Schema(nil), in.Schema...)
	return frame.NewFrame(schema, cols), nil
}

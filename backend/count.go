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

// countOp implements the Count frame opcode: a single-row, single-
// column Plan named "count" carrying the input's row count. Distinct
// from the expression-level Count reduction (spec.md section 9).
type countOp struct {
	src Op
}

// NewCountOp builds a Count operator over src.
func NewCountOp(src Op) Op {
	return &countOp{src: src}
}

func (c *countOp) Materialize() (*Table, error) {
	in, err := c.src.Materialize()
	if err != nil {
		return nil, err
	}
	schema := frame.Schema{{Name: "count", Type: frame.TypeInt64}}
	cols := [][]interface{}{{in.RowCount()}}
	return frame.NewFrame(schema, cols), nil
}

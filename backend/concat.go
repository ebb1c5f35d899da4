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

// Concat vertically unions tables, preserving the first table's schema
// and row order, then appending each subsequent table's rows in turn.
// Spec.md 4.4: "operates on a caller-supplied array of Frame handles;
// the input handle is unused" — so this is a function, not an Op, and
// always produces a materialized Table directly rather than a deferred
// node.
func Concat(tables []*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, frame.ErrEmptyArguments.New()
	}
	schema := append(frame.Schema(nil), tables[0].Schema...)
	cols := make([][]interface{}, len(schema))
	for c := range cols {
		cols[c] = append([]interface{}(nil), tables[0].Columns[c]...)
	}
	for _, t := range tables[1:] {
		if len(t.Schema) != len(schema) {
			return nil, frame.ErrBackingLibrary.New("concat: mismatched column count")
		}
		for c := range cols {
			cols[c] = append(cols[c], t.Columns[c]...)
		}
	}
	return frame.NewFrame(schema, cols), nil
}

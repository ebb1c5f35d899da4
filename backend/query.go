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

// queryOp implements Query: registers the current handle under the
// fixed table alias "df" (spec.md section 6) and evaluates a SQL
// statement against it via the pluggable SQLExecutor.
type queryOp struct {
	src      Op
	sql      string
	executor SQLExecutor
}

// NewQueryOp builds a Query operator over src. executor may be nil, in
// which case Materialize fails with a backing-library error naming the
// missing binding.
func NewQueryOp(src Op, sql string, executor SQLExecutor) Op {
	return &queryOp{src: src, sql: sql, executor: executor}
}

func (q *queryOp) Materialize() (*Table, error) {
	in, err := q.src.Materialize()
	if err != nil {
		return nil, err
	}
	if q.executor == nil {
		return nil, frame.ErrBackingLibrary.New("no SQL executor configured")
	}
	return q.executor.Query("df", in, q.sql)
}

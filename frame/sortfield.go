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

package frame

// Direction is a per-field sort order, spec.md section 3/6.
type Direction uint32

const (
	Ascending  Direction = 0
	Descending Direction = 1
)

// NullsOrder places nulls first or last within a sorted column.
type NullsOrder uint32

const (
	NullsFirst NullsOrder = 0
	NullsLast  NullsOrder = 1
)

// SortField is {column StringView, direction, nulls-ordering}, matching
// the wire layout in spec.md section 6 and modeled on the teacher's
// sql.SortField{Column, Order} (sql/plan/group_by_test.go).
type SortField struct {
	Column     StringView
	Direction  Direction
	NullsOrder NullsOrder
}

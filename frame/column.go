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

// Column describes one column of a Frame or a projection expression's
// output slot. Modeled on sql.Column{Name, Type, Nullable} in the
// teacher (see sql/plan/group_by_test.go's sql.Schema literals).
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// Schema is an ordered list of Columns.
type Schema []Column

// IndexOf returns the position of name in the schema, or -1.
func (s Schema) IndexOf(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the schema's column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Row is one materialized row: one interface{} slot per schema column,
// nil meaning SQL-style null. Modeled on sql.Row in the teacher.
type Row []interface{}

// NewRow builds a Row from its values, mirroring sql.NewRow's call
// shape used throughout the teacher's tests.
func NewRow(values ...interface{}) Row {
	return Row(values)
}

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

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Frame is a fully materialized table of typed columns, stored column-
// major (one []interface{} per column) to match spec.md's "columnar
// dataframe engine" framing.
type Frame struct {
	Schema  Schema
	Columns [][]interface{}
}

// NewFrame builds a Frame from a schema and column-major data. len(cols)
// must equal len(schema); callers within this module are trusted to
// satisfy that invariant (validated at the backend boundary, not here).
func NewFrame(schema Schema, cols [][]interface{}) *Frame {
	return &Frame{Schema: schema, Columns: cols}
}

// NewEmptyFrame returns a zero-row, zero-column Frame, the result of
// the NewEmpty opcode.
func NewEmptyFrame() *Frame {
	return &Frame{Schema: Schema{}, Columns: [][]interface{}{}}
}

// RowCount returns the number of rows, derived from the first column's
// length (0 if the frame has no columns).
func (f *Frame) RowCount() int64 {
	if len(f.Columns) == 0 {
		return 0
	}
	return int64(len(f.Columns[0]))
}

// Row materializes row i across all columns.
func (f *Frame) Row(i int) Row {
	row := make(Row, len(f.Columns))
	for c := range f.Columns {
		row[c] = f.Columns[c][i]
	}
	return row
}

// Clone makes an independent copy of the Frame, used by Collect's
// identity-on-a-Frame behavior (spec.md section 4.4) so the returned
// handle never aliases the input handle's storage.
func (f *Frame) Clone() *Frame {
	cols := make([][]interface{}, len(f.Columns))
	for i, col := range f.Columns {
		cols[i] = append([]interface{}(nil), col...)
	}
	schema := append(Schema(nil), f.Schema...)
	return &Frame{Schema: schema, Columns: cols}
}

// AppendNullRow appends one row of nulls, preserving per-column dtypes
// (the dtype is carried in the Schema, not the value, so a nil value
// already "preserves" it).
func (f *Frame) AppendNullRow() {
	for i := range f.Columns {
		f.Columns[i] = append(f.Columns[i], nil)
	}
}

// RenderCSV emits the frame as CSV using delimiter (defaults to ',' if
// zero), including a header row of column names. Grounded on stdlib
// encoding/csv; no third-party CSV library appears anywhere in the
// retrieval pack (see DESIGN.md).
func (f *Frame) RenderCSV(delimiter rune) (string, error) {
	if delimiter == 0 {
		delimiter = ','
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter

	if err := w.Write(f.Schema.Names()); err != nil {
		return "", err
	}
	for i := int64(0); i < f.RowCount(); i++ {
		record := make([]string, len(f.Columns))
		for c := range f.Columns {
			record[c] = cellToCSV(f.Columns[c][i])
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func cellToCSV(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// RenderDisplay renders a human-oriented textual table, truncated to
// maxRows, with a humanize-d row-count summary line (see DESIGN.md for
// the go-humanize wiring).
func (f *Frame) RenderDisplay(maxRows int) string {
	var b strings.Builder
	total := f.RowCount()

	names := f.Schema.Names()
	widths := make([]int, len(names))
	for i, n := range names {
		widths[i] = len(n)
	}
	shown := total
	if maxRows > 0 && shown > int64(maxRows) {
		shown = int64(maxRows)
	}
	for i := int64(0); i < shown; i++ {
		for c := range f.Columns {
			s := cellToCSV(f.Columns[c][i])
			if len(s) > widths[c] {
				widths[c] = len(s)
			}
		}
	}

	writeRow := func(cells []string) {
		b.WriteByte('|')
		for i, c := range cells {
			b.WriteByte(' ')
			b.WriteString(c)
			b.WriteString(strings.Repeat(" ", widths[i]-len(c)))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
	}

	writeRow(names)
	sep := make([]string, len(names))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeRow(sep)
	for i := int64(0); i < shown; i++ {
		cells := make([]string, len(f.Columns))
		for c := range f.Columns {
			cells[c] = cellToCSV(f.Columns[c][i])
		}
		writeRow(cells)
	}

	fmt.Fprintf(&b, "\n%s rows total", humanize.Comma(total))
	if shown < total {
		fmt.Fprintf(&b, " (showing %s)", humanize.Comma(shown))
	}
	return b.String()
}

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
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/miretskiy/firn/frame"
)

// Scanner reads a CSV source into a Table. Grounded on stdlib
// encoding/csv; no third-party CSV library appears anywhere in the
// retrieval pack (see DESIGN.md).
type Scanner interface {
	ReadCSV(path string, hasHeader bool, withGlob bool) (*Table, error)
}

// ParquetScanner reads a Parquet source into a Table. Pluggable and
// nil by default: no Parquet library appears anywhere in the retrieval
// pack, so this stays an injectable seam rather than a fabricated
// dependency (see DESIGN.md).
type ParquetScanner interface {
	ReadParquet(path string, columns []string, nRows int64, parallel bool) (*Table, error)
}

// SQLExecutor evaluates a SQL statement against a registered table and
// returns the result. Pluggable and nil by default for the same reason
// as ParquetScanner.
type SQLExecutor interface {
	Query(alias string, table *Table, sql string) (*Table, error)
}

// CSVScanner is the default Scanner implementation.
type CSVScanner struct{}

// NewCSVScanner returns the stdlib-backed CSV scanner.
func NewCSVScanner() *CSVScanner { return &CSVScanner{} }

// ReadCSV reads path (optionally glob-expanded) into a single Table,
// inferring each column's type from all of its non-empty cells across
// all matched files. It takes no column list or row limit: every
// column and every row of every matched file is read.
func (s *CSVScanner) ReadCSV(path string, hasHeader bool, withGlob bool) (*Table, error) {
	paths := []string{path}
	if withGlob {
		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, frame.ErrBackingLibrary.New(err.Error())
		}
		if len(matches) == 0 {
			return nil, frame.ErrBackingLibrary.New("no files matched glob: " + path)
		}
		paths = matches
	}

	var header []string
	var records [][]string
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, frame.ErrBackingLibrary.New(err.Error())
		}
		rows, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			return nil, frame.ErrBackingLibrary.New(err.Error())
		}
		if len(rows) == 0 {
			continue
		}
		start := 0
		if hasHeader {
			if header == nil {
				header = rows[0]
			}
			start = 1
		}
		records = append(records, rows[start:]...)
	}

	width := 0
	if header != nil {
		width = len(header)
	} else if len(records) > 0 {
		width = len(records[0])
	}
	if header == nil {
		header = make([]string, width)
		for i := range header {
			header[i] = "column_" + strconv.Itoa(i)
		}
	}

	cols := make([][]interface{}, width)
	for c := range cols {
		cols[c] = make([]interface{}, 0, len(records))
	}
	for _, rec := range records {
		for c := 0; c < width; c++ {
			var cell string
			if c < len(rec) {
				cell = rec[c]
			}
			cols[c] = append(cols[c], cell)
		}
	}

	schema := make(frame.Schema, width)
	for c := range schema {
		schema[c] = frame.Column{Name: header[c], Type: inferColumnType(cols[c]), Nullable: true}
	}
	coerceColumns(schema, cols)

	return frame.NewFrame(schema, cols), nil
}

// inferColumnType guesses a column's dtype from its raw string cells:
// all-integer parses to Int64, all-numeric (with at least one float)
// to Float64, otherwise Utf8. Empty columns default to Utf8.
func inferColumnType(cells []interface{}) frame.ColumnType {
	sawFloat := false
	for _, c := range cells {
		s, _ := c.(string)
		if s == "" {
			continue
		}
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			sawFloat = true
			continue
		}
		return frame.TypeUtf8
	}
	if sawFloat {
		return frame.TypeFloat64
	}
	for _, c := range cells {
		s, _ := c.(string)
		if s != "" {
			return frame.TypeInt64
		}
	}
	return frame.TypeUtf8
}

// coerceColumns rewrites each column's raw string cells in place to
// match the inferred schema type, turning empty cells into nulls.
func coerceColumns(schema frame.Schema, cols [][]interface{}) {
	for c, col := range schema {
		for i, v := range cols[c] {
			s, _ := v.(string)
			if s == "" {
				cols[c][i] = nil
				continue
			}
			switch col.Type.Family {
			case frame.FamilyInt:
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					cols[c][i] = nil
					continue
				}
				cols[c][i] = n
			case frame.FamilyFloat:
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					cols[c][i] = nil
					continue
				}
				cols[c][i] = f
			default:
				cols[c][i] = s
			}
		}
	}
}

// scanOp wraps an already-materialized Table as the base of an operator
// tree, the shape ReadCsv/ReadParquet/NewEmpty opcodes produce (spec.md
// 4.4: "Returns a Plan" even though the scan itself is eager here).
type scanOp struct {
	table *Table
}

// NewScanOp wraps table as a zero-cost Plan base.
func NewScanOp(table *Table) Op {
	return &scanOp{table: table}
}

func (s *scanOp) Materialize() (*Table, error) {
	return s.table, nil
}

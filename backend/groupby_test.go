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
	"testing"

	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
	"github.com/stretchr/testify/require"
)

func TestGroupByMeanMatchesScenario(t *testing.T) {
	require := require.New(t)

	schema := frame.Schema{
		{Name: "dept", Type: frame.TypeUtf8},
		{Name: "salary", Type: frame.TypeFloat64},
	}
	cols := [][]interface{}{
		{"E", "S", "E", "M", "S"},
		{70.0, 45.0, 80.0, 55.0, 50.0},
	}
	table := frame.NewFrame(schema, cols)

	mean := expr.NewAggregation(expr.AggMean, expr.NewColumn("salary"), 0, false)
	grouped := NewGroupedOp(NewScanOp(table), []string{"dept"})
	out, err := grouped.Resolve([]expr.Expression{mean}).Materialize()
	require.NoError(err)
	require.Equal(int64(3), out.RowCount())

	got := map[string]float64{}
	for i := 0; i < int(out.RowCount()); i++ {
		got[out.Columns[0][i].(string)] = out.Columns[1][i].(float64)
	}
	require.Equal(75.0, got["E"])
	require.Equal(55.0, got["M"])
	require.Equal(47.5, got["S"])
}

func TestCountOp(t *testing.T) {
	require := require.New(t)

	out, err := NewCountOp(NewScanOp(sampleTable())).Materialize()
	require.NoError(err)
	require.Equal([]string{"count"}, out.Schema.Names())
	require.Equal(int64(3), out.Columns[0][0])
}

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

package expr

import (
	"testing"

	"github.com/miretskiy/firn/frame"
	"github.com/stretchr/testify/require"
)

func TestNullPredicates(t *testing.T) {
	require := require.New(t)

	schema := frame.Schema{{Name: "x", Type: frame.TypeInt64}}
	ctx := &EvalContext{Schema: schema, Rows: []frame.Row{frame.NewRow(nil)}, RowIndex: 0}

	isNull, err := NewIsNull(NewColumn("x")).Eval(ctx)
	require.NoError(err)
	require.Equal(true, isNull)

	isNotNull, err := NewIsNotNull(NewColumn("x")).Eval(ctx)
	require.NoError(err)
	require.Equal(false, isNotNull)
}

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

func litStr(t *testing.T, s string) Expression {
	t.Helper()
	e, err := NewLiteral(frame.NewLiteralString(frame.NewStringView(s)))
	require.NoError(t, err)
	return e
}

func TestStringFnLen(t *testing.T) {
	require := require.New(t)
	v, err := NewStringFn(StrLen, litStr(t, "hello"), "").Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(int64(5), v)
}

func TestStringFnContainsStartsEnds(t *testing.T) {
	require := require.New(t)

	v, err := NewStringFn(StrContains, litStr(t, "hello world"), "wor").Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(true, v)

	v, err = NewStringFn(StrStartsWith, litStr(t, "hello world"), "hel").Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(true, v)

	v, err = NewStringFn(StrEndsWith, litStr(t, "hello world"), "rld").Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(true, v)
}

func TestStringFnLowerUpper(t *testing.T) {
	require := require.New(t)

	v, err := NewStringFn(StrLower, litStr(t, "HeLLo"), "").Eval(&EvalContext{})
	require.NoError(err)
	require.Equal("hello", v)

	v, err = NewStringFn(StrUpper, litStr(t, "HeLLo"), "").Eval(&EvalContext{})
	require.NoError(err)
	require.Equal("HELLO", v)
}

func TestStringFnNullPropagates(t *testing.T) {
	require := require.New(t)

	schema := frame.Schema{{Name: "x", Type: frame.TypeUtf8}}
	ctx := &EvalContext{Schema: schema, Rows: []frame.Row{frame.NewRow(nil)}, RowIndex: 0}

	v, err := NewStringFn(StrLen, NewColumn("x"), "").Eval(ctx)
	require.NoError(err)
	require.Nil(v)
}

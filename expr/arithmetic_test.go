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

func mustLit(t *testing.T, lit frame.Literal) Expression {
	t.Helper()
	e, err := NewLiteral(lit)
	require.NoError(t, err)
	return e
}

func TestArithmeticIntStaysInt(t *testing.T) {
	require := require.New(t)

	left := mustLit(t, frame.NewLiteralI64(4))
	right := mustLit(t, frame.NewLiteralI64(2))

	sum := NewArithmetic(ArithAdd, left, right)
	v, err := sum.Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(int64(6), v)
	require.Equal(frame.TypeInt64, sum.Type())
}

func TestArithmeticDivPromotesFloat(t *testing.T) {
	require := require.New(t)

	left := mustLit(t, frame.NewLiteralI64(7))
	right := mustLit(t, frame.NewLiteralI64(2))

	div := NewArithmetic(ArithDiv, left, right)
	v, err := div.Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(3.5, v)
}

func TestArithmeticDivisionByZero(t *testing.T) {
	require := require.New(t)

	left := mustLit(t, frame.NewLiteralI64(1))
	right := mustLit(t, frame.NewLiteralI64(0))

	_, err := NewArithmetic(ArithDiv, left, right).Eval(&EvalContext{})
	require.Error(err)
	require.True(frame.ErrBackingLibrary.Is(err))
}

func TestArithmeticNullOperand(t *testing.T) {
	require := require.New(t)

	schema := frame.Schema{{Name: "x", Type: frame.TypeInt64}}
	rows := []frame.Row{frame.NewRow(nil)}
	ctx := &EvalContext{Schema: schema, Rows: rows, RowIndex: 0}

	left := NewColumn("x")
	right := mustLit(t, frame.NewLiteralI64(1))

	v, err := NewArithmetic(ArithAdd, left, right).Eval(ctx)
	require.NoError(err)
	require.Nil(v)
}

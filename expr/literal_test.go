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

func TestLiteralExprEval(t *testing.T) {
	require := require.New(t)

	lit, err := NewLiteral(frame.NewLiteralI64(7))
	require.NoError(err)
	require.Equal(frame.TypeInt64, lit.Type())

	v, err := lit.Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(int64(7), v)
}

func TestLiteralExprString(t *testing.T) {
	require := require.New(t)

	lit, err := NewLiteral(frame.NewLiteralString(frame.NewStringView("hi")))
	require.NoError(err)
	require.Equal(frame.TypeUtf8, lit.Type())
	require.Equal("hi", lit.String())
}

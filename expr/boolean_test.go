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

func litBool(t *testing.T, b bool) Expression {
	t.Helper()
	e, err := NewLiteral(frame.NewLiteralBool(b))
	require.NoError(t, err)
	return e
}

func TestBooleanAndShortCircuitsOnFalse(t *testing.T) {
	require := require.New(t)

	v, err := NewBoolean(BoolAnd, litBool(t, false), litBool(t, true)).Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(false, v)
}

func TestBooleanOrShortCircuitsOnTrue(t *testing.T) {
	require := require.New(t)

	v, err := NewBoolean(BoolOr, litBool(t, true), litBool(t, false)).Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(true, v)
}

func TestNotExpr(t *testing.T) {
	require := require.New(t)

	v, err := NewNot(litBool(t, false)).Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(true, v)
}

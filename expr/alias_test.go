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

func TestAliasExpr(t *testing.T) {
	require := require.New(t)

	lit, err := NewLiteral(frame.NewLiteralI64(3))
	require.NoError(err)

	aliased := NewAlias("total", lit)
	require.Equal("total", aliased.Name())
	require.Equal(frame.TypeInt64, aliased.Type())

	v, err := aliased.Eval(&EvalContext{})
	require.NoError(err)
	require.Equal(int64(3), v)
}

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

package opcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpcodeRanges(t *testing.T) {
	require := require.New(t)

	require.True(NewEmpty.IsFrameOp())
	require.False(NewEmpty.IsExpressionOp())

	require.True(Column.IsExpressionOp())
	require.False(Column.IsExpressionOp() && Column.IsFrameOp())

	require.True(Join.IsFrameOp())
	require.True(SqlExpr.IsExpressionOp())
}

func TestOpcodeKnownAndUnknown(t *testing.T) {
	require := require.New(t)

	require.True(NewEmpty.Known())
	require.False(Code(0).Known())
	require.False(Code(900).Known())
	require.Equal("NewEmpty", NewEmpty.String())
	require.Equal("opcode(0)", Code(0).String())
}

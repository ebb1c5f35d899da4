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

func TestStackPushPop(t *testing.T) {
	require := require.New(t)

	s := NewStack()
	require.True(s.Empty())

	a := mustLit(t, frame.NewLiteralI64(1))
	s.Push(a)
	require.Equal(1, s.Len())

	got, err := s.Pop()
	require.NoError(err)
	require.Equal(a, got)
	require.True(s.Empty())
}

func TestStackPopUnderflow(t *testing.T) {
	require := require.New(t)

	s := NewStack()
	_, err := s.Pop()
	require.Error(err)
	require.True(frame.ErrStackUnderflow.Is(err))
}

func TestStackPopNUnderflow(t *testing.T) {
	require := require.New(t)

	s := NewStack()
	s.Push(mustLit(t, frame.NewLiteralI64(1)))
	_, err := s.PopN(2)
	require.Error(err)
}

func TestStackDrain(t *testing.T) {
	require := require.New(t)

	s := NewStack()
	s.Push(mustLit(t, frame.NewLiteralI64(1)))
	s.Push(mustLit(t, frame.NewLiteralI64(2)))

	drained := s.Drain()
	require.Len(drained, 2)
	require.True(s.Empty())
}

func TestStackDrainOneRequiresExactlyOne(t *testing.T) {
	require := require.New(t)

	s := NewStack()
	_, err := s.DrainOne()
	require.Error(err)
	require.True(frame.ErrExpressionShape.Is(err))

	s.Push(mustLit(t, frame.NewLiteralI64(1)))
	one, err := s.DrainOne()
	require.NoError(err)
	require.NotNil(one)
	require.True(s.Empty())
}

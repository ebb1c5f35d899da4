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

package exec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/miretskiy/firn/backend"
	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
	"github.com/miretskiy/firn/opcode"
	"github.com/miretskiy/firn/plan"
	"github.com/stretchr/testify/require"
)

func newDriver(reg *frame.Registry, collab plan.Collaborators) *Driver {
	return NewDriver(reg, collab, nil, nil)
}

func columnOp(name string) frame.Operation {
	return frame.Operation{Opcode: uint32(opcode.Column), Args: expr.ColumnArgs{Name: frame.NewStringView(name)}}
}

func literalI64Op(v int64) frame.Operation {
	return frame.Operation{Opcode: uint32(opcode.LiteralOp), Args: expr.LiteralArgs{Value: frame.NewLiteralI64(v)}}
}

func binOp(code opcode.Code) frame.Operation {
	return frame.Operation{Opcode: uint32(code)}
}

func TestReadFilterCollectEndToEnd(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(os.WriteFile(path, []byte("a,b\n1,10\n2,20\n3,30\n"), 0o644))

	reg := frame.NewRegistry()
	d := newDriver(reg, plan.Collaborators{Scanner: backend.NewCSVScanner()})

	result := d.ExecuteOperations(frame.Tagged{}, []frame.Operation{
		{Opcode: uint32(opcode.ReadCsv), Args: plan.ReadCsvArgs{Path: frame.NewStringView(path), HasHeader: true}},
		{Opcode: uint32(opcode.FilterExpr), Args: plan.SubProgramArgs{Program: []frame.Operation{
			columnOp("a"), literalI64Op(1), binOp(opcode.Gt),
		}}},
		{Opcode: uint32(opcode.Collect)},
	})
	require.True(result.Ok())
	require.Equal(frame.ContextFrame, result.Tag)

	out, _, found := reg.Get(result.Handle)
	require.True(found)
	table := out.(*frame.Frame)
	require.Equal(int64(2), table.RowCount())
}

func TestGroupedPlanMisuseReportsOffendingIndex(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(os.WriteFile(path, []byte("a\n1\n2\n"), 0o644))

	reg := frame.NewRegistry()
	d := newDriver(reg, plan.Collaborators{Scanner: backend.NewCSVScanner()})

	result := d.ExecuteOperations(frame.Tagged{}, []frame.Operation{
		{Opcode: uint32(opcode.ReadCsv), Args: plan.ReadCsvArgs{Path: frame.NewStringView(path), HasHeader: true}},
		{Opcode: uint32(opcode.GroupBy), Args: plan.GroupByArgs{Keys: []frame.StringView{frame.NewStringView("a")}}},
		{Opcode: uint32(opcode.Select), Args: plan.SelectArgs{Columns: []frame.StringView{frame.NewStringView("a")}}},
	})
	require.False(result.Ok())
	require.Equal(uint64(2), result.OffendingIndex)
	require.Equal(frame.CodeBackingLibrary, result.ErrorCode)
	require.Contains(result.ErrorMessage, "resolve grouping")
}

func TestLimitZeroReportsCodeTwo(t *testing.T) {
	require := require.New(t)
	reg := frame.NewRegistry()
	d := newDriver(reg, plan.Collaborators{})

	current := frame.Tagged{Handle: reg.Put(frame.ContextFrame, frame.NewEmptyFrame()), Tag: frame.ContextFrame}
	result := d.ExecuteOperations(current, []frame.Operation{
		{Opcode: uint32(opcode.Limit), Args: plan.LimitArgs{N: 0}},
	})
	require.False(result.Ok())
	require.Equal(frame.CodeInvalidArgs, result.ErrorCode)
	require.Equal(uint64(0), result.OffendingIndex)
}

func TestInitialHandleNotReleasedOnImmediateFailure(t *testing.T) {
	require := require.New(t)
	reg := frame.NewRegistry()
	d := newDriver(reg, plan.Collaborators{})

	h := reg.Put(frame.ContextFrame, frame.NewEmptyFrame())
	current := frame.Tagged{Handle: h, Tag: frame.ContextFrame}

	result := d.ExecuteOperations(current, []frame.Operation{
		{Opcode: uint32(opcode.Limit), Args: plan.LimitArgs{N: 0}},
	})
	require.False(result.Ok())

	_, _, found := reg.Get(h)
	require.True(found, "the caller-owned initial handle must survive a failed chain")
}

func TestUnknownOpcodeErrors(t *testing.T) {
	require := require.New(t)
	reg := frame.NewRegistry()
	d := newDriver(reg, plan.Collaborators{})

	result := d.ExecuteOperations(frame.Tagged{}, []frame.Operation{
		{Opcode: 9999},
	})
	require.False(result.Ok())
	require.Equal(uint64(0), result.OffendingIndex)
}

func TestEmptyChainReturnsInitialHandleUnchanged(t *testing.T) {
	require := require.New(t)
	reg := frame.NewRegistry()
	d := newDriver(reg, plan.Collaborators{})

	h := reg.Put(frame.ContextFrame, frame.NewEmptyFrame())
	current := frame.Tagged{Handle: h, Tag: frame.ContextFrame}

	result := d.ExecuteOperations(current, nil)
	require.True(result.Ok())
	require.Equal(h, result.Handle)
	require.Equal(frame.ContextFrame, result.Tag)
}

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

package plan

import (
	"github.com/miretskiy/firn/backend"
	"github.com/miretskiy/firn/frame"
)

// ReadCsvArgs decodes the ReadCsv opcode's argument blob.
type ReadCsvArgs struct {
	Path      frame.StringView
	HasHeader bool
	WithGlob  bool
}

// ReadParquetArgs decodes the ReadParquet opcode's argument blob.
// NRows of 0 means "all rows", per spec.md 4.4.
type ReadParquetArgs struct {
	Path     frame.StringView
	Columns  []frame.StringView
	NRows    int64
	Parallel bool
}

// SelectArgs decodes the Select opcode's argument blob: a fixed list
// of existing column names.
type SelectArgs struct {
	Columns []frame.StringView
}

// SubProgramArgs decodes FilterExpr's embedded expression sub-program:
// an array of expression opcodes executed against their own private
// stack, which must terminate with exactly one expression.
type SubProgramArgs struct {
	Program []frame.Operation
}

// GroupByArgs decodes the GroupBy opcode's argument blob.
type GroupByArgs struct {
	Keys []frame.StringView
}

// SortArgs decodes the Sort opcode's argument blob.
type SortArgs struct {
	Fields []frame.SortField
}

// LimitArgs decodes the Limit opcode's argument blob.
type LimitArgs struct {
	N int64
}

// ConcatArgs decodes the Concat opcode's argument blob: an array of
// Frame handles, per spec.md 9's note that Concat is "functional, not
// methodic" — the current handle is unused.
type ConcatArgs struct {
	Handles []frame.Handle
}

// QueryArgs decodes the Query opcode's argument blob.
type QueryArgs struct {
	SQL frame.StringView
}

// JoinArgs decodes the Join opcode's argument blob.
type JoinArgs struct {
	Right     frame.Handle
	LeftKeys  []frame.StringView
	RightKeys []frame.StringView
	Kind      backend.JoinKind
	Suffix    frame.StringView
}

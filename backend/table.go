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

package backend

import "github.com/miretskiy/firn/frame"

// Table is the eager, materialized representation an Op resolves to.
// It is frame.Frame itself: the column-major store spec.md's Frame
// describes is exactly what the backing library hands back on
// materialization, so there is no separate wrapper type.
type Table = frame.Frame

// Op is a node in a deferred operator tree — spec.md's Plan. Each
// concrete Op wraps an upstream Op (or a base table) and knows how to
// produce a Table from it; intermediate Ops are never materialized
// until Materialize is called at the end of a chain (Collect) or by an
// operator that itself needs eager input (Concat's member frames,
// Join's right side).
type Op interface {
	Materialize() (*Table, error)
}

// JoinKind names the join variants spec.md 4.4 lists for the Join
// opcode.
type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
	JoinSemi
	JoinAnti
)

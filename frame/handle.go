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

package frame

// Handle is an opaque token identifying exactly one engine-owned object.
// The zero Handle denotes "no handle" and only ever appears in error
// results or as the seed of an operation that constructs a frame from
// nothing.
type Handle uint64

// NoHandle is the zero token.
const NoHandle Handle = 0

// ContextTag names the kind of object a Handle refers to.
type ContextTag int32

const (
	// ContextNone is used only alongside NoHandle.
	ContextNone ContextTag = 0
	// ContextFrame tags a materialized Frame.
	ContextFrame ContextTag = 1
	// ContextPlan tags a deferred Plan.
	ContextPlan ContextTag = 2
	// ContextGroupedPlan tags a Plan partitioned by GroupBy, awaiting Agg.
	ContextGroupedPlan ContextTag = 3
)

// String implements fmt.Stringer for log messages.
func (c ContextTag) String() string {
	switch c {
	case ContextFrame:
		return "Frame"
	case ContextPlan:
		return "Plan"
	case ContextGroupedPlan:
		return "GroupedPlan"
	default:
		return "None"
	}
}

// Tagged pairs a Handle with the ContextTag of the object it names.
type Tagged struct {
	Handle Handle
	Tag    ContextTag
}

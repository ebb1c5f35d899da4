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

// Package plan implements the seventeen frame-opcode handlers (spec.md
// section 4.4) and the context automaton each one enforces (section
// 4.3). A Plan or GroupedPlan is never a distinct Go type here: the
// handle registry stores a *frame.Frame for Frame context, a
// backend.Op for Plan context, and a *backend.GroupedOp for
// GroupedPlan context, and Apply type-switches on the tag it reads
// back. plan depends only on backend's interfaces and concrete
// operator constructors, never reaching past it into a real columnar
// engine.
package plan

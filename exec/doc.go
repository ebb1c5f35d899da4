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

// Package exec is the single-entry chain driver (spec.md section 4.5):
// it walks an Operation array strictly in order, routes each opcode to
// plan.Apply or expr.Apply depending on its numeric range, enforces
// the handle-release discipline between steps, and reports the
// offending index on failure.
package exec

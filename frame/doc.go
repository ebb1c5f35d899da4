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

// Package frame defines the flat wire types that cross the FFI boundary:
// handles, string views, literals, sort fields, operations, schemas, and
// the materialized Frame itself. Nothing in this package allocates on
// behalf of caller-owned memory; StringViews and Literal strings are
// borrowed for the duration of a single call.
package frame

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

// Package firn is the public FFI-facing surface of the engine: a
// single Engine type wrapping the handle registry, the chain driver,
// and the pluggable backing-library collaborators (CSV scanner,
// Parquet scanner, SQL executor/parser). It is the analogue of
// package sqle's Engine in the teacher repo — a Go-native entry point
// a thin cgo shim translates to and from the C ABI. This module does
// not write that shim; it only shapes the API so the shim is
// mechanical.
package firn

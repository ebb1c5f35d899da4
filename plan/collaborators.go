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

import "github.com/miretskiy/firn/backend"

// Collaborators bundles the external, pluggable backing-library seams
// ReadCsv/ReadParquet/Query draw on. Scanner is expected to be wired
// (backend.NewCSVScanner()); ParquetScanner and SQLExecutor are nil by
// default per spec.md section 1's framing of Parquet and SQL as
// out-of-scope collaborators (see DESIGN.md).
type Collaborators struct {
	Scanner        backend.Scanner
	ParquetScanner backend.ParquetScanner
	SQLExecutor    backend.SQLExecutor
}

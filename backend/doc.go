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

// Package backend supplies the relational algebra spec.md section 1
// scopes as an external collaborator: eager tables, deferred operator
// trees, and the scan/join/sort/group/aggregate machinery that
// materializes them. Package plan depends only on the interfaces here,
// never on the concrete operator types.
package backend

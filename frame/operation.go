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

// Operation is {opcode u32, arguments-pointer usize} per spec.md
// section 6. In this Go-native boundary Args is already the decoded
// argument value the cgo shim produced; the opcode's handler type-
// asserts it to the struct it expects.
type Operation struct {
	Opcode uint32
	Args   interface{}
}

// OperationResult is the chain driver's output: a new handle plus its
// context tag, or an error with the offending opcode index.
type OperationResult struct {
	Handle         Handle
	Tag            ContextTag
	ErrorCode      int32
	ErrorMessage   string
	OffendingIndex uint64
}

// Ok reports whether the result represents success.
func (r OperationResult) Ok() bool {
	return r.ErrorCode == 0
}

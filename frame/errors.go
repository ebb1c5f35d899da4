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

import (
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Wire error codes, spec.md section 6.
const (
	CodeNullHandle     int32 = 1
	CodeInvalidArgs    int32 = 2
	CodeInvalidUTF8    int32 = 3
	CodeBackingLibrary int32 = 4
)

// Error kinds. WireCode (below) maps ErrNullHandle, ErrEmptyArguments
// and ErrInvalidUTF8 to wire codes 1-3 and every other kind to 4.
// Modeled on auth.ErrNotAuthorized / auth.ErrNoPermission in the teacher
// repo, which use errors.NewKind for every sentinel error.
var (
	ErrNullHandle       = goerrors.NewKind("handle is null")
	ErrEmptyArguments   = goerrors.NewKind("arguments are null or empty")
	ErrInvalidUTF8      = goerrors.NewKind("invalid UTF-8 in string view")
	ErrUnknownOpcode    = goerrors.NewKind("unknown opcode %d")
	ErrContextMisuse    = goerrors.NewKind("%s")
	ErrStackUnderflow   = goerrors.NewKind("expression stack underflow: opcode %d needs %d operand(s)")
	ErrExpressionShape  = goerrors.NewKind("%s")
	ErrUnknownLiteral   = goerrors.NewKind("unknown literal tag %d")
	ErrUnknownCast      = goerrors.NewKind("unknown cast family/variant 0x%x")
	ErrBackingLibrary   = goerrors.NewKind("%s")
	ErrHandleNotFound   = goerrors.NewKind("handle %d not found or already released")
)

// ErrInvalidArguments reports an opcode whose Args value didn't
// type-assert to the struct its opcode expects, e.g. a Column opcode
// carrying Literal's argument shape.
func ErrInvalidArguments(opName string, code uint32) error {
	return ErrEmptyArguments.New()
}

// WireCode maps a Kind back to its wire error code. Unregistered kinds
// default to CodeBackingLibrary (category 4: backing-library failure),
// matching spec.md's "expression-level failures reuse code 4".
func WireCode(kind *goerrors.Kind) int32 {
	switch kind {
	case ErrNullHandle:
		return CodeNullHandle
	case ErrEmptyArguments:
		return CodeInvalidArgs
	case ErrInvalidUTF8:
		return CodeInvalidUTF8
	default:
		return CodeBackingLibrary
	}
}

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

import "unicode/utf8"

// StringView is a borrowed {pointer, length} view into caller memory. In
// this Go-native boundary the "pointer" is already materialized as a Go
// string by the cgo shim; StringView keeps the same name and contract
// (borrow-only, must be valid UTF-8 for the call's duration) so the
// ownership story documented in spec.md section 5 stays explicit at
// every call site that accepts one.
type StringView struct {
	data string
}

// NewStringView wraps a borrowed string. The engine never mutates or
// retains data beyond validating and, where needed, copying it.
func NewStringView(data string) StringView {
	return StringView{data: data}
}

// Valid reports whether the view holds well-formed UTF-8.
func (s StringView) Valid() bool {
	return utf8.ValidString(s.data)
}

// Borrow returns the view's bytes without copying. Callers that need to
// retain the value beyond the current call must use Copy instead.
func (s StringView) Borrow() string {
	return s.data
}

// Copy returns an owned copy of the view's bytes, safe to retain past
// the call (e.g. a column name interned into a returned Plan).
func (s StringView) Copy() string {
	b := make([]byte, len(s.data))
	copy(b, s.data)
	return string(b)
}

// Empty reports whether the view has zero length.
func (s StringView) Empty() bool {
	return len(s.data) == 0
}

// Require borrows the view's bytes after validating them, the shared
// decoder every StringView-carrying opcode argument (column/alias
// names, keys, paths, SQL text, ...) goes through so invalid UTF-8
// reports wire code 3 uniformly instead of only at Literal.Value's
// string-literal path.
func (s StringView) Require() (string, error) {
	if !s.Valid() {
		return "", ErrInvalidUTF8.New()
	}
	return s.data, nil
}

// RequireViews validates and borrows a slice of StringViews in order,
// stopping at the first invalid one.
func RequireViews(views []StringView) ([]string, error) {
	out := make([]string, len(views))
	for i, v := range views {
		s, err := v.Require()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

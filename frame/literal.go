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

import "github.com/spf13/cast"

// LiteralTag selects which field of a Literal is populated, per spec.md
// section 6: "a fixed struct carrying all four value slots plus a tag
// byte {0=i64, 1=f64, 2=string, 3=bool}. Unused slots are ignored."
type LiteralTag byte

const (
	LiteralI64    LiteralTag = 0
	LiteralF64    LiteralTag = 1
	LiteralString LiteralTag = 2
	LiteralBool   LiteralTag = 3
)

// Literal is a tagged union over {i64, f64, borrowed string view, bool}.
// String literals reference host memory and must outlive the call.
type Literal struct {
	Tag    LiteralTag
	I64    int64
	F64    float64
	Str    StringView
	Bool   bool
}

// NewLiteralI64 builds an i64 literal.
func NewLiteralI64(v int64) Literal { return Literal{Tag: LiteralI64, I64: v} }

// NewLiteralF64 builds an f64 literal.
func NewLiteralF64(v float64) Literal { return Literal{Tag: LiteralF64, F64: v} }

// NewLiteralString builds a borrowed string literal.
func NewLiteralString(v StringView) Literal { return Literal{Tag: LiteralString, Str: v} }

// NewLiteralBool builds a bool literal.
func NewLiteralBool(v bool) Literal { return Literal{Tag: LiteralBool, Bool: v} }

// Value reads the tag and returns the populated slot as interface{},
// reporting ErrUnknownLiteral for a tag outside {0,1,2,3}.
func (l Literal) Value() (interface{}, error) {
	switch l.Tag {
	case LiteralI64:
		return l.I64, nil
	case LiteralF64:
		return l.F64, nil
	case LiteralString:
		if !l.Str.Valid() {
			return nil, ErrInvalidUTF8.New()
		}
		return l.Str.Copy(), nil
	case LiteralBool:
		return l.Bool, nil
	default:
		return nil, ErrUnknownLiteral.New(l.Tag)
	}
}

// Coerce reads the literal's value and casts it to the requested
// ColumnType family using spf13/cast, yielding a concrete scalar
// regardless of the literal's native tag. The Cast expression opcode
// does not call it; it coerces through expr's own helper.
func (l Literal) Coerce(want ColumnType) (interface{}, error) {
	v, err := l.Value()
	if err != nil {
		return nil, err
	}
	switch want.Family {
	case FamilyInt:
		return cast.ToInt64E(v)
	case FamilyFloat:
		return cast.ToFloat64E(v)
	case FamilyString:
		return cast.ToStringE(v)
	case FamilyBool:
		return cast.ToBoolE(v)
	default:
		return v, nil
	}
}

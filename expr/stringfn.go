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

package expr

import (
	"strings"

	"github.com/miretskiy/firn/frame"
	"github.com/spf13/cast"
)

// StringFnArgs is the decoded argument for Contains/StartsWith/
// EndsWith; ignored for Len/Lower/Upper.
type StringFnArgs struct {
	Pattern frame.StringView
}

// StringFnKind names the string operators spec.md 4.2 lists: Len,
// Contains, StartsWith, EndsWith, Lower, Upper.
type StringFnKind int

const (
	StrLen StringFnKind = iota
	StrContains
	StrStartsWith
	StrEndsWith
	StrLower
	StrUpper
)

var stringFnNames = map[StringFnKind]string{
	StrLen: "len", StrContains: "contains", StrStartsWith: "starts_with",
	StrEndsWith: "ends_with", StrLower: "lower", StrUpper: "upper",
}

// StringFnExpr pops one expression; pattern-bearing variants
// (Contains/StartsWith/EndsWith) additionally read a borrowed pattern
// string, per spec.md 4.2.
type StringFnExpr struct {
	kind    StringFnKind
	inner   Expression
	pattern string
}

// NewStringFn builds a string-function expression. pattern is ignored
// for Len/Lower/Upper.
func NewStringFn(kind StringFnKind, inner Expression, pattern string) *StringFnExpr {
	return &StringFnExpr{kind: kind, inner: inner, pattern: pattern}
}

func (s *StringFnExpr) Name() string { return stringFnNames[s.kind] + "(" + s.inner.Name() + ")" }
func (s *StringFnExpr) Type() frame.ColumnType {
	if s.kind == StrLen {
		return frame.TypeInt64
	}
	if s.kind == StrContains || s.kind == StrStartsWith || s.kind == StrEndsWith {
		return frame.TypeBool
	}
	return frame.TypeUtf8
}
func (s *StringFnExpr) IsAggregate() bool      { return false }
func (s *StringFnExpr) Children() []Expression { return []Expression{s.inner} }
func (s *StringFnExpr) String() string         { return s.Name() }

func (s *StringFnExpr) Eval(ctx *EvalContext) (interface{}, error) {
	v, err := s.inner.Eval(ctx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		return nil, frame.ErrBackingLibrary.New(err.Error())
	}
	switch s.kind {
	case StrLen:
		return int64(len([]rune(str))), nil
	case StrContains:
		return strings.Contains(str, s.pattern), nil
	case StrStartsWith:
		return strings.HasPrefix(str, s.pattern), nil
	case StrEndsWith:
		return strings.HasSuffix(str, s.pattern), nil
	case StrLower:
		return strings.ToLower(str), nil
	case StrUpper:
		return strings.ToUpper(str), nil
	}
	return nil, frame.ErrBackingLibrary.New("unreachable string fn kind")
}

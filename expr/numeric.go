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
	"github.com/miretskiy/firn/frame"
	"github.com/spf13/cast"
)

// asFloat64 coerces a dynamic scalar to float64 using spf13/cast, the
// same coercion library frame.Literal.Coerce and the Cast opcode use.
func asFloat64(v interface{}) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, frame.ErrBackingLibrary.New(err.Error())
	}
	return f, nil
}

// bothNumeric evaluates left and right against ctx and coerces both to
// float64, propagating a null (nil) operand as nil/false rather than
// an error.
func bothNumeric(ctx *EvalContext, left, right Expression) (float64, float64, bool, error) {
	lv, err := left.Eval(ctx)
	if err != nil {
		return 0, 0, false, err
	}
	rv, err := right.Eval(ctx)
	if err != nil {
		return 0, 0, false, err
	}
	if lv == nil || rv == nil {
		return 0, 0, false, nil
	}
	lf, err := asFloat64(lv)
	if err != nil {
		return 0, 0, false, err
	}
	rf, err := asFloat64(rv)
	if err != nil {
		return 0, 0, false, err
	}
	return lf, rf, true, nil
}

// numericResult narrows a float64 arithmetic result back to int64 when
// both operand types were integral, so `1 + 1` stays `2` (int64) rather
// than becoming `2.0`.
func numericResult(result float64, l, r frame.ColumnType) interface{} {
	if l.Family == frame.FamilyInt && r.Family == frame.FamilyInt {
		return int64(result)
	}
	return result
}

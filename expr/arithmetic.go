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

import "github.com/miretskiy/firn/frame"

// ArithKind names one of the four arithmetic binary operators.
type ArithKind int

const (
	ArithAdd ArithKind = iota
	ArithSub
	ArithMul
	ArithDiv
)

var arithSymbols = map[ArithKind]string{ArithAdd: "+", ArithSub: "-", ArithMul: "*", ArithDiv: "/"}

// ArithmeticExpr implements `+ - x /`. Binary ops require >=2 operands
// on the stack; the top is the right operand, the next is the left
// (spec.md section 4.2).
type ArithmeticExpr struct {
	kind        ArithKind
	left, right Expression
}

// NewArithmetic builds a binary arithmetic expression.
func NewArithmetic(kind ArithKind, left, right Expression) *ArithmeticExpr {
	return &ArithmeticExpr{kind: kind, left: left, right: right}
}

func (a *ArithmeticExpr) Name() string { return a.String() }
func (a *ArithmeticExpr) Type() frame.ColumnType {
	if a.left.Type().Family == frame.FamilyInt && a.right.Type().Family == frame.FamilyInt && a.kind != ArithDiv {
		return frame.TypeInt64
	}
	return frame.TypeFloat64
}
func (a *ArithmeticExpr) IsAggregate() bool      { return false }
func (a *ArithmeticExpr) Children() []Expression { return []Expression{a.left, a.right} }
func (a *ArithmeticExpr) String() string {
	return "(" + a.left.String() + " " + arithSymbols[a.kind] + " " + a.right.String() + ")"
}

func (a *ArithmeticExpr) Eval(ctx *EvalContext) (interface{}, error) {
	lf, rf, ok, err := bothNumeric(ctx, a.left, a.right)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var result float64
	switch a.kind {
	case ArithAdd:
		result = lf + rf
	case ArithSub:
		result = lf - rf
	case ArithMul:
		result = lf * rf
	case ArithDiv:
		if rf == 0 {
			return nil, frame.ErrBackingLibrary.New("division by zero")
		}
		result = lf / rf
		return result, nil
	}
	return numericResult(result, a.left.Type(), a.right.Type()), nil
}

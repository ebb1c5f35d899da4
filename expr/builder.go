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
	"github.com/miretskiy/firn/opcode"
)

// Apply dispatches a single expression opcode against stack, per
// spec.md 4.2's table of expression opcodes. parser backs SqlExpr and
// may be nil if the caller never wired one in, in which case SqlExpr
// fails with ErrBackingLibrary.
func Apply(stack *Stack, parser SQLExprParser, op frame.Operation) error {
	code := opcode.Code(op.Opcode)

	switch code {
	case opcode.Column:
		args, ok := op.Args.(ColumnArgs)
		if !ok {
			return frame.ErrInvalidArguments("Column", op.Opcode)
		}
		name, err := args.Name.Require()
		if err != nil {
			return err
		}
		stack.Push(NewColumn(name))
		return nil

	case opcode.LiteralOp:
		args, ok := op.Args.(LiteralArgs)
		if !ok {
			return frame.ErrInvalidArguments("Literal", op.Opcode)
		}
		lit, err := NewLiteral(args.Value)
		if err != nil {
			return err
		}
		stack.Push(lit)
		return nil

	case opcode.Add, opcode.Sub, opcode.Mul, opcode.Div:
		left, right, err := popBinary(stack)
		if err != nil {
			return err
		}
		stack.Push(NewArithmetic(arithKindFor(code), left, right))
		return nil

	case opcode.Eq, opcode.Neq, opcode.Lt, opcode.Lte, opcode.Gt, opcode.Gte:
		left, right, err := popBinary(stack)
		if err != nil {
			return err
		}
		stack.Push(NewComparison(cmpKindFor(code), left, right))
		return nil

	case opcode.And, opcode.Or:
		left, right, err := popBinary(stack)
		if err != nil {
			return err
		}
		kind := BoolAnd
		if code == opcode.Or {
			kind = BoolOr
		}
		stack.Push(NewBoolean(kind, left, right))
		return nil

	case opcode.Not:
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.Push(NewNot(inner))
		return nil

	case opcode.Sum, opcode.Mean, opcode.Min, opcode.Max, opcode.Std, opcode.Var,
		opcode.Median, opcode.First, opcode.Last, opcode.NUnique,
		opcode.CountExpr, opcode.CountNulls:
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		args, _ := op.Args.(AggArgs)
		stack.Push(NewAggregation(aggKindFor(code), inner, args.DDOF, args.IncludeNulls))
		return nil

	case opcode.IsNull:
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.Push(NewIsNull(inner))
		return nil

	case opcode.IsNotNull:
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.Push(NewIsNotNull(inner))
		return nil

	case opcode.Alias:
		args, ok := op.Args.(AliasArgs)
		if !ok {
			return frame.ErrInvalidArguments("Alias", op.Opcode)
		}
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		name, err := args.Name.Require()
		if err != nil {
			return err
		}
		stack.Push(NewAlias(name, inner))
		return nil

	case opcode.StrLen, opcode.Lower, opcode.Upper:
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.Push(NewStringFn(stringFnKindFor(code), inner, ""))
		return nil

	case opcode.Contains, opcode.StartsWith, opcode.EndsWith:
		args, ok := op.Args.(StringFnArgs)
		if !ok {
			return frame.ErrInvalidArguments(code.String(), op.Opcode)
		}
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		pattern, err := args.Pattern.Require()
		if err != nil {
			return err
		}
		stack.Push(NewStringFn(stringFnKindFor(code), inner, pattern))
		return nil

	case opcode.Rank:
		stack.Push(NewWindowFunc(WinRank))
		return nil
	case opcode.DenseRank:
		stack.Push(NewWindowFunc(WinDenseRank))
		return nil
	case opcode.RowNumber:
		stack.Push(NewWindowFunc(WinRowNumber))
		return nil

	case opcode.Over:
		args, ok := op.Args.(OverArgs)
		if !ok {
			return frame.ErrInvalidArguments("Over", op.Opcode)
		}
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		partitions, err := frame.RequireViews(args.Partitions)
		if err != nil {
			return err
		}
		stack.Push(NewOver(inner, partitions, args.Orders))
		return nil

	case opcode.Lag, opcode.Lead:
		args, ok := op.Args.(LagLeadArgs)
		if !ok {
			return frame.ErrInvalidArguments(code.String(), op.Opcode)
		}
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		if code == opcode.Lag {
			stack.Push(NewLag(inner, args.Offset))
		} else {
			stack.Push(NewLead(inner, args.Offset))
		}
		return nil

	case opcode.When:
		predicate, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.pendingPredicate = predicate
		return nil

	case opcode.Then:
		if stack.pendingPredicate == nil {
			return frame.ErrExpressionShape.New("Then without a preceding When")
		}
		then, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.pendingThen = then
		return nil

	case opcode.Otherwise:
		if stack.pendingPredicate == nil || stack.pendingThen == nil {
			return frame.ErrExpressionShape.New("Otherwise without a preceding When/Then")
		}
		otherwise, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.Push(NewCase(stack.pendingPredicate, stack.pendingThen, otherwise))
		stack.pendingPredicate = nil
		stack.pendingThen = nil
		return nil

	case opcode.Cast:
		args, ok := op.Args.(CastArgs)
		if !ok {
			return frame.ErrInvalidArguments("Cast", op.Opcode)
		}
		target, err := frame.DecodeCastCode(args.TypeCode)
		if err != nil {
			return err
		}
		inner, err := stack.Pop()
		if err != nil {
			return err
		}
		stack.Push(NewCast(inner, target, args.Strict, args.WrapNumeric))
		return nil

	case opcode.SqlExpr:
		args, ok := op.Args.(SQLExprArgs)
		if !ok {
			return frame.ErrInvalidArguments("SqlExpr", op.Opcode)
		}
		if parser == nil {
			return frame.ErrBackingLibrary.New("no SQL expression parser configured")
		}
		sql, err := args.SQL.Require()
		if err != nil {
			return err
		}
		parsed, err := parser.ParseExpr(sql)
		if err != nil {
			return err
		}
		stack.Push(parsed)
		return nil

	default:
		return frame.ErrUnknownOpcode.New(op.Opcode)
	}
}

func popBinary(stack *Stack) (Expression, Expression, error) {
	ops, err := stack.PopN(2)
	if err != nil {
		return nil, nil, err
	}
	return ops[0], ops[1], nil
}

func arithKindFor(c opcode.Code) ArithKind {
	switch c {
	case opcode.Add:
		return ArithAdd
	case opcode.Sub:
		return ArithSub
	case opcode.Mul:
		return ArithMul
	default:
		return ArithDiv
	}
}

func cmpKindFor(c opcode.Code) CompareKind {
	switch c {
	case opcode.Eq:
		return CmpEq
	case opcode.Neq:
		return CmpNeq
	case opcode.Lt:
		return CmpLt
	case opcode.Lte:
		return CmpLte
	case opcode.Gt:
		return CmpGt
	default:
		return CmpGte
	}
}

func aggKindFor(c opcode.Code) AggKind {
	switch c {
	case opcode.Sum:
		return AggSum
	case opcode.Mean:
		return AggMean
	case opcode.Min:
		return AggMin
	case opcode.Max:
		return AggMax
	case opcode.Std:
		return AggStd
	case opcode.Var:
		return AggVar
	case opcode.Median:
		return AggMedian
	case opcode.First:
		return AggFirst
	case opcode.Last:
		return AggLast
	case opcode.NUnique:
		return AggNUnique
	case opcode.CountNulls:
		return AggCountNulls
	default:
		return AggCount
	}
}

func stringFnKindFor(c opcode.Code) StringFnKind {
	switch c {
	case opcode.StrLen:
		return StrLen
	case opcode.Contains:
		return StrContains
	case opcode.StartsWith:
		return StrStartsWith
	case opcode.EndsWith:
		return StrEndsWith
	case opcode.Lower:
		return StrLower
	default:
		return StrUpper
	}
}

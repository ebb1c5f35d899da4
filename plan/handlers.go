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

import (
	"github.com/miretskiy/firn/backend"
	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
	"github.com/miretskiy/firn/opcode"
)

const resolveGroupingMsg = "operation not permitted on a GroupedPlan; resolve grouping with Agg first"

// Apply dispatches a single frame opcode, per spec.md 4.3's context
// automaton and 4.4's handler contracts. reg resolves current.Handle
// (and, for Join/Concat, any other handle named in op's arguments) to
// the object it names. stack is the chain's pending expression stack,
// drained by SelectExpr/WithColumns/Agg. parser backs any FilterExpr
// sub-program that dispatches a SqlExpr opcode. It mints and returns
// the new current handle; releasing the old one is the chain driver's
// job (spec.md 4.5), not this function's.
func Apply(reg *frame.Registry, stack *expr.Stack, parser expr.SQLExprParser, collab Collaborators, current frame.Tagged, op frame.Operation) (frame.Handle, frame.ContextTag, error) {
	code := opcode.Code(op.Opcode)

	switch code {
	case opcode.NewEmpty:
		h := reg.Put(frame.ContextFrame, frame.NewEmptyFrame())
		return h, frame.ContextFrame, nil

	case opcode.ReadCsv:
		args, ok := op.Args.(ReadCsvArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("ReadCsv", op.Opcode)
		}
		if collab.Scanner == nil {
			return 0, frame.ContextNone, frame.ErrBackingLibrary.New("no CSV scanner configured")
		}
		path, err := args.Path.Require()
		if err != nil {
			return 0, frame.ContextNone, err
		}
		table, err := collab.Scanner.ReadCSV(path, args.HasHeader, args.WithGlob)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextPlan, backend.NewScanOp(table))
		return h, frame.ContextPlan, nil

	case opcode.ReadParquet:
		args, ok := op.Args.(ReadParquetArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("ReadParquet", op.Opcode)
		}
		if collab.ParquetScanner == nil {
			return 0, frame.ContextNone, frame.ErrBackingLibrary.New("no Parquet scanner configured")
		}
		path, err := args.Path.Require()
		if err != nil {
			return 0, frame.ContextNone, err
		}
		columns, err := frame.RequireViews(args.Columns)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		table, err := collab.ParquetScanner.ReadParquet(path, columns, args.NRows, args.Parallel)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextPlan, backend.NewScanOp(table))
		return h, frame.ContextPlan, nil

	case opcode.Select:
		args, ok := op.Args.(SelectArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("Select", op.Opcode)
		}
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		names, err := frame.RequireViews(args.Columns)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextPlan, backend.NewProjectOp(src, names))
		return h, frame.ContextPlan, nil

	case opcode.SelectExpr:
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		exprs := stack.Drain()
		if len(exprs) == 0 {
			return 0, frame.ContextNone, frame.ErrEmptyArguments.New()
		}
		h := reg.Put(frame.ContextPlan, backend.NewSelectExprOp(src, exprs))
		return h, frame.ContextPlan, nil

	case opcode.WithColumns:
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		exprs := stack.Drain()
		if len(exprs) == 0 {
			return 0, frame.ContextNone, frame.ErrEmptyArguments.New()
		}
		h := reg.Put(frame.ContextPlan, backend.NewWithColumnsOp(src, exprs))
		return h, frame.ContextPlan, nil

	case opcode.FilterExpr:
		args, ok := op.Args.(SubProgramArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("FilterExpr", op.Opcode)
		}
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		sub := expr.NewStack()
		for _, subOp := range args.Program {
			if err := expr.Apply(sub, parser, subOp); err != nil {
				return 0, frame.ContextNone, err
			}
		}
		predicate, err := sub.DrainOne()
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextPlan, backend.NewFilterOp(src, predicate))
		return h, frame.ContextPlan, nil

	case opcode.GroupBy:
		args, ok := op.Args.(GroupByArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("GroupBy", op.Opcode)
		}
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		keys, err := frame.RequireViews(args.Keys)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextGroupedPlan, backend.NewGroupedOp(src, keys))
		return h, frame.ContextGroupedPlan, nil

	case opcode.Agg:
		object, tag, found := reg.Get(current.Handle)
		grouped, ok := object.(*backend.GroupedOp)
		if !found || tag != frame.ContextGroupedPlan || !ok {
			return 0, frame.ContextNone, frame.ErrContextMisuse.New("Agg requires a GroupedPlan context; call GroupBy first")
		}
		aggs := stack.Drain()
		if len(aggs) == 0 {
			return 0, frame.ContextNone, frame.ErrExpressionShape.New("Agg requires at least one pending aggregation expression")
		}
		h := reg.Put(frame.ContextPlan, grouped.Resolve(aggs))
		return h, frame.ContextPlan, nil

	case opcode.Sort:
		args, ok := op.Args.(SortArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("Sort", op.Opcode)
		}
		if len(args.Fields) == 0 {
			return 0, frame.ContextNone, frame.ErrEmptyArguments.New()
		}
		for _, f := range args.Fields {
			if !f.Column.Valid() {
				return 0, frame.ContextNone, frame.ErrInvalidUTF8.New()
			}
		}
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		return materializeIfFrame(reg, backend.NewSortOp(src, args.Fields), current.Tag)

	case opcode.Limit:
		args, ok := op.Args.(LimitArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("Limit", op.Opcode)
		}
		if args.N <= 0 {
			return 0, frame.ContextNone, frame.ErrEmptyArguments.New()
		}
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		return materializeIfFrame(reg, backend.NewLimitOp(src, args.N), current.Tag)

	case opcode.Count:
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextPlan, backend.NewCountOp(src))
		return h, frame.ContextPlan, nil

	case opcode.Concat:
		args, ok := op.Args.(ConcatArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("Concat", op.Opcode)
		}
		if len(args.Handles) == 0 {
			return 0, frame.ContextNone, frame.ErrEmptyArguments.New()
		}
		tables := make([]*backend.Table, len(args.Handles))
		for i, handle := range args.Handles {
			if handle == frame.NoHandle {
				return 0, frame.ContextNone, frame.ErrEmptyArguments.New()
			}
			object, tag, found := reg.Get(handle)
			table, isFrame := object.(*frame.Frame)
			if !found || tag != frame.ContextFrame || !isFrame {
				return 0, frame.ContextNone, frame.ErrHandleNotFound.New(handle)
			}
			tables[i] = table
		}
		result, err := backend.Concat(tables)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextFrame, result)
		return h, frame.ContextFrame, nil

	case opcode.AddNullRow:
		object, tag, found := reg.Get(current.Handle)
		table, ok := object.(*frame.Frame)
		if !found || tag != frame.ContextFrame || !ok {
			return 0, frame.ContextNone, frame.ErrContextMisuse.New("AddNullRow is only valid on a materialized Frame")
		}
		clone := table.Clone()
		clone.AppendNullRow()
		h := reg.Put(frame.ContextFrame, clone)
		return h, frame.ContextFrame, nil

	case opcode.Collect:
		object, tag, found := reg.Get(current.Handle)
		if !found {
			return 0, frame.ContextNone, frame.ErrHandleNotFound.New(current.Handle)
		}
		switch tag {
		case frame.ContextFrame:
			clone := object.(*frame.Frame).Clone()
			h := reg.Put(frame.ContextFrame, clone)
			return h, frame.ContextFrame, nil
		case frame.ContextPlan:
			table, err := object.(backend.Op).Materialize()
			if err != nil {
				return 0, frame.ContextNone, err
			}
			h := reg.Put(frame.ContextFrame, table)
			return h, frame.ContextFrame, nil
		default:
			return 0, frame.ContextNone, frame.ErrContextMisuse.New(resolveGroupingMsg)
		}

	case opcode.Query:
		args, ok := op.Args.(QueryArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("Query", op.Opcode)
		}
		src, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		sql, err := args.SQL.Require()
		if err != nil {
			return 0, frame.ContextNone, err
		}
		h := reg.Put(frame.ContextPlan, backend.NewQueryOp(src, sql, collab.SQLExecutor))
		return h, frame.ContextPlan, nil

	case opcode.Join:
		args, ok := op.Args.(JoinArgs)
		if !ok {
			return 0, frame.ContextNone, frame.ErrInvalidArguments("Join", op.Opcode)
		}
		left, err := asOp(reg, current)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		if args.Right == frame.NoHandle {
			return 0, frame.ContextNone, frame.ErrNullHandle.New()
		}
		right, err := asOp(reg, frame.Tagged{Handle: args.Right})
		if err != nil {
			return 0, frame.ContextNone, err
		}
		leftKeys, err := frame.RequireViews(args.LeftKeys)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		rightKeys, err := frame.RequireViews(args.RightKeys)
		if err != nil {
			return 0, frame.ContextNone, err
		}
		suffix, err := args.Suffix.Require()
		if err != nil {
			return 0, frame.ContextNone, err
		}
		joinOp := backend.NewJoinOp(left, right, leftKeys, rightKeys, args.Kind, suffix)
		return materializeIfFrame(reg, joinOp, current.Tag)

	default:
		return 0, frame.ContextNone, frame.ErrUnknownOpcode.New(op.Opcode)
	}
}

// asOp resolves current's handle to an Op, wrapping a materialized
// Frame as a zero-cost scan. GroupedPlan is rejected uniformly here:
// every frame opcode except Agg forbids it, and this is the one gate
// all of them pass through.
func asOp(reg *frame.Registry, current frame.Tagged) (backend.Op, error) {
	object, tag, found := reg.Get(current.Handle)
	if !found {
		return nil, frame.ErrHandleNotFound.New(current.Handle)
	}
	switch tag {
	case frame.ContextFrame:
		return backend.NewScanOp(object.(*frame.Frame)), nil
	case frame.ContextPlan:
		return object.(backend.Op), nil
	default:
		return nil, frame.ErrContextMisuse.New(resolveGroupingMsg)
	}
}

// materializeIfFrame applies the "preserves input kind" rule Sort,
// Limit, and Join share (spec.md 4.3): a Frame input eagerly
// materializes back to a Frame handle, a Plan input stays deferred.
func materializeIfFrame(reg *frame.Registry, op backend.Op, originalTag frame.ContextTag) (frame.Handle, frame.ContextTag, error) {
	if originalTag == frame.ContextFrame {
		table, err := op.Materialize()
		if err != nil {
			return 0, frame.ContextNone, err
		}
		return reg.Put(frame.ContextFrame, table), frame.ContextFrame, nil
	}
	return reg.Put(frame.ContextPlan, op), frame.ContextPlan, nil
}

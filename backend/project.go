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

package backend

import (
	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
)

// projectOp implements Select: a fixed list of existing column names.
type projectOp struct {
	src     Op
	columns []string
}

// NewProjectOp builds a Select projection over src.
func NewProjectOp(src Op, columns []string) Op {
	return &projectOp{src: src, columns: columns}
}

func (p *projectOp) Materialize() (*Table, error) {
	in, err := p.src.Materialize()
	if err != nil {
		return nil, err
	}
	schema := make(frame.Schema, len(p.columns))
	cols := make([][]interface{}, len(p.columns))
	for i, name := range p.columns {
		idx := in.Schema.IndexOf(name)
		if idx < 0 {
			return nil, frame.ErrBackingLibrary.New("column not found: " + name)
		}
		schema[i] = in.Schema[idx]
		cols[i] = in.Columns[idx]
	}
	return frame.NewFrame(schema, cols), nil
}

// exprProjectOp implements SelectExpr (add=false, replaces the schema
// wholesale) and WithColumns (add=true, keeps the input columns and
// appends the new ones), per spec.md 4.4.
type exprProjectOp struct {
	src   Op
	exprs []expr.Expression
	add   bool
}

// NewSelectExprOp builds a SelectExpr projection over src.
func NewSelectExprOp(src Op, exprs []expr.Expression) Op {
	return &exprProjectOp{src: src, exprs: exprs, add: false}
}

// NewWithColumnsOp builds a WithColumns projection over src.
func NewWithColumnsOp(src Op, exprs []expr.Expression) Op {
	return &exprProjectOp{src: src, exprs: exprs, add: true}
}

func (p *exprProjectOp) Materialize() (*Table, error) {
	in, err := p.src.Materialize()
	if err != nil {
		return nil, err
	}

	rows := make([]frame.Row, in.RowCount())
	for i := range rows {
		rows[i] = in.Row(i)
	}

	newCols := make([][]interface{}, len(p.exprs))
	newSchema := make(frame.Schema, len(p.exprs))
	for e, ex := range p.exprs {
		col := make([]interface{}, len(rows))
		for i := range rows {
			ctx := &expr.EvalContext{Schema: in.Schema, Rows: rows, RowIndex: i}
			v, err := ex.Eval(ctx)
			if err != nil {
				return nil, err
			}
			col[i] = v
		}
		newCols[e] = col
		newSchema[e] = frame.Column{Name: ex.Name(), Type: ex.Type(), Nullable: true}
	}

	if !p.add {
		return frame.NewFrame(newSchema, newCols), nil
	}

	schema := append(append(frame.Schema(nil), in.Schema...), newSchema...)
	cols := append(append([][]interface{}(nil), in.Columns...), newCols...)
	return frame.NewFrame(schema, cols), nil
}

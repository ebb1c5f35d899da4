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

// NullPredExpr implements the IsNull/IsNotNull unary predicates.
type NullPredExpr struct {
	inner Expression
	negate bool
}

// NewIsNull builds an IsNull predicate.
func NewIsNull(inner Expression) *NullPredExpr { return &NullPredExpr{inner: inner} }

// NewIsNotNull builds an IsNotNull predicate.
func NewIsNotNull(inner Expression) *NullPredExpr { return &NullPredExpr{inner: inner, negate: true} }

func (n *NullPredExpr) Name() string           { return n.String() }
func (n *NullPredExpr) Type() frame.ColumnType { return frame.TypeBool }
func (n *NullPredExpr) IsAggregate() bool      { return false }
func (n *NullPredExpr) Children() []Expression { return []Expression{n.inner} }
func (n *NullPredExpr) String() string {
	if n.negate {
		return "IS_NOT_NULL(" + n.inner.String() + ")"
	}
	return "IS_NULL(" + n.inner.String() + ")"
}

func (n *NullPredExpr) Eval(ctx *EvalContext) (interface{}, error) {
	v, err := n.inner.Eval(ctx)
	if err != nil {
		return nil, err
	}
	if n.negate {
		return v != nil, nil
	}
	return v == nil, nil
}

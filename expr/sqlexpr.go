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

// SQLExprArgs is the SqlExpr opcode's decoded argument.
type SQLExprArgs struct {
	SQL frame.StringView
}

// SQLExprParser is the external collaborator spec.md 4.2 describes for
// SqlExpr: "invokes the external SQL-expression parser and pushes the
// resulting expression." Kept as an interface here (rather than a
// vendored SQL parser) per spec.md section 1, which names SQL parsing
// as an out-of-scope backing-library concern; see DESIGN.md.
type SQLExprParser interface {
	ParseExpr(sql string) (Expression, error)
}

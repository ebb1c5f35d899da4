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

package firn

import (
	"github.com/sirupsen/logrus"

	"github.com/miretskiy/firn/backend"
	"github.com/miretskiy/firn/exec"
	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
	"github.com/miretskiy/firn/opcode"
	"github.com/miretskiy/firn/plan"
)

// Engine is the FFI-facing entry point: one per embedding host process,
// analogous to sqle.Engine. It owns the handle registry and the chain
// driver, and dispatches to whichever backing-library collaborators
// the host registered at construction time.
type Engine struct {
	cfg      frame.EngineConfig
	registry *frame.Registry
	driver   *exec.Driver
}

// Option configures optional collaborators NewEngine doesn't wire by
// default, mirroring the teacher's functional-option pattern for
// pluggable pieces of sqle.Engine construction.
type Option func(*plan.Collaborators)

// WithParquetScanner registers the Parquet backing-library binding.
// Without one, the ReadParquet opcode reports a backing-library
// failure naming the missing binding, per spec.md's "never fabricate
// dependencies" rule (see DESIGN.md).
func WithParquetScanner(s backend.ParquetScanner) Option {
	return func(c *plan.Collaborators) { c.ParquetScanner = s }
}

// WithSQLExecutor registers the Query opcode's SQL execution backend.
func WithSQLExecutor(s backend.SQLExecutor) Option {
	return func(c *plan.Collaborators) { c.SQLExecutor = s }
}

// NewEngine builds an Engine over cfg, wiring the stdlib-backed CSV
// scanner (the only backing-library reader grounded anywhere in the
// retrieval pack) and any collaborators passed via opts. The Parquet
// scanner and SQL executor stay nil unless an Option supplies them;
// the SqlExpr parser stays nil unless WithParser sets it.
func NewEngine(cfg frame.EngineConfig, opts ...Option) *Engine {
	collab := plan.Collaborators{Scanner: backend.NewCSVScanner()}
	for _, opt := range opts {
		opt(&collab)
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	reg := frame.NewRegistry()
	return &Engine{
		cfg:      cfg,
		registry: reg,
		driver:   exec.NewDriver(reg, collab, nil, log),
	}
}

// WithParser sets e's chain driver to parse SqlExpr expressions
// through parser and returns e itself (no copy is made). Separate from the variadic Option set
// above because the parser lives on exec.Driver, not plan.Collaborators;
// kept as a post-construction setter so a host that only needs CSV
// scanning never has to touch it.
func (e *Engine) WithParser(parser expr.SQLExprParser) *Engine {
	e.driver.Parser = parser
	return e
}

// ExecuteOperations is the Go-native shape of spec.md's
// execute_operations(handle, ops[], n); the cgo shim marshals C
// structs into []frame.Operation and back.
func (e *Engine) ExecuteOperations(h frame.Handle, tag frame.ContextTag, ops []frame.Operation) frame.OperationResult {
	return e.driver.ExecuteOperations(frame.Tagged{Handle: h, Tag: tag}, ops)
}

// frameFor resolves h to a materialized Frame, reporting a
// context-misuse error if h names a Plan/GroupedPlan or isn't found.
func (e *Engine) frameFor(h frame.Handle) (*frame.Frame, error) {
	object, tag, found := e.registry.Get(h)
	if !found {
		return nil, frame.ErrHandleNotFound.New(h)
	}
	if tag != frame.ContextFrame {
		return nil, frame.ErrContextMisuse.New("handle does not name a materialized Frame")
	}
	return object.(*frame.Frame), nil
}

// RenderCSV renders h (which must name a Frame) as CSV using the
// engine's configured delimiter.
func (e *Engine) RenderCSV(h frame.Handle) (string, error) {
	f, err := e.frameFor(h)
	if err != nil {
		return "", err
	}
	delim := ','
	if e.cfg.CSVDelimiter != "" {
		delim = rune(e.cfg.CSVDelimiter[0])
	}
	return f.RenderCSV(delim)
}

// RenderDisplay renders h as a human-readable table, truncated to the
// engine's configured MaxDisplayRows.
func (e *Engine) RenderDisplay(h frame.Handle) (string, error) {
	f, err := e.frameFor(h)
	if err != nil {
		return "", err
	}
	return f.RenderDisplay(e.cfg.MaxDisplayRows), nil
}

// RowCount reports h's row count; h must name a Frame.
func (e *Engine) RowCount(h frame.Handle) (int64, error) {
	f, err := e.frameFor(h)
	if err != nil {
		return 0, err
	}
	return f.RowCount(), nil
}

// AppendRow is a host-side convenience wrapping AddNullRow plus a
// direct cell assignment, documented in spec.md section 6 as a thin
// helper rather than a new opcode. h must name a Frame whose schema
// has exactly len(literalValues) columns; the new row's cells are
// decoded via Literal.Value in schema order. Returns the new handle.
// AddNullRow appends to a clone of h, and the chain driver then
// releases h because the clone replaced it, so once that step succeeds
// h no longer names a Frame; this holds even when the arity check or a
// literal decode fails afterwards, in which case the new handle is
// released too.
func (e *Engine) AppendRow(h frame.Handle, literalValues []frame.Literal) (frame.Handle, error) {
	result := e.ExecuteOperations(h, frame.ContextFrame, []frame.Operation{
		{Opcode: uint32(opcode.AddNullRow)},
	})
	if !result.Ok() {
		return frame.NoHandle, frame.ErrBackingLibrary.New(result.ErrorMessage)
	}

	f, err := e.frameFor(result.Handle)
	if err != nil {
		return frame.NoHandle, err
	}
	if len(literalValues) != len(f.Columns) {
		e.registry.Release(result.Handle)
		return frame.NoHandle, frame.ErrEmptyArguments.New()
	}
	if len(f.Columns) == 0 {
		return result.Handle, nil
	}

	last := len(f.Columns[0]) - 1
	for i, lit := range literalValues {
		v, err := lit.Value()
		if err != nil {
			e.registry.Release(result.Handle)
			return frame.NoHandle, err
		}
		f.Columns[i][last] = v
	}
	return result.Handle, nil
}

// ReleaseFrame drops h from the registry, freeing the memory it names.
func (e *Engine) ReleaseFrame(h frame.Handle) {
	e.registry.Release(h)
}

// FreeString is a no-op in Go: strings returned across the boundary
// (RenderCSV, RenderDisplay, error messages) are ordinary GC-owned Go
// strings. It exists so the cgo shim has a symmetrical free call to
// bind to, matching whatever lifetime convention the C side expects.
func (e *Engine) FreeString(s string) {}

// Noop does nothing; it exists as a boundary-overhead calibration
// entry point, per spec.md section 6 — a call the host can time to
// measure pure FFI round-trip cost with zero engine work inside it.
func (e *Engine) Noop() {}

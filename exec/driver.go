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

package exec

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/miretskiy/firn/expr"
	"github.com/miretskiy/firn/frame"
	"github.com/miretskiy/firn/opcode"
	"github.com/miretskiy/firn/plan"
)

// Driver owns the registry, the pluggable backing-library collaborators,
// and the logger the chain driver reports each operation through. One
// Driver instance is shared across calls; each ExecuteOperations call
// mints its own trace id and expression stack.
type Driver struct {
	Registry *frame.Registry
	Collab   plan.Collaborators
	Parser   expr.SQLExprParser
	Log      *logrus.Logger
}

// NewDriver builds a Driver over reg. log may be nil, in which case
// logrus.StandardLogger() is used, matching the teacher's
// NewAuditLog(l *logrus.Logger) default-logger convention.
func NewDriver(reg *frame.Registry, collab plan.Collaborators, parser expr.SQLExprParser, log *logrus.Logger) *Driver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Driver{Registry: reg, Collab: collab, Parser: parser, Log: log}
}

// ExecuteOperations is the chain driver, spec.md section 4.5: it walks
// ops strictly in order, routing each opcode to plan.Apply (frame ops)
// or expr.Apply (expression ops, which never change the current
// handle), stopping at the first failure and reporting its index.
func (d *Driver) ExecuteOperations(initial frame.Tagged, ops []frame.Operation) frame.OperationResult {
	traceID := uuid.New()
	log := d.Log.WithFields(logrus.Fields{"trace_id": traceID.String(), "op_count": len(ops)})

	stack := expr.NewStack()
	current := initial
	// replacedInitial tracks whether current still names the caller's
	// input handle or a handle minted by a successful step. The caller
	// owns the input handle, so it must never be released on failure
	// (spec.md 4.5/7) unless a later step already consumed and replaced
	// it, at which point it is an ordinary intermediate.
	replacedInitial := false

	for i, op := range ops {
		code := opcode.Code(op.Opcode)
		fields := logrus.Fields{"trace_id": traceID.String(), "index": i, "opcode": code.String()}

		var (
			newHandle frame.Handle
			newTag    frame.ContextTag
			err       error
		)
		switch {
		case code.IsFrameOp():
			newHandle, newTag, err = plan.Apply(d.Registry, stack, d.Parser, d.Collab, current, op)
		case code.IsExpressionOp():
			err = expr.Apply(stack, d.Parser, op)
			newHandle, newTag = current.Handle, current.Tag
		default:
			err = frame.ErrUnknownOpcode.New(op.Opcode)
		}

		if err != nil {
			wireCode := errorCode(err)
			if wireCode == frame.CodeBackingLibrary {
				err = errors.Wrapf(err, "executing operation %d (%s)", i, code)
			}
			fields["error_code"] = wireCode
			log.WithFields(fields).WithError(err).Error("operation failed")

			if replacedInitial {
				d.Registry.Release(current.Handle)
			}
			return frame.OperationResult{
				ErrorCode:      wireCode,
				ErrorMessage:   err.Error(),
				OffendingIndex: uint64(i),
			}
		}

		log.WithFields(fields).Debug("operation applied")

		if newHandle != current.Handle && current.Handle != frame.NoHandle {
			d.Registry.Release(current.Handle)
			replacedInitial = true
		}
		current = frame.Tagged{Handle: newHandle, Tag: newTag}
	}

	log.WithField("final_tag", current.Tag.String()).Info("chain complete")
	return frame.OperationResult{Handle: current.Handle, Tag: current.Tag}
}

// knownKinds lists the error Kinds that map to a wire code other than
// the backing-library catch-all (frame.WireCode's four-case switch),
// checked via Kind.Is since a chain driver only ever sees the plain
// error interface, never the Kind pointer a handler minted it from.
var knownKinds = []*goerrors.Kind{
	frame.ErrNullHandle,
	frame.ErrEmptyArguments,
	frame.ErrInvalidUTF8,
}

func errorCode(err error) int32 {
	for _, kind := range knownKinds {
		if kind.Is(err) {
			return frame.WireCode(kind)
		}
	}
	return frame.WireCode(nil)
}

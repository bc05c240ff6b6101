// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

import (
	"fmt"

	"go.uber.org/zap"
)

// traceLayer owns no capability: it observes every operation reaching the
// stack, including operations performed by scoped bodies, and forwards
// each one untouched. It is both a debugging tool and the degenerate case
// of the delegation rule: a layer that forwards everything.
type traceLayer struct {
	log *zap.Logger
}

// Dispatch implements [Capability]. Always reports handled=false.
func (l *traceLayer) Dispatch(op Operation, _ *Stack) (Resumed, bool, bool) {
	l.log.Debug("dispatch", zap.String("op", fmt.Sprintf("%T", op)))
	return nil, false, false
}

// TraceLayer creates a pass-through layer logging each dispatched operation
// at debug level. Place it first in the stack to observe everything.
func TraceLayer(log *zap.Logger) *traceLayer {
	return &traceLayer{log: log}
}

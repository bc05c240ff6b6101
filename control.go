// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

import "github.com/google/uuid"

// Continuation capture and delimited control.
//
// Shift/Reset follow Danvy & Filinski's formulation (1990) and operate on
// raw Cont values. Capture/Jump are the capability-layer counterparts: the
// escape continuation is a first-class value that can be passed into nested
// computations, and a jump unwinds through the stack so buffered layers can
// reset. Escapes are affine: one jump per capture.

// Shift captures the current continuation up to the nearest Reset.
// The function f receives the captured continuation k, which can be
// invoked zero or more times.
//
// Example:
//
//	Reset(Bind(Shift(func(k func(int) int) int {
//	    return k(k(3))  // Apply continuation twice
//	}), func(x int) Cont[int, int] {
//	    return Return[int](x * 2)
//	}))
//	// Result: 12 (3 * 2 * 2)
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset establishes a delimiter for Shift.
// Continuations captured by Shift stop at the nearest enclosing Reset.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}

// EscapeK is a captured escape continuation for values of type A.
// Jumping through it abandons the remaining computation of its capture
// scope and makes the [CallCC] expression evaluate to the jumped value.
// EscapeK is a first-class value: it may travel into nested computations
// and be jumped from any depth, at most once.
type EscapeK[A any] struct {
	tok   uuid.UUID
	guard *Affine[struct{}, struct{}]
}

func escapeLatch(struct{}) struct{} { return struct{}{} }

// CallCC is the operation for capturing an escape continuation.
// Perform(CallCC[A]{Body: f}) invokes f with a fresh [EscapeK]; if f's
// computation jumps through it, the operation resumes with the jumped value
// and every buffered layer resets to neutral: output accumulated along the
// abandoned path is discarded, and accumulation continues fresh afterward.
type CallCC[A any] struct {
	Body func(k EscapeK[A]) Eff[A]
}

func (CallCC[A]) OpResult() A { panic("phantom") }

// DispatchControl handles CallCC in control layer dispatch.
// The body runs against the full stack. Foreign signals (aborts, escapes
// of enclosing captures) pass through.
func (o CallCC[A]) DispatchControl(_ *controlLayer, s *Stack) (Resumed, bool) {
	k := EscapeK[A]{tok: uuid.New(), guard: Once(escapeLatch)}
	r := runScoped[A](s, o.Body(k))
	if esc, ok := r.(escapeSignal); ok && esc.tok == k.tok {
		s.resetBuffered()
		return scopedValue[A](esc.val), true
	}
	if isSignal(r) {
		return r, false
	}
	return scopedValue[A](r), true
}

// Goto is the operation for jumping through a captured escape continuation.
// It never resumes in place: the remaining computation between the jump and
// the capture point is abandoned. B is the phantom result type at the jump
// site, free since the jump never produces a value there.
type Goto[A, B any] struct {
	K     EscapeK[A]
	Value A
}

func (Goto[A, B]) OpResult() B { panic("phantom") }

// DispatchControl handles Goto in control layer dispatch.
// Consumes the escape's affine guard: a second jump through the same
// capture panics.
func (o Goto[A, B]) DispatchControl(_ *controlLayer, _ *Stack) (Resumed, bool) {
	o.K.guard.Resume(struct{}{})
	return escapeSignal{tok: o.K.tok, val: o.Value}, false
}

// Capture performs the CallCC operation, invoking body with a fresh escape
// continuation.
func Capture[A any](body func(k EscapeK[A]) Eff[A]) Eff[A] {
	return Perform(CallCC[A]{Body: body})
}

// Jump abandons the remaining computation, making the matching [Capture]
// expression evaluate to v. The continuation at the jump site is never
// called; B is free at the call site.
func Jump[B, A any](k EscapeK[A], v A) Cont[Resumed, B] {
	return func(kk func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Goto[A, B]{K: k, Value: v}
		m.k = kk
		m.resume = abortMarkerResume
		return m
	}
}

// controlLayer owns the continuation capability.
// It holds no data: captures identify themselves by token and escapes in
// flight travel as signals.
type controlLayer struct{}

// Dispatch implements [Capability].
func (l *controlLayer) Dispatch(op Operation, s *Stack) (Resumed, bool, bool) {
	if cop, ok := op.(interface {
		DispatchControl(l *controlLayer, s *Stack) (Resumed, bool)
	}); ok {
		v, resume := cop.DispatchControl(l, s)
		return v, resume, true
	}
	return nil, false, false
}

// ControlLayer creates the continuation layer.
func ControlLayer() *controlLayer {
	return &controlLayer{}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

import (
	"fmt"

	"github.com/google/uuid"
)

// Capability composition. A Stack interprets computations by walking its
// layers outermost-first; each layer either claims an operation or forwards
// it untouched. Scoped operations re-enter the full stack, so every
// capability a stack supports stays available inside any scope, regardless
// of which layer owns it.

// Capability is one layer of a [Stack]. Each implementation owns exactly one
// capability: it claims the operations of that capability and reports
// handled=false for every other operation, which forwards the operation to
// the next layer down.
//
// When handled, (v, resume) follow the [Handler] contract: resume=true
// continues the computation with v, resume=false short-circuits the
// innermost enclosing scope with v.
type Capability interface {
	Dispatch(op Operation, s *Stack) (v Resumed, resume, handled bool)
}

// Buffered is implemented by layers that accumulate data between operations
// (the output layer). Aborting scopes use it to keep buffered data scoped to
// the innermost enclosing successful completion: [Catch] restores marks taken
// at scope entry, and a matched escape resets to the neutral value.
type Buffered interface {
	Capability
	Mark() any
	Restore(mark any)
	ResetToNeutral()
}

// Stack is an ordered list of capability layers, outermost first.
// A Stack is not safe for concurrent reuse: construct a fresh stack (and
// fresh layers) per logical run.
type Stack struct {
	layers []Capability
}

// New builds a stack from the given layers, outermost first.
func New(layers ...Capability) *Stack {
	return &Stack{layers: layers}
}

// Dispatch implements [Handler]: it walks the layers until one claims the
// operation. An operation no layer claims is a programming error.
func (s *Stack) Dispatch(op Operation) (Resumed, bool) {
	for _, l := range s.layers {
		if v, resume, handled := l.Dispatch(op, s); handled {
			return v, resume
		}
	}
	unhandledOp("Stack")
	return nil, false
}

type bufferedMark struct {
	layer Buffered
	mark  any
}

// markBuffered snapshots every buffered layer, outermost first.
func (s *Stack) markBuffered() []bufferedMark {
	var marks []bufferedMark
	for _, l := range s.layers {
		if b, ok := l.(Buffered); ok {
			marks = append(marks, bufferedMark{layer: b, mark: b.Mark()})
		}
	}
	return marks
}

// restoreBuffered rolls every buffered layer back to its snapshot.
func (s *Stack) restoreBuffered(marks []bufferedMark) {
	for _, m := range marks {
		m.layer.Restore(m.mark)
	}
}

// resetBuffered resets every buffered layer to its neutral value.
func (s *Stack) resetBuffered() {
	for _, l := range s.layers {
		if b, ok := l.(Buffered); ok {
			b.ResetToNeutral()
		}
	}
}

// abortSignal carries a raised error toward the nearest enclosing catch
// scope, or to the run edge if nothing catches it.
type abortSignal struct {
	err any
}

// escapeSignal carries a jump value toward its matching capture scope.
type escapeSignal struct {
	tok uuid.UUID
	val Resumed
}

// isSignal reports whether a scoped run ended by unwinding rather than by
// normal completion.
func isSignal(v Resumed) bool {
	switch v.(type) {
	case abortSignal, escapeSignal:
		return true
	}
	return false
}

// scopedValue normalizes a completed scoped-run result for resumption:
// a nil result stands for the zero value of A.
func scopedValue[A any](r Resumed) Resumed {
	if r == nil {
		var zero A
		return zero
	}
	return r
}

// runScoped drives a computation against the full stack until it completes
// or unwinds. The result is either a value of type A (nil for the zero
// value) or a signal. Scoped dispatch methods use it to run their bodies,
// which is what makes delegation total: a body sees the same stack as the
// computation that opened the scope.
func runScoped[A any](s *Stack, m Cont[Resumed, A]) Resumed {
	result := m(toResumed[A])
	for {
		if susp, ok := result.(opSuspension); ok {
			v, shouldResume := s.Dispatch(susp.Op())
			if !shouldResume {
				return v
			}
			result = susp.Resume(v)
			continue
		}
		return result
	}
}

// RunStack runs a computation against the stack and returns its result.
// An uncaught raise or a stale escape reaching the edge is a programming
// error and panics; use [RunStackEither] when the stack carries an error
// layer whose failures should surface as values.
func RunStack[A any](s *Stack, m Eff[A]) A {
	result := runScoped[A](s, m)
	switch sig := result.(type) {
	case abortSignal:
		panic(fmt.Sprintf("layr: uncaught raise at run edge: %v", sig.err))
	case escapeSignal:
		panic("layr: escape invoked outside its capture scope")
	}
	if result == nil {
		var zero A
		return zero
	}
	return result.(A)
}

// RunStackEither runs a computation against the stack, catching an uncaught
// raise of error type E at the edge and returning it as Left.
func RunStackEither[E, A any](s *Stack, m Eff[A]) Either[E, A] {
	result := runScoped[A](s, m)
	switch sig := result.(type) {
	case abortSignal:
		return Left[E, A](sig.err.(E))
	case escapeSignal:
		panic("layr: escape invoked outside its capture scope")
	}
	if result == nil {
		var zero A
		return Right[E, A](zero)
	}
	return Right[E, A](result.(A))
}

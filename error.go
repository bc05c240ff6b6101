// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Exception operations and layer.
// The error layer provides raise/catch control flow for a single error type
// E per layer. A raise unwinds to the nearest enclosing Catch of matching
// error type; buffered output between the raise and the catch is discarded
// (the rollback invariant), while state changes survive. An uncaught raise
// surfaces at the run edge.

// Raise is the operation for aborting with an error.
// Perform-style use never resumes: the remaining computation is abandoned.
type Raise[E any] struct{ Err E }

func (Raise[E]) OpResult() Resumed { panic("phantom") }

// DispatchError handles Raise in error layer dispatch by short-circuiting
// the innermost scope with an abort signal carrying the error.
func (o Raise[E]) DispatchError(_ *errorLayer[E], _ *Stack) (Resumed, bool) {
	return abortSignal{err: o.Err}, false
}

// Catch is the operation for handling errors.
// Perform(Catch[E, A]{Body: m, Handler: h}) runs m; if m aborts with an
// error of type E, buffered output is rolled back to the scope entry and
// h(e) runs in its place; if m completes normally, h is not invoked.
type Catch[E, A any] struct {
	Body    Eff[A]
	Handler func(E) Eff[A]
}

func (Catch[E, A]) OpResult() A { panic("phantom") }

// DispatchError handles Catch in error layer dispatch.
// The body and the handler both run against the full stack. Aborts carrying
// a different error type, and escapes, pass through to the enclosing scope.
func (o Catch[E, A]) DispatchError(l *errorLayer[E], s *Stack) (Resumed, bool) {
	marks := s.markBuffered()
	r := runScoped[A](s, o.Body)
	sig, aborted := r.(abortSignal)
	if !aborted {
		if isSignal(r) {
			return r, false
		}
		return scopedValue[A](r), true
	}
	e, matches := sig.err.(E)
	if !matches {
		return sig, false
	}
	s.restoreBuffered(marks)
	hr := runScoped[A](s, o.Handler(e))
	if isSignal(hr) {
		return hr, false
	}
	return scopedValue[A](hr), true
}

// RaiseError performs the Raise operation to abort with an error.
// The continuation k is never called; A is free at the call site.
func RaiseError[E, A any](err E) Cont[Resumed, A] {
	return func(k func(A) Resumed) Resumed {
		m := acquireMarker()
		m.op = Raise[E]{Err: err}
		m.k = k
		m.resume = abortMarkerResume
		return m
	}
}

// HandleError wraps a computation with an error handler.
func HandleError[E, A any](body Cont[Resumed, A], handler func(E) Cont[Resumed, A]) Cont[Resumed, A] {
	return Perform(Catch[E, A]{Body: body, Handler: handler})
}

// Recover wraps a computation with a fallback that ignores the error value.
func Recover[E, A any](body Cont[Resumed, A], fallback Cont[Resumed, A]) Cont[Resumed, A] {
	return HandleError(body, func(E) Cont[Resumed, A] { return fallback })
}

// errorLayer owns the exception capability for error type E.
// It holds no data: the abort in flight travels as a signal value.
type errorLayer[E any] struct{}

// Dispatch implements [Capability].
func (l *errorLayer[E]) Dispatch(op Operation, s *Stack) (Resumed, bool, bool) {
	if eop, ok := op.(interface {
		DispatchError(l *errorLayer[E], s *Stack) (Resumed, bool)
	}); ok {
		v, resume := eop.DispatchError(l, s)
		return v, resume, true
	}
	return nil, false, false
}

// ErrorLayer creates the exception layer for error type E.
func ErrorLayer[E any]() *errorLayer[E] {
	return &errorLayer[E]{}
}

// RunError runs an error-capable computation and returns Either.
func RunError[E, A any](m Cont[Resumed, A]) Either[E, A] {
	return RunStackEither[E, A](New(ErrorLayer[E]()), m)
}

// Either represents a value that is either Left (error) or Right (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

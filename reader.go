// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Context-read operations and layer.
// The reader layer provides read-only access to an ambient context of type R.

// Ask is the operation for reading the ambient context.
// Perform(Ask[R]{}) returns the current context of type R.
type Ask[R any] struct{}

func (Ask[R]) OpResult() R { panic("phantom") }

// DispatchReader handles Ask in reader layer dispatch.
func (Ask[R]) DispatchReader(l *readerLayer[R], _ *Stack) (Resumed, bool) {
	return l.env, true
}

// Local is the operation for running a body under a modified context.
// Perform(Local[R, A]{F: f, Body: m}) runs m as if the ambient context were
// f(current), restoring the original context once m completes by any exit
// path, including abort and escape.
type Local[R, A any] struct {
	F    func(R) R
	Body Eff[A]
}

func (Local[R, A]) OpResult() A { panic("phantom") }

// DispatchReader handles Local in reader layer dispatch.
// The body runs against the full stack.
func (o Local[R, A]) DispatchReader(l *readerLayer[R], s *Stack) (Resumed, bool) {
	saved := l.env
	l.env = o.F(saved)
	r := runScoped[A](s, o.Body)
	l.env = saved
	if isSignal(r) {
		return r, false
	}
	return scopedValue[A](r), true
}

// AskReader fuses Ask + Bind: reads the context, passes it to f.
func AskReader[R, B any](f func(R) Cont[Resumed, B]) Cont[Resumed, B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Ask[R]{}
		m.f = f
		m.k = k
		m.resume = bindMarkerResume[R, B]
		return m
	}
}

// MapReader fuses Ask + Map: reads the context, applies projection f.
func MapReader[R, A any](f func(R) A) Cont[Resumed, A] {
	return func(k func(A) Resumed) Resumed {
		m := acquireMarker()
		m.op = Ask[R]{}
		m.f = f
		m.k = k
		m.resume = mapMarkerResume[R, A]
		return m
	}
}

// LocalReader runs a computation under a context modified by f.
func LocalReader[R, A any](f func(R) R, body Cont[Resumed, A]) Cont[Resumed, A] {
	return Perform(Local[R, A]{F: f, Body: body})
}

// LetLocal runs a computation under the fixed context value env.
func LetLocal[R, A any](env R, body Cont[Resumed, A]) Cont[Resumed, A] {
	return Perform(Local[R, A]{F: func(R) R { return env }, Body: body})
}

// readerLayer owns the context-read capability for context type R.
type readerLayer[R any] struct {
	env R
}

// Dispatch implements [Capability].
func (l *readerLayer[R]) Dispatch(op Operation, s *Stack) (Resumed, bool, bool) {
	if rop, ok := op.(interface {
		DispatchReader(l *readerLayer[R], s *Stack) (Resumed, bool)
	}); ok {
		v, resume := rop.DispatchReader(l, s)
		return v, resume, true
	}
	return nil, false, false
}

// ReaderLayer creates the context-read layer with the given context.
func ReaderLayer[R any](env R) *readerLayer[R] {
	return &readerLayer[R]{env: env}
}

// RunReader runs a computation with the given ambient context.
func RunReader[R, A any](env R, m Cont[Resumed, A]) A {
	return RunStack[A](New(ReaderLayer(env)), m)
}

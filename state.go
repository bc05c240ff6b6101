// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// State operations and layer.
// The state layer threads mutable state of type S through computations.
// State is not buffered output: it survives aborts (a raise caught by an
// enclosing scope observes state changes made before the raise).

// Peek is the operation for reading state.
// Perform(Peek[S]{}) returns the current state of type S.
type Peek[S any] struct{}

func (Peek[S]) OpResult() S { panic("phantom") }

// DispatchState handles Peek in state layer dispatch.
func (Peek[S]) DispatchState(l *stateLayer[S], _ *Stack) (Resumed, bool) {
	return l.state, true
}

// Poke is the operation for replacing state.
// Perform(Poke[S]{Value: s}) replaces the state and returns the prior value.
type Poke[S any] struct{ Value S }

func (Poke[S]) OpResult() S { panic("phantom") }

// DispatchState handles Poke in state layer dispatch.
func (o Poke[S]) DispatchState(l *stateLayer[S], _ *Stack) (Resumed, bool) {
	old := l.state
	l.state = o.Value
	return old, true
}

// Update is the operation for transforming state.
// Perform(Update[S]{F: f}) replaces the state with f(current) and returns
// the prior value: Update is Poke(f(Peek())).
type Update[S any] struct{ F func(S) S }

func (Update[S]) OpResult() S { panic("phantom") }

// DispatchState handles Update in state layer dispatch.
func (o Update[S]) DispatchState(l *stateLayer[S], _ *Stack) (Resumed, bool) {
	old := l.state
	l.state = o.F(old)
	return old, true
}

// PeekState fuses Peek + Bind: reads state, passes it to f.
func PeekState[S, B any](f func(S) Cont[Resumed, B]) Cont[Resumed, B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Peek[S]{}
		m.f = f
		m.k = k
		m.resume = bindMarkerResume[S, B]
		return m
	}
}

// PokeState fuses Poke + Then: replaces state, discards the prior value,
// then runs next. This is the void-returning convenience variant of Poke.
func PokeState[S, B any](s S, next Cont[Resumed, B]) Cont[Resumed, B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Poke[S]{Value: s}
		m.f = next
		m.k = k
		m.resume = thenMarkerResume[B]
		return m
	}
}

// UpdateState fuses Update + Then: transforms state, discards the prior
// value, then runs next. This is the void-returning convenience variant of
// Update.
func UpdateState[S, B any](f func(S) S, next Cont[Resumed, B]) Cont[Resumed, B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Update[S]{F: f}
		m.f = next
		m.k = k
		m.resume = thenMarkerResume[B]
		return m
	}
}

// stateLayer owns the state capability for state type S.
type stateLayer[S any] struct {
	state S
}

// Dispatch implements [Capability].
func (l *stateLayer[S]) Dispatch(op Operation, s *Stack) (Resumed, bool, bool) {
	if sop, ok := op.(interface {
		DispatchState(l *stateLayer[S], s *Stack) (Resumed, bool)
	}); ok {
		v, resume := sop.DispatchState(l, s)
		return v, resume, true
	}
	return nil, false, false
}

// StateLayer creates the state layer with the given initial state.
// Returns the layer and a function reading the current state.
func StateLayer[S any](initial S) (*stateLayer[S], func() S) {
	l := &stateLayer[S]{state: initial}
	return l, func() S { return l.state }
}

// RunState runs a stateful computation and returns both the result and final state.
func RunState[S, A any](initial S, m Cont[Resumed, A]) (A, S) {
	l, state := StateLayer(initial)
	result := RunStack[A](New(l), m)
	return result, state()
}

// EvalState runs a stateful computation and returns only the result.
func EvalState[S, A any](initial S, m Cont[Resumed, A]) A {
	result, _ := RunState[S, A](initial, m)
	return result
}

// ExecState runs a stateful computation and returns only the final state.
func ExecState[S, A any](initial S, m Cont[Resumed, A]) S {
	_, state := RunState[S, A](initial, m)
	return state
}

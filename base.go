// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Base-escape operations and layer.
// The base layer sits at the bottom of a stack and executes computations
// expressed in the foundational model: in Go, a plain thunk performing
// whatever external effects it likes. Every layer above forwards base
// operations down untouched, so the fully decorated stack can always reach
// its foundation.

// FromBase is the operation for lifting a base computation.
// Perform(FromBase[A]{Thunk: f}) executes f at the bottom of the stack and
// resumes with its result.
type FromBase[A any] struct{ Thunk func() A }

func (FromBase[A]) OpResult() A { panic("phantom") }

// DispatchBase handles FromBase in base layer dispatch.
func (o FromBase[A]) DispatchBase(_ *baseLayer, _ *Stack) (Resumed, bool) {
	return o.Thunk(), true
}

// InBase lifts a base computation into the capability-decorated model.
func InBase[A any](thunk func() A) Eff[A] {
	return Perform(FromBase[A]{Thunk: thunk})
}

// baseLayer owns the base-escape capability. It holds no data.
type baseLayer struct{}

// Dispatch implements [Capability].
func (l *baseLayer) Dispatch(op Operation, s *Stack) (Resumed, bool, bool) {
	if bop, ok := op.(interface {
		DispatchBase(l *baseLayer, s *Stack) (Resumed, bool)
	}); ok {
		v, resume := bop.DispatchBase(l, s)
		return v, resume, true
	}
	return nil, false, false
}

// BaseLayer creates the base-escape layer. Place it last in the stack.
func BaseLayer() *baseLayer {
	return &baseLayer{}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Output operations and the output-accumulating layer, the reference
// capability layer. Output is collected through a [Monoid] and combined
// strictly at each emission; it is observable only through extraction, and
// it is scoped to the innermost enclosing successful completion: aborted
// scopes contribute nothing.

// Put is the operation for appending output.
// Perform(Put[W]{Value: w}) combines w into the accumulator.
type Put[W any] struct{ Value W }

func (Put[W]) OpResult() struct{} { panic("phantom") }

// DispatchWriter handles Put in output layer dispatch.
// The combined accumulator is forced here; the contents of w are not.
func (o Put[W]) DispatchWriter(l *writerLayer[W], _ *Stack) (Resumed, bool) {
	l.acc = l.mo.Combine(l.acc, o.Value)
	return struct{}{}, true
}

// TakeFrom is the operation for capturing output.
// Perform(TakeFrom[W, A]{Body: m}) runs m, diverting only the output m
// itself produced into the returned pair. The surrounding accumulator is
// left exactly as it was: once taken, that output is the caller's
// responsibility and is not re-emitted.
//
// Note: TakeFrom[W, A] for all A implements DispatchWriter through a
// structural interface assertion. This fixes the type switch limitation
// where case TakeFrom[W, Resumed] would not match TakeFrom[W, int].
type TakeFrom[W, A any] struct{ Body Eff[A] }

func (TakeFrom[W, A]) OpResult() Pair[A, W] { panic("phantom") }

// DispatchWriter handles TakeFrom in output layer dispatch.
// The body runs against the full stack, so every other capability stays
// available inside it. If the body unwinds, the saved accumulator is
// restored and the signal propagates; the aborted body contributes nothing.
func (o TakeFrom[W, A]) DispatchWriter(l *writerLayer[W], s *Stack) (Resumed, bool) {
	saved := l.acc
	l.acc = l.mo.Neutral
	r := runScoped[A](s, o.Body)
	if isSignal(r) {
		l.acc = saved
		return r, false
	}
	taken := l.acc
	l.acc = saved
	if r == nil {
		var zero A
		return Pair[A, W]{Fst: zero, Snd: taken}, true
	}
	return Pair[A, W]{Fst: r.(A), Snd: taken}, true
}

// MapBuffer is the operation for rewriting output.
// Perform(MapBuffer[W, A]{F: f, Body: m}) runs m, takes the output w it
// produced, and commits the replacement computed by f(w) in its place.
// Output emitted while evaluating f(w) is combined before the replacement
// itself; the original w is discarded unless f reuses it.
type MapBuffer[W, A any] struct {
	F    func(W) Eff[W]
	Body Eff[A]
}

func (MapBuffer[W, A]) OpResult() A { panic("phantom") }

// DispatchWriter handles MapBuffer in output layer dispatch.
func (o MapBuffer[W, A]) DispatchWriter(l *writerLayer[W], s *Stack) (Resumed, bool) {
	saved := l.acc
	l.acc = l.mo.Neutral
	r := runScoped[A](s, o.Body)
	if isSignal(r) {
		l.acc = saved
		return r, false
	}
	taken := l.acc
	l.acc = l.mo.Neutral
	fr := runScoped[W](s, o.F(taken))
	if isSignal(fr) {
		l.acc = saved
		return fr, false
	}
	emitted := l.acc
	var replacement W
	if fr != nil {
		replacement = fr.(W)
	}
	l.acc = l.mo.Combine(saved, l.mo.Combine(emitted, replacement))
	return scopedValue[A](r), true
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PutWriter fuses Put + Then: emits w, then runs next.
func PutWriter[W, B any](w W, next Cont[Resumed, B]) Cont[Resumed, B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Put[W]{Value: w}
		m.f = next
		m.k = k
		m.resume = thenMarkerResume[B]
		return m
	}
}

// TakeFromWriter runs a computation and returns the output it produced
// alongside its result, diverted from the surrounding accumulator.
func TakeFromWriter[W, A any](body Cont[Resumed, A]) Cont[Resumed, Pair[A, W]] {
	return Perform(TakeFrom[W, A]{Body: body})
}

// MapBufferWriter runs a computation and replaces its output via f.
func MapBufferWriter[W, A any](f func(W) Eff[W], body Cont[Resumed, A]) Cont[Resumed, A] {
	return Perform(MapBuffer[W, A]{F: f, Body: body})
}

// writerLayer owns the output capability for accumulator type W.
type writerLayer[W any] struct {
	mo  Monoid[W]
	acc W
}

// Dispatch implements [Capability]: output operations whose accumulator
// type is exactly W are claimed, everything else forwards.
func (l *writerLayer[W]) Dispatch(op Operation, s *Stack) (Resumed, bool, bool) {
	if wop, ok := op.(interface {
		DispatchWriter(l *writerLayer[W], s *Stack) (Resumed, bool)
	}); ok {
		v, resume := wop.DispatchWriter(l, s)
		return v, resume, true
	}
	return nil, false, false
}

// Mark implements [Buffered].
func (l *writerLayer[W]) Mark() any { return l.acc }

// Restore implements [Buffered].
func (l *writerLayer[W]) Restore(mark any) { l.acc = mark.(W) }

// ResetToNeutral implements [Buffered].
func (l *writerLayer[W]) ResetToNeutral() { l.acc = l.mo.Neutral }

// WriterLayer creates the output layer for the given accumulator.
// Returns the layer and a function extracting the accumulated output.
func WriterLayer[W any](mo Monoid[W]) (*writerLayer[W], func() W) {
	l := &writerLayer[W]{mo: mo, acc: mo.Neutral}
	return l, func() W { return l.acc }
}

// RunWriter runs an output-emitting computation and returns both result and
// accumulated output.
func RunWriter[W, A any](mo Monoid[W], m Cont[Resumed, A]) (A, W) {
	l, output := WriterLayer(mo)
	result := RunStack[A](New(l), m)
	return result, output()
}

// ExecWriter runs an output-emitting computation and returns only the output.
func ExecWriter[W, A any](mo Monoid[W], m Cont[Resumed, A]) W {
	_, output := RunWriter[W, A](mo, m)
	return output
}

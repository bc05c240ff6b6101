// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Non-determinism operations and layer.
// The choice layer runs alternative bodies in order and collects every
// result. Each branch accumulates output independently; completed branch
// outputs commit in branch order (sequential concatenation, never a merge
// across branches). Per-branch capture is expressed by wrapping a branch
// in [TakeFrom].

// Choose is the operation for branching.
// Perform(Choose[A]{Branches: ms}) runs every branch and returns the slice
// of branch results in branch order.
type Choose[A any] struct{ Branches []Eff[A] }

func (Choose[A]) OpResult() []A { panic("phantom") }

// DispatchChoice handles Choose in choice layer dispatch.
// Branches run against the full stack. A branch that unwinds rolls its own
// buffered contribution back and propagates the signal; earlier completed
// branches keep their committed output.
func (o Choose[A]) DispatchChoice(_ *choiceLayer, s *Stack) (Resumed, bool) {
	results := make([]A, 0, len(o.Branches))
	for _, branch := range o.Branches {
		marks := s.markBuffered()
		r := runScoped[A](s, branch)
		if isSignal(r) {
			s.restoreBuffered(marks)
			return r, false
		}
		if r == nil {
			var zero A
			results = append(results, zero)
			continue
		}
		results = append(results, r.(A))
	}
	return results, true
}

// ChooseOf runs the given alternatives and collects their results.
func ChooseOf[A any](branches ...Eff[A]) Eff[[]A] {
	return Perform(Choose[A]{Branches: branches})
}

// choiceLayer owns the non-determinism capability. It holds no data.
type choiceLayer struct{}

// Dispatch implements [Capability].
func (l *choiceLayer) Dispatch(op Operation, s *Stack) (Resumed, bool, bool) {
	if cop, ok := op.(interface {
		DispatchChoice(l *choiceLayer, s *Stack) (Resumed, bool)
	}); ok {
		v, resume := cop.DispatchChoice(l, s)
		return v, resume, true
	}
	return nil, false, false
}

// ChoiceLayer creates the non-determinism layer.
func ChoiceLayer() *choiceLayer {
	return &choiceLayer{}
}

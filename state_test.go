// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr_test

import (
	"testing"

	"code.hybscloud.com/layr"
)

func TestStatePeek(t *testing.T) {
	comp := layr.PeekState(func(s int) layr.Eff[int] {
		return layr.Pure(s + 1)
	})
	result, final := layr.RunState(41, comp)
	if result != 42 {
		t.Fatalf("got result %d, want 42", result)
	}
	if final != 41 {
		t.Fatalf("got state %d, want 41", final)
	}
}

func TestStatePokeReturnsOld(t *testing.T) {
	comp := layr.Bind(layr.Perform(layr.Poke[int]{Value: 9}), func(old int) layr.Eff[int] {
		return layr.Pure(old)
	})
	result, final := layr.RunState(3, comp)
	if result != 3 {
		t.Fatalf("got prior state %d, want 3", result)
	}
	if final != 9 {
		t.Fatalf("got state %d, want 9", final)
	}
}

func TestStateUpdateReturnsOld(t *testing.T) {
	comp := layr.Perform(layr.Update[int]{F: func(s int) int { return s * 2 }})
	result, final := layr.RunState(5, comp)
	if result != 5 {
		t.Fatalf("got prior state %d, want 5", result)
	}
	if final != 10 {
		t.Fatalf("got state %d, want 10", final)
	}
}

func TestStateVoidVariants(t *testing.T) {
	comp := layr.PokeState(7, layr.UpdateState(func(s int) int { return s + 1 }, layr.Pure(struct{}{})))
	if final := layr.ExecState(0, comp); final != 8 {
		t.Fatalf("got state %d, want 8", final)
	}
}

func TestStateEval(t *testing.T) {
	comp := layr.PokeState(100, layr.PeekState(func(s int) layr.Eff[int] {
		return layr.Pure(s)
	}))
	if got := layr.EvalState(0, comp); got != 100 {
		t.Fatalf("got %d, want 100", got)
	}
}

func TestStateSurvivesAbort(t *testing.T) {
	sl, state := layr.StateLayer(0)
	el := layr.ErrorLayer[string]()
	s := layr.New(sl, el)

	comp := layr.HandleError(
		layr.PokeState(5, layr.RaiseError[string, int]("boom")),
		func(string) layr.Eff[int] {
			return layr.PeekState(func(cur int) layr.Eff[int] { return layr.Pure(cur) })
		},
	)
	result := layr.RunStack(s, comp)
	// State is not buffered output: changes before the raise survive.
	if result != 5 {
		t.Fatalf("got result %d, want 5", result)
	}
	if state() != 5 {
		t.Fatalf("got state %d, want 5", state())
	}
}

func TestStateThreadsThroughSequence(t *testing.T) {
	comp := layr.UpdateState(func(s int) int { return s + 1 },
		layr.UpdateState(func(s int) int { return s * 3 },
			layr.PeekState(func(s int) layr.Eff[int] { return layr.Pure(s) })))
	result, final := layr.RunState(1, comp)
	if result != 6 {
		t.Fatalf("got result %d, want 6", result)
	}
	if final != 6 {
		t.Fatalf("got state %d, want 6", final)
	}
}

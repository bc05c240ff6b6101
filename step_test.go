// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr_test

import (
	"testing"

	"code.hybscloud.com/layr"
)

func TestStepCompletedValue(t *testing.T) {
	v, susp := layr.Step(layr.Pure(42))
	if susp != nil {
		t.Fatal("pure computation must not suspend")
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestStepSuspendsOnOperation(t *testing.T) {
	comp := layr.Bind(layr.Perform(layr.Ask[int]{}), func(env int) layr.Eff[int] {
		return layr.Pure(env * 2)
	})
	_, susp := layr.Step(comp)
	if susp == nil {
		t.Fatal("expected suspension on Ask")
	}
	if _, ok := susp.Op().(layr.Ask[int]); !ok {
		t.Fatalf("got op %T, want Ask[int]", susp.Op())
	}
	v, next := susp.Resume(21)
	if next != nil {
		t.Fatal("computation must complete after one resume")
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestStepChainsSuspensions(t *testing.T) {
	comp := layr.Bind(layr.Perform(layr.Ask[int]{}), func(a int) layr.Eff[int] {
		return layr.Bind(layr.Perform(layr.Ask[int]{}), func(b int) layr.Eff[int] {
			return layr.Pure(a + b)
		})
	})
	_, susp := layr.Step(comp)
	if susp == nil {
		t.Fatal("expected first suspension")
	}
	_, susp = susp.Resume(10)
	if susp == nil {
		t.Fatal("expected second suspension")
	}
	v, susp := susp.Resume(32)
	if susp != nil {
		t.Fatal("expected completion")
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestStepTryResumeAfterResume(t *testing.T) {
	_, susp := layr.Step(layr.Perform(layr.Ask[int]{}))
	if susp == nil {
		t.Fatal("expected suspension")
	}
	if v, next := susp.Resume(7); v != 7 || next != nil {
		t.Fatalf("got (%d, %v), want (7, nil)", v, next)
	}
	if _, _, ok := susp.TryResume(8); ok {
		t.Fatal("TryResume after Resume must fail")
	}
}

func TestStepDiscard(t *testing.T) {
	_, susp := layr.Step(layr.Perform(layr.Ask[int]{}))
	if susp == nil {
		t.Fatal("expected suspension")
	}
	susp.Discard()
	if _, _, ok := susp.TryResume(1); ok {
		t.Fatal("TryResume after Discard must fail")
	}
}

func TestStepResumeTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second Resume")
		}
	}()
	_, susp := layr.Step(layr.Perform(layr.Ask[int]{}))
	susp.Resume(1)
	susp.Resume(2)
}

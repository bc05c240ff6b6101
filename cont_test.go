// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr_test

import (
	"testing"

	"code.hybscloud.com/layr"
)

func TestReturnRun(t *testing.T) {
	m := layr.Return[int](42)
	if got := layr.Run(m); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestBindSequences(t *testing.T) {
	m := layr.Bind(layr.Return[int](20), func(x int) layr.Cont[int, int] {
		return layr.Return[int](x + 1)
	})
	if got := layr.Run(m); got != 21 {
		t.Fatalf("got %d, want 21", got)
	}
}

func TestMapTransforms(t *testing.T) {
	m := layr.Map(layr.Return[string](7), func(x int) string {
		if x == 7 {
			return "seven"
		}
		return "other"
	})
	if got := layr.Run(m); got != "seven" {
		t.Fatalf("got %q, want %q", got, "seven")
	}
}

func TestThenDiscardsFirst(t *testing.T) {
	m := layr.Then(layr.Return[int, string]("dropped"), layr.Return[int](3))
	if got := layr.Run(m); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestSuspendDirectCPS(t *testing.T) {
	m := layr.Suspend(func(k func(int) int) int {
		return k(10) + 1
	})
	if got := layr.Run(m); got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
}

func TestRunWithCustomFinal(t *testing.T) {
	m := layr.Return[string](5)
	got := layr.RunWith(m, func(x int) string {
		if x == 5 {
			return "five"
		}
		return "other"
	})
	if got != "five" {
		t.Fatalf("got %q, want %q", got, "five")
	}
}

func TestPureIsEffectFree(t *testing.T) {
	wl, output := layr.WriterLayer(layr.StringMonoid())
	s := layr.New(wl)
	if got := layr.RunStack(s, layr.Pure(9)); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if out := output(); out != "" {
		t.Fatalf("got output %q, want neutral", out)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/layr"
)

// recordTo appends a tag to an external log when the computation runs.
func recordTo(log *[]string, tag string) layr.Eff[struct{}] {
	return layr.InBase(func() struct{} {
		*log = append(*log, tag)
		return struct{}{}
	})
}

func TestBracketReleasesOnSuccess(t *testing.T) {
	s := layr.New(layr.ErrorLayer[string](), layr.BaseLayer())
	var log []string
	comp := layr.Bracket[string](
		layr.Then(recordTo(&log, "acquire"), layr.Pure("res")),
		func(string) layr.Eff[struct{}] { return recordTo(&log, "release") },
		func(r string) layr.Eff[int] {
			return layr.Then(recordTo(&log, "use:"+r), layr.Pure(1))
		},
	)
	if got := layr.RunStack(s, comp); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if !slices.Equal(log, []string{"acquire", "use:res", "release"}) {
		t.Fatalf("got log %v, want [acquire use:res release]", log)
	}
}

func TestBracketReleasesOnAbortAndReraises(t *testing.T) {
	s := layr.New(layr.ErrorLayer[string](), layr.BaseLayer())
	var log []string
	comp := layr.HandleError(
		layr.Bracket[string](
			layr.Pure("res"),
			func(string) layr.Eff[struct{}] { return recordTo(&log, "release") },
			func(string) layr.Eff[int] {
				return layr.RaiseError[string, int]("failed")
			},
		),
		func(e string) layr.Eff[int] {
			if e != "failed" {
				t.Fatalf("got error %q, want %q", e, "failed")
			}
			return layr.Pure(-1)
		},
	)
	if got := layr.RunStack(s, comp); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
	if !slices.Equal(log, []string{"release"}) {
		t.Fatalf("got log %v, want [release]", log)
	}
}

func TestOnErrorRunsCleanupAndReraises(t *testing.T) {
	s := layr.New(layr.ErrorLayer[string](), layr.BaseLayer())
	var log []string
	comp := layr.HandleError(
		layr.OnError(
			layr.RaiseError[string, int]("oops"),
			func(e string) layr.Eff[struct{}] { return recordTo(&log, "cleanup:"+e) },
		),
		func(string) layr.Eff[int] { return layr.Pure(0) },
	)
	layr.RunStack(s, comp)
	if !slices.Equal(log, []string{"cleanup:oops"}) {
		t.Fatalf("got log %v, want [cleanup:oops]", log)
	}
}

func TestOnErrorSkipsCleanupOnSuccess(t *testing.T) {
	s := layr.New(layr.ErrorLayer[string](), layr.BaseLayer())
	var log []string
	comp := layr.OnError(
		layr.Pure(9),
		func(string) layr.Eff[struct{}] { return recordTo(&log, "cleanup") },
	)
	if got := layr.RunStack(s, comp); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if len(log) != 0 {
		t.Fatalf("cleanup ran on success: %v", log)
	}
}

func TestBracketOutputRollbackOnAbort(t *testing.T) {
	// Output emitted inside use participates in rollback like any catch
	// scope; output emitted before the bracket survives the handled abort.
	wl, output := layr.WriterLayer(layr.StringMonoid())
	s := layr.New(wl, layr.ErrorLayer[string](), layr.BaseLayer())
	comp := layr.PutWriter("pre", layr.HandleError(
		layr.Bracket[string](
			layr.Pure(0),
			func(int) layr.Eff[struct{}] { return layr.Pure(struct{}{}) },
			func(int) layr.Eff[int] {
				return layr.PutWriter("doomed", layr.RaiseError[string, int]("e"))
			},
		),
		func(string) layr.Eff[int] { return layr.Pure(0) },
	))
	layr.RunStack(s, comp)
	if out := output(); out != "pre" {
		t.Fatalf("got output %q, want %q", out, "pre")
	}
}

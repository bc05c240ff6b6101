// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/layr"
)

// fullStack builds a stack carrying every capability the package ships.
func fullStack(t *testing.T) (*layr.Stack, func() []string, func() int) {
	t.Helper()
	wl, output := layr.WriterLayer(layr.SliceMonoid[string]())
	sl, state := layr.StateLayer(0)
	return layr.New(
		wl,
		layr.ReaderLayer("env"),
		sl,
		layr.ErrorLayer[string](),
		layr.ControlLayer(),
		layr.ChoiceLayer(),
		layr.BaseLayer(),
	), output, state
}

func TestStackDelegationTotality(t *testing.T) {
	s, output, state := fullStack(t)

	// One computation exercising every capability through the one stack:
	// each operation resolves to whichever layer owns it, wherever it sits.
	comp := layr.AskReader(func(env string) layr.Eff[int] {
		return layr.PutWriter([]string{env},
			layr.PokeState(5,
				layr.Bind(
					layr.HandleError(
						layr.RaiseError[string, int]("handled"),
						func(string) layr.Eff[int] { return layr.Pure(1) },
					),
					func(handled int) layr.Eff[int] {
						return layr.Bind(layr.InBase(func() int { return 10 }), func(base int) layr.Eff[int] {
							return layr.PeekState(func(cur int) layr.Eff[int] {
								return layr.Pure(handled + base + cur)
							})
						})
					},
				)))
	})

	result := layr.RunStack(s, comp)
	require.Equal(t, 16, result)
	assert.Equal(t, []string{"env"}, output())
	assert.Equal(t, 5, state())
}

func TestStackScopedBodySeesFullStack(t *testing.T) {
	// Capability operations of other layers keep working inside a
	// take-output scope.
	s, output, state := fullStack(t)

	body := layr.PokeState(9, layr.AskReader(func(env string) layr.Eff[string] {
		return layr.PutWriter([]string{"inner"}, layr.Pure(env))
	}))
	pair := layr.RunStack(s, layr.TakeFromWriter[[]string](body))

	require.Equal(t, "env", pair.Fst)
	assert.Equal(t, []string{"inner"}, pair.Snd)
	assert.Empty(t, output())
	assert.Equal(t, 9, state())
}

func TestStackUnhandledOpPanics(t *testing.T) {
	s := layr.New(layr.ReaderLayer(1))
	assert.PanicsWithValue(t, "layr: unhandled operation in Stack", func() {
		layr.RunStack(s, layr.PutWriter("w", layr.Pure(0)))
	})
}

func TestStackResourceTypeSelectsLayer(t *testing.T) {
	// Two output layers with distinct accumulator types: each Put resolves
	// to the layer whose resource type matches, never both.
	ws, strs := layr.WriterLayer(layr.StringMonoid())
	wi, ints := layr.WriterLayer(layr.SumMonoid[int]())
	s := layr.New(ws, wi)

	comp := layr.PutWriter("s", layr.PutWriter(3, layr.PutWriter(4, layr.Pure(struct{}{}))))
	layr.RunStack(s, comp)

	assert.Equal(t, "s", strs())
	assert.Equal(t, 7, ints())
}

func TestStackOuterLayerWins(t *testing.T) {
	// Same resource type twice: the outermost layer owns the capability.
	outer, outerOut := layr.WriterLayer(layr.StringMonoid())
	inner, innerOut := layr.WriterLayer(layr.StringMonoid())
	s := layr.New(outer, inner)

	layr.RunStack(s, layr.PutWriter("x", layr.Pure(struct{}{})))
	assert.Equal(t, "x", outerOut())
	assert.Equal(t, "", innerOut())
}

func TestStackEitherEdge(t *testing.T) {
	s, output, _ := fullStack(t)
	result := layr.RunStackEither[string](s, layr.PutWriter([]string{"lost"}, layr.RaiseError[string, int]("edge")))
	e, ok := result.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "edge", e)
	// Nothing caught the raise, so nothing completed successfully; the
	// accumulator still holds what was emitted before the raise.
	assert.Equal(t, []string{"lost"}, output())
}

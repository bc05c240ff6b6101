// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Resource safety primitives for exception-safe resource management.
// Both combinators are expressed purely on Raise/Catch operations, so they
// run under any stack carrying the matching error layer and participate in
// output rollback like any other catch scope.

// Bracket provides exception-safe resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where release
// is guaranteed to run whether use completes or aborts. An abort in use is
// re-raised after release, to be caught by an enclosing scope or surface at
// the run edge.
func Bracket[E, R, A any](
	acquire Eff[R],
	release func(R) Eff[struct{}],
	use func(R) Eff[A],
) Eff[A] {
	return Bind(acquire, func(resource R) Eff[A] {
		return Bind(
			HandleError(use(resource), func(e E) Eff[A] {
				return Then(release(resource), RaiseError[E, A](e))
			}),
			func(a A) Eff[A] {
				return Map(release(resource), func(struct{}) A { return a })
			},
		)
	})
}

// OnError runs cleanup only if the computation aborts, then re-raises.
func OnError[E, A any](
	body Eff[A],
	cleanup func(E) Eff[struct{}],
) Eff[A] {
	return HandleError(body, func(e E) Eff[A] {
		return Then(cleanup(e), RaiseError[E, A](e))
	})
}

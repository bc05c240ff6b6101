// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Generic sequence helpers threading a computation over slices.
// All of them traverse left to right, so emitted output and state changes
// observe slice order.

// MapM applies an effectful function to every element, collecting results.
func MapM[A, B any](f func(A) Eff[B], xs []A) Eff[[]B] {
	var step func(i int, acc []B) Eff[[]B]
	step = func(i int, acc []B) Eff[[]B] {
		if i == len(xs) {
			return Pure(acc)
		}
		return Bind(f(xs[i]), func(b B) Eff[[]B] {
			return step(i+1, append(acc, b))
		})
	}
	return step(0, make([]B, 0, len(xs)))
}

// FilterM keeps the elements for which an effectful predicate holds.
func FilterM[A any](pred func(A) Eff[bool], xs []A) Eff[[]A] {
	var step func(i int, acc []A) Eff[[]A]
	step = func(i int, acc []A) Eff[[]A] {
		if i == len(xs) {
			return Pure(acc)
		}
		return Bind(pred(xs[i]), func(keep bool) Eff[[]A] {
			if keep {
				return step(i+1, append(acc, xs[i]))
			}
			return step(i+1, acc)
		})
	}
	return step(0, nil)
}

// ZipWithM combines two slices elementwise with an effectful function,
// stopping at the shorter slice.
func ZipWithM[A, B, C any](f func(A, B) Eff[C], xs []A, ys []B) Eff[[]C] {
	n := min(len(xs), len(ys))
	var step func(i int, acc []C) Eff[[]C]
	step = func(i int, acc []C) Eff[[]C] {
		if i == n {
			return Pure(acc)
		}
		return Bind(f(xs[i], ys[i]), func(c C) Eff[[]C] {
			return step(i+1, append(acc, c))
		})
	}
	return step(0, make([]C, 0, n))
}

// SequenceM runs a slice of computations in order, collecting results.
func SequenceM[A any](ms []Eff[A]) Eff[[]A] {
	return MapM(identity[Eff[A]], ms)
}

// FoldM folds an effectful function over a slice, left to right.
func FoldM[A, B any](f func(B, A) Eff[B], init B, xs []A) Eff[B] {
	var step func(i int, acc B) Eff[B]
	step = func(i int, acc B) Eff[B] {
		if i == len(xs) {
			return Pure(acc)
		}
		return Bind(f(acc, xs[i]), func(next B) Eff[B] {
			return step(i+1, next)
		})
	}
	return step(0, init)
}

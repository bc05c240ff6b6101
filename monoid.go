// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layr

// Monoid is the accumulator contract for the output layer: an associative
// Combine and a Neutral element that is both left- and right-identity.
//
//	Combine(Neutral, x) == Combine(x, Neutral) == x
//	Combine(Combine(x, y), z) == Combine(x, Combine(y, z))
//
// The output layer forces the combined accumulator at every step (Go
// evaluation is strict in the accumulator handle), but never inspects the
// values held inside it: a Monoid over []W appends slice headers without
// touching elements.
type Monoid[W any] struct {
	Neutral W
	Combine func(W, W) W
}

// SliceMonoid is the accumulator over slices of W: Neutral is the empty
// slice and Combine is concatenation.
func SliceMonoid[W any]() Monoid[[]W] {
	return Monoid[[]W]{
		Neutral: nil,
		Combine: func(a, b []W) []W {
			if len(a) == 0 {
				return b
			}
			out := make([]W, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// StringMonoid is the accumulator over strings: Neutral is "" and Combine
// is concatenation.
func StringMonoid() Monoid[string] {
	return Monoid[string]{
		Neutral: "",
		Combine: func(a, b string) string { return a + b },
	}
}

// Summable constrains the numeric types SumMonoid accumulates over.
type Summable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SumMonoid is the accumulator over numbers: Neutral is 0 and Combine is
// addition.
func SumMonoid[N Summable]() Monoid[N] {
	return Monoid[N]{
		Neutral: 0,
		Combine: func(a, b N) N { return a + b },
	}
}

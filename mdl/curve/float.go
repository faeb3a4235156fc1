// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve implements saturation curves given either by sampled tables or by
// the three-parameter LET correlation, for any floating point precision
package curve

import (
	"math"
	"unsafe"
)

// Float defines the scalars that curves can be evaluated with
type Float interface {
	~float32 | ~float64
}

// Eps returns the machine epsilon of T; i.e. the smallest ϵ satisfying 1 + ϵ > 1
func Eps[T Float]() T {
	var x T
	if unsafe.Sizeof(x) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// Tiny returns a small tolerance for T: the square root of its epsilon
func Tiny[T Float]() T {
	return T(math.Sqrt(float64(Eps[T]())))
}

// Clamp returns x limited to [lo, hi]
func Clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Pow computes x^y for T
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Convert converts a float64 slice into a slice of T
func Convert[T Float](v []float64) []T {
	res := make([]T, len(v))
	for i, x := range v {
		res[i] = T(x)
	}
	return res
}

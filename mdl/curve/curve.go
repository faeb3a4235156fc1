// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/num"
)

// Kind tells how a curve is defined
type Kind int

const (
	Sampled Kind = iota // monotone ordered sequence of (saturation, value) samples
	Let                 // three-parameter LET correlation
)

// String returns the name of the kind
func (k Kind) String() string {
	if k == Let {
		return "let"
	}
	return "sampled"
}

// Curve holds one saturation function, either sampled or parametric. Curves are
// immutable after construction and can be shared among goroutines.
//
//  Sampled: piecewise linear between samples; end values are kept outside [xs[0], xs[n-1]]
//  Let:     v(s) = lo + (hi - lo) F(S')   with   S = (s - smin)/(smax - smin) clamped to [0,1]
//           F(S) = S^L / (S^L + E (1-S)^T)   and   S' = S, or S' = 1 - S if flip
type Curve[T Float] struct {
	name string
	kind Kind

	// sampled
	xs, ys []T

	// LET
	l, e, t    T    // coefficients
	smin, smax T    // saturation range mapped onto [0,1]
	lo, hi     T    // values at S' = 0 and S' = 1
	flip       bool // evaluate F(1-S); used by decreasing capillary pressures
}

// NewSampled returns a new sampled curve. xs must be strictly increasing within [0,1]
func NewSampled[T Float](name string, xs, ys []T) (o *Curve[T], err error) {
	if len(xs) != len(ys) {
		return nil, Err(InvalidTable, "%s: saturation and value columns have different lengths (%d != %d)", name, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, Err(InvalidTable, "%s: at least two samples are required; %d given", name, len(xs))
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return nil, Err(InvalidTable, "%s: sample %d is not finite: (%g, %g)", name, i, xs[i], ys[i])
		}
		if xs[i] < 0 || xs[i] > 1 {
			return nil, Err(InvalidTable, "%s: saturation %g of sample %d is outside [0,1]", name, xs[i], i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, Err(InvalidTable, "%s: saturations must be strictly increasing; sample %d: %g <= %g", name, i, xs[i], xs[i-1])
		}
	}
	o = &Curve[T]{name: name, kind: Sampled}
	o.xs = append([]T{}, xs...)
	o.ys = append([]T{}, ys...)
	return
}

// NewLet returns a new LET curve
func NewLet[T Float](name string, l, e, t, smin, smax, lo, hi T, flip bool) (o *Curve[T], err error) {
	for _, c := range []T{l, e, t, smin, smax, lo, hi} {
		if !finite(c) {
			return nil, Err(InvalidTable, "%s: LET parameters must be finite", name)
		}
	}
	if l <= 0 || e <= 0 || t <= 0 {
		return nil, Err(InvalidTable, "%s: LET coefficients must be positive; L=%g, E=%g, T=%g", name, l, e, t)
	}
	if smin < 0 || smax > 1 || smax <= smin {
		return nil, Err(InvalidTable, "%s: LET saturation range [%g, %g] is invalid", name, smin, smax)
	}
	return &Curve[T]{name: name, kind: Let, l: l, e: e, t: t, smin: smin, smax: smax, lo: lo, hi: hi, flip: flip}, nil
}

// Name returns the name of the curve
func (o *Curve[T]) Name() string { return o.name }

// Kind returns the kind of the curve
func (o *Curve[T]) Kind() Kind { return o.kind }

// Domain returns the saturation range where the curve is not constant-clamped
func (o *Curve[T]) Domain() (smin, smax T) {
	if o.kind == Let {
		return o.smin, o.smax
	}
	return o.xs[0], o.xs[len(o.xs)-1]
}

// Samples returns copies of the samples; nil for LET curves
func (o *Curve[T]) Samples() (xs, ys []T) {
	if o.kind == Let {
		return
	}
	return append([]T{}, o.xs...), append([]T{}, o.ys...)
}

// Value evaluates the curve at saturation s
func (o *Curve[T]) Value(s T) T {
	if o.kind == Let {
		S := Clamp((s-o.smin)/(o.smax-o.smin), 0, 1)
		if o.flip {
			S = 1 - S
		}
		return o.lo + (o.hi-o.lo)*LetShape(S, o.l, o.e, o.t)
	}
	n := len(o.xs)
	if s <= o.xs[0] {
		return o.ys[0]
	}
	if s >= o.xs[n-1] {
		return o.ys[n-1]
	}
	i := sort.Search(n, func(k int) bool { return o.xs[k] > s }) - 1
	x0, x1 := o.xs[i], o.xs[i+1]
	y0, y1 := o.ys[i], o.ys[i+1]
	return y0 + (y1-y0)*(s-x0)/(x1-x0)
}

// Critical returns the largest saturation up to which the curve stays below or at tol,
// starting from the lower end of the domain. It returns the lower end of the domain if
// the first value is already above tol
func (o *Curve[T]) Critical(tol T) T {
	if o.kind == Let {
		return o.smin
	}
	crit := o.xs[0]
	for i, y := range o.ys {
		if y > tol {
			break
		}
		crit = o.xs[i]
	}
	return crit
}

// Inverse returns the saturation where a non-decreasing curve reaches v. Values outside
// the range of the curve give the corresponding end of the domain. For flat parts, the
// lowest saturation reaching v is returned
func (o *Curve[T]) Inverse(v T) T {
	a, b := o.Domain()
	if v <= o.Value(a) {
		return a
	}
	if v >= o.Value(b) {
		return b
	}
	if o.kind == Sampled {
		for i := 1; i < len(o.xs); i++ {
			if o.ys[i] >= v {
				y0, y1 := o.ys[i-1], o.ys[i]
				if y1 == y0 {
					return o.xs[i-1]
				}
				return o.xs[i-1] + (o.xs[i]-o.xs[i-1])*(v-y0)/(y1-y0)
			}
		}
		return b
	}
	return Root(o.Value, v, a, b)
}

// Root finds s in [a, b] such that f(s) = v, where f is non-decreasing. The ends are
// returned when v is outside [f(a), f(b)]. Brent's method runs in float64
func Root[T Float](f func(s T) T, v, a, b T) T {
	g := func(s float64) float64 { return float64(f(T(s)) - v) }
	if g(float64(a)) >= 0 {
		return a
	}
	if g(float64(b)) <= 0 {
		return b
	}
	solver := num.NewBrent(g, nil)
	return Clamp(T(solver.Root(float64(a), float64(b))), a, b)
}

// LetShape computes F(S) = S^L / (S^L + E (1-S)^T) with F(S<=0) = 0 and F(S>=1) = 1
func LetShape[T Float](S, l, e, t T) T {
	if S <= 0 {
		return 0
	}
	if S >= 1 {
		return 1
	}
	powS := Pow(S, l)
	pow1mS := Pow(1-S, t)
	return powS / (powS + e*pow1mS)
}

// finite tells whether x is neither NaN nor Inf
func finite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

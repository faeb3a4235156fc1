// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"

	"github.com/aritorto/opm-common/mdl/curve"
)

// Overrides holds per-element endpoint saturations replacing the region's endpoints.
// NaN means "keep the region value"
type Overrides struct {
	Swl   float64 `json:"swl" yaml:"swl"`
	Swcr  float64 `json:"swcr" yaml:"swcr"`
	Sowcr float64 `json:"sowcr" yaml:"sowcr"`
	Sogcr float64 `json:"sogcr" yaml:"sogcr"`
	Sgl   float64 `json:"sgl" yaml:"sgl"`
	Sgcr  float64 `json:"sgcr" yaml:"sgcr"`
}

// NoOverrides returns overrides with all values unset
func NoOverrides() Overrides {
	nan := math.NaN()
	return Overrides{nan, nan, nan, nan, nan, nan}
}

// Empty tells whether no value is set
func (o Overrides) Empty() bool {
	for _, v := range []float64{o.Swl, o.Swcr, o.Sowcr, o.Sogcr, o.Sgl, o.Sgcr} {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// View evaluates the curves of a set, with or without endpoint scaling. Unscaled views
// evaluate the canonical curves directly
type View[T curve.Float] struct {
	set    *CurveSet[T]
	ends   Endpoints[T] // scaled endpoints
	scaled bool
}

// View returns an unscaled view when ov is nil or empty; otherwise a view with two-point
// endpoint scaling. Overrides outside the domain of the underlying curve are rejected
func (o *CurveSet[T]) View(ov *Overrides) (*View[T], error) {
	v := &View[T]{set: o, ends: o.Ends}
	if ov == nil || ov.Empty() {
		return v, nil
	}
	e := &v.ends
	set := func(dst *T, val float64, name string, c *curve.Curve[T], hi T) error {
		if math.IsNaN(val) {
			return nil
		}
		if c == nil {
			return curve.Err(curve.ConfigMismatch, "endpoint %s = %g refers to an inactive phase in region %d", name, val, o.Region)
		}
		smin, smax := c.Domain()
		x := T(val)
		if x < smin || x > smax || x >= hi {
			return curve.Err(curve.ConfigMismatch, "endpoint %s = %g is outside the domain [%g, %g) of %s in region %d", name, val, smin, min(smax, hi), c.Name(), o.Region)
		}
		*dst = x
		return nil
	}
	if err := set(&e.Swl, ov.Swl, "swl", o.Pcow, e.Swu); err != nil {
		return nil, err
	}
	if err := set(&e.Swcr, ov.Swcr, "swcr", o.Krw, e.Swu); err != nil {
		return nil, err
	}
	if err := set(&e.Sowcr, ov.Sowcr, "sowcr", o.Krow, 1-e.Swl); err != nil {
		return nil, err
	}
	if err := set(&e.Sgl, ov.Sgl, "sgl", o.Pcog, e.Sgu); err != nil {
		return nil, err
	}
	if err := set(&e.Sogcr, ov.Sogcr, "sogcr", o.Krog, 1-e.Swl-e.Sgl); err != nil {
		return nil, err
	}
	if err := set(&e.Sgcr, ov.Sgcr, "sgcr", o.Krg, e.Sgu); err != nil {
		return nil, err
	}
	v.scaled = true
	return v, nil
}

// Set returns the underlying curve set
func (o *View[T]) Set() *CurveSet[T] { return o.set }

// Ends returns the (scaled) endpoints
func (o *View[T]) Ends() Endpoints[T] { return o.ends }

// Scaled tells whether endpoint scaling is active
func (o *View[T]) Scaled() bool { return o.scaled }

// Krw returns krw(Sw)
func (o *View[T]) Krw(sw T) T {
	if o.set.Krw == nil {
		return 0
	}
	if o.scaled {
		sw = twoPoint(sw, o.ends.Swcr, o.ends.Swu, o.set.Ends.Swcr, o.set.Ends.Swu)
	}
	return o.set.Krw.Value(sw)
}

// Krow returns krow(So)
func (o *View[T]) Krow(so T) T {
	if o.set.Krow == nil {
		return 0
	}
	if o.scaled {
		so = twoPoint(so, o.ends.Sowcr, 1-o.ends.Swl, o.set.Ends.Sowcr, 1-o.set.Ends.Swl)
	}
	return o.set.Krow.Value(so)
}

// Krog returns krog(So)
func (o *View[T]) Krog(so T) T {
	if o.set.Krog == nil {
		return 0
	}
	if o.scaled {
		so = twoPoint(so, o.ends.Sogcr, 1-o.ends.Swl-o.ends.Sgl, o.set.Ends.Sogcr, 1-o.set.Ends.Swl-o.set.Ends.Sgl)
	}
	return o.set.Krog.Value(so)
}

// Krg returns krg(Sg)
func (o *View[T]) Krg(sg T) T {
	if o.set.Krg == nil {
		return 0
	}
	if o.scaled {
		sg = twoPoint(sg, o.ends.Sgcr, o.ends.Sgu, o.set.Ends.Sgcr, o.set.Ends.Sgu)
	}
	return o.set.Krg.Value(sg)
}

// Pcow returns pcow(Sw)
func (o *View[T]) Pcow(sw T) T {
	if o.set.Pcow == nil {
		return 0
	}
	if o.scaled {
		sw = twoPoint(sw, o.ends.Swl, o.ends.Swu, o.set.Ends.Swl, o.set.Ends.Swu)
	}
	return o.set.Pcow.Value(sw)
}

// Pcog returns pcog(Sg)
func (o *View[T]) Pcog(sg T) T {
	if o.set.Pcog == nil {
		return 0
	}
	if o.scaled {
		sg = twoPoint(sg, o.ends.Sgl, o.ends.Sgu, o.set.Ends.Sgl, o.set.Ends.Sgu)
	}
	return o.set.Pcog.Value(sg)
}

// Kro returns the three-phase oil relative permeability computed by the set's oil model
func (o *View[T]) Kro(sw, so, sg T) T {
	st := &OilState[T]{Sw: sw, So: so, Sg: sg, Krw: o.Krw(sw), Krg: o.Krg(sg), Ends: o.ends}
	return o.set.Oil.Kro(st, o)
}

// twoPoint maps s from the scaled range [c, u] onto the unscaled range [c0, u0]
func twoPoint[T curve.Float](s, c, u, c0, u0 T) T {
	if s <= c {
		return c0
	}
	if s >= u {
		return u0
	}
	return c0 + (s-c)*(u0-c0)/(u-c)
}

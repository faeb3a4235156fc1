// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/cpmech/gosl/io"
)

// phase indices
const (
	WaterIdx  = 0 // water phase
	OilIdx    = 1 // oil phase
	GasIdx    = 2 // gas phase
	NumPhases = 3 // number of phases
)

// Phases holds the active phases
type Phases struct {
	Water bool `json:"water" yaml:"water"`
	Oil   bool `json:"oil" yaml:"oil"`
	Gas   bool `json:"gas" yaml:"gas"`
}

// Check checks whether the combination of phases is supported
func (o Phases) Check() error {
	if !o.Oil {
		return curve.Err(curve.ConfigMismatch, "the oil phase must be active; phases = %v", o)
	}
	if !o.Water && !o.Gas {
		return curve.Err(curve.ConfigMismatch, "at least one of water or gas must be active together with oil")
	}
	return nil
}

// ThreePhase tells whether water, oil and gas are all active
func (o Phases) ThreePhase() bool {
	return o.Water && o.Oil && o.Gas
}

// String returns a short description; e.g. "water-oil-gas"
func (o Phases) String() string {
	l := ""
	add := func(on bool, name string) {
		if !on {
			return
		}
		if l != "" {
			l += "-"
		}
		l += name
	}
	add(o.Water, "water")
	add(o.Oil, "oil")
	add(o.Gas, "gas")
	return l
}

// Endpoints holds the saturation endpoints of a curve set
type Endpoints[T curve.Float] struct {
	Swl   T // connate water saturation
	Swcr  T // critical water saturation
	Swu   T // maximum water saturation
	Sowcr T // critical oil saturation in water
	Sogcr T // critical oil saturation in gas
	Sgl   T // connate gas saturation
	Sgcr  T // critical gas saturation
	Sgu   T // maximum gas saturation
	Krocw T // oil relative permeability at connate water
}

// CurveSet holds the canonical saturation functions of one region. Curves of inactive
// phases are nil. A CurveSet is immutable after construction and shared by reference
// among all elements of the region
type CurveSet[T curve.Float] struct {
	Region int             // region id
	Family Family          // keyword family the curves were built from
	Phases Phases          // active phases
	Krw    *curve.Curve[T] // krw(Sw)
	Krow   *curve.Curve[T] // krow(So) in the oil-water system
	Krog   *curve.Curve[T] // krog(So) in the gas-oil system with connate water
	Krg    *curve.Curve[T] // krg(Sg)
	Pcow   *curve.Curve[T] // pcow(Sw) = po - pw
	Pcog   *curve.Curve[T] // pcog(Sg) = pg - po
	Ends   Endpoints[T]    // unscaled endpoints
	Oil    OilModel[T]     // three-phase oil relative permeability
}

// Curves returns all non-nil curves
func (o *CurveSet[T]) Curves() (res []*curve.Curve[T]) {
	for _, c := range []*curve.Curve[T]{o.Krw, o.Krow, o.Krog, o.Krg, o.Pcow, o.Pcog} {
		if c != nil {
			res = append(res, c)
		}
	}
	return
}

// String returns a summary of the set
func (o *CurveSet[T]) String() string {
	l := io.Sf("region %d (%v, %v):", o.Region, o.Family, o.Phases)
	for _, c := range o.Curves() {
		smin, smax := c.Domain()
		l += io.Sf(" %s[%s %g..%g]", c.Name(), c.Kind(), smin, smax)
	}
	return l
}

// deriveEndpoints computes the endpoints of sampled curves
func (o *CurveSet[T]) deriveEndpoints() {
	zero := 10 * curve.Eps[T]()
	e := &o.Ends
	if o.Krw != nil {
		e.Swl, e.Swu = o.Krw.Domain()
		e.Swcr = o.Krw.Critical(zero)
	}
	if o.Krow != nil {
		e.Sowcr = o.Krow.Critical(zero)
		e.Krocw = o.Krow.Value(1 - e.Swl)
	}
	if o.Krg != nil {
		e.Sgl, e.Sgu = o.Krg.Domain()
		e.Sgcr = o.Krg.Critical(zero)
	}
	if o.Krog != nil {
		e.Sogcr = o.Krog.Critical(zero)
		if o.Krow == nil {
			e.Krocw = o.Krog.Value(1 - e.Swl - e.Sgl)
		}
	}
}

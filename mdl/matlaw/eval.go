// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/aritorto/opm-common/mdl/hyster"
	"github.com/aritorto/opm-common/mdl/satfunc"
)

// phase indices
const (
	W = satfunc.WaterIdx
	O = satfunc.OilIdx
	G = satfunc.GasIdx
)

// FluidState gives the saturation of each phase
type FluidState[T curve.Float] interface {
	Saturation(phase int) T
}

// SimpleFluidState holds saturations only
type SimpleFluidState[T curve.Float] struct {
	S [satfunc.NumPhases]T
}

// NewFluidState returns a new fluid state
func NewFluidState[T curve.Float](sw, so, sg T) *SimpleFluidState[T] {
	return &SimpleFluidState[T]{S: [satfunc.NumPhases]T{W: sw, O: so, G: sg}}
}

// Saturation returns the saturation of a phase
func (o *SimpleFluidState[T]) Saturation(phase int) T { return o.S[phase] }

// SetSaturation sets the saturation of a phase
func (o *SimpleFluidState[T]) SetSaturation(phase int, s T) { o.S[phase] = s }

// CapillaryPressures computes the capillary pressure of each phase relative to oil:
//  dst[W] = -pcow(Sw)   dst[O] = 0   dst[G] = pcog(Sg)
// Inactive phases give zero. dst must hold satfunc.NumPhases values
func CapillaryPressures[T curve.Float](dst []T, p *Params[T], fs FluidState[T]) {
	clear(dst[:satfunc.NumPhases])
	ph := p.Phases()
	if ph.Water {
		sw := fs.Saturation(W)
		pcow := p.Drain.Pcow(sw)
		if pc, _, ok := p.scan(hyster.OilWater, sw); ok {
			pcow = pc
		}
		dst[W] = -pcow
	}
	if ph.Gas {
		sg := fs.Saturation(G)
		pcog := p.Drain.Pcog(sg)
		if pc, _, ok := p.scan(hyster.GasOil, 1-sg); ok {
			pcog = pc
		}
		dst[G] = pcog
	}
}

// RelativePermeabilities computes the relative permeability of each phase. Wetting
// phases always follow the drainage curves. Inactive phases give zero. dst must hold
// satfunc.NumPhases values
func RelativePermeabilities[T curve.Float](dst []T, p *Params[T], fs FluidState[T]) {
	clear(dst[:satfunc.NumPhases])
	sw, so, sg := fs.Saturation(W), fs.Saturation(O), fs.Saturation(G)
	ph := p.Phases()
	br := &branches[T]{p}
	switch {
	case ph.ThreePhase():
		dst[W] = p.Drain.Krw(sw)
		dst[G] = br.krg(sg)
		st := &satfunc.OilState[T]{Sw: sw, So: so, Sg: sg, Krw: dst[W], Krg: dst[G], Ends: p.Drain.Ends()}
		dst[O] = p.Drain.Set().Oil.Kro(st, br)
	case ph.Water:
		dst[W] = p.Drain.Krw(sw)
		dst[O] = br.Krow(so)
	case ph.Gas:
		dst[G] = br.krg(sg)
		dst[O] = br.Krog(so)
	}
}

// branches gives the non-wetting relative permeabilities with hysteresis
type branches[T curve.Float] struct {
	p *Params[T]
}

// Krow returns krow(So); oil is non-wetting in the oil-water system
func (o *branches[T]) Krow(so T) T {
	if _, krn, ok := o.p.scan(hyster.OilWater, 1-so); ok {
		return krn
	}
	return o.p.Drain.Krow(so)
}

// Krog returns krog(So); liquid is the wetting phase in the gas-oil system
func (o *branches[T]) Krog(so T) T {
	return o.p.Drain.Krog(so)
}

// krg returns krg(Sg)
func (o *branches[T]) krg(sg T) T {
	if _, krn, ok := o.p.scan(hyster.GasOil, 1-sg); ok {
		return krn
	}
	return o.p.Drain.Krg(sg)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matlaw implements the material-law manager: canonical saturation functions per
// region, per-element parameters with optional endpoint scaling and hysteresis, and the
// evaluation of capillary pressures and relative permeabilities
package matlaw

import (
	"sort"

	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/aritorto/opm-common/mdl/hyster"
	"github.com/aritorto/opm-common/mdl/satfunc"
	"github.com/sirupsen/logrus"
)

// Manager builds and holds the material-law parameters of all elements
type Manager[T curve.Float] struct {
	phases  satfunc.Phases
	sets    map[int]*satfunc.CurveSet[T] // drainage sets
	imbSets map[int]*satfunc.CurveSet[T] // imbibition sets; nil if not given
	store   *Store[T]
}

// InitFromState normalises the saturation functions of all regions. Nothing is kept if
// any region fails
func (o *Manager[T]) InitFromState(cfg *Config) (err error) {
	var oil satfunc.OilModel[T]
	if cfg.OilModel != "" {
		if oil, err = satfunc.NewOilModel[T](cfg.OilModel); err != nil {
			return
		}
	}
	nrm, err := satfunc.NewNormalizer(cfg.Phases, oil)
	if err != nil {
		return
	}
	sets, err := nrm.All(cfg.Regions)
	if err != nil {
		return
	}
	var imbSets map[int]*satfunc.CurveSet[T]
	if len(cfg.ImbRegions) > 0 {
		if imbSets, err = nrm.All(cfg.ImbRegions); err != nil {
			return
		}
	}
	o.phases, o.sets, o.imbSets, o.store = cfg.Phases, sets, imbSets, nil
	logrus.Debugf("matlaw: %v; %d drainage and %d imbibition regions; oil model %q", cfg.Phases, len(sets), len(imbSets), oil.Name())
	return
}

// InitParamsForElements builds the parameters of n elements
func (o *Manager[T]) InitParamsForElements(cfg *Config, n int) (err error) {
	if o.sets == nil {
		return curve.Err(curve.InvalidState, "InitFromState must be called before InitParamsForElements")
	}
	satnum := regionIds(cfg.SatNum, n, func(int) int { return 1 })
	store, err := Build(n, satnum, o.sets, cfg.Hysteresis, cfg.Eps)
	if err != nil {
		return
	}
	if cfg.ImbNum != nil || o.imbSets != nil {
		imbSets := o.imbSets
		if imbSets == nil {
			imbSets = o.sets
		}
		imbnum := regionIds(cfg.ImbNum, n, func(i int) int { return satnum[i] })
		if err = store.SetImbibition(imbnum, imbSets); err != nil {
			return
		}
	}
	elems := make([]int, 0, len(cfg.Overrides))
	for e := range cfg.Overrides {
		elems = append(elems, e)
	}
	sort.Ints(elems)
	for _, e := range elems {
		if err = store.SetEndpointOverrides(e, cfg.Overrides[e]); err != nil {
			return
		}
	}
	o.store = store
	return
}

// Sets returns the drainage curve sets by region id
func (o *Manager[T]) Sets() map[int]*satfunc.CurveSet[T] { return o.sets }

// ImbSets returns the imbibition curve sets by region id; nil if not given
func (o *Manager[T]) ImbSets() map[int]*satfunc.CurveSet[T] { return o.imbSets }

// Store returns the element parameters; nil before InitParamsForElements
func (o *Manager[T]) Store() *Store[T] { return o.store }

// ParamsFor returns the parameters of an element
func (o *Manager[T]) ParamsFor(elem int) (*Params[T], error) {
	if o.store == nil {
		return nil, curve.Err(curve.InvalidState, "element parameters have not been initialised")
	}
	return o.store.Record(elem)
}

// EnableHysteresis tells whether hysteresis is active
func (o *Manager[T]) EnableHysteresis() bool {
	return o.store != nil && o.store.HysteresisEnabled()
}

// EnableEndPointScaling tells whether endpoint scaling is active
func (o *Manager[T]) EnableEndPointScaling() bool {
	return o.store != nil && o.store.EndpointScalingEnabled()
}

// engine returns the hysteresis engine or an InvalidState error
func (o *Manager[T]) engine() (*hyster.Engine[T], error) {
	if !o.EnableHysteresis() {
		return nil, curve.Err(curve.InvalidState, "hysteresis is disabled")
	}
	return o.store.Engine(), nil
}

// SetOilWaterHysteresisParams sets the oil-water markers of an element
func (o *Manager[T]) SetOilWaterHysteresisParams(pcSw, krValue T, elem int) error {
	return o.setMarkers(hyster.OilWater, pcSw, krValue, elem)
}

// OilWaterHysteresisParams returns the oil-water markers of an element
func (o *Manager[T]) OilWaterHysteresisParams(elem int) (pcSw, krValue T, err error) {
	return o.markers(hyster.OilWater, elem)
}

// SetGasOilHysteresisParams sets the gas-oil markers of an element
func (o *Manager[T]) SetGasOilHysteresisParams(pcSw, krValue T, elem int) error {
	return o.setMarkers(hyster.GasOil, pcSw, krValue, elem)
}

// GasOilHysteresisParams returns the gas-oil markers of an element
func (o *Manager[T]) GasOilHysteresisParams(elem int) (pcSw, krValue T, err error) {
	return o.markers(hyster.GasOil, elem)
}

func (o *Manager[T]) setMarkers(pair hyster.Pair, pcSw, krValue T, elem int) error {
	eng, err := o.engine()
	if err != nil {
		return err
	}
	return eng.SetMarkers(elem, pair, hyster.Marker[T]{PcSw: pcSw, KrValue: krValue})
}

func (o *Manager[T]) markers(pair hyster.Pair, elem int) (pcSw, krValue T, err error) {
	eng, err := o.engine()
	if err != nil {
		return
	}
	m, err := eng.Markers(elem, pair)
	return m.PcSw, m.KrValue, err
}

// UpdateHysteresis advances the markers of an element with the saturations of fs. It
// returns true if any marker changed
func (o *Manager[T]) UpdateHysteresis(elem int, fs FluidState[T]) (changed bool, err error) {
	eng, err := o.engine()
	if err != nil {
		return
	}
	var c bool
	if o.phases.Water {
		if c, err = eng.Advance(elem, hyster.OilWater, fs.Saturation(W)); err != nil {
			return
		}
		changed = c
	}
	if o.phases.Gas {
		if c, err = eng.Advance(elem, hyster.GasOil, 1-fs.Saturation(G)); err != nil {
			return
		}
		changed = changed || c
	}
	return
}

// CapillaryPressures computes the capillary pressures of an element; see CapillaryPressures
func (o *Manager[T]) CapillaryPressures(dst []T, elem int, fs FluidState[T]) error {
	p, err := o.ParamsFor(elem)
	if err != nil {
		return err
	}
	CapillaryPressures(dst, p, fs)
	return nil
}

// RelativePermeabilities computes the relative permeabilities of an element; see
// RelativePermeabilities
func (o *Manager[T]) RelativePermeabilities(dst []T, elem int, fs FluidState[T]) error {
	p, err := o.ParamsFor(elem)
	if err != nil {
		return err
	}
	RelativePermeabilities(dst, p, fs)
	return nil
}

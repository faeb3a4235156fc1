// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"sort"
	"strings"

	"github.com/aritorto/opm-common/mdl/curve"
)

// OilBranches gives the two-phase oil relative permeabilities as functions of oil saturation
type OilBranches[T curve.Float] interface {
	Krow(so T) T // oil in the oil-water system
	Krog(so T) T // oil in the gas-oil system with connate water
}

// OilState holds the saturations and two-phase values needed by three-phase oil models
type OilState[T curve.Float] struct {
	Sw, So, Sg T            // saturations
	Krw, Krg   T            // water and gas relative permeabilities
	Ends       Endpoints[T] // (scaled) endpoints
}

// OilModel combines the oil-water and gas-oil branches into the three-phase oil
// relative permeability
type OilModel[T curve.Float] interface {
	Name() string                             // name of the model
	Kro(st *OilState[T], br OilBranches[T]) T // computes kro
}

// NewOilModel returns a three-phase oil model by name: "default", "stone1" or "stone2".
// An empty name selects "default"
func NewOilModel[T curve.Float](name string) (OilModel[T], error) {
	if name == "" {
		name = "default"
	}
	allocator, ok := allocators[strings.ToLower(name)]
	if !ok {
		return nil, curve.Err(curve.ConfigMismatch, "three-phase oil model %q is not available; options are %s", name, OilModelNames())
	}
	if model, ok := allocator.f64().(OilModel[T]); ok {
		return model, nil
	}
	if model, ok := allocator.f32().(OilModel[T]); ok {
		return model, nil
	}
	var zero T
	return nil, curve.Err(curve.ConfigMismatch, "three-phase oil model %q is not available for %T", name, zero)
}

// OilModelNames returns the sorted names of all available oil models
func OilModelNames() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocator builds one oil model in single or double precision
type allocator struct {
	f32 func() OilModel[float32]
	f64 func() OilModel[float64]
}

// allocators holds all available oil models
var allocators = map[string]allocator{}

// register adds the model M (given in both precisions) to the factory
func register[M32 OilModel[float32], M64 OilModel[float64]](name string) {
	allocators[name] = allocator{
		f32: func() OilModel[float32] { var m M32; return m },
		f64: func() OilModel[float64] { var m M64; return m },
	}
}

// DefaultOil implements the saturation-weighted model
//  kro = (Sg krog(So) + (Sw - Swco) krow(So)) / (Sg + Sw - Swco)
//  with a regularisation when the sum of weights vanishes
type DefaultOil[T curve.Float] struct{}

// add model to factory
func init() {
	register[DefaultOil[float32], DefaultOil[float64]]("default")
}

// Name returns the name of the model
func (o DefaultOil[T]) Name() string { return "default" }

// Kro computes kro
func (o DefaultOil[T]) Kro(st *OilState[T], br OilBranches[T]) T {
	swco := st.Ends.Swl
	sw := max(st.Sw, swco)
	sg := max(st.Sg, 0)
	ww := sw - swco
	den := ww + sg
	krow := br.Krow(st.So)
	krog := br.Krog(st.So)
	tiny := curve.Tiny[T]()
	if den < tiny {
		kro2 := (krow + krog) / 2
		if den > tiny/2 {
			kro1 := (sg*krog + ww*krow) / den
			α := (tiny - den) / (tiny / 2)
			return curve.Clamp(kro2*α+kro1*(1-α), 0, 1)
		}
		return curve.Clamp(kro2, 0, 1)
	}
	return curve.Clamp((sg*krog+ww*krow)/den, 0, 1)
}

// Stone1 implements Stone's first model with normalised saturations
//  kro = So* krow(1-Sw) krog(1-Swco-Sg) / (krocw (1 - Sw*) (1 - Sg*))
type Stone1[T curve.Float] struct{}

// add model to factory
func init() {
	register[Stone1[float32], Stone1[float64]]("stone1")
}

// Name returns the name of the model
func (o Stone1[T]) Name() string { return "stone1" }

// Kro computes kro
func (o Stone1[T]) Kro(st *OilState[T], br OilBranches[T]) T {
	tiny := curve.Tiny[T]()
	e := st.Ends
	if e.Krocw < tiny {
		return 0
	}
	som := min(e.Sowcr, e.Sogcr)
	den := 1 - e.Swl - som
	if den < tiny {
		return 0
	}
	sos := (st.So - som) / den
	if sos <= 0 {
		return 0
	}
	sws := max((st.Sw-e.Swl)/den, 0)
	sgs := max(st.Sg/den, 0)
	krow := br.Krow(1 - st.Sw)
	krog := br.Krog(1 - e.Swl - st.Sg)
	return curve.Clamp(sos*krow*krog/(e.Krocw*max(1-sws, tiny)*max(1-sgs, tiny)), 0, 1)
}

// Stone2 implements Stone's second model
//  kro = krocw [ (krow/krocw + krw) (krog/krocw + krg) - (krw + krg) ]
type Stone2[T curve.Float] struct{}

// add model to factory
func init() {
	register[Stone2[float32], Stone2[float64]]("stone2")
}

// Name returns the name of the model
func (o Stone2[T]) Name() string { return "stone2" }

// Kro computes kro
func (o Stone2[T]) Kro(st *OilState[T], br OilBranches[T]) T {
	krocw := st.Ends.Krocw
	if krocw < curve.Tiny[T]() {
		return 0
	}
	krow := br.Krow(1 - st.Sw)
	krog := br.Krog(1 - st.Ends.Swl - st.Sg)
	kro := krocw * ((krow/krocw+st.Krw)*(krog/krocw+st.Krg) - (st.Krw + st.Krg))
	return curve.Clamp(kro, 0, 1)
}

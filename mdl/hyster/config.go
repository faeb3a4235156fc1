// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyster

import (
	"strings"

	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/cpmech/gosl/fun/dbf"
)

// non-wetting relative permeability models
const (
	Carlson  = 0 // imbibition curve shifted through the turning point
	Killough = 2 // imbibition curve rescaled with Land's trapping
)

// Config holds the hysteresis options
type Config struct {
	Enabled bool    // hysteresis is active
	Pc      bool    // capillary pressure hysteresis
	Kr      bool    // non-wetting relative permeability hysteresis
	Model   int     // Carlson or Killough
	Curv    float64 // curvature ε of Killough's capillary pressure scanning curves
}

// GetPrms gets (an example) of parameters
func GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "curv", V: 0.1},
			&dbf.P{N: "model", V: Killough},
			&dbf.P{N: "pc", V: 1},
			&dbf.P{N: "kr", V: 1},
		}
	}
	return dbf.Params{
		&dbf.P{N: "curv", V: 0.1},
		&dbf.P{N: "model", V: Carlson},
		&dbf.P{N: "pc", V: 1},
		&dbf.P{N: "kr", V: 1},
	}
}

// Init enables hysteresis and initialises the options. Missing parameters take the
// values of GetPrms(false)
func (o *Config) Init(prms dbf.Params) (err error) {
	o.Enabled, o.Pc, o.Kr = true, true, true
	o.Model, o.Curv = Carlson, 0.1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "curv":
			o.Curv = p.V
		case "model":
			m := int(p.V)
			if float64(m) != p.V {
				return curve.Err(curve.ConfigMismatch, "hysteresis: model must be an integer; model = %g", p.V)
			}
			o.Model = m
		case "pc":
			o.Pc = p.V > 0
		case "kr":
			o.Kr = p.V > 0
		default:
			return curve.Err(curve.ConfigMismatch, "hysteresis: parameter %q is not available", p.N)
		}
	}
	return o.Check()
}

// Check checks the options of an enabled configuration
func (o Config) Check() error {
	if !o.Enabled {
		return nil
	}
	if o.Model != Carlson && o.Model != Killough {
		return curve.Err(curve.ConfigMismatch, "hysteresis: model %d is not available; options are %d (Carlson) and %d (Killough)", o.Model, Carlson, Killough)
	}
	if !o.Pc && !o.Kr {
		return curve.Err(curve.ConfigMismatch, "hysteresis: at least one of pc or kr must be enabled")
	}
	if o.Pc && !(o.Curv > 0) {
		return curve.Err(curve.ConfigMismatch, "hysteresis: curvature parameter must be positive; curv = %g", o.Curv)
	}
	return nil
}

// ModelName returns the name of the non-wetting relative permeability model
func (o Config) ModelName() string {
	if o.Model == Killough {
		return "killough"
	}
	return "carlson"
}

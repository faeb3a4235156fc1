// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from (.sat) JSON or YAML files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aritorto/opm-common/mdl/hyster"
	"github.com/aritorto/opm-common/mdl/matlaw"
	"github.com/aritorto/opm-common/mdl/satfunc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// PlotData holds information to plot the saturation functions
type PlotData struct {
	DirOut string `json:"dirout" yaml:"dirout"` // directory for output; e.g. /tmp/opm
	Np     int    `json:"np" yaml:"np"`         // number of points; 0 => 101
	Skip   []int  `json:"skip" yaml:"skip"`     // skip regions
}

// HystData holds the hysteresis options
type HystData struct {
	Inact bool       `json:"inact" yaml:"inact"` // given but switched off
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // parameters; see hyster.GetPrms
}

// OverrideData holds endpoint overrides of one element. Missing values are not overridden
type OverrideData struct {
	Elem  int      `json:"elem" yaml:"elem"`   // element id
	Swl   *float64 `json:"swl" yaml:"swl"`     // connate water
	Swcr  *float64 `json:"swcr" yaml:"swcr"`   // critical water
	Sowcr *float64 `json:"sowcr" yaml:"sowcr"` // critical oil in water
	Sogcr *float64 `json:"sogcr" yaml:"sogcr"` // critical oil in gas
	Sgl   *float64 `json:"sgl" yaml:"sgl"`     // connate gas
	Sgcr  *float64 `json:"sgcr" yaml:"sgcr"`   // critical gas
}

// SatfnData holds all saturation-function input data
type SatfnData struct {

	// input
	Desc       string                  `json:"desc" yaml:"desc"`             // description of the data set
	Phases     satfunc.Phases          `json:"phases" yaml:"phases"`         // active phases
	OilModel   string                  `json:"oilmodel" yaml:"oilmodel"`     // "default", "stone1" or "stone2"
	Nelems     int                     `json:"nelems" yaml:"nelems"`         // number of elements; 0 => len(satnum) or 1
	Regions    map[int]*satfunc.Region `json:"regions" yaml:"regions"`       // drainage tables (SATNUM regions)
	ImbRegions map[int]*satfunc.Region `json:"imbregions" yaml:"imbregions"` // imbibition tables (IMBNUM regions)
	SatNum     []int                   `json:"satnum" yaml:"satnum"`         // drainage region of each element
	ImbNum     []int                   `json:"imbnum" yaml:"imbnum"`         // imbibition region of each element
	Hysteresis *HystData               `json:"hysteresis" yaml:"hysteresis"` // hysteresis; nil => off
	Eps        bool                    `json:"eps" yaml:"eps"`               // endpoint scaling
	Overrides  []*OverrideData         `json:"overrides" yaml:"overrides"`   // endpoint overrides
	Plot       *PlotData               `json:"plot" yaml:"plot"`             // plotting options

	// derived
	Key string `json:"-" yaml:"-"` // file name without extension
}

// ReadSatfn reads saturation-function data from a .json, .yaml or .yml file
func ReadSatfn(dir, fn string) (dat *SatfnData, err error) {

	// decoder
	var decode func(b []byte, v interface{}) error
	ext := strings.ToLower(filepath.Ext(fn))
	switch ext {
	case ".json", ".sat":
		decode = json.Unmarshal
	case ".yaml", ".yml":
		decode = yaml.Unmarshal
	default:
		return nil, chk.Err("cannot read %q: extension %q is not available; options are .json, .sat, .yaml and .yml", fn, ext)
	}

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read file:\n%v", err)
	}

	// decode
	dat = new(SatfnData)
	err = decode(b, dat)
	if err != nil {
		return nil, chk.Err("cannot decode %q:\n%v", fn, err)
	}
	dat.Key = strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
	logrus.Debugf("read %q: %d regions, %d imbibition regions", fn, len(dat.Regions), len(dat.ImbRegions))
	return
}

// NumElems returns the number of elements
func (o *SatfnData) NumElems() int {
	if o.Nelems > 0 {
		return o.Nelems
	}
	if len(o.SatNum) > 0 {
		return len(o.SatNum)
	}
	return 1
}

// ToConfig converts the input data to the configuration of the material-law manager
func (o *SatfnData) ToConfig() (cfg *matlaw.Config, err error) {
	if len(o.Regions) == 0 {
		return nil, chk.Err("at least one region must be given")
	}
	cfg = &matlaw.Config{
		Phases:     o.Phases,
		OilModel:   o.OilModel,
		Regions:    o.Regions,
		ImbRegions: o.ImbRegions,
		SatNum:     o.SatNum,
		ImbNum:     o.ImbNum,
		Eps:        o.Eps,
	}
	cfg.Hysteresis, err = o.HystConfig()
	if err != nil {
		return nil, err
	}
	if len(o.Overrides) > 0 {
		cfg.Overrides = make(map[int]satfunc.Overrides)
		for _, d := range o.Overrides {
			if _, ok := cfg.Overrides[d.Elem]; ok {
				return nil, chk.Err("overrides of element %d are given more than once", d.Elem)
			}
			cfg.Overrides[d.Elem] = d.Values()
		}
	}
	return
}

// Values returns the overrides with NaN marking missing entries
func (o *OverrideData) Values() (ovr satfunc.Overrides) {
	ovr = satfunc.NoOverrides()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&ovr.Swl, o.Swl)
	set(&ovr.Swcr, o.Swcr)
	set(&ovr.Sowcr, o.Sowcr)
	set(&ovr.Sogcr, o.Sogcr)
	set(&ovr.Sgl, o.Sgl)
	set(&ovr.Sgcr, o.Sgcr)
	return
}

// RegionIds returns the sorted ids of the drainage regions, without the skipped ones
func (o *SatfnData) RegionIds() (ids []int) {
	var skip []int
	if o.Plot != nil {
		skip = o.Plot.Skip
	}
	for id := range o.Regions {
		if utl.IntIndexSmall(skip, id) < 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return
}

// HystConfig returns the hysteresis options; disabled options when none are given
func (o *SatfnData) HystConfig() (cfg hyster.Config, err error) {
	if o.Hysteresis == nil || o.Hysteresis.Inact {
		return
	}
	err = cfg.Init(o.Hysteresis.Prms)
	return
}

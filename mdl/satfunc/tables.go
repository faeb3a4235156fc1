// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"
)

// Column holds one column of a saturation table. NaN marks a defaulted entry, which is
// filled by linear interpolation during normalisation. When decoding JSON or YAML,
// null entries become NaN
type Column []float64

// UnmarshalJSON decodes a column with null entries
func (o *Column) UnmarshalJSON(b []byte) error {
	var vals []*float64
	if err := json.Unmarshal(b, &vals); err != nil {
		return err
	}
	*o = fromPointers(vals)
	return nil
}

// UnmarshalYAML decodes a column with null entries
func (o *Column) UnmarshalYAML(node *yaml.Node) error {
	var vals []*float64
	if err := node.Decode(&vals); err != nil {
		return err
	}
	*o = fromPointers(vals)
	return nil
}

func fromPointers(vals []*float64) Column {
	res := make(Column, len(vals))
	for i, v := range vals {
		if v == nil {
			res[i] = math.NaN()
			continue
		}
		res[i] = *v
	}
	return res
}

// Swof holds a water-oil table with relative permeabilities and capillary pressure (family 1)
type Swof struct {
	Sw   Column `json:"sw" yaml:"sw"`
	Krw  Column `json:"krw" yaml:"krw"`
	Krow Column `json:"krow" yaml:"krow"`
	Pcow Column `json:"pcow" yaml:"pcow"`
}

// Sgof holds a gas-oil table as function of gas saturation (family 1)
type Sgof struct {
	Sg   Column `json:"sg" yaml:"sg"`
	Krg  Column `json:"krg" yaml:"krg"`
	Krog Column `json:"krog" yaml:"krog"`
	Pcog Column `json:"pcog" yaml:"pcog"`
}

// Slgof holds a gas-oil table as function of liquid saturation (family 1)
type Slgof struct {
	Sl   Column `json:"sl" yaml:"sl"`
	Krg  Column `json:"krg" yaml:"krg"`
	Krog Column `json:"krog" yaml:"krog"`
	Pcog Column `json:"pcog" yaml:"pcog"`
}

// Swfn holds water relative permeability and oil-water capillary pressure (family 2)
type Swfn struct {
	Sw   Column `json:"sw" yaml:"sw"`
	Krw  Column `json:"krw" yaml:"krw"`
	Pcow Column `json:"pcow" yaml:"pcow"`
}

// Sgfn holds gas relative permeability and gas-oil capillary pressure (family 2)
type Sgfn struct {
	Sg   Column `json:"sg" yaml:"sg"`
	Krg  Column `json:"krg" yaml:"krg"`
	Pcog Column `json:"pcog" yaml:"pcog"`
}

// Sof3 holds three-phase oil relative permeabilities as function of oil saturation (family 2)
type Sof3 struct {
	So   Column `json:"so" yaml:"so"`
	Krow Column `json:"krow" yaml:"krow"`
	Krog Column `json:"krog" yaml:"krog"`
}

// Sof2 holds two-phase oil relative permeability as function of oil saturation (family 2)
type Sof2 struct {
	So  Column `json:"so" yaml:"so"`
	Kro Column `json:"kro" yaml:"kro"`
}

// SwofLet holds LET coefficients for the water-oil system
type SwofLet struct {

	// water
	Swl  float64 `json:"swl" yaml:"swl"`   // connate water saturation
	Swcr float64 `json:"swcr" yaml:"swcr"` // critical water saturation
	Lw   float64 `json:"lw" yaml:"lw"`     // L coefficient of krw
	Ew   float64 `json:"ew" yaml:"ew"`     // E coefficient of krw
	Tw   float64 `json:"tw" yaml:"tw"`     // T coefficient of krw
	Krwt float64 `json:"krwt" yaml:"krwt"` // krw at maximum water saturation

	// oil
	Sowl  float64 `json:"sowl" yaml:"sowl"`   // lowest oil saturation; limits capillary pressure
	Sowcr float64 `json:"sowcr" yaml:"sowcr"` // critical oil saturation
	Lo    float64 `json:"lo" yaml:"lo"`       // L coefficient of krow
	Eo    float64 `json:"eo" yaml:"eo"`       // E coefficient of krow
	To    float64 `json:"to" yaml:"to"`       // T coefficient of krow
	Krot  float64 `json:"krot" yaml:"krot"`   // krow at connate water

	// capillary pressure
	Lpc  float64 `json:"lpc" yaml:"lpc"`   // L coefficient of pcow
	Epc  float64 `json:"epc" yaml:"epc"`   // E coefficient of pcow
	Tpc  float64 `json:"tpc" yaml:"tpc"`   // T coefficient of pcow
	Pcir float64 `json:"pcir" yaml:"pcir"` // pcow at irreducible (connate) water
	Pct  float64 `json:"pct" yaml:"pct"`   // threshold pcow
}

// SgofLet holds LET coefficients for the gas-oil system
type SgofLet struct {

	// gas
	Sgl  float64 `json:"sgl" yaml:"sgl"`   // connate gas saturation
	Sgcr float64 `json:"sgcr" yaml:"sgcr"` // critical gas saturation
	Lg   float64 `json:"lg" yaml:"lg"`     // L coefficient of krg
	Eg   float64 `json:"eg" yaml:"eg"`     // E coefficient of krg
	Tg   float64 `json:"tg" yaml:"tg"`     // T coefficient of krg
	Krgt float64 `json:"krgt" yaml:"krgt"` // krg at maximum gas saturation

	// oil
	Sogl  float64 `json:"sogl" yaml:"sogl"`   // lowest oil saturation; limits capillary pressure
	Sogcr float64 `json:"sogcr" yaml:"sogcr"` // critical oil saturation
	Lo    float64 `json:"lo" yaml:"lo"`       // L coefficient of krog
	Eo    float64 `json:"eo" yaml:"eo"`       // E coefficient of krog
	To    float64 `json:"to" yaml:"to"`       // T coefficient of krog
	Krot  float64 `json:"krot" yaml:"krot"`   // krog at connate gas

	// capillary pressure
	Lpc  float64 `json:"lpc" yaml:"lpc"`   // L coefficient of pcog
	Epc  float64 `json:"epc" yaml:"epc"`   // E coefficient of pcog
	Tpc  float64 `json:"tpc" yaml:"tpc"`   // T coefficient of pcog
	Pcir float64 `json:"pcir" yaml:"pcir"` // pcog at maximum gas saturation
	Pct  float64 `json:"pct" yaml:"pct"`   // threshold pcog
}

// NewSwofLet returns SWOFLET data from the 17 values of one record
func NewSwofLet(v []float64) (*SwofLet, error) {
	if len(v) != 17 {
		return nil, errLetRecord("swoflet", len(v))
	}
	return &SwofLet{v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9], v[10], v[11], v[12], v[13], v[14], v[15], v[16]}, nil
}

// NewSgofLet returns SGOFLET data from the 17 values of one record
func NewSgofLet(v []float64) (*SgofLet, error) {
	if len(v) != 17 {
		return nil, errLetRecord("sgoflet", len(v))
	}
	return &SgofLet{v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9], v[10], v[11], v[12], v[13], v[14], v[15], v[16]}, nil
}

// Region holds the saturation-function tables of one region. Exactly one family must
// be given: {Swof, Sgof|Slgof}, {Swfn, Sgfn, Sof3|Sof2} or {SwofLet, SgofLet}
type Region struct {

	// family 1
	Swof  *Swof  `json:"swof,omitempty" yaml:"swof,omitempty"`
	Sgof  *Sgof  `json:"sgof,omitempty" yaml:"sgof,omitempty"`
	Slgof *Slgof `json:"slgof,omitempty" yaml:"slgof,omitempty"`

	// family 2
	Swfn *Swfn `json:"swfn,omitempty" yaml:"swfn,omitempty"`
	Sgfn *Sgfn `json:"sgfn,omitempty" yaml:"sgfn,omitempty"`
	Sof3 *Sof3 `json:"sof3,omitempty" yaml:"sof3,omitempty"`
	Sof2 *Sof2 `json:"sof2,omitempty" yaml:"sof2,omitempty"`

	// LET correlations
	SwofLet *SwofLet `json:"swoflet,omitempty" yaml:"swoflet,omitempty"`
	SgofLet *SgofLet `json:"sgoflet,omitempty" yaml:"sgoflet,omitempty"`
}

// Family identifies the group of keywords used by a region
type Family int

const (
	FamilyNone Family = iota // no table
	FamilyOne                // combined kr+pc tables
	FamilyTwo                // separate single-phase tables plus oil table
	FamilyLet                // LET correlations
)

// String returns the name of the family
func (f Family) String() string {
	switch f {
	case FamilyOne:
		return "family 1"
	case FamilyTwo:
		return "family 2"
	case FamilyLet:
		return "LET"
	}
	return "none"
}

// Families returns all families present in the region
func (o *Region) Families() (fams []Family) {
	if o.Swof != nil || o.Sgof != nil || o.Slgof != nil {
		fams = append(fams, FamilyOne)
	}
	if o.Swfn != nil || o.Sgfn != nil || o.Sof3 != nil || o.Sof2 != nil {
		fams = append(fams, FamilyTwo)
	}
	if o.SwofLet != nil || o.SgofLet != nil {
		fams = append(fams, FamilyLet)
	}
	return
}

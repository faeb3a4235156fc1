// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"github.com/aritorto/opm-common/mdl/hyster"
	"github.com/aritorto/opm-common/mdl/satfunc"
)

// Config holds the resolved input needed to build the material-law parameters
type Config struct {
	Phases     satfunc.Phases            // active phases
	OilModel   string                    // three-phase oil model; see satfunc.NewOilModel
	Regions    map[int]*satfunc.Region   // drainage tables by region id (SATNUM)
	ImbRegions map[int]*satfunc.Region   // imbibition tables by region id (IMBNUM); optional
	SatNum     []int                     // drainage region of each element; nil => region 1
	ImbNum     []int                     // imbibition region of each element; nil => drainage region
	Hysteresis hyster.Config             // hysteresis options
	Eps        bool                      // endpoint scaling
	Overrides  map[int]satfunc.Overrides // endpoint overrides by element id
}

// regionIds returns the region of each element, using def when ids is nil
func regionIds(ids []int, n int, def func(i int) int) []int {
	if ids != nil {
		return ids
	}
	res := make([]int, n)
	for i := range res {
		res[i] = def(i)
	}
	return res
}

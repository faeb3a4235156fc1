// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/aritorto/opm-common/inp"
	"github.com/aritorto/opm-common/mdl/matlaw"
	"github.com/aritorto/opm-common/mdl/satfunc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/sirupsen/logrus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".yaml", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)
	npts := io.ArgToInt(3, 11)

	// message
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		io.PfWhite("\nSatfn -- saturation functions of the material-law manager\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot curves", "doplot", doplot,
			"number of points in tables", "npts", npts,
		))
	}

	// input data
	dir, fn := filepath.Split(fnamepath)
	dat, err := inp.ReadSatfn(dir, fn)
	if err != nil {
		chk.Panic("cannot read input file:\n%v", err)
	}
	cfg, err := dat.ToConfig()
	if err != nil {
		chk.Panic("%v", err)
	}

	// manager
	m := new(matlaw.Manager[float64])
	if err = m.InitFromState(cfg); err != nil {
		chk.Panic("cannot initialise saturation functions:\n%v", err)
	}
	nelems := dat.NumElems()
	if err = m.InitParamsForElements(cfg, nelems); err != nil {
		chk.Panic("cannot initialise element parameters:\n%v", err)
	}
	if verbose {
		io.Pf("\n%s: %d elements, hysteresis = %v, endpoint scaling = %v\n", dat.Desc, nelems, m.EnableHysteresis(), m.EnableEndPointScaling())
	}

	// tables
	sets := m.Sets()
	for _, id := range dat.RegionIds() {
		set := sets[id]
		io.Pf("\n%v\n", set)
		printTable(set, npts)
	}

	// plots
	if !doplot {
		return
	}
	dirout, np := "/tmp/opm", 101
	if dat.Plot != nil {
		if dat.Plot.DirOut != "" {
			dirout = dat.Plot.DirOut
		}
		if dat.Plot.Np > 1 {
			np = dat.Plot.Np
		}
	}
	for _, id := range dat.RegionIds() {
		files, err := satfunc.Plot(sets[id], dirout, io.Sf("%s-region%d", dat.Key, id), np)
		if err != nil {
			chk.Panic("%v", err)
		}
		for _, f := range files {
			io.Pfgreen("file <%s> written\n", f)
		}
	}
}

// printTable prints all curves of a set at npts saturations within [0,1]
func printTable(set *satfunc.CurveSet[float64], npts int) {
	curves := set.Curves()
	l := io.Sf("%8s", "s")
	for _, c := range curves {
		l += io.Sf("%14s", c.Name())
	}
	io.Pf("%s\n", l)
	for _, s := range utl.LinSpace(0, 1, npts) {
		l = io.Sf("%8.4f", s)
		for _, c := range curves {
			l += io.Sf("%14.6e", c.Value(s))
		}
		io.Pf("%s\n", l)
	}
}

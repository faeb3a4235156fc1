// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"os"
	"path/filepath"

	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Sample returns npts points of c over [0,1]
func Sample[T curve.Float](c *curve.Curve[T], npts int) plotter.XYs {
	if npts < 2 {
		npts = 2
	}
	S := utl.LinSpace(0, 1, npts)
	pts := make(plotter.XYs, npts)
	for i, s := range S {
		pts[i].X = s
		pts[i].Y = float64(c.Value(T(s)))
	}
	return pts
}

// Plot saves two figures with the relative permeabilities and the capillary pressures
// of a set; files are <dirout>/<fnkey>-kr.png and <dirout>/<fnkey>-pc.png
func Plot[T curve.Float](set *CurveSet[T], dirout, fnkey string, npts int) (files []string, err error) {
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return nil, chk.Err("cannot create directory %q: %v", dirout, err)
	}
	kr := []*curve.Curve[T]{set.Krw, set.Krow, set.Krog, set.Krg}
	pc := []*curve.Curve[T]{set.Pcow, set.Pcog}
	title := io.Sf("region %d (%v)", set.Region, set.Family)
	for _, fig := range []struct {
		key    string
		ylabel string
		curves []*curve.Curve[T]
	}{
		{"kr", "relative permeability", kr},
		{"pc", "capillary pressure", pc},
	} {
		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = "saturation"
		p.Y.Label.Text = fig.ylabel
		for i, c := range fig.curves {
			if c == nil {
				continue
			}
			line, e := plotter.NewLine(Sample(c, npts))
			if e != nil {
				return nil, chk.Err("cannot plot %s: %v", c.Name(), e)
			}
			line.Width = vg.Points(1)
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(c.Name(), line)
		}
		fn := filepath.Join(dirout, io.Sf("%s-%s.png", fnkey, fig.key))
		if e := p.Save(6*vg.Inch, 4*vg.Inch, fn); e != nil {
			return nil, chk.Err("cannot save figure %q: %v", fn, e)
		}
		files = append(files, fn)
	}
	return
}

/*
DESCRIPTION
  plot.go provides plotting of a calibration polynomial over the points it
  was fitted to.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2021-2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

package calibration

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot dimensions and sampling.
const (
	plotSize    = 15 * vg.Centimeter
	plotSamples = 200
)

// PlotFit plots the points as a scatter with the polynomial superimposed and
// saves the result to path. The image format is chosen by the file
// extension, e.g. ".png" or ".svg".
func PlotFit(p *Polynomial, points []Point, path string) error {
	if len(points) == 0 {
		return errors.New("no points to plot")
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		xMin = math.Min(xMin, pt.X)
		xMax = math.Max(xMax, pt.X)
	}
	if xMin == xMax {
		xMin, xMax = xMin-1, xMax+1
	}

	return plotToFile(
		"Calibration",
		p.XVar(),
		p.YVar(),
		path,
		func(pl *plot.Plot) error {
			err := plotutil.AddScatters(pl, "points", plotterXY(points))
			if err != nil {
				return fmt.Errorf("could not add points: %w", err)
			}

			fn := plotter.NewFunction(p.Eval)
			fn.XMin, fn.XMax = xMin, xMax
			fn.Samples = plotSamples
			fn.Color = plotutil.Color(1)
			pl.Add(fn)
			pl.Legend.Add(p.String(), fn)
			return nil
		},
	)
}

// plotToFile creates a plot with a specified name and x&y titles using the
// provided draw function, and then saves it to path.
func plotToFile(name, xTitle, yTitle, path string, draw func(*plot.Plot) error) error {
	p := plot.New()

	p.Title.Text = name
	p.X.Label.Text = xTitle
	p.Y.Label.Text = yTitle

	err := draw(p)
	if err != nil {
		return fmt.Errorf("could not draw plot contents: %w", err)
	}

	if err := p.Save(plotSize, plotSize, path); err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}
	return nil
}

// plotterXY provides a plotter.XYs type value based on the given points.
func plotterXY(points []Point) plotter.XYs {
	xy := make(plotter.XYs, len(points))
	for i, pt := range points {
		xy[i].X = pt.X
		xy[i].Y = pt.Y
	}
	return xy
}

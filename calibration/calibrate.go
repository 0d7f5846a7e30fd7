/*
DESCRIPTION
  calibrate.go provides the calibration polynomial type (Polynomial), which maps
  a detector channel to an energy. A Polynomial is produced by fitting to a
  set of reference points and provides evaluation, goodness of fit, and
  inversion through root-finding.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>
  Alex Arends <alex@ausocean.org>

LICENSE
  Copyright (C) 2020-2026 the Australian Ocean Lab (AusOcean)

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

// Package calibration provides a calibration polynomial type (Polynomial)
// fitted by least squares to (channel, energy) reference points. This type
// provides methods for evaluating the polynomial, computing its chi-squared
// against a set of points, rendering it as an equation and solving for every
// x that maps to a given y.
package calibration

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Point is a single (x, y) calibration point, e.g. (channel, energy).
type Point struct {
	X, Y float64
}

// Polynomial is an immutable fitted polynomial. The coefficient at index k
// multiplies the k-th power of the independent variable.
type Polynomial struct {
	coeffs     []float64
	xvar, yvar string
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficients returns a copy of the coefficients in ascending power order.
func (p *Polynomial) Coefficients() []float64 {
	c := make([]float64, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// XVar returns the display name of the independent variable.
func (p *Polynomial) XVar() string { return p.xvar }

// YVar returns the display name of the dependent variable.
func (p *Polynomial) YVar() string { return p.yvar }

// Eval evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Eval(x float64) float64 {
	var y float64
	for k := len(p.coeffs) - 1; k >= 0; k-- {
		y = y*x + p.coeffs[k]
	}
	return y
}

// Chi2 returns the unreduced sum of squared residuals of the given points
// about the polynomial.
func (p *Polynomial) Chi2(points []Point) float64 {
	var sum float64
	for _, pt := range points {
		r := pt.Y - p.Eval(pt.X)
		sum += r * r
	}
	return sum
}

// Stats holds goodness of fit statistics for a polynomial against a set of
// points.
type Stats struct {
	Chi2             float64
	DegreesOfFreedom int     // Number of points less the number of coefficients.
	ReducedChi2      float64 // NaN when DegreesOfFreedom <= 0.
	RSquared         float64
}

// Stats returns goodness of fit statistics for the polynomial against points.
func (p *Polynomial) Stats(points []Point) Stats {
	s := Stats{
		Chi2:             p.Chi2(points),
		DegreesOfFreedom: len(points) - len(p.coeffs),
		ReducedChi2:      math.NaN(),
		RSquared:         math.NaN(),
	}
	if s.DegreesOfFreedom > 0 {
		s.ReducedChi2 = s.Chi2 / float64(s.DegreesOfFreedom)
	}
	if len(points) == 0 {
		return s
	}

	est := make([]float64, len(points))
	val := make([]float64, len(points))
	for i, pt := range points {
		est[i] = p.Eval(pt.X)
		val[i] = pt.Y
	}
	s.RSquared = stat.RSquaredFrom(est, val, nil)
	return s
}

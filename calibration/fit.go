/*
DESCRIPTION
  fit.go provides functions for fitting a polynomial to a set of calibration
  points.

AUTHORS
  Alex Arends <alex@ausocean.org>
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

	"gonum.org/v1/gonum/mat"
)

// maxCond is the largest condition number of the scaled design matrix that we
// accept before treating a fit as singular.
const maxCond = 1e12

// Fit fits a polynomial of the given degree to points using least squares
// and returns it labelled with xvar and yvar. At least degree+1 points with
// degree+1 distinct x values are required.
func Fit(points []Point, degree int, xvar, yvar string) (*Polynomial, error) {
	if degree < 0 || len(points) < degree+1 {
		return nil, &InsufficientDataError{Points: len(points), Degree: degree}
	}

	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, fmt.Errorf("point %d (%v, %v): %w", i, p.X, p.Y, ErrNonFinite)
		}
		x[i], y[i] = p.X, p.Y
	}

	if n := distinct(x); n < degree+1 {
		return nil, &SingularFitError{Distinct: n, Degree: degree}
	}

	c, err := fit(x, y, degree)
	if err != nil {
		return nil, err
	}
	return &Polynomial{coeffs: c, xvar: xvar, yvar: yvar}, nil
}

// fit fits a polynomial of degree to the data provided in x and y and returns
// the coefficients in ascending power order. x is scaled into [-1, 1] before
// factorisation to keep the Vandermonde matrix well conditioned, and the
// coefficients are scaled back afterwards.
func fit(x, y []float64, degree int) ([]float64, error) {
	s := scale(x)
	xs := make([]float64, len(x))
	for i, v := range x {
		xs[i] = v / s
	}

	a := vandermonde(xs, degree)
	b := mat.NewVecDense(len(y), y)
	c := mat.NewVecDense(degree+1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)
	if cond := qr.Cond(); math.IsNaN(cond) || cond > maxCond {
		return nil, &SingularFitError{Distinct: distinct(x), Degree: degree, Err: mat.Condition(cond)}
	}

	err := qr.SolveVecTo(c, false, b)
	if err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, &SingularFitError{Distinct: distinct(x), Degree: degree, Err: err}
		}
		return nil, fmt.Errorf("could not solve QR: %w", err)
	}

	coeffs := make([]float64, degree+1)
	for j, p := 0, 1.0; j <= degree; j, p = j+1, p*s {
		coeffs[j] = c.AtVec(j) / p
	}
	return coeffs, nil
}

// vandermonde calculates the vandermonde matrix for set a and the given degree.
func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

// scale returns the largest magnitude in a, or 1 if every value is zero.
func scale(a []float64) float64 {
	var s float64
	for _, v := range a {
		s = math.Max(s, math.Abs(v))
	}
	if s == 0 {
		return 1
	}
	return s
}

// distinct returns the number of distinct values in a.
func distinct(a []float64) int {
	seen := make(map[float64]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

/*
DESCRIPTION
  roots.go provides inversion of calibration polynomials, i.e. finding every
  x for which the polynomial takes a given value, using the eigenvalues of the
  companion matrix.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

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
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// RootTolerance is the largest imaginary part a root may have and still be
// reported as real.
const RootTolerance = 1e-6

// Reverse returns every complex root of p(x) - y = 0. See Reverse.
func (p *Polynomial) Reverse(y float64) ([]complex128, error) {
	return Reverse(p, y)
}

// Reverse returns every complex root of p(x) - y = 0, one per degree of p.
// Exactly zero leading coefficients are discarded first, so roots at infinity
// are not reported. A constant other than y has no roots, and a constant
// equal to y within round-off gives ErrDegenerateInversion.
func Reverse(p *Polynomial, y float64) ([]complex128, error) {
	c := p.Coefficients()
	c[0] -= y

	n := len(c) - 1
	for n >= 0 && c[n] == 0 {
		n--
	}
	switch {
	case n == -1, n == 0 && math.Abs(c[0]) <= zeroTol*math.Max(1, math.Abs(y)):
		return nil, ErrDegenerateInversion
	case n == 0:
		return nil, nil
	}
	c = c[:n+1]

	roots, err := companionRoots(c)
	if err != nil {
		return nil, err
	}
	for i, r := range roots {
		roots[i] = polish(c, r)
	}
	return roots, nil
}

// companionRoots returns the eigenvalues of the companion matrix of the
// polynomial with ascending coefficients c, which must have a non-zero last
// element.
func companionRoots(c []float64) ([]complex128, error) {
	n := len(c) - 1
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if i > 0 {
			m.Set(i, i-1, 1)
		}
		m.Set(i, n-1, -c[i]/c[n])
	}

	var eig mat.Eigen
	if !eig.Factorize(m, mat.EigenNone) {
		return nil, errors.New("could not find eigenvalues of companion matrix")
	}
	return eig.Values(nil), nil
}

// polishSteps is the maximum number of Newton steps used to refine a root.
const polishSteps = 3

// polish refines the root estimate z of the polynomial with ascending
// coefficients c with Newton's method, keeping a step only if it reduces the
// residual.
func polish(c []float64, z complex128) complex128 {
	f, df := hornerDeriv(c, z)
	for i := 0; i < polishSteps && f != 0 && df != 0; i++ {
		next := z - f/df
		nf, ndf := hornerDeriv(c, next)
		if cmplx.Abs(nf) >= cmplx.Abs(f) {
			break
		}
		z, f, df = next, nf, ndf
	}
	return z
}

// hornerDeriv evaluates the polynomial with ascending coefficients c and its
// derivative at z.
func hornerDeriv(c []float64, z complex128) (f, df complex128) {
	for k := len(c) - 1; k >= 0; k-- {
		df = df*z + f
		f = f*z + complex(c[k], 0)
	}
	return f, df
}

// RealRoots returns, in ascending order, the real parts of the roots whose
// imaginary part has magnitude below tol. ErrNoRealRoots is returned if there
// are none.
func RealRoots(roots []complex128, tol float64) ([]float64, error) {
	var re []float64
	for _, r := range roots {
		if math.Abs(imag(r)) < tol {
			re = append(re, real(r))
		}
	}
	if len(re) == 0 {
		return nil, ErrNoRealRoots
	}
	sort.Float64s(re)
	return re, nil
}

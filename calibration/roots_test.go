/*
DESCRIPTION
  roots_test.go provides testing for functionality in roots.go.

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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReverseRealRoots(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		y      float64
		want   []float64
	}{
		{name: "line", coeffs: []float64{1, 2}, y: 7, want: []float64{3}},
		{name: "quadratic", coeffs: []float64{2, -3, 1}, y: 0, want: []float64{1, 2}},
		{name: "shifted quadratic", coeffs: []float64{0, 0, 1}, y: 4, want: []float64{-2, 2}},
		{name: "cubic", coeffs: []float64{-6, 11, -6, 1}, y: 0, want: []float64{1, 2, 3}},
		{name: "leading zero", coeffs: []float64{-4, 2, 0}, y: 0, want: []float64{2}},
	}

	for _, test := range tests {
		p := &Polynomial{coeffs: test.coeffs}
		roots, err := p.Reverse(test.y)
		if err != nil {
			t.Errorf("could not reverse %s: %v", test.name, err)
			continue
		}
		got, err := RealRoots(roots, RootTolerance)
		if err != nil {
			t.Errorf("could not get real roots for %s: %v", test.name, err)
			continue
		}
		if d := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("did not get expected roots for %s (-want +got):\n%s", test.name, d)
		}
	}
}

// TestReverseRootCount checks that a polynomial of degree n gives n roots.
func TestReverseRootCount(t *testing.T) {
	for n := 1; n <= 6; n++ {
		c := make([]float64, n+1)
		for i := range c {
			c[i] = float64(i + 1)
		}
		roots, err := Reverse(&Polynomial{coeffs: c}, 0.5)
		if err != nil {
			t.Errorf("could not reverse degree %d: %v", n, err)
			continue
		}
		if len(roots) != n {
			t.Errorf("did not get expected number of roots. Got: %d, Want: %d", len(roots), n)
		}
	}
}

// TestReverseEval checks that inverting a fitted model at one of its values
// recovers the original x.
func TestReverseEval(t *testing.T) {
	models := [][]Point{
		sourcePoints,
		polyPoints([]float64{3, 1.5, -0.02, 0.001}, 0, 2, 4, 6, 8, 10),
		polyPoints([]float64{-1.2, 0.49, 2.5e-6}, 100, 800, 1500, 2600, 4000),
	}
	xs := []float64{-3, 0, 0.5, 4.2, 12, 1320, 3999}

	for i, pts := range models {
		for _, degree := range []int{1, 2} {
			p, err := Fit(pts, degree, "Chan", "Energy")
			if err != nil {
				t.Fatalf("could not fit model %d: %v", i, err)
			}
			for _, x0 := range xs {
				roots, err := p.Reverse(p.Eval(x0))
				if err != nil {
					t.Errorf("could not reverse model %d at %v: %v", i, x0, err)
					continue
				}
				if !hasRoot(roots, x0, 1e-6) {
					t.Errorf("did not find root %v for model %d degree %d in %v", x0, i, degree, roots)
				}
			}
		}
	}
}

func hasRoot(roots []complex128, x, tol float64) bool {
	for _, r := range roots {
		if math.Abs(imag(r)) < tol && almostEqual(real(r), x, tol) {
			return true
		}
	}
	return false
}

func TestReverseNoRealRoots(t *testing.T) {
	p := &Polynomial{coeffs: []float64{1, 0, 1}}
	roots, err := p.Reverse(0)
	if err != nil {
		t.Fatalf("could not reverse: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("did not get expected number of roots. Got: %d, Want: 2", len(roots))
	}
	for _, r := range roots {
		if !almostEqual(math.Abs(imag(r)), 1, tol) || math.Abs(real(r)) > tol {
			t.Errorf("did not get expected root ±i. Got: %v", r)
		}
	}

	_, err = RealRoots(roots, RootTolerance)
	if !errors.Is(err, ErrNoRealRoots) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, ErrNoRealRoots)
	}
}

func TestReverseConstant(t *testing.T) {
	p := &Polynomial{coeffs: []float64{5}}

	roots, err := p.Reverse(3)
	if err != nil || len(roots) != 0 {
		t.Errorf("did not get expected empty result for constant. Got: %v, %v", roots, err)
	}

	_, err = p.Reverse(5)
	if !errors.Is(err, ErrDegenerateInversion) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, ErrDegenerateInversion)
	}

	_, err = (&Polynomial{coeffs: []float64{2.9999999999999996}}).Reverse(3)
	if !errors.Is(err, ErrDegenerateInversion) {
		t.Errorf("did not get expected error for constant with round-off. Got: %v", err)
	}

	_, err = (&Polynomial{coeffs: []float64{2, 0, 0}}).Reverse(2)
	if !errors.Is(err, ErrDegenerateInversion) {
		t.Errorf("did not get expected error for zero padded constant. Got: %v", err)
	}
}

func TestRealRootsTolerance(t *testing.T) {
	roots := []complex128{complex(3, 0), complex(1, 5e-7), complex(2, 1e-3), complex(-1, -2e-7)}
	got, err := RealRoots(roots, RootTolerance)
	if err != nil {
		t.Fatalf("could not get real roots: %v", err)
	}
	want := []float64{-1, 1, 3}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("did not get expected roots (-want +got):\n%s", d)
	}
}

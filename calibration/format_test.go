/*
DESCRIPTION
  format_test.go provides testing for functionality in format.go.

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

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		coeffs []float64
		want   string
	}{
		{coeffs: []float64{0, 2, 0}, want: "yvar = 2*xvar"},
		{coeffs: []float64{1.5}, want: "yvar = 1.5"},
		{coeffs: []float64{0}, want: "yvar = 0"},
		{coeffs: []float64{0, 0, 0}, want: "yvar = 0"},
		{coeffs: []float64{-3, 0.5}, want: "yvar = 0.5*xvar - 3"},
		{coeffs: []float64{4, -1, 0, 2}, want: "yvar = 2*xvar^3 - 1*xvar + 4"},
		{coeffs: []float64{1, 1, -1}, want: "yvar = -1*xvar^2 + 1*xvar + 1"},
		{coeffs: []float64{1e-20, 2, 3e-21}, want: "yvar = 2*xvar"},
		{coeffs: []float64{-1.2, 0.49, 2.5e-6}, want: "yvar = 2.5e-06*xvar^2 + 0.49*xvar - 1.2"},
	}

	for i, test := range tests {
		p := &Polynomial{coeffs: test.coeffs, xvar: "xvar", yvar: "yvar"}
		if got := p.String(); got != test.want {
			t.Errorf("did not get expected string for test %d. Got: %q, Want: %q", i, got, test.want)
		}
	}
}

// TestStringFit checks that round-off in a fit does not show in the
// rendered equation.
func TestStringFit(t *testing.T) {
	p, err := Fit([]Point{{0, 0}, {1, 2}, {2, 4}, {3, 6}}, 2, "xvar", "yvar")
	if err != nil {
		t.Fatalf("could not fit data: %v", err)
	}
	const want = "yvar = 2*xvar"
	if got := p.String(); got != want {
		t.Errorf("did not get expected string. Got: %q, Want: %q", got, want)
	}
}

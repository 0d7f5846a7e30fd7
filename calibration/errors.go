/*
DESCRIPTION
  errors.go provides the error types returned when fitting and inverting
  calibration polynomials.

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
	"fmt"
)

var (
	// ErrDegenerateInversion is returned by Reverse when the polynomial is
	// identically equal to the target, so that every x is a root.
	ErrDegenerateInversion = errors.New("degenerate inversion: every value is a root")

	// ErrNoRealRoots is returned by RealRoots when no root is real within
	// tolerance.
	ErrNoRealRoots = errors.New("no real roots")

	// ErrNonFinite is returned by Fit when a point has a NaN or infinite
	// coordinate.
	ErrNonFinite = errors.New("non-finite point")
)

// InsufficientDataError is returned by Fit when fewer than degree+1 points
// are supplied, or the degree is negative.
type InsufficientDataError struct {
	Points int
	Degree int
}

func (e *InsufficientDataError) Error() string {
	if e.Degree < 0 {
		return fmt.Sprintf("invalid degree: %d", e.Degree)
	}
	return fmt.Sprintf("insufficient data: %d points for degree %d, need %d", e.Points, e.Degree, e.Degree+1)
}

// SingularFitError is returned by Fit when the design matrix is rank
// deficient for the requested degree.
type SingularFitError struct {
	Distinct int   // Number of distinct x values.
	Degree   int   // Requested degree.
	Err      error // Underlying solver error, if any.
}

func (e *SingularFitError) Error() string {
	msg := fmt.Sprintf("singular fit: %d distinct x values for degree %d", e.Distinct, e.Degree)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SingularFitError) Unwrap() error { return e.Err }

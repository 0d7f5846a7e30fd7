/*
DESCRIPTION
  parse.go provides parsing of freeform text entries into calibration
  values.

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

package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError is returned when a text entry does not hold a valid value.
// Callers treat the entry as absent.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNotFinite = errors.New("not a finite number")
	errNegative  = errors.New("negative degree")
)

// ParseFloat parses a finite number, ignoring surrounding space.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Input: s, Err: errNotFinite}
	}
	return v, nil
}

// ParseDegree parses a non-negative integer degree, ignoring surrounding
// space.
func ParseDegree(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	if d < 0 {
		return 0, &ParseError{Input: s, Err: errNegative}
	}
	return d, nil
}

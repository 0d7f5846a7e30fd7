/*
DESCRIPTION
  format.go provides rendering of a calibration polynomial as an equation.

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
	"math"
	"strconv"
	"strings"
)

// zeroTol is the magnitude, relative to the largest coefficient (or 1 if
// that is smaller), below which a term is left out of the equation.
const zeroTol = 1e-12

// String renders the polynomial as an equation, highest power first, e.g.
// "Energy = 0.002*Chan^2 + 1.5*Chan - 3". Zero terms are left out.
func (p *Polynomial) String() string {
	var max float64
	for _, c := range p.coeffs {
		max = math.Max(max, math.Abs(c))
	}
	tol := zeroTol * math.Max(1, max)

	var b strings.Builder
	b.WriteString(p.yvar + " = ")
	first := true
	for k := len(p.coeffs) - 1; k >= 0; k-- {
		c := p.coeffs[k]
		if math.Abs(c) <= tol {
			continue
		}
		switch {
		case first:
			b.WriteString(formatFloat(c))
		case c < 0:
			b.WriteString(" - " + formatFloat(-c))
		default:
			b.WriteString(" + " + formatFloat(c))
		}
		first = false

		switch k {
		case 0:
		case 1:
			b.WriteString("*" + p.xvar)
		default:
			b.WriteString("*" + p.xvar + "^" + strconv.Itoa(k))
		}
	}
	if first {
		b.WriteString("0")
	}
	return b.String()
}

// coeffDigits is the number of significant digits shown for a coefficient.
const coeffDigits = 12

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', coeffDigits, 64)
}

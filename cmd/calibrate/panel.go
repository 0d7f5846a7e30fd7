/*
DESCRIPTION
  panel.go provides rendering of the calibration session as a terminal panel.

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

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ausocean/calibrate/session"
)

type panel struct {
	title lipgloss.Style
	box   lipgloss.Style
}

func newPanel(r *lipgloss.Renderer) *panel {
	return &panel{
		title: r.NewStyle().Bold(true),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// render renders the points table beside the fit summary.
func (p *panel) render(s *session.Session) string {
	lines := []string{
		p.title.Render("Points"),
		fmt.Sprintf("%3s  %-10s %-10s %s", "#", s.XVar(), s.YVar(), "Comment"),
	}
	for i, r := range s.Rows() {
		lines = append(lines, fmt.Sprintf("%3d  %-10s %-10s %s", i+1, r.Channel, r.Energy, r.Comment))
	}
	points := p.box.Render(strings.Join(lines, "\n"))

	fit := p.box.Render(strings.Join([]string{
		p.title.Render("Fit"),
		"Degree = " + s.DegreeText(),
		s.Equation(),
		s.Chi2Text(),
	}, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, points, fit)
}

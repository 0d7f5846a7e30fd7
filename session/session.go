/*
DESCRIPTION
  session.go provides the calibration session type (Session), which holds the
  entered calibration points and degree and keeps the current calibration
  polynomial up to date as they change.

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

// Package session provides a calibration session. A session holds rows of
// freeform text entered for channel, energy and comment, and a degree, and
// refits the calibration polynomial whenever any of them change. Entries that
// do not parse are treated as absent; the session is then either fitted or
// unfitted, never in error.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ausocean/calibrate/calibration"
	"github.com/ausocean/calibrate/sources"
	"github.com/ausocean/utils/logging"
)

// Defaults.
const (
	DefaultDegree = "1"
	DefaultXVar   = "Chan"
	DefaultYVar   = "Energy"
)

// Inversion messages.
const (
	NoRealRoots      = "No real roots"
	NoUniqueSolution = "No unique solution"
)

// ErrNoRow is returned when a row index is out of range.
var ErrNoRow = errors.New("no such row")

// displayDigits is the number of significant digits shown for converted
// values.
const displayDigits = 12

// State is the fit state of a session.
type State int

// Session states.
const (
	Unfit State = iota
	Fit
)

func (s State) String() string {
	switch s {
	case Unfit:
		return "unfit"
	case Fit:
		return "fit"
	default:
		return "unknown"
	}
}

// Row is a single row of calibration entries as typed.
type Row struct {
	Channel, Energy, Comment string
}

// Session holds calibration entries and the polynomial fitted to them.
type Session struct {
	log        logging.Logger
	xvar, yvar string
	degree     string
	rows       []Row
	model      *calibration.Polynomial
}

// Option is the function signature returned by option functions below for
// use in the Session initialiser.
type Option func(*Session) error

// WithVars returns an Option that sets the display names of the independent
// and dependent variables.
func WithVars(xvar, yvar string) Option {
	return func(s *Session) error {
		if xvar == "" || yvar == "" {
			return fmt.Errorf("invalid variable names: %q, %q", xvar, yvar)
		}
		s.xvar, s.yvar = xvar, yvar
		return nil
	}
}

// WithDegree returns an Option that sets the initial degree text.
func WithDegree(degree string) Option {
	return func(s *Session) error {
		s.degree = degree
		return nil
	}
}

// New returns a new unfitted Session with no rows.
func New(log logging.Logger, options ...Option) (*Session, error) {
	s := &Session{
		log:    log,
		xvar:   DefaultXVar,
		yvar:   DefaultYVar,
		degree: DefaultDegree,
	}
	for i, opt := range options {
		err := opt(s)
		if err != nil {
			return nil, fmt.Errorf("could not apply option %d: %w", i, err)
		}
	}
	return s, nil
}

// AddRow appends a row and returns its index.
func (s *Session) AddRow(r Row) int {
	s.rows = append(s.rows, r)
	s.refit()
	return len(s.rows) - 1
}

// AddSource appends a row for each energy of src, with the channel left
// blank and the description as the comment.
func (s *Session) AddSource(src sources.Source) {
	s.log.Debug("adding source", "name", src.Name, "energies", len(src.Energies))
	for _, e := range src.Energies {
		s.rows = append(s.rows, Row{
			Energy:  strconv.FormatFloat(e.Value, 'g', -1, 64),
			Comment: e.Description,
		})
	}
	s.refit()
}

// SetChannel sets the channel text of row i.
func (s *Session) SetChannel(i int, text string) error {
	return s.update(i, func(r *Row) { r.Channel = text })
}

// SetEnergy sets the energy text of row i.
func (s *Session) SetEnergy(i int, text string) error {
	return s.update(i, func(r *Row) { r.Energy = text })
}

// SetComment sets the comment of row i.
func (s *Session) SetComment(i int, text string) error {
	return s.update(i, func(r *Row) { r.Comment = text })
}

// DeleteRow removes row i.
func (s *Session) DeleteRow(i int) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("row index %d: %w", i, ErrNoRow)
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.refit()
	return nil
}

func (s *Session) update(i int, f func(*Row)) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("row index %d: %w", i, ErrNoRow)
	}
	f(&s.rows[i])
	s.refit()
	return nil
}

// SetDegree sets the degree text.
func (s *Session) SetDegree(text string) {
	s.degree = text
	s.refit()
}

// DegreeText returns the degree as typed.
func (s *Session) DegreeText() string { return s.degree }

// Degree returns the parsed degree.
func (s *Session) Degree() (int, error) { return ParseDegree(s.degree) }

// Rows returns a copy of the rows.
func (s *Session) Rows() []Row {
	rows := make([]Row, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// Points returns the rows whose channel and energy both parse, as points.
func (s *Session) Points() []calibration.Point {
	var pts []calibration.Point
	for _, r := range s.rows {
		x, err := ParseFloat(r.Channel)
		if err != nil {
			continue
		}
		y, err := ParseFloat(r.Energy)
		if err != nil {
			continue
		}
		pts = append(pts, calibration.Point{X: x, Y: y})
	}
	return pts
}

// Model returns the current calibration polynomial, or nil if unfitted.
func (s *Session) Model() *calibration.Polynomial { return s.model }

// State returns the fit state.
func (s *Session) State() State {
	if s.model == nil {
		return Unfit
	}
	return Fit
}

// XVar returns the display name of the independent variable.
func (s *Session) XVar() string { return s.xvar }

// YVar returns the display name of the dependent variable.
func (s *Session) YVar() string { return s.yvar }

// refit replaces the current model with one fitted to the current entries,
// or with none if they are insufficient or invalid.
func (s *Session) refit() {
	prev := s.State()
	s.model = s.fit()
	if st := s.State(); st != prev {
		s.log.Debug("calibration state changed", "from", prev.String(), "to", st.String())
	}
}

func (s *Session) fit() *calibration.Polynomial {
	d, err := ParseDegree(s.degree)
	if err != nil {
		s.log.Debug("no degree", "error", err)
		return nil
	}

	pts := s.Points()
	p, err := calibration.Fit(pts, d, s.xvar, s.yvar)
	var ide *calibration.InsufficientDataError
	switch {
	case errors.As(err, &ide):
		s.log.Debug("not enough points to fit", "points", len(pts), "degree", d)
		return nil
	case err != nil:
		s.log.Warning("could not fit calibration points", "error", err)
		return nil
	}
	s.log.Info("fitted calibration", "equation", p.String(), "chi2", p.Chi2(pts))
	return p
}

// Equation returns the rendered calibration polynomial, or a placeholder if
// unfitted.
func (s *Session) Equation() string {
	if s.model == nil {
		return s.yvar + " = "
	}
	return s.model.String()
}

// Chi2Text returns the chi-squared of the fit against the current points, or
// a placeholder if unfitted.
func (s *Session) Chi2Text() string {
	if s.model == nil {
		return "Chi^2 = "
	}
	return fmt.Sprintf("Chi^2 = %.3f", s.model.Chi2(s.Points()))
}

// Stats returns goodness of fit statistics, and false if unfitted.
func (s *Session) Stats() (calibration.Stats, bool) {
	if s.model == nil {
		return calibration.Stats{}, false
	}
	return s.model.Stats(s.Points()), true
}

// Forward converts text holding an x value to y. The result is empty if
// unfitted or the text does not parse.
func (s *Session) Forward(text string) string {
	if s.model == nil {
		return ""
	}
	x, err := ParseFloat(text)
	if err != nil {
		return ""
	}
	return formatValue(s.model.Eval(x))
}

// Reverse converts text holding a y value to every real x that maps to it,
// in ascending order and comma separated. NoRealRoots or NoUniqueSolution are
// returned if there is no single set of solutions, and an empty string if
// unfitted or the text does not parse.
func (s *Session) Reverse(text string) string {
	if s.model == nil {
		return ""
	}
	y, err := ParseFloat(text)
	if err != nil {
		return ""
	}

	roots, err := s.model.Reverse(y)
	if errors.Is(err, calibration.ErrDegenerateInversion) {
		return NoUniqueSolution
	}
	if err != nil {
		s.log.Error("could not invert calibration", "y", y, "error", err)
		return ""
	}

	xs, err := calibration.RealRoots(roots, calibration.RootTolerance)
	if err != nil {
		return NoRealRoots
	}
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = formatValue(x)
	}
	return strings.Join(out, ", ")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', displayDigits, 64)
}

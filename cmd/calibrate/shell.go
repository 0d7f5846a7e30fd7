/*
DESCRIPTION
  shell.go provides the interactive command loop used to enter calibration
  points and convert between channel and energy.

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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ausocean/calibrate/calibration"
	"github.com/ausocean/calibrate/session"
	"github.com/ausocean/calibrate/sources"
	"github.com/ausocean/utils/logging"
)

const usage = `Commands:
  add [chan [energy [comment...]]]  add a point row, "-" leaves a field blank
  chan <row> [text]                 set the channel of a row
  energy <row> [text]               set the energy of a row
  comment <row> [text...]           set the comment of a row
  del <row>                         delete a row
  degree <n>                        set the polynomial degree
  c2e <chan>                        convert channel to energy
  e2c <energy>                      convert energy to channel(s)
  sources                           list reference sources
  source <name>                     add the energies of a reference source
  stats                             show goodness of fit statistics
  plot <file>                       plot the calibration to an image file
  show                              show the points and fit
  help                              show this help
  exit                              leave`

// errNoCatalog is returned by source commands when no catalog was loaded.
var errNoCatalog = errors.New("no source catalog loaded")

// shell runs commands against a calibration session.
type shell struct {
	sess    *session.Session
	catalog *sources.Catalog // May be nil.
	log     logging.Logger
	out     io.Writer
	panel   *panel
	prompt  string
}

func newShell(sess *session.Session, catalog *sources.Catalog, log logging.Logger, out io.Writer) *shell {
	return &shell{
		sess:    sess,
		catalog: catalog,
		log:     log,
		out:     out,
		panel:   newPanel(lipgloss.NewRenderer(out)),
		prompt:  "> ",
	}
}

// run reads and executes commands from in until exit is requested or in is
// exhausted.
func (sh *shell) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, sh.prompt)
		if !sc.Scan() {
			return sc.Err()
		}
		if sh.exec(sc.Text()) {
			return nil
		}
	}
}

// exec executes a single command line and reports whether to exit.
func (sh *shell) exec(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	cmd, args := args[0], args[1:]
	sh.log.Debug("executing command", "command", cmd, "args", args)

	var err error
	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprintln(sh.out, usage)
	case "show":
		fmt.Fprintln(sh.out, sh.panel.render(sh.sess))
	case "add":
		sh.add(args)
	case "chan":
		err = sh.set(args, sh.sess.SetChannel)
	case "energy":
		err = sh.set(args, sh.sess.SetEnergy)
	case "comment":
		err = sh.set(args, sh.sess.SetComment)
	case "del":
		err = sh.del(args)
	case "degree":
		sh.sess.SetDegree(strings.Join(args, " "))
		sh.status()
	case "c2e":
		fmt.Fprintf(sh.out, "%s -> %s: %s\n", sh.sess.XVar(), sh.sess.YVar(), sh.sess.Forward(first(args)))
	case "e2c":
		fmt.Fprintf(sh.out, "%s -> %s: %s\n", sh.sess.YVar(), sh.sess.XVar(), sh.sess.Reverse(first(args)))
	case "sources":
		err = sh.listSources()
	case "source":
		err = sh.addSource(strings.Join(args, " "))
	case "stats":
		sh.stats()
	case "plot":
		err = sh.plot(args)
	default:
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}
	if err != nil {
		fmt.Fprintf(sh.out, "error: %v\n", err)
	}
	return false
}

// status prints the current equation and chi-squared.
func (sh *shell) status() {
	fmt.Fprintln(sh.out, sh.sess.Equation())
	fmt.Fprintln(sh.out, sh.sess.Chi2Text())
}

func (sh *shell) add(args []string) {
	var r session.Row
	if len(args) > 0 {
		r.Channel = blank(args[0])
	}
	if len(args) > 1 {
		r.Energy = blank(args[1])
	}
	if len(args) > 2 {
		r.Comment = strings.Join(args[2:], " ")
	}
	i := sh.sess.AddRow(r)
	fmt.Fprintf(sh.out, "row %d\n", i+1)
	sh.status()
}

func (sh *shell) set(args []string, f func(int, string) error) error {
	i, err := row(args)
	if err != nil {
		return err
	}
	err = f(i, strings.Join(args[1:], " "))
	if errors.Is(err, session.ErrNoRow) {
		return fmt.Errorf("no row %s", args[0])
	}
	if err != nil {
		return err
	}
	sh.status()
	return nil
}

func (sh *shell) del(args []string) error {
	i, err := row(args)
	if err != nil {
		return err
	}
	err = sh.sess.DeleteRow(i)
	if errors.Is(err, session.ErrNoRow) {
		return fmt.Errorf("no row %s", args[0])
	}
	if err != nil {
		return err
	}
	sh.status()
	return nil
}

func (sh *shell) listSources() error {
	if sh.catalog == nil {
		return errNoCatalog
	}
	for _, name := range sh.catalog.Names() {
		fmt.Fprintln(sh.out, name)
	}
	return nil
}

func (sh *shell) addSource(name string) error {
	if sh.catalog == nil {
		return errNoCatalog
	}
	src, ok := sh.catalog.Source(name)
	if !ok {
		return fmt.Errorf("unknown source %q", name)
	}
	sh.sess.AddSource(src)
	fmt.Fprintf(sh.out, "added %d energies from %s\n", len(src.Energies), src.Name)
	sh.status()
	return nil
}

func (sh *shell) stats() {
	st, ok := sh.sess.Stats()
	if !ok {
		fmt.Fprintln(sh.out, "no fit")
		return
	}
	fmt.Fprintf(sh.out, "Chi^2 = %.3f\nDOF = %d\nChi^2/DOF = %.3f\nR^2 = %.6f\n", st.Chi2, st.DegreesOfFreedom, st.ReducedChi2, st.RSquared)
}

func (sh *shell) plot(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: plot <file>")
	}
	p := sh.sess.Model()
	if p == nil {
		return errors.New("no calibration to plot")
	}
	err := calibration.PlotFit(p, sh.sess.Points(), args[0])
	if err != nil {
		sh.log.Error("could not plot calibration", "file", args[0], "error", err)
		return err
	}
	fmt.Fprintf(sh.out, "saved %s\n", args[0])
	return nil
}

// row parses the 1-based row number in args[0] into an index.
func row(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing row number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid row number %q", args[0])
	}
	return n - 1, nil
}

func blank(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

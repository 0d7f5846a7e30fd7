/*
DESCRIPTION
  shell_test.go provides testing for functionality in shell.go and panel.go.

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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/ausocean/calibrate/session"
	"github.com/ausocean/calibrate/sources"
	"github.com/ausocean/utils/logging"
)

const testCatalog = `{'sources': {'Co-60': {'energies': [
    {'value': 1173.228, 'description': 'Co-60 first gamma'},
    {'value': 1332.492, 'description': 'Co-60 second gamma'}]}}}`

// newTestShell returns a shell without a prompt writing to the returned
// buffer.
func newTestShell(t *testing.T, catalog *sources.Catalog) (*shell, *bytes.Buffer) {
	t.Helper()
	log := logging.New(logging.Debug, io.Discard, true)
	sess, err := session.New(log)
	if err != nil {
		t.Fatalf("could not create session: %v", err)
	}
	var out bytes.Buffer
	sh := newShell(sess, catalog, log, &out)
	sh.prompt = ""
	return sh, &out
}

func TestShellTranscript(t *testing.T) {
	catalog, err := sources.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("could not parse catalog: %v", err)
	}
	sh, out := newTestShell(t, catalog)

	const in = `add 0 0
add 1 1 first point
add 2 2
c2e 5
e2c 3
c2e five
degree 2
degree x
c2e 5
e2c 3
degree 1
del 9
energy 2 abc
bogus
sources
source Co-60
chan 4 10
chan 5 20
exit
add 3 3
`
	const want = `row 1
Energy = 
Chi^2 = 
row 2
Energy = 1*Chan
Chi^2 = 0.000
row 3
Energy = 1*Chan
Chi^2 = 0.000
Chan -> Energy: 5
Energy -> Chan: 3
Chan -> Energy: 
Energy = 1*Chan
Chi^2 = 0.000
Energy = 
Chi^2 = 
Chan -> Energy: 
Energy -> Chan: 
Energy = 1*Chan
Chi^2 = 0.000
error: no row 9
Energy = 1*Chan
Chi^2 = 0.000
error: unknown command "bogus", try help
Co-60
added 2 energies from Co-60
Energy = 1*Chan
Chi^2 = 0.000
*
*
*
*
`

	err = sh.run(strings.NewReader(in))
	if err != nil {
		t.Fatalf("could not run shell: %v", err)
	}

	// The source rows do not lie on the first line, so the last two fits
	// are only checked for having changed.
	got := out.String()
	gotLines := strings.Split(got, "\n")
	wantLines := strings.Split(want, "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("did not get expected number of lines. Got: %d, Want: %d\nDiff:\n%v", len(gotLines), len(wantLines), diff.LineDiff(want, got))
	}
	head := strings.Join(gotLines[:len(gotLines)-5], "\n")
	wantHead := strings.Join(wantLines[:len(wantLines)-5], "\n")
	if head != wantHead {
		t.Errorf("did not get expected output:\nDiff:\n%v", diff.LineDiff(wantHead, head))
	}
	if eq := gotLines[len(gotLines)-3]; !strings.HasPrefix(eq, "Energy = ") || eq == "Energy = 1*Chan" {
		t.Errorf("did not get refit after entering source channels. Got: %q", eq)
	}
	if strings.Contains(got, "row 6") {
		t.Errorf("executed commands after exit")
	}
}

func TestShellNoCatalog(t *testing.T) {
	sh, out := newTestShell(t, nil)
	err := sh.run(strings.NewReader("sources\nsource Cs-137\nplot fit.png\nstats\n"))
	if err != nil {
		t.Fatalf("could not run shell: %v", err)
	}

	const want = `error: no source catalog loaded
error: no source catalog loaded
error: no calibration to plot
no fit
`
	if got := out.String(); got != want {
		t.Errorf("did not get expected output:\nDiff:\n%v", diff.LineDiff(want, got))
	}
}

func TestShellPlot(t *testing.T) {
	sh, out := newTestShell(t, nil)
	path := filepath.Join(t.TempDir(), "fit.png")
	err := sh.run(strings.NewReader("add 118 59.5409\nadd 1320 661.657\nadd 2662 1332.492\nplot " + path + "\n"))
	if err != nil {
		t.Fatalf("could not run shell: %v", err)
	}
	if !strings.Contains(out.String(), "saved "+path) {
		t.Errorf("plot not reported as saved, output:\n%s", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("could not stat plot: %v", err)
	}
}

func TestPanel(t *testing.T) {
	sh, out := newTestShell(t, nil)
	err := sh.run(strings.NewReader("add 0 0 origin\nadd 1 1\nshow\n"))
	if err != nil {
		t.Fatalf("could not run shell: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Points", "origin", "Degree = 1", "Energy = 1*Chan", "Chi^2 = 0.000"} {
		if !strings.Contains(got, want) {
			t.Errorf("panel does not contain %q:\n%s", want, got)
		}
	}
}

/*
DESCRIPTION
  calibrate is an interactive tool for energy calibration of a spectrometer.
  Reference points of detector channel against known energy are entered, a
  polynomial is fitted to them, and the fit is used to convert between
  channel and energy in either direction.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2020-2026 the Australian Ocean Lab (AusOcean)

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

// calibrate is an interactive tool for energy calibration of a spectrometer.
// Reference points of detector channel against known energy are entered, a
// polynomial is fitted to them, and the fit is used to convert between
// channel and energy in either direction. Known energies of reference sources
// may be loaded from a source catalog.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/calibrate/session"
	"github.com/ausocean/calibrate/sources"
	"github.com/ausocean/utils/logging"
)

// Logging configuration consts.
const (
	logMaxSize   = 50 // MB.
	logMaxBackup = 5
	logMaxAge    = 28 // Days.
	logSuppress  = false
)

func main() {
	configPath := flag.String("config", "calibrate.conf", "Specifies config file")
	sourcesPath := flag.String("sources", "", "Specifies reference source catalog, overriding config")
	flag.Parse()

	cfg, unknown, err := readConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read config: %v\n", err)
		os.Exit(1)
	}
	if *sourcesPath != "" {
		cfg.sources = *sourcesPath
	}

	fileLog := &lumberjack.Logger{
		Filename:   cfg.logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	defer fileLog.Close()

	log := logging.New(cfg.logLevel, fileLog, logSuppress)
	for _, k := range unknown {
		log.Warning("unknown config parameter", "param", k)
	}

	log.Debug("loading source catalog", "path", cfg.sources)
	catalog, err := sources.Load(cfg.sources)
	if err != nil {
		log.Warning("continuing without source catalog", "error", err)
	}

	log.Debug("initialising calibration session")
	sess, err := session.New(log, session.WithVars(cfg.xvar, cfg.yvar), session.WithDegree(cfg.degree))
	if err != nil {
		log.Fatal("could not initialise calibration session", "error", err)
	}

	sh := newShell(sess, catalog, log, os.Stdout)
	fmt.Fprintln(os.Stdout, `calibrate: type "help" for commands`)
	err = sh.run(os.Stdin)
	if err != nil {
		log.Error("could not read commands", "error", err)
	}
	log.Info("exiting")
}

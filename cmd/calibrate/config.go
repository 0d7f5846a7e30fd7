/*
DESCRIPTION
  config.go provides reading of the calibrate configuration file.

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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ausocean/calibrate/session"
	"github.com/ausocean/utils/filemap"
	"github.com/ausocean/utils/logging"
	"github.com/ausocean/utils/sliceutils"
)

// configParams are the parameters recognised in the config file, which holds
// one space separated parameter and value per line, e.g.
//
//	Degree 2
//	Sources /etc/calibrate/sources.txt
var configParams = []string{"Degree", "Sources", "XVar", "YVar", "LogPath", "LogLevel"}

var logLevels = map[string]int8{
	"Debug":   logging.Debug,
	"Info":    logging.Info,
	"Warning": logging.Warning,
	"Error":   logging.Error,
	"Fatal":   logging.Fatal,
}

type config struct {
	degree   string
	sources  string
	xvar     string
	yvar     string
	logPath  string
	logLevel int8
}

func defaultConfig() config {
	return config{
		degree:   session.DefaultDegree,
		sources:  "sources.txt",
		xvar:     session.DefaultXVar,
		yvar:     session.DefaultYVar,
		logPath:  filepath.Join(os.TempDir(), "calibrate.log"),
		logLevel: logging.Info,
	}
}

// readConfig reads the config file at path over the defaults. A missing file
// gives the defaults. Unrecognised parameters are returned so that they can
// be reported once logging is up.
func readConfig(path string) (config, []string, error) {
	cfg := defaultConfig()
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil, nil
	}

	m, err := filemap.ReadFrom(path, "\n", " ")
	if err != nil {
		return cfg, nil, fmt.Errorf("could not read config file: %w", err)
	}

	var unknown []string
	for k, v := range m {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			continue
		}
		if !sliceutils.ContainsString(configParams, k) {
			unknown = append(unknown, k)
			continue
		}
		switch k {
		case "Degree":
			cfg.degree = v
		case "Sources":
			cfg.sources = v
		case "XVar":
			cfg.xvar = v
		case "YVar":
			cfg.yvar = v
		case "LogPath":
			cfg.logPath = v
		case "LogLevel":
			l, ok := logLevels[v]
			if !ok {
				return cfg, nil, fmt.Errorf("invalid LogLevel: %s", v)
			}
			cfg.logLevel = l
		}
	}
	sort.Strings(unknown)
	return cfg, unknown, nil
}

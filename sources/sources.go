/*
DESCRIPTION
  sources.go provides a catalog of reference sources and their known
  emission energies, used to prefill calibration points.

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

// Package sources provides a catalog of calibration reference sources. A
// catalog file maps source names to their energies, e.g.
//
//	{'sources': {'Cs-137': {'energies': [{'value': 661.657, 'description': 'gamma'}]}}}
//
// Single or double quoted keys are both accepted, as is any equivalent YAML
// or JSON document.
package sources

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Energy is a known energy of a reference source.
type Energy struct {
	Value       float64 `yaml:"value"`
	Description string  `yaml:"description"`
}

// Source is a named reference source.
type Source struct {
	Name     string   `yaml:"-"`
	Energies []Energy `yaml:"energies"`
}

// Catalog holds reference sources by name.
type Catalog struct {
	sources map[string]Source
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read source catalog: %w", err)
	}
	return Parse(data)
}

// Parse parses a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Sources map[string]Source `yaml:"sources"`
	}
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("could not parse source catalog: %w", err)
	}
	if doc.Sources == nil {
		return nil, errors.New("source catalog has no sources")
	}

	c := &Catalog{sources: make(map[string]Source, len(doc.Sources))}
	for name, src := range doc.Sources {
		src.Name = name
		c.sources[name] = src
	}
	return c, nil
}

// Names returns the source names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the named source and whether it exists.
func (c *Catalog) Source(name string) (Source, bool) {
	src, ok := c.sources[name]
	return src, ok
}

// Len returns the number of sources in the catalog.
func (c *Catalog) Len() int { return len(c.sources) }

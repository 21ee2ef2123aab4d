// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gsokit/matrix"
	"github.com/katalvlaran/gsokit/matrix/exact"
)

// document is the on-disk matrix format. Entries are kept as raw nodes so
// "1/2", 3 and 0.25 all arrive as text and are parsed exactly.
type document struct {
	Rows [][]yaml.Node `yaml:"rows"`
}

// readRows loads a matrix document and returns its entries as text.
func readRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	rows := make([][]string, len(doc.Rows))
	for i, row := range doc.Rows {
		rows[i] = make([]string, len(row))
		for j, n := range row {
			if n.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s:%d: entry (%d,%d) is not a scalar: %w", path, n.Line, i, j, exact.ErrParse)
			}
			rows[i][j] = n.Value
		}
	}

	return rows, nil
}

// readRat loads a rational matrix.
func readRat(path string) (*exact.RatDense, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	m, err := exact.NewRatDenseFromStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// readInt loads an integer matrix.
func readInt(path string) (*exact.IntDense, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	m, err := exact.NewIntDenseFromStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// readFloat loads a matrix for the floating-point engine: entries are parsed
// exactly, then rounded once to the nearest float64.
func readFloat(path string) (*matrix.Dense, error) {
	r, err := readRat(path)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFrom(r.Float64Rows())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gsokit/matrix"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// field is one named result: a matrix (rows set) or a scalar.
type field struct {
	key   string
	text  string     // text rendering
	rows  [][]string // nil for scalars
	value any        // scalar value for YAML output
}

// report collects the results of a command in print order.
type report struct {
	fields []field
}

// matrixBlock is how a matrix is written in YAML output, matching the input format.
type matrixBlock struct {
	Rows [][]string `yaml:"rows,flow"`
}

func (r *report) matrix(key string, m fmt.Stringer, rows [][]string) {
	r.fields = append(r.fields, field{key: key, text: m.String(), rows: rows})
}

func (r *report) scalar(key string, v any) {
	r.fields = append(r.fields, field{key: key, text: fmt.Sprint(v), value: v})
}

// write renders the report in the requested format.
func (r *report) write(w io.Writer, format string) error {
	switch format {
	case formatText:
		for _, f := range r.fields {
			var err error
			if f.rows != nil {
				_, err = fmt.Fprintf(w, "%s:\n%s", f.key, f.text)
			} else {
				_, err = fmt.Fprintf(w, "%s: %s\n", f.key, f.text)
			}
			if err != nil {
				return err
			}
		}

		return nil
	case formatYAML:
		return r.writeYAML(w)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatYAML)
	}
}

// writeYAML emits one mapping whose keys keep the report order.
func (r *report) writeYAML(w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.key}
		val := &yaml.Node{}
		var err error
		if f.rows != nil {
			err = val.Encode(matrixBlock{Rows: f.rows})
		} else {
			err = val.Encode(f.value)
		}
		if err != nil {
			return fmt.Errorf("encode %s: %w", f.key, err)
		}
		doc.Content = append(doc.Content, key, val)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// floatRows renders a float matrix with shortest round-trip formatting.
func floatRows(m *matrix.Dense) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		row, _ := m.Row(i)
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}

	return out
}

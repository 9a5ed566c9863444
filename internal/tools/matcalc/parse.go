// SPDX-License-Identifier: MIT

package matcalc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gmatrix/matrix"
)

// separator splits consecutive matrices inside one input.
const separator = "---"

// ParseMatrices reads whitespace-separated float64 rows from r.
//
// Format:
//   - one matrix row per line, cells separated by spaces or tabs;
//   - a blank line or a line holding "---" ends the current matrix;
//   - text after '#' is a comment.
//
// Errors: a malformed number, or matrix.ErrBadShape for a row whose width
// differs from the first row of its matrix; both name the offending line.
func ParseMatrices(r io.Reader) ([]*matrix.Matrix[float64], error) {
	var (
		out  []*matrix.Matrix[float64]
		rows [][]float64
		line int
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		m, err := matrix.FromRows(rows)
		if err != nil {
			return err
		}
		out = append(out, m)
		rows = nil
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" || text == separator {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, cell %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: row has %d cells, want %d: %w",
				line, len(row), len(rows[0]), matrix.ErrBadShape)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

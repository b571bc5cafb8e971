// SPDX-License-Identifier: MIT
// Package: tricks/grid
//
// render.go — console table output via tablewriter.

package grid

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// ErrLabelMismatch indicates the label count does not match the grid shape.
var ErrLabelMismatch = errors.New("grid: label count does not match dimensions")

// Render writes m to w as an aligned table. rowLabels must have one entry per
// row. colLabels may be nil, in which case columns are numbered from 0.
// Stage 1 (Validate): label counts against the grid shape.
// Stage 2 (Execute): append one formatted table row per grid row and render.
// Complexity: O(r*c).
func Render(w io.Writer, m *Dense, rowLabels, colLabels []string) error {
	if len(rowLabels) != m.r {
		return fmt.Errorf("Render: %d row labels for %d rows: %w", len(rowLabels), m.r, ErrLabelMismatch)
	}
	if colLabels == nil {
		colLabels = make([]string, m.c)
		for j := range colLabels {
			colLabels[j] = strconv.Itoa(j)
		}
	}
	if len(colLabels) != m.c {
		return fmt.Errorf("Render: %d column labels for %d columns: %w", len(colLabels), m.c, ErrLabelMismatch)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{""}, colLabels...))
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	for i := 0; i < m.r; i++ {
		row := make([]string, 0, m.c+1)
		row = append(row, rowLabels[i])
		for j := 0; j < m.c; j++ {
			row = append(row, FormatValue(m.data[i*m.c+j]))
		}
		table.Append(row)
	}
	table.Render()

	return nil
}

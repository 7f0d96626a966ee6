// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

/*
Package frame provides the immutable table snapshot used by the AutoML
client for leaderboards and event logs.

# Problem Statement

The AutoML backend reports run state as small tabular payloads: a
leaderboard (one row per candidate model, one column per metric) and an
event log (timestamped name/value rows). The client needs to reorder and
inspect these tables locally without mutating them, because every fetch
is an independent snapshot of a run that may still be training.

# Solution

Frame is a read-only table: ordered column names with their original
casing, rows of typed cells, case-insensitive column resolution, and a
stable Sort that returns a new view over shared row data. Two calls that
sort the same snapshot with the same arguments always produce the same
order, so selection logic built on top of Frame is deterministic.

# Usage

	lb, _ := frame.New([]string{"model_id", "auc"}, rows)
	sorted, err := lb.Sort("AUC", false) // descending, case-insensitive
	id, _ := sorted.String(0, "model_id")

# Limitations

  - Cells are either numeric (float64) or text; no richer types.
  - Frames are snapshots. Refreshing state means fetching a new Frame.
*/
package frame

import (
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Cell
// -----------------------------------------------------------------------------

// Cell is a single table value, either numeric or text.
type Cell struct {
	text    string
	num     float64
	numeric bool
}

// Num creates a numeric cell.
func Num(v float64) Cell {
	return Cell{num: v, numeric: true}
}

// Str creates a text cell.
func Str(s string) Cell {
	return Cell{text: s}
}

// IsNumeric reports whether the cell holds a number.
func (c Cell) IsNumeric() bool {
	return c.numeric
}

// Float returns the numeric value. Text cells return 0.
func (c Cell) Float() float64 {
	return c.num
}

// String returns the text value. Numeric cells are formatted with %g.
func (c Cell) String() string {
	if c.numeric {
		return fmt.Sprintf("%g", c.num)
	}
	return c.text
}

// less orders cells for sorting: numeric cells compare by value,
// text cells lexically. A numeric cell sorts before a text cell so
// mixed columns still order deterministically.
func (c Cell) less(other Cell) bool {
	if c.numeric && other.numeric {
		return c.num < other.num
	}
	if c.numeric != other.numeric {
		return c.numeric
	}
	return c.text < other.text
}

// -----------------------------------------------------------------------------
// Frame
// -----------------------------------------------------------------------------

// Frame is an immutable, ordered table of named columns.
//
// Column names keep their original casing but resolve
// case-insensitively. Rows are shared between a Frame and the sorted
// views it produces; neither is ever mutated after construction.
type Frame struct {
	columns []string
	index   map[string]int // lowercase column name -> position
	rows    [][]Cell
}

// New builds a Frame from column names and row data.
//
// Every row must have exactly one cell per column. Column names must be
// unique under case folding.
func New(columns []string, rows [][]Cell) (*Frame, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		key := strings.ToLower(col)
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("duplicate column %q", col)
		}
		index[key] = i
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}
	return &Frame{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    rows,
	}, nil
}

// Columns returns the column names in order, original casing preserved.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// ResolveColumn maps a case-insensitive column name to its stored
// original-case name. The second return is false when no column matches.
func (f *Frame) ResolveColumn(name string) (string, bool) {
	i, ok := f.index[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return f.columns[i], true
}

// Cell returns the cell at (row, column). The column name is resolved
// case-insensitively.
func (f *Frame) Cell(row int, column string) (Cell, error) {
	if row < 0 || row >= len(f.rows) {
		return Cell{}, fmt.Errorf("row %d out of range [0,%d)", row, len(f.rows))
	}
	i, ok := f.index[strings.ToLower(column)]
	if !ok {
		return Cell{}, fmt.Errorf("no column %q", column)
	}
	return f.rows[row][i], nil
}

// Float returns the numeric value at (row, column).
func (f *Frame) Float(row int, column string) (float64, error) {
	c, err := f.Cell(row, column)
	if err != nil {
		return 0, err
	}
	if !c.IsNumeric() {
		return 0, fmt.Errorf("cell (%d, %s) is not numeric", row, column)
	}
	return c.Float(), nil
}

// String returns the string form of the value at (row, column).
func (f *Frame) String(row int, column string) (string, error) {
	c, err := f.Cell(row, column)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Sort returns a new Frame view ordered by the given column.
//
// The sort is stable: rows that compare equal keep the receiver's
// order, so repeated sorts of the same snapshot are deterministic. The
// receiver is left untouched; row slices are shared, not copied.
func (f *Frame) Sort(by string, ascending bool) (*Frame, error) {
	i, ok := f.index[strings.ToLower(by)]
	if !ok {
		return nil, fmt.Errorf("no column %q", by)
	}
	rows := make([][]Cell, len(f.rows))
	copy(rows, f.rows)
	sort.SliceStable(rows, func(a, b int) bool {
		if ascending {
			return rows[a][i].less(rows[b][i])
		}
		return rows[b][i].less(rows[a][i])
	})
	return &Frame{columns: f.columns, index: f.index, rows: rows}, nil
}

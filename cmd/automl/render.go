// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"bytes"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/AleutianAI/AleutianAutoML/pkg/frame"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// stdoutIsTTY decides whether output gets lipgloss styling. Piped
// output stays plain so scripts can parse it.
func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderFrame formats a frame as an aligned text table. Styling is
// applied only when styled is true.
func renderFrame(f *frame.Frame, styled bool) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	columns := f.Columns()
	for i, col := range columns {
		if styled {
			col = headerStyle.Render(col)
		}
		if i > 0 {
			w.Write([]byte("\t"))
		}
		w.Write([]byte(col))
	}
	w.Write([]byte("\n"))

	for row := 0; row < f.NumRows(); row++ {
		for i, col := range columns {
			if i > 0 {
				w.Write([]byte("\t"))
			}
			cell, err := f.String(row, col)
			if err != nil {
				cell = "?"
			}
			w.Write([]byte(cell))
		}
		w.Write([]byte("\n"))
	}

	w.Flush()
	return buf.String()
}

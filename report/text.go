// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/msgperf/msgperf/internal/texttab"
)

// Text writes r as aligned text tables, each preceded by its
// upper-cased title.
func (r *Report) Text(w io.Writer) error {
	for i, s := range r.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", strings.ToUpper(s.Title)); err != nil {
			return err
		}
		if err := s.table().Format(w); err != nil {
			return err
		}
	}
	return nil
}

// table lays out s. The version column is left-aligned and the
// numeric columns are right-aligned.
func (s *Section) table() *texttab.Table {
	var t texttab.Table
	t.Row()
	for i, c := range s.Columns {
		t.Cell(c, align(i))
	}
	t.Rule('-')
	for _, row := range s.Rows {
		t.Row()
		for i, c := range row {
			t.Cell(c, align(i))
		}
	}
	return &t
}

func align(col int) texttab.CellOption {
	if col == 0 {
		return texttab.Left
	}
	return texttab.Right
}

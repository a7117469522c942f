// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// implicitTableName labels a sheet's bare used range when the sheet has no
// defined tables.
const implicitTableName = "(implicit)"

// Open opens the xlsx/xlsm workbook at path.
func Open(path string) (Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	return &xlsxDocument{f: f}, nil
}

type xlsxDocument struct {
	f *excelize.File
}

func (d *xlsxDocument) Sheets() []Sheet {
	names := d.f.GetSheetList()
	sheets := make([]Sheet, len(names))
	for i, name := range names {
		sheets[i] = &xlsxSheet{f: d.f, name: name}
	}
	return sheets
}

func (d *xlsxDocument) Close() error {
	return d.f.Close()
}

type xlsxSheet struct {
	f    *excelize.File
	name string
}

func (s *xlsxSheet) Name() string { return s.name }

// Tables returns the sheet's defined tables. A sheet without defined tables
// exposes its content as one implicit table, unless the sheet is empty.
func (s *xlsxSheet) Tables() ([]Table, error) {
	defined, err := s.f.GetTables(s.name)
	if err != nil {
		return nil, fmt.Errorf("listing tables of sheet %q: %w", s.name, err)
	}

	if len(defined) > 0 {
		tables := make([]Table, 0, len(defined))
		for _, t := range defined {
			b, err := parseRange(t.Range)
			if err != nil {
				return nil, fmt.Errorf("table %q of sheet %q: %w", t.Name, s.name, err)
			}
			tables = append(tables, &xlsxTable{f: s.f, sheet: s.name, name: t.Name, rng: t.Range, bounds: b})
		}
		return tables, nil
	}

	empty, err := s.empty()
	if err != nil {
		return nil, err
	}
	if empty {
		return nil, nil
	}
	return []Table{&xlsxTable{f: s.f, sheet: s.name, name: implicitTableName}}, nil
}

// empty reports whether the sheet has no stored rows.
func (s *xlsxSheet) empty() (bool, error) {
	rows, err := s.f.Rows(s.name)
	if err != nil {
		return false, fmt.Errorf("reading sheet %q: %w", s.name, err)
	}
	defer rows.Close()
	return !rows.Next(), nil
}

type xlsxTable struct {
	f      *excelize.File
	sheet  string
	name   string
	rng    string
	bounds bounds
}

func (t *xlsxTable) Name() string { return t.name }

// Range returns the A1-style range the table covers, empty for implicit tables.
func (t *xlsxTable) Range() string { return t.rng }

func (t *xlsxTable) Rows() (RowIter, error) {
	rows, err := t.f.Rows(t.sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", t.sheet, err)
	}
	return &xlsxRows{rows: rows, bounds: t.bounds}, nil
}

// bounds holds 1-based inclusive range coordinates. The zero value means the
// table is unbounded (an implicit table).
type bounds struct {
	left, top, right, bottom int
}

func parseRange(ref string) (bounds, error) {
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return bounds{}, fmt.Errorf("malformed table range %q", ref)
	}
	left, top, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return bounds{}, fmt.Errorf("malformed table range %q: %w", ref, err)
	}
	right, bottom, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return bounds{}, fmt.Errorf("malformed table range %q: %w", ref, err)
	}
	return bounds{left: left, top: top, right: right, bottom: bottom}, nil
}

// xlsxRows streams rows from the backing reader, restricted to the table's
// bounds when set. Rows declared by the range but missing from the stream
// are emitted as empty rows so the output mirrors the declared grid.
type xlsxRows struct {
	rows    *excelize.Rows
	bounds  bounds
	cur     int  // worksheet row number of the current row, 1-based
	eof     bool // underlying stream exhausted
	padding bool // current row is declared by the range but missing from the stream
}

func (r *xlsxRows) Next() bool {
	b := r.bounds
	if b.bottom > 0 && r.cur >= b.bottom {
		return false
	}
	for !r.eof {
		if !r.rows.Next() {
			r.eof = true
			break
		}
		r.cur++
		if r.cur < b.top {
			continue
		}
		r.padding = false
		return true
	}
	if b.bottom > 0 && r.cur < b.bottom {
		if r.cur < b.top-1 {
			r.cur = b.top - 1
		}
		r.cur++
		r.padding = true
		return true
	}
	return false
}

func (r *xlsxRows) Columns() ([]string, error) {
	b := r.bounds
	if r.padding {
		return make([]string, b.right-b.left+1), nil
	}
	cells, err := r.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading row %d: %w", r.cur, err)
	}
	if b.right == 0 {
		return cells, nil
	}
	out := make([]string, b.right-b.left+1)
	for i := range out {
		if idx := b.left - 1 + i; idx < len(cells) {
			out[i] = cells[idx]
		}
	}
	return out, nil
}

func (r *xlsxRows) Close() error {
	return r.rows.Close()
}

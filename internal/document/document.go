// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document opens spreadsheet workbooks and exposes their sheets,
// tables, and rows behind a small capability surface. The converter treats
// this package as an oracle: format decoding lives entirely in the backing
// library.
package document

import (
	"fmt"

	"github.com/pdiddy/sheetconv/pkg/types"
)

// Document is an open workbook. Callers must Close it when done.
type Document interface {
	// Sheets returns the document's sheets in workbook order.
	Sheets() []Sheet

	// Close releases the underlying file handle.
	Close() error
}

// Sheet is one page of a document, holding zero or more tables.
type Sheet interface {
	// Name returns the sheet name as stored in the workbook.
	Name() string

	// Tables returns the sheet's tables in definition order. A sheet with
	// no defined tables but non-empty content exposes that content as one
	// implicit table; an empty sheet has zero tables.
	Tables() ([]Table, error)
}

// Table is a two-dimensional grid of cells within a sheet.
type Table interface {
	// Name returns the table's defined name, or "(implicit)".
	Name() string

	// Rows returns a fresh iterator over the table's rows, top to bottom.
	// Each call restarts iteration from the first row.
	Rows() (RowIter, error)
}

// RowIter walks a table's rows lazily. The usage pattern follows the
// backing library's streaming reader:
//
//	rows, _ := table.Rows()
//	defer rows.Close()
//	for rows.Next() {
//		cells, err := rows.Columns()
//		...
//	}
type RowIter interface {
	// Next advances to the next row, reporting whether one exists.
	Next() bool

	// Columns returns the current row's cell values left to right.
	// Absent cells are the empty string.
	Columns() ([]string, error)

	// Close releases iterator resources.
	Close() error
}

// Opener produces a Document from a file path.
type Opener func(path string) (Document, error)

// Describe walks every sheet and table of doc and returns a structural
// summary with row and column counts.
func Describe(doc Document, path string) (types.DocumentInfo, error) {
	info := types.DocumentInfo{Path: path}

	for _, sheet := range doc.Sheets() {
		si := types.SheetInfo{Name: sheet.Name()}

		tables, err := sheet.Tables()
		if err != nil {
			return types.DocumentInfo{}, fmt.Errorf("reading tables of sheet %q: %w", sheet.Name(), err)
		}

		for _, table := range tables {
			ti, err := describeTable(table)
			if err != nil {
				return types.DocumentInfo{}, fmt.Errorf("reading table %q of sheet %q: %w", table.Name(), sheet.Name(), err)
			}
			si.Tables = append(si.Tables, ti)
		}

		info.Sheets = append(info.Sheets, si)
	}

	return info, nil
}

func describeTable(table Table) (types.TableInfo, error) {
	ti := types.TableInfo{Name: table.Name()}
	if rt, ok := table.(interface{ Range() string }); ok {
		ti.Range = rt.Range()
	}

	rows, err := table.Rows()
	if err != nil {
		return types.TableInfo{}, err
	}
	defer rows.Close()

	for rows.Next() {
		cells, err := rows.Columns()
		if err != nil {
			return types.TableInfo{}, err
		}
		ti.Rows++
		if len(cells) > ti.Columns {
			ti.Columns = len(cells)
		}
	}

	return ti, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns the first table of the first sheet of a spreadsheet
// workbook into a UTF-8, RFC 4180 CSV file. Output rows mirror the source
// table exactly: same order, same cells, absent values as empty strings.
package convert

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/sheetconv/internal/document"
)

// Convert opens the workbook at inputPath, takes the first table of the
// first sheet, and writes it as CSV to outputPath. The CSV is written to a
// temporary file in the destination directory and renamed into place on
// success, so a failure at any point leaves a pre-existing file at
// outputPath untouched.
func Convert(open document.Opener, inputPath, outputPath string) error {
	doc, err := open(inputPath)
	if err != nil {
		return &Error{Kind: KindOpen, Err: fmt.Errorf("opening %s: %w", inputPath, err)}
	}
	defer doc.Close()

	sheets := doc.Sheets()
	if len(sheets) == 0 {
		return &Error{Kind: KindNoSheets, Err: ErrNoSheets}
	}

	tables, err := sheets[0].Tables()
	if err != nil {
		return &Error{Kind: KindRead, Err: fmt.Errorf("reading sheet %q: %w", sheets[0].Name(), err)}
	}
	if len(tables) == 0 {
		return &Error{Kind: KindNoTables, Err: ErrNoTables}
	}

	return writeCSV(tables[0], outputPath)
}

func writeCSV(table document.Table, outputPath string) error {
	rows, err := table.Rows()
	if err != nil {
		return &Error{Kind: KindRead, Err: fmt.Errorf("reading table %q: %w", table.Name(), err)}
	}
	defer rows.Close()

	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outputPath)+".tmp-*")
	if err != nil {
		return &Error{Kind: KindWrite, Err: fmt.Errorf("creating temporary file in %s: %w", dir, err)}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := csv.NewWriter(tmp)
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return &Error{Kind: KindRead, Err: fmt.Errorf("reading table %q: %w", table.Name(), err)}
		}
		if err := w.Write(record); err != nil {
			return &Error{Kind: KindWrite, Err: fmt.Errorf("writing record: %w", err)}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &Error{Kind: KindWrite, Err: fmt.Errorf("flushing %s: %w", tmpName, err)}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Kind: KindWrite, Err: fmt.Errorf("closing %s: %w", tmpName, err)}
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		return &Error{Kind: KindWrite, Err: fmt.Errorf("moving output into place: %w", err)}
	}
	committed = true
	return nil
}

// OutputPath derives the CSV output path for input: the input filename with
// a .csv extension, placed in outputDir when set, otherwise alongside the
// input.
func OutputPath(input, outputDir string) string {
	base := filepath.Base(input)
	base = base[:len(base)-len(filepath.Ext(base))] + ".csv"
	if outputDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outputDir, base)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/sheetconv/internal/document"
	"github.com/pdiddy/sheetconv/pkg/types"
)

// workbookExts lists the input file extensions batch conversion picks up.
var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// Journal records conversion outcomes and reports inputs unchanged since
// their last successful conversion. A nil Journal disables skipping.
type Journal interface {
	// Unchanged reports whether input was already converted successfully
	// with the same source modification time.
	Unchanged(inputPath string, modTime time.Time) (bool, error)

	// Record stores the outcome of converting inputPath.
	Record(inputPath, outputPath string, modTime time.Time, status types.ConversionStatus) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of workbooks processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any workbook failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ListWorkbooks returns the workbook files in dir, sorted by name.
func ListWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if workbookExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ConvertBatch converts each input workbook to a CSV in outputDir, printing
// per-file status to w and returning a summary. Inputs the journal reports
// as unchanged are skipped unless force is set.
func ConvertBatch(open document.Opener, inputs []string, outputDir string, j Journal, force bool, w io.Writer) BatchResult {
	var result BatchResult

	for _, input := range inputs {
		base := filepath.Base(input)
		outputPath := OutputPath(input, outputDir)

		info, err := os.Stat(input)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			result.Failed++
			continue
		}
		modTime := info.ModTime()

		if !force && j != nil {
			unchanged, err := j.Unchanged(input, modTime)
			if err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
				result.Failed++
				continue
			}
			if unchanged {
				fmt.Fprintf(w, "skipped: %s (unchanged)\n", base)
				result.Skipped++
				continue
			}
		}

		if err := Convert(open, input, outputPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			result.Failed++
			recordOutcome(j, w, input, outputPath, modTime, types.ConversionFailed)
			continue
		}

		fmt.Fprintf(w, "converted: %s -> %s\n", base, outputPath)
		result.Converted++
		recordOutcome(j, w, input, outputPath, modTime, types.ConversionDone)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

func recordOutcome(j Journal, w io.Writer, input, output string, modTime time.Time, status types.ConversionStatus) {
	if j == nil {
		return
	}
	if err := j.Record(input, output, modTime, status); err != nil {
		fmt.Fprintf(w, "warning: journal update for %s failed: %v\n", filepath.Base(input), err)
	}
}

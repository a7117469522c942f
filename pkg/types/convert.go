// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one workbook to CSV.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// TableInfo describes one table within a sheet.
type TableInfo struct {
	// Name is the table's defined name, or "(implicit)" for a sheet's
	// bare used range.
	Name string `json:"name" yaml:"name"`

	// Range is the A1-style cell range the table covers. Empty for an
	// implicit table, whose extent is the sheet's content.
	Range string `json:"range,omitempty" yaml:"range,omitempty"`

	// Rows is the number of rows in the table.
	Rows int `json:"rows" yaml:"rows"`

	// Columns is the width of the widest row.
	Columns int `json:"columns" yaml:"columns"`
}

// SheetInfo describes one sheet within a document.
type SheetInfo struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name" yaml:"name"`

	// Tables lists the sheet's tables in definition order.
	Tables []TableInfo `json:"tables" yaml:"tables"`
}

// DocumentInfo describes the structure of an opened document.
type DocumentInfo struct {
	// Path is the filesystem path the document was opened from.
	Path string `json:"path" yaml:"path"`

	// Sheets lists the document's sheets in workbook order.
	Sheets []SheetInfo `json:"sheets" yaml:"sheets"`
}

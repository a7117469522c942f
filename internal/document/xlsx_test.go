// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with the given Sheet1 cell values and
// returns its path.
func writeWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, value))
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// collectRows drains a table's row iterator.
func collectRows(t *testing.T, table Table) [][]string {
	t.Helper()
	rows, err := table.Rows()
	require.NoError(t, err)
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		cells, err := rows.Columns()
		require.NoError(t, err)
		out = append(out, cells)
	}
	return out
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}

func TestImplicitTable(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "Name", "B1": "Age",
		"A2": "Kim", "B2": 30,
		"A3": "Lee", "B3": 2.5,
	})

	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	sheets := doc.Sheets()
	require.Len(t, sheets, 1)
	assert.Equal(t, "Sheet1", sheets[0].Name())

	tables, err := sheets[0].Tables()
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "(implicit)", tables[0].Name())

	got := collectRows(t, tables[0])
	want := [][]string{
		{"Name", "Age"},
		{"Kim", "30"},
		{"Lee", "2.5"},
	}
	assert.Equal(t, want, got)
}

func TestEmptySheetHasNoTables(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	sheets := doc.Sheets()
	require.Len(t, sheets, 1)

	tables, err := sheets[0].Tables()
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestDefinedTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	for ref, value := range map[string]interface{}{
		"A1": "Name", "B1": "Age",
		"A2": "Kim", "B2": 30,
		"A3": "Lee",
		"D5": "noise outside the table",
	} {
		require.NoError(t, f.SetCellValue("Sheet1", ref, value))
	}
	require.NoError(t, f.AddTable("Sheet1", &excelize.Table{Range: "A1:B3", Name: "People"}))
	path := filepath.Join(t.TempDir(), "table.xlsx")
	require.NoError(t, f.SaveAs(path))

	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	tables, err := doc.Sheets()[0].Tables()
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "People", tables[0].Name())

	// Rows are clipped to the declared range: short rows padded to the
	// table width, content outside the range excluded.
	got := collectRows(t, tables[0])
	want := [][]string{
		{"Name", "Age"},
		{"Kim", "30"},
		{"Lee", ""},
	}
	assert.Equal(t, want, got)
}

func TestDefinedTable_RangeBeyondContent(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Header"))
	require.NoError(t, f.AddTable("Sheet1", &excelize.Table{Range: "A1:B4", Name: "Sparse"}))
	path := filepath.Join(t.TempDir(), "sparse.xlsx")
	require.NoError(t, f.SaveAs(path))

	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	tables, err := doc.Sheets()[0].Tables()
	require.NoError(t, err)
	require.Len(t, tables, 1)

	// Declared rows missing from the sheet come back as empty rows so the
	// grid stays 4x2.
	got := collectRows(t, tables[0])
	require.Len(t, got, 4)
	for _, row := range got {
		assert.Len(t, row, 2)
	}
	assert.Equal(t, "Header", got[0][0])
}

func TestRowsRestartable(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{"A1": "first", "A2": "second"})

	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	tables, err := doc.Sheets()[0].Tables()
	require.NoError(t, err)
	require.Len(t, tables, 1)

	first := collectRows(t, tables[0])
	second := collectRows(t, tables[0])
	assert.Equal(t, first, second)
}

func TestDescribe(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "a", "B1": "b", "C1": "c",
		"A2": "d",
	})

	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	info, err := Describe(doc, path)
	require.NoError(t, err)

	assert.Equal(t, path, info.Path)
	require.Len(t, info.Sheets, 1)
	require.Len(t, info.Sheets[0].Tables, 1)

	ti := info.Sheets[0].Tables[0]
	assert.Equal(t, "(implicit)", ti.Name)
	assert.Empty(t, ti.Range)
	assert.Equal(t, 2, ti.Rows)
	assert.Equal(t, 3, ti.Columns)
}

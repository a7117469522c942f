package types

// BatchConfig holds settings for batch conversion.
type BatchConfig struct {
	// InputDir is the directory scanned for workbooks.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory CSV files (and the journal) are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Journal enables the SQLite conversion journal so unchanged inputs
	// are skipped on subsequent runs.
	Journal bool `json:"journal" yaml:"journal"`

	// Force reconverts every workbook regardless of journal state.
	Force bool `json:"force" yaml:"force"`
}

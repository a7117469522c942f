// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sheetconv/internal/convert"
	"github.com/pdiddy/sheetconv/internal/document"
	"github.com/pdiddy/sheetconv/internal/journal"
	"github.com/pdiddy/sheetconv/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every workbook in a directory to CSV",
	Long: `Batch converts all .xlsx and .xlsm workbooks in the input directory,
writing one CSV per workbook to the output directory. A SQLite journal in
the output directory records each outcome; inputs unchanged since their
last successful conversion are skipped unless --force is given.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := batchConfig(cmd)

	inputs, err := convert.ListWorkbooks(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fmt.Printf("No workbooks found in %s\n", cfg.InputDir)
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	var j convert.Journal
	if cfg.Journal {
		store, err := journal.Open(cfg.OutputDir)
		if err != nil {
			return err
		}
		defer store.Close()
		j = store
	}

	result := convert.ConvertBatch(document.Open, inputs, cfg.OutputDir, j, cfg.Force, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d workbook(s) failed conversion", result.Failed)
	}
	return nil
}

func batchConfig(cmd *cobra.Command) types.BatchConfig {
	inputDir, _ := cmd.Flags().GetString("input-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output-dir")
	}
	if outputDir == "" {
		outputDir = inputDir
	}
	force, _ := cmd.Flags().GetBool("force")

	return types.BatchConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Journal:   viper.GetBool("journal"),
		Force:     force,
	}
}

func init() {
	batchCmd.Flags().String("input-dir", ".", "directory scanned for workbooks")
	batchCmd.Flags().String("output-dir", "", "directory for CSV output (default: input directory)")
	batchCmd.Flags().Bool("force", false, "reconvert workbooks the journal reports as unchanged")

	rootCmd.AddCommand(batchCmd)
}

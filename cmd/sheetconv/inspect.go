// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sheetconv/internal/document"
	"github.com/pdiddy/sheetconv/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [workbook]",
	Short: "List a workbook's sheets and tables",
	Long: `Inspect opens a workbook and lists its sheets and tables with row and
column counts, without writing any CSV. Output is a text table by default;
use --format yaml or --format json for machine-readable output.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	doc, err := document.Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	info, err := document.Describe(doc, args[0])
	if err != nil {
		return err
	}

	switch format {
	case "text", "":
		formatInspectText(info)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(info)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func formatInspectText(info types.DocumentInfo) {
	fmt.Printf("%s\n\n", info.Path)
	fmt.Printf("%-20s  %-20s  %-12s  %6s  %7s\n", "Sheet", "Table", "Range", "Rows", "Columns")

	for _, sheet := range info.Sheets {
		if len(sheet.Tables) == 0 {
			fmt.Printf("%-20s  %-20s\n", sheet.Name, "(no tables)")
			continue
		}
		for _, table := range sheet.Tables {
			fmt.Printf("%-20s  %-20s  %-12s  %6d  %7d\n",
				sheet.Name, table.Name, table.Range, table.Rows, table.Columns)
		}
	}
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(inspectCmd)
}

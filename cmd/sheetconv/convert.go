package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sheetconv/internal/convert"
	"github.com/pdiddy/sheetconv/internal/document"
)

var convertCmd = &cobra.Command{
	Use:   "convert [workbook]",
	Short: "Convert one workbook's first table to CSV",
	Long: `Convert opens a workbook, takes the first table of the first sheet, and
writes it as a UTF-8 CSV file with RFC 4180 quoting. Absent cells become
empty fields; rows and columns keep their source order.

The output is written to a temporary file and renamed into place on success,
so a failed conversion never leaves a partial or clobbered file behind.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = convert.OutputPath(input, viper.GetString("output-dir"))
	}

	if err := convert.Convert(document.Open, input, output); err != nil {
		return err
	}

	fmt.Printf("Converted to %s\n", output)
	return nil
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output CSV path (default: input name with .csv extension)")

	rootCmd.AddCommand(convertCmd)
}

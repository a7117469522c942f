// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sheetconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sheetconv CLI.
var rootCmd = &cobra.Command{
	Use:   "sheetconv",
	Short: "Convert spreadsheet workbooks to CSV",
	Long: `sheetconv converts spreadsheet workbooks to comma-separated-values files.
The convert command writes the first table of the first sheet of one workbook
as UTF-8, RFC 4180 CSV; batch converts a whole directory with a journal that
skips unchanged inputs; inspect lists a workbook's sheets and tables.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sheetconv.yaml or ~/.config/sheetconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sheetconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sheetconv"))
		}
	}

	viper.SetEnvPrefix("SHEETCONV")
	viper.AutomaticEnv()

	viper.SetDefault("journal", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

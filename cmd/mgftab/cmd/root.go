// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/table"
)

var (
	// Flags for convert command
	inputPath  string
	outputFile string
	topN       int
	minRelPct  float64

	// Flags for plot command
	plotBatch string
	plotIndex int
)

var rootCmd = &cobra.Command{
	Use:   "mgftab",
	Short: "mgftab - MGF fragment table converter",
	Long: `mgftab converts directories of MGF peak-list files into per-spectrum
fragment summary tables.

Each spectrum becomes one table row: batch name, raw scan identifier,
parsed scan number, precursor mass, and its most significant fragment
peaks encoded as semicolon-separated 'mz:rel%' tokens. Output formats:
CSV, TSV, and SQLite.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(plotCmd)

	// Convert command flags
	convertCmd.Flags().StringVarP(&inputPath, "in", "i", "", "Input directory or .mgf file (required)")
	convertCmd.Flags().StringVarP(&outputFile, "out", "o", "-", "Output file: .csv, .tsv, .db, .sqlite, or '-' for CSV on stdout")
	convertCmd.Flags().IntVar(&topN, "top-n", table.DefaultTopN, "Keep at most N fragments per spectrum")
	convertCmd.Flags().Float64Var(&minRelPct, "min-rel", table.DefaultMinRelPct, "Minimum relative intensity as % of base peak (inclusive)")

	convertCmd.MarkFlagRequired("in")

	// Plot command flags
	plotCmd.Flags().StringVarP(&inputPath, "in", "i", "", "Input directory or .mgf file (required)")
	plotCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output PNG file (required)")
	plotCmd.Flags().StringVar(&plotBatch, "batch", "", "Batch to plot (default: first batch)")
	plotCmd.Flags().IntVar(&plotIndex, "index", 0, "Spectrum index within the batch")

	plotCmd.MarkFlagRequired("in")
	plotCmd.MarkFlagRequired("out")
}

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/loader"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/table"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/writer/sqlite"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert MGF files to a fragment summary table",
	Long: `Convert a directory of MGF files (or a single file) to a fragment
summary table with one row per spectrum.

The output format is detected from the output file extension: .csv,
.tsv, or .db/.sqlite. With --out '-' the table is written as CSV to
stdout.

Examples:
  # Summarize a directory to CSV
  mgftab convert --in ./spectra --out summary.csv

  # Tighter selection, SQLite output
  mgftab convert --in ./spectra --out summary.db --top-n 10 --min-rel 5`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	lib, err := loader.LoadPath(inputPath)
	if err != nil {
		return err
	}

	opts := table.Options{TopN: topN, MinRelPct: minRelPct}
	rows := table.Build(lib, opts)

	fmt.Fprintf(os.Stderr, "Loaded %d batches, %d spectra\n", lib.NumBatches(), lib.NumSpectra())

	if outputFile == "-" || outputFile == "" {
		return writeDelimited(rows, os.Stdout, ',')
	}

	ext := strings.ToLower(filepath.Ext(outputFile))
	switch ext {
	case ".csv":
		return writeDelimitedFile(rows, outputFile, ',')
	case ".tsv":
		return writeDelimitedFile(rows, outputFile, '\t')
	case ".db", ".sqlite":
		return writeDatabase(rows, outputFile)
	default:
		return fmt.Errorf("cannot detect output format from extension '%s', use .csv, .tsv, .db or .sqlite", ext)
	}
}

func writeDelimitedFile(rows []table.Row, path string, delim rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := writeDelimited(rows, f, delim); err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), path)
	return nil
}

func writeDelimited(rows []table.Row, out io.Writer, delim rune) error {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delim
		return gocsv.NewSafeCSVWriter(w)
	})

	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func writeDatabase(rows []table.Row, path string) error {
	w, err := sqlite.NewWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}
	defer w.Close()

	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}

	info := sqlite.RunInfo{Source: inputPath, TopN: topN, MinRelPct: minRelPct}
	if err := w.Finalize(info); err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), path)
	return nil
}

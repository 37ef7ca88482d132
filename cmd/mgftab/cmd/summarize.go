package cmd

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/loader"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/table"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [path]",
	Short: "Summarize MGF directory contents",
	Long: `Print per-batch statistics for a directory of MGF files (or a single
file): spectrum count, peaks per spectrum, and precursor mass range.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	lib, err := loader.LoadPath(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%-24s\t%s\t%s\t%s\t%s\n", "batch", "spectra", "peaks/spectrum", "precursor min", "precursor max")

	for _, batch := range lib.BatchNames() {
		spectra := lib.Batch(batch)

		peakCounts := make([]float64, 0, len(spectra))
		precursors := []float64{}
		for _, spec := range spectra {
			peakCounts = append(peakCounts, float64(spec.PeakCount()))
			if pm := table.ExtractPrecursorMZ(spec.Params); pm.Valid {
				precursors = append(precursors, pm.Float64)
			}
		}

		fmt.Printf("%-24s\t%d\t%s\t%s\t%s\n",
			batch,
			len(spectra),
			meanStddev(peakCounts),
			extremum(precursors, stats.Min),
			extremum(precursors, stats.Max),
		)
	}

	fmt.Printf("\nTotal: %d batches, %d spectra\n", lib.NumBatches(), lib.NumSpectra())
	return nil
}

func meanStddev(data []float64) string {
	mean, err := stats.Mean(data)
	if err != nil {
		return "N/A"
	}
	sd, err := stats.StandardDeviation(data)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f ± %.1f", mean, sd)
}

func extremum(data []float64, fn func(stats.Float64Data) (float64, error)) string {
	v, err := fn(data)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", v)
}

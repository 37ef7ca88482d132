package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/loader"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/table"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate MGF input structure",
	Long: `Parse a directory of MGF files (or a single file) and report what a
conversion would see: spectrum counts and spectra that would yield no
fragments or missing identifying fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	lib, err := loader.LoadPath(args[0])
	if err != nil {
		return err
	}

	totalDegenerate := 0
	for _, batch := range lib.BatchNames() {
		spectra := lib.Batch(batch)

		degenerate := 0
		noScan := 0
		noPrecursor := 0
		for _, spec := range spectra {
			if len(spec.MZ) != len(spec.Intensity) {
				fmt.Fprintf(os.Stderr, "Warning: %s: spectrum with mismatched peak arrays (%d m/z, %d intensity)\n",
					spec.SourceFile, len(spec.MZ), len(spec.Intensity))
			}
			if _, ok := spec.BasePeak(); !ok {
				degenerate++
			}
			if scans, _ := table.ExtractScans(spec.Params); !scans.Valid {
				noScan++
			}
			if !table.ExtractPrecursorMZ(spec.Params).Valid {
				noPrecursor++
			}
		}
		totalDegenerate += degenerate

		fmt.Printf("%s: %d spectra", batch, len(spectra))
		if degenerate > 0 {
			fmt.Printf(", %d without usable peaks", degenerate)
		}
		if noScan > 0 {
			fmt.Printf(", %d without scan identifier", noScan)
		}
		if noPrecursor > 0 {
			fmt.Printf(", %d without precursor mass", noPrecursor)
		}
		fmt.Println()
	}

	if lib.NumBatches() == 0 {
		fmt.Println("No MGF files found")
		return nil
	}

	fmt.Printf("\nOK: %d batches, %d spectra (%d would yield empty fragment strings)\n",
		lib.NumBatches(), lib.NumSpectra(), totalDegenerate)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/core"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/loader"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/table"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render one spectrum as a PNG stick plot",
	Long: `Render a single spectrum's peaks as a PNG stick plot.

Examples:
  # First spectrum of the first batch
  mgftab plot --in ./spectra --out spectrum.png

  # Third spectrum of a named batch
  mgftab plot --in ./spectra --batch sample --index 2 --out spectrum.png`,
	RunE: runPlot,
}

func runPlot(cmd *cobra.Command, args []string) error {
	lib, err := loader.LoadPath(inputPath)
	if err != nil {
		return err
	}

	batch := plotBatch
	if batch == "" {
		names := lib.BatchNames()
		if len(names) == 0 {
			return fmt.Errorf("no MGF files found in %s", inputPath)
		}
		batch = names[0]
	}

	spectra := lib.Batch(batch)
	if spectra == nil {
		return fmt.Errorf("batch %q not found", batch)
	}
	if plotIndex < 0 || plotIndex >= len(spectra) {
		return fmt.Errorf("index %d out of range, batch %q has %d spectra", plotIndex, batch, len(spectra))
	}

	spec := spectra[plotIndex]
	if spec.PeakCount() == 0 {
		return fmt.Errorf("spectrum %d of batch %q has no peaks to plot", plotIndex, batch)
	}

	xs, ys := stickSeries(spec)

	graph := chart.Chart{
		Title: plotTitle(batch, spec),
		XAxis: chart.XAxis{
			Name: "m/z",
		},
		YAxis: chart.YAxis{
			Name: "intensity",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Printf("Wrote %s\n", outputFile)
	return nil
}

// stickSeries turns peaks into a line series that draws as vertical
// sticks: each peak contributes a zero, the apex, and a zero at the
// same m/z.
func stickSeries(spec *core.Spectrum) ([]float64, []float64) {
	n := spec.PeakCount()
	xs := make([]float64, 0, 3*n)
	ys := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		xs = append(xs, spec.MZ[i], spec.MZ[i], spec.MZ[i])
		ys = append(ys, 0, spec.Intensity[i], 0)
	}
	return xs, ys
}

func plotTitle(batch string, spec *core.Spectrum) string {
	title := batch
	if scans, _ := table.ExtractScans(spec.Params); scans.Valid {
		title += " scan " + scans.String
	}
	if pm := table.ExtractPrecursorMZ(spec.Params); pm.Valid {
		title += fmt.Sprintf(" (precursor %.4f)", pm.Float64)
	}
	return title
}

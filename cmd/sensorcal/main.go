package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ja7ad/sensorcal/pkg/calibration"
	"github.com/ja7ad/sensorcal/pkg/report"
)

type opts struct {
	// output selection
	selectOutput int

	// execution mode
	iterations int // > 0 enables Monte Carlo with that many draws
	resolution int
	seed       uint64

	// input ranges as "low..high" (Volt)
	vrh     string
	vt      string
	vsupply string

	// outputs
	timing     bool
	bench      bool
	jsonOut    bool
	csvPath    string
	sampleDump string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "sensorcal",
		Short: "SHT4x analog sensor calibration with uncertainty propagation",
		Long: `sensorcal converts the SHT4x sensor's three analog voltages (humidity
channel, temperature channel, supply) into calibrated relative humidity and
temperature, modelling each voltage as a uniform distribution and carrying
the measurement uncertainty through the datasheet equations.

Two execution modes:
  - native (default): a single pass of distributional arithmetic
  - Monte Carlo (-M N): N independent scalar draws, aggregated empirically

Examples:
  sensorcal
  sensorcal -S 0 -M 10000 -T
  sensorcal -S 1 -b
  sensorcal -j -o distributions.csv --vsupply 4.9..5.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(o)
		},
	}

	root.Flags().IntVarP(&o.selectOutput, "select-output", "S", calibration.NumOutputs,
		fmt.Sprintf("0-indexed output to compute; %d computes all outputs", calibration.NumOutputs))
	root.Flags().IntVarP(&o.iterations, "multiple-executions", "M", 0,
		"run N Monte Carlo iterations instead of native distributional arithmetic")
	root.Flags().IntVar(&o.resolution, "resolution", 0, "native-mode ensemble resolution (default 4096)")
	root.Flags().Uint64Var(&o.seed, "seed", 0, "random seed (0 = derive from clock)")

	root.Flags().StringVar(&o.vrh, "vrh", "", "humidity-channel voltage range as low..high (default 2.3..2.7)")
	root.Flags().StringVar(&o.vt, "vt", "", "temperature-channel voltage range as low..high (default 2.3..2.7)")
	root.Flags().StringVar(&o.vsupply, "vsupply", "", "supply voltage range as low..high (default 4.8..5.4)")

	root.Flags().BoolVarP(&o.timing, "time", "T", false, "print kernel execution time")
	root.Flags().BoolVarP(&o.bench, "benchmarking", "b", false, "print a single '<value> <microseconds>' line")
	root.Flags().BoolVarP(&o.jsonOut, "json", "j", false, "print output in JSON format")
	root.Flags().StringVarP(&o.csvPath, "output", "o", "", "write output distributions to this CSV file")
	root.Flags().StringVar(&o.sampleDump, "sample-dump", "data.out", "Monte Carlo raw-sample dump file")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts) error {
	// Every flag-combination check happens here, before any sampling or
	// calibration work.
	if o.selectOutput < 0 || o.selectOutput > calibration.NumOutputs {
		return fmt.Errorf("select-output %d out of range [0, %d]", o.selectOutput, calibration.NumOutputs)
	}
	output := calibration.OutputChannel(o.selectOutput)
	monteCarlo := o.iterations > 0

	if output == calibration.AllOutputs && (monteCarlo || o.bench) {
		return fmt.Errorf("select a single output (-S) when in benchmarking or Monte Carlo mode")
	}
	if o.csvPath != "" && monteCarlo {
		return fmt.Errorf("writing output distributions to a file is not supported in Monte Carlo mode")
	}

	cfg := calibration.Config{
		Output:     output,
		MonteCarlo: monteCarlo,
		Iterations: o.iterations,
		Resolution: o.resolution,
		Seed:       o.seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	var err error
	if cfg.Vrh, err = parseRange(o.vrh); err != nil {
		return fmt.Errorf("vrh: %w", err)
	}
	if cfg.Vt, err = parseRange(o.vt); err != nil {
		return fmt.Errorf("vt: %w", err)
	}
	if cfg.Vsupply, err = parseRange(o.vsupply); err != nil {
		return fmt.Errorf("vsupply: %w", err)
	}

	runner, err := calibration.NewRunner(&cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := runner.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if o.bench {
		// One line for cross-run comparison tooling.
		fmt.Printf("%f %d\n", out.Mean, elapsed.Microseconds())
	} else {
		if o.jsonOut {
			if err := report.WriteJSON(os.Stdout, variables(out, output, monteCarlo)); err != nil {
				return err
			}
		} else {
			for _, ch := range output.Selected() {
				if err := report.Tails(os.Stdout, out.Values[ch], ch.Label(), ch.Unit()); err != nil {
					return err
				}
			}
		}

		if o.timing {
			fmt.Printf("\nCPU time used: %f seconds\n", elapsed.Seconds())
		}

		if o.csvPath != "" {
			if err := writeCSVFile(o.csvPath, out, output); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
	}

	if monteCarlo {
		if err := writeSampleDump(o.sampleDump, out.Samples, uint64(elapsed.Microseconds())); err != nil {
			return fmt.Errorf("write sample dump: %w", err)
		}
	}

	return nil
}

// variables shapes the run outcome into structured records: one per channel
// in native mode, a single record carrying the full sample sequence in
// Monte Carlo mode.
func variables(out *calibration.Outcome, output calibration.OutputChannel, monteCarlo bool) []report.Variable {
	var vars []report.Variable
	for _, ch := range output.Selected() {
		values := out.Values[ch].Points()
		if monteCarlo {
			values = out.Samples
		}
		vars = append(vars, report.Variable{
			Symbol:      ch.Symbol(),
			Description: ch.Label(),
			Values:      values,
			Size:        len(values),
		})
	}
	return vars
}

func writeCSVFile(path string, out *calibration.Outcome, output calibration.OutputChannel) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var names []string
	var columns [][]float64
	for _, ch := range output.Selected() {
		names = append(names, ch.Label())
		columns = append(columns, out.Values[ch].Points())
	}
	return report.WriteCSV(f, names, columns)
}

func writeSampleDump(path string, samples []float64, elapsedMicros uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteSamples(f, samples, elapsedMicros)
}

// parseRange parses "low..high" into a Range. An empty string keeps the
// configured default (zero Range).
func parseRange(s string) (calibration.Range, error) {
	if s == "" {
		return calibration.Range{}, nil
	}
	low, high, ok := strings.Cut(s, "..")
	if !ok {
		return calibration.Range{}, fmt.Errorf("expected low..high, got %q", s)
	}
	l, err := strconv.ParseFloat(low, 64)
	if err != nil {
		return calibration.Range{}, fmt.Errorf("bad low bound %q: %w", low, err)
	}
	h, err := strconv.ParseFloat(high, 64)
	if err != nil {
		return calibration.Range{}, fmt.Errorf("bad high bound %q: %w", high, err)
	}
	return calibration.Range{Low: l, High: h}, nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bodaroute/bodaroute/internal/experiment"
	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Benchmark the routing variants against each other",
	Long: `Runs every algorithm variant repeatedly over a set of cases,
writes per-variant timing statistics to csv or parquet (locally or to
cloud storage) and prints a comparison table against the plain Dijkstra
baseline.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer rt.Close()

		rawCases, _ := cmd.Flags().GetStringSlice("cases")
		cases, err := parseCases(rawCases)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		comparator := experiment.NewComparator(rt.engine, rt.store, viper.GetString("vehicle_type"), rt.config.ExperimentRuns)
		results, err := comparator.Run(cases)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Experiment failed: %v\n", err)
			os.Exit(1)
		}

		writer, err := experiment.NewResultsWriter(rt.config, results[0].RunID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating results writer: %v\n", err)
			os.Exit(1)
		}
		if err := writer.WriteResults(results); err != nil {
			writer.Close()
			fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
			os.Exit(1)
		}
		if err := writer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing results writer: %v\n", err)
			os.Exit(1)
		}

		experiment.WriteComparisonTable(os.Stdout, results)
	},
}

// parseCases turns "origin:destination[:label]" strings into cases.
func parseCases(raw []string) ([]experiment.Case, error) {
	cases := make([]experiment.Case, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("malformed case %q, want origin:destination[:label]", r)
		}
		c := experiment.Case{Origin: parts[0], Destination: parts[1]}
		if len(parts) == 3 {
			c.Label = parts[2]
		} else {
			c.Label = fmt.Sprintf("%s->%s", parts[0], parts[1])
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func init() {
	experimentCmd.Flags().StringSlice("cases", nil, "Cases as origin:destination[:label], comma separated")
	experimentCmd.Flags().Int("runs", 100, "Repetitions per variant per case")
	experimentCmd.Flags().String("vehicle", models.VehicleMotorcycle, "Vehicle type for all cases")
	experimentCmd.Flags().String("output-format", "csv", "Results format (csv or parquet)")
	experimentCmd.Flags().String("output-destination", "local", "Where parquet results go (local or s3)")
	experimentCmd.MarkFlagRequired("cases")

	viper.BindPFlag("experiment_runs", experimentCmd.Flags().Lookup("runs"))
	viper.BindPFlag("vehicle_type", experimentCmd.Flags().Lookup("vehicle"))
	viper.BindPFlag("output_format", experimentCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output_destination", experimentCmd.Flags().Lookup("output-destination"))

	rootCmd.AddCommand(experimentCmd)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rockscore/rockscore/pkg/cluster"
)

func newClusterCmd() *cobra.Command {
	var (
		inputPath  string
		tolerance  float64
		minMembers int
		metric     string
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Form orientation families without scoring",
		Long:  `Groups survey records into discontinuity families by dip direction and dip, and prints the partition.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svy, _, err := readSurvey(inputPath)
			if err != nil {
				return err
			}

			engine := cluster.NewEngine(cluster.Params{
				ToleranceDeg: tolerance,
				MinMembers:   minMembers,
				Metric:       cluster.Metric(metric),
			})
			result := engine.Cluster(svy.Records())

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			for _, fam := range result.Families {
				fmt.Printf("F%d: %d members, mean %03.0f°/%02.0f° (±%.0f°)\n",
					fam.ID, len(fam.Members), fam.Mean.DipDirection, fam.Mean.Dip, fam.ToleranceDeg)
				for _, d := range fam.Members {
					fmt.Printf("  row %d (%s) %03.0f°/%02.0f° %s\n",
						d.Row, d.StationID, d.DipDirection, d.Dip, d.Type)
				}
			}
			if len(result.Unclustered) > 0 {
				fmt.Printf("Unclustered: %d records\n", len(result.Unclustered))
				for _, d := range result.Unclustered {
					fmt.Printf("  row %d (%s) %03.0f°/%02.0f°\n", d.Row, d.StationID, d.DipDirection, d.Dip)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Survey CSV file (required)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 15, "Clustering tolerance in degrees")
	cmd.Flags().IntVar(&minMembers, "min-members", 3, "Minimum family size")
	cmd.Flags().StringVar(&metric, "metric", "two-threshold", "Clustering metric: two-threshold or combined")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

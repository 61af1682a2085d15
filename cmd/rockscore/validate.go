package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rockscore/rockscore/pkg/rmr"
)

func newValidateCmd() *cobra.Command {
	var inputPath, codesPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a survey CSV without scoring",
		Long:  `Parses a survey CSV, checks every code against the dictionary, and reports every rejected row. Exits non-zero if any row fails validation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svy, problems, err := readSurvey(inputPath)
			if err != nil {
				return err
			}

			dict, err := loadDictionary(codesPath)
			if err != nil {
				return err
			}
			problems = append(problems, rmr.ScreenSurvey(svy, dict)...)

			fmt.Printf("%d stations, %d records valid\n", len(svy.Stations), svy.RecordCount())
			for _, st := range svy.Stations {
				fmt.Printf("  %s: %d records, traverse %.2f m\n", st.ID, len(st.Discontinuities), st.TraverseM)
			}

			if len(problems) > 0 {
				fmt.Fprintf(os.Stderr, "%d rows rejected:\n", len(problems))
				for _, p := range problems {
					fmt.Fprintf(os.Stderr, "  row %d: %v\n", p.Row, p.Err)
				}
				return fmt.Errorf("%d invalid rows", len(problems))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Survey CSV file (required)")
	cmd.Flags().StringVar(&codesPath, "codes", "", "Code dictionary YAML (default: built-in tables)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

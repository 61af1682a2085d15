package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rockscore/rockscore/pkg/analysis"
	"github.com/rockscore/rockscore/pkg/cluster"
	"github.com/rockscore/rockscore/pkg/config"
	"github.com/rockscore/rockscore/pkg/rmr"
	"github.com/rockscore/rockscore/pkg/surface"
	"github.com/rockscore/rockscore/pkg/survey"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		inputPath  string
		codesPath  string
		configPath string
		ucsClass   string
		penalty    float64
		tolerance  float64
		minMembers int
		metric     string
		outputFmt  string
		savePath   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Full RMR14 analysis pipeline",
		Long:  `Parses a survey CSV, scores every station, forms orientation families, scores them, and renders the report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}

			// Flags that were set explicitly win over the config file.
			f := cmd.Flags()
			if !f.Changed("ucs") {
				ucsClass = cfg.Analysis.UCSClass
			}
			if !f.Changed("orientation-penalty") {
				penalty = cfg.Analysis.OrientationPenalty
			}
			if !f.Changed("tolerance") {
				tolerance = cfg.Clustering.ToleranceDeg
			}
			if !f.Changed("min-members") {
				minMembers = cfg.Clustering.MinMembers
			}
			if !f.Changed("metric") {
				metric = cfg.Clustering.Metric
			}
			codes := firstNonEmpty(codesPath, cfg.Dictionary)

			return runAnalyze(analyzeOpts{
				inputPath:  inputPath,
				codesPath:  codes,
				ucsClass:   ucsClass,
				penalty:    penalty,
				tolerance:  tolerance,
				minMembers: minMembers,
				metric:     metric,
				outputFmt:  outputFmt,
				savePath:   savePath,
			})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Survey CSV file (required)")
	cmd.Flags().StringVar(&codesPath, "codes", "", "Code dictionary YAML (default: built-in tables)")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default: search for .rockscore/config.yaml)")
	cmd.Flags().StringVar(&ucsClass, "ucs", "R4", "Intact rock strength class (R0-R6)")
	cmd.Flags().Float64Var(&penalty, "orientation-penalty", rmr.DefaultOrientationPenalty, "Discontinuity orientation adjustment")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 15, "Clustering tolerance in degrees")
	cmd.Flags().IntVar(&minMembers, "min-members", 3, "Minimum family size")
	cmd.Flags().StringVar(&metric, "metric", "two-threshold", "Clustering metric: two-threshold or combined")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or csv")
	cmd.Flags().StringVar(&savePath, "save", "", "Also write the report JSON to this path")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

type analyzeOpts struct {
	inputPath  string
	codesPath  string
	ucsClass   string
	penalty    float64
	tolerance  float64
	minMembers int
	metric     string
	outputFmt  string
	savePath   string
}

func runAnalyze(opts analyzeOpts) error {
	svy, problems, err := readSurvey(opts.inputPath)
	if err != nil {
		return err
	}

	dict, err := loadDictionary(opts.codesPath)
	if err != nil {
		return err
	}

	report := analysis.Run(svy, problems, analysis.Options{
		UCSClass:           opts.ucsClass,
		OrientationPenalty: &opts.penalty,
		Dictionary:         dict,
		Clustering: cluster.Params{
			ToleranceDeg: opts.tolerance,
			MinMembers:   opts.minMembers,
			Metric:       cluster.Metric(opts.metric),
		},
	})

	if opts.savePath != "" {
		if err := analysis.SaveReport(opts.savePath, report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved: %s\n", opts.savePath)
	}

	renderer := surface.ForFormat(opts.outputFmt)
	return renderer.Render(os.Stdout, report)
}

// resolveConfig loads the given config file, or searches upward from the
// working directory when no path is given.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	if found := config.FindConfigFile(wd); found != "" {
		return config.Load(found)
	}
	return config.DefaultConfig(), nil
}

func readSurvey(path string) (*survey.Survey, []*survey.RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening survey: %w", err)
	}
	defer f.Close()

	svy, problems, err := survey.ReadCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing survey: %w", err)
	}
	return svy, problems, nil
}

func loadDictionary(path string) (*rmr.Dictionary, error) {
	if path == "" {
		return rmr.DefaultDictionary(), nil
	}
	return rmr.LoadDictionary(path)
}

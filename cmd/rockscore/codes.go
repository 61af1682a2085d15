package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCodesCmd() *cobra.Command {
	var codesPath string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Print the active code dictionary",
		Long:  `Prints the rating tables in use as YAML, either the built-in defaults or a custom dictionary file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(codesPath)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(dict); err != nil {
				return fmt.Errorf("encoding dictionary: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&codesPath, "codes", "", "Code dictionary YAML (default: built-in tables)")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Print the static data tables",
	Long: `Print the weapon, ammo and item tables in effect, after resolving
--tables, ~/.arena/configs/tables.yaml, ./configs/tables.yaml and the
embedded defaults, in that order.

Examples:
  arena data
  arena data --tables ./my-tables.yaml`,
	Args: cobra.NoArgs,
	RunE: runData,
}

func runData(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(os.Stderr)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(e.tables); err != nil {
		return fmt.Errorf("encoding tables: %w", err)
	}
	return enc.Close()
}

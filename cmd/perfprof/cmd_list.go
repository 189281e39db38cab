package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solvebench/perfprof/internal/criteria"
	"github.com/solvebench/perfprof/internal/profiles"
)

var listProfilesFile string

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered profile configurations",
		Args:  cobra.NoArgs,
		RunE:  listCommandE,
	}

	cmd.Flags().StringVar(&listProfilesFile, "profiles-file", "", "profiles.yaml with additional profile definitions")

	return cmd
}

func listCommandE(_ *cobra.Command, _ []string) error {
	reg := profiles.DefaultRegistry()
	if listProfilesFile != "" {
		if err := registerSpecFile(reg, listProfilesFile); err != nil {
			return err
		}
	}

	for _, name := range reg.Names() {
		cfg, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-16s criterion=%s (%s is better)  instances by [%s]  combos by [%s]\n",
			name,
			cfg.Criterion.Name,
			directionWord(cfg),
			strings.Join(cfg.GroupKeys, ", "),
			strings.Join(cfg.ComboKeys, ", "))
	}
	return nil
}

func directionWord(cfg *profiles.Config) string {
	if cfg.Criterion.Direction == criteria.HigherIsBetter {
		return "higher"
	}
	return "lower"
}

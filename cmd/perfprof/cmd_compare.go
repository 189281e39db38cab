package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solvebench/perfprof/internal/analysis"
	"github.com/solvebench/perfprof/internal/profiles"
)

var (
	compareProfile string
	compareFiles   []string
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <combo> <combo> [more combos ...]",
		Short: "Head-to-head profile restricted to selected configurations",
		Long: `Build a performance profile restricted to the named combos.

Combo identities use the canonical "key=value key=value" form printed by
the profile command, e.g. "model=full solver=ipopt". Restricting the
profile recomputes the per-instance best within the subset, so ratios are
relative to the best of the combos being compared, not the global best.`,
		Args: cobra.MinimumNArgs(2),
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareProfile, "profile", "p", "wall_clock", "Profile configuration to compare under")
	cmd.Flags().StringSliceVarP(&compareFiles, "results", "r", nil, "Result file(s) to load (required)")
	_ = cmd.MarkFlagRequired("results")

	return cmd
}

func compareCommandE(_ *cobra.Command, args []string) error {
	reg := profiles.DefaultRegistry()
	cfg, err := reg.Get(compareProfile)
	if err != nil {
		return err
	}

	records, err := loadRecords(compareFiles)
	if err != nil {
		return err
	}

	allowed := make(map[string]bool, len(args))
	for _, combo := range args {
		allowed[combo] = true
	}

	p := profiles.BuildSubset(cfg, records, allowed)
	if p == nil {
		fmt.Println("No comparable data for the selected combos.")
		return nil
	}

	if missing := absentCombos(p, args); len(missing) > 0 {
		for _, combo := range missing {
			fmt.Printf("note: %q contributed no comparable runs\n", combo)
		}
		fmt.Println()
	}

	printProfileTable(builtProfile{Name: compareProfile + " (head-to-head)", Profile: p}, profileTausDefault())
	fmt.Println(analysis.Analyze(p))
	return nil
}

// absentCombos returns the requested combo identities that never appear in
// the built profile, preserving request order.
func absentCombos(p *profiles.Profile, requested []string) []string {
	present := make(map[string]bool)
	for _, combo := range p.Combos() {
		present[combo] = true
	}
	var missing []string
	for _, combo := range requested {
		if !present[combo] {
			missing = append(missing, combo)
		}
	}
	return missing
}

func profileTausDefault() []float64 {
	return []float64{1, 1.5, 2, 5, 10}
}

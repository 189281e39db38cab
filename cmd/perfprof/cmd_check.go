package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solvebench/perfprof/internal/validation"
)

var checkProfilesFile string

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <results.json> [more results ...]",
		Short: "Validate result files against the schema",
		Long: `Validate benchmark result files against the embedded JSON Schema.

Reports every violation with its location. With --profiles-file, also
validates a profile definitions YAML file. Exit code 1 means one or more
files failed validation.`,
		Args: cobra.MinimumNArgs(0),
		RunE: checkCommandE,
	}

	cmd.Flags().StringVar(&checkProfilesFile, "profiles-file", "", "profiles.yaml to validate as well")

	return cmd
}

func checkCommandE(_ *cobra.Command, args []string) error {
	if len(args) == 0 && checkProfilesFile == "" {
		return fmt.Errorf("nothing to check: pass result files and/or --profiles-file")
	}

	failed := 0
	for _, path := range args {
		errs, err := validation.ValidateResultsFile(path)
		if err != nil {
			return err
		}
		printCheckResult(path, errs)
		if len(errs) > 0 {
			failed++
		}
	}

	if checkProfilesFile != "" {
		errs, err := validation.ValidateProfilesFile(checkProfilesFile)
		if err != nil {
			return err
		}
		printCheckResult(checkProfilesFile, errs)
		if len(errs) > 0 {
			failed++
		}
	}

	if failed > 0 {
		return &ValidationFailureError{
			Message: fmt.Sprintf("%d file(s) failed validation", failed),
		}
	}
	return nil
}

func printCheckResult(path string, errs []string) {
	if len(errs) == 0 {
		fmt.Printf("ok    %s\n", path)
		return
	}
	fmt.Printf("FAIL  %s\n", path)
	for _, e := range errs {
		fmt.Printf("      %s\n", strings.TrimSpace(e))
	}
}

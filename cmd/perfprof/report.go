package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/solvebench/perfprof/internal/analysis"
)

// defaultTableWidth is used when stdout is not a terminal.
const defaultTableWidth = 100

// comboColumnBudget caps how much of the table the combo identity column
// may take, leaving room for the numeric columns.
func comboColumnBudget() int {
	width := defaultTableWidth
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
			width = w
		}
	}
	budget := width - 60
	if budget < 15 {
		budget = 15
	}
	return budget
}

// truncateCell shortens a string to the given display width, appending an
// ellipsis when anything was cut. Widths are measured in terminal cells,
// not bytes.
func truncateCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// printProfileTable renders one profile's curve table: for each combo, the
// fraction of instances solved within each tau threshold plus wins and the
// geometric-mean overhead. NoData profiles print a neutral placeholder.
func printProfileTable(bp builtProfile, taus []float64) {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf(" PROFILE: %s\n", bp.Name)
	fmt.Println(strings.Repeat("=", 70))

	if bp.Profile == nil {
		fmt.Println("  (no comparable data)")
		fmt.Println()
		return
	}

	p := bp.Profile
	fmt.Printf("  criterion: %s   instances: %d\n\n", p.CriterionName(), p.InstanceCount())

	comboWidth := comboColumnBudget()

	fmt.Printf("  %-*s  %6s", comboWidth, "Combo", "Wins")
	for _, tau := range taus {
		fmt.Printf("  %8s", fmt.Sprintf("<=%.4gx", tau))
	}
	fmt.Printf("  %8s\n", "GeoMean")

	for _, s := range analysis.Summarize(p) {
		fmt.Printf("  %-*s  %6d", comboWidth, truncateCell(s.Combo, comboWidth), s.Wins)
		for _, tau := range taus {
			fmt.Printf("  %7.1f%%", p.FractionWithin(s.Combo, tau)*100)
		}
		if s.GeoMeanRatio == 0 || math.IsInf(s.GeoMeanRatio, 0) {
			fmt.Printf("  %8s\n", "n/a")
		} else {
			fmt.Printf("  %7.2fx\n", s.GeoMeanRatio)
		}
	}
	fmt.Println()
}

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/solvebench/perfprof/internal/analysis"
	"github.com/solvebench/perfprof/internal/cache"
	"github.com/solvebench/perfprof/internal/dataset"
	"github.com/solvebench/perfprof/internal/models"
	"github.com/solvebench/perfprof/internal/profiles"
)

var (
	profileNames    []string
	profilesFile    string
	profileFormat   string
	profileTaus     []float64
	profileCacheDir string
)

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <results.json|results.csv> [more results ...]",
		Short: "Build performance profiles from collected benchmark results",
		Long: `Build performance profiles over one or more result files.

Each registered profile configuration groups the records into problem
instances and solver configurations, ranks configurations per instance by
its criterion, and reports the distribution of cost ratios relative to the
per-instance best. Result files may be JSON (optionally .gz/.zst
compressed) or CSV exports.`,
		Args: cobra.MinimumNArgs(1),
		RunE: profileCommandE,
	}

	cmd.Flags().StringSliceVarP(&profileNames, "profile", "p", nil, "Profile configuration(s) to build (default: all registered)")
	cmd.Flags().StringVar(&profilesFile, "profiles-file", "", "profiles.yaml with additional profile definitions")
	cmd.Flags().StringVarP(&profileFormat, "format", "f", "text", "Output format: text, table or json")
	cmd.Flags().Float64SliceVar(&profileTaus, "tau", []float64{1, 2, 5, 10}, "Ratio thresholds for the curve table")
	cmd.Flags().StringVar(&profileCacheDir, "cache-dir", "", "Directory for memoized profile snapshots")

	return cmd
}

// builtProfile pairs a configuration name with its build result. Profile
// is nil when the configuration produced no usable data.
type builtProfile struct {
	Name    string
	Profile *profiles.Profile
}

func profileCommandE(_ *cobra.Command, args []string) error {
	if profileFormat != "text" && profileFormat != "table" && profileFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be text, table or json", profileFormat)
	}

	reg := profiles.DefaultRegistry()
	if profilesFile != "" {
		if err := registerSpecFile(reg, profilesFile); err != nil {
			return err
		}
	}

	names := profileNames
	if len(names) == 0 {
		names = reg.Names()
	}

	records, err := loadRecords(args)
	if err != nil {
		return err
	}
	slog.Debug("records loaded", "files", len(args), "records", len(records))

	built, err := buildAll(reg, names, records, cacheInputs(args))
	if err != nil {
		return err
	}

	switch profileFormat {
	case "json":
		return printProfilesJSON(built)
	case "table":
		for _, bp := range built {
			printProfileTable(bp, profileTaus)
		}
	default:
		for _, bp := range built {
			printProfileTable(bp, profileTaus)
			fmt.Println(analysis.Analyze(bp.Profile))
		}
	}
	return nil
}

// cacheInputs lists every file whose contents determine a build: the
// result files plus, when set, the profile definitions file. Hashing the
// definitions file too means redefining a profile under an unchanged name
// still invalidates its cached snapshot.
func cacheInputs(resultFiles []string) []string {
	if profilesFile == "" {
		return resultFiles
	}
	inputs := make([]string, 0, len(resultFiles)+1)
	inputs = append(inputs, resultFiles...)
	return append(inputs, profilesFile)
}

// buildAll builds every requested profile. Builds are pure and share no
// state, so they run concurrently.
func buildAll(reg *profiles.Registry, names []string, records []*models.Record, inputs []string) ([]builtProfile, error) {
	store := cache.New(profileCacheDir)
	built := make([]builtProfile, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			cfg, err := reg.Get(name)
			if err != nil {
				return err
			}

			if profileCacheDir != "" {
				key, err := cache.Key(name, inputs)
				if err == nil {
					if snap, ok := store.Get(key); ok {
						slog.Debug("profile cache hit", "profile", name)
						built[i] = builtProfile{Name: name, Profile: profiles.FromSnapshot(*snap)}
						return nil
					}
					p := profiles.Build(cfg, records)
					built[i] = builtProfile{Name: name, Profile: p}
					if p != nil {
						snap := p.Snapshot()
						if err := store.Put(key, &snap); err != nil {
							slog.Debug("profile cache write failed", "profile", name, "error", err)
						}
					}
					return nil
				}
				slog.Debug("profile cache key failed", "profile", name, "error", err)
			}

			built[i] = builtProfile{Name: name, Profile: profiles.Build(cfg, records)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return built, nil
}

// registerSpecFile loads user-defined profile configurations and registers
// them. A name that collides with a registered configuration is an error,
// not an override.
func registerSpecFile(reg *profiles.Registry, path string) error {
	configs, err := profiles.LoadSpecFile(path)
	if err != nil {
		return err
	}
	for _, cfg := range configs {
		if err := reg.Register(cfg); err != nil {
			return err
		}
	}
	return nil
}

// loadRecords reads and concatenates every input file. CSV files go
// through the dataset column mapping; everything else is parsed as a
// result set, decompressing by extension.
func loadRecords(paths []string) ([]*models.Record, error) {
	var all []*models.Record
	for _, path := range paths {
		if strings.HasSuffix(path, ".csv") {
			recs, err := dataset.LoadRecordsCSV(path)
			if err != nil {
				return nil, err
			}
			all = append(all, recs...)
			continue
		}
		rs, err := models.LoadResultSet(path)
		if err != nil {
			return nil, err
		}
		all = append(all, rs.Records...)
	}
	return all, nil
}

// profileJSON is the machine-readable output for one built profile.
type profileJSON struct {
	Name      string                           `json:"name"`
	NoData    bool                             `json:"no_data"`
	Snapshot  *profiles.Snapshot               `json:"profile,omitempty"`
	Summaries []analysis.ComboSummary          `json:"summaries,omitempty"`
	Curves    map[string][]profiles.CurvePoint `json:"curves,omitempty"`
}

func printProfilesJSON(built []builtProfile) error {
	out := make([]profileJSON, 0, len(built))
	for _, bp := range built {
		pj := profileJSON{Name: bp.Name, NoData: bp.Profile == nil}
		if bp.Profile != nil {
			snap := bp.Profile.Snapshot()
			pj.Snapshot = &snap
			pj.Summaries = analysis.Summarize(bp.Profile)
			pj.Curves = make(map[string][]profiles.CurvePoint)
			for _, combo := range bp.Profile.Combos() {
				pj.Curves[combo] = bp.Profile.Curve(combo)
			}
		}
		out = append(out, pj)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

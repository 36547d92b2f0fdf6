package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studio-backend/internal/adapter/postgres/seed"
	"github.com/heartmarshall/studio-backend/internal/app/seeder"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	SeedConfig string
	Phases     []string
	DryRun     bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default departments and categories",
		Long: `Insert the default departments, finance categories and item categories.
Existing rows are kept; item category descriptions are brought in line with
the defaults. Lists can be overridden with a seeder YAML file.

Example:
  studioctl seed
  studioctl seed --phase item_categories --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scfg, err := seeder.LoadConfig(opts.SeedConfig)
			if err != nil {
				return WrapExitError(ExitCommandError, "load seeder config", err)
			}
			if opts.DryRun {
				scfg.DryRun = true
			}

			e, err := openEnv(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer e.Close()

			p := seeder.NewPipeline(e.log, seed.New(e.pool), *scfg)
			if err := p.Run(cmd.Context(), opts.Phases); err != nil {
				return WrapExitError(ExitCommandError, "seed", err)
			}
			if err := printSeedResults(printerFor(cmd, opts.RootOptions), p.Results()); err != nil {
				return err
			}
			if p.HasErrors() {
				return NewExitError(ExitFailure, "one or more phases failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SeedConfig, "seed-config", "", "seeder YAML with custom lists")
	cmd.Flags().StringSliceVar(&opts.Phases, "phase", nil, fmt.Sprintf("phases to run (default all: %v)", seeder.AllPhases()))
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "log the rows without writing them")

	return cmd
}

type seedRow struct {
	Phase    string `json:"phase"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

func printSeedResults(out printer, results map[string]seeder.PhaseResult) error {
	order := map[string]int{}
	for i, ph := range seeder.AllPhases() {
		order[ph] = i
	}
	phases := make([]string, 0, len(results))
	for ph := range results {
		phases = append(phases, ph)
	}
	sort.Slice(phases, func(i, j int) bool { return order[phases[i]] < order[phases[j]] })

	rows := make([]seedRow, 0, len(phases))
	lines := make([]string, 0, len(phases))
	for _, ph := range phases {
		r := results[ph]
		row := seedRow{Phase: ph, Inserted: r.Inserted, Updated: r.Updated, Skipped: r.Skipped}
		line := fmt.Sprintf("%-18s inserted=%d updated=%d skipped=%d", ph, r.Inserted, r.Updated, r.Skipped)
		if r.Err != nil {
			row.Error = r.Err.Error()
			line += " error=" + row.Error
		}
		rows = append(rows, row)
		lines = append(lines, line)
	}
	return out.print(map[string]any{"phases": rows}, lines...)
}

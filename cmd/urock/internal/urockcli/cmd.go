// Package urockcli implements the urock command tree, mirroring the
// teacher's thin cmd/main.go plus a sibling command package split.
package urockcli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/urock"
)

var (
	version = "dev"
)

// profileFlag is a pflag.Value adapter exposing urock.ProfileKind as a
// named enum on the command line (power, log, urban), the same pattern
// the teacher uses pflag custom Value types for enumerated options.
type profileFlag struct {
	kind *urock.ProfileKind
}

func (f profileFlag) String() string {
	switch *f.kind {
	case urock.ProfilePower:
		return "power"
	case urock.ProfileLog:
		return "log"
	default:
		return "urban"
	}
}

func (f profileFlag) Set(s string) error {
	switch s {
	case "power":
		*f.kind = urock.ProfilePower
	case "log":
		*f.kind = urock.ProfileLog
	case "urban":
		*f.kind = urock.ProfileUrban
	default:
		return fmt.Errorf("unknown profile %q: want power, log, or urban", s)
	}
	return nil
}

func (f profileFlag) Type() string { return "profile" }

var _ pflag.Value = profileFlag{}

// Execute runs the root urock command.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "urock",
		Short: "urock computes a diagnostic, mass-consistent urban wind field",
	}
	root.AddCommand(runCmd(), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the urock version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	var configPath string
	var verbose bool
	profile := urock.ProfileUrban

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the solver for a TOML configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, configPath, verbose, profile)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a TOML configuration file (required)")
	flags.BoolVar(&verbose, "verbose", false, "log per-iteration solver residuals")
	flags.Var(profileFlag{kind: &profile}, "profile", "ambient vertical wind profile: power, log, or urban")
	cmd.MarkFlagRequired("config")
	return cmd
}

func runRun(cmd *cobra.Command, configPath string, verbose bool, profile urock.ProfileKind) error {
	cfg, err := urock.LoadConfig(configPath)
	if err != nil {
		return err
	}

	obstacles, err := readObstacles(cfg.BuildingsPath)
	if err != nil {
		return fmt.Errorf("urock: reading buildings: %w", err)
	}
	vegetation, err := readVegetation(cfg.VegetationPath)
	if err != nil {
		return fmt.Errorf("urock: reading vegetation: %w", err)
	}

	model := urock.NewModel(obstacles, vegetation)
	model.Geometry = cfg.Geometry
	model.Grid = cfg.Grid
	model.Solver = cfg.Solver
	model.ProfileKind = profile
	model.SetVerbose(verbose)

	dir := urock.WindDirection{
		DirectionDeg: cfg.ReferenceWind.WindDirection,
		ZRef:         cfg.ReferenceWind.ZRef,
		VRef:         cfg.ReferenceWind.VRef,
	}

	result, err := model.Run(context.Background(), dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "status=%s iterations=%d residual=%.3e\n",
		result.Solve.Status, result.Solve.Iterations, result.Solve.Residual)
	return nil
}

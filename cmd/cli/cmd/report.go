// Package cmd - report and score commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prepstock/adapters/snapshot"
	"prepstock/catalog"
	"prepstock/core/engine"
	"prepstock/core/output"
	"prepstock/core/score"
	"prepstock/internal/config"
	"prepstock/internal/logging"
)

var (
	outputFormat string
	overlayFiles []string
)

// reportCmd renders the full per-category dashboard for a snapshot
var reportCmd = &cobra.Command{
	Use:   "report <snapshot>",
	Short: "Compute the full preparedness report for a snapshot",
	Long: `Compute per-category adequacy, shortages and the overall score from a
household + inventory snapshot file.

Examples:
  prepstock report household.yml
  prepstock report --format json household.yml
  prepstock report --overlay extra-items.hcl household.yml`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

// scoreCmd prints just the preparedness score
var scoreCmd = &cobra.Command{
	Use:   "score <snapshot>",
	Short: "Compute the 0-100 preparedness score for a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	reportCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	reportCmd.Flags().StringArrayVar(&overlayFiles, "overlay", nil, "catalog overlay HCL file (repeatable)")
	scoreCmd.Flags().StringArrayVar(&overlayFiles, "overlay", nil, "catalog overlay HCL file (repeatable)")
}

// buildEngine wires catalog, overlays and configured params into an engine
func buildEngine() (*engine.Engine, error) {
	cfg := config.Get()

	overlays := append([]string{}, cfg.CatalogOverlays...)
	overlays = append(overlays, overlayFiles...)

	cat, err := catalog.Effective(overlays)
	if err != nil {
		return nil, err
	}

	return engine.New(cat, engine.WithParams(cfg.Engine.Params())), nil
}

func runReport(cmd *cobra.Command, args []string) error {
	snap, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	logging.Info("computing preparedness report")
	report := eng.Report(snap.Household, snap.Items)

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(config.Get().Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &report)
}

func runScore(cmd *cobra.Command, args []string) error {
	snap, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	n := eng.Score(snap.Household, snap.Items)
	fmt.Printf("%d/100 (%s)\n", n, score.Tier(n))
	return nil
}

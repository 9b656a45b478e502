package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/io"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/pipeline"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// computeCommand creates the compute command for generating layout trees.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "compute [config.json|config.toml]",
		Short: "Compute a 3D layout tree from a warehouse configuration",
		Long: `Compute a 3D layout tree from a warehouse configuration.

The compute command reads a warehouse configuration (JSON or TOML), validates
it, and places every section, rack, and pallet at absolute coordinates. The
output is a layout.json tree that downstream renderers can consume directly.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd.Context(), args[0], output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached layout exists")

	return cmd
}

// runCompute loads the config, runs the pipeline, and writes the layout tree.
func (c *CLI) runCompute(ctx context.Context, input, output string, noCache, refresh bool) error {
	cfg, err := io.ImportConfig(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	res, err := runner.Execute(ctx, pipeline.Options{Config: cfg, Refresh: refresh, Logger: c.Logger})
	if err != nil {
		var verr *warehouse.ValidationError
		if errors.As(err, &verr) {
			spinner.StopWithError(fmt.Sprintf("Invalid config (%d violations)", len(verr.Errors)))
			for _, ce := range verr.Errors {
				printDetail("%s %s: %s", ce.Code, ce.Field, ce.Message)
			}
			return err
		}
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := io.ExportTree(res.Tree, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(res.Stats.SectionCount, res.Stats.RackCount, res.Stats.PalletCount, res.CacheInfo.LayoutHit)
	for _, w := range res.Warnings {
		printWarning("skipped %s", w.String())
	}
	printNewline()
	printKeyValue("Hash", res.ConfigHash)
	printNextStep("Inspect", "warehousectl inspect "+outputPath)

	return nil
}

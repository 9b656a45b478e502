package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/io"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// validateCommand creates the validate command for checking configurations.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config.json|config.toml]",
		Short: "Validate a warehouse configuration without computing a layout",
		Long: `Validate a warehouse configuration without computing a layout.

All violations are reported in one pass, so a single run surfaces every
problem in the file. The command exits non-zero if the configuration is
invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}

	return cmd
}

// runValidate loads the config and reports every violation found.
func (c *CLI) runValidate(input string) error {
	cfg, err := io.ImportConfig(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	prog := newProgress(c.Logger)
	violations := warehouse.Validate(cfg)
	prog.done(fmt.Sprintf("Validated %d sections", len(cfg.Sections)))

	if len(violations) > 0 {
		printError("Invalid config (%d violations)", len(violations))
		for _, ce := range violations {
			printDetail("%s %s: %s", ce.Code, ce.Field, ce.Message)
		}
		return &warehouse.ValidationError{Errors: violations}
	}

	printSuccess("Config is valid")
	printStats(len(cfg.Sections), 0, 0, false)
	printNewline()
	printNextStep("Compute", "warehousectl compute "+input)

	return nil
}

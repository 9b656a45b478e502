package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// inspectCommand creates the inspect command for browsing computed layouts.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [layout.json]",
		Short: "Browse the sections of a computed layout interactively",
		Long: `Browse the sections of a computed layout interactively.

The inspect command opens a terminal browser over the sections of a
layout.json tree (produced by 'compute'). Selecting a section prints its
position, dimensions, and rack occupancy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}

	return cmd
}

// runInspect loads the tree and runs the section browser.
func (c *CLI) runInspect(input string) error {
	tree, err := warehouse.ReadTreeFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	if len(tree.Sections) == 0 {
		printInfo("Layout has no sections")
		return nil
	}

	model := NewSectionListModel(tree.Sections)
	prog := tea.NewProgram(model)
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("run section browser: %w", err)
	}

	result, ok := final.(SectionListModel)
	if !ok || result.Selected == nil {
		return nil
	}

	printSectionDetail(result.Selected)
	return nil
}

// printSectionDetail prints a selected section's geometry and occupancy.
func printSectionDetail(s *warehouse.Section) {
	palletCount := 0
	for _, r := range s.Racks {
		palletCount += len(r.Pallets)
	}

	printNewline()
	fmt.Println(StyleTitle.Render(s.ID))
	printKeyValue("Position", fmt.Sprintf("(%.1f, %.1f, %.1f) cm", s.Position.X, s.Position.Y, s.Position.Z))
	printKeyValue("Dimensions", fmt.Sprintf("%.1f × %.1f × %.1f cm", s.Dimensions.Width, s.Dimensions.Length, s.Dimensions.Height))
	printKeyValue("Racks", fmt.Sprintf("%d", len(s.Racks)))
	printKeyValue("Pallets", fmt.Sprintf("%d", palletCount))

	if palletCount > 0 {
		printNewline()
		for _, r := range s.Racks {
			for _, p := range r.Pallets {
				printDetail("%s holds %s at (%.1f, %.1f, %.1f)", r.ID, p.Type, p.Position.X, p.Position.Y, p.Position.Z)
			}
		}
	}
}

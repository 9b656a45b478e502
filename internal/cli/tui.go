package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SectionListModel - Interactive section browser
// =============================================================================

// SectionListModel is the bubbletea model for browsing layout sections.
type SectionListModel struct {
	Sections []warehouse.Section
	Cursor   int
	Selected *warehouse.Section
	Height   int
	Offset   int
}

// NewSectionListModel creates a new section list model.
func NewSectionListModel(sections []warehouse.Section) SectionListModel {
	return SectionListModel{
		Sections: sections,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m SectionListModel) Init() tea.Cmd {
	return nil
}

func (m SectionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Sections)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			section := m.Sections[m.Cursor]
			m.Selected = &section
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SectionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Section"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Sections) {
		end = len(m.Sections)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Sections[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		palletCount := 0
		for _, r := range s.Racks {
			palletCount += len(r.Pallets)
		}

		position := fmt.Sprintf("(%.0f, %.0f, %.0f)", s.Position.X, s.Position.Y, s.Position.Z)
		size := fmt.Sprintf("%.0f × %.0f × %.0f", s.Dimensions.Width, s.Dimensions.Length, s.Dimensions.Height)

		rows = append(rows, []string{
			cursor,
			s.ID,
			position,
			size,
			fmt.Sprintf("%d", len(s.Racks)),
			fmt.Sprintf("%d", palletCount),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Section", "Position (cm)", "Size (cm)", "Racks", "Pallets").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Sections) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if col == 2 || col == 3 {
				base = base.Foreground(colorGray)
			}

			if actualIdx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Sections))))

	return b.String()
}

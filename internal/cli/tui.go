package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/slidegrid/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// InspectModel - Interactive layout tree browser
// =============================================================================

// InspectModel is the bubbletea model for browsing a resolved area tree.
type InspectModel struct {
	Title  string
	Areas  []*layout.Area
	Cursor int
	Height int
	Offset int
	Inches bool
}

// NewInspectModel lists the areas of root in pre-order.
func NewInspectModel(title string, root *layout.Root) InspectModel {
	var areas []*layout.Area
	for a := range root.Walk() {
		areas = append(areas, a)
	}
	return InspectModel{Title: title, Areas: areas, Height: 15}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Areas)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Areas) - 1
		case "p":
			m.Cursor = m.parentIndex()
		case "u":
			m.Inches = !m.Inches
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 14
		if m.Height < 5 {
			m.Height = 5
		}
	}
	m.scroll()
	return m, nil
}

// parentIndex returns the list index of the selected area's parent, or the
// cursor itself for the top area.
func (m InspectModel) parentIndex() int {
	if len(m.Areas) == 0 {
		return 0
	}
	parent, err := m.Areas[m.Cursor].Parent()
	if err != nil {
		return m.Cursor
	}
	for i, a := range m.Areas {
		if a == parent {
			return i
		}
	}
	return m.Cursor
}

func (m *InspectModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m InspectModel) View() string {
	var b strings.Builder

	title := "Layout"
	if m.Title != "" {
		title = m.Title
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  p parent  u units  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Areas))
	for i := m.Offset; i < end; i++ {
		a := m.Areas[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s%s %s", cursor, strings.Repeat("  ", a.Depth()), a.Kind(), a.Unit())
		if a.Name() != "" {
			line += " " + a.Name()
		}
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Areas) > 0 {
		b.WriteString("\n")
		b.WriteString(detailBoxStyle.Render(m.details(m.Areas[m.Cursor])))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Areas))))
	return b.String()
}

func (m InspectModel) details(a *layout.Area) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	line := func(k, v string) string { return keyStyle.Render(k) + " " + StyleValue.Render(v) }

	lines := []string{
		line("Path", fmt.Sprint(a.Path())),
		line("Kind", StyleKind.Render(a.Kind().String())),
		line("Unit", a.Unit().String()),
		line("Children", fmt.Sprint(a.Len())),
	}
	if a.Name() != "" {
		lines = append(lines, line("Name", a.Name()))
	}
	if r, err := a.Rect(); err == nil {
		lines = append(lines,
			line("Origin", formatLength(r.X, m.Inches)+", "+formatLength(r.Y, m.Inches)),
			line("Size", formatLength(r.Width, m.Inches)+" × "+formatLength(r.Height, m.Inches)),
		)
	}
	return strings.Join(lines, "\n")
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/search"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// WordBrowserModel - Interactive list of found words
// =============================================================================

// WordBrowserModel is the bubbletea model for browsing found words. The grid
// beside the list highlights the path of the word under the cursor.
type WordBrowserModel struct {
	Grid   *grid.Grid
	Words  []string
	Cursor int
	Height int
	Offset int

	paths map[string]search.Path
}

// NewWordBrowserModel creates a browser over words found in g.
func NewWordBrowserModel(g *grid.Grid, words []string) WordBrowserModel {
	return WordBrowserModel{
		Grid:   g,
		Words:  words,
		Height: 15,
		paths:  make(map[string]search.Path, len(words)),
	}
}

func (m WordBrowserModel) Init() tea.Cmd {
	return nil
}

func (m WordBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Words))
		case "end", "G":
			m.move(len(m.Words))
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the list, and scrolls so the
// cursor stays visible.
func (m *WordBrowserModel) move(delta int) {
	if len(m.Words) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Words)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// Path returns the traced path of the word under the cursor.
func (m WordBrowserModel) Path() search.Path {
	if len(m.Words) == 0 {
		return nil
	}
	w := m.Words[m.Cursor]
	if p, ok := m.paths[w]; ok {
		return p
	}
	p, _ := search.Trace(m.Grid, w)
	if m.paths != nil {
		m.paths[w] = p
	}
	return p
}

func (m WordBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Found %d words", len(m.Words))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  pgup/pgdn page  q quit"))
	b.WriteString("\n\n")

	var list strings.Builder
	end := min(m.Offset+m.Height, len(m.Words))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + m.Words[i]))
		} else {
			list.WriteString(listNormalStyle.Render("  " + m.Words[i]))
		}
		list.WriteString("\n")
	}
	if len(m.Words) == 0 {
		list.WriteString(listDimStyle.Render("  no words"))
	}

	left := lipgloss.NewStyle().Width(24).Render(list.String())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, renderGrid(m.Grid, m.Path())))
	b.WriteString("\n\n")
	if len(m.Words) > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Words))))
	}

	return b.String()
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BlockListModel - Interactive block browser
// =============================================================================

// blockRow is one display row: a block plus its indentation level.
type blockRow struct {
	block *document.Block
	depth int
}

// BlockListModel is the bubbletea model for browsing a document's blocks.
type BlockListModel struct {
	doc    *document.Document
	rows   []blockRow
	cursor int
	height int
	offset int
}

func newBlockListModel(doc *document.Document) BlockListModel {
	var rows []blockRow
	for _, b := range doc.TopLevel() {
		rows = append(rows, blockRow{block: b})
		if b.IsGroup() {
			for _, child := range doc.Children(b.ID) {
				rows = append(rows, blockRow{block: child, depth: 1})
			}
		}
	}
	return BlockListModel{doc: doc, rows: rows, height: 15}
}

func (m BlockListModel) Init() tea.Cmd {
	return nil
}

func (m BlockListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m BlockListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Blocks"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		indent := strings.Repeat("  ", row.depth)
		b.WriteString(cursor + indent + style.Render(row.block.Name) + " " +
			listDimStyle.Render(string(row.block.Type)))
		b.WriteString("\n")
	}

	if len(m.rows) > 0 {
		b.WriteString("\n")
		b.WriteString(m.detailView())
	}
	return b.String()
}

// detailView shows the highlighted block's geometry and state.
func (m BlockListModel) detailView() string {
	b := m.rows[m.cursor].block
	bounds := m.doc.AbsoluteBounds(b)

	parts := []string{
		fmt.Sprintf("at %g,%g", bounds.Left, bounds.Top),
		fmt.Sprintf("size %gx%g", b.Layout.Width, b.Layout.Height),
		fmt.Sprintf("z %d", b.Layout.ZIndex),
		fmt.Sprintf("anchor %s/%s", b.Anchor.Horizontal, b.Anchor.Vertical),
	}
	if !b.Visible {
		parts = append(parts, "hidden")
	}
	if b.Locked {
		parts = append(parts, "locked")
	}
	return listDimStyle.Render(strings.Join(parts, " · "))
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treestruct/pkg/treestruct"
)

// newBrowseCmd creates the browse command, an interactive terminal tree
// browser for a forest JSON file.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore a forest file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := treestruct.ReadFile[any](args[0])
			if err != nil {
				return err
			}
			model := newBrowseModel(args[0], roots)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// Browse styles.
var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseRow is one visible line in the browser: a node plus its indentation
// depth and expansion state.
type browseRow struct {
	node  *treestruct.Node[any]
	depth int
}

// browseModel is the bubbletea model for the tree browser.
type browseModel struct {
	title    string
	roots    []*treestruct.Node[any]
	expanded map[*treestruct.Node[any]]bool
	rows     []browseRow
	cursor   int
	offset   int
	height   int
}

func newBrowseModel(title string, roots []*treestruct.Node[any]) *browseModel {
	m := &browseModel{
		title:    title,
		roots:    roots,
		expanded: make(map[*treestruct.Node[any]]bool),
		height:   20,
	}
	for _, root := range roots {
		m.expanded[root] = true
	}
	m.rebuild()
	return m
}

// rebuild recomputes the visible rows from the expansion state.
func (m *browseModel) rebuild() {
	m.rows = m.rows[:0]
	for _, root := range m.roots {
		m.appendRows(root, 0)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browseModel) appendRows(n *treestruct.Node[any], depth int) {
	m.rows = append(m.rows, browseRow{node: n, depth: depth})
	if !m.expanded[n] {
		return
	}
	children := n.Children().Nodes()
	sort.Slice(children, func(i, j int) bool {
		return fmt.Sprint(children[i].Data) < fmt.Sprint(children[j].Data)
	})
	for _, child := range children {
		m.appendRows(child, depth+1)
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 3 // title and help lines
		if m.height < 1 {
			m.height = 1
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.rows) > 0 {
				n := m.rows[m.cursor].node
				if n.Children().Len() > 0 {
					m.expanded[n] = !m.expanded[n]
					m.rebuild()
				}
			}
		}
	}

	// Keep the cursor inside the visible window.
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title) + "\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		marker := "  "
		if row.node.Children().Len() > 0 {
			if m.expanded[row.node] {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}
		line := strings.Repeat("  ", row.depth) + marker + fmt.Sprint(row.node.Data)
		if i == m.cursor {
			b.WriteString(browseSelectedStyle.Render("› "+line) + "\n")
		} else {
			b.WriteString(browseNormalStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString(browseDimStyle.Render("↑/↓ move · enter expand/collapse · q quit"))
	return b.String()
}

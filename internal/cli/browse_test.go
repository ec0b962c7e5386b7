package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/treestruct/pkg/treestruct"
)

func browseFixture() *browseModel {
	root := treestruct.New[any]("root", nil, nil)
	a := treestruct.New[any]("a", []*treestruct.Node[any]{root}, nil)
	treestruct.New[any]("b", []*treestruct.Node[any]{root}, nil)
	treestruct.New[any]("a1", []*treestruct.Node[any]{a}, nil)
	return newBrowseModel("fixture", []*treestruct.Node[any]{root})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseModelRows(t *testing.T) {
	m := browseFixture()

	// Roots start expanded, children collapsed: root, a, b.
	if len(m.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(m.rows))
	}
	if m.rows[0].depth != 0 || m.rows[1].depth != 1 {
		t.Errorf("depths = %d,%d, want 0,1", m.rows[0].depth, m.rows[1].depth)
	}
}

func TestBrowseModelExpand(t *testing.T) {
	m := browseFixture()

	// Move to "a" and expand it.
	m.Update(keyMsg("down"))
	m.Update(keyMsg("enter"))
	if len(m.rows) != 4 {
		t.Fatalf("rows after expand = %d, want 4", len(m.rows))
	}

	// Collapse again.
	m.Update(keyMsg("enter"))
	if len(m.rows) != 3 {
		t.Fatalf("rows after collapse = %d, want 3", len(m.rows))
	}
}

func TestBrowseModelCursorBounds(t *testing.T) {
	m := browseFixture()

	m.Update(keyMsg("up"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 at top", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m.Update(keyMsg("down"))
	}
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor = %d, want %d at bottom", m.cursor, len(m.rows)-1)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := browseFixture()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestBrowseModelView(t *testing.T) {
	m := browseFixture()
	view := m.View()
	for _, want := range []string{"fixture", "root", "a", "b"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

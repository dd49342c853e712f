package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uddict/dictation-app/cli/internal/store"
	"github.com/uddict/dictation-app/cli/internal/ui/components"
)

const savedTimeLayout = "2006-01-02 15:04"

type notesLoadedMsg struct {
	items []store.Summary
	err   error
}

type noteOpenedMsg struct {
	variant Variant
	note    store.Note
	err     error
}

type noteDeletedMsg struct {
	id  string
	err error
}

// LandingModel lists saved notes and opens them in a note screen.
type LandingModel struct {
	store   NoteStore
	styles  Styles
	items   []store.Summary
	list    *components.List
	loading bool
	errText string

	confirmDelete bool

	width  int
	height int
}

// NewLandingModel builds the landing route. A nil store shows an empty list.
func NewLandingModel(notes NoteStore, styles Styles) LandingModel {
	return LandingModel{
		store:  notes,
		styles: styles,
		list:   components.NewList(10),
	}
}

func (m LandingModel) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	notes := m.store
	return func() tea.Msg {
		items, err := notes.List(context.Background())
		return notesLoadedMsg{items: items, err: err}
	}
}

func (m *LandingModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetPageSize(max(height-16, 3))
}

func (m LandingModel) Update(msg tea.Msg) (LandingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.items = nil
			m.list.Reset(0)
			return m, nil
		}
		m.errText = ""
		m.items = msg.items
		m.list.Resize(len(m.items))
		return m, nil
	case noteDeletedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.loading = true
		return m, m.Init()
	case tea.KeyMsg:
		if m.confirmDelete {
			switch {
			case isConfirm(msg):
				m.confirmDelete = false
				return m, m.delete()
			case isDeny(msg):
				m.confirmDelete = false
			}
			return m, nil
		}
		switch {
		case isDown(msg):
			m.list.Down()
		case isUp(msg):
			m.list.Up()
		case isKey(msg, "r"):
			m.loading = true
			return m, m.Init()
		case isEnter(msg):
			return m, m.open(ProgressVariant)
		case isKey(msg, "v"):
			return m, m.open(SOAPVariant)
		case isKey(msg, "x"):
			if _, ok := m.selected(); ok && m.store != nil {
				m.confirmDelete = true
			}
		}
	}
	return m, nil
}

func (m LandingModel) selected() (store.Summary, bool) {
	i := m.list.Selected()
	if i < 0 || i >= len(m.items) {
		return store.Summary{}, false
	}
	return m.items[i], true
}

func (m LandingModel) open(variant Variant) tea.Cmd {
	item, ok := m.selected()
	if m.store == nil || !ok {
		return nil
	}
	notes := m.store
	return func() tea.Msg {
		note, err := notes.Load(context.Background(), item.ID)
		return noteOpenedMsg{variant: variant, note: note, err: err}
	}
}

func (m LandingModel) delete() tea.Cmd {
	item, ok := m.selected()
	if m.store == nil || !ok {
		return nil
	}
	notes := m.store
	return func() tea.Msg {
		return noteDeletedMsg{id: item.ID, err: notes.Delete(context.Background(), item.ID)}
	}
}

func (m LandingModel) View() string {
	s := m.styles
	if m.errText != "" {
		return s.Frame.ErrorBox("Could Not Load Notes", m.errText, m.width)
	}
	if m.loading {
		return s.Frame.Box(s.Muted.Render("Loading…"), m.width)
	}
	if len(m.items) == 0 {
		return s.Frame.TitledBox("Saved Notes", s.Muted.Render("No saved notes yet."), m.width)
	}

	if m.confirmDelete {
		if item, ok := m.selected(); ok {
			msg := fmt.Sprintf("Delete %q saved %s?", item.Title, item.SavedAt.Local().Format(savedTimeLayout))
			return s.Frame.ConfirmDialog("Delete Note", msg, m.width)
		}
	}

	start, end := m.list.Window()
	rows := make([][]string, 0, end-start)
	for _, it := range m.items[start:end] {
		rows = append(rows, []string{
			it.Title,
			it.SavedAt.Local().Format(savedTimeLayout),
			shortID(it.ID),
		})
	}
	cols := []components.TableColumn{
		{Header: "Title", Width: 24},
		{Header: "Saved", Width: len(savedTimeLayout)},
		{Header: "ID", Width: 8, Align: lipgloss.Right},
	}
	width := components.BoxContentWidth(m.width)
	if width <= 0 {
		width = 60
	}
	grid := s.Frame.Grid(cols, rows, width, m.list.Cursor-start)

	var b strings.Builder
	b.WriteString(grid)
	if len(m.items) > end-start {
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(m.items))))
	}
	out := s.Frame.TitledBox("Saved Notes", b.String(), m.width)
	if item, ok := m.selected(); ok {
		out += "\n" + s.Frame.Table("Selected", []components.TableRow{
			{Label: "Title", Value: item.Title},
			{Label: "Saved", Value: item.SavedAt.Local().Format(time.RFC1123)},
			{Label: "ID", Value: item.ID},
		}, m.width)
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

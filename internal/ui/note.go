package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/uddict/dictation-app/cli/internal/export"
	"github.com/uddict/dictation-app/cli/internal/form"
	"github.com/uddict/dictation-app/cli/internal/record"
	"github.com/uddict/dictation-app/cli/internal/store"
	"github.com/uddict/dictation-app/cli/internal/ui/components"
)

var sessionSeq atomic.Uint64

const noticeTTL = 3 * time.Second

// --- Messages ---

// screenMsg is implemented by every message addressed to one screen. The app
// drops those whose screen is gone.
type screenMsg interface {
	sessionID() uint64
}

type redirectMsg struct{ session uint64 }

type exportDoneMsg struct {
	session uint64
	result  export.Result
}

type exportFailedMsg struct {
	session uint64
	err     error
}

type saveDoneMsg struct {
	session  uint64
	note     store.Note
	snapshot *record.Branch
}

type saveFailedMsg struct {
	session uint64
	err     error
}

type copiedMsg struct {
	session uint64
	label   string
	err     error
}

type clearNoticeMsg struct {
	session uint64
	seq     int
}

func (m redirectMsg) sessionID() uint64     { return m.session }
func (m exportDoneMsg) sessionID() uint64   { return m.session }
func (m exportFailedMsg) sessionID() uint64 { return m.session }
func (m saveDoneMsg) sessionID() uint64     { return m.session }
func (m saveFailedMsg) sessionID() uint64   { return m.session }
func (m copiedMsg) sessionID() uint64       { return m.session }
func (m clearNoticeMsg) sessionID() uint64  { return m.session }

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeWarning
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
}

// --- Note Screen ---

// NoteScreen shows one record under a variant. It owns the only mutable
// reference to the current snapshot; every render reads a snapshot captured
// at that moment.
type NoteScreen struct {
	variant  Variant
	styles   Styles
	logger   *zap.Logger
	session  uint64
	renderer form.Renderer

	// nil when the screen mounted without a record
	editor *form.Editor
	tree   form.Tree
	fields []form.Node
	cursor *components.List

	bridge   *export.Bridge
	saver    Saver
	copyText func(string) error

	editing       bool
	editPath      record.Path
	editLabel     string
	editMultiline bool
	editSeed      string
	input         textinput.Model
	area          textarea.Model

	preview     bool
	previewView viewport.Model
	body        viewport.Model

	confirmLeave bool
	downloading  bool
	saving       bool
	lastExport   string

	notice    *notice
	noticeSeq int
	errTitle  string
	errText   string

	closed bool
	width  int
	height int
}

// ScreenDeps carries the collaborators a note screen talks to.
type ScreenDeps struct {
	Styles Styles
	Logger *zap.Logger
	Bridge *export.Bridge
	Saver  Saver
	// Copy defaults to the system clipboard.
	Copy func(string) error
}

// NewNoteScreen mounts rec under variant. A nil or empty rec produces a
// screen whose Init redirects to the landing route.
func NewNoteScreen(variant Variant, rec *record.Branch, deps ScreenDeps) NoteScreen {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyFn := deps.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	m := NoteScreen{
		variant:     variant,
		styles:      deps.Styles,
		logger:      logger.With(zap.String("screen", variant.Name)),
		session:     sessionSeq.Add(1),
		renderer:    form.NewRenderer(variant.Policy, logger),
		cursor:      components.NewList(1),
		bridge:      deps.Bridge,
		saver:       deps.Saver,
		copyText:    copyFn,
		body:        viewport.New(80, 20),
		previewView: viewport.New(80, 20),
	}
	if rec != nil && rec.Len() > 0 {
		m.editor = form.NewEditor(rec)
		m.rerender()
	}
	return m
}

// Session identifies this screen instance.
func (m NoteScreen) Session() uint64 { return m.session }

// Variant returns the screen flavour.
func (m NoteScreen) Variant() Variant { return m.variant }

// Closed reports whether the user left the screen.
func (m NoteScreen) Closed() bool { return m.closed }

// Mounted reports whether the screen holds a record.
func (m NoteScreen) Mounted() bool { return m.editor != nil }

// Snapshot returns the current snapshot, or nil without a record.
func (m NoteScreen) Snapshot() *record.Branch {
	if m.editor == nil {
		return nil
	}
	return m.editor.Snapshot()
}

// Dirty reports unsaved edits.
func (m NoteScreen) Dirty() bool {
	return m.editor != nil && m.editor.Dirty()
}

// Editing reports whether a field editor is open.
func (m NoteScreen) Editing() bool { return m.editing }

// Init runs the mount check exactly once.
func (m NoteScreen) Init() tea.Cmd {
	if m.editor != nil {
		return nil
	}
	session := m.session
	return func() tea.Msg { return redirectMsg{session: session} }
}

func (m *NoteScreen) rerender() {
	m.tree = m.renderer.Render(m.editor.Snapshot())
	m.fields = m.tree.Fields()
	m.cursor.Resize(len(m.fields))
	m.refreshBody()
}

func (m NoteScreen) focused() (form.Node, bool) {
	i := m.cursor.Selected()
	if i < 0 || i >= len(m.fields) {
		return form.Node{}, false
	}
	return m.fields[i], true
}

// SetSize lays the screen out for a terminal of the given size.
func (m *NoteScreen) SetSize(width, height int) {
	m.width = width
	m.height = height
	bodyHeight := max(height-12, 5)
	bodyWidth := max(width-4, 20)
	m.body.Width = bodyWidth
	m.body.Height = bodyHeight
	m.previewView.Width = bodyWidth
	m.previewView.Height = bodyHeight
	m.cursor.SetPageSize(bodyHeight)
	if m.editing {
		if m.editMultiline {
			m.area.SetWidth(max(components.BoxContentWidth(width), 40))
		} else {
			m.input.Width = max(components.BoxContentWidth(width)-4, 36)
		}
	}
	if m.editor != nil {
		m.refreshBody()
	}
}

func (m NoteScreen) Update(msg tea.Msg) (NoteScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		m.downloading = false
		m.lastExport = msg.result.Location
		m.errTitle, m.errText = "", ""
		cmd := m.setNotice(noticeSuccess, "Downloaded to "+msg.result.Location)
		return m, cmd
	case exportFailedMsg:
		m.downloading = false
		if errors.Is(msg.err, export.ErrExportInFlight) {
			cmd := m.setNotice(noticeWarning, "download already in progress")
			return m, cmd
		}
		m.errTitle = "Download Failed"
		m.errText = msg.err.Error() + "\n\nPress d to try again."
		return m, nil
	case saveDoneMsg:
		m.saving = false
		m.editor.MarkSaved(msg.snapshot)
		m.errTitle, m.errText = "", ""
		cmd := m.setNotice(noticeSuccess, "Saved "+msg.note.Title)
		return m, cmd
	case saveFailedMsg:
		m.saving = false
		m.errTitle = "Save Failed"
		m.errText = msg.err.Error()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			cmd := m.setNotice(noticeError, "copy failed: "+msg.err.Error())
			return m, cmd
		}
		cmd := m.setNotice(noticeInfo, "Copied "+msg.label)
		return m, cmd
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	if m.editing {
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m NoteScreen) handleKeys(msg tea.KeyMsg) (NoteScreen, tea.Cmd) {
	if m.editor == nil {
		if isBack(msg) {
			m.closed = true
		}
		return m, nil
	}
	switch {
	case m.editing:
		return m.handleEditKeys(msg)
	case m.confirmLeave:
		switch {
		case isConfirm(msg):
			m.confirmLeave = false
			m.closed = true
		case isDeny(msg):
			m.confirmLeave = false
		}
		return m, nil
	case m.preview:
		switch {
		case isBack(msg), isKey(msg, "p"):
			m.preview = false
		case isDown(msg):
			m.previewView.SetYOffset(m.previewView.YOffset + 1)
		case isUp(msg):
			m.previewView.SetYOffset(m.previewView.YOffset - 1)
		case isPageDown(msg):
			m.previewView.SetYOffset(m.previewView.YOffset + m.previewView.Height)
		case isPageUp(msg):
			m.previewView.SetYOffset(m.previewView.YOffset - m.previewView.Height)
		}
		return m, nil
	}

	switch {
	case isDown(msg):
		m.cursor.Down()
		m.refreshBody()
	case isUp(msg):
		m.cursor.Up()
		m.refreshBody()
	case isPageDown(msg):
		for i := 0; i < m.body.Height; i++ {
			m.cursor.Down()
		}
		m.refreshBody()
	case isPageUp(msg):
		for i := 0; i < m.body.Height; i++ {
			m.cursor.Up()
		}
		m.refreshBody()
	case isEnter(msg):
		return m.openEditor()
	case isKey(msg, "d"):
		return m.startDownload()
	case isKey(msg, "s"):
		return m.startSave()
	case isKey(msg, "p"):
		return m.openPreview()
	case isKey(msg, "y"):
		return m.copyFocused()
	case isBack(msg):
		if m.editor.Dirty() && m.saver != nil {
			m.confirmLeave = true
			return m, nil
		}
		m.closed = true
	}
	return m, nil
}

// --- Editing ---

func (m NoteScreen) openEditor() (NoteScreen, tea.Cmd) {
	field, ok := m.focused()
	if !ok {
		return m, nil
	}
	if !m.variant.Policy.Editable || !field.Editable {
		cmd := m.setNotice(noticeWarning, m.variant.Title+" are read-only")
		return m, cmd
	}
	m.editing = true
	m.editPath = field.Path
	m.editLabel = labelPath(field.Path)
	// the single-line input folds newlines into spaces
	m.editMultiline = field.Multiline || strings.ContainsRune(field.Text, '\n')
	if m.editMultiline {
		m.area = textarea.New()
		m.area.ShowLineNumbers = false
		m.area.CharLimit = 0
		m.area.SetWidth(max(components.BoxContentWidth(m.width), 40))
		m.area.SetHeight(8)
		m.area.SetValue(field.Text)
		m.editSeed = m.area.Value()
		cmd := m.area.Focus()
		return m, cmd
	}
	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Width = max(components.BoxContentWidth(m.width)-4, 36)
	m.input.SetValue(field.Text)
	m.input.CursorEnd()
	m.editSeed = m.input.Value()
	cmd := m.input.Focus()
	return m, cmd
}

func (m NoteScreen) handleEditKeys(msg tea.KeyMsg) (NoteScreen, tea.Cmd) {
	switch {
	case isBack(msg):
		m.editing = false
		return m, nil
	case isCommit(msg, m.editMultiline):
		value := m.input.Value()
		if m.editMultiline {
			value = m.area.Value()
		}
		m.editing = false
		if value == m.editSeed {
			return m, nil
		}
		if err := m.editor.Apply(m.editPath, value); err != nil {
			m.logger.Warn("edit rejected", zap.String("path", m.editPath.String()), zap.Error(err))
			cmd := m.setNotice(noticeError, err.Error())
			return m, cmd
		}
		m.rerender()
		cmd := m.setNotice(noticeInfo, "Updated "+m.editLabel)
		return m, cmd
	}
	return m.updateEditor(msg)
}

func (m NoteScreen) updateEditor(msg tea.Msg) (NoteScreen, tea.Cmd) {
	var cmd tea.Cmd
	if m.editMultiline {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// --- Actions ---

func (m NoteScreen) startDownload() (NoteScreen, tea.Cmd) {
	if m.bridge == nil {
		cmd := m.setNotice(noticeError, "download unavailable")
		return m, cmd
	}
	if m.downloading || m.bridge.Pending() {
		cmd := m.setNotice(noticeWarning, "download already in progress")
		return m, cmd
	}
	m.downloading = true
	m.errTitle, m.errText = "", ""
	bridge := m.bridge
	snapshot := m.editor.Snapshot()
	title := m.variant.Title
	session := m.session
	return m, func() tea.Msg {
		res, err := bridge.Export(context.Background(), snapshot, title)
		if err != nil {
			return exportFailedMsg{session: session, err: err}
		}
		return exportDoneMsg{session: session, result: res}
	}
}

func (m NoteScreen) startSave() (NoteScreen, tea.Cmd) {
	if m.saver == nil {
		cmd := m.setNotice(noticeWarning, "save unavailable")
		return m, cmd
	}
	if m.saving {
		cmd := m.setNotice(noticeWarning, "save already in progress")
		return m, cmd
	}
	m.saving = true
	saver := m.saver
	snapshot := m.editor.Snapshot()
	title := m.variant.Title
	session := m.session
	logger := m.logger
	return m, func() tea.Msg {
		note, err := saver.Save(context.Background(), title, snapshot)
		if err != nil {
			logger.Error("save failed", zap.Error(err))
			return saveFailedMsg{session: session, err: err}
		}
		logger.Info("note saved", zap.String("id", note.ID), zap.String("title", note.Title))
		return saveDoneMsg{session: session, note: note, snapshot: snapshot}
	}
}

func (m NoteScreen) openPreview() (NoteScreen, tea.Cmd) {
	md := export.Markdown(export.Document{Title: m.variant.Title, Record: m.editor.Snapshot()})
	out, err := renderMarkdown(md, m.styles.Markdown, m.previewView.Width)
	if err != nil {
		m.logger.Warn("preview render failed", zap.Error(err))
		out = md
	}
	m.previewView.SetContent(out)
	m.previewView.GotoTop()
	m.preview = true
	return m, nil
}

func (m NoteScreen) copyFocused() (NoteScreen, tea.Cmd) {
	field, ok := m.focused()
	if !ok {
		return m, nil
	}
	copyFn := m.copyText
	session := m.session
	label := field.Label
	text := field.Text
	return m, func() tea.Msg {
		return copiedMsg{session: session, label: label, err: copyFn(text)}
	}
}

func (m *NoteScreen) setNotice(level noticeLevel, text string) tea.Cmd {
	m.noticeSeq++
	m.notice = &notice{level: level, text: components.SanitizeOneLine(text)}
	seq := m.noticeSeq
	session := m.session
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{session: session, seq: seq}
	})
}

// --- View ---

func (m *NoteScreen) refreshBody() {
	lines, focus := m.bodyLines()
	m.body.SetContent(strings.Join(lines, "\n"))
	if focus < 0 {
		return
	}
	if focus < m.body.YOffset {
		m.body.SetYOffset(focus)
	} else if focus >= m.body.YOffset+m.body.Height {
		m.body.SetYOffset(focus - m.body.Height + 1)
	}
}

func (m NoteScreen) bodyLines() ([]string, int) {
	var lines []string
	focus := -1
	fieldIdx := 0
	selected := m.cursor.Selected()
	width := max(m.body.Width, 20)

	var walk func(nodes []form.Node)
	walk = func(nodes []form.Node) {
		for _, n := range nodes {
			indent := strings.Repeat("  ", n.Depth)
			if n.Kind == form.KindSection {
				lines = append(lines, "  "+indent+m.styles.Section.Render(components.SanitizeOneLine(n.Label)))
				walk(n.Children)
				continue
			}
			marker := "  "
			labelStyle := m.styles.Label
			if fieldIdx == selected {
				marker = m.styles.Selected.Render("> ")
				labelStyle = m.styles.Selected
				focus = len(lines)
			}
			label := components.SanitizeOneLine(n.Label) + ":"
			avail := max(width-lipgloss.Width(indent+label)-4, 8)
			value := m.styles.Value.Render(components.ClampTextWidth(n.Text, avail))
			switch {
			case n.Text == "":
				value = m.styles.Muted.Render("(empty)")
			case n.Multiline:
				value += m.styles.Muted.Render(" ¶")
			}
			lines = append(lines, marker+indent+labelStyle.Render(label)+" "+value)
			fieldIdx++
		}
	}
	walk(m.tree.Nodes)
	return lines, focus
}

func (m NoteScreen) View() string {
	s := m.styles
	if m.editor == nil {
		return s.Muted.Render("No note loaded.")
	}

	var b strings.Builder
	header := s.Banner.Render(m.variant.Title)
	if !m.variant.Policy.Editable {
		header += "  " + s.ReadOnly.Render("read-only")
	}
	if m.editor.Dirty() {
		header += "  " + s.Accent.Render("● modified")
	}
	if m.downloading {
		header += "  " + s.Muted.Render("downloading…")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.confirmLeave:
		b.WriteString(s.Frame.ConfirmPreviewDialog("Unsaved Changes", "Leave without saving?",
			changedFields(m.tree, m.editor.Saved()), m.width))
	case m.preview:
		b.WriteString(s.Frame.TitledBox("Preview", m.previewView.View(), m.width))
	case len(m.fields) == 0:
		b.WriteString(s.Frame.Box(s.Muted.Render("Nothing to show for this note."), m.width))
	default:
		b.WriteString(m.body.View())
	}

	if n := len(m.tree.Diagnostics); n > 0 {
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render(fmt.Sprintf("%d self-referential section(s) skipped", n)))
	}

	if m.editing {
		b.WriteString("\n\n")
		editor := m.input.View()
		hint := "enter: save | esc: cancel"
		if m.editMultiline {
			editor = m.area.View()
			hint = "ctrl+s: save | esc: cancel"
		}
		b.WriteString(s.Frame.ActiveTitledBox("Edit "+m.editLabel, editor+"\n\n"+s.Muted.Render(hint), m.width))
	}

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Frame.ErrorBox(m.errTitle, m.errText, m.width))
	} else if m.notice != nil {
		b.WriteString("\n\n")
		b.WriteString(m.renderNotice())
	}

	b.WriteString("\n\n")
	b.WriteString(s.Frame.StatusBar(m.statusHints(), m.width))
	return b.String()
}

func (m NoteScreen) renderNotice() string {
	s := m.styles
	switch m.notice.level {
	case noticeSuccess:
		return s.Success.Render("✓ " + m.notice.text)
	case noticeWarning:
		return s.Accent.Render("! " + m.notice.text)
	case noticeError:
		return s.Error.Render("✗ " + m.notice.text)
	}
	return s.Muted.Render(m.notice.text)
}

func (m NoteScreen) statusHints() []string {
	f := m.styles.Frame
	switch {
	case m.editing:
		return []string{f.Hint("esc", "Cancel")}
	case m.confirmLeave:
		return []string{f.Hint("y", "Leave"), f.Hint("n", "Stay")}
	case m.preview:
		return []string{f.Hint("↑/↓", "Scroll"), f.Hint("p/esc", "Close")}
	}
	hints := []string{f.Hint("↑/↓", "Move")}
	if m.variant.Policy.Editable {
		hints = append(hints, f.Hint("enter", "Edit"))
	}
	hints = append(hints,
		f.Hint("d", "Download"),
		f.Hint("s", "Save"),
		f.Hint("p", "Preview"),
		f.Hint("y", "Copy"),
		f.Hint("esc", "Back"),
	)
	return hints
}

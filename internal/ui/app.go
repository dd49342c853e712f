package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/uddict/dictation-app/cli/internal/export"
	"github.com/uddict/dictation-app/cli/internal/record"
	"github.com/uddict/dictation-app/cli/internal/ui/components"
)

const appNoticeTTL = 4 * time.Second

type clearAppNoticeMsg struct{ seq int }

// AppOptions wires the application model.
type AppOptions struct {
	Styles Styles
	Logger *zap.Logger
	Store  NoteStore
	Bridge *export.Bridge
	// Copy replaces the system clipboard, mainly in tests.
	Copy func(string) error
}

// --- App Model ---

// App is the root TUI model. It routes between the landing list and at most
// one note screen.
type App struct {
	opts    AppOptions
	logger  *zap.Logger
	landing LandingModel
	screen  *NoteScreen

	notice    string
	noticeSeq int
	errText   string

	width  int
	height int
}

// NewApp creates the root application model on the landing route.
func NewApp(opts AppOptions) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.Logger = logger
	return App{
		opts:    opts,
		logger:  logger,
		landing: NewLandingModel(opts.Store, opts.Styles),
	}
}

// WithNote starts the app on a note screen showing rec.
func (a App) WithNote(variant Variant, rec *record.Branch) App {
	screen := a.newScreen(variant, rec)
	a.screen = &screen
	return a
}

// OnLanding reports whether the landing route is showing.
func (a App) OnLanding() bool { return a.screen == nil }

// Screen returns the active note screen, if any.
func (a App) Screen() (NoteScreen, bool) {
	if a.screen == nil {
		return NoteScreen{}, false
	}
	return *a.screen, true
}

func (a App) newScreen(variant Variant, rec *record.Branch) NoteScreen {
	screen := NewNoteScreen(variant, rec, ScreenDeps{
		Styles: a.opts.Styles,
		Logger: a.logger,
		Bridge: a.opts.Bridge,
		Saver:  a.opts.Store,
		Copy:   a.opts.Copy,
	})
	if a.width > 0 {
		screen.SetSize(a.width, a.height)
	}
	return screen
}

func (a App) Init() tea.Cmd {
	if a.screen != nil {
		return a.screen.Init()
	}
	return a.landing.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.landing.setSize(msg.Width, msg.Height)
		if a.screen != nil {
			a.screen.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.screen == nil && isQuit(msg) {
			return a, tea.Quit
		}

	case clearAppNoticeMsg:
		if msg.seq == a.noticeSeq {
			a.notice = ""
		}
		return a, nil

	case redirectMsg:
		if a.screen == nil || a.screen.Session() != msg.session {
			return a, nil
		}
		a.logger.Info("no record to show, redirecting to landing",
			zap.String("screen", a.screen.Variant().Name))
		a.screen = nil
		noticeCmd := a.setNotice("Nothing to show: the note is missing or empty.")
		return a, tea.Batch(a.landing.Init(), noticeCmd)

	case screenMsg:
		if a.screen == nil || a.screen.Session() != msg.sessionID() {
			// the screen this was meant for is gone
			a.logger.Debug("dropping message for closed screen", zap.String("msg", fmt.Sprintf("%T", msg)))
			return a, nil
		}

	case noteOpenedMsg:
		if msg.err != nil {
			a.errText = msg.err.Error()
			return a, nil
		}
		a.errText = ""
		screen := a.newScreen(msg.variant, msg.note.Record)
		a.screen = &screen
		return a, screen.Init()
	}

	if a.screen != nil {
		screen, cmd := a.screen.Update(msg)
		if screen.Closed() {
			a.screen = nil
			return a, tea.Batch(cmd, a.landing.Init())
		}
		a.screen = &screen
		return a, cmd
	}

	var cmd tea.Cmd
	a.landing, cmd = a.landing.Update(msg)
	return a, cmd
}

func (a *App) setNotice(text string) tea.Cmd {
	a.noticeSeq++
	a.notice = components.SanitizeOneLine(text)
	seq := a.noticeSeq
	return tea.Tick(appNoticeTTL, func(time.Time) tea.Msg {
		return clearAppNoticeMsg{seq: seq}
	})
}

func (a App) View() string {
	s := a.opts.Styles
	if a.screen != nil {
		return centerBlock(a.screen.View(), a.width)
	}

	banner := centerBlock(RenderBanner(s), a.width)
	content := centerBlock(a.landing.View(), a.width)

	feedback := ""
	if a.errText != "" {
		feedback = "\n\n" + centerBlock(s.Frame.ErrorBox("Could Not Open Note", a.errText, a.width), a.width)
	} else if a.notice != "" {
		feedback = "\n\n" + centerBlock(s.Frame.TitledBox("Info", a.notice, a.width), a.width)
	}

	hints := s.Frame.StatusBar([]string{
		s.Frame.Hint("↑/↓", "Move"),
		s.Frame.Hint("enter", ProgressVariant.Title),
		s.Frame.Hint("v", SOAPVariant.Title),
		s.Frame.Hint("x", "Delete"),
		s.Frame.Hint("r", "Reload"),
		s.Frame.Hint("q", "Quit"),
	}, a.width)

	return fmt.Sprintf("%s\n%s%s\n\n%s", banner, content, feedback, hints)
}

// centerBlock pads every line of s by the same amount so the widest line is
// centred in width.
func centerBlock(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, lipgloss.Width(line))
	}
	if widest >= width {
		return s
	}
	pad := strings.Repeat(" ", (width-widest)/2)
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

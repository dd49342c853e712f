// Package cmd holds the notes subcommands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/uddict/dictation-app/cli/internal/config"
	"github.com/uddict/dictation-app/cli/internal/export"
	"github.com/uddict/dictation-app/cli/internal/logging"
	"github.com/uddict/dictation-app/cli/internal/record"
	"github.com/uddict/dictation-app/cli/internal/store"
	"github.com/uddict/dictation-app/cli/internal/ui"
)

// ErrNoTerminal is returned when a screen is opened without a terminal.
var ErrNoTerminal = errors.New("the note screens need an interactive terminal")

// Env is what every command runs with. The root command fills in Config and
// Logger before a subcommand runs.
type Env struct {
	Config  *config.Config
	Logger  *zap.Logger
	Verbose bool

	In  io.Reader
	Out io.Writer

	// Run drives a TUI model to completion. Tests swap it out.
	Run func(tea.Model) error
}

// NewEnv returns an env wired to the process streams.
func NewEnv() *Env {
	return &Env{In: os.Stdin, Out: os.Stdout, Run: runProgram}
}

// Setup loads the config file and builds the logger.
func (e *Env) Setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Verbose: e.Verbose,
	})
	if err != nil {
		return err
	}
	e.Config = cfg
	e.Logger = logger
	return nil
}

// Sync flushes buffered log entries.
func (e *Env) Sync() {
	if e.Logger != nil {
		_ = e.Logger.Sync()
	}
}

func (e *Env) config() *config.Config {
	if e.Config == nil {
		e.Config = config.Default()
	}
	return e.Config
}

func (e *Env) logger() *zap.Logger {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e.Logger
}

func (e *Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

// OpenStore opens the configured notes database.
func (e *Env) OpenStore() (*store.Store, error) {
	s, err := store.Open(e.config().StorePath)
	if err != nil {
		return nil, fmt.Errorf("open notes: %w", err)
	}
	return s, nil
}

// NewBridge builds the export bridge for the configured target. Empty dir or
// format fall back to the config.
func (e *Env) NewBridge(dir, format string) (*export.Bridge, error) {
	cfg := e.config()
	if dir == "" {
		dir = cfg.ExportDir
	}
	if format == "" {
		format = cfg.ExportFormat
	}
	exp, err := export.New(cfg.DocumentURL, cfg.APIKey, dir, format)
	if err != nil {
		return nil, err
	}
	return export.NewBridge(exp, e.logger()), nil
}

// readRecord decodes the record at path; "-" reads standard input.
func (e *Env) readRecord(path string) (*record.Branch, error) {
	if path == "-" {
		in := e.In
		if in == nil {
			in = os.Stdin
		}
		return record.Decode(in)
	}
	return record.DecodeFile(path)
}

// RunApp opens the TUI on the landing list, or on rec under variant when
// withNote is set.
func (e *Env) RunApp(variant ui.Variant, rec *record.Branch, withNote bool) error {
	cfg := e.config()
	logger := e.logger()

	notes, err := e.OpenStore()
	if err != nil {
		return err
	}
	defer notes.Close()

	bridge, err := e.NewBridge("", "")
	if err != nil {
		return err
	}

	app := ui.NewApp(ui.AppOptions{
		Styles: ui.NewStyles(cfg.Theme),
		Logger: logger,
		Store:  notes,
		Bridge: bridge,
	})
	if withNote {
		app = app.WithNote(variant, rec)
	}

	run := e.Run
	if run == nil {
		run = runProgram
	}
	logger.Debug("starting tui", zap.Bool("with_note", withNote), zap.String("variant", variant.Name))
	return run(app)
}

func runProgram(model tea.Model) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

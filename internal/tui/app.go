package tui

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/pitwall/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

// App is the interactive dashboard program.
type App struct {
	model   Model
	program *tea.Program
	opts    []tea.ProgramOption
}

// New creates an App showing data from src.
func New(ctx context.Context, src source.Source, opts ...Option) *App {
	return &App{
		model: NewModel(ctx, src, opts...),
		opts:  []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run starts the dashboard and blocks until the user quits or a signal
// arrives. The view is unmounted on return so in-flight loads stop.
func (a *App) Run() error {
	defer a.model.Unmount()

	opts := append([]tea.ProgramOption{tea.WithContext(a.model.Context())}, a.opts...)
	a.program = tea.NewProgram(a.model, opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigChan:
			a.program.Send(tea.Quit())
		case <-done:
		}
	}()

	_, err := a.program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && a.model.Context().Err() != nil {
		// The parent context ended the program; that is a normal exit.
		return nil
	}
	return err
}

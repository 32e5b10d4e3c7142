// Package tui holds the interactive terminal prompts of the keeper CLI: the
// masked PIN prompt and the restore confirmation.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

var ErrUserQuit = errors.New("cancelled by user")

type TUI struct {
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

// New returns prompts reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer, logger *logger.Logger) *TUI {
	return &TUI{in: in, out: out, logger: logger}
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
}

// PromptPIN asks for a PIN, twice when withConfirmation is set. It returns
// [ErrUserQuit] when the prompt is cancelled.
func (t *TUI) PromptPIN(ctx context.Context, title string, withConfirmation bool) (string, error) {
	finalModel, err := t.run(ctx, NewPINModel(title, withConfirmation))
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(*PINModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	pin, ok := result.PIN()
	if !ok {
		return "", ErrUserQuit
	}
	return pin, nil
}

// ConfirmRestore shows preview and reports whether the user approved.
func (t *TUI) ConfirmRestore(ctx context.Context, preview service.RestorePreview) (bool, error) {
	finalModel, err := t.run(ctx, NewConfirmModel(preview))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*ConfirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.Confirmed(), nil
}

// ConfirmFunc adapts ConfirmRestore to [service.ConfirmFunc]. A prompt that
// fails to run counts as declined.
func (t *TUI) ConfirmFunc() service.ConfirmFunc {
	return func(ctx context.Context, preview service.RestorePreview) bool {
		ok, err := t.ConfirmRestore(ctx, preview)
		if err != nil {
			t.logger.Err(err).Str("func", "TUI.ConfirmFunc").Msg("restore confirmation prompt failed")
			return false
		}
		return ok
	}
}

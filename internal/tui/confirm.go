package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/budgetboard/internal/dashboard"
)

const confirmKey = "confirm"

func newConfirmForm(prompt string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key(confirmKey).
				Title(prompt).
				Affirmative("Reset").
				Negative("Cancel"),
		),
	).WithShowHelp(false)
}

// Confirmer asks a yes/no question with a standalone huh form. A nil
// Input or Output uses the terminal.
type Confirmer struct {
	Input  io.Reader
	Output io.Writer
}

var _ dashboard.Confirmer = Confirmer{}

// Confirm implements dashboard.Confirmer. Aborting the form counts as no.
func (c Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	form := newConfirmForm(prompt)
	if c.Input != nil {
		form = form.WithInput(c.Input)
	}
	if c.Output != nil {
		form = form.WithOutput(c.Output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return form.GetBool(confirmKey), nil
}

func (a App) startReset() (tea.Model, tea.Cmd) {
	a.dash.RequestReset()
	a.refresh()

	form := newConfirmForm(dashboard.ResetPrompt)
	// embedded: completion is observed through form.State, not a quit
	form.SubmitCmd = nil
	form.CancelCmd = nil
	if a.width > 0 {
		form = form.WithWidth(min(a.width, 72))
	}
	a.resetForm = form
	return a, a.resetForm.Init()
}

func (a App) updateResetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.resetForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.resetForm = f
	}

	switch a.resetForm.State {
	case huh.StateCompleted:
		confirmed := a.resetForm.GetBool(confirmKey)
		a.resetForm = nil
		return a.finishReset(confirmed)
	case huh.StateAborted:
		a.resetForm = nil
		return a.finishReset(false)
	}

	return a, cmd
}

// finishReset resolves a pending reset. The acknowledgment flash arrives
// with the dashboard's reset event.
func (a App) finishReset(confirmed bool) (tea.Model, tea.Cmd) {
	if !confirmed {
		a.dash.CancelReset()
		a.refresh()
		return a, nil
	}
	return a, a.report(a.dash.ConfirmReset())
}

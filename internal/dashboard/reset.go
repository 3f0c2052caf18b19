package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/theirongolddev/budgetboard/internal/budget"
	"github.com/theirongolddev/budgetboard/internal/model"
)

// ResetState tracks the two-step reset confirmation.
type ResetState int

const (
	ResetIdle ResetState = iota
	ResetConfirming
)

func (s ResetState) String() string {
	if s == ResetConfirming {
		return "confirming"
	}
	return "idle"
}

// Reset prompt and acknowledgment text.
const (
	ResetPrompt  = "Are you sure you want to reset all data? This action cannot be undone!"
	ResetMessage = "Data has been successfully reset!"
)

// ErrNoResetPending is returned by ConfirmReset outside the confirming state.
var ErrNoResetPending = errors.New("no reset pending confirmation")

var errUnchanged = errors.New("state unchanged")

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// RequestReset enters the confirming state.
func (d *Dashboard) RequestReset() {
	d.setResetState(ResetConfirming)
}

// CancelReset leaves the confirming state without touching any data.
func (d *Dashboard) CancelReset() {
	d.setResetState(ResetIdle)
}

func (d *Dashboard) setResetState(s ResetState) {
	_ = d.commit(func() (Event, error) {
		if d.reset == s {
			return Event{}, errUnchanged
		}
		d.reset = s
		return d.eventLocked(ChangeConfirm, ""), nil
	})
}

// ConfirmReset restores the default document and period and clears the
// store. Persisted keys stay absent until the next change writes them.
func (d *Dashboard) ConfirmReset() error {
	return d.commit(func() (Event, error) {
		if d.reset != ResetConfirming {
			return Event{}, ErrNoResetPending
		}
		d.doc = budget.Default()
		d.period = model.DefaultPeriod()
		d.reset = ResetIdle
		if err := d.store.Clear(); err != nil {
			d.log.Warn("clearing store failed", "err", err)
		}
		d.log.Info("budget reset to defaults")
		return d.eventLocked(ChangeReset, ResetMessage), nil
	})
}

// Reset asks c for confirmation and resets on yes. It reports whether the
// reset happened; a declined or failed prompt leaves everything unchanged.
func (d *Dashboard) Reset(ctx context.Context, c Confirmer) (bool, error) {
	d.RequestReset()
	ok, err := c.Confirm(ctx, ResetPrompt)
	if err != nil {
		d.CancelReset()
		return false, fmt.Errorf("confirming reset: %w", err)
	}
	if !ok {
		d.CancelReset()
		return false, nil
	}
	if err := d.ConfirmReset(); err != nil {
		return false, err
	}
	return true, nil
}

// Package tui provides the interactive Bubble Tea budget dashboard.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/budgetboard/internal/dashboard"
	"github.com/theirongolddev/budgetboard/internal/model"
	"github.com/theirongolddev/budgetboard/internal/tui/components"
)

// EventMsg carries a dashboard change into the update loop.
type EventMsg struct {
	Event dashboard.Event
}

type clearFlashMsg struct {
	id int
}

// App is the root Bubble Tea model.
type App struct {
	dash        *dashboard.Dashboard
	snap        dashboard.Snapshot
	events      chan dashboard.Event
	unsubscribe func()
	location    string

	// UI state
	width    int
	height   int
	category model.Category
	cursor   int
	showHelp bool

	// Inline field editor
	edit editState

	// Reset confirmation (huh form)
	resetForm *huh.Form

	// Transient status line message
	flash    string
	flashErr bool
	flashID  int
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5

	flashDuration = 3 * time.Second
	eventBuffer   = 16
)

// NewApp builds the dashboard model over d. location is shown in the
// status bar to say where changes are being saved.
func NewApp(d *dashboard.Dashboard, location string) App {
	events := make(chan dashboard.Event, eventBuffer)
	unsubscribe := d.Subscribe(func(ev dashboard.Event) {
		// non-blocking: the update loop re-reads the snapshot after its own changes
		select {
		case events <- ev:
		default:
		}
	})

	return App{
		dash:        d,
		snap:        d.Snapshot(),
		events:      events,
		unsubscribe: unsubscribe,
		location:    location,
		category:    model.CategoryIncome,
	}
}

// Close detaches the app from the dashboard.
func (a App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return waitForEvent(a.events)
}

// waitForEvent blocks until the dashboard publishes the next change.
func waitForEvent(events chan dashboard.Event) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: <-events}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.resetForm != nil {
			a.resetForm = a.resetForm.WithWidth(min(msg.Width, 72))
		}
		return a, nil

	case EventMsg:
		a.refresh()
		cmds := []tea.Cmd{waitForEvent(a.events)}
		if msg.Event.Message != "" {
			cmds = append(cmds, a.setFlash(msg.Event.Message, false))
		}
		return a, tea.Batch(cmds...)

	case clearFlashMsg:
		if msg.id == a.flashID {
			a.flash = ""
			a.flashErr = false
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages (cursor blinks, form internals)
	if a.resetForm != nil {
		return a.updateResetForm(msg)
	}
	if a.edit.active {
		var cmd tea.Cmd
		a.edit.input, cmd = a.edit.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Reset confirmation intercepts all keys
	if a.resetForm != nil {
		if key == "esc" {
			a.dash.CancelReset()
			a.resetForm = nil
			a.refresh()
			return a, nil
		}
		return a.updateResetForm(msg)
	}

	if a.edit.active {
		return a.updateEditInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if c, ok := components.CategoryByKey(key); ok {
		a.selectCategory(c)
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "tab", "right", "l":
		a.selectCategory(cycleCategory(a.category, 1))
	case "shift+tab", "left", "h":
		a.selectCategory(cycleCategory(a.category, -1))
	case "j", "down":
		if a.cursor < len(a.items())-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = max(len(a.items())-1, 0)
	case " ", "x":
		if it, ok := a.selectedItem(); ok {
			return a, a.report(a.dash.ToggleChecked(a.category, it.ID))
		}
	case "n":
		return a.startEdit(fieldName)
	case "p":
		return a.startEdit(fieldPlanned)
	case "a":
		return a.startEdit(fieldActual)
	case "m":
		a.dash.SetMonth(model.NextMonth(a.snap.Period.Month, 1))
		a.refresh()
	case "M":
		a.dash.SetMonth(model.NextMonth(a.snap.Period.Month, -1))
		a.refresh()
	case "y":
		a.dash.SetYear(model.NextYear(a.snap.Period.Year, 1))
		a.refresh()
	case "Y":
		a.dash.SetYear(model.NextYear(a.snap.Period.Year, -1))
		a.refresh()
	case "R":
		return a.startReset()
	}
	return a, nil
}

// refresh re-reads the dashboard after a change made from this loop.
func (a *App) refresh() {
	a.snap = a.dash.Snapshot()
	a.clampCursor()
}

// report refreshes after an edit and flashes err, if any.
func (a *App) report(err error) tea.Cmd {
	a.refresh()
	if err != nil {
		return a.setFlash(err.Error(), true)
	}
	return nil
}

func (a *App) setFlash(msg string, isErr bool) tea.Cmd {
	a.flashID++
	a.flash = msg
	a.flashErr = isErr
	id := a.flashID
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{id: id}
	})
}

func (a *App) selectCategory(c model.Category) {
	if c != a.category {
		a.category = c
		a.cursor = 0
	}
}

func (a *App) clampCursor() {
	n := len(a.items())
	if a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
}

func (a App) items() []model.LineItem {
	rec, _ := a.snap.Document.Record(a.category)
	return rec.Items
}

func (a App) selectedItem() (model.LineItem, bool) {
	items := a.items()
	if a.cursor < 0 || a.cursor >= len(items) {
		return model.LineItem{}, false
	}
	return items[a.cursor], true
}

func cycleCategory(c model.Category, step int) model.Category {
	n := len(model.Categories)
	for i, cat := range model.Categories {
		if cat == c {
			return model.Categories[((i+step)%n+n)%n]
		}
	}
	return model.Categories[0]
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Width = 30
	return ti
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editField int

const (
	fieldName editField = iota
	fieldPlanned
	fieldActual
)

func (f editField) label() string {
	switch f {
	case fieldPlanned:
		return "Planned"
	case fieldActual:
		return "Actual"
	default:
		return "Name"
	}
}

// editState tracks the inline editor for the selected item.
type editState struct {
	active bool
	field  editField
	itemID int
	input  textinput.Model
}

func (a App) startEdit(f editField) (tea.Model, tea.Cmd) {
	it, ok := a.selectedItem()
	if !ok {
		return a, nil
	}

	ti := newInput()
	ti.Prompt = fmt.Sprintf("%s › ", f.label())
	switch f {
	case fieldName:
		ti.Placeholder = "item name"
		ti.SetValue(it.Name)
	case fieldPlanned:
		ti.Placeholder = "0.00"
		ti.SetValue(it.Planned.String())
	case fieldActual:
		ti.Placeholder = "0.00"
		ti.SetValue(it.Actual.String())
	}
	ti.CursorEnd()
	ti.Focus()

	a.edit = editState{active: true, field: f, itemID: it.ID, input: ti}
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateEditInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.commitEdit()
		a.edit = editState{}
		return a, cmd
	case "esc":
		a.edit = editState{}
		return a, nil
	}

	var cmd tea.Cmd
	a.edit.input, cmd = a.edit.input.Update(msg)
	return a, cmd
}

// commitEdit writes the input value verbatim; amount parsing is the
// dashboard's job.
func (a *App) commitEdit() tea.Cmd {
	val := a.edit.input.Value()
	id := a.edit.itemID

	var err error
	switch a.edit.field {
	case fieldName:
		err = a.dash.UpdateName(a.category, id, val)
	case fieldPlanned:
		err = a.dash.UpdatePlanned(a.category, id, val)
	case fieldActual:
		err = a.dash.UpdateActual(a.category, id, val)
	}
	return a.report(err)
}

// Package dashboard owns the live budget document and selected period,
// serializes every change, and persists each one to the key-value store.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/theirongolddev/budgetboard/internal/budget"
	"github.com/theirongolddev/budgetboard/internal/model"
	"github.com/theirongolddev/budgetboard/internal/pipeline"
)

// Storage keys.
const (
	KeyDocument = "budgetData"
	KeyMonth    = "selectedMonth"
	KeyYear     = "selectedYear"
)

// ErrItemNotFound is returned when an edit names no existing line item.
var ErrItemNotFound = errors.New("line item not found")

// Store is the key-value persistence the dashboard writes through.
type Store interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Clear() error
}

// Change identifies what an Event carries.
type Change string

// Change kinds.
const (
	ChangeDocument Change = "document"
	ChangeMonth    Change = "month"
	ChangeYear     Change = "year"
	ChangeReset    Change = "reset"
	ChangeConfirm  Change = "confirm"
)

// Event is published after every committed change.
type Event struct {
	Change    Change
	Timestamp time.Time
	Snapshot  Snapshot
	Message   string
}

// Snapshot is a consistent view of the dashboard at one point in time.
type Snapshot struct {
	Document model.Document
	Period   model.Period
	Summary  model.Summary
	Reset    ResetState
}

// Dashboard is the single owner of budget state.
type Dashboard struct {
	store Store
	log   *slog.Logger

	// writeMu spans commit and publish so events leave in commit order.
	writeMu sync.Mutex

	mu     sync.RWMutex
	doc    model.Document
	period model.Period
	reset  ResetState

	subMu     sync.Mutex
	nextSubID int
	subs      map[int]func(Event)
}

// Open loads the persisted document and period from st. Missing keys fall
// back to defaults; unreadable or invalid values are logged and replaced.
// Every subsequent change is saved back to st.
func Open(st Store, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Dashboard{
		store:  st,
		log:    logger.With("component", "dashboard"),
		doc:    budget.Default(),
		period: model.DefaultPeriod(),
		subs:   make(map[int]func(Event)),
	}
	d.load()
	d.Subscribe(d.autosave)
	return d
}

func (d *Dashboard) load() {
	if raw, ok := d.read(KeyDocument); ok {
		doc, err := budget.Decode([]byte(raw))
		if err != nil {
			d.log.Error("stored budget is malformed, using defaults", "key", KeyDocument, "err", err)
		} else {
			d.doc = doc
		}
	}

	if raw, ok := d.read(KeyMonth); ok {
		if m, err := model.ParseMonth(raw); err != nil {
			d.log.Warn("ignoring stored month", "key", KeyMonth, "value", raw, "err", err)
		} else {
			d.period.Month = m
		}
	}

	if raw, ok := d.read(KeyYear); ok {
		if y, err := model.ParseYear(raw); err != nil {
			d.log.Warn("ignoring stored year", "key", KeyYear, "value", raw, "err", err)
		} else {
			d.period.Year = y
		}
	}
}

func (d *Dashboard) read(key string) (string, bool) {
	raw, ok, err := d.store.Load(key)
	if err != nil {
		d.log.Warn("load failed", "key", key, "err", err)
		return "", false
	}
	return raw, ok
}

// Snapshot returns the last committed state.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshotLocked()
}

func (d *Dashboard) snapshotLocked() Snapshot {
	return Snapshot{
		Document: d.doc,
		Period:   d.period,
		Summary:  pipeline.Aggregate(d.doc),
		Reset:    d.reset,
	}
}

// Document returns the current budget document.
func (d *Dashboard) Document() model.Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc
}

// Period returns the selected month and year.
func (d *Dashboard) Period() model.Period {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.period
}

// Summary aggregates the current document.
func (d *Dashboard) Summary() model.Summary {
	return pipeline.Aggregate(d.Document())
}

// UpdateActual sets an item's actual amount from raw user input.
func (d *Dashboard) UpdateActual(c model.Category, id int, raw string) error {
	return d.apply(budget.Mutation{Field: budget.FieldActual, Category: c, ID: id, Value: raw})
}

// UpdatePlanned sets an item's planned amount from raw user input.
func (d *Dashboard) UpdatePlanned(c model.Category, id int, raw string) error {
	return d.apply(budget.Mutation{Field: budget.FieldPlanned, Category: c, ID: id, Value: raw})
}

// UpdateName renames an item.
func (d *Dashboard) UpdateName(c model.Category, id int, name string) error {
	return d.apply(budget.Mutation{Field: budget.FieldName, Category: c, ID: id, Value: name})
}

// ToggleChecked flips an item's checked flag.
func (d *Dashboard) ToggleChecked(c model.Category, id int) error {
	return d.apply(budget.Mutation{Field: budget.FieldChecked, Category: c, ID: id})
}

func (d *Dashboard) apply(m budget.Mutation) error {
	err := d.commit(func() (Event, error) {
		next, ok := budget.Apply(d.doc, m)
		if !ok {
			return Event{}, fmt.Errorf("%s %s #%d: %w", m.Field, m.Category, m.ID, ErrItemNotFound)
		}
		d.doc = next
		return d.eventLocked(ChangeDocument, ""), nil
	})
	if err != nil {
		return err
	}
	d.log.Debug("item updated", "field", m.Field.String(), "category", string(m.Category), "id", m.ID)
	return nil
}

// SetMonth selects a month.
func (d *Dashboard) SetMonth(m model.Month) {
	_ = d.commit(func() (Event, error) {
		d.period.Month = m
		return d.eventLocked(ChangeMonth, ""), nil
	})
}

// SetYear selects a year.
func (d *Dashboard) SetYear(y model.Year) {
	_ = d.commit(func() (Event, error) {
		d.period.Year = y
		return d.eventLocked(ChangeYear, ""), nil
	})
}

// commit runs fn under the state lock and, unless it fails, publishes the
// event it returns before the next writer may commit.
func (d *Dashboard) commit(fn func() (Event, error)) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.mu.Lock()
	ev, err := fn()
	d.mu.Unlock()
	if err != nil {
		return err
	}
	d.publish(ev)
	return nil
}

func (d *Dashboard) eventLocked(c Change, msg string) Event {
	return Event{
		Change:    c,
		Timestamp: time.Now(),
		Snapshot:  d.snapshotLocked(),
		Message:   msg,
	}
}

// Subscribe registers fn for every future event and returns a function that
// removes it. Callbacks run synchronously on the goroutine that made the
// change, after the state lock is released, in subscription order. Events
// arrive in commit order. Callbacks may read the dashboard but must not
// change it.
func (d *Dashboard) Subscribe(fn func(Event)) func() {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	d.nextSubID++
	id := d.nextSubID
	d.subs[id] = fn
	return func() { d.unsubscribe(id) }
}

func (d *Dashboard) unsubscribe(id int) {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	delete(d.subs, id)
}

func (d *Dashboard) publish(ev Event) {
	d.subMu.Lock()
	ids := make([]int, 0, len(d.subs))
	for id := range d.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, d.subs[id])
	}
	d.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// autosave writes the key that changed. Reset clears the store itself and
// confirm prompts carry no state, so neither writes here.
func (d *Dashboard) autosave(ev Event) {
	var key, value string
	switch ev.Change {
	case ChangeDocument:
		data, err := budget.Encode(ev.Snapshot.Document)
		if err != nil {
			d.log.Warn("encoding budget failed", "err", err)
			return
		}
		key, value = KeyDocument, string(data)
	case ChangeMonth:
		key, value = KeyMonth, string(ev.Snapshot.Period.Month)
	case ChangeYear:
		key, value = KeyYear, string(ev.Snapshot.Period.Year)
	default:
		return
	}

	if err := d.store.Save(key, value); err != nil {
		d.log.Warn("save failed", "key", key, "err", err)
	}
}

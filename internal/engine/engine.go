// Package engine implements the checklist template-instantiation rules on top
// of a storage.Store: template ownership, checklist visibility, item parsing,
// the outfit calculator and the conversion between templates and checklists.
//
// Every input is validated before anything is written, so a failed call never
// leaves partial state behind.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/mmynk/haleway/internal/calculator"
	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/internal/storage"
)

// Engine is the in-process API for templates and checklists.
type Engine struct {
	store storage.Store
}

// New creates an Engine backed by store.
func New(store storage.Store) *Engine {
	return &Engine{store: store}
}

// Scope is the set of trips a caller may see. Trip membership is decided by
// the caller's identity layer; the engine only consults the result.
type Scope struct {
	all   bool
	trips map[string]bool
}

// Trips returns a Scope covering exactly the given trip ids.
func Trips(ids ...string) Scope {
	s := Scope{trips: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.trips[id] = true
	}
	return s
}

// AllTrips returns a Scope that sees every trip. It is meant for trusted
// in-process callers such as the CLI.
func AllTrips() Scope {
	return Scope{all: true}
}

// Contains reports whether tripID is visible.
func (s Scope) Contains(tripID string) bool {
	return s.all || s.trips[tripID]
}

// ItemInput is caller-supplied item data. Quantity is raw text and is decoded
// according to the kind of the list it lands in.
type ItemInput struct {
	Category string
	Name     string
	Quantity string
	Notes    string

	// Order places the item within its category. Nil appends on add and keeps
	// the current order on edit.
	Order *int
}

// item resolves in against kind k and validates the result.
func (in ItemInput) item(k models.Kind) (models.Item, error) {
	q, err := models.ParseQuantity(k, in.Quantity)
	if err != nil {
		return models.Item{}, err
	}
	item := models.Item{
		Category: strings.TrimSpace(in.Category),
		Name:     strings.TrimSpace(in.Name),
		Quantity: q,
		Notes:    strings.TrimSpace(in.Notes),
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	if err := item.Validate(k); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// Summary is a checklist together with its progress and category groups.
type Summary struct {
	Checklist *models.Checklist
	Progress  calculator.Progress
	Groups    []calculator.Group[models.ChecklistItem]
}

// Summarize builds the display view of c.
func Summarize(c *models.Checklist) *Summary {
	return &Summary{
		Checklist: c,
		Progress:  calculator.Tally(c.Items),
		Groups:    calculator.GroupByCategory(c.Items),
	}
}

// ItemsByCategory groups a template's items for display.
func ItemsByCategory(t *models.Template) []calculator.Group[models.TemplateItem] {
	return calculator.GroupByCategory(t.Items)
}

func requireText(field, value string, limit int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.Invalid(field, "is required")
	}
	if len(value) > limit {
		return "", errs.Invalid(field, "is too long", value)
	}
	return value, nil
}

func validDate(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return "", errs.Invalid(field, "must be a date in YYYY-MM-DD form", value)
	}
	return value, nil
}

// progress recomputes the aggregate counts of a checklist after a mutation.
func (e *Engine) progress(ctx context.Context, checklistID string) (calculator.Progress, error) {
	c, err := e.store.GetChecklist(ctx, checklistID)
	if err != nil {
		return calculator.Progress{}, err
	}
	return calculator.Tally(c.Items), nil
}

package engine

import (
	"context"

	"github.com/mmynk/haleway/internal/calculator"
	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

// ChecklistInput describes a checklist to create.
type ChecklistInput struct {
	Kind   models.Kind
	TripID string

	// Name is required for blank lists and defaults to the template name
	// when instantiating.
	Name string

	AssignedTo string

	// ShoppingDate (YYYY-MM-DD) and StoreName are kept for grocery lists only.
	ShoppingDate string
	StoreName    string
}

// CreateChecklist creates an empty checklist for a trip.
func (e *Engine) CreateChecklist(ctx context.Context, scope Scope, in ChecklistInput) (*models.Checklist, error) {
	c, err := e.newChecklist(ctx, scope, in)
	if err != nil {
		return nil, err
	}
	if err := e.store.CreateChecklist(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// PackingListForTrip returns the trip's packing list, or a NotFoundError when
// the trip has none yet.
func (e *Engine) PackingListForTrip(ctx context.Context, tripID string, scope Scope) (*models.Checklist, error) {
	if !scope.Contains(tripID) {
		return nil, errs.NotFound("trip", tripID)
	}
	lists, err := e.store.ListChecklists(ctx, tripID, models.KindPacking)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, errs.NotFound("packing list for trip", tripID)
	}
	return lists[0], nil
}

// ListChecklists returns a trip's checklists. An empty kind lists both kinds.
func (e *Engine) ListChecklists(ctx context.Context, tripID string, kind models.Kind, scope Scope) ([]*models.Checklist, error) {
	if !scope.Contains(tripID) {
		return nil, errs.NotFound("trip", tripID)
	}
	if kind != "" && !kind.Valid() {
		return nil, errs.Invalid("kind", "must be \"packing\" or \"grocery\"", string(kind))
	}
	return e.store.ListChecklists(ctx, tripID, kind)
}

// GetChecklist returns a checklist whose trip is in scope.
func (e *Engine) GetChecklist(ctx context.Context, id string, scope Scope) (*models.Checklist, error) {
	c, err := e.store.GetChecklist(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(c.TripID) {
		return nil, errs.NotFound("checklist", id)
	}
	return c, nil
}

// Summary returns a checklist with its progress and category groups.
func (e *Engine) Summary(ctx context.Context, id string, scope Scope) (*Summary, error) {
	c, err := e.GetChecklist(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	return Summarize(c), nil
}

// Counts returns the done/total counts of a checklist.
func (e *Engine) Counts(ctx context.Context, id string, scope Scope) (calculator.Progress, error) {
	c, err := e.GetChecklist(ctx, id, scope)
	if err != nil {
		return calculator.Progress{}, err
	}
	return calculator.Tally(c.Items), nil
}

// UpdateChecklist replaces the editable metadata of a checklist.
func (e *Engine) UpdateChecklist(ctx context.Context, id string, scope Scope, fields models.ChecklistFields) (*models.Checklist, error) {
	c, err := e.GetChecklist(ctx, id, scope)
	if err != nil {
		return nil, err
	}

	if c.Name, err = requireText("name", fields.Name, MaxTemplateNameLen); err != nil {
		return nil, err
	}
	c.AssignedTo = fields.AssignedTo
	if c.Kind == models.KindGrocery {
		if c.ShoppingDate, err = validDate("shopping_date", fields.ShoppingDate); err != nil {
			return nil, err
		}
		c.StoreName = fields.StoreName
	}

	if err := e.store.UpdateChecklist(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteChecklist removes a checklist and its items. isAdmin reports whether
// the caller administers a trip; only trip admins may delete. Checklists
// outside scope are reported as not found.
func (e *Engine) DeleteChecklist(ctx context.Context, id string, scope Scope, isAdmin func(tripID string) bool) error {
	c, err := e.GetChecklist(ctx, id, scope)
	if err != nil {
		return err
	}
	if isAdmin == nil || !isAdmin(c.TripID) {
		return errs.Forbidden("delete checklist", "only trip admins can delete lists")
	}
	return e.store.DeleteChecklist(ctx, id)
}

// CategorySuggestions lists the categories a checklist already uses followed
// by the common categories of its kind.
func (e *Engine) CategorySuggestions(ctx context.Context, id string, scope Scope) ([]string, error) {
	c, err := e.GetChecklist(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	return calculator.Suggestions(c.Items, models.CommonCategories(c.Kind)), nil
}

// newChecklist validates in and enforces the one-packing-list-per-trip rule.
func (e *Engine) newChecklist(ctx context.Context, scope Scope, in ChecklistInput) (*models.Checklist, error) {
	if !in.Kind.Valid() {
		return nil, errs.Invalid("kind", "must be \"packing\" or \"grocery\"", string(in.Kind))
	}
	if in.TripID == "" {
		return nil, errs.Invalid("trip_id", "is required")
	}
	if !scope.Contains(in.TripID) {
		return nil, errs.NotFound("trip", in.TripID)
	}
	name, err := requireText("name", in.Name, MaxTemplateNameLen)
	if err != nil {
		return nil, err
	}

	c := &models.Checklist{
		Kind:       in.Kind,
		TripID:     in.TripID,
		Name:       name,
		AssignedTo: in.AssignedTo,
	}
	if in.Kind == models.KindGrocery {
		if c.ShoppingDate, err = validDate("shopping_date", in.ShoppingDate); err != nil {
			return nil, err
		}
		c.StoreName = in.StoreName
	}

	if in.Kind == models.KindPacking {
		existing, err := e.store.ListChecklists(ctx, in.TripID, models.KindPacking)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, errs.Invalid("trip_id", "trip already has a packing list", in.TripID)
		}
	}
	return c, nil
}

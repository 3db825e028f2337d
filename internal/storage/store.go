// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/haleway/internal/models"
)

// Store defines the persistence operations for templates and checklists.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the engine.
//
// Lookups of unknown ids return an *errs.NotFoundError. Every other failure is
// an *errs.PersistenceError. Multi-row writes are atomic.
type Store interface {
	TemplateStore
	ChecklistStore

	// Close releases any resources held by the store.
	Close() error
}

// TemplateFilter narrows ListTemplates.
type TemplateFilter struct {
	// Kind restricts results to one kind; empty lists both.
	Kind models.Kind

	// OwnerID includes that user's templates alongside system templates.
	// Empty returns system templates only.
	OwnerID string
}

// TemplateStore persists templates and their items.
type TemplateStore interface {
	// CreateTemplate persists a template together with its items.
	// IDs and timestamps are populated by the store; item orders are kept.
	CreateTemplate(ctx context.Context, t *models.Template) error

	// GetTemplate retrieves a template and its items in stored order.
	GetTemplate(ctx context.Context, id string) (*models.Template, error)

	// FindSystemTemplate looks up a system template by kind and name.
	FindSystemTemplate(ctx context.Context, kind models.Kind, name string) (*models.Template, error)

	// ListTemplates returns matching templates with their items, system
	// templates first, then by name.
	ListTemplates(ctx context.Context, filter TemplateFilter) ([]*models.Template, error)

	// UpdateTemplate saves the name and description of an existing template.
	UpdateTemplate(ctx context.Context, t *models.Template) error

	// DeleteTemplate removes a template; its items go with it.
	DeleteTemplate(ctx context.Context, id string) error

	// AddTemplateItem appends an item to a template. An Order of 0 is
	// replaced by one past the highest order in the item's category.
	AddTemplateItem(ctx context.Context, item *models.TemplateItem) error

	// GetTemplateItem retrieves a single template item.
	GetTemplateItem(ctx context.Context, id string) (*models.TemplateItem, error)

	// DeleteTemplateItem removes a single template item.
	DeleteTemplateItem(ctx context.Context, id string) error
}

// ChecklistStore persists checklists and their items.
type ChecklistStore interface {
	// CreateChecklist persists a checklist together with its items, all with
	// IsDone false. A second packing list for the same trip is rejected with
	// an *errs.ValidationError.
	CreateChecklist(ctx context.Context, c *models.Checklist) error

	// GetChecklist retrieves a checklist and its items in stored order.
	GetChecklist(ctx context.Context, id string) (*models.Checklist, error)

	// ListChecklists returns a trip's checklists with their items. An empty
	// kind lists both kinds.
	ListChecklists(ctx context.Context, tripID string, kind models.Kind) ([]*models.Checklist, error)

	// UpdateChecklist saves the editable metadata of an existing checklist.
	UpdateChecklist(ctx context.Context, c *models.Checklist) error

	// DeleteChecklist removes a checklist; its items go with it.
	DeleteChecklist(ctx context.Context, id string) error

	// AddItems appends items to a checklist in one transaction. Items with an
	// Order of 0 continue from the highest order in their category.
	AddItems(ctx context.Context, checklistID string, items []models.Item) ([]models.ChecklistItem, error)

	// GetItem retrieves a single checklist item.
	GetItem(ctx context.Context, id string) (*models.ChecklistItem, error)

	// UpdateItem saves category, name, quantity, notes and order of an item.
	UpdateItem(ctx context.Context, item *models.ChecklistItem) error

	// DeleteItem removes a single checklist item.
	DeleteItem(ctx context.Context, id string) error

	// ToggleItem flips the done flag of an item and returns the updated item.
	ToggleItem(ctx context.Context, id string) (*models.ChecklistItem, error)

	// RenameCategory moves every item of a checklist in category from to
	// category to and returns the number of items changed.
	RenameCategory(ctx context.Context, checklistID, from, to string) (int, error)
}

package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mmynk/haleway/internal/models"
)

// Column lists shared by the queries in this package. Item queries join their
// parent to learn the kind, which decides how quantity text is decoded.
const (
	templateColumns = `id, kind, name, description, is_system, owner_id, created_at, updated_at`

	templateItemColumns = `ti.id, ti.template_id, t.kind, ti.category, ti.name,
		ti.quantity, ti.notes, ti.sort_order`

	checklistColumns = `id, kind, trip_id, name, based_on_template_id, assigned_to,
		shopping_date, store_name, created_at, updated_at`

	checklistItemColumns = `ci.id, ci.checklist_id, c.kind, ci.category, ci.name,
		ci.quantity, ci.notes, ci.sort_order, ci.is_done, ci.created_at, ci.updated_at`
)

type templateRow struct {
	ID          string         `db:"id"`
	Kind        string         `db:"kind"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	IsSystem    bool           `db:"is_system"`
	OwnerID     sql.NullString `db:"owner_id"`
	CreatedAt   int64          `db:"created_at"`
	UpdatedAt   int64          `db:"updated_at"`
}

func (r templateRow) model() *models.Template {
	return &models.Template{
		ID:          r.ID,
		Kind:        models.Kind(r.Kind),
		Name:        r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
		OwnerID:     r.OwnerID.String,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type templateItemRow struct {
	ID         string `db:"id"`
	TemplateID string `db:"template_id"`
	Kind       string `db:"kind"`
	Category   string `db:"category"`
	Name       string `db:"name"`
	Quantity   string `db:"quantity"`
	Notes      string `db:"notes"`
	SortOrder  int    `db:"sort_order"`
}

func (r templateItemRow) model() (models.TemplateItem, error) {
	item, err := decodeItem(r.Kind, r.Category, r.Name, r.Quantity, r.Notes, r.SortOrder)
	if err != nil {
		return models.TemplateItem{}, fmt.Errorf("template item %s: %w", r.ID, err)
	}
	return models.TemplateItem{ID: r.ID, TemplateID: r.TemplateID, Item: item}, nil
}

type checklistRow struct {
	ID                string         `db:"id"`
	Kind              string         `db:"kind"`
	TripID            string         `db:"trip_id"`
	Name              string         `db:"name"`
	BasedOnTemplateID sql.NullString `db:"based_on_template_id"`
	AssignedTo        sql.NullString `db:"assigned_to"`
	ShoppingDate      string         `db:"shopping_date"`
	StoreName         string         `db:"store_name"`
	CreatedAt         int64          `db:"created_at"`
	UpdatedAt         int64          `db:"updated_at"`
}

func (r checklistRow) model() *models.Checklist {
	return &models.Checklist{
		ID:                r.ID,
		Kind:              models.Kind(r.Kind),
		TripID:            r.TripID,
		Name:              r.Name,
		BasedOnTemplateID: r.BasedOnTemplateID.String,
		AssignedTo:        r.AssignedTo.String,
		ShoppingDate:      r.ShoppingDate,
		StoreName:         r.StoreName,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type checklistItemRow struct {
	ID          string `db:"id"`
	ChecklistID string `db:"checklist_id"`
	Kind        string `db:"kind"`
	Category    string `db:"category"`
	Name        string `db:"name"`
	Quantity    string `db:"quantity"`
	Notes       string `db:"notes"`
	SortOrder   int    `db:"sort_order"`
	IsDone      bool   `db:"is_done"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
}

func (r checklistItemRow) model() (models.ChecklistItem, error) {
	item, err := decodeItem(r.Kind, r.Category, r.Name, r.Quantity, r.Notes, r.SortOrder)
	if err != nil {
		return models.ChecklistItem{}, fmt.Errorf("checklist item %s: %w", r.ID, err)
	}
	return models.ChecklistItem{
		ID:          r.ID,
		ChecklistID: r.ChecklistID,
		Item:        item,
		IsDone:      r.IsDone,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func decodeItem(kind, category, name, quantity, notes string, order int) (models.Item, error) {
	q, err := models.ParseQuantity(models.Kind(kind), quantity)
	if err != nil {
		return models.Item{}, err
	}
	return models.Item{
		Category: category,
		Name:     name,
		Quantity: q,
		Notes:    notes,
		Order:    order,
	}, nil
}

// encodeQuantity is the stored text form of q.
func encodeQuantity(q models.Quantity) string {
	if q == nil {
		return ""
	}
	return q.String()
}

package service

import (
	"github.com/mmynk/haleway/internal/calculator"
	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/pkg/api"
)

func toAPIItem(id string, item models.Item, done bool) *api.Item {
	return &api.Item{
		ID:       id,
		Category: item.Category,
		Name:     item.Name,
		Quantity: item.Quantity.String(),
		Notes:    item.Notes,
		Order:    item.Order,
		IsDone:   done,
	}
}

func toAPIChecklistItem(item *models.ChecklistItem) *api.Item {
	return toAPIItem(item.ID, item.Item, item.IsDone)
}

func toAPIChecklistItems(items []models.ChecklistItem) []*api.Item {
	out := make([]*api.Item, len(items))
	for i := range items {
		out[i] = toAPIChecklistItem(&items[i])
	}
	return out
}

func toAPIProgress(p calculator.Progress) *api.Progress {
	return &api.Progress{
		DoneCount:  p.Done,
		TotalCount: p.Total,
		Percentage: p.Percentage,
	}
}

// toAPITemplate converts a template. Items are included, grouped by category,
// only when withItems is set.
func toAPITemplate(t *models.Template, withItems bool) *api.Template {
	out := &api.Template{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Name:        t.Name,
		Description: t.Description,
		IsSystem:    t.IsSystem,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ItemCount:   len(t.Items),
	}
	if !withItems {
		return out
	}
	for _, g := range engine.ItemsByCategory(t) {
		group := &api.CategoryGroup{Category: g.Category, Total: len(g.Items)}
		for _, item := range g.Items {
			group.Items = append(group.Items, toAPIItem(item.ID, item.Item, false))
		}
		out.Categories = append(out.Categories, group)
	}
	return out
}

// toAPIChecklist converts a checklist with its progress. Items are included,
// grouped by category, only when withItems is set.
func toAPIChecklist(c *models.Checklist, withItems bool) *api.Checklist {
	summary := engine.Summarize(c)
	out := &api.Checklist{
		ID:                c.ID,
		Kind:              string(c.Kind),
		TripID:            c.TripID,
		Name:              c.Name,
		BasedOnTemplateID: c.BasedOnTemplateID,
		AssignedTo:        c.AssignedTo,
		ShoppingDate:      c.ShoppingDate,
		StoreName:         c.StoreName,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		Progress:          toAPIProgress(summary.Progress),
	}
	if !withItems {
		return out
	}
	for _, g := range summary.Groups {
		p := calculator.Tally(g.Items)
		out.Categories = append(out.Categories, &api.CategoryGroup{
			Category: g.Category,
			Items:    toAPIChecklistItems(g.Items),
			Done:     p.Done,
			Total:    p.Total,
		})
	}
	return out
}

func itemInput(category, name, quantity, notes string, order *int) engine.ItemInput {
	return engine.ItemInput{
		Category: category,
		Name:     name,
		Quantity: quantity,
		Notes:    notes,
		Order:    order,
	}
}

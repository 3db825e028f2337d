package engine

import (
	"context"
	"strings"

	"github.com/mmynk/haleway/internal/calculator"
	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

// ItemResult is the outcome of a single-item mutation.
type ItemResult struct {
	Item     *models.ChecklistItem
	Progress calculator.Progress
}

// BatchResult is the outcome of a bulk or outfit add.
type BatchResult struct {
	Items    []models.ChecklistItem
	Progress calculator.Progress
}

// RenameResult is the outcome of a category rename.
type RenameResult struct {
	Updated  int
	Progress calculator.Progress
}

// AddItem adds one item to a checklist.
func (e *Engine) AddItem(ctx context.Context, checklistID string, scope Scope, in ItemInput) (*ItemResult, error) {
	c, err := e.GetChecklist(ctx, checklistID, scope)
	if err != nil {
		return nil, err
	}
	item, err := in.item(c.Kind)
	if err != nil {
		return nil, err
	}

	added, err := e.store.AddItems(ctx, c.ID, []models.Item{item})
	if err != nil {
		return nil, err
	}
	return e.itemResult(ctx, &added[0])
}

// EditItem replaces the category, name, quantity and notes of an item.
// The done flag is left alone.
func (e *Engine) EditItem(ctx context.Context, itemID string, scope Scope, in ItemInput) (*ItemResult, error) {
	current, c, err := e.visibleItem(ctx, itemID, scope)
	if err != nil {
		return nil, err
	}
	if in.Order == nil {
		in.Order = &current.Order
	}
	item, err := in.item(c.Kind)
	if err != nil {
		return nil, err
	}

	current.Item = item
	if err := e.store.UpdateItem(ctx, current); err != nil {
		return nil, err
	}
	return e.itemResult(ctx, current)
}

// DeleteItem removes an item and returns the refreshed progress.
func (e *Engine) DeleteItem(ctx context.Context, itemID string, scope Scope) (calculator.Progress, error) {
	item, _, err := e.visibleItem(ctx, itemID, scope)
	if err != nil {
		return calculator.Progress{}, err
	}
	if err := e.store.DeleteItem(ctx, item.ID); err != nil {
		return calculator.Progress{}, err
	}
	return e.progress(ctx, item.ChecklistID)
}

// ToggleItem flips an item's done flag. The result carries the new state and
// the refreshed counts.
func (e *Engine) ToggleItem(ctx context.Context, itemID string, scope Scope) (*ItemResult, error) {
	if _, _, err := e.visibleItem(ctx, itemID, scope); err != nil {
		return nil, err
	}
	item, err := e.store.ToggleItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return e.itemResult(ctx, item)
}

// BulkAdd parses raw in the dialect of the checklist's kind and adds every
// item under category in one transaction. Nothing is written if any token is
// malformed. Grocery lists default to the "Groceries" category.
func (e *Engine) BulkAdd(ctx context.Context, checklistID string, scope Scope, category, raw string) (*BatchResult, error) {
	c, err := e.GetChecklist(ctx, checklistID, scope)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" && c.Kind == models.KindGrocery {
		category = models.DefaultGroceryCategory
	}

	parsed, err := calculator.Parse(raw, calculator.DialectFor(c.Kind))
	if err != nil {
		return nil, err
	}
	items := make([]models.Item, len(parsed))
	for i, p := range parsed {
		items[i] = models.Item{Category: category, Name: p.Name, Quantity: p.Quantity}
		if err := items[i].Validate(c.Kind); err != nil {
			return nil, err
		}
	}

	return e.addBatch(ctx, c.ID, items)
}

// AddOutfit adds the outfit calculator's clothing items for numOutfits
// outfits to a packing list, after the category's existing items.
func (e *Engine) AddOutfit(ctx context.Context, checklistID string, scope Scope, category string, numOutfits int) (*BatchResult, error) {
	c, err := e.GetChecklist(ctx, checklistID, scope)
	if err != nil {
		return nil, err
	}
	if c.Kind != models.KindPacking {
		return nil, errs.Invalid("kind", "the outfit calculator only applies to packing lists", string(c.Kind))
	}

	items, err := calculator.CalculateOutfit(category, numOutfits)
	if err != nil {
		return nil, err
	}
	return e.addBatch(ctx, c.ID, items)
}

// RenameCategory moves every item in category from to category to.
func (e *Engine) RenameCategory(ctx context.Context, checklistID string, scope Scope, from, to string) (*RenameResult, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" {
		return nil, errs.Invalid("old_category", "is required")
	}
	if to == "" {
		return nil, errs.Invalid("new_category", "is required")
	}
	if from == to {
		return nil, errs.Invalid("new_category", "must differ from the current name", to)
	}
	if len(to) > models.MaxCategoryLen {
		return nil, errs.Invalid("new_category", "is too long", to)
	}

	c, err := e.GetChecklist(ctx, checklistID, scope)
	if err != nil {
		return nil, err
	}
	n, err := e.store.RenameCategory(ctx, c.ID, from, to)
	if err != nil {
		return nil, err
	}
	p, err := e.progress(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &RenameResult{Updated: n, Progress: p}, nil
}

func (e *Engine) addBatch(ctx context.Context, checklistID string, items []models.Item) (*BatchResult, error) {
	added, err := e.store.AddItems(ctx, checklistID, items)
	if err != nil {
		return nil, err
	}
	p, err := e.progress(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	return &BatchResult{Items: added, Progress: p}, nil
}

func (e *Engine) itemResult(ctx context.Context, item *models.ChecklistItem) (*ItemResult, error) {
	p, err := e.progress(ctx, item.ChecklistID)
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: item, Progress: p}, nil
}

// visibleItem loads an item and its checklist, hiding items whose trip is
// out of scope.
func (e *Engine) visibleItem(ctx context.Context, itemID string, scope Scope) (*models.ChecklistItem, *models.Checklist, error) {
	item, err := e.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	c, err := e.store.GetChecklist(ctx, item.ChecklistID)
	if err != nil {
		return nil, nil, err
	}
	if !scope.Contains(c.TripID) {
		return nil, nil, errs.NotFound("item", itemID)
	}
	return item, c, nil
}

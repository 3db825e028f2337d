package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

// AddItems appends items to a checklist in one transaction. Order values are
// computed inside the transaction so a batch never interleaves with another.
func (s *SQLiteStore) AddItems(ctx context.Context, checklistID string, items []models.Item) ([]models.ChecklistItem, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errs.Persistence("begin transaction", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM checklists WHERE id = ?", checklistID)
	if err != nil {
		return nil, errs.Persistence("get checklist", err)
	}
	if exists == 0 {
		return nil, errs.NotFound("checklist", checklistID)
	}

	ts := now()
	next := make(map[string]int)
	created := make([]models.ChecklistItem, 0, len(items))

	for _, it := range items {
		if it.Order == 0 {
			order, ok := next[it.Category]
			if !ok {
				var maxOrder int
				err := tx.GetContext(ctx, &maxOrder,
					"SELECT COALESCE(MAX(sort_order), 0) FROM checklist_items WHERE checklist_id = ? AND category = ?",
					checklistID, it.Category)
				if err != nil {
					return nil, errs.Persistence("get max item order", err)
				}
				order = maxOrder + 1
			}
			it.Order = order
			next[it.Category] = order + 1
		}

		item := models.ChecklistItem{
			ID:          uuid.New().String(),
			ChecklistID: checklistID,
			Item:        it,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
		if err := insertChecklistItem(ctx, tx, &item); err != nil {
			return nil, err
		}
		created = append(created, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, errs.Persistence("commit transaction", err)
	}
	return created, nil
}

// GetItem retrieves a checklist item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.ChecklistItem, error) {
	return getItem(ctx, s.db, id)
}

// UpdateItem saves the editable fields of a checklist item. The done flag is
// only changed through ToggleItem.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.ChecklistItem) error {
	item.UpdatedAt = now()
	result, err := s.db.ExecContext(ctx, `
		UPDATE checklist_items
		SET category = ?, name = ?, quantity = ?, notes = ?, sort_order = ?, updated_at = ?
		WHERE id = ?`,
		item.Category, item.Name, encodeQuantity(item.Quantity), item.Notes,
		item.Order, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return errs.Persistence("update item", err)
	}
	return requireRow(result, "item", item.ID)
}

// DeleteItem removes a checklist item by ID.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM checklist_items WHERE id = ?", id)
	if err != nil {
		return errs.Persistence("delete item", err)
	}
	return requireRow(result, "item", id)
}

// ToggleItem flips the done flag of a checklist item. Concurrent toggles are
// last-write-wins per row.
func (s *SQLiteStore) ToggleItem(ctx context.Context, id string) (*models.ChecklistItem, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errs.Persistence("begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE checklist_items SET is_done = CASE WHEN is_done = 0 THEN 1 ELSE 0 END, updated_at = ? WHERE id = ?",
		now(), id)
	if err != nil {
		return nil, errs.Persistence("toggle item", err)
	}
	if err := requireRow(result, "item", id); err != nil {
		return nil, err
	}

	item, err := getItem(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errs.Persistence("commit transaction", err)
	}
	return item, nil
}

// RenameCategory moves every item of a checklist from one category to another.
func (s *SQLiteStore) RenameCategory(ctx context.Context, checklistID, from, to string) (int, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE checklist_items SET category = ?, updated_at = ? WHERE checklist_id = ? AND category = ?",
		to, now(), checklistID, from)
	if err != nil {
		return 0, errs.Persistence("rename category", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, errs.Persistence("rows affected", err)
	}
	return int(n), nil
}

func getItem(ctx context.Context, q sqlx.QueryerContext, id string) (*models.ChecklistItem, error) {
	var row checklistItemRow
	err := sqlx.GetContext(ctx, q, &row, `
		SELECT `+checklistItemColumns+`
		FROM checklist_items ci JOIN checklists c ON c.id = ci.checklist_id
		WHERE ci.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("item", id)
	}
	if err != nil {
		return nil, errs.Persistence("get item", err)
	}

	item, err := row.model()
	if err != nil {
		return nil, errs.Persistence("decode item", err)
	}
	return &item, nil
}

func insertChecklistItem(ctx context.Context, tx *sqlx.Tx, item *models.ChecklistItem) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO checklist_items (id, checklist_id, category, name, quantity, notes,
			sort_order, is_done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ChecklistID, item.Category, item.Name, encodeQuantity(item.Quantity),
		item.Notes, item.Order, boolToInt(item.IsDone), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return errs.Persistence("insert item", err)
	}
	return nil
}

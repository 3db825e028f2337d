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

// CreateChecklist persists a new checklist and its items in one transaction.
func (s *SQLiteStore) CreateChecklist(ctx context.Context, c *models.Checklist) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = now()
	}
	c.UpdatedAt = c.CreatedAt

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Persistence("begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO checklists (id, kind, trip_id, name, based_on_template_id, assigned_to,
			shopping_date, store_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, string(c.Kind), c.TripID, c.Name, nullable(c.BasedOnTemplateID),
		nullable(c.AssignedTo), c.ShoppingDate, c.StoreName, c.CreatedAt, c.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return errs.Invalid("trip_id", "trip already has a packing list", c.TripID)
	}
	if err != nil {
		return errs.Persistence("insert checklist", err)
	}

	for i := range c.Items {
		item := &c.Items[i]
		item.ID = uuid.New().String()
		item.ChecklistID = c.ID
		item.IsDone = false
		item.CreatedAt = c.CreatedAt
		item.UpdatedAt = c.CreatedAt
		if err := insertChecklistItem(ctx, tx, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return errs.Persistence("commit transaction", err)
	}
	return nil
}

// GetChecklist retrieves a checklist by ID, including its items.
func (s *SQLiteStore) GetChecklist(ctx context.Context, id string) (*models.Checklist, error) {
	var row checklistRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+checklistColumns+" FROM checklists WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("checklist", id)
	}
	if err != nil {
		return nil, errs.Persistence("get checklist", err)
	}

	c := row.model()
	items, err := loadChecklistItems(ctx, s.db, []string{c.ID})
	if err != nil {
		return nil, err
	}
	c.Items = items[c.ID]
	return c, nil
}

// ListChecklists returns the checklists of a trip. Packing lists come first;
// grocery lists are ordered by shopping date, then name.
func (s *SQLiteStore) ListChecklists(ctx context.Context, tripID string, kind models.Kind) ([]*models.Checklist, error) {
	query := "SELECT " + checklistColumns + " FROM checklists WHERE trip_id = ?"
	args := []any{tripID}
	if kind != "" {
		query += " AND kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY CASE kind WHEN 'packing' THEN 0 ELSE 1 END, shopping_date, name, created_at"

	var rows []checklistRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errs.Persistence("list checklists", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	items, err := loadChecklistItems(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}

	lists := make([]*models.Checklist, len(rows))
	for i, r := range rows {
		lists[i] = r.model()
		lists[i].Items = items[r.ID]
	}
	return lists, nil
}

// UpdateChecklist saves the editable metadata of a checklist.
func (s *SQLiteStore) UpdateChecklist(ctx context.Context, c *models.Checklist) error {
	c.UpdatedAt = now()
	result, err := s.db.ExecContext(ctx, `
		UPDATE checklists
		SET name = ?, assigned_to = ?, shopping_date = ?, store_name = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, nullable(c.AssignedTo), c.ShoppingDate, c.StoreName, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return errs.Persistence("update checklist", err)
	}
	return requireRow(result, "checklist", c.ID)
}

// DeleteChecklist removes a checklist. Items are removed by cascade.
func (s *SQLiteStore) DeleteChecklist(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM checklists WHERE id = ?", id)
	if err != nil {
		return errs.Persistence("delete checklist", err)
	}
	return requireRow(result, "checklist", id)
}

// loadChecklistItems returns the items of the given checklists keyed by
// checklist ID, each slice in insertion order.
func loadChecklistItems(ctx context.Context, db sqlx.QueryerContext, checklistIDs []string) (map[string][]models.ChecklistItem, error) {
	query, args, err := sqlx.In(`
		SELECT `+checklistItemColumns+`
		FROM checklist_items ci JOIN checklists c ON c.id = ci.checklist_id
		WHERE ci.checklist_id IN (?)
		ORDER BY ci.rowid`, checklistIDs)
	if err != nil {
		return nil, errs.Persistence("build checklist items query", err)
	}

	var rows []checklistItemRow
	if err := sqlx.SelectContext(ctx, db, &rows, query, args...); err != nil {
		return nil, errs.Persistence("list checklist items", err)
	}

	out := make(map[string][]models.ChecklistItem, len(checklistIDs))
	for _, r := range rows {
		item, err := r.model()
		if err != nil {
			return nil, errs.Persistence("decode checklist item", err)
		}
		out[r.ChecklistID] = append(out[r.ChecklistID], item)
	}
	return out, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/internal/storage"
)

// CreateTemplate persists a new template and its items in one transaction.
func (s *SQLiteStore) CreateTemplate(ctx context.Context, t *models.Template) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = now()
	}
	t.UpdatedAt = t.CreatedAt

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Persistence("begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO templates (id, kind, name, description, is_system, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Kind), t.Name, t.Description, boolToInt(t.IsSystem),
		nullable(t.OwnerID), t.CreatedAt, t.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return errs.Invalid("name", "a system template with this name already exists", t.Name)
	}
	if err != nil {
		return errs.Persistence("insert template", err)
	}

	for i := range t.Items {
		item := &t.Items[i]
		item.ID = uuid.New().String()
		item.TemplateID = t.ID
		if err := insertTemplateItem(ctx, tx, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return errs.Persistence("commit transaction", err)
	}
	return nil
}

// GetTemplate retrieves a template by ID, including its items.
func (s *SQLiteStore) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	var row templateRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+templateColumns+" FROM templates WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("template", id)
	}
	if err != nil {
		return nil, errs.Persistence("get template", err)
	}
	return s.withTemplateItems(ctx, row)
}

// FindSystemTemplate retrieves a system template by kind and name.
func (s *SQLiteStore) FindSystemTemplate(ctx context.Context, kind models.Kind, name string) (*models.Template, error) {
	var row templateRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+templateColumns+" FROM templates WHERE is_system = 1 AND kind = ? AND name = ?",
		string(kind), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("template", string(kind)+"/"+name)
	}
	if err != nil {
		return nil, errs.Persistence("find system template", err)
	}
	return s.withTemplateItems(ctx, row)
}

func (s *SQLiteStore) withTemplateItems(ctx context.Context, row templateRow) (*models.Template, error) {
	t := row.model()
	items, err := loadTemplateItems(ctx, s.db, []string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Items = items[t.ID]
	return t, nil
}

// ListTemplates returns system templates plus those owned by filter.OwnerID.
func (s *SQLiteStore) ListTemplates(ctx context.Context, filter storage.TemplateFilter) ([]*models.Template, error) {
	query := "SELECT " + templateColumns + " FROM templates WHERE (is_system = 1 OR owner_id = ?)"
	args := []any{filter.OwnerID}
	if filter.Kind != "" {
		query += " AND kind = ?"
		args = append(args, string(filter.Kind))
	}
	query += " ORDER BY is_system DESC, name, created_at"

	var rows []templateRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errs.Persistence("list templates", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	items, err := loadTemplateItems(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}

	templates := make([]*models.Template, len(rows))
	for i, r := range rows {
		templates[i] = r.model()
		templates[i].Items = items[r.ID]
	}
	return templates, nil
}

// UpdateTemplate saves the name and description of a template.
func (s *SQLiteStore) UpdateTemplate(ctx context.Context, t *models.Template) error {
	t.UpdatedAt = now()
	result, err := s.db.ExecContext(ctx,
		"UPDATE templates SET name = ?, description = ?, updated_at = ? WHERE id = ?",
		t.Name, t.Description, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return errs.Persistence("update template", err)
	}
	return requireRow(result, "template", t.ID)
}

// DeleteTemplate removes a template. Items are removed by cascade; checklists
// created from it keep their items and lose only the informational reference.
func (s *SQLiteStore) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		return errs.Persistence("delete template", err)
	}
	return requireRow(result, "template", id)
}

// AddTemplateItem appends an item to a template.
func (s *SQLiteStore) AddTemplateItem(ctx context.Context, item *models.TemplateItem) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Persistence("begin transaction", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM templates WHERE id = ?", item.TemplateID)
	if err != nil {
		return errs.Persistence("get template", err)
	}
	if exists == 0 {
		return errs.NotFound("template", item.TemplateID)
	}

	if item.Order == 0 {
		var maxOrder int
		err := tx.GetContext(ctx, &maxOrder,
			"SELECT COALESCE(MAX(sort_order), 0) FROM template_items WHERE template_id = ? AND category = ?",
			item.TemplateID, item.Category)
		if err != nil {
			return errs.Persistence("get max template item order", err)
		}
		item.Order = maxOrder + 1
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := insertTemplateItem(ctx, tx, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errs.Persistence("commit transaction", err)
	}
	return nil
}

// GetTemplateItem retrieves a template item by ID.
func (s *SQLiteStore) GetTemplateItem(ctx context.Context, id string) (*models.TemplateItem, error) {
	var row templateItemRow
	err := s.db.GetContext(ctx, &row, `
		SELECT `+templateItemColumns+`
		FROM template_items ti JOIN templates t ON t.id = ti.template_id
		WHERE ti.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("template item", id)
	}
	if err != nil {
		return nil, errs.Persistence("get template item", err)
	}

	item, err := row.model()
	if err != nil {
		return nil, errs.Persistence("decode template item", err)
	}
	return &item, nil
}

// DeleteTemplateItem removes a template item by ID.
func (s *SQLiteStore) DeleteTemplateItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM template_items WHERE id = ?", id)
	if err != nil {
		return errs.Persistence("delete template item", err)
	}
	return requireRow(result, "template item", id)
}

func insertTemplateItem(ctx context.Context, tx *sqlx.Tx, item *models.TemplateItem) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO template_items (id, template_id, category, name, quantity, notes, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.TemplateID, item.Category, item.Name,
		encodeQuantity(item.Quantity), item.Notes, item.Order,
	)
	if err != nil {
		return errs.Persistence("insert template item", err)
	}
	return nil
}

// loadTemplateItems returns the items of the given templates keyed by
// template ID, each slice in insertion order.
func loadTemplateItems(ctx context.Context, db *sqlx.DB, templateIDs []string) (map[string][]models.TemplateItem, error) {
	query, args, err := sqlx.In(`
		SELECT `+templateItemColumns+`
		FROM template_items ti JOIN templates t ON t.id = ti.template_id
		WHERE ti.template_id IN (?)
		ORDER BY ti.rowid`, templateIDs)
	if err != nil {
		return nil, errs.Persistence("build template items query", err)
	}

	var rows []templateItemRow
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, errs.Persistence("list template items", err)
	}

	out := make(map[string][]models.TemplateItem, len(templateIDs))
	for _, r := range rows {
		item, err := r.model()
		if err != nil {
			return nil, errs.Persistence("decode template item", err)
		}
		out[r.TemplateID] = append(out[r.TemplateID], item)
	}
	return out, nil
}

// requireRow turns "no rows affected" into a NotFoundError.
func requireRow(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return errs.Persistence("rows affected", err)
	}
	if n == 0 {
		return errs.NotFound(kind, id)
	}
	return nil
}

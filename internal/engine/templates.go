package engine

import (
	"context"
	"strings"

	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/internal/storage"
)

// MaxTemplateNameLen bounds template and checklist names.
const MaxTemplateNameLen = 200

// TemplateInput is the caller-editable part of a template.
type TemplateInput struct {
	Kind        models.Kind
	Name        string
	Description string
}

// CreateTemplate creates an empty user template owned by ownerID.
func (e *Engine) CreateTemplate(ctx context.Context, ownerID string, in TemplateInput) (*models.Template, error) {
	if ownerID == "" {
		return nil, errs.Forbidden("create template", "caller is not signed in")
	}
	if !in.Kind.Valid() {
		return nil, errs.Invalid("kind", "must be \"packing\" or \"grocery\"", string(in.Kind))
	}
	name, err := requireText("name", in.Name, MaxTemplateNameLen)
	if err != nil {
		return nil, err
	}

	t := &models.Template{
		Kind:        in.Kind,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		OwnerID:     ownerID,
	}
	if err := e.store.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTemplates returns the system templates plus those owned by userID.
// An empty kind lists both kinds.
func (e *Engine) ListTemplates(ctx context.Context, userID string, kind models.Kind) ([]*models.Template, error) {
	if kind != "" && !kind.Valid() {
		return nil, errs.Invalid("kind", "must be \"packing\" or \"grocery\"", string(kind))
	}
	return e.store.ListTemplates(ctx, storage.TemplateFilter{Kind: kind, OwnerID: userID})
}

// GetTemplate returns a template visible to userID. Templates owned by someone
// else are reported as not found.
func (e *Engine) GetTemplate(ctx context.Context, id, userID string) (*models.Template, error) {
	t, err := e.store.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.VisibleTo(userID) {
		return nil, errs.NotFound("template", id)
	}
	return t, nil
}

// UpdateTemplate renames or redescribes a user template.
func (e *Engine) UpdateTemplate(ctx context.Context, id, userID, name, description string) (*models.Template, error) {
	t, err := e.mutableTemplate(ctx, id, userID, "update template")
	if err != nil {
		return nil, err
	}
	if t.Name, err = requireText("name", name, MaxTemplateNameLen); err != nil {
		return nil, err
	}
	t.Description = strings.TrimSpace(description)

	if err := e.store.UpdateTemplate(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTemplate removes a user template and its items. System templates can
// never be deleted.
func (e *Engine) DeleteTemplate(ctx context.Context, id, userID string) error {
	if _, err := e.mutableTemplate(ctx, id, userID, "delete template"); err != nil {
		return err
	}
	return e.store.DeleteTemplate(ctx, id)
}

// AddTemplateItem appends an item to a user template.
func (e *Engine) AddTemplateItem(ctx context.Context, templateID, userID string, in ItemInput) (*models.TemplateItem, error) {
	t, err := e.mutableTemplate(ctx, templateID, userID, "edit template")
	if err != nil {
		return nil, err
	}
	item, err := in.item(t.Kind)
	if err != nil {
		return nil, err
	}

	ti := &models.TemplateItem{TemplateID: t.ID, Item: item}
	if err := e.store.AddTemplateItem(ctx, ti); err != nil {
		return nil, err
	}
	return ti, nil
}

// DeleteTemplateItem removes an item from a user template.
func (e *Engine) DeleteTemplateItem(ctx context.Context, itemID, userID string) error {
	ti, err := e.store.GetTemplateItem(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := e.mutableTemplate(ctx, ti.TemplateID, userID, "edit template"); err != nil {
		return err
	}
	return e.store.DeleteTemplateItem(ctx, itemID)
}

// mutableTemplate loads a template that userID is allowed to change.
func (e *Engine) mutableTemplate(ctx context.Context, id, userID, action string) (*models.Template, error) {
	t, err := e.store.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.IsSystem {
		return nil, errs.Forbidden(action, "system templates are read-only")
	}
	if userID == "" || t.OwnerID != userID {
		return nil, errs.Forbidden(action, "template belongs to another user")
	}
	return t, nil
}

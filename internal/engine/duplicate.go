package engine

import (
	"context"
	"strings"

	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

// Instantiate creates a checklist from a template visible to userID. Every
// template item is copied with its category, name, quantity, notes and order;
// nothing links the copies back to the template. in.Kind may be left empty,
// and in.Name defaults to the template's name.
func (e *Engine) Instantiate(ctx context.Context, templateID, userID string, scope Scope, in ChecklistInput) (*models.Checklist, error) {
	t, err := e.GetTemplate(ctx, templateID, userID)
	if err != nil {
		return nil, err
	}
	if in.Kind == "" {
		in.Kind = t.Kind
	}
	if in.Kind != t.Kind {
		return nil, errs.Invalid("kind", "does not match the template's kind", string(in.Kind))
	}
	if strings.TrimSpace(in.Name) == "" {
		in.Name = t.Name
	}

	c, err := e.newChecklist(ctx, scope, in)
	if err != nil {
		return nil, err
	}
	c.BasedOnTemplateID = t.ID
	c.Items = make([]models.ChecklistItem, len(t.Items))
	for i, ti := range t.Items {
		c.Items[i] = models.ChecklistItem{Item: ti.Item}
	}

	if err := e.store.CreateChecklist(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveAsTemplate copies a checklist into a new template owned by ownerID.
// Done flags are dropped. The template does not inherit the checklist's
// based-on reference. name defaults to "<list name> Template".
func (e *Engine) SaveAsTemplate(ctx context.Context, checklistID string, scope Scope, ownerID, name, description string) (*models.Template, error) {
	if ownerID == "" {
		return nil, errs.Forbidden("save template", "caller is not signed in")
	}
	c, err := e.GetChecklist(ctx, checklistID, scope)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		name = c.Name + " Template"
	}
	if name, err = requireText("name", name, MaxTemplateNameLen); err != nil {
		return nil, err
	}

	t := &models.Template{
		Kind:        c.Kind,
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     ownerID,
		Items:       make([]models.TemplateItem, len(c.Items)),
	}
	for i, ci := range c.Items {
		t.Items[i] = models.TemplateItem{Item: ci.Item}
	}

	if err := e.store.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

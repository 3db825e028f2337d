package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/pkg/api"
	"github.com/mmynk/haleway/pkg/api/apiconnect"
)

// TemplateService implements the Connect TemplateService
type TemplateService struct {
	apiconnect.UnimplementedTemplateServiceHandler
	engine *engine.Engine
}

// NewTemplateService creates a new TemplateService backed by the given engine.
func NewTemplateService(e *engine.Engine) *TemplateService {
	return &TemplateService{engine: e}
}

// ListTemplates lists the system templates and the caller's own.
func (s *TemplateService) ListTemplates(ctx context.Context, req *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListTemplates request received", "user_id", claims.UserID, "kind", req.Msg.Kind)

	templates, err := s.engine.ListTemplates(ctx, claims.UserID, models.Kind(req.Msg.Kind))
	if err != nil {
		slog.Error("ListTemplates failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Template, len(templates))
	for i, t := range templates {
		out[i] = toAPITemplate(t, false)
	}

	slog.Info("ListTemplates successful", "count", len(out))

	return connect.NewResponse(&api.ListTemplatesResponse{Templates: out}), nil
}

// GetTemplate returns a template with its items grouped by category.
func (s *TemplateService) GetTemplate(ctx context.Context, req *connect.Request[api.GetTemplateRequest]) (*connect.Response[api.GetTemplateResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetTemplate request received", "template_id", req.Msg.TemplateID)

	t, err := s.engine.GetTemplate(ctx, req.Msg.TemplateID, claims.UserID)
	if err != nil {
		slog.Error("GetTemplate failed", "template_id", req.Msg.TemplateID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetTemplateResponse{Template: toAPITemplate(t, true)}), nil
}

// CreateTemplate creates an empty template owned by the caller.
func (s *TemplateService) CreateTemplate(ctx context.Context, req *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateTemplate request received", "user_id", claims.UserID, "kind", req.Msg.Kind, "name", req.Msg.Name)

	kind, err := models.ParseKind(req.Msg.Kind)
	if err != nil {
		return nil, toConnectError(err)
	}
	t, err := s.engine.CreateTemplate(ctx, claims.UserID, engine.TemplateInput{
		Kind:        kind,
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
	})
	if err != nil {
		slog.Error("CreateTemplate failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Template created", "template_id", t.ID)

	return connect.NewResponse(&api.CreateTemplateResponse{Template: toAPITemplate(t, true)}), nil
}

// UpdateTemplate renames a template owned by the caller.
func (s *TemplateService) UpdateTemplate(ctx context.Context, req *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateTemplate request received", "template_id", req.Msg.TemplateID, "name", req.Msg.Name)

	t, err := s.engine.UpdateTemplate(ctx, req.Msg.TemplateID, claims.UserID, req.Msg.Name, req.Msg.Description)
	if err != nil {
		slog.Error("UpdateTemplate failed", "template_id", req.Msg.TemplateID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Template updated", "template_id", t.ID)

	return connect.NewResponse(&api.UpdateTemplateResponse{Template: toAPITemplate(t, true)}), nil
}

// DeleteTemplate deletes a template owned by the caller.
func (s *TemplateService) DeleteTemplate(ctx context.Context, req *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteTemplate request received", "template_id", req.Msg.TemplateID, "user_id", claims.UserID)

	if err := s.engine.DeleteTemplate(ctx, req.Msg.TemplateID, claims.UserID); err != nil {
		slog.Error("DeleteTemplate failed", "template_id", req.Msg.TemplateID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Template deleted", "template_id", req.Msg.TemplateID)

	return connect.NewResponse(&api.DeleteTemplateResponse{}), nil
}

// AddTemplateItem appends an item to a template owned by the caller.
func (s *TemplateService) AddTemplateItem(ctx context.Context, req *connect.Request[api.AddTemplateItemRequest]) (*connect.Response[api.AddTemplateItemResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddTemplateItem request received", "template_id", req.Msg.TemplateID, "name", req.Msg.Name)

	in := itemInput(req.Msg.Category, req.Msg.Name, req.Msg.Quantity, req.Msg.Notes, req.Msg.Order)
	item, err := s.engine.AddTemplateItem(ctx, req.Msg.TemplateID, claims.UserID, in)
	if err != nil {
		slog.Error("AddTemplateItem failed", "template_id", req.Msg.TemplateID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddTemplateItemResponse{Item: toAPIItem(item.ID, item.Item, false)}), nil
}

// DeleteTemplateItem removes an item from a template owned by the caller.
func (s *TemplateService) DeleteTemplateItem(ctx context.Context, req *connect.Request[api.DeleteTemplateItemRequest]) (*connect.Response[api.DeleteTemplateItemResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteTemplateItem request received", "item_id", req.Msg.ItemID)

	if err := s.engine.DeleteTemplateItem(ctx, req.Msg.ItemID, claims.UserID); err != nil {
		slog.Error("DeleteTemplateItem failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteTemplateItemResponse{}), nil
}

// SaveAsTemplate copies a checklist into a new template owned by the caller.
func (s *TemplateService) SaveAsTemplate(ctx context.Context, req *connect.Request[api.SaveAsTemplateRequest]) (*connect.Response[api.SaveAsTemplateResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SaveAsTemplate request received", "checklist_id", req.Msg.ChecklistID, "name", req.Msg.Name)

	t, err := s.engine.SaveAsTemplate(ctx, req.Msg.ChecklistID, scope(claims), claims.UserID, req.Msg.Name, req.Msg.Description)
	if err != nil {
		slog.Error("SaveAsTemplate failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Checklist saved as template",
		"checklist_id", req.Msg.ChecklistID,
		"template_id", t.ID,
		"items_count", len(t.Items),
	)

	return connect.NewResponse(&api.SaveAsTemplateResponse{Template: toAPITemplate(t, true)}), nil
}

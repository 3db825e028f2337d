package service

import (
	"context"
	"log/slog"
	"strconv"

	"connectrpc.com/connect"

	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/metrics"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/pkg/api"
	"github.com/mmynk/haleway/pkg/api/apiconnect"
)

// ChecklistService implements the Connect ChecklistService
type ChecklistService struct {
	apiconnect.UnimplementedChecklistServiceHandler
	engine  *engine.Engine
	metrics *metrics.Metrics
}

// NewChecklistService creates a new ChecklistService backed by the given engine.
func NewChecklistService(e *engine.Engine, m *metrics.Metrics) *ChecklistService {
	return &ChecklistService{engine: e, metrics: m}
}

// CreateChecklist creates a blank checklist, or one copied from a template
// when template_id is set.
func (s *ChecklistService) CreateChecklist(ctx context.Context, req *connect.Request[api.CreateChecklistRequest]) (*connect.Response[api.CreateChecklistResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateChecklist request received",
		"trip_id", req.Msg.TripID,
		"kind", req.Msg.Kind,
		"template_id", req.Msg.TemplateID,
	)

	in := engine.ChecklistInput{
		TripID:       req.Msg.TripID,
		Name:         req.Msg.Name,
		AssignedTo:   req.Msg.AssignedTo,
		ShoppingDate: req.Msg.ShoppingDate,
		StoreName:    req.Msg.StoreName,
	}
	if req.Msg.Kind != "" {
		if in.Kind, err = models.ParseKind(req.Msg.Kind); err != nil {
			return nil, toConnectError(err)
		}
	}

	var (
		c      *models.Checklist
		origin = "blank"
	)
	if req.Msg.TemplateID != "" {
		origin = "template"
		c, err = s.engine.Instantiate(ctx, req.Msg.TemplateID, claims.UserID, scope(claims), in)
	} else {
		c, err = s.engine.CreateChecklist(ctx, scope(claims), in)
	}
	if err != nil {
		slog.Error("CreateChecklist failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	s.metrics.ChecklistsCreated.WithLabelValues(string(c.Kind), origin).Inc()
	if len(c.Items) > 0 {
		s.metrics.ItemsAdded.WithLabelValues(string(c.Kind), "template").Add(float64(len(c.Items)))
	}

	slog.Info("Checklist created",
		"checklist_id", c.ID,
		"trip_id", c.TripID,
		"origin", origin,
		"items_count", len(c.Items),
	)

	return connect.NewResponse(&api.CreateChecklistResponse{Checklist: toAPIChecklist(c, true)}), nil
}

// GetChecklist returns the summary view of a checklist.
func (s *ChecklistService) GetChecklist(ctx context.Context, req *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetChecklist request received", "checklist_id", req.Msg.ChecklistID)

	c, err := s.engine.GetChecklist(ctx, req.Msg.ChecklistID, scope(claims))
	if err != nil {
		slog.Error("GetChecklist failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetChecklistResponse{Checklist: toAPIChecklist(c, true)}), nil
}

// ListChecklists lists a trip's checklists with their progress.
func (s *ChecklistService) ListChecklists(ctx context.Context, req *connect.Request[api.ListChecklistsRequest]) (*connect.Response[api.ListChecklistsResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListChecklists request received", "trip_id", req.Msg.TripID, "kind", req.Msg.Kind)

	lists, err := s.engine.ListChecklists(ctx, req.Msg.TripID, models.Kind(req.Msg.Kind), scope(claims))
	if err != nil {
		slog.Error("ListChecklists failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Checklist, len(lists))
	for i, c := range lists {
		out[i] = toAPIChecklist(c, false)
	}

	slog.Info("ListChecklists successful", "trip_id", req.Msg.TripID, "count", len(out))

	return connect.NewResponse(&api.ListChecklistsResponse{Checklists: out}), nil
}

// UpdateChecklist replaces a checklist's metadata.
func (s *ChecklistService) UpdateChecklist(ctx context.Context, req *connect.Request[api.UpdateChecklistRequest]) (*connect.Response[api.UpdateChecklistResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateChecklist request received", "checklist_id", req.Msg.ChecklistID, "name", req.Msg.Name)

	c, err := s.engine.UpdateChecklist(ctx, req.Msg.ChecklistID, scope(claims), models.ChecklistFields{
		Name:         req.Msg.Name,
		AssignedTo:   req.Msg.AssignedTo,
		ShoppingDate: req.Msg.ShoppingDate,
		StoreName:    req.Msg.StoreName,
	})
	if err != nil {
		slog.Error("UpdateChecklist failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateChecklistResponse{Checklist: toAPIChecklist(c, true)}), nil
}

// DeleteChecklist deletes a checklist. Only trip admins may delete.
func (s *ChecklistService) DeleteChecklist(ctx context.Context, req *connect.Request[api.DeleteChecklistRequest]) (*connect.Response[api.DeleteChecklistResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteChecklist request received", "checklist_id", req.Msg.ChecklistID, "user_id", claims.UserID)

	if err := s.engine.DeleteChecklist(ctx, req.Msg.ChecklistID, scope(claims), claims.IsTripAdmin); err != nil {
		slog.Error("DeleteChecklist failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Checklist deleted", "checklist_id", req.Msg.ChecklistID)

	return connect.NewResponse(&api.DeleteChecklistResponse{}), nil
}

// AddItem adds one item to a checklist.
func (s *ChecklistService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddItem request received", "checklist_id", req.Msg.ChecklistID, "name", req.Msg.Name)

	in := itemInput(req.Msg.Category, req.Msg.Name, req.Msg.Quantity, req.Msg.Notes, req.Msg.Order)
	res, err := s.engine.AddItem(ctx, req.Msg.ChecklistID, scope(claims), in)
	if err != nil {
		slog.Error("AddItem failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	s.metrics.ItemsAdded.WithLabelValues(string(res.Item.Quantity.Kind()), "manual").Inc()

	return connect.NewResponse(&api.AddItemResponse{
		Item:     toAPIChecklistItem(res.Item),
		Progress: toAPIProgress(res.Progress),
	}), nil
}

// EditItem replaces an item's fields, keeping its done flag.
func (s *ChecklistService) EditItem(ctx context.Context, req *connect.Request[api.EditItemRequest]) (*connect.Response[api.EditItemResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("EditItem request received", "item_id", req.Msg.ItemID)

	in := itemInput(req.Msg.Category, req.Msg.Name, req.Msg.Quantity, req.Msg.Notes, req.Msg.Order)
	res, err := s.engine.EditItem(ctx, req.Msg.ItemID, scope(claims), in)
	if err != nil {
		slog.Error("EditItem failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.EditItemResponse{
		Item:     toAPIChecklistItem(res.Item),
		Progress: toAPIProgress(res.Progress),
	}), nil
}

// DeleteItem removes an item.
func (s *ChecklistService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteItem request received", "item_id", req.Msg.ItemID)

	p, err := s.engine.DeleteItem(ctx, req.Msg.ItemID, scope(claims))
	if err != nil {
		slog.Error("DeleteItem failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteItemResponse{Progress: toAPIProgress(p)}), nil
}

// ToggleItem flips an item's packed/purchased flag.
func (s *ChecklistService) ToggleItem(ctx context.Context, req *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.ToggleItem(ctx, req.Msg.ItemID, scope(claims))
	if err != nil {
		slog.Error("ToggleItem failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	kind := res.Item.Quantity.Kind()
	s.metrics.ItemsToggled.WithLabelValues(string(kind), strconv.FormatBool(res.Item.IsDone)).Inc()
	slog.Debug("Item toggled",
		"item_id", res.Item.ID,
		kind.DoneLabel(), res.Item.IsDone,
		"done_count", res.Progress.Done,
		"total_count", res.Progress.Total,
	)

	return connect.NewResponse(&api.ToggleItemResponse{
		ItemID:     res.Item.ID,
		IsDone:     res.Item.IsDone,
		DoneCount:  res.Progress.Done,
		TotalCount: res.Progress.Total,
		Percentage: res.Progress.Percentage,
	}), nil
}

// BulkAddItems parses a text blob into items and adds them in one batch.
func (s *ChecklistService) BulkAddItems(ctx context.Context, req *connect.Request[api.BulkAddItemsRequest]) (*connect.Response[api.BulkAddItemsResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("BulkAddItems request received", "checklist_id", req.Msg.ChecklistID, "category", req.Msg.Category)

	res, err := s.engine.BulkAdd(ctx, req.Msg.ChecklistID, scope(claims), req.Msg.Category, req.Msg.Items)
	if err != nil {
		slog.Warn("BulkAddItems rejected", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	s.recordAdded(res.Items, "bulk")
	slog.Info("Items bulk added", "checklist_id", req.Msg.ChecklistID, "items_added", len(res.Items))

	return connect.NewResponse(&api.BulkAddItemsResponse{
		ItemsAdded: len(res.Items),
		Items:      toAPIChecklistItems(res.Items),
		Progress:   toAPIProgress(res.Progress),
	}), nil
}

// AddOutfit adds the outfit calculator's clothing items to a packing list.
func (s *ChecklistService) AddOutfit(ctx context.Context, req *connect.Request[api.AddOutfitRequest]) (*connect.Response[api.AddOutfitResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddOutfit request received",
		"checklist_id", req.Msg.ChecklistID,
		"category", req.Msg.Category,
		"num_outfits", req.Msg.NumOutfits,
	)

	res, err := s.engine.AddOutfit(ctx, req.Msg.ChecklistID, scope(claims), req.Msg.Category, req.Msg.NumOutfits)
	if err != nil {
		slog.Error("AddOutfit failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	s.recordAdded(res.Items, "outfit")

	return connect.NewResponse(&api.AddOutfitResponse{
		Items:    toAPIChecklistItems(res.Items),
		Progress: toAPIProgress(res.Progress),
	}), nil
}

// RenameCategory moves every item of one category to another.
func (s *ChecklistService) RenameCategory(ctx context.Context, req *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.RenameCategoryResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RenameCategory request received",
		"checklist_id", req.Msg.ChecklistID,
		"old_category", req.Msg.OldCategory,
		"new_category", req.Msg.NewCategory,
	)

	res, err := s.engine.RenameCategory(ctx, req.Msg.ChecklistID, scope(claims), req.Msg.OldCategory, req.Msg.NewCategory)
	if err != nil {
		slog.Error("RenameCategory failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Category renamed", "checklist_id", req.Msg.ChecklistID, "items_updated", res.Updated)

	return connect.NewResponse(&api.RenameCategoryResponse{
		ItemsUpdated: res.Updated,
		Progress:     toAPIProgress(res.Progress),
	}), nil
}

// CategorySuggestions returns the categories to offer when adding items.
func (s *ChecklistService) CategorySuggestions(ctx context.Context, req *connect.Request[api.CategorySuggestionsRequest]) (*connect.Response[api.CategorySuggestionsResponse], error) {
	claims, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.engine.CategorySuggestions(ctx, req.Msg.ChecklistID, scope(claims))
	if err != nil {
		slog.Error("CategorySuggestions failed", "checklist_id", req.Msg.ChecklistID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.CategorySuggestionsResponse{Categories: categories}), nil
}

func (s *ChecklistService) recordAdded(items []models.ChecklistItem, source string) {
	if len(items) == 0 {
		return
	}
	kind := items[0].Quantity.Kind()
	s.metrics.ItemsAdded.WithLabelValues(string(kind), source).Add(float64(len(items)))
}

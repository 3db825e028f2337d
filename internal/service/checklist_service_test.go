package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/haleway/pkg/api"
)

func createGroceryList(t *testing.T, s *testServer, name string) *api.Checklist {
	t.Helper()
	resp, err := s.checklists.CreateChecklist(context.Background(), request(s.bob, &api.CreateChecklistRequest{
		TripID:       trip,
		Kind:         "grocery",
		Name:         name,
		ShoppingDate: "2026-07-04",
		StoreName:    "Safeway",
	}))
	require.NoError(t, err)
	return resp.Msg.Checklist
}

func TestCreateChecklistFromTemplate(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	beach := seedBeach(t, s)

	resp, err := s.checklists.CreateChecklist(ctx, request(s.bob, &api.CreateChecklistRequest{
		TripID:     trip,
		TemplateID: beach.ID,
	}))
	require.NoError(t, err)

	c := resp.Msg.Checklist
	assert.Equal(t, "packing", c.Kind)
	assert.Equal(t, "Beach", c.Name)
	assert.Equal(t, beach.ID, c.BasedOnTemplateID)
	assert.Equal(t, &api.Progress{DoneCount: 0, TotalCount: 3, Percentage: 0}, c.Progress)

	var categories []string
	for _, g := range c.Categories {
		categories = append(categories, g.Category)
	}
	assert.Equal(t, []string{"Clothing", "Beach Gear"}, categories)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ChecklistsCreated.WithLabelValues("packing", "template")))
	assert.Equal(t, 3.0, testutil.ToFloat64(s.metrics.ItemsAdded.WithLabelValues("packing", "template")))

	// A trip has a single packing list.
	_, err = s.checklists.CreateChecklist(ctx, request(s.bob, &api.CreateChecklistRequest{
		TripID: trip,
		Kind:   "packing",
		Name:   "Second",
	}))
	requireCode(t, connect.CodeInvalidArgument, err)
}

func TestCreateChecklistValidation(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
		req   *api.CreateChecklistRequest
		code  connect.Code
	}{
		{
			name:  "missing kind",
			token: s.bob,
			req:   &api.CreateChecklistRequest{TripID: trip, Name: "List"},
			code:  connect.CodeInvalidArgument,
		},
		{
			name:  "bad shopping date",
			token: s.bob,
			req:   &api.CreateChecklistRequest{TripID: trip, Kind: "grocery", Name: "List", ShoppingDate: "07/04/2026"},
			code:  connect.CodeInvalidArgument,
		},
		{
			name:  "foreign trip",
			token: s.carol,
			req:   &api.CreateChecklistRequest{TripID: trip, Kind: "grocery", Name: "List"},
			code:  connect.CodeNotFound,
		},
		{
			name:  "unknown template",
			token: s.bob,
			req:   &api.CreateChecklistRequest{TripID: trip, TemplateID: "missing"},
			code:  connect.CodeNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.checklists.CreateChecklist(ctx, request(tt.token, tt.req))
			requireCode(t, tt.code, err)
		})
	}
}

func TestItemLifecycle(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	list := createGroceryList(t, s, "Week 1")

	added, err := s.checklists.AddItem(ctx, request(s.bob, &api.AddItemRequest{
		ChecklistID: list.ID,
		Category:    "Produce",
		Name:        "Bananas",
		Quantity:    "2 lbs",
	}))
	require.NoError(t, err)
	item := added.Msg.Item
	assert.Equal(t, "2 lbs", item.Quantity)
	assert.Equal(t, 1, item.Order)
	assert.Equal(t, 1, added.Msg.Progress.TotalCount)

	toggled, err := s.checklists.ToggleItem(ctx, request(s.bob, &api.ToggleItemRequest{ItemID: item.ID}))
	require.NoError(t, err)
	assert.Equal(t, &api.ToggleItemResponse{
		ItemID:     item.ID,
		IsDone:     true,
		DoneCount:  1,
		TotalCount: 1,
		Percentage: 100,
	}, toggled.Msg)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ItemsToggled.WithLabelValues("grocery", "true")))

	edited, err := s.checklists.EditItem(ctx, request(s.bob, &api.EditItemRequest{
		ItemID:   item.ID,
		Category: "Produce",
		Name:     "Organic Bananas",
		Quantity: "1 bunch",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Organic Bananas", edited.Msg.Item.Name)
	assert.Equal(t, 1, edited.Msg.Item.Order)
	assert.True(t, edited.Msg.Item.IsDone, "editing keeps the done flag")

	deleted, err := s.checklists.DeleteItem(ctx, request(s.bob, &api.DeleteItemRequest{ItemID: item.ID}))
	require.NoError(t, err)
	assert.Equal(t, &api.Progress{}, deleted.Msg.Progress)

	_, err = s.checklists.ToggleItem(ctx, request(s.bob, &api.ToggleItemRequest{ItemID: item.ID}))
	requireCode(t, connect.CodeNotFound, err)
}

func TestBulkAddItems(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	list := createGroceryList(t, s, "Week 1")

	resp, err := s.checklists.BulkAddItems(ctx, request(s.bob, &api.BulkAddItemsRequest{
		ChecklistID: list.ID,
		Items:       "Bananas | 2 lbs, Milk\nEggs | 1 dozen",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Msg.ItemsAdded)
	for _, item := range resp.Msg.Items {
		assert.Equal(t, "Groceries", item.Category)
	}
	assert.Equal(t, "2 lbs", resp.Msg.Items[0].Quantity)
	assert.Equal(t, "", resp.Msg.Items[1].Quantity)
	assert.Equal(t, 3, resp.Msg.Progress.TotalCount)
	assert.Equal(t, 3.0, testutil.ToFloat64(s.metrics.ItemsAdded.WithLabelValues("grocery", "bulk")))

	// Tokens without a name are dropped.
	resp, err = s.checklists.BulkAddItems(ctx, request(s.bob, &api.BulkAddItemsRequest{
		ChecklistID: list.ID,
		Items:       "Bread\n| 2 cans",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Msg.ItemsAdded)
	assert.Equal(t, "Bread", resp.Msg.Items[0].Name)

	// Nothing named at all is rejected.
	_, err = s.checklists.BulkAddItems(ctx, request(s.bob, &api.BulkAddItemsRequest{
		ChecklistID: list.ID,
		Items:       "| 2 cans, | 1 lb",
	}))
	requireCode(t, connect.CodeInvalidArgument, err)

	got, err := s.checklists.GetChecklist(ctx, request(s.bob, &api.GetChecklistRequest{ChecklistID: list.ID}))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Msg.Checklist.Progress.TotalCount)
}

func TestAddOutfit(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	created, err := s.checklists.CreateChecklist(ctx, request(s.bob, &api.CreateChecklistRequest{
		TripID: trip,
		Kind:   "packing",
		Name:   "Family Packing",
	}))
	require.NoError(t, err)

	resp, err := s.checklists.AddOutfit(ctx, request(s.bob, &api.AddOutfitRequest{
		ChecklistID: created.Msg.Checklist.ID,
		Category:    "Kids Clothes",
		NumOutfits:  8,
	}))
	require.NoError(t, err)

	quantities := map[string]string{}
	for _, item := range resp.Msg.Items {
		quantities[item.Name] = item.Quantity
	}
	assert.Equal(t, map[string]string{
		"Shirts":    "8",
		"Pants":     "4",
		"Underwear": "8",
		"Socks":     "8",
		"Pajamas":   "2",
	}, quantities)
	assert.Equal(t, 5, resp.Msg.Progress.TotalCount)

	grocery := createGroceryList(t, s, "Week 1")
	_, err = s.checklists.AddOutfit(ctx, request(s.bob, &api.AddOutfitRequest{
		ChecklistID: grocery.ID,
		Category:    "Clothes",
		NumOutfits:  3,
	}))
	requireCode(t, connect.CodeInvalidArgument, err)
}

func TestRenameCategory(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	list := createGroceryList(t, s, "Week 1")

	_, err := s.checklists.BulkAddItems(ctx, request(s.bob, &api.BulkAddItemsRequest{
		ChecklistID: list.ID,
		Category:    "Food",
		Items:       "Bread, Cheese",
	}))
	require.NoError(t, err)

	_, err = s.checklists.RenameCategory(ctx, request(s.bob, &api.RenameCategoryRequest{
		ChecklistID: list.ID,
		OldCategory: "Food",
		NewCategory: "Food",
	}))
	requireCode(t, connect.CodeInvalidArgument, err)

	resp, err := s.checklists.RenameCategory(ctx, request(s.bob, &api.RenameCategoryRequest{
		ChecklistID: list.ID,
		OldCategory: "Food",
		NewCategory: "Bakery & Dairy",
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Msg.ItemsUpdated)

	suggestions, err := s.checklists.CategorySuggestions(ctx, request(s.bob, &api.CategorySuggestionsRequest{ChecklistID: list.ID}))
	require.NoError(t, err)
	require.NotEmpty(t, suggestions.Msg.Categories)
	assert.Equal(t, "Bakery & Dairy", suggestions.Msg.Categories[0])
	assert.NotContains(t, suggestions.Msg.Categories, "Food")
}

func TestListAndUpdateChecklists(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	list := createGroceryList(t, s, "Week 1")
	createGroceryList(t, s, "Week 2")

	listed, err := s.checklists.ListChecklists(ctx, request(s.alice, &api.ListChecklistsRequest{TripID: trip, Kind: "grocery"}))
	require.NoError(t, err)
	require.Len(t, listed.Msg.Checklists, 2)
	for _, c := range listed.Msg.Checklists {
		assert.Empty(t, c.Categories)
		assert.NotNil(t, c.Progress)
	}

	_, err = s.checklists.ListChecklists(ctx, request(s.carol, &api.ListChecklistsRequest{TripID: trip}))
	requireCode(t, connect.CodeNotFound, err)

	updated, err := s.checklists.UpdateChecklist(ctx, request(s.bob, &api.UpdateChecklistRequest{
		ChecklistID:  list.ID,
		Name:         "Week 1 Groceries",
		AssignedTo:   "bob",
		ShoppingDate: "2026-07-05",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Week 1 Groceries", updated.Msg.Checklist.Name)
	assert.Equal(t, "2026-07-05", updated.Msg.Checklist.ShoppingDate)
	assert.Empty(t, updated.Msg.Checklist.StoreName)
}

func TestDeleteChecklistRequiresAdmin(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	list := createGroceryList(t, s, "Week 1")

	_, err := s.checklists.DeleteChecklist(ctx, request(s.bob, &api.DeleteChecklistRequest{ChecklistID: list.ID}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = s.checklists.DeleteChecklist(ctx, request(s.carol, &api.DeleteChecklistRequest{ChecklistID: list.ID}))
	requireCode(t, connect.CodeNotFound, err)

	_, err = s.checklists.DeleteChecklist(ctx, request(s.alice, &api.DeleteChecklistRequest{ChecklistID: list.ID}))
	require.NoError(t, err)

	_, err = s.checklists.GetChecklist(ctx, request(s.alice, &api.GetChecklistRequest{ChecklistID: list.ID}))
	requireCode(t, connect.CodeNotFound, err)
}

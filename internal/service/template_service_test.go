package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/haleway/pkg/api"
)

func TestTemplateServiceRequiresToken(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.templates.ListTemplates(context.Background(), connect.NewRequest(&api.ListTemplatesRequest{}))
	requireCode(t, connect.CodeUnauthenticated, err)

	_, err = s.templates.ListTemplates(context.Background(), request("not-a-jwt", &api.ListTemplatesRequest{}))
	requireCode(t, connect.CodeUnauthenticated, err)
}

func TestTemplateLifecycle(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	beach := seedBeach(t, s)

	created, err := s.templates.CreateTemplate(ctx, request(s.alice, &api.CreateTemplateRequest{
		Kind: "packing",
		Name: "Weekend",
	}))
	require.NoError(t, err)
	weekend := created.Msg.Template
	assert.Equal(t, "alice", weekend.OwnerID)
	assert.False(t, weekend.IsSystem)

	item, err := s.templates.AddTemplateItem(ctx, request(s.alice, &api.AddTemplateItemRequest{
		TemplateID: weekend.ID,
		Category:   "Clothing",
		Name:       "Socks",
		Quantity:   "3",
	}))
	require.NoError(t, err)
	assert.Equal(t, "3", item.Msg.Item.Quantity)
	assert.Equal(t, 1, item.Msg.Item.Order)

	got, err := s.templates.GetTemplate(ctx, request(s.alice, &api.GetTemplateRequest{TemplateID: weekend.ID}))
	require.NoError(t, err)
	require.Len(t, got.Msg.Template.Categories, 1)
	assert.Equal(t, "Socks", got.Msg.Template.Categories[0].Items[0].Name)

	listed, err := s.templates.ListTemplates(ctx, request(s.alice, &api.ListTemplatesRequest{Kind: "packing"}))
	require.NoError(t, err)
	var names []string
	for _, tmpl := range listed.Msg.Templates {
		names = append(names, tmpl.Name)
		assert.Empty(t, tmpl.Categories, "list view carries no items")
	}
	assert.Equal(t, []string{"Beach", "Weekend"}, names)

	// Bob sees only the system template.
	listed, err = s.templates.ListTemplates(ctx, request(s.bob, &api.ListTemplatesRequest{}))
	require.NoError(t, err)
	require.Len(t, listed.Msg.Templates, 1)
	assert.Equal(t, beach.ID, listed.Msg.Templates[0].ID)

	_, err = s.templates.GetTemplate(ctx, request(s.bob, &api.GetTemplateRequest{TemplateID: weekend.ID}))
	requireCode(t, connect.CodeNotFound, err)

	updated, err := s.templates.UpdateTemplate(ctx, request(s.alice, &api.UpdateTemplateRequest{
		TemplateID:  weekend.ID,
		Name:        "Long Weekend",
		Description: "Three nights",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Long Weekend", updated.Msg.Template.Name)

	_, err = s.templates.DeleteTemplateItem(ctx, request(s.alice, &api.DeleteTemplateItemRequest{ItemID: item.Msg.Item.ID}))
	require.NoError(t, err)

	_, err = s.templates.DeleteTemplate(ctx, request(s.alice, &api.DeleteTemplateRequest{TemplateID: weekend.ID}))
	require.NoError(t, err)

	_, err = s.templates.GetTemplate(ctx, request(s.alice, &api.GetTemplateRequest{TemplateID: weekend.ID}))
	requireCode(t, connect.CodeNotFound, err)
}

func TestSystemTemplatesAreReadOnly(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	beach := seedBeach(t, s)

	_, err := s.templates.DeleteTemplate(ctx, request(s.alice, &api.DeleteTemplateRequest{TemplateID: beach.ID}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = s.templates.UpdateTemplate(ctx, request(s.alice, &api.UpdateTemplateRequest{TemplateID: beach.ID, Name: "Mine"}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = s.templates.AddTemplateItem(ctx, request(s.alice, &api.AddTemplateItemRequest{
		TemplateID: beach.ID,
		Category:   "Clothing",
		Name:       "Sandals",
	}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = s.templates.DeleteTemplateItem(ctx, request(s.alice, &api.DeleteTemplateItemRequest{ItemID: beach.Items[0].ID}))
	requireCode(t, connect.CodePermissionDenied, err)
}

func TestCreateTemplateValidation(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *api.CreateTemplateRequest
	}{
		{"unknown kind", &api.CreateTemplateRequest{Kind: "camping", Name: "X"}},
		{"blank name", &api.CreateTemplateRequest{Kind: "grocery", Name: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.templates.CreateTemplate(ctx, request(s.alice, tt.req))
			requireCode(t, connect.CodeInvalidArgument, err)
		})
	}
}

func TestSaveAsTemplate(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	beach := seedBeach(t, s)

	list, err := s.checklists.CreateChecklist(ctx, request(s.bob, &api.CreateChecklistRequest{
		TripID:     trip,
		TemplateID: beach.ID,
		Name:       "Family Packing",
	}))
	require.NoError(t, err)

	first := list.Msg.Checklist.Categories[0].Items[0]
	_, err = s.checklists.ToggleItem(ctx, request(s.bob, &api.ToggleItemRequest{ItemID: first.ID}))
	require.NoError(t, err)

	saved, err := s.templates.SaveAsTemplate(ctx, request(s.bob, &api.SaveAsTemplateRequest{
		ChecklistID: list.Msg.Checklist.ID,
	}))
	require.NoError(t, err)

	tmpl := saved.Msg.Template
	assert.Equal(t, "Family Packing Template", tmpl.Name)
	assert.Equal(t, "bob", tmpl.OwnerID)
	assert.Equal(t, len(beach.Items), tmpl.ItemCount)
	for _, g := range tmpl.Categories {
		for _, item := range g.Items {
			assert.False(t, item.IsDone, item.Name)
		}
	}

	// Carol cannot see the trip, so the list does not exist for her.
	_, err = s.templates.SaveAsTemplate(ctx, request(s.carol, &api.SaveAsTemplateRequest{
		ChecklistID: list.Msg.Checklist.ID,
	}))
	requireCode(t, connect.CodeNotFound, err)
}

package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/haleway/pkg/api"
)

// ChecklistServiceName is the fully-qualified name of the ChecklistService service.
const ChecklistServiceName = "haleway.v1.ChecklistService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// ChecklistServiceCreateChecklistProcedure is the fully-qualified name of the ChecklistService's CreateChecklist RPC.
	ChecklistServiceCreateChecklistProcedure = "/haleway.v1.ChecklistService/CreateChecklist"
	// ChecklistServiceGetChecklistProcedure is the fully-qualified name of the ChecklistService's GetChecklist RPC.
	ChecklistServiceGetChecklistProcedure = "/haleway.v1.ChecklistService/GetChecklist"
	// ChecklistServiceListChecklistsProcedure is the fully-qualified name of the ChecklistService's ListChecklists RPC.
	ChecklistServiceListChecklistsProcedure = "/haleway.v1.ChecklistService/ListChecklists"
	// ChecklistServiceUpdateChecklistProcedure is the fully-qualified name of the ChecklistService's UpdateChecklist RPC.
	ChecklistServiceUpdateChecklistProcedure = "/haleway.v1.ChecklistService/UpdateChecklist"
	// ChecklistServiceDeleteChecklistProcedure is the fully-qualified name of the ChecklistService's DeleteChecklist RPC.
	ChecklistServiceDeleteChecklistProcedure = "/haleway.v1.ChecklistService/DeleteChecklist"
	// ChecklistServiceAddItemProcedure is the fully-qualified name of the ChecklistService's AddItem RPC.
	ChecklistServiceAddItemProcedure = "/haleway.v1.ChecklistService/AddItem"
	// ChecklistServiceEditItemProcedure is the fully-qualified name of the ChecklistService's EditItem RPC.
	ChecklistServiceEditItemProcedure = "/haleway.v1.ChecklistService/EditItem"
	// ChecklistServiceDeleteItemProcedure is the fully-qualified name of the ChecklistService's DeleteItem RPC.
	ChecklistServiceDeleteItemProcedure = "/haleway.v1.ChecklistService/DeleteItem"
	// ChecklistServiceToggleItemProcedure is the fully-qualified name of the ChecklistService's ToggleItem RPC.
	ChecklistServiceToggleItemProcedure = "/haleway.v1.ChecklistService/ToggleItem"
	// ChecklistServiceBulkAddItemsProcedure is the fully-qualified name of the ChecklistService's BulkAddItems RPC.
	ChecklistServiceBulkAddItemsProcedure = "/haleway.v1.ChecklistService/BulkAddItems"
	// ChecklistServiceAddOutfitProcedure is the fully-qualified name of the ChecklistService's AddOutfit RPC.
	ChecklistServiceAddOutfitProcedure = "/haleway.v1.ChecklistService/AddOutfit"
	// ChecklistServiceRenameCategoryProcedure is the fully-qualified name of the ChecklistService's RenameCategory RPC.
	ChecklistServiceRenameCategoryProcedure = "/haleway.v1.ChecklistService/RenameCategory"
	// ChecklistServiceCategorySuggestionsProcedure is the fully-qualified name of the ChecklistService's CategorySuggestions RPC.
	ChecklistServiceCategorySuggestionsProcedure = "/haleway.v1.ChecklistService/CategorySuggestions"
)

// ChecklistServiceClient is a client for the haleway.v1.ChecklistService service.
type ChecklistServiceClient interface {
	CreateChecklist(context.Context, *connect.Request[api.CreateChecklistRequest]) (*connect.Response[api.CreateChecklistResponse], error)
	GetChecklist(context.Context, *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error)
	ListChecklists(context.Context, *connect.Request[api.ListChecklistsRequest]) (*connect.Response[api.ListChecklistsResponse], error)
	UpdateChecklist(context.Context, *connect.Request[api.UpdateChecklistRequest]) (*connect.Response[api.UpdateChecklistResponse], error)
	DeleteChecklist(context.Context, *connect.Request[api.DeleteChecklistRequest]) (*connect.Response[api.DeleteChecklistResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	EditItem(context.Context, *connect.Request[api.EditItemRequest]) (*connect.Response[api.EditItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error)
	BulkAddItems(context.Context, *connect.Request[api.BulkAddItemsRequest]) (*connect.Response[api.BulkAddItemsResponse], error)
	AddOutfit(context.Context, *connect.Request[api.AddOutfitRequest]) (*connect.Response[api.AddOutfitResponse], error)
	RenameCategory(context.Context, *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.RenameCategoryResponse], error)
	CategorySuggestions(context.Context, *connect.Request[api.CategorySuggestionsRequest]) (*connect.Response[api.CategorySuggestionsResponse], error)
}

// NewChecklistServiceClient constructs a client for the haleway.v1.ChecklistService service.
// Requests are sent with the JSON codec from package api.
//
// The URL supplied here should be the base URL for the Connect server (for
// example, http://api.acme.com or https://acme.com/grpc).
func NewChecklistServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ChecklistServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &checklistServiceClient{
		createChecklist: connect.NewClient[api.CreateChecklistRequest, api.CreateChecklistResponse](
			httpClient,
			baseURL+ChecklistServiceCreateChecklistProcedure,
			opts...,
		),
		getChecklist: connect.NewClient[api.GetChecklistRequest, api.GetChecklistResponse](
			httpClient,
			baseURL+ChecklistServiceGetChecklistProcedure,
			opts...,
		),
		listChecklists: connect.NewClient[api.ListChecklistsRequest, api.ListChecklistsResponse](
			httpClient,
			baseURL+ChecklistServiceListChecklistsProcedure,
			opts...,
		),
		updateChecklist: connect.NewClient[api.UpdateChecklistRequest, api.UpdateChecklistResponse](
			httpClient,
			baseURL+ChecklistServiceUpdateChecklistProcedure,
			opts...,
		),
		deleteChecklist: connect.NewClient[api.DeleteChecklistRequest, api.DeleteChecklistResponse](
			httpClient,
			baseURL+ChecklistServiceDeleteChecklistProcedure,
			opts...,
		),
		addItem: connect.NewClient[api.AddItemRequest, api.AddItemResponse](
			httpClient,
			baseURL+ChecklistServiceAddItemProcedure,
			opts...,
		),
		editItem: connect.NewClient[api.EditItemRequest, api.EditItemResponse](
			httpClient,
			baseURL+ChecklistServiceEditItemProcedure,
			opts...,
		),
		deleteItem: connect.NewClient[api.DeleteItemRequest, api.DeleteItemResponse](
			httpClient,
			baseURL+ChecklistServiceDeleteItemProcedure,
			opts...,
		),
		toggleItem: connect.NewClient[api.ToggleItemRequest, api.ToggleItemResponse](
			httpClient,
			baseURL+ChecklistServiceToggleItemProcedure,
			opts...,
		),
		bulkAddItems: connect.NewClient[api.BulkAddItemsRequest, api.BulkAddItemsResponse](
			httpClient,
			baseURL+ChecklistServiceBulkAddItemsProcedure,
			opts...,
		),
		addOutfit: connect.NewClient[api.AddOutfitRequest, api.AddOutfitResponse](
			httpClient,
			baseURL+ChecklistServiceAddOutfitProcedure,
			opts...,
		),
		renameCategory: connect.NewClient[api.RenameCategoryRequest, api.RenameCategoryResponse](
			httpClient,
			baseURL+ChecklistServiceRenameCategoryProcedure,
			opts...,
		),
		categorySuggestions: connect.NewClient[api.CategorySuggestionsRequest, api.CategorySuggestionsResponse](
			httpClient,
			baseURL+ChecklistServiceCategorySuggestionsProcedure,
			opts...,
		),
	}
}

// checklistServiceClient implements ChecklistServiceClient.
type checklistServiceClient struct {
	createChecklist     *connect.Client[api.CreateChecklistRequest, api.CreateChecklistResponse]
	getChecklist        *connect.Client[api.GetChecklistRequest, api.GetChecklistResponse]
	listChecklists      *connect.Client[api.ListChecklistsRequest, api.ListChecklistsResponse]
	updateChecklist     *connect.Client[api.UpdateChecklistRequest, api.UpdateChecklistResponse]
	deleteChecklist     *connect.Client[api.DeleteChecklistRequest, api.DeleteChecklistResponse]
	addItem             *connect.Client[api.AddItemRequest, api.AddItemResponse]
	editItem            *connect.Client[api.EditItemRequest, api.EditItemResponse]
	deleteItem          *connect.Client[api.DeleteItemRequest, api.DeleteItemResponse]
	toggleItem          *connect.Client[api.ToggleItemRequest, api.ToggleItemResponse]
	bulkAddItems        *connect.Client[api.BulkAddItemsRequest, api.BulkAddItemsResponse]
	addOutfit           *connect.Client[api.AddOutfitRequest, api.AddOutfitResponse]
	renameCategory      *connect.Client[api.RenameCategoryRequest, api.RenameCategoryResponse]
	categorySuggestions *connect.Client[api.CategorySuggestionsRequest, api.CategorySuggestionsResponse]
}

// CreateChecklist calls haleway.v1.ChecklistService.CreateChecklist.
func (c *checklistServiceClient) CreateChecklist(ctx context.Context, req *connect.Request[api.CreateChecklistRequest]) (*connect.Response[api.CreateChecklistResponse], error) {
	return c.createChecklist.CallUnary(ctx, req)
}

// GetChecklist calls haleway.v1.ChecklistService.GetChecklist.
func (c *checklistServiceClient) GetChecklist(ctx context.Context, req *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error) {
	return c.getChecklist.CallUnary(ctx, req)
}

// ListChecklists calls haleway.v1.ChecklistService.ListChecklists.
func (c *checklistServiceClient) ListChecklists(ctx context.Context, req *connect.Request[api.ListChecklistsRequest]) (*connect.Response[api.ListChecklistsResponse], error) {
	return c.listChecklists.CallUnary(ctx, req)
}

// UpdateChecklist calls haleway.v1.ChecklistService.UpdateChecklist.
func (c *checklistServiceClient) UpdateChecklist(ctx context.Context, req *connect.Request[api.UpdateChecklistRequest]) (*connect.Response[api.UpdateChecklistResponse], error) {
	return c.updateChecklist.CallUnary(ctx, req)
}

// DeleteChecklist calls haleway.v1.ChecklistService.DeleteChecklist.
func (c *checklistServiceClient) DeleteChecklist(ctx context.Context, req *connect.Request[api.DeleteChecklistRequest]) (*connect.Response[api.DeleteChecklistResponse], error) {
	return c.deleteChecklist.CallUnary(ctx, req)
}

// AddItem calls haleway.v1.ChecklistService.AddItem.
func (c *checklistServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

// EditItem calls haleway.v1.ChecklistService.EditItem.
func (c *checklistServiceClient) EditItem(ctx context.Context, req *connect.Request[api.EditItemRequest]) (*connect.Response[api.EditItemResponse], error) {
	return c.editItem.CallUnary(ctx, req)
}

// DeleteItem calls haleway.v1.ChecklistService.DeleteItem.
func (c *checklistServiceClient) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

// ToggleItem calls haleway.v1.ChecklistService.ToggleItem.
func (c *checklistServiceClient) ToggleItem(ctx context.Context, req *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	return c.toggleItem.CallUnary(ctx, req)
}

// BulkAddItems calls haleway.v1.ChecklistService.BulkAddItems.
func (c *checklistServiceClient) BulkAddItems(ctx context.Context, req *connect.Request[api.BulkAddItemsRequest]) (*connect.Response[api.BulkAddItemsResponse], error) {
	return c.bulkAddItems.CallUnary(ctx, req)
}

// AddOutfit calls haleway.v1.ChecklistService.AddOutfit.
func (c *checklistServiceClient) AddOutfit(ctx context.Context, req *connect.Request[api.AddOutfitRequest]) (*connect.Response[api.AddOutfitResponse], error) {
	return c.addOutfit.CallUnary(ctx, req)
}

// RenameCategory calls haleway.v1.ChecklistService.RenameCategory.
func (c *checklistServiceClient) RenameCategory(ctx context.Context, req *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.RenameCategoryResponse], error) {
	return c.renameCategory.CallUnary(ctx, req)
}

// CategorySuggestions calls haleway.v1.ChecklistService.CategorySuggestions.
func (c *checklistServiceClient) CategorySuggestions(ctx context.Context, req *connect.Request[api.CategorySuggestionsRequest]) (*connect.Response[api.CategorySuggestionsResponse], error) {
	return c.categorySuggestions.CallUnary(ctx, req)
}

// ChecklistServiceHandler is an implementation of the haleway.v1.ChecklistService service.
type ChecklistServiceHandler interface {
	CreateChecklist(context.Context, *connect.Request[api.CreateChecklistRequest]) (*connect.Response[api.CreateChecklistResponse], error)
	GetChecklist(context.Context, *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error)
	ListChecklists(context.Context, *connect.Request[api.ListChecklistsRequest]) (*connect.Response[api.ListChecklistsResponse], error)
	UpdateChecklist(context.Context, *connect.Request[api.UpdateChecklistRequest]) (*connect.Response[api.UpdateChecklistResponse], error)
	DeleteChecklist(context.Context, *connect.Request[api.DeleteChecklistRequest]) (*connect.Response[api.DeleteChecklistResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	EditItem(context.Context, *connect.Request[api.EditItemRequest]) (*connect.Response[api.EditItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error)
	BulkAddItems(context.Context, *connect.Request[api.BulkAddItemsRequest]) (*connect.Response[api.BulkAddItemsResponse], error)
	AddOutfit(context.Context, *connect.Request[api.AddOutfitRequest]) (*connect.Response[api.AddOutfitResponse], error)
	RenameCategory(context.Context, *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.RenameCategoryResponse], error)
	CategorySuggestions(context.Context, *connect.Request[api.CategorySuggestionsRequest]) (*connect.Response[api.CategorySuggestionsResponse], error)
}

// NewChecklistServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
// The JSON codec from package api is installed ahead of any caller options.
func NewChecklistServiceHandler(svc ChecklistServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	createChecklistHandler := connect.NewUnaryHandler(
		ChecklistServiceCreateChecklistProcedure,
		svc.CreateChecklist,
		opts...,
	)
	getChecklistHandler := connect.NewUnaryHandler(
		ChecklistServiceGetChecklistProcedure,
		svc.GetChecklist,
		opts...,
	)
	listChecklistsHandler := connect.NewUnaryHandler(
		ChecklistServiceListChecklistsProcedure,
		svc.ListChecklists,
		opts...,
	)
	updateChecklistHandler := connect.NewUnaryHandler(
		ChecklistServiceUpdateChecklistProcedure,
		svc.UpdateChecklist,
		opts...,
	)
	deleteChecklistHandler := connect.NewUnaryHandler(
		ChecklistServiceDeleteChecklistProcedure,
		svc.DeleteChecklist,
		opts...,
	)
	addItemHandler := connect.NewUnaryHandler(
		ChecklistServiceAddItemProcedure,
		svc.AddItem,
		opts...,
	)
	editItemHandler := connect.NewUnaryHandler(
		ChecklistServiceEditItemProcedure,
		svc.EditItem,
		opts...,
	)
	deleteItemHandler := connect.NewUnaryHandler(
		ChecklistServiceDeleteItemProcedure,
		svc.DeleteItem,
		opts...,
	)
	toggleItemHandler := connect.NewUnaryHandler(
		ChecklistServiceToggleItemProcedure,
		svc.ToggleItem,
		opts...,
	)
	bulkAddItemsHandler := connect.NewUnaryHandler(
		ChecklistServiceBulkAddItemsProcedure,
		svc.BulkAddItems,
		opts...,
	)
	addOutfitHandler := connect.NewUnaryHandler(
		ChecklistServiceAddOutfitProcedure,
		svc.AddOutfit,
		opts...,
	)
	renameCategoryHandler := connect.NewUnaryHandler(
		ChecklistServiceRenameCategoryProcedure,
		svc.RenameCategory,
		opts...,
	)
	categorySuggestionsHandler := connect.NewUnaryHandler(
		ChecklistServiceCategorySuggestionsProcedure,
		svc.CategorySuggestions,
		opts...,
	)
	return "/haleway.v1.ChecklistService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ChecklistServiceCreateChecklistProcedure:
			createChecklistHandler.ServeHTTP(w, r)
		case ChecklistServiceGetChecklistProcedure:
			getChecklistHandler.ServeHTTP(w, r)
		case ChecklistServiceListChecklistsProcedure:
			listChecklistsHandler.ServeHTTP(w, r)
		case ChecklistServiceUpdateChecklistProcedure:
			updateChecklistHandler.ServeHTTP(w, r)
		case ChecklistServiceDeleteChecklistProcedure:
			deleteChecklistHandler.ServeHTTP(w, r)
		case ChecklistServiceAddItemProcedure:
			addItemHandler.ServeHTTP(w, r)
		case ChecklistServiceEditItemProcedure:
			editItemHandler.ServeHTTP(w, r)
		case ChecklistServiceDeleteItemProcedure:
			deleteItemHandler.ServeHTTP(w, r)
		case ChecklistServiceToggleItemProcedure:
			toggleItemHandler.ServeHTTP(w, r)
		case ChecklistServiceBulkAddItemsProcedure:
			bulkAddItemsHandler.ServeHTTP(w, r)
		case ChecklistServiceAddOutfitProcedure:
			addOutfitHandler.ServeHTTP(w, r)
		case ChecklistServiceRenameCategoryProcedure:
			renameCategoryHandler.ServeHTTP(w, r)
		case ChecklistServiceCategorySuggestionsProcedure:
			categorySuggestionsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedChecklistServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedChecklistServiceHandler struct{}

func (UnimplementedChecklistServiceHandler) CreateChecklist(context.Context, *connect.Request[api.CreateChecklistRequest]) (*connect.Response[api.CreateChecklistResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.CreateChecklist is not implemented"))
}

func (UnimplementedChecklistServiceHandler) GetChecklist(context.Context, *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.GetChecklist is not implemented"))
}

func (UnimplementedChecklistServiceHandler) ListChecklists(context.Context, *connect.Request[api.ListChecklistsRequest]) (*connect.Response[api.ListChecklistsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.ListChecklists is not implemented"))
}

func (UnimplementedChecklistServiceHandler) UpdateChecklist(context.Context, *connect.Request[api.UpdateChecklistRequest]) (*connect.Response[api.UpdateChecklistResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.UpdateChecklist is not implemented"))
}

func (UnimplementedChecklistServiceHandler) DeleteChecklist(context.Context, *connect.Request[api.DeleteChecklistRequest]) (*connect.Response[api.DeleteChecklistResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.DeleteChecklist is not implemented"))
}

func (UnimplementedChecklistServiceHandler) AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.AddItem is not implemented"))
}

func (UnimplementedChecklistServiceHandler) EditItem(context.Context, *connect.Request[api.EditItemRequest]) (*connect.Response[api.EditItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.EditItem is not implemented"))
}

func (UnimplementedChecklistServiceHandler) DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.DeleteItem is not implemented"))
}

func (UnimplementedChecklistServiceHandler) ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.ToggleItem is not implemented"))
}

func (UnimplementedChecklistServiceHandler) BulkAddItems(context.Context, *connect.Request[api.BulkAddItemsRequest]) (*connect.Response[api.BulkAddItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.BulkAddItems is not implemented"))
}

func (UnimplementedChecklistServiceHandler) AddOutfit(context.Context, *connect.Request[api.AddOutfitRequest]) (*connect.Response[api.AddOutfitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.AddOutfit is not implemented"))
}

func (UnimplementedChecklistServiceHandler) RenameCategory(context.Context, *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.RenameCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.RenameCategory is not implemented"))
}

func (UnimplementedChecklistServiceHandler) CategorySuggestions(context.Context, *connect.Request[api.CategorySuggestionsRequest]) (*connect.Response[api.CategorySuggestionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.ChecklistService.CategorySuggestions is not implemented"))
}

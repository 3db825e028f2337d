package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/haleway/pkg/api"
)

// TemplateServiceName is the fully-qualified name of the TemplateService service.
const TemplateServiceName = "haleway.v1.TemplateService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// TemplateServiceListTemplatesProcedure is the fully-qualified name of the TemplateService's ListTemplates RPC.
	TemplateServiceListTemplatesProcedure = "/haleway.v1.TemplateService/ListTemplates"
	// TemplateServiceGetTemplateProcedure is the fully-qualified name of the TemplateService's GetTemplate RPC.
	TemplateServiceGetTemplateProcedure = "/haleway.v1.TemplateService/GetTemplate"
	// TemplateServiceCreateTemplateProcedure is the fully-qualified name of the TemplateService's CreateTemplate RPC.
	TemplateServiceCreateTemplateProcedure = "/haleway.v1.TemplateService/CreateTemplate"
	// TemplateServiceUpdateTemplateProcedure is the fully-qualified name of the TemplateService's UpdateTemplate RPC.
	TemplateServiceUpdateTemplateProcedure = "/haleway.v1.TemplateService/UpdateTemplate"
	// TemplateServiceDeleteTemplateProcedure is the fully-qualified name of the TemplateService's DeleteTemplate RPC.
	TemplateServiceDeleteTemplateProcedure = "/haleway.v1.TemplateService/DeleteTemplate"
	// TemplateServiceAddTemplateItemProcedure is the fully-qualified name of the TemplateService's AddTemplateItem RPC.
	TemplateServiceAddTemplateItemProcedure = "/haleway.v1.TemplateService/AddTemplateItem"
	// TemplateServiceDeleteTemplateItemProcedure is the fully-qualified name of the TemplateService's DeleteTemplateItem RPC.
	TemplateServiceDeleteTemplateItemProcedure = "/haleway.v1.TemplateService/DeleteTemplateItem"
	// TemplateServiceSaveAsTemplateProcedure is the fully-qualified name of the TemplateService's SaveAsTemplate RPC.
	TemplateServiceSaveAsTemplateProcedure = "/haleway.v1.TemplateService/SaveAsTemplate"
)

// TemplateServiceClient is a client for the haleway.v1.TemplateService service.
type TemplateServiceClient interface {
	ListTemplates(context.Context, *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error)
	GetTemplate(context.Context, *connect.Request[api.GetTemplateRequest]) (*connect.Response[api.GetTemplateResponse], error)
	CreateTemplate(context.Context, *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error)
	UpdateTemplate(context.Context, *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error)
	DeleteTemplate(context.Context, *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error)
	AddTemplateItem(context.Context, *connect.Request[api.AddTemplateItemRequest]) (*connect.Response[api.AddTemplateItemResponse], error)
	DeleteTemplateItem(context.Context, *connect.Request[api.DeleteTemplateItemRequest]) (*connect.Response[api.DeleteTemplateItemResponse], error)
	SaveAsTemplate(context.Context, *connect.Request[api.SaveAsTemplateRequest]) (*connect.Response[api.SaveAsTemplateResponse], error)
}

// NewTemplateServiceClient constructs a client for the haleway.v1.TemplateService service.
// Requests are sent with the JSON codec from package api.
//
// The URL supplied here should be the base URL for the Connect server (for
// example, http://api.acme.com or https://acme.com/grpc).
func NewTemplateServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TemplateServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &templateServiceClient{
		listTemplates: connect.NewClient[api.ListTemplatesRequest, api.ListTemplatesResponse](
			httpClient,
			baseURL+TemplateServiceListTemplatesProcedure,
			opts...,
		),
		getTemplate: connect.NewClient[api.GetTemplateRequest, api.GetTemplateResponse](
			httpClient,
			baseURL+TemplateServiceGetTemplateProcedure,
			opts...,
		),
		createTemplate: connect.NewClient[api.CreateTemplateRequest, api.CreateTemplateResponse](
			httpClient,
			baseURL+TemplateServiceCreateTemplateProcedure,
			opts...,
		),
		updateTemplate: connect.NewClient[api.UpdateTemplateRequest, api.UpdateTemplateResponse](
			httpClient,
			baseURL+TemplateServiceUpdateTemplateProcedure,
			opts...,
		),
		deleteTemplate: connect.NewClient[api.DeleteTemplateRequest, api.DeleteTemplateResponse](
			httpClient,
			baseURL+TemplateServiceDeleteTemplateProcedure,
			opts...,
		),
		addTemplateItem: connect.NewClient[api.AddTemplateItemRequest, api.AddTemplateItemResponse](
			httpClient,
			baseURL+TemplateServiceAddTemplateItemProcedure,
			opts...,
		),
		deleteTemplateItem: connect.NewClient[api.DeleteTemplateItemRequest, api.DeleteTemplateItemResponse](
			httpClient,
			baseURL+TemplateServiceDeleteTemplateItemProcedure,
			opts...,
		),
		saveAsTemplate: connect.NewClient[api.SaveAsTemplateRequest, api.SaveAsTemplateResponse](
			httpClient,
			baseURL+TemplateServiceSaveAsTemplateProcedure,
			opts...,
		),
	}
}

// templateServiceClient implements TemplateServiceClient.
type templateServiceClient struct {
	listTemplates      *connect.Client[api.ListTemplatesRequest, api.ListTemplatesResponse]
	getTemplate        *connect.Client[api.GetTemplateRequest, api.GetTemplateResponse]
	createTemplate     *connect.Client[api.CreateTemplateRequest, api.CreateTemplateResponse]
	updateTemplate     *connect.Client[api.UpdateTemplateRequest, api.UpdateTemplateResponse]
	deleteTemplate     *connect.Client[api.DeleteTemplateRequest, api.DeleteTemplateResponse]
	addTemplateItem    *connect.Client[api.AddTemplateItemRequest, api.AddTemplateItemResponse]
	deleteTemplateItem *connect.Client[api.DeleteTemplateItemRequest, api.DeleteTemplateItemResponse]
	saveAsTemplate     *connect.Client[api.SaveAsTemplateRequest, api.SaveAsTemplateResponse]
}

// ListTemplates calls haleway.v1.TemplateService.ListTemplates.
func (c *templateServiceClient) ListTemplates(ctx context.Context, req *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error) {
	return c.listTemplates.CallUnary(ctx, req)
}

// GetTemplate calls haleway.v1.TemplateService.GetTemplate.
func (c *templateServiceClient) GetTemplate(ctx context.Context, req *connect.Request[api.GetTemplateRequest]) (*connect.Response[api.GetTemplateResponse], error) {
	return c.getTemplate.CallUnary(ctx, req)
}

// CreateTemplate calls haleway.v1.TemplateService.CreateTemplate.
func (c *templateServiceClient) CreateTemplate(ctx context.Context, req *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error) {
	return c.createTemplate.CallUnary(ctx, req)
}

// UpdateTemplate calls haleway.v1.TemplateService.UpdateTemplate.
func (c *templateServiceClient) UpdateTemplate(ctx context.Context, req *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error) {
	return c.updateTemplate.CallUnary(ctx, req)
}

// DeleteTemplate calls haleway.v1.TemplateService.DeleteTemplate.
func (c *templateServiceClient) DeleteTemplate(ctx context.Context, req *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error) {
	return c.deleteTemplate.CallUnary(ctx, req)
}

// AddTemplateItem calls haleway.v1.TemplateService.AddTemplateItem.
func (c *templateServiceClient) AddTemplateItem(ctx context.Context, req *connect.Request[api.AddTemplateItemRequest]) (*connect.Response[api.AddTemplateItemResponse], error) {
	return c.addTemplateItem.CallUnary(ctx, req)
}

// DeleteTemplateItem calls haleway.v1.TemplateService.DeleteTemplateItem.
func (c *templateServiceClient) DeleteTemplateItem(ctx context.Context, req *connect.Request[api.DeleteTemplateItemRequest]) (*connect.Response[api.DeleteTemplateItemResponse], error) {
	return c.deleteTemplateItem.CallUnary(ctx, req)
}

// SaveAsTemplate calls haleway.v1.TemplateService.SaveAsTemplate.
func (c *templateServiceClient) SaveAsTemplate(ctx context.Context, req *connect.Request[api.SaveAsTemplateRequest]) (*connect.Response[api.SaveAsTemplateResponse], error) {
	return c.saveAsTemplate.CallUnary(ctx, req)
}

// TemplateServiceHandler is an implementation of the haleway.v1.TemplateService service.
type TemplateServiceHandler interface {
	ListTemplates(context.Context, *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error)
	GetTemplate(context.Context, *connect.Request[api.GetTemplateRequest]) (*connect.Response[api.GetTemplateResponse], error)
	CreateTemplate(context.Context, *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error)
	UpdateTemplate(context.Context, *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error)
	DeleteTemplate(context.Context, *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error)
	AddTemplateItem(context.Context, *connect.Request[api.AddTemplateItemRequest]) (*connect.Response[api.AddTemplateItemResponse], error)
	DeleteTemplateItem(context.Context, *connect.Request[api.DeleteTemplateItemRequest]) (*connect.Response[api.DeleteTemplateItemResponse], error)
	SaveAsTemplate(context.Context, *connect.Request[api.SaveAsTemplateRequest]) (*connect.Response[api.SaveAsTemplateResponse], error)
}

// NewTemplateServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
// The JSON codec from package api is installed ahead of any caller options.
func NewTemplateServiceHandler(svc TemplateServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	listTemplatesHandler := connect.NewUnaryHandler(
		TemplateServiceListTemplatesProcedure,
		svc.ListTemplates,
		opts...,
	)
	getTemplateHandler := connect.NewUnaryHandler(
		TemplateServiceGetTemplateProcedure,
		svc.GetTemplate,
		opts...,
	)
	createTemplateHandler := connect.NewUnaryHandler(
		TemplateServiceCreateTemplateProcedure,
		svc.CreateTemplate,
		opts...,
	)
	updateTemplateHandler := connect.NewUnaryHandler(
		TemplateServiceUpdateTemplateProcedure,
		svc.UpdateTemplate,
		opts...,
	)
	deleteTemplateHandler := connect.NewUnaryHandler(
		TemplateServiceDeleteTemplateProcedure,
		svc.DeleteTemplate,
		opts...,
	)
	addTemplateItemHandler := connect.NewUnaryHandler(
		TemplateServiceAddTemplateItemProcedure,
		svc.AddTemplateItem,
		opts...,
	)
	deleteTemplateItemHandler := connect.NewUnaryHandler(
		TemplateServiceDeleteTemplateItemProcedure,
		svc.DeleteTemplateItem,
		opts...,
	)
	saveAsTemplateHandler := connect.NewUnaryHandler(
		TemplateServiceSaveAsTemplateProcedure,
		svc.SaveAsTemplate,
		opts...,
	)
	return "/haleway.v1.TemplateService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TemplateServiceListTemplatesProcedure:
			listTemplatesHandler.ServeHTTP(w, r)
		case TemplateServiceGetTemplateProcedure:
			getTemplateHandler.ServeHTTP(w, r)
		case TemplateServiceCreateTemplateProcedure:
			createTemplateHandler.ServeHTTP(w, r)
		case TemplateServiceUpdateTemplateProcedure:
			updateTemplateHandler.ServeHTTP(w, r)
		case TemplateServiceDeleteTemplateProcedure:
			deleteTemplateHandler.ServeHTTP(w, r)
		case TemplateServiceAddTemplateItemProcedure:
			addTemplateItemHandler.ServeHTTP(w, r)
		case TemplateServiceDeleteTemplateItemProcedure:
			deleteTemplateItemHandler.ServeHTTP(w, r)
		case TemplateServiceSaveAsTemplateProcedure:
			saveAsTemplateHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTemplateServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTemplateServiceHandler struct{}

func (UnimplementedTemplateServiceHandler) ListTemplates(context.Context, *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.ListTemplates is not implemented"))
}

func (UnimplementedTemplateServiceHandler) GetTemplate(context.Context, *connect.Request[api.GetTemplateRequest]) (*connect.Response[api.GetTemplateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.GetTemplate is not implemented"))
}

func (UnimplementedTemplateServiceHandler) CreateTemplate(context.Context, *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.CreateTemplate is not implemented"))
}

func (UnimplementedTemplateServiceHandler) UpdateTemplate(context.Context, *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.UpdateTemplate is not implemented"))
}

func (UnimplementedTemplateServiceHandler) DeleteTemplate(context.Context, *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.DeleteTemplate is not implemented"))
}

func (UnimplementedTemplateServiceHandler) AddTemplateItem(context.Context, *connect.Request[api.AddTemplateItemRequest]) (*connect.Response[api.AddTemplateItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.AddTemplateItem is not implemented"))
}

func (UnimplementedTemplateServiceHandler) DeleteTemplateItem(context.Context, *connect.Request[api.DeleteTemplateItemRequest]) (*connect.Response[api.DeleteTemplateItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.DeleteTemplateItem is not implemented"))
}

func (UnimplementedTemplateServiceHandler) SaveAsTemplate(context.Context, *connect.Request[api.SaveAsTemplateRequest]) (*connect.Response[api.SaveAsTemplateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("haleway.v1.TemplateService.SaveAsTemplate is not implemented"))
}

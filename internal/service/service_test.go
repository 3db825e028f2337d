package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/haleway/internal/auth"
	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/metrics"
	"github.com/mmynk/haleway/internal/middleware"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/internal/storage/sqlite"
	"github.com/mmynk/haleway/pkg/api/apiconnect"
)

const trip = "trip-1"

// testServer is a full Connect stack over a temp database.
type testServer struct {
	templates  apiconnect.TemplateServiceClient
	checklists apiconnect.ChecklistServiceClient
	store      *sqlite.SQLiteStore
	metrics    *metrics.Metrics

	// alice is admin of trip, bob a plain member, carol has no trips.
	alice, bob, carol string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	m := metrics.New()
	e := engine.New(store)

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTemplateServiceHandler(NewTemplateService(e), interceptors))
	mux.Handle(apiconnect.NewChecklistServiceHandler(NewChecklistService(e, m), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	token := func(id auth.Identity) string {
		tok, err := jwtManager.Generate(id)
		require.NoError(t, err)
		return tok
	}

	return &testServer{
		templates:  apiconnect.NewTemplateServiceClient(http.DefaultClient, server.URL),
		checklists: apiconnect.NewChecklistServiceClient(http.DefaultClient, server.URL),
		store:      store,
		metrics:    m,
		alice:      token(auth.Identity{UserID: "alice", Email: "alice@example.com", AdminTrips: []string{trip}}),
		bob:        token(auth.Identity{UserID: "bob", Email: "bob@example.com", Trips: []string{trip}}),
		carol:      token(auth.Identity{UserID: "carol", Email: "carol@example.com"}),
	}
}

// request wraps msg with a bearer token.
func request[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func seedBeach(t *testing.T, s *testServer) *models.Template {
	t.Helper()
	tmpl := &models.Template{
		Kind:     models.KindPacking,
		Name:     "Beach",
		IsSystem: true,
		Items: []models.TemplateItem{
			{Item: models.Item{Category: "Clothing", Name: "Swimsuit", Quantity: models.Count(2), Order: 1}},
			{Item: models.Item{Category: "Beach Gear", Name: "Towel", Quantity: models.Count(2), Order: 1}},
			{Item: models.Item{Category: "Clothing", Name: "Hat", Quantity: models.Count(1), Order: 2}},
		},
	}
	require.NoError(t, s.store.CreateTemplate(context.Background(), tmpl))
	return tmpl
}

func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

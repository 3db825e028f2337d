package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/internal/storage"
	"github.com/mmynk/haleway/internal/storage/sqlite"
)

func setupStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDefaults(t *testing.T) {
	doc, err := Defaults()
	require.NoError(t, err)

	var names []string
	for _, d := range doc.Templates {
		names = append(names, d.Kind+"/"+d.Name)
	}
	want := []string{
		"packing/Beach",
		"packing/Mountains",
		"packing/Winter",
		"grocery/Beach Trip Groceries",
		"grocery/Road Trip Groceries",
		"grocery/Camping Groceries",
		"grocery/International Travel Groceries",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("default templates mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	t.Run("orders continue per category", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			// comments and trailing commas are fine
			"templates": [{
				"kind": "packing",
				"name": "Test",
				"items": [
					{"category": "A", "name": "one"},
					{"category": "B", "name": "two", "quantity": "3"},
					{"category": "A", "name": "three", "order": 7},
					{"category": "A", "name": "four"},
				],
			}],
		}`))
		require.NoError(t, err)

		tmpl, err := doc.Templates[0].Template()
		require.NoError(t, err)
		assert.True(t, tmpl.IsSystem)

		type row struct {
			Name  string
			Qty   models.Quantity
			Order int
		}
		var got []row
		for _, item := range tmpl.Items {
			got = append(got, row{item.Name, item.Quantity, item.Order})
		}
		want := []row{
			{"one", models.Count(1), 1},
			{"two", models.Count(3), 1},
			{"three", models.Count(1), 7},
			{"four", models.Count(1), 8},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	errorCases := []struct {
		name string
		data string
	}{
		{"not hujson", `{"templates": [`},
		{"unknown kind", `{"templates": [{"kind": "camping", "name": "X", "items": []}]}`},
		{"missing name", `{"templates": [{"kind": "grocery", "items": []}]}`},
		{"bad packing quantity", `{"templates": [{"kind": "packing", "name": "X", "items": [{"category": "A", "name": "b", "quantity": "two"}]}]}`},
		{"missing category", `{"templates": [{"kind": "grocery", "name": "X", "items": [{"name": "Milk"}]}]}`},
		{"duplicate", `{"templates": [{"kind": "grocery", "name": "X", "items": []}, {"kind": "grocery", "name": "X", "items": []}]}`},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	doc, err := Defaults()
	require.NoError(t, err)

	first, err := Seed(ctx, store, doc)
	require.NoError(t, err)
	assert.Len(t, first.Created, len(doc.Templates))
	assert.Empty(t, first.Skipped)

	second, err := Seed(ctx, store, doc)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Len(t, second.Skipped, len(doc.Templates))

	all, err := store.ListTemplates(ctx, storage.TemplateFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(doc.Templates))

	beach, err := store.FindSystemTemplate(ctx, models.KindGrocery, "Beach Trip Groceries")
	require.NoError(t, err)
	assert.Len(t, beach.Items, 33)
	assert.Equal(t, models.Amount("2 cases"), beach.Items[0].Quantity)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.hujson")
	require.NoError(t, os.WriteFile(path, []byte(`{"templates": [{"kind": "grocery", "name": "Picnic", "items": [{"category": "Food", "name": "Grapes"}]}]}`), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Templates, 1)
	assert.Equal(t, "Picnic", doc.Templates[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hujson"))
	require.Error(t, err)
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	e := engine.New(store)

	tmpl, err := e.CreateTemplate(ctx, "alice", engine.TemplateInput{Kind: models.KindPacking, Name: "Weekend"})
	require.NoError(t, err)
	for _, in := range []engine.ItemInput{
		{Category: "Clothing", Name: "Socks", Quantity: "3"},
		{Category: "Toiletries", Name: "Toothbrush", Notes: "travel size"},
	} {
		_, err := e.AddTemplateItem(ctx, tmpl.ID, "alice", in)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "export.hujson")
	n, err := Export(ctx, e, "alice", models.KindPacking, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	doc, err := Load(path)
	require.NoError(t, err)
	want := &Document{Templates: []TemplateDoc{{
		Kind: "packing",
		Name: "Weekend",
		Items: []ItemDoc{
			{Category: "Clothing", Name: "Socks", Quantity: "3", Order: 1},
			{Category: "Toiletries", Name: "Toothbrush", Quantity: "1", Notes: "travel size", Order: 1},
		},
	}}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("exported document mismatch (-want +got):\n%s", diff)
	}

	// Seeding the export elsewhere turns it into a system template.
	other := setupStore(t)
	res, err := Seed(ctx, other, doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"packing/Weekend"}, res.Created)
}

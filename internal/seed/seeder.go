package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/storage"
)

// Result lists what a Seed run did, as "kind/name" keys.
type Result struct {
	Created []string
	Skipped []string
}

// Seed creates every template of doc as a system template unless a system
// template of the same kind and name already exists. Running it twice is a
// no-op the second time.
func Seed(ctx context.Context, store storage.TemplateStore, doc *Document) (*Result, error) {
	res := &Result{}
	for _, d := range doc.Templates {
		t, err := d.Template()
		if err != nil {
			return res, fmt.Errorf("template %q: %w", d.Name, err)
		}
		key := string(t.Kind) + "/" + t.Name

		_, err = store.FindSystemTemplate(ctx, t.Kind, t.Name)
		switch {
		case err == nil:
			res.Skipped = append(res.Skipped, key)
			continue
		case !errs.IsNotFound(err):
			return res, err
		}

		if err := store.CreateTemplate(ctx, t); err != nil {
			return res, fmt.Errorf("creating %s: %w", key, err)
		}
		res.Created = append(res.Created, key)
		slog.Info("System template created", "template_id", t.ID, "kind", t.Kind, "name", t.Name, "items_count", len(t.Items))
	}

	slog.Info("Seeding complete", "created", len(res.Created), "skipped", len(res.Skipped))
	return res, nil
}

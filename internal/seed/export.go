package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/models"
)

const filePerms = 0o644

// Export writes the templates visible to userID as a seed document at path.
// An empty kind exports both kinds. The file is replaced atomically, so a
// reader never sees a partial document. It returns the number of templates
// written.
func Export(ctx context.Context, e *engine.Engine, userID string, kind models.Kind, path string) (int, error) {
	templates, err := e.ListTemplates(ctx, userID, kind)
	if err != nil {
		return 0, err
	}

	doc := Document{Templates: make([]TemplateDoc, len(templates))}
	for i, t := range templates {
		doc.Templates[i] = docFor(t)
	}

	data, err := Marshal(&doc)
	if err != nil {
		return 0, err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	// atomic.WriteFile doesn't set permissions for new files
	if err := os.Chmod(path, filePerms); err != nil {
		return 0, fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return len(templates), nil
}

// Marshal encodes doc as formatted HuJSON that Parse accepts.
func Marshal(doc *Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding seed document: %w", err)
	}
	v, err := hujson.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding seed document: %w", err)
	}
	v.Format()
	return v.Pack(), nil
}

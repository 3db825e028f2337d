// Package seed bootstraps the system templates and exports templates as seed
// documents.
//
// Seed documents are HuJSON (JSON with comments and trailing commas):
//
//	{
//		"templates": [
//			{
//				"kind": "packing",
//				"name": "Beach",
//				"items": [
//					{"category": "Clothing", "name": "Swimsuit", "quantity": "2"},
//				],
//			},
//		],
//	}
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/mmynk/haleway/internal/calculator"
	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

//go:embed defaults.hujson
var defaults []byte

// Document is a set of templates.
type Document struct {
	Templates []TemplateDoc `json:"templates"`
}

// TemplateDoc is one template of a Document.
type TemplateDoc struct {
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Items       []ItemDoc `json:"items"`
}

// ItemDoc is one template item. Quantity is raw text, decoded by the
// template's kind. An Order of 0 continues after the category's last item.
type ItemDoc struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Order    int    `json:"order,omitempty"`
}

// Defaults returns the embedded system templates.
func Defaults() (*Document, error) {
	return Parse(defaults)
}

// Load reads the seed document at path, or the embedded defaults when path is
// empty.
func Load(path string) (*Document, error) {
	if path == "" {
		return Defaults()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a HuJSON seed document and validates every template.
func Parse(data []byte) (*Document, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid HuJSON: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(standardized, &doc); err != nil {
		return nil, fmt.Errorf("invalid seed document: %w", err)
	}

	seen := make(map[string]bool)
	for i, t := range doc.Templates {
		if _, err := t.Template(); err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, t.Name, err)
		}
		key := t.Kind + "/" + t.Name
		if seen[key] {
			return nil, fmt.Errorf("template %d: %w", i, errs.Invalid("name", "duplicate template", key))
		}
		seen[key] = true
	}
	return &doc, nil
}

// Template converts the document form into a system template with its items
// in document order.
func (d TemplateDoc) Template() (*models.Template, error) {
	kind, err := models.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		return nil, errs.Invalid("name", "is required")
	}

	t := &models.Template{
		Kind:        kind,
		Name:        d.Name,
		Description: d.Description,
		IsSystem:    true,
		Items:       make([]models.TemplateItem, 0, len(d.Items)),
	}
	for _, doc := range d.Items {
		q, err := models.ParseQuantity(kind, doc.Quantity)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", doc.Name, err)
		}
		item := models.Item{
			Category: doc.Category,
			Name:     doc.Name,
			Quantity: q,
			Notes:    doc.Notes,
			Order:    doc.Order,
		}
		if item.Order == 0 {
			item.Order = calculator.NextOrder(t.Items, item.Category)
		}
		if err := item.Validate(kind); err != nil {
			return nil, fmt.Errorf("item %q: %w", doc.Name, err)
		}
		t.Items = append(t.Items, models.TemplateItem{Item: item})
	}
	return t, nil
}

// docFor is the inverse of TemplateDoc.Template.
func docFor(t *models.Template) TemplateDoc {
	d := TemplateDoc{
		Kind:        string(t.Kind),
		Name:        t.Name,
		Description: t.Description,
		Items:       make([]ItemDoc, len(t.Items)),
	}
	for i, item := range t.Items {
		d.Items[i] = ItemDoc{
			Category: item.Category,
			Name:     item.Name,
			Quantity: item.Quantity.String(),
			Notes:    item.Notes,
			Order:    item.Order,
		}
	}
	return d
}

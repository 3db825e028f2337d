package models

// Template is a reusable checklist blueprint.
//
// System templates are created by seeding only and are immutable: no caller
// may edit or delete them or their items.
type Template struct {
	// ID is the unique identifier for the template (UUID format).
	ID string

	// Kind says whether this is a packing or a grocery template.
	Kind Kind

	// Name is the display name (e.g. "Beach", "Road Trip Groceries").
	Name string

	// Description is optional.
	Description string

	// IsSystem marks seeded, read-only templates.
	IsSystem bool

	// OwnerID is the user who owns the template; empty for system templates.
	OwnerID string

	// CreatedAt is the Unix timestamp when the template was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last metadata change.
	UpdatedAt int64

	// Items are the template's items in stored order.
	Items []TemplateItem
}

// VisibleTo reports whether userID may read the template.
func (t *Template) VisibleTo(userID string) bool {
	return t.IsSystem || (userID != "" && t.OwnerID == userID)
}

// TemplateItem is a stateless item blueprint owned by one Template.
type TemplateItem struct {
	ID         string
	TemplateID string
	Item
}

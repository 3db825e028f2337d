package models

// Checklist is a trip-scoped packing or grocery list.
//
// A trip has at most one packing checklist but any number of grocery
// checklists.
type Checklist struct {
	// ID is the unique identifier for the checklist (UUID format).
	ID string

	// Kind says whether this is a packing or a grocery list.
	Kind Kind

	// TripID references the owning trip in the trips service.
	TripID string

	// Name is the display name (e.g. "Kids' List", "Week 1 Groceries").
	Name string

	// BasedOnTemplateID records the template this list was created from.
	// It is informational only; the template may since have been deleted.
	BasedOnTemplateID string

	// AssignedTo is the user responsible for the list, if any.
	AssignedTo string

	// ShoppingDate (YYYY-MM-DD) and StoreName only apply to grocery lists.
	ShoppingDate string
	StoreName    string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64

	// Items are the checklist's items in stored order.
	Items []ChecklistItem
}

// ChecklistItem is a stateful item owned by one Checklist.
type ChecklistItem struct {
	ID          string
	ChecklistID string
	Item

	// IsDone is the packed (packing) or purchased (grocery) flag.
	IsDone bool

	CreatedAt int64
	UpdatedAt int64
}

func (i ChecklistItem) Done() bool { return i.IsDone }

// ChecklistFields are the editable metadata fields of a checklist.
type ChecklistFields struct {
	Name         string
	AssignedTo   string
	ShoppingDate string
	StoreName    string
}

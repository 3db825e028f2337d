package api

// Item is a template or checklist item. IsDone is always false for template
// items.
type Item struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
	Order    int    `json:"order"`
	IsDone   bool   `json:"is_done"`
}

// CategoryGroup is one category of a list with its items in display order.
type CategoryGroup struct {
	Category string  `json:"category"`
	Items    []*Item `json:"items"`
	Done     int     `json:"done"`
	Total    int     `json:"total"`
}

// Progress is the aggregate done/total state of a checklist.
type Progress struct {
	DoneCount  int `json:"done_count"`
	TotalCount int `json:"total_count"`
	Percentage int `json:"percentage"`
}

// Template is a reusable list blueprint.
type Template struct {
	ID          string           `json:"id"`
	Kind        string           `json:"kind"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	IsSystem    bool             `json:"is_system"`
	OwnerID     string           `json:"owner_id,omitempty"`
	CreatedAt   int64            `json:"created_at"`
	UpdatedAt   int64            `json:"updated_at"`
	ItemCount   int              `json:"item_count"`
	Categories  []*CategoryGroup `json:"categories,omitempty"`
}

// Checklist is a trip's packing or grocery list.
type Checklist struct {
	ID                string           `json:"id"`
	Kind              string           `json:"kind"`
	TripID            string           `json:"trip_id"`
	Name              string           `json:"name"`
	BasedOnTemplateID string           `json:"based_on_template_id,omitempty"`
	AssignedTo        string           `json:"assigned_to,omitempty"`
	ShoppingDate      string           `json:"shopping_date,omitempty"`
	StoreName         string           `json:"store_name,omitempty"`
	CreatedAt         int64            `json:"created_at"`
	UpdatedAt         int64            `json:"updated_at"`
	Progress          *Progress        `json:"progress"`
	Categories        []*CategoryGroup `json:"categories,omitempty"`
}

// TemplateService messages.

type ListTemplatesRequest struct {
	Kind string `json:"kind,omitempty"`
}

type ListTemplatesResponse struct {
	Templates []*Template `json:"templates"`
}

type GetTemplateRequest struct {
	TemplateID string `json:"template_id"`
}

type GetTemplateResponse struct {
	Template *Template `json:"template"`
}

type CreateTemplateRequest struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateTemplateResponse struct {
	Template *Template `json:"template"`
}

type UpdateTemplateRequest struct {
	TemplateID  string `json:"template_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateTemplateResponse struct {
	Template *Template `json:"template"`
}

type DeleteTemplateRequest struct {
	TemplateID string `json:"template_id"`
}

type DeleteTemplateResponse struct{}

type AddTemplateItemRequest struct {
	TemplateID string `json:"template_id"`
	Category   string `json:"category"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Order      *int   `json:"order,omitempty"`
}

type AddTemplateItemResponse struct {
	Item *Item `json:"item"`
}

type DeleteTemplateItemRequest struct {
	ItemID string `json:"item_id"`
}

type DeleteTemplateItemResponse struct{}

type SaveAsTemplateRequest struct {
	ChecklistID string `json:"checklist_id"`

	// Name defaults to "<list name> Template".
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type SaveAsTemplateResponse struct {
	Template *Template `json:"template"`
}

// ChecklistService messages.

type CreateChecklistRequest struct {
	TripID string `json:"trip_id"`
	Kind   string `json:"kind,omitempty"`

	// TemplateID, when set, copies the template's items into the new list.
	TemplateID string `json:"template_id,omitempty"`

	Name         string `json:"name,omitempty"`
	AssignedTo   string `json:"assigned_to,omitempty"`
	ShoppingDate string `json:"shopping_date,omitempty"`
	StoreName    string `json:"store_name,omitempty"`
}

type CreateChecklistResponse struct {
	Checklist *Checklist `json:"checklist"`
}

type GetChecklistRequest struct {
	ChecklistID string `json:"checklist_id"`
}

type GetChecklistResponse struct {
	Checklist *Checklist `json:"checklist"`
}

type ListChecklistsRequest struct {
	TripID string `json:"trip_id"`
	Kind   string `json:"kind,omitempty"`
}

type ListChecklistsResponse struct {
	Checklists []*Checklist `json:"checklists"`
}

type UpdateChecklistRequest struct {
	ChecklistID  string `json:"checklist_id"`
	Name         string `json:"name"`
	AssignedTo   string `json:"assigned_to,omitempty"`
	ShoppingDate string `json:"shopping_date,omitempty"`
	StoreName    string `json:"store_name,omitempty"`
}

type UpdateChecklistResponse struct {
	Checklist *Checklist `json:"checklist"`
}

type DeleteChecklistRequest struct {
	ChecklistID string `json:"checklist_id"`
}

type DeleteChecklistResponse struct{}

type AddItemRequest struct {
	ChecklistID string `json:"checklist_id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Quantity    string `json:"quantity,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Order       *int   `json:"order,omitempty"`
}

type AddItemResponse struct {
	Item     *Item     `json:"item"`
	Progress *Progress `json:"progress"`
}

type EditItemRequest struct {
	ItemID   string `json:"item_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Notes    string `json:"notes,omitempty"`

	// Order keeps the current value when omitted.
	Order *int `json:"order,omitempty"`
}

type EditItemResponse struct {
	Item     *Item     `json:"item"`
	Progress *Progress `json:"progress"`
}

type DeleteItemRequest struct {
	ItemID string `json:"item_id"`
}

type DeleteItemResponse struct {
	Progress *Progress `json:"progress"`
}

type ToggleItemRequest struct {
	ItemID string `json:"item_id"`
}

// ToggleItemResponse is flat so that list views can update a single row and
// the header counts from one payload.
type ToggleItemResponse struct {
	ItemID     string `json:"item_id"`
	IsDone     bool   `json:"is_done"`
	DoneCount  int    `json:"done_count"`
	TotalCount int    `json:"total_count"`
	Percentage int    `json:"percentage"`
}

type BulkAddItemsRequest struct {
	ChecklistID string `json:"checklist_id"`

	// Category is required for packing lists and defaults to "Groceries"
	// for grocery lists.
	Category string `json:"category,omitempty"`

	// Items is "Sunscreen, Hat-2" for packing lists and
	// "Bananas | 2 lbs, Milk" (commas or newlines) for grocery lists.
	Items string `json:"items"`
}

type BulkAddItemsResponse struct {
	ItemsAdded int       `json:"items_added"`
	Items      []*Item   `json:"items"`
	Progress   *Progress `json:"progress"`
}

type AddOutfitRequest struct {
	ChecklistID string `json:"checklist_id"`
	Category    string `json:"category"`
	NumOutfits  int    `json:"num_outfits"`
}

type AddOutfitResponse struct {
	Items    []*Item   `json:"items"`
	Progress *Progress `json:"progress"`
}

type RenameCategoryRequest struct {
	ChecklistID string `json:"checklist_id"`
	OldCategory string `json:"old_category"`
	NewCategory string `json:"new_category"`
}

type RenameCategoryResponse struct {
	ItemsUpdated int       `json:"items_updated"`
	Progress     *Progress `json:"progress"`
}

type CategorySuggestionsRequest struct {
	ChecklistID string `json:"checklist_id"`
}

type CategorySuggestionsResponse struct {
	Categories []string `json:"categories"`
}

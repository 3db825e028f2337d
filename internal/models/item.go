package models

import (
	"fmt"
	"strings"

	"github.com/mmynk/haleway/internal/errs"
)

// Item holds the fields shared by template items and checklist items.
type Item struct {
	// Category is free text (e.g. "Clothing", "Produce").
	Category string

	// Name is the item name (e.g. "Sunscreen").
	Name string

	// Quantity is a Count for packing lists and an Amount for grocery lists.
	Quantity Quantity

	// Notes is an optional free-text annotation.
	Notes string

	// Order sorts items within their category; ties break on Name.
	Order int
}

func (i Item) GetCategory() string { return i.Category }
func (i Item) GetName() string     { return i.Name }
func (i Item) GetOrder() int       { return i.Order }

// CommonCategories are suggested to users in addition to the categories a list
// already uses.
func CommonCategories(k Kind) []string {
	if k == KindGrocery {
		return []string{
			"Produce",
			"Dairy",
			"Meat",
			"Snacks",
			"Beverages",
			"Breakfast",
			"Lunch/Dinner",
			"Household",
			"Health",
			"Frozen",
		}
	}
	return []string{
		"Clothing",
		"Electronics",
		"Toiletries",
		"Documents",
		"Medications",
		"Beach Gear",
		"Outdoor Gear",
		"Sports Equipment",
		"Entertainment",
		"Food & Snacks",
	}
}

// DefaultGroceryCategory is used for grocery bulk adds without a category.
const DefaultGroceryCategory = "Groceries"

// Field limits, matching the column sizes the web forms enforce.
const (
	MaxCategoryLen = 100
	MaxNameLen     = 200
	MaxAmountLen   = 100
)

// Validate checks an item before it is persisted into a list of kind k.
func (i Item) Validate(k Kind) error {
	if strings.TrimSpace(i.Category) == "" {
		return errs.Invalid("category", "is required")
	}
	if len(i.Category) > MaxCategoryLen {
		return errs.Invalid("category", fmt.Sprintf("must be at most %d characters", MaxCategoryLen), i.Category)
	}
	if strings.TrimSpace(i.Name) == "" {
		return errs.Invalid("name", "is required")
	}
	if len(i.Name) > MaxNameLen {
		return errs.Invalid("name", fmt.Sprintf("must be at most %d characters", MaxNameLen), i.Name)
	}
	if err := CheckQuantity(k, i.Quantity); err != nil {
		return err
	}
	if a, ok := i.Quantity.(Amount); ok && len(a) > MaxAmountLen {
		return errs.Invalid("quantity", fmt.Sprintf("must be at most %d characters", MaxAmountLen), string(a))
	}
	if i.Order < 0 {
		return errs.Invalid("order", "must not be negative")
	}
	return nil
}

package calculator

import (
	"fmt"
	"strings"

	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

// Outfit count bounds accepted by CalculateOutfit.
const (
	MinOutfits = 1
	MaxOutfits = 30
)

// CalculateOutfit derives clothing items for n outfits, filed under category.
// The category is only a label; the formula ignores it:
//
//	Shirts    = n
//	Pants     = max(3, n/2)  "Mix and match"
//	Underwear = n
//	Socks     = n
//	Pajamas   = 2
//
// Returned items have Order 0; the caller appends them after the category's
// existing items.
func CalculateOutfit(category string, n int) ([]models.Item, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errs.Invalid("category", "is required")
	}
	if n < MinOutfits || n > MaxOutfits {
		return nil, errs.Invalid("num_outfits",
			fmt.Sprintf("must be between %d and %d", MinOutfits, MaxOutfits),
			fmt.Sprint(n))
	}

	return []models.Item{
		{Category: category, Name: "Shirts", Quantity: models.Count(n)},
		{Category: category, Name: "Pants", Quantity: models.Count(max(3, n/2)), Notes: "Mix and match"},
		{Category: category, Name: "Underwear", Quantity: models.Count(n)},
		{Category: category, Name: "Socks", Quantity: models.Count(n)},
		{Category: category, Name: "Pajamas", Quantity: models.Count(2)},
	}, nil
}

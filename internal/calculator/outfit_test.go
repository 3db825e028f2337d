package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

func TestCalculateOutfit(t *testing.T) {
	got, err := CalculateOutfit("Norah's Clothes", 5)
	if err != nil {
		t.Fatalf("CalculateOutfit() error = %v", err)
	}

	want := []models.Item{
		{Category: "Norah's Clothes", Name: "Shirts", Quantity: models.Count(5)},
		{Category: "Norah's Clothes", Name: "Pants", Quantity: models.Count(3), Notes: "Mix and match"},
		{Category: "Norah's Clothes", Name: "Underwear", Quantity: models.Count(5)},
		{Category: "Norah's Clothes", Name: "Socks", Quantity: models.Count(5)},
		{Category: "Norah's Clothes", Name: "Pajamas", Quantity: models.Count(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CalculateOutfit() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateOutfitPants(t *testing.T) {
	for n := MinOutfits; n <= MaxOutfits; n++ {
		items, err := CalculateOutfit("Clothing", n)
		if err != nil {
			t.Fatalf("CalculateOutfit(%d) error = %v", n, err)
		}
		pants := items[1].Quantity.(models.Count)
		if int(pants) != max(3, n/2) {
			t.Errorf("n=%d: pants = %d, want %d", n, pants, max(3, n/2))
		}
		if n <= 5 && pants != 3 {
			t.Errorf("n=%d: pants = %d, want 3", n, pants)
		}
		if items[4].Quantity != models.Count(2) {
			t.Errorf("n=%d: pajamas = %v, want 2", n, items[4].Quantity)
		}
	}

	items, _ := CalculateOutfit("Clothing", 10)
	if items[1].Quantity != models.Count(5) {
		t.Errorf("n=10: pants = %v, want 5", items[1].Quantity)
	}
}

func TestCalculateOutfitValidation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		n        int
	}{
		{"zero outfits", "Clothing", 0},
		{"too many outfits", "Clothing", 31},
		{"negative outfits", "Clothing", -4},
		{"blank category", "  ", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateOutfit(tt.category, tt.n)
			if !errs.IsValidation(err) {
				t.Errorf("CalculateOutfit(%q, %d) error = %v, want ValidationError", tt.category, tt.n, err)
			}
		})
	}
}

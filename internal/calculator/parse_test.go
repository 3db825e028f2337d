package calculator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

func TestParseSuffix(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []ParsedItem
		wantBad []string
	}{
		{
			name: "mixed quantities",
			raw:  "Sunscreen, Hat-2, Sunglasses-3",
			want: []ParsedItem{
				{Name: "Sunscreen", Quantity: models.Count(1)},
				{Name: "Hat", Quantity: models.Count(2)},
				{Name: "Sunglasses", Quantity: models.Count(3)},
			},
		},
		{
			name: "hyphenated name keeps hyphens",
			raw:  "Sun-dried-tomatoes-2, T-shirt",
			want: []ParsedItem{
				{Name: "Sun-dried-tomatoes", Quantity: models.Count(2)},
				{Name: "T-shirt", Quantity: models.Count(1)},
			},
		},
		{
			name: "blank tokens are skipped",
			raw:  " , Towel,,  ,Book-1 ,",
			want: []ParsedItem{
				{Name: "Towel", Quantity: models.Count(1)},
				{Name: "Book", Quantity: models.Count(1)},
			},
		},
		{
			name: "duplicates are kept",
			raw:  "Socks, Socks-2",
			want: []ParsedItem{
				{Name: "Socks", Quantity: models.Count(1)},
				{Name: "Socks", Quantity: models.Count(2)},
			},
		},
		{
			name: "newlines are not separators",
			raw:  "Hat\nScarf-2",
			want: []ParsedItem{
				{Name: "Hat\nScarf", Quantity: models.Count(2)},
			},
		},
		{
			name: "trailing hyphen without digits is part of the name",
			raw:  "Odd-",
			want: []ParsedItem{{Name: "Odd-", Quantity: models.Count(1)}},
		},
		{
			name:    "zero quantity",
			raw:     "Hat-0, Towel",
			wantBad: []string{"Hat-0"},
		},
		{
			name:    "negative quantity",
			raw:     "Hat--2",
			wantBad: []string{"Hat--2"},
		},
		{
			name:    "every bad token is reported",
			raw:     "Hat-0, Towel, -3, Cap--1",
			wantBad: []string{"Hat-0", "-3", "Cap--1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw, DialectSuffix)
			if tt.wantBad != nil {
				var verr *errs.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Parse() error = %v, want ValidationError", err)
				}
				if diff := cmp.Diff(tt.wantBad, verr.Tokens); diff != "" {
					t.Errorf("offending tokens mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePipe(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []ParsedItem
		wantErr bool
	}{
		{
			name: "inline quantities",
			raw:  "Bananas | 2 lbs, Milk, Chips | ",
			want: []ParsedItem{
				{Name: "Bananas", Quantity: models.Amount("2 lbs")},
				{Name: "Milk", Quantity: models.Amount("")},
				{Name: "Chips", Quantity: models.Amount("")},
			},
		},
		{
			name: "one per line",
			raw:  "Bananas\r\nMilk | 1 gallon\n\nChips",
			want: []ParsedItem{
				{Name: "Bananas", Quantity: models.Amount("")},
				{Name: "Milk", Quantity: models.Amount("1 gallon")},
				{Name: "Chips", Quantity: models.Amount("")},
			},
		},
		{
			name: "only the first pipe splits",
			raw:  "Soda | 2 | 12 pack",
			want: []ParsedItem{{Name: "Soda", Quantity: models.Amount("2 | 12 pack")}},
		},
		{
			name: "hyphens are literal",
			raw:  "Hat-2",
			want: []ParsedItem{{Name: "Hat-2", Quantity: models.Amount("")}},
		},
		{
			name: "nameless token is skipped",
			raw:  "Milk, | 2 lbs",
			want: []ParsedItem{{Name: "Milk", Quantity: models.Amount("")}},
		},
		{
			name: "nameless line between items",
			raw:  "Milk\n| 2 cans, Eggs",
			want: []ParsedItem{
				{Name: "Milk", Quantity: models.Amount("")},
				{Name: "Eggs", Quantity: models.Amount("")},
			},
		},
		{
			name:    "only nameless tokens",
			raw:     "| 2 lbs\n |",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw, DialectPipe)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errs.IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSuffixQuantityTooLarge(t *testing.T) {
	_, err := Parse("Towel, Hat-99999999999999999999", DialectSuffix)
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Parse() error = %v, want ValidationError", err)
	}
	if verr.Message != "quantity is too large" {
		t.Errorf("Message = %q, want %q", verr.Message, "quantity is too large")
	}
	if diff := cmp.Diff([]string{"Hat-99999999999999999999"}, verr.Tokens); diff != "" {
		t.Errorf("offending tokens mismatch (-want +got):\n%s", diff)
	}

	_, err = Parse("Hat-0", DialectSuffix)
	if !errors.As(err, &verr) || verr.Message != "quantity must be at least 1" {
		t.Errorf("Parse(Hat-0) error = %v, want quantity must be at least 1", err)
	}
}

func TestParseRequiresAnItem(t *testing.T) {
	for _, d := range []Dialect{DialectSuffix, DialectPipe} {
		for _, raw := range []string{"", "   ", ", ,", "\n,\n"} {
			_, err := Parse(raw, d)
			if !errs.IsValidation(err) {
				t.Errorf("Parse(%q, %s) error = %v, want ValidationError", raw, d, err)
			}
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := map[Dialect][]string{
		DialectSuffix: {
			"Sunscreen, Hat-2, Sunglasses-3",
			"  Route-66 ,Sun-dried-tomatoes-2,,Towel-10",
			"Socks,Socks,Socks-4",
		},
		DialectPipe: {
			"Bananas | 2 lbs, Milk, Chips | ",
			"Bananas\nMilk|1 gallon\n\n , Soda | 2 | 12 pack",
		},
	}

	for d, raws := range inputs {
		for _, raw := range raws {
			first, err := Parse(raw, d)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", raw, err)
			}
			second, err := Parse(Format(first, d), d)
			if err != nil {
				t.Fatalf("Parse(Format(%q)) error = %v", raw, err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip of %q changed items (-first +second):\n%s", raw, diff)
			}
		}
	}
}

func TestDialectFor(t *testing.T) {
	if DialectFor(models.KindPacking) != DialectSuffix {
		t.Error("packing lists should use the suffix dialect")
	}
	if DialectFor(models.KindGrocery) != DialectPipe {
		t.Error("grocery lists should use the pipe dialect")
	}
}

package models

import (
	"strconv"
	"strings"

	"github.com/mmynk/haleway/internal/errs"
)

// Kind distinguishes packing lists from grocery lists.
type Kind string

const (
	KindPacking Kind = "packing"
	KindGrocery Kind = "grocery"
)

// ParseKind validates a kind name coming from a caller or a seed document.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindPacking:
		return KindPacking, nil
	case KindGrocery:
		return KindGrocery, nil
	default:
		return "", errs.Invalid("kind", "must be \"packing\" or \"grocery\"", s)
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindPacking || k == KindGrocery
}

// DoneLabel is the word used for a completed item of this kind.
func (k Kind) DoneLabel() string {
	if k == KindGrocery {
		return "purchased"
	}
	return "packed"
}

// Quantity is the per-kind quantity of an item: Count for packing lists,
// Amount for grocery lists.
type Quantity interface {
	Kind() Kind
	String() string
}

// Count is a packing quantity. Valid counts are >= 1.
type Count int

func (Count) Kind() Kind       { return KindPacking }
func (c Count) String() string { return strconv.Itoa(int(c)) }

// Amount is a free-text grocery quantity; empty means unspecified.
type Amount string

func (Amount) Kind() Kind       { return KindGrocery }
func (a Amount) String() string { return string(a) }

// DefaultQuantity returns the quantity an item of kind k gets when none is given.
func DefaultQuantity(k Kind) Quantity {
	if k == KindGrocery {
		return Amount("")
	}
	return Count(1)
}

// ParseQuantity converts the stored/wire text form into the quantity variant
// for kind k. An empty string yields the kind's default.
func ParseQuantity(k Kind, raw string) (Quantity, error) {
	raw = strings.TrimSpace(raw)
	switch k {
	case KindGrocery:
		return Amount(raw), nil
	case KindPacking:
		if raw == "" {
			return Count(1), nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errs.Invalid("quantity", "must be a whole number", raw)
		}
		if n < 1 {
			return nil, errs.Invalid("quantity", "must be at least 1", raw)
		}
		return Count(n), nil
	default:
		return nil, errs.Invalid("kind", "unknown list kind", string(k))
	}
}

// CheckQuantity verifies q belongs to kind k and is in range.
func CheckQuantity(k Kind, q Quantity) error {
	if q == nil {
		return errs.Invalid("quantity", "is required")
	}
	if q.Kind() != k {
		return errs.Invalid("quantity", "does not match list kind "+string(k), q.String())
	}
	if c, ok := q.(Count); ok && c < 1 {
		return errs.Invalid("quantity", "must be at least 1", c.String())
	}
	return nil
}

package calculator

import (
	"strconv"
	"strings"

	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/models"
)

// Dialect selects the bulk-add syntax.
type Dialect int

const (
	// DialectSuffix splits on commas; a trailing "-N" sets an integer quantity.
	// "Sunscreen, Hat-2, Sun-dried-tomatoes-2"
	DialectSuffix Dialect = iota

	// DialectPipe splits on newlines and commas; "name | quantity" sets a
	// free-text quantity.
	// "Bananas | 2 lbs, Milk"
	DialectPipe
)

// DialectFor returns the bulk-add syntax used by lists of kind k.
func DialectFor(k models.Kind) Dialect {
	if k == models.KindGrocery {
		return DialectPipe
	}
	return DialectSuffix
}

func (d Dialect) String() string {
	if d == DialectPipe {
		return "pipe"
	}
	return "suffix"
}

// ParsedItem is one entry of a bulk-add blob.
type ParsedItem struct {
	Name     string
	Quantity models.Quantity
}

// Parse splits raw bulk-add text into items, preserving encounter order.
// Repeated names are kept as repeated items. Blank tokens, and pipe tokens
// with nothing before the "|", are skipped; if no
// item remains, or any token is malformed, a ValidationError is returned that
// lists every offending token.
func Parse(raw string, d Dialect) ([]ParsedItem, error) {
	var (
		items []ParsedItem
		bad   []string
		msg   string
	)

	for _, tok := range tokens(raw, d) {
		var (
			item ParsedItem
			err  string
		)
		if d == DialectPipe {
			var ok bool
			if item, ok = parsePipe(tok); !ok {
				continue
			}
		} else {
			item, err = parseSuffix(tok)
		}
		if err != "" {
			if msg == "" {
				msg = err
			}
			bad = append(bad, tok)
			continue
		}
		items = append(items, item)
	}

	if len(bad) > 0 {
		return nil, &errs.ValidationError{Field: "items", Message: msg, Tokens: bad}
	}
	if len(items) == 0 {
		return nil, errs.Invalid("items", "at least one item required")
	}
	return items, nil
}

// Format is the inverse of Parse: Parse(Format(items, d), d) yields items
// again. Packing quantities are always written out so that names which happen
// to end in "-<digits>" survive the round trip.
func Format(items []ParsedItem, d Dialect) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		q := ""
		if item.Quantity != nil {
			q = item.Quantity.String()
		}
		switch {
		case d == DialectSuffix:
			if q == "" {
				q = "1"
			}
			parts = append(parts, item.Name+"-"+q)
		case q == "":
			parts = append(parts, item.Name)
		default:
			parts = append(parts, item.Name+" | "+q)
		}
	}
	if d == DialectPipe {
		return strings.Join(parts, "\n")
	}
	return strings.Join(parts, ", ")
}

// tokens returns the trimmed, non-empty candidate tokens of raw.
func tokens(raw string, d Dialect) []string {
	var lines []string
	if d == DialectPipe {
		lines = strings.Split(raw, "\n")
	} else {
		lines = []string{raw}
	}

	var out []string
	for _, line := range lines {
		for _, tok := range strings.Split(line, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

// parseSuffix handles "name" and "name-N". Only the last hyphen-delimited
// segment is considered, and only when it is all digits, so hyphenated names
// keep their hyphens.
func parseSuffix(tok string) (ParsedItem, string) {
	idx := strings.LastIndexByte(tok, '-')
	if idx < 0 || !isDigits(tok[idx+1:]) {
		return ParsedItem{Name: tok, Quantity: models.Count(1)}, ""
	}

	head := tok[:idx]
	if strings.HasSuffix(head, "-") {
		// "Hat--2" is a negative quantity, not a name ending in a hyphen.
		return ParsedItem{}, "quantity must be at least 1"
	}
	n, err := strconv.Atoi(tok[idx+1:])
	if err != nil {
		return ParsedItem{}, "quantity is too large"
	}
	if n < 1 {
		return ParsedItem{}, "quantity must be at least 1"
	}
	name := strings.TrimSpace(head)
	if name == "" {
		return ParsedItem{}, "item name required"
	}
	return ParsedItem{Name: name, Quantity: models.Count(n)}, ""
}

// parsePipe handles "name" and "name | quantity". Only the first "|" splits.
// It reports false for a token without a name.
func parsePipe(tok string) (ParsedItem, bool) {
	name, qty, _ := strings.Cut(tok, "|")
	name = strings.TrimSpace(name)
	if name == "" {
		return ParsedItem{}, false
	}
	return ParsedItem{Name: name, Quantity: models.Amount(strings.TrimSpace(qty))}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

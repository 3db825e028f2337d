package calculator

import (
	"slices"
	"sort"
	"strings"
)

// Progress summarizes how much of a checklist is done.
type Progress struct {
	Done       int
	Total      int
	Percentage int
}

// NewProgress computes the rounded (half-up) completion percentage.
// An empty list is 0%; 100% is only reported when every item is done.
func NewProgress(done, total int) Progress {
	if total <= 0 {
		return Progress{}
	}
	done = min(max(done, 0), total)
	pct := (done*200 + total) / (2 * total)
	if pct == 100 && done < total {
		pct = 99
	}
	return Progress{Done: done, Total: total, Percentage: pct}
}

// Tally counts done items.
func Tally[T interface{ Done() bool }](items []T) Progress {
	done := 0
	for _, item := range items {
		if item.Done() {
			done++
		}
	}
	return NewProgress(done, len(items))
}

// Entry is anything that can be grouped by category.
type Entry interface {
	GetCategory() string
	GetName() string
	GetOrder() int
}

// Group is one category and its items.
type Group[T Entry] struct {
	Category string
	Items    []T
}

// GroupByCategory groups items by category. Categories keep the order in
// which they first appear in items; inside a category items are sorted by
// order, then name.
func GroupByCategory[T Entry](items []T) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]

	for _, item := range items {
		i, ok := index[item.GetCategory()]
		if !ok {
			i = len(groups)
			index[item.GetCategory()] = i
			groups = append(groups, Group[T]{Category: item.GetCategory()})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	for _, g := range groups {
		sort.SliceStable(g.Items, func(a, b int) bool {
			x, y := g.Items[a], g.Items[b]
			if x.GetOrder() != y.GetOrder() {
				return x.GetOrder() < y.GetOrder()
			}
			return x.GetName() < y.GetName()
		})
	}
	return groups
}

// NextOrder returns the order value that appends after the highest existing
// order in category.
func NextOrder[T Entry](items []T, category string) int {
	highest := 0
	for _, item := range items {
		if item.GetCategory() == category && item.GetOrder() > highest {
			highest = item.GetOrder()
		}
	}
	return highest + 1
}

// Suggestions lists the categories already in use (sorted) followed by the
// common ones that are not.
func Suggestions[T Entry](items []T, common []string) []string {
	seen := make(map[string]bool)
	var existing []string
	for _, item := range items {
		c := item.GetCategory()
		if strings.TrimSpace(c) == "" || seen[c] {
			continue
		}
		seen[c] = true
		existing = append(existing, c)
	}
	slices.Sort(existing)

	out := existing
	for _, c := range common {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

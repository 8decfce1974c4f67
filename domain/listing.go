package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category names a ranked story listing.
type Category string

const (
	CategoryTop  Category = "top"
	CategoryBest Category = "best"
	CategoryNew  Category = "new"
	CategoryAsk  Category = "ask"
	CategoryShow Category = "show"
	CategoryJobs Category = "jobs"
)

// DefaultCategory is used when none is given on the command line.
const DefaultCategory = CategoryTop

var categoryPaths = map[Category]string{
	CategoryTop:  "/topstories",
	CategoryBest: "/beststories",
	CategoryNew:  "/newstories",
	CategoryAsk:  "/askstories",
	CategoryShow: "/showstories",
	CategoryJobs: "/jobstories",
}

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryTop, CategoryBest, CategoryNew, CategoryAsk, CategoryShow, CategoryJobs}
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryPaths[c]; !ok {
		names := make([]string, 0, len(categoryPaths))
		for _, known := range Categories() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("unknown category %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return c, nil
}

// Path returns the API path of the listing, without the ".json" suffix.
func (c Category) Path() string {
	return categoryPaths[c]
}

// Listing is the ranked sequence of story identifiers saved by the last
// list command.
type Listing struct {
	Category Category  `json:"category,omitempty"`
	IDs      []int     `json:"story_ids"`
	SavedAt  time.Time `json:"saved_at,omitempty"`
}

// At resolves a 1-based rank to a story identifier.
func (l Listing) At(rank int) (int, error) {
	if rank < 1 || rank > len(l.IDs) {
		return 0, &NotFoundError{What: fmt.Sprintf("rank %d (listing has %d stories)", rank, len(l.IDs))}
	}
	return l.IDs[rank-1], nil
}

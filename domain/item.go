package domain

import "time"

// Item is any node fetched from the API: a story, a comment, or what is
// left of a comment that was deleted or removed.
type Item interface {
	ItemID() int
	// Children returns the identifiers of direct replies, in API order.
	Children() []int
	item()
}

// Story is a top-level submission. Jobs and polls are stories too.
type Story struct {
	ID          int
	Kind        string // "story", "job" or "poll"
	Title       string
	URL         string // Empty for text posts
	By          string
	Score       int
	Time        time.Time
	Descendants *int // Nil when the API omits the count
	Text        string
	Kids        []int
}

// Comment is a reply that still has both an author and a body.
type Comment struct {
	ID     int
	By     string
	Text   string // HTML as served by the API
	Time   time.Time
	Parent int
	Kids   []int
}

// Deleted is a reply without an author or body. Its replies survive.
type Deleted struct {
	ID   int
	Kids []int
}

func (s Story) ItemID() int   { return s.ID }
func (c Comment) ItemID() int { return c.ID }
func (d Deleted) ItemID() int { return d.ID }

func (s Story) Children() []int   { return s.Kids }
func (c Comment) Children() []int { return c.Kids }
func (d Deleted) Children() []int { return d.Kids }

func (Story) item()   {}
func (Comment) item() {}
func (Deleted) item() {}

// HasURL reports whether the story links somewhere outside the site.
func (s Story) HasURL() bool { return s.URL != "" }

package hn

import (
	"context"
	"fmt"
	"time"

	"github.com/CrestNiraj12/hn/domain"
)

// hnItem is the wire shape of an item. Fields are present or absent
// depending on what kind of item it is.
type hnItem struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Text        string `json:"text"`
	Parent      int    `json:"parent"`
	Kids        []int  `json:"kids"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	Title       string `json:"title"`
	Descendants *int   `json:"descendants"`
}

// FetchListing returns the ranked story identifiers of a category.
func (c *Client) FetchListing(ctx context.Context, category domain.Category) ([]int, error) {
	url := ListingURL(c.baseURL, category)

	var ids []int
	if err := c.getJSON(ctx, url, &ids); err != nil {
		return nil, fmt.Errorf("fetching %s listing: %w", category, err)
	}
	if ids == nil {
		return nil, &domain.DecodeError{Source: url, Err: fmt.Errorf("listing is null")}
	}
	return ids, nil
}

// FetchItem returns the item with the given identifier.
func (c *Client) FetchItem(ctx context.Context, id int) (domain.Item, error) {
	url := ItemURL(c.baseURL, id)

	var raw *hnItem
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, fmt.Errorf("fetching item %d: %w", id, err)
	}
	if raw == nil {
		return nil, &domain.NotFoundError{What: fmt.Sprintf("item %d", id)}
	}
	return mapItem(*raw), nil
}

// mapItem picks the variant an item belongs to. Stories without a title
// and comments without an author or body come back as domain.Deleted.
func mapItem(raw hnItem) domain.Item {
	switch raw.Type {
	case "story", "job", "poll":
		if raw.Title == "" {
			return domain.Deleted{ID: raw.ID, Kids: raw.Kids}
		}
		return domain.Story{
			ID:          raw.ID,
			Kind:        raw.Type,
			Title:       raw.Title,
			URL:         raw.URL,
			By:          raw.By,
			Score:       raw.Score,
			Time:        time.Unix(raw.Time, 0),
			Descendants: raw.Descendants,
			Text:        raw.Text,
			Kids:        raw.Kids,
		}
	}

	if raw.Text == "" || raw.By == "" {
		return domain.Deleted{ID: raw.ID, Kids: raw.Kids}
	}
	return domain.Comment{
		ID:     raw.ID,
		By:     raw.By,
		Text:   raw.Text,
		Time:   time.Unix(raw.Time, 0),
		Parent: raw.Parent,
		Kids:   raw.Kids,
	}
}

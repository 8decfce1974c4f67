package app

import (
	"context"

	"github.com/CrestNiraj12/hn/domain"
)

// ItemSource fetches listings and items from the news API.
type ItemSource interface {
	// FetchListing returns the ranked story identifiers of a category.
	FetchListing(ctx context.Context, category domain.Category) ([]int, error)

	// FetchItem returns a single story or comment by identifier.
	FetchItem(ctx context.Context, id int) (domain.Item, error)
}

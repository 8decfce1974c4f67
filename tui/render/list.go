package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/hn/app"
	"github.com/CrestNiraj12/hn/domain"
	"github.com/CrestNiraj12/hn/tui/common"
)

const (
	// DefaultListLimit is how many stories list prints when not told otherwise.
	DefaultListLimit = 10
	// TitleWidth is the longest title a listing line shows.
	TitleWidth = 50
)

// Lister fetches a category listing, saves it, and prints the top stories.
type Lister struct {
	Items  app.ItemSource
	Store  app.ListingStore
	Now    func() time.Time
	Styles common.Styles
	Log    zerolog.Logger
}

// List saves the full listing of category and prints one line for each of
// the first limit stories.
func (l *Lister) List(ctx context.Context, out io.Writer, category domain.Category, limit int) error {
	ids, err := l.Items.FetchListing(ctx, category)
	if err != nil {
		return err
	}

	listing := domain.Listing{Category: category, IDs: ids, SavedAt: l.now()}
	if err := l.Store.SaveListing(listing); err != nil {
		return fmt.Errorf("saving listing: %w", err)
	}

	n := min(limit, len(ids))
	if n < limit {
		l.Log.Debug().Int("limit", limit).Int("available", len(ids)).Msg("listing shorter than limit")
	}
	for i := 0; i < n; i++ {
		it, err := l.Items.FetchItem(ctx, ids[i])
		if err != nil {
			return err
		}
		story, ok := it.(domain.Story)
		if !ok {
			return notAStory(it)
		}
		if _, err := fmt.Fprintln(out, l.line(i+1, story)); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lister) line(rank int, s domain.Story) string {
	prefix := fmt.Sprintf("%2d.", rank)
	line := l.Styles.Rank.Render(prefix) + " " + l.Styles.Title.Render(common.ShortenTitle(s.Title, TitleWidth))
	if host := common.Hostname(s.URL); s.HasURL() && host != "" {
		line += " " + l.Styles.Host.Render("("+host+")")
	}
	return line
}

func (l *Lister) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

func notAStory(it domain.Item) error {
	return &domain.DecodeError{
		Source: fmt.Sprintf("item %d", it.ItemID()),
		Err:    errors.New("expected a story with a title"),
	}
}

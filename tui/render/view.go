package render

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/hn/app"
	"github.com/CrestNiraj12/hn/domain"
	"github.com/CrestNiraj12/hn/tui/common"
)

// RuleWidth is the width of the line under a story header.
const RuleWidth = 70

// ViewRequest selects a story from the saved listing.
type ViewRequest struct {
	Rank  int  // 1-based position in the saved listing
	Limit int  // Comments to print; 0 means the story's descendant count
	Open  bool // Open the story URL in the browser
	Copy  bool // Copy the story URL to the clipboard
}

// Viewer prints a story from the saved listing and its comments.
type Viewer struct {
	Items    app.ItemSource
	Store    app.ListingStore
	Launcher app.Launcher
	Walker   *CommentWalker
	Now      func() time.Time
	Styles   common.Styles
	Log      zerolog.Logger
}

// View resolves req.Rank against the saved listing, prints the story
// header and walks its comments.
func (v *Viewer) View(ctx context.Context, out io.Writer, req ViewRequest) error {
	story, err := v.Resolve(ctx, req.Rank)
	if err != nil {
		return err
	}
	return v.Show(ctx, out, story, req)
}

// Show prints an already resolved story and its comments. req.Rank is
// ignored.
func (v *Viewer) Show(ctx context.Context, out io.Writer, story domain.Story, req ViewRequest) error {
	if story.HasURL() {
		v.launch(req, story.URL)
	}

	if _, err := io.WriteString(out, v.Header(story)); err != nil {
		return err
	}

	budget, ok := CommentBudget(req.Limit, story.Descendants)
	if !ok {
		return nil
	}
	_, err := v.Walker.Walk(ctx, out, story, budget)
	return err
}

// Resolve fetches the story at rank in the saved listing.
func (v *Viewer) Resolve(ctx context.Context, rank int) (domain.Story, error) {
	listing, err := v.Store.LoadListing()
	if err != nil {
		return domain.Story{}, err
	}
	id, err := listing.At(rank)
	if err != nil {
		return domain.Story{}, err
	}
	v.Log.Debug().
		Int("rank", rank).
		Int("id", id).
		Str("category", string(listing.Category)).
		Dur("listing_age", v.now().Sub(listing.SavedAt)).
		Msg("resolved rank")

	it, err := v.Items.FetchItem(ctx, id)
	if err != nil {
		return domain.Story{}, err
	}
	story, ok := it.(domain.Story)
	if !ok {
		return domain.Story{}, notAStory(it)
	}
	return story, nil
}

// Header renders the title block printed above the comments: a blank
// line, the title, the score line and a rule.
func (v *Viewer) Header(s domain.Story) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(v.Styles.Title.Render(s.Title))
	if host := common.Hostname(s.URL); s.HasURL() && host != "" {
		b.WriteString(" " + v.Styles.Host.Render("("+host+")"))
	}
	b.WriteString("\n")

	meta := strconv.Itoa(s.Score) + " pts by " + s.By + " " + TimeAgo(v.now(), s.Time)
	if s.Descendants != nil {
		meta += " | " + strconv.Itoa(*s.Descendants) + " comments"
	}
	b.WriteString(v.Styles.Meta.Render(meta))
	b.WriteString("\n")

	b.WriteString(v.Styles.Rule.Render(strings.Repeat("-", RuleWidth)))
	b.WriteString("\n")
	return b.String()
}

// CommentBudget picks how many comments to print: an explicit limit when
// given, otherwise the story's descendant count. ok is false when neither
// is known and no comments should be fetched.
func CommentBudget(limit int, descendants *int) (budget int, ok bool) {
	if limit > 0 {
		return limit, true
	}
	if descendants != nil {
		return *descendants, true
	}
	return 0, false
}

// launch hands the URL to the desktop. Failures are logged, not fatal:
// the story is still printed.
func (v *Viewer) launch(req ViewRequest, url string) {
	if v.Launcher == nil {
		return
	}
	if req.Open {
		if err := v.Launcher.Open(url); err != nil {
			v.Log.Warn().Err(err).Str("url", url).Msg("could not open browser")
		}
	}
	if req.Copy {
		if err := v.Launcher.Copy(url); err != nil {
			v.Log.Warn().Err(err).Str("url", url).Msg("could not copy url")
		}
	}
}

func (v *Viewer) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

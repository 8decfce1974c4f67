package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/hn/app"
	"github.com/CrestNiraj12/hn/domain"
	"github.com/CrestNiraj12/hn/infra/hn"
	"github.com/CrestNiraj12/hn/tui/common"
)

// DefaultWrapWidth is the body width of a comment before indentation.
const DefaultWrapWidth = 70

// CommentWalker fetches and prints a comment tree depth-first.
//
// The budget limits how many comments are printed, not how many are
// fetched: unless Prune is set, the walk visits every reply in the tree
// even after the budget is spent.
type CommentWalker struct {
	Items  app.ItemSource
	Now    func() time.Time
	Width  int
	Prune  bool
	Styles common.Styles
	Log    zerolog.Logger
}

// tally is the per-walk accumulator threaded through the recursion.
type tally struct {
	budget   int
	rendered int
	fetched  int
}

func (t *tally) spent() bool { return t.rendered >= t.budget }

// Walk prints up to budget comments below parent and returns how many
// were printed. Any fetch error ends the walk.
func (w *CommentWalker) Walk(ctx context.Context, out io.Writer, parent domain.Item, budget int) (int, error) {
	t := &tally{budget: budget}
	err := w.walk(ctx, out, parent, 0, t)

	w.Log.Debug().
		Int("parent", parent.ItemID()).
		Int("budget", budget).
		Int("rendered", t.rendered).
		Int("fetched", t.fetched).
		Bool("prune", w.Prune).
		Msg("comment walk finished")
	return t.rendered, err
}

func (w *CommentWalker) walk(ctx context.Context, out io.Writer, parent domain.Item, depth int, t *tally) error {
	for _, id := range parent.Children() {
		if w.Prune && t.spent() {
			return nil
		}

		child, err := w.Items.FetchItem(ctx, id)
		if err != nil {
			return fmt.Errorf("fetching reply to %d: %w", parent.ItemID(), err)
		}
		t.fetched++

		if c, ok := child.(domain.Comment); ok && !t.spent() {
			if err := w.render(out, c, depth); err != nil {
				return err
			}
			t.rendered++
		}

		if err := w.walk(ctx, out, child, depth+1, t); err != nil {
			return err
		}
	}
	return nil
}

func (w *CommentWalker) render(out io.Writer, c domain.Comment, depth int) error {
	indent := Indent(depth)
	header := fmt.Sprintf("%s%s %s\n", indent,
		w.Styles.Author.Render(c.By),
		w.Styles.Timestamp.Render(TimeAgo(w.now(), c.Time)))

	body := WrapBody(hn.PlainText(c.Text), w.width(), indent)
	if body != "" {
		body += "\n"
	}

	_, err := io.WriteString(out, header+body+"\n")
	return err
}

func (w *CommentWalker) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

func (w *CommentWalker) width() int {
	if w.Width <= 0 {
		return DefaultWrapWidth
	}
	return w.Width
}

package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/hn/domain"
	"github.com/CrestNiraj12/hn/tui/common"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// stubItems serves canned listings and items and records fetch order.
type stubItems struct {
	listings map[domain.Category][]int
	items    map[int]domain.Item
	failOn   map[int]error
	fetched  []int
}

func newStubItems() *stubItems {
	return &stubItems{
		listings: make(map[domain.Category][]int),
		items:    make(map[int]domain.Item),
		failOn:   make(map[int]error),
	}
}

func (s *stubItems) FetchListing(_ context.Context, c domain.Category) ([]int, error) {
	ids, ok := s.listings[c]
	if !ok {
		return nil, &domain.TransportError{URL: string(c), StatusCode: 404, Err: errors.New("no listing")}
	}
	return ids, nil
}

func (s *stubItems) FetchItem(_ context.Context, id int) (domain.Item, error) {
	s.fetched = append(s.fetched, id)
	if err, ok := s.failOn[id]; ok {
		return nil, err
	}
	it, ok := s.items[id]
	if !ok {
		return nil, &domain.NotFoundError{What: fmt.Sprintf("item %d", id)}
	}
	return it, nil
}

func (s *stubItems) add(items ...domain.Item) {
	for _, it := range items {
		s.items[it.ItemID()] = it
	}
}

type stubLauncher struct {
	opened  []string
	copied  []string
	openErr error
}

func (l *stubLauncher) Open(url string) error {
	l.opened = append(l.opened, url)
	return l.openErr
}

func (l *stubLauncher) Copy(url string) error {
	l.copied = append(l.copied, url)
	return nil
}

func comment(id int, by, text string, ago time.Duration, kids ...int) domain.Comment {
	return domain.Comment{ID: id, By: by, Text: text, Time: testNow.Add(-ago), Kids: kids}
}

func intPtr(n int) *int { return &n }

func newWalker(items *stubItems) *CommentWalker {
	return &CommentWalker{
		Items:  items,
		Now:    fixedNow,
		Width:  DefaultWrapWidth,
		Styles: common.PlainStyles(),
		Log:    zerolog.Nop(),
	}
}

package client

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	search string
	page   int
}

// scriptedFetcher serves canned pages keyed by search+page and records
// every call.
type scriptedFetcher struct {
	pages map[string]OptionPage
	calls []fetchCall
}

func key(search string, page int) string {
	return fmt.Sprintf("%s|%d", search, page)
}

func (f *scriptedFetcher) fetch(_ context.Context, search string, page int) (OptionPage, error) {
	f.calls = append(f.calls, fetchCall{search: search, page: page})
	return f.pages[key(search, page)], nil
}

// manualTimer lets tests fire the debounce by hand.
type manualTimer struct {
	fn      func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	if m.stopped {
		return false
	}
	m.stopped = true
	return true
}

type timerQueue struct {
	timers []*manualTimer
}

func (q *timerQueue) afterFunc(_ time.Duration, fn func()) stoppable {
	timer := &manualTimer{fn: fn}
	q.timers = append(q.timers, timer)
	return timer
}

// fire runs every timer that has not been stopped and returns how many
// fired.
func (q *timerQueue) fire() int {
	fired := 0
	for _, timer := range q.timers {
		if !timer.stopped {
			timer.stopped = true
			timer.fn()
			fired++
		}
	}
	return fired
}

func newTestSelector(fetcher *scriptedFetcher) (*Selector, *timerQueue) {
	queue := &timerQueue{}
	s := NewSelector(fetcher.fetch)
	s.afterFunc = queue.afterFunc
	return s, queue
}

func TestOpenResetsSearchAndPage(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1):    {Options: []Option{{ID: 1, Label: "Tea"}}, HasNext: true},
		key("cof", 1): {Options: []Option{{ID: 2, Label: "Coffee"}}},
	}}
	s, queue := newTestSelector(fetcher)
	ctx := context.Background()

	s.Open(ctx)
	s.SetInput(ctx, "cof")
	queue.fire()
	s.ScrollNearBottom(ctx, 0)
	s.Close()

	fetcher.calls = nil
	s.Open(ctx)

	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, fetchCall{search: "", page: 1}, fetcher.calls[0])
	assert.Equal(t, "", s.Search())
	assert.Equal(t, PhaseOpen, s.Phase())
	assert.Equal(t, []Option{{ID: 1, Label: "Tea"}}, s.Options())
}

func TestDebounceFiresSingleFetch(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1):    {Options: []Option{{ID: 1, Label: "Tea"}}},
		key("abc", 1): {Options: []Option{{ID: 9, Label: "abc tea"}}},
	}}
	s, queue := newTestSelector(fetcher)
	ctx := context.Background()

	s.Open(ctx)
	fetcher.calls = nil

	s.SetInput(ctx, "a")
	s.SetInput(ctx, "ab")
	s.SetInput(ctx, "abc")

	assert.Empty(t, fetcher.calls, "no fetch before the debounce fires")

	fired := queue.fire()
	assert.Equal(t, 1, fired, "keystroke burst collapses to one timer")
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, fetchCall{search: "abc", page: 1}, fetcher.calls[0])
	assert.Equal(t, []Option{{ID: 9, Label: "abc tea"}}, s.Options())
}

func TestCloseDropsPendingDebounce(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1): {},
	}}
	s, queue := newTestSelector(fetcher)
	ctx := context.Background()

	s.Open(ctx)
	fetcher.calls = nil
	s.SetInput(ctx, "x")
	s.Close()

	assert.Equal(t, 0, queue.fire())
	assert.Empty(t, fetcher.calls)
	assert.True(t, s.Visited())
}

func TestPageAppendDedupsByID(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1): {Options: []Option{{ID: 1, Label: "A"}, {ID: 2, Label: "B"}}, HasNext: true},
		key("", 2): {Options: []Option{{ID: 2, Label: "B"}, {ID: 3, Label: "C"}}},
	}}
	s, _ := newTestSelector(fetcher)
	ctx := context.Background()

	s.Open(ctx)
	s.ScrollNearBottom(ctx, 0)

	assert.Equal(t, []Option{
		{ID: 1, Label: "A"},
		{ID: 2, Label: "B"},
		{ID: 3, Label: "C"},
	}, s.Options())
}

func TestScrollRespectsThresholdAndLastPage(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1): {Options: []Option{{ID: 1, Label: "A"}}, HasNext: true},
		key("", 2): {Options: []Option{{ID: 2, Label: "B"}}},
	}}
	s, _ := newTestSelector(fetcher)
	ctx := context.Background()

	s.Open(ctx)
	fetcher.calls = nil

	s.ScrollNearBottom(ctx, DefaultScrollThreshold+1)
	assert.Empty(t, fetcher.calls, "far from the bottom, nothing loads")

	s.ScrollNearBottom(ctx, 2)
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, fetchCall{search: "", page: 2}, fetcher.calls[0])

	fetcher.calls = nil
	s.ScrollNearBottom(ctx, 0)
	assert.Empty(t, fetcher.calls, "last page reached, nothing loads")
}

func TestFailedPageLoadIsRetriedAtSamePage(t *testing.T) {
	var calls []fetchCall
	failNext := true
	fetch := func(_ context.Context, search string, page int) (OptionPage, error) {
		calls = append(calls, fetchCall{search: search, page: page})
		if page == 1 {
			return OptionPage{Options: []Option{{ID: 1, Label: "A"}}, HasNext: true}, nil
		}
		if failNext {
			failNext = false
			return OptionPage{}, fmt.Errorf("connection refused")
		}
		return OptionPage{Options: []Option{{ID: 2, Label: "B"}}}, nil
	}
	s := NewSelector(fetch)
	queue := &timerQueue{}
	s.afterFunc = queue.afterFunc
	ctx := context.Background()

	s.Open(ctx)

	s.ScrollNearBottom(ctx, 0)
	assert.Error(t, s.Err())
	assert.Equal(t, []Option{{ID: 1, Label: "A"}}, s.Options(), "the failed page changes nothing")

	s.ScrollNearBottom(ctx, 0)
	assert.NoError(t, s.Err())
	assert.Equal(t, []fetchCall{
		{search: "", page: 1},
		{search: "", page: 2},
		{search: "", page: 2},
	}, calls, "the scroll after a failure asks for the same page again")
	assert.Equal(t, []Option{{ID: 1, Label: "A"}, {ID: 2, Label: "B"}}, s.Options())
}

func TestSelectedLabelEchoIsNotAnEdit(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1): {Options: []Option{{ID: 1, Label: "Tea"}}},
	}}
	s, queue := newTestSelector(fetcher)
	ctx := context.Background()

	s.Open(ctx)
	require.True(t, s.Select(1))
	fetcher.calls = nil

	s.SetInput(ctx, "Tea")
	assert.Equal(t, 0, queue.fire(), "echoing the selection schedules nothing")
	assert.Empty(t, fetcher.calls)
	assert.Equal(t, "", s.Search(), "the echo clears the search text")
}

func TestMutuallyExclusivePeerIsCleared(t *testing.T) {
	products := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1): {Options: []Option{{ID: 1, Label: "Tea"}}},
	}}
	categories := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1): {Options: []Option{{ID: 7, Label: "Beverages"}}},
	}}
	product, _ := newTestSelector(products)
	category, _ := newTestSelector(categories)
	product.SetPeer(category)
	category.SetPeer(product)
	ctx := context.Background()

	category.Open(ctx)
	require.True(t, category.Select(7))
	require.NotNil(t, category.Selected())

	product.Open(ctx)
	require.True(t, product.Select(1))

	assert.Nil(t, category.Selected(), "picking a product drops the category")
	require.NotNil(t, product.Selected())
	assert.Equal(t, uint(1), product.Selected().ID)

	category.Open(ctx)
	require.True(t, category.Select(7))
	assert.Nil(t, product.Selected(), "and the other way round")
}

func TestStaleGenerationIsDiscarded(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[string]OptionPage{
		key("", 1): {Options: []Option{{ID: 1, Label: "Fresh"}}},
	}}
	s, _ := newTestSelector(fetcher)
	ctx := context.Background()

	s.Open(ctx)
	require.Equal(t, []Option{{ID: 1, Label: "Fresh"}}, s.Options())

	// A response from before the reset arrives late.
	s.apply(s.generation-1, 1, OptionPage{Options: []Option{{ID: 99, Label: "Stale"}}}, nil, true)

	assert.Equal(t, []Option{{ID: 1, Label: "Fresh"}}, s.Options())
}

func TestFetchErrorLeavesOptionsUnchanged(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, search string, page int) (OptionPage, error) {
		calls++
		if calls == 1 {
			return OptionPage{Options: []Option{{ID: 1, Label: "A"}}}, nil
		}
		return OptionPage{}, fmt.Errorf("connection refused")
	}
	s := NewSelector(fetch)
	queue := &timerQueue{}
	s.afterFunc = queue.afterFunc
	ctx := context.Background()

	s.Open(ctx)
	require.NoError(t, s.Err())

	s.SetInput(ctx, "boom")
	queue.fire()

	assert.Error(t, s.Err())
	assert.Equal(t, []Option{{ID: 1, Label: "A"}}, s.Options())
}

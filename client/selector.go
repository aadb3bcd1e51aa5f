package client

import (
	"context"
	"sync"
	"time"
)

// SelectorPhase tracks where a select field is in its lifecycle. A
// field starts closed, opens when focused, and once closed again stays
// in the visited phase so the form flow can advance past it.
type SelectorPhase int

const (
	PhaseClosed SelectorPhase = iota
	PhaseOpen
	PhaseVisitedClosed
)

// DefaultDebounce is the delay between the last keystroke and the
// search fetch it triggers.
const DefaultDebounce = 300 * time.Millisecond

// DefaultScrollThreshold is how many options may remain below the
// viewport before the next page is requested.
const DefaultScrollThreshold = 5

// stoppable lets tests drive the debounce timer by hand.
type stoppable interface {
	Stop() bool
}

func realAfterFunc(d time.Duration, f func()) stoppable {
	return time.AfterFunc(d, f)
}

// Selector is the state machine behind a remote-backed select field.
// Options accumulate across pages and are deduplicated by ID. Every
// reset (opening, or a new search) bumps a generation counter; fetch
// results from an older generation are discarded so a slow response
// can never overwrite a newer list.
type Selector struct {
	mu sync.Mutex

	fetch     FetchFunc
	debounce  time.Duration
	threshold int
	afterFunc func(time.Duration, func()) stoppable

	phase      SelectorPhase
	options    []Option
	seen       map[uint]bool
	page       int
	hasMore    bool
	search     string
	loading    bool
	generation uint64

	selected *Option
	peer     *Selector

	timer   stoppable
	lastErr error
}

// NewSelector returns a closed selector over the given fetcher.
func NewSelector(fetch FetchFunc) *Selector {
	return &Selector{
		fetch:     fetch,
		debounce:  DefaultDebounce,
		threshold: DefaultScrollThreshold,
		afterFunc: realAfterFunc,
		seen:      map[uint]bool{},
	}
}

// SetPeer configures a mutually exclusive partner field. Committing a
// selection here clears the peer's selection, and vice versa.
func (s *Selector) SetPeer(peer *Selector) {
	s.mu.Lock()
	s.peer = peer
	s.mu.Unlock()
}

// Phase returns the current lifecycle phase.
func (s *Selector) Phase() SelectorPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Options returns the accumulated option list.
func (s *Selector) Options() []Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Selected returns the committed option, or nil.
func (s *Selector) Selected() *Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	picked := *s.selected
	return &picked
}

// Search returns the current search text.
func (s *Selector) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Err returns the error from the most recent fetch, if any.
func (s *Selector) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Open opens the dropdown. Search text and page position are reset so
// a reopened field always shows page 1 of the unfiltered list, no
// matter what was typed before it was closed.
func (s *Selector) Open(ctx context.Context) {
	s.mu.Lock()
	s.phase = PhaseOpen
	s.search = ""
	s.page = 1
	s.stopTimerLocked()
	gen := s.bumpGenerationLocked()
	s.mu.Unlock()

	s.runFetch(ctx, gen, "", 1, true)
}

// Close closes the dropdown, marking the field visited. Any pending
// debounce is dropped.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseOpen {
		s.phase = PhaseVisitedClosed
	}
	s.stopTimerLocked()
}

// Visited reports whether the field has been opened and closed before.
func (s *Selector) Visited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseVisitedClosed
}

// SetInput records a keystroke in the search box. Text identical to
// the committed option's label is the field echoing the selection back
// and is not treated as an edit, it just clears the search. A real
// edit restarts the single debounce timer; only the last keystroke in
// a burst causes a fetch.
func (s *Selector) SetInput(ctx context.Context, text string) {
	s.mu.Lock()
	if s.selected != nil && text == s.selected.Label {
		s.search = ""
		s.mu.Unlock()
		return
	}
	s.search = text
	s.stopTimerLocked()
	s.timer = s.afterFunc(s.debounce, func() {
		s.flushSearch(ctx)
	})
	s.mu.Unlock()
}

// flushSearch runs the debounced search fetch.
func (s *Selector) flushSearch(ctx context.Context) {
	s.mu.Lock()
	s.timer = nil
	s.page = 1
	query := s.search
	gen := s.bumpGenerationLocked()
	s.mu.Unlock()

	s.runFetch(ctx, gen, query, 1, true)
}

// ScrollNearBottom requests the next page once the viewport is within
// the threshold of the end of the list. No-op while a fetch is in
// flight or when the last page has been reached.
func (s *Selector) ScrollNearBottom(ctx context.Context, remaining int) {
	s.mu.Lock()
	if s.phase != PhaseOpen || s.loading || !s.hasMore || remaining > s.threshold {
		s.mu.Unlock()
		return
	}
	next := s.page + 1
	query := s.search
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	s.doFetch(ctx, gen, query, next, false)
}

// Select commits an option by ID and closes the dropdown. When a
// mutually exclusive peer is configured its selection is cleared.
func (s *Selector) Select(id uint) bool {
	s.mu.Lock()
	var picked *Option
	for i := range s.options {
		if s.options[i].ID == id {
			picked = &s.options[i]
			break
		}
	}
	if picked == nil {
		s.mu.Unlock()
		return false
	}
	chosen := *picked
	s.selected = &chosen
	s.search = chosen.Label
	s.phase = PhaseVisitedClosed
	s.stopTimerLocked()
	peer := s.peer
	s.mu.Unlock()

	if peer != nil {
		peer.ClearSelection()
	}
	return true
}

// ClearSelection drops the committed option without touching phase.
func (s *Selector) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// runFetch marks the selector loading and performs the fetch.
func (s *Selector) runFetch(ctx context.Context, gen uint64, query string, page int, reset bool) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.doFetch(ctx, gen, query, page, reset)
}

func (s *Selector) doFetch(ctx context.Context, gen uint64, query string, page int, reset bool) {
	result, err := s.fetch(ctx, query, page)
	s.apply(gen, page, result, err, reset)
}

// apply folds a fetch result into the option list. Results from an
// older generation are discarded. A reset replaces the list; a page
// load appends, skipping IDs already present. The page position only
// commits on success, so a failed page load is retried at the same
// page by the next scroll instead of skipping it.
func (s *Selector) apply(gen uint64, page int, result OptionPage, err error, reset bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	s.loading = false

	if err != nil {
		s.lastErr = err
		return
	}
	s.lastErr = nil
	s.page = page
	s.hasMore = result.HasNext

	if reset {
		s.options = s.options[:0]
		s.seen = map[uint]bool{}
	}
	for _, opt := range result.Options {
		if s.seen[opt.ID] {
			continue
		}
		s.seen[opt.ID] = true
		s.options = append(s.options, opt)
	}
}

func (s *Selector) bumpGenerationLocked() uint64 {
	s.generation++
	return s.generation
}

func (s *Selector) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

package client

import (
	"context"
	"sync"
)

// DetailFetchFunc loads the detail record for an ID.
type DetailFetchFunc func(ctx context.Context, id uint) (map[string]interface{}, error)

// DetailLoader serializes detail fetches for a view that can only show
// one record at a time. Starting a load cancels the previous one, and
// a result is applied only if no newer load has started since: the
// last request wins, regardless of response order.
type DetailLoader struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc

	fetch DetailFetchFunc
	apply func(id uint, detail map[string]interface{})
	onErr func(id uint, err error)
}

// NewDetailLoader builds a loader. apply receives the detail for the
// winning request; onErr, if set, receives fetch errors (cancellation
// errors from superseded requests are dropped).
func NewDetailLoader(fetch DetailFetchFunc, apply func(uint, map[string]interface{}), onErr func(uint, error)) *DetailLoader {
	return &DetailLoader{fetch: fetch, apply: apply, onErr: onErr}
}

// Load fetches the detail for id. Any in-flight load is cancelled
// first and its result, should it still arrive, is discarded.
func (l *DetailLoader) Load(ctx context.Context, id uint) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	seq := l.seq
	l.mu.Unlock()

	detail, err := l.fetch(fetchCtx, id)
	l.deliver(seq, id, detail, err)
}

// deliver applies a fetch result if it is still the newest request.
func (l *DetailLoader) deliver(seq uint64, id uint, detail map[string]interface{}, err error) {
	l.mu.Lock()
	stale := seq != l.seq
	l.mu.Unlock()
	if stale {
		return
	}

	if err != nil {
		if l.onErr != nil {
			l.onErr(id, err)
		}
		return
	}
	if l.apply != nil {
		l.apply(id, detail)
	}
}

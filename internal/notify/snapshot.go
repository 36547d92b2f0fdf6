package notify

import (
	"context"
	"fmt"
	"sync"
)

// Snapshotter loads the current state of one object so a delete can still be
// described after the row is gone.
type Snapshotter func(ctx context.Context, id int64) (Payload, error)

// Snapshotters maps a kind to its loader.
type Snapshotters map[Kind]Snapshotter

// Take runs the loader registered for kind.
func (s Snapshotters) Take(ctx context.Context, kind Kind, id int64) (Payload, error) {
	fn, ok := s[kind]
	if !ok {
		return nil, fmt.Errorf("no snapshotter for %s", kind)
	}
	p, err := fn(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s %d: %w", kind, id, err)
	}
	return p, nil
}

// Holder carries a pre-delete snapshot through one request.
type Holder struct {
	mu      sync.Mutex
	payload Payload
}

func (h *Holder) Set(p Payload) {
	h.mu.Lock()
	h.payload = p
	h.mu.Unlock()
}

// Get returns the stored snapshot, or nil.
func (h *Holder) Get() Payload {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.payload
}

type holderKey struct{}

// WithHolder attaches an empty holder to ctx.
func WithHolder(ctx context.Context) (context.Context, *Holder) {
	h := &Holder{}
	return context.WithValue(ctx, holderKey{}, h), h
}

// HolderFromCtx returns the request's holder, or nil.
func HolderFromCtx(ctx context.Context) *Holder {
	h, _ := ctx.Value(holderKey{}).(*Holder)
	return h
}

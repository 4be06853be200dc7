package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"movie-discovery/internal/models"
)

// Persistence is the key-value layer behind interactions and reviews. Load
// returns (nil, nil) for a namespace that was never saved.
type Persistence interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, blob []byte) error
}

const (
	interactionsNamespace = "interactions"
	reviewsNamespace      = "reviews"
)

// blobMap is one namespace holding a JSON object keyed by movie id. Every
// operation is a full read-modify-write of that object.
//
// When the persistence layer fails the map degrades to an in-memory copy for
// the rest of the process; a blob that cannot be parsed is treated as empty.
type blobMap[V any] struct {
	p         Persistence
	namespace string

	mu       sync.Mutex
	degraded bool
	fallback map[int]V
}

func newBlobMap[V any](p Persistence, namespace string) *blobMap[V] {
	return &blobMap[V]{p: p, namespace: namespace}
}

// load must be called with mu held.
func (b *blobMap[V]) load(ctx context.Context) map[int]V {
	if b.degraded {
		return cloneMap(b.fallback)
	}

	blob, err := b.p.Load(ctx, b.namespace)
	if err != nil {
		slog.Warn("state load failed, continuing in memory",
			"namespace", b.namespace, "error", fmt.Errorf("%w: %w", models.ErrPersistenceUnavailable, err))
		b.degrade(map[int]V{})
		return map[int]V{}
	}

	out := map[int]V{}
	if len(blob) == 0 {
		return out
	}
	if err := json.Unmarshal(blob, &out); err != nil {
		slog.Warn("state blob unreadable, starting empty", "namespace", b.namespace, "error", err)
		return map[int]V{}
	}
	return out
}

// save must be called with mu held.
func (b *blobMap[V]) save(ctx context.Context, m map[int]V) {
	if b.degraded {
		b.fallback = cloneMap(m)
		return
	}

	blob, err := json.Marshal(m)
	if err != nil {
		slog.Error("failed to encode state", "namespace", b.namespace, "error", err)
		return
	}
	if err := b.p.Save(ctx, b.namespace, blob); err != nil {
		slog.Warn("state save failed, continuing in memory",
			"namespace", b.namespace, "error", fmt.Errorf("%w: %w", models.ErrPersistenceUnavailable, err))
		b.degrade(m)
	}
}

func (b *blobMap[V]) degrade(m map[int]V) {
	b.degraded = true
	b.fallback = cloneMap(m)
}

func cloneMap[V any](m map[int]V) map[int]V {
	out := make(map[int]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// StateStore hands out the interaction and review stores of each owner
// (a user id or device id). It is created once at process start.
type StateStore struct {
	p Persistence

	mu           sync.Mutex
	interactions map[string]*InteractionStore
	reviews      map[string]*ReviewStore
}

// NewStateStore creates a registry over the given persistence layer.
func NewStateStore(p Persistence) *StateStore {
	return &StateStore{
		p:            p,
		interactions: make(map[string]*InteractionStore),
		reviews:      make(map[string]*ReviewStore),
	}
}

// Interactions returns the interaction store of owner.
func (s *StateStore) Interactions(owner string) *InteractionStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.interactions[owner]
	if !ok {
		st = NewInteractionStore(s.p, owner)
		s.interactions[owner] = st
	}
	return st
}

// Reviews returns the review store of owner.
func (s *StateStore) Reviews(owner string) *ReviewStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.reviews[owner]
	if !ok {
		st = NewReviewStore(s.p, owner)
		s.reviews[owner] = st
	}
	return st
}

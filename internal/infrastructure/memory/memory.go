// Package memory implements a non-durable snapshot store for development
// and testing.
package memory

import (
	"context"
	"sync"

	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
)

// SnapshotStore holds the snapshot in process memory. State is lost on
// restart; useful for tests and dev mode without a running Redis or Mongo.
type SnapshotStore struct {
	mu   sync.Mutex
	snap *domain.Snapshot
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// New creates an empty in-memory snapshot store.
func New() *SnapshotStore {
	return &SnapshotStore{}
}

// Load returns a copy of the stored snapshot, or ports.ErrSnapshotNotFound
// when nothing has been saved yet.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return nil, ports.ErrSnapshotNotFound
	}
	return s.snap.Clone(), nil
}

// Save stores a copy of the snapshot.
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap.Clone()
	return nil
}

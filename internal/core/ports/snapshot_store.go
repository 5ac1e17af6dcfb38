package ports

import (
	"context"
	"errors"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

// ErrSnapshotNotFound is returned by Load when the backing store has no
// snapshot yet (first run).
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore is the persistence port: an opaque blob store holding the
// entire Snapshot under a single key. Save is invoked write-through after
// every successful state transition; there is no buffering or batching.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

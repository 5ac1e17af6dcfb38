package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
)

// SnapshotStore persists the whole directory snapshot as one JSON value
// under a single namespaced key, e.g. "ruralroots:v1". No TTL: the
// snapshot is the installation's durable state.
type SnapshotStore struct {
	client *redis.Client
	key    string
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a SnapshotStore wrapping the given Redis client.
func NewSnapshotStore(client *redis.Client, key string) *SnapshotStore {
	return &SnapshotStore{client: client, key: key}
}

// Load fetches and decodes the snapshot. Returns ports.ErrSnapshotNotFound
// when the key does not exist (first run).
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	return &snap, nil
}

// Save encodes and writes the snapshot, replacing any previous value.
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

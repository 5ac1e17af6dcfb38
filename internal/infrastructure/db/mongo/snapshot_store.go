package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
)

const snapshotCollection = "snapshots"

// SnapshotStore persists the directory snapshot as a single document with
// a fixed _id. Mongo here plays the role of an opaque blob store, same as
// the Redis backend: one installation, one document, replaced wholesale on
// every write.
type SnapshotStore struct {
	coll *mongo.Collection
	key  string
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a SnapshotStore over the snapshots collection.
func NewSnapshotStore(db *mongo.Database, key string) *SnapshotStore {
	return &SnapshotStore{coll: db.Collection(snapshotCollection), key: key}
}

type snapshotDoc struct {
	ID   string          `bson:"_id"`
	Data domain.Snapshot `bson:"data"`
}

// Load fetches the snapshot document. Returns ports.ErrSnapshotNotFound
// when no document exists yet (first run).
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc snapshotDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	return &doc.Data, nil
}

// Save replaces the snapshot document, inserting it when absent.
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := snapshotDoc{ID: s.key, Data: *snap}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

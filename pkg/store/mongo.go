package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps snapshots in a MongoDB collection, one document per
// snapshot keyed by name.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and uses the "snapshots"
// collection in the given database. The connection is verified with a ping
// before returning.
func NewMongoStore(ctx context.Context, uri, database string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	col := client.Database(database).Collection("snapshots")
	return instrument("mongo", &MongoStore{client: client, col: col}), nil
}

func (s *MongoStore) Save(ctx context.Context, name string, data []byte) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	snap := newSnapshot(name, data)
	_, err := s.col.ReplaceOne(ctx, bson.M{"name": name}, snap, options.Replace().SetUpsert(true))
	if err != nil {
		return Snapshot{}, fmt.Errorf("save %s: %w", name, err)
	}
	return snap, nil
}

func (s *MongoStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	var snap Snapshot
	err := s.col.FindOne(ctx, bson.M{"name": name}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load %s: %w", name, err)
	}
	return snap, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Snapshot, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	var snaps []Snapshot
	if err := cur.All(ctx, &snaps); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return snaps, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/identicon/pkg/errors"
)

// MongoStore archives artifacts in a MongoDB collection. Documents are
// keyed by artifact name and replaced on re-save, so the collection
// holds at most one document per (input, format) pair.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// artifactDoc is the persisted document shape.
type artifactDoc struct {
	Name      string    `bson:"name"`
	Data      []byte    `bson:"data"`
	Size      int       `bson:"size"`
	CreatedAt time.Time `bson:"created_at"`
}

// NewMongoStore connects to uri and uses the given database and
// collection. The connection is verified with a ping before returning.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "connect %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "ping %s", uri)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Save upserts the artifact document and returns its name.
func (s *MongoStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	doc := artifactDoc{
		Name:      name,
		Data:      data,
		Size:      len(data),
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"name": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIOFailure, err, "store %s", name)
	}
	return name, nil
}

// Load retrieves a previously saved artifact by name.
func (s *MongoStore) Load(ctx context.Context, name string) ([]byte, error) {
	var doc artifactDoc
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeNotFound, "artifact %s not found", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "load %s", name)
	}
	return doc.Data, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)

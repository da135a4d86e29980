package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/errors"
)

const (
	mongoDatabase   = "mailcanvas"
	mongoCollection = "documents"
)

// MongoStore persists documents in a MongoDB collection, one record per
// document keyed by name. It is the backend for shared deployments behind the
// preview server.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and verifies the connection with
// a ping.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(mongoDatabase).Collection(mongoCollection),
	}, nil
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context, name string) (*document.Document, error) {
	var f document.File
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "find document %q", name)
	}
	return document.FromFile(f), nil
}

// Save implements Store. Saving upserts on the document name.
func (s *MongoStore) Save(ctx context.Context, name string, d *document.Document) error {
	if err := errors.ValidateDocumentName(name); err != nil {
		return fmt.Errorf("%q: %w: %s", name, ErrInvalidName, errors.UserMessage(err))
	}
	f := d.ToFile(name)
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"name": name},
		f,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "save document %q", name)
	}
	return nil
}

// Delete implements Store.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "delete document %q", name)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

// List implements Store.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.M{"name": 1})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "list documents")
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var rec struct {
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "decode document record")
		}
		names = append(names, rec.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "iterate documents")
	}
	return names, nil
}

// Close implements Store.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)

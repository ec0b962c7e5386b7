package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig configures a MongoDB-backed store.
type MongoConfig struct {
	// URI is the MongoDB connection string (mongodb://...).
	URI string
	// Database name. Defaults to "treestruct".
	Database string
	// Collection name. Defaults to "documents".
	Collection string
}

// MongoStore keeps documents in a MongoDB collection, keyed by document ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := cfg.Database
	if db == "" {
		db = "treestruct"
	}
	coll := cfg.Collection
	if coll == "" {
		coll = "documents"
	}
	return &MongoStore{client: client, coll: client.Database(db).Collection(coll)}, nil
}

// Get retrieves a document by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	var doc Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", id, err)
	}
	return &doc, nil
}

// Put stores a document, upserting on ID.
func (s *MongoStore) Put(ctx context.Context, doc *Document) error {
	if doc.ID == "" {
		return ErrInvalidID
	}
	doc.UpdatedAt = time.Now().UTC()
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo put %s: %w", doc.ID, err)
	}
	return nil
}

// Delete removes a document.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongo delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all stored documents.
func (s *MongoStore) List(ctx context.Context) ([]*Document, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	defer cur.Close(ctx)

	var out []*Document
	for cur.Next(ctx) {
		var doc Document
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo decode: %w", err)
		}
		out = append(out, &doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return out, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)

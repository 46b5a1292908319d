// Package mongo implements the document store on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"invoiceflow/pkg/store"
)

// Database holds one client for the lifetime of the process. The driver
// pools connections internally and is safe for concurrent use.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to uri and pings the primary.
func Open(ctx context.Context, uri, database string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Database{client: client, db: client.Database(database)}, nil
}

// Collection returns a handle on the named MongoDB collection.
func (d *Database) Collection(name string) store.Collection {
	return NewCollection(d.db.Collection(name))
}

// Ping checks the connection.
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Collection adapts a driver collection.
type Collection struct {
	coll *mongo.Collection
}

// NewCollection wraps c.
func NewCollection(c *mongo.Collection) *Collection {
	return &Collection{coll: c}
}

// InsertOne inserts doc; the server assigns its _id.
func (c *Collection) InsertOne(ctx context.Context, doc store.Document) error {
	_, err := c.coll.InsertOne(ctx, bson.M(doc))
	return err
}

// UpdateOne applies $set to one matching document.
func (c *Collection) UpdateOne(ctx context.Context, f store.Filter, set store.Document) error {
	res, err := c.coll.UpdateOne(ctx, filter(f), bson.M{"$set": bson.M(set)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteOne removes one matching document.
func (c *Collection) DeleteOne(ctx context.Context, f store.Filter) error {
	res, err := c.coll.DeleteOne(ctx, filter(f))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// FindOne decodes one matching document.
func (c *Collection) FindOne(ctx context.Context, f store.Filter) (store.Document, error) {
	var doc bson.M
	err := c.coll.FindOne(ctx, filter(f)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return store.Document(doc), nil
}

func filter(f store.Filter) bson.D {
	return bson.D{{Key: f.Field, Value: f.Value}}
}

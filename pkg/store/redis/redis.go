// Package redis keeps each collection in a Redis hash whose fields are
// document identifiers and whose values are JSON-encoded documents.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"invoiceflow/pkg/store"
)

// maxTxRetries bounds optimistic-lock retries for UpdateOne.
const maxTxRetries = 16

// Database is a Redis-backed document store.
type Database struct {
	client *goredis.Client
	prefix string
}

// Open connects to the server described by uri (redis://host:port/db).
func Open(ctx context.Context, uri, database string) (*Database, error) {
	opts, err := goredis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	d := New(goredis.NewClient(opts), database)
	if err := d.Ping(ctx); err != nil {
		d.client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return d, nil
}

// New wraps an existing client. Collection keys are prefixed with database.
func New(client *goredis.Client, database string) *Database {
	return &Database{client: client, prefix: database}
}

// Collection returns a handle on the hash "<database>:<name>".
func (d *Database) Collection(name string) store.Collection {
	return &Collection{client: d.client, key: d.prefix + ":" + name}
}

// Ping checks the connection.
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Close closes the client.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Close()
}

// Collection is one Redis hash.
type Collection struct {
	client *goredis.Client
	key    string
}

// InsertOne stores doc under a fresh identifier.
func (c *Collection) InsertOne(ctx context.Context, doc store.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.client.HSet(ctx, c.key, uuid.NewString(), raw).Err()
}

// UpdateOne rewrites one matching document with set merged in. The hash is
// watched between read and write so a concurrent delete aborts the write
// instead of being undone by it.
func (c *Collection) UpdateOne(ctx context.Context, f store.Filter, set store.Document) error {
	update := func(tx *goredis.Tx) error {
		id, doc, err := find(ctx, tx, c.key, f)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(store.Merge(doc, set))
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, c.key, id, raw)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := c.client.Watch(ctx, update, c.key)
		if !errors.Is(err, goredis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("update %s: %w after %d attempts", c.key, goredis.TxFailedErr, maxTxRetries)
}

// DeleteOne removes one matching document.
func (c *Collection) DeleteOne(ctx context.Context, f store.Filter) error {
	id, _, err := c.find(ctx, f)
	if err != nil {
		return err
	}
	n, err := c.client.HDel(ctx, c.key, id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// FindOne returns one matching document.
func (c *Collection) FindOne(ctx context.Context, f store.Filter) (store.Document, error) {
	id, doc, err := c.find(ctx, f)
	if err != nil {
		return nil, err
	}
	doc[store.IDField] = id
	return doc, nil
}

func (c *Collection) find(ctx context.Context, f store.Filter) (string, store.Document, error) {
	return find(ctx, c.client, c.key, f)
}

// hashReader is satisfied by both *goredis.Client and *goredis.Tx.
type hashReader interface {
	HGetAll(ctx context.Context, key string) *goredis.MapStringStringCmd
}

func find(ctx context.Context, r hashReader, key string, f store.Filter) (string, store.Document, error) {
	all, err := r.HGetAll(ctx, key).Result()
	if err != nil {
		return "", nil, err
	}
	for id, raw := range all {
		doc := store.Document{}
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return "", nil, fmt.Errorf("decode %s/%s: %w", key, id, err)
		}
		if f.Matches(doc) {
			return id, doc, nil
		}
	}
	return "", nil, store.ErrNotFound
}

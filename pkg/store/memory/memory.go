// Package memory implements an in-memory document store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"invoiceflow/pkg/store"
)

// Database keeps every collection in process memory.
type Database struct {
	mu          sync.RWMutex
	collections map[string][]store.Document
}

// New creates an empty in-memory database.
func New() *Database {
	return &Database{collections: make(map[string][]store.Document)}
}

// Collection returns a handle on the named collection.
func (d *Database) Collection(name string) store.Collection {
	return &Collection{db: d, name: name}
}

// Ping always succeeds.
func (d *Database) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (d *Database) Close(ctx context.Context) error { return nil }

// Collection is a named slice of documents inside a Database.
type Collection struct {
	db   *Database
	name string
}

// InsertOne appends a copy of doc under a fresh identifier.
func (c *Collection) InsertOne(ctx context.Context, doc store.Document) error {
	d := store.Merge(doc, store.Document{store.IDField: uuid.NewString()})
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	c.db.collections[c.name] = append(c.db.collections[c.name], d)
	return nil
}

// UpdateOne overwrites the keys of set on the first match.
func (c *Collection) UpdateOne(ctx context.Context, f store.Filter, set store.Document) error {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	docs := c.db.collections[c.name]
	i := index(docs, f)
	if i < 0 {
		return store.ErrNotFound
	}
	docs[i] = store.Merge(docs[i], set)
	return nil
}

// DeleteOne removes the first match.
func (c *Collection) DeleteOne(ctx context.Context, f store.Filter) error {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	docs := c.db.collections[c.name]
	i := index(docs, f)
	if i < 0 {
		return store.ErrNotFound
	}
	c.db.collections[c.name] = append(docs[:i:i], docs[i+1:]...)
	return nil
}

// FindOne returns a copy of the first match.
func (c *Collection) FindOne(ctx context.Context, f store.Filter) (store.Document, error) {
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()
	docs := c.db.collections[c.name]
	i := index(docs, f)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	return store.Merge(docs[i], nil), nil
}

// Len reports how many documents the collection holds.
func (c *Collection) Len() int {
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()
	return len(c.db.collections[c.name])
}

func index(docs []store.Document, f store.Filter) int {
	for i, d := range docs {
		if f.Matches(d) {
			return i
		}
	}
	return -1
}

// Package store defines the document store gateway shared by all record
// handlers, plus the backends that implement it.
package store

import (
	"context"
	"errors"
)

// Document is a loosely-typed record as held by a collection.
type Document map[string]any

// Filter selects documents whose Field equals Value.
type Filter struct {
	Field string
	Value string
}

// Matches reports whether doc carries f.Value under f.Field.
func (f Filter) Matches(doc Document) bool {
	v, ok := doc[f.Field]
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && s == f.Value
}

// Collection is a named group of documents of one record kind.
//
// UpdateOne, DeleteOne and FindOne act on a single arbitrary match when
// several documents satisfy the filter, and return ErrNotFound when none do.
type Collection interface {
	InsertOne(ctx context.Context, doc Document) error
	UpdateOne(ctx context.Context, f Filter, set Document) error
	DeleteOne(ctx context.Context, f Filter) error
	FindOne(ctx context.Context, f Filter) (Document, error)
}

// Database is the long-lived connection handle. Implementations must be safe
// for concurrent use.
type Database interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// IDField is the key under which backends store their own document identifier.
const IDField = "_id"

// ErrNotFound indicates that no document matched a filter.
var ErrNotFound = errors.New("document not found")

// Merge returns a copy of doc with the keys of set overwritten.
func Merge(doc, set Document) Document {
	out := make(Document, len(doc)+len(set))
	for k, v := range doc {
		out[k] = v
	}
	for k, v := range set {
		out[k] = v
	}
	return out
}

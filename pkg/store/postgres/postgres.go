// Package postgres stores documents as JSONB rows in PostgreSQL, one table
// per collection.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"invoiceflow/pkg/store"
)

// Database persists collections in PostgreSQL.
type Database struct {
	db *sql.DB
}

// Open connects to the database at uri and verifies the connection.
func Open(ctx context.Context, uri string) (*Database, error) {
	db, err := sql.Open("postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return New(db), nil
}

// New wraps an existing handle. Call EnsureCollections before use so the
// collection tables exist.
func New(db *sql.DB) *Database {
	return &Database{db: db}
}

// EnsureCollections creates a table for each named collection:
// CREATE TABLE IF NOT EXISTS <name> (id TEXT PRIMARY KEY, doc JSONB NOT NULL);
func (d *Database) EnsureCollections(ctx context.Context, names ...string) error {
	for _, name := range names {
		q := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, doc JSONB NOT NULL)", pq.QuoteIdentifier(name))
		if _, err := d.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
	}
	return nil
}

// Collection returns a handle on the named table.
func (d *Database) Collection(name string) store.Collection {
	return &Collection{db: d.db, table: pq.QuoteIdentifier(name)}
}

// Ping checks the connection.
func (d *Database) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close releases the connection pool.
func (d *Database) Close(ctx context.Context) error {
	return d.db.Close()
}

// Collection is one JSONB table.
type Collection struct {
	db    *sql.DB
	table string
}

// InsertOne inserts doc under a fresh identifier.
func (c *Collection) InsertOne(ctx context.Context, doc store.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	q := fmt.Sprintf("INSERT INTO %s (id, doc) VALUES ($1, $2)", c.table)
	_, err = c.db.ExecContext(ctx, q, uuid.NewString(), string(raw))
	return err
}

// UpdateOne merges set into one matching document.
func (c *Collection) UpdateOne(ctx context.Context, f store.Filter, set store.Document) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return err
	}
	q := fmt.Sprintf("UPDATE %[1]s SET doc = doc || $3::jsonb WHERE id = (SELECT id FROM %[1]s WHERE doc->>$1 = $2 LIMIT 1)", c.table)
	res, err := c.db.ExecContext(ctx, q, f.Field, f.Value, string(raw))
	if err != nil {
		return err
	}
	return affected(res)
}

// DeleteOne removes one matching document.
func (c *Collection) DeleteOne(ctx context.Context, f store.Filter) error {
	q := fmt.Sprintf("DELETE FROM %[1]s WHERE id = (SELECT id FROM %[1]s WHERE doc->>$1 = $2 LIMIT 1)", c.table)
	res, err := c.db.ExecContext(ctx, q, f.Field, f.Value)
	if err != nil {
		return err
	}
	return affected(res)
}

// FindOne retrieves one matching document.
func (c *Collection) FindOne(ctx context.Context, f store.Filter) (store.Document, error) {
	q := fmt.Sprintf("SELECT id, doc FROM %s WHERE doc->>$1 = $2 LIMIT 1", c.table)
	var (
		id  string
		raw []byte
	)
	err := c.db.QueryRowContext(ctx, q, f.Field, f.Value).Scan(&id, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc := store.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s row %s: %w", c.table, id, err)
	}
	doc[store.IDField] = id
	return doc, nil
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

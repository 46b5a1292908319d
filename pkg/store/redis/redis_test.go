package redis

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"invoiceflow/pkg/store"
)

func newDatabase(t *testing.T) (*Database, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	d := New(goredis.NewClient(&goredis.Options{Addr: s.Addr()}), "test")
	t.Cleanup(func() { d.Close(context.Background()) })
	return d, s
}

func TestCollection(t *testing.T) {
	ctx := context.Background()
	d, s := newDatabase(t)
	c := d.Collection("clients")
	f := store.Filter{Field: "client_id", Value: "c1"}

	if err := c.InsertOne(ctx, store.Document{"client_id": "c1", "name": "Ann", "email": "ann@example.com"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if keys, _ := s.HKeys("test:clients"); len(keys) != 1 {
		t.Fatalf("expected one hash field, got %v", keys)
	}

	got, err := c.FindOne(ctx, f)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got["name"] != "Ann" || got[store.IDField] == nil {
		t.Fatalf("unexpected document: %v", got)
	}

	if err := c.UpdateOne(ctx, f, store.Document{"name": "Bo", "email": "bo@example.com"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = c.FindOne(ctx, f)
	if got["name"] != "Bo" || got["client_id"] != "c1" {
		t.Fatalf("unexpected document after update: %v", got)
	}

	if err := c.DeleteOne(ctx, f); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.DeleteOne(ctx, f); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := c.FindOne(ctx, f); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMissing(t *testing.T) {
	ctx := context.Background()
	d, s := newDatabase(t)
	err := d.Collection("invoices").UpdateOne(ctx, store.Filter{Field: "invoice_id", Value: "nope"}, store.Document{"status": "x"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Exists("test:invoices") {
		t.Fatal("update must not create documents")
	}
}

func TestServerDown(t *testing.T) {
	ctx := context.Background()
	d, s := newDatabase(t)
	s.Close()
	if err := d.Collection("items").InsertOne(ctx, store.Document{"name": "a"}); err == nil {
		t.Fatal("expected error with server down")
	}
	if err := d.Ping(ctx); err == nil {
		t.Fatal("expected ping error with server down")
	}
}

func TestConcurrentUpdateDelete(t *testing.T) {
	ctx := context.Background()
	d, _ := newDatabase(t)
	c := d.Collection("invoices")
	f := store.Filter{Field: "invoice_id", Value: "r"}

	for round := 0; round < 100; round++ {
		if err := c.InsertOne(ctx, store.Document{"invoice_id": "r", "amount": 1.0, "status": "draft"}); err != nil {
			t.Fatalf("insert: %v", err)
		}

		var (
			wg                   sync.WaitGroup
			updateErr, deleteErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			updateErr = c.UpdateOne(ctx, f, store.Document{"amount": 2.0, "status": "sent"})
		}()
		go func() {
			defer wg.Done()
			deleteErr = c.DeleteOne(ctx, f)
		}()
		wg.Wait()

		if updateErr != nil && !errors.Is(updateErr, store.ErrNotFound) {
			t.Fatalf("round %d: update: %v", round, updateErr)
		}
		if deleteErr != nil {
			t.Fatalf("round %d: delete: %v", round, deleteErr)
		}
		if _, err := c.FindOne(ctx, f); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("round %d: document present after a successful delete (err %v)", round, err)
		}
	}
}

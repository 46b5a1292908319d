package memory

import (
	"context"
	"errors"
	"testing"

	"invoiceflow/pkg/store"
)

func TestCollection(t *testing.T) {
	ctx := context.Background()
	db := New()
	c := db.Collection("invoices")
	f := store.Filter{Field: "invoice_id", Value: "1"}

	if err := c.InsertOne(ctx, store.Document{"invoice_id": "1", "amount": 10.0, "status": "draft"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := c.FindOne(ctx, f)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got["status"] != "draft" {
		t.Fatalf("expected draft, got %v", got["status"])
	}
	if _, ok := got[store.IDField].(string); !ok {
		t.Fatalf("expected generated %s, got %v", store.IDField, got[store.IDField])
	}

	if err := c.UpdateOne(ctx, f, store.Document{"status": "sent"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = c.FindOne(ctx, f)
	if got["status"] != "sent" || got["amount"] != 10.0 || got["invoice_id"] != "1" {
		t.Fatalf("unexpected document after update: %v", got)
	}

	if err := c.DeleteOne(ctx, f); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.FindOne(ctx, f); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := c.DeleteOne(ctx, f); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUpdateMissing(t *testing.T) {
	ctx := context.Background()
	c := New().Collection("clients").(*Collection)
	err := c.UpdateOne(ctx, store.Filter{Field: "client_id", Value: "x"}, store.Document{"name": "n"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("update must not create documents, have %d", c.Len())
	}
}

func TestDuplicateIdentifiers(t *testing.T) {
	ctx := context.Background()
	c := New().Collection("clients").(*Collection)
	for i := 0; i < 2; i++ {
		if err := c.InsertOne(ctx, store.Document{"client_id": "7"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", c.Len())
	}
	if err := c.DeleteOne(ctx, store.Filter{Field: "client_id", Value: "7"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("delete must remove exactly one, have %d", c.Len())
	}
}

func TestFindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := New().Collection("items")
	_ = c.InsertOne(ctx, store.Document{"name": "a"})
	f := store.Filter{Field: "name", Value: "a"}
	got, _ := c.FindOne(ctx, f)
	got["name"] = "b"
	if _, err := c.FindOne(ctx, f); err != nil {
		t.Fatalf("stored document was mutated through FindOne result: %v", err)
	}
}

package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"invoiceflow/pkg/config"
	"invoiceflow/pkg/store/memory"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	db, err := openStore(ctx, config.Store{Driver: config.DriverMemory, Database: "x"})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := db.(*memory.Database); !ok {
		t.Fatalf("expected memory database, got %T", db)
	}

	s := miniredis.RunT(t)
	db, err = openStore(ctx, config.Store{Driver: config.DriverRedis, URI: "redis://" + s.Addr(), Database: "x"})
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	db.Close(ctx)

	if _, err := openStore(ctx, config.Store{Driver: "cassandra"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

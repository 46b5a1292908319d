package main

import (
	"context"
	"fmt"
	"time"

	"invoiceflow/pkg/config"
	"invoiceflow/pkg/record"
	"invoiceflow/pkg/store"
	"invoiceflow/pkg/store/memory"
	"invoiceflow/pkg/store/mongo"
	"invoiceflow/pkg/store/postgres"
	"invoiceflow/pkg/store/redis"
)

const connectTimeout = 10 * time.Second

// openStore connects the configured backend. Any failure here is fatal.
func openStore(ctx context.Context, cfg config.Store) (store.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverMongo:
		return mongo.Open(ctx, cfg.URI, cfg.Database)
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.URI)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureCollections(ctx, record.Collections()...); err != nil {
			db.Close(ctx)
			return nil, err
		}
		return db, nil
	case config.DriverRedis:
		return redis.Open(ctx, cfg.URI, cfg.Database)
	case config.DriverMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

package record

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"invoiceflow/pkg/logger"
	"invoiceflow/pkg/otel"
	"invoiceflow/pkg/store"
)

// Status classifies the outcome of an operation.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// Result is what a handler reports back to the transport. Message never
// carries store error details.
type Result struct {
	Status   Status
	Message  string
	Document store.Document
}

// Service runs record operations against a shared database handle.
type Service struct {
	db  store.Database
	log *logger.Logger
}

// NewService returns a Service using db for every call.
func NewService(db store.Database, log *logger.Logger) *Service {
	return &Service{db: db, log: log}
}

// Add inserts rec unconditionally. Duplicate identifiers are accepted.
func (s *Service) Add(ctx context.Context, k Kind, rec Record) Result {
	ctx, span := otel.AddSpan(ctx, "record.Add", attribute.String("collection", k.Collection))
	defer span.End()

	err := s.db.Collection(k.Collection).InsertOne(ctx, rec.Document())
	return s.result(ctx, k, "add", "added", err, nil)
}

// Update overwrites the non-identifier fields of one document whose
// identifier equals id. The identifier carried by rec is ignored.
func (s *Service) Update(ctx context.Context, k Kind, id string, rec Record) Result {
	ctx, span := otel.AddSpan(ctx, "record.Update", attribute.String("collection", k.Collection), attribute.String("id", id))
	defer span.End()

	err := s.db.Collection(k.Collection).UpdateOne(ctx, k.filter(id), rec.Fields())
	return s.result(ctx, k, "update", "updated", err, nil)
}

// Delete removes one document whose identifier equals id.
func (s *Service) Delete(ctx context.Context, k Kind, id string) Result {
	ctx, span := otel.AddSpan(ctx, "record.Delete", attribute.String("collection", k.Collection), attribute.String("id", id))
	defer span.End()

	err := s.db.Collection(k.Collection).DeleteOne(ctx, k.filter(id))
	return s.result(ctx, k, "delete", "deleted", err, nil)
}

// Get reads one document whose identifier equals id.
func (s *Service) Get(ctx context.Context, k Kind, id string) Result {
	ctx, span := otel.AddSpan(ctx, "record.Get", attribute.String("collection", k.Collection), attribute.String("id", id))
	defer span.End()

	doc, err := s.db.Collection(k.Collection).FindOne(ctx, k.filter(id))
	return s.result(ctx, k, "retrieve", "retrieved", err, doc)
}

func (s *Service) result(ctx context.Context, k Kind, verb, past string, err error, doc store.Document) Result {
	switch {
	case err == nil:
		return Result{Status: StatusOK, Message: k.Noun + " " + past + " successfully!", Document: doc}
	case errors.Is(err, store.ErrNotFound):
		return Result{Status: StatusNotFound, Message: k.Noun + " not found"}
	default:
		s.log.Error(ctx, "store operation failed", "op", verb, "collection", k.Collection, "error", err)
		return Result{Status: StatusFailed, Message: "Failed to " + verb + " " + k.lower()}
	}
}

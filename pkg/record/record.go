// Package record implements the item, invoice and client handlers: each turns
// a parsed request into one document store call and a Result.
package record

import (
	"strings"

	"invoiceflow/pkg/store"
)

// Kind describes one record type and where it lives.
type Kind struct {
	Noun       string
	Collection string
	// IDField is the business identifier used in filters. Empty for kinds
	// that are add-only.
	IDField string
}

var (
	ItemKind    = Kind{Noun: "Item", Collection: "items"}
	InvoiceKind = Kind{Noun: "Invoice", Collection: "invoices", IDField: "invoice_id"}
	ClientKind  = Kind{Noun: "Client", Collection: "clients", IDField: "client_id"}
)

// Collections lists every collection the service uses.
func Collections() []string {
	return []string{ItemKind.Collection, InvoiceKind.Collection, ClientKind.Collection}
}

func (k Kind) lower() string { return strings.ToLower(k.Noun) }

func (k Kind) filter(id string) store.Filter {
	return store.Filter{Field: k.IDField, Value: id}
}

// Record is a value that can be written to a collection.
type Record interface {
	// Document returns every field, identifier included.
	Document() store.Document
	// Fields returns the fields an update overwrites.
	Fields() store.Document
}

// Item is a named thing. It has no identifier.
type Item struct {
	Name string `json:"name"`
}

func (i Item) Document() store.Document { return store.Document{"name": i.Name} }
func (i Item) Fields() store.Document   { return i.Document() }

// Invoice is a billed amount with a free-form status.
type Invoice struct {
	InvoiceID string  `json:"invoice_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

func (i Invoice) Document() store.Document {
	return store.Document{"invoice_id": i.InvoiceID, "amount": i.Amount, "status": i.Status}
}

func (i Invoice) Fields() store.Document {
	return store.Document{"amount": i.Amount, "status": i.Status}
}

// Client is a customer contact.
type Client struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (c Client) Document() store.Document {
	return store.Document{"client_id": c.ClientID, "name": c.Name, "email": c.Email}
}

func (c Client) Fields() store.Document {
	return store.Document{"name": c.Name, "email": c.Email}
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"invoiceflow/pkg/record"
)

// helloHandler answers the root path.
// @Summary Greeting
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func helloHandler(w http.ResponseWriter, r *http.Request) {
	text(w, http.StatusOK, "Hello world!")
}

// heyHandler is a second greeting.
// @Summary Greeting
// @Produce plain
// @Success 200 {string} string
// @Router /hey [get]
func heyHandler(w http.ResponseWriter, r *http.Request) {
	text(w, http.StatusOK, "Hey there!")
}

// echoHandler writes the request body back.
// @Summary Echo
// @Accept plain
// @Produce plain
// @Param body body string true "Any text"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Router /echo [post]
func echoHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !utf8.Valid(body) {
		http.Error(w, "request body is not valid UTF-8", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// addItemHandler stores an item.
// @Summary Add item
// @Accept json
// @Produce plain
// @Param item body record.Item true "Item"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /add [post]
func (h *Handler) addItemHandler(w http.ResponseWriter, r *http.Request) {
	var it record.Item
	if err := decode(r, &it, "name"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.svc.Add(r.Context(), record.ItemKind, it))
}

// addInvoiceHandler stores an invoice.
// @Summary Add invoice
// @Accept json
// @Produce plain
// @Param invoice body record.Invoice true "Invoice"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /invoice/add [post]
func (h *Handler) addInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	var inv record.Invoice
	if err := decode(r, &inv, "invoice_id", "amount", "status"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.svc.Add(r.Context(), record.InvoiceKind, inv))
}

// updateInvoiceHandler overwrites an invoice's amount and status.
// @Summary Update invoice
// @Accept json
// @Produce plain
// @Param invoice_id path string true "Invoice ID"
// @Param invoice body record.Invoice true "Invoice"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /invoice/update/{invoice_id} [put]
func (h *Handler) updateInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	var inv record.Invoice
	if err := decode(r, &inv, "invoice_id", "amount", "status"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["invoice_id"]
	writeResult(w, h.svc.Update(r.Context(), record.InvoiceKind, id, inv))
}

// deleteInvoiceHandler removes an invoice.
// @Summary Delete invoice
// @Produce plain
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /invoice/delete/{invoice_id} [delete]
func (h *Handler) deleteInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["invoice_id"]
	writeResult(w, h.svc.Delete(r.Context(), record.InvoiceKind, id))
}

// getInvoiceHandler returns the stored invoice document.
// @Summary Get invoice
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /invoice/{invoice_id} [get]
func (h *Handler) getInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["invoice_id"]
	writeResult(w, h.svc.Get(r.Context(), record.InvoiceKind, id))
}

// addClientHandler stores a client.
// @Summary Add client
// @Accept json
// @Produce plain
// @Param client body record.Client true "Client"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /client/add [post]
func (h *Handler) addClientHandler(w http.ResponseWriter, r *http.Request) {
	var c record.Client
	if err := decode(r, &c, "client_id", "name", "email"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.svc.Add(r.Context(), record.ClientKind, c))
}

// updateClientHandler overwrites a client's name and email.
// @Summary Update client
// @Accept json
// @Produce plain
// @Param client_id path string true "Client ID"
// @Param client body record.Client true "Client"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /client/update/{client_id} [put]
func (h *Handler) updateClientHandler(w http.ResponseWriter, r *http.Request) {
	var c record.Client
	if err := decode(r, &c, "client_id", "name", "email"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["client_id"]
	writeResult(w, h.svc.Update(r.Context(), record.ClientKind, id, c))
}

// deleteClientHandler removes a client.
// @Summary Delete client
// @Produce plain
// @Param client_id path string true "Client ID"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /client/delete/{client_id} [delete]
func (h *Handler) deleteClientHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["client_id"]
	writeResult(w, h.svc.Delete(r.Context(), record.ClientKind, id))
}

// getClientHandler returns the stored client document.
// @Summary Get client
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /client/{client_id} [get]
func (h *Handler) getClientHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["client_id"]
	writeResult(w, h.svc.Get(r.Context(), record.ClientKind, id))
}

// writeResult maps a record result to a response. A result with a document is
// sent as JSON, anything else as its message.
func writeResult(w http.ResponseWriter, res record.Result) {
	switch res.Status {
	case record.StatusOK:
		if res.Document != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(res.Document)
			return
		}
		text(w, http.StatusOK, res.Message)
	case record.StatusNotFound:
		text(w, http.StatusNotFound, res.Message)
	default:
		text(w, http.StatusInternalServerError, res.Message)
	}
}

func text(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	io.WriteString(w, msg)
}

// decode unmarshals the JSON body into v. Every required key must be present
// and non-null, and nothing may follow the JSON value.
func decode(r *http.Request, v any, required ...string) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}
	for _, k := range required {
		raw, ok := fields[k]
		if !ok {
			return fmt.Errorf("invalid body: missing field %q", k)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("invalid body: field %q is null", k)
		}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}
	return nil
}

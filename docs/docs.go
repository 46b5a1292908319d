// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Greeting",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/hey": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Greeting",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/echo": {
            "post": {
                "consumes": ["text/plain"],
                "produces": ["text/plain"],
                "summary": "Echo",
                "parameters": [{"description": "Any text", "name": "body", "in": "body", "required": true, "schema": {"type": "string"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "summary": "Add item",
                "parameters": [{"description": "Item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/record.Item"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/invoice/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "summary": "Add invoice",
                "parameters": [{"description": "Invoice", "name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/record.Invoice"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/invoice/update/{invoice_id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "summary": "Update invoice",
                "parameters": [
                    {"type": "string", "description": "Invoice ID", "name": "invoice_id", "in": "path", "required": true},
                    {"description": "Invoice", "name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/record.Invoice"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/invoice/delete/{invoice_id}": {
            "delete": {
                "produces": ["text/plain"],
                "summary": "Delete invoice",
                "parameters": [{"type": "string", "description": "Invoice ID", "name": "invoice_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/invoice/{invoice_id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get invoice",
                "parameters": [{"type": "string", "description": "Invoice ID", "name": "invoice_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/client/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "summary": "Add client",
                "parameters": [{"description": "Client", "name": "client", "in": "body", "required": true, "schema": {"$ref": "#/definitions/record.Client"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/client/update/{client_id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "summary": "Update client",
                "parameters": [
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "path", "required": true},
                    {"description": "Client", "name": "client", "in": "body", "required": true, "schema": {"$ref": "#/definitions/record.Client"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/client/delete/{client_id}": {
            "delete": {
                "produces": ["text/plain"],
                "summary": "Delete client",
                "parameters": [{"type": "string", "description": "Client ID", "name": "client_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/client/{client_id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get client",
                "parameters": [{"type": "string", "description": "Client ID", "name": "client_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}
            }
        }
    },
    "definitions": {
        "record.Item": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "record.Invoice": {
            "type": "object",
            "properties": {"invoice_id": {"type": "string"}, "amount": {"type": "number"}, "status": {"type": "string"}}
        },
        "record.Client": {
            "type": "object",
            "properties": {"client_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "InvoiceFlow API",
	Description:      "CRUD API for items, invoices and clients",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

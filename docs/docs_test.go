package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocListsEveryRoute(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	routes := map[string]string{
		"/":                            "get",
		"/hey":                         "get",
		"/echo":                        "post",
		"/add":                         "post",
		"/invoice/add":                 "post",
		"/invoice/update/{invoice_id}": "put",
		"/invoice/delete/{invoice_id}": "delete",
		"/invoice/{invoice_id}":        "get",
		"/client/add":                  "post",
		"/client/update/{client_id}":   "put",
		"/client/delete/{client_id}":   "delete",
		"/client/{client_id}":          "get",
	}
	for path, method := range routes {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("missing %s %s", method, path)
		}
	}
}

package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	if !json.Valid([]byte(doc)) {
		t.Fatalf("rendered doc is not valid JSON")
	}
	for _, want := range []string{`"/api/v1/schedules"`, `"title": "Focus Dashboard API"`, `"host": "localhost:8080"`, `"name": "from"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered doc missing %s", want)
		}
	}
}

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"focus-dashboard/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	tm := time.Date(2024, 5, 10, 9, 0, 0, 0, loc)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2024-05-10 09:00:00"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
}

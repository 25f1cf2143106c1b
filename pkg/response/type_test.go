package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"personal-task-management/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	b, err := json.Marshal(response.NewDateTime(&tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-06-10T09:00:00Z"` {
		t.Errorf("unexpected output %s", b)
	}

	b, err = json.Marshal(response.NewDateTime(nil))
	if err != nil {
		t.Fatalf("unexpected error marshaling nil DateTime: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null, got %s", b)
	}
}

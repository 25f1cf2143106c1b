package response

import (
	"encoding/json"
	"time"
)

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire format for timestamps in read responses.
	DateTimeFormat = time.RFC3339
)

// Resp is the standard JSON body for read endpoints.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ActionResp is the body of mutation endpoints: success flag and message
// with the payload fields flattened next to them.
type ActionResp struct {
	Success bool
	Message string
	Data    map[string]any
}

// MarshalJSON flattens Data into the top-level object. The success and
// message keys always win over payload keys of the same name.
func (r ActionResp) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Data)+2)
	for k, v := range r.Data {
		out[k] = v
	}
	out["success"] = r.Success
	out["message"] = r.Message
	return json.Marshal(out)
}

// DateTime is a timestamp that marshals as DateTimeFormat, or null when nil.
type DateTime struct {
	t *time.Time
}

// NewDateTime wraps a nullable time for JSON output.
func NewDateTime(t *time.Time) DateTime {
	return DateTime{t: t}
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(DateTimeFormat))
}

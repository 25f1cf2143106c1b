package gcalendar

import "time"

// CreateEventRequest is the input for inserting a calendar event.
type CreateEventRequest struct {
	CalendarID  string // defaults to "primary"
	EventID     string // optional client-chosen id, see EventIDFor
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool   // Start and End are read as dates
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// Event is the subset of a calendar event callers use.
type Event struct {
	ID       string
	Summary  string
	HTMLLink string
	Start    time.Time
	End      time.Time
}

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is one row of my_table. Name is nullable; Date is assigned by the
// database at insertion time and never supplied by clients.
type Record struct {
	ID   int64
	Name *string
	Date time.Time
}

// MarshalJSON renders the record as the wire tuple [id, name, "date"], with
// the timestamp as text rather than RFC 3339.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.ID, r.Name, FormatTimestamp(r.Date)})
}

// FormatTimestamp renders a timestamp as "YYYY-MM-DD HH:MM:SS.ffffff",
// dropping the fractional part entirely when it is zero.
func FormatTimestamp(t time.Time) string {
	s := t.Format("2006-01-02 15:04:05")
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

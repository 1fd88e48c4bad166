package report

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a complaint.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

// Display returns the human-readable status label.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusResolved:
		return "Resolved"
	}
	return string(s)
}

// Report is a citizen complaint. It transitions pending to resolved exactly
// once via an authority action; resolved is terminal.
type Report struct {
	ID              uuid.UUID `json:"id"`
	ComplainantName string    `json:"complainant_name"`
	ComplaintText   string    `json:"complaint_text"`
	RationID        string    `json:"ration_id"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

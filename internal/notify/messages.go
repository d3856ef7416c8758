package notify

import (
	"encoding/json"
	"time"
)

const (
	KindReportGenerated = "report_generated"
	KindSetsImported    = "sets_imported"
)

// ReportEvent describes a completed run: either a generated report or a
// finished import into the local cache.
type ReportEvent struct {
	Kind      string    `json:"kind"`
	Year      int       `json:"year,omitempty"`
	Groups    int       `json:"groups,omitempty"`
	Sets      int       `json:"sets,omitempty"`
	Path      string    `json:"path,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReportGenerated creates the event published after a report is written.
func NewReportGenerated(year, groups int, path string) *ReportEvent {
	return &ReportEvent{
		Kind:      KindReportGenerated,
		Year:      year,
		Groups:    groups,
		Path:      path,
		Timestamp: time.Now(),
	}
}

// NewSetsImported creates the event published after a cache import.
func NewSetsImported(sets int, path string) *ReportEvent {
	return &ReportEvent{
		Kind:      KindSetsImported,
		Sets:      sets,
		Path:      path,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *ReportEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ReportEventFromJSON creates an event from JSON bytes
func ReportEventFromJSON(data []byte) (*ReportEvent, error) {
	var ev ReportEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

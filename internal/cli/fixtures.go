package cli

import (
	"encoding/json"
	"os"

	"github.com/nedc-bench/scoring-core/annotation"
)

// fixtureEvent is the minimal JSON wire shape read by loadEvents: a stand-in
// for CSV_BI ingestion, which is out of scope for this module as a format.
type fixtureEvent struct {
	Channel    string  `json:"channel"`
	Start      float64 `json:"start"`
	Stop       float64 `json:"stop"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// loadEvents reads a JSON array of fixtureEvent objects from path and
// constructs validated EventAnnotation values via
// annotation.NewEventAnnotation, so malformed fixtures fail the same way
// malformed programmatic input would.
func loadEvents(path string) ([]annotation.EventAnnotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []fixtureEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	events := make([]annotation.EventAnnotation, 0, len(raw))
	for _, r := range raw {
		ev, err := annotation.NewEventAnnotation(r.Channel, r.Start, r.Stop, r.Label, r.Confidence)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	annotation.SortEvents(events)
	return events, nil
}

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/assessrec/core"
)

// record mirrors the scraper's output schema. Optional fields tolerate the
// scraper's loose typing: durations arrive as numbers, numeric strings, or
// an "unknown" sentinel; support flags arrive as yes/no strings or booleans.
type record struct {
	Name            string        `json:"name"`
	URL             string        `json:"url"`
	Description     string        `json:"description"`
	TestType        string        `json:"test_type"`
	Duration        *flexDuration `json:"duration"`
	AdaptiveSupport yesNo         `json:"adaptive_support"`
	RemoteSupport   yesNo         `json:"remote_support"`
}

// flexDuration decodes the scraper's duration field. Absent, empty, or
// "unknown" values map to core.DurationUnknown.
type flexDuration int

func (d *flexDuration) UnmarshalJSON(data []byte) error {
	*d = flexDuration(core.DurationUnknown)

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 {
			return fmt.Errorf("duration %d is negative", n)
		}
		*d = flexDuration(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be an integer or string, got %s", data)
	}
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "unknown" || s == "n/a" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("cannot parse duration %q", s)
	}
	if n < 0 {
		return fmt.Errorf("duration %d is negative", n)
	}
	*d = flexDuration(n)
	return nil
}

// yesNo decodes the scraper's boolean-like support flags.
type yesNo bool

func (y *yesNo) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*y = yesNo(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("support flag must be a boolean or yes/no string, got %s", data)
	}
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "yes", "true", "y":
		*y = true
	case "no", "false", "n", "":
		*y = false
	default:
		return fmt.Errorf("cannot parse support flag %q", s)
	}
	return nil
}

func (r *record) toAssessment() core.Assessment {
	// Absent duration means unknown, never zero.
	duration := core.DurationUnknown
	if r.Duration != nil {
		duration = int(*r.Duration)
	}

	return core.Assessment{
		Key:             r.URL,
		Name:            r.Name,
		Description:     r.Description,
		TestType:        core.ParseTestType(r.TestType),
		Duration:        duration,
		AdaptiveSupport: bool(r.AdaptiveSupport),
		RemoteSupport:   bool(r.RemoteSupport),
	}
}

// LoadFile loads and validates a catalog from a scraper-produced JSON file.
// The load is one-shot: any failure is fatal to startup, with no retries
// and no network access at this layer.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Default().Info("catalog loaded", "path", path, "assessments", catalog.Len())
	return catalog, nil
}

// Parse decodes and validates catalog JSON.
func Parse(data []byte) (*Catalog, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, ErrEmptyCatalog)
	}

	items := make([]core.Assessment, len(records))
	for i := range records {
		items[i] = records[i].toAssessment()
	}

	return New(items)
}

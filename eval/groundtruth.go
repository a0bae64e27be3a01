package eval

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoadGroundTruthJSON reads ground truth from a JSON object mapping each
// query to its relevant assessment keys.
func LoadGroundTruthJSON(path string) (GroundTruth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGroundTruth, err)
	}

	var truth GroundTruth
	if err := json.Unmarshal(data, &truth); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrGroundTruth, path, err)
	}
	if len(truth) == 0 {
		return nil, fmt.Errorf("%w: %s contains no queries", ErrGroundTruth, path)
	}

	slog.Info("ground truth loaded", "path", path, "queries", len(truth))
	return truth, nil
}

// LoadGroundTruthCSV reads ground truth from a two-column CSV with a
// Query,Assessment_url header. Rows sharing a query accumulate into one
// relevant set.
func LoadGroundTruthCSV(path string) (GroundTruth, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGroundTruth, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %w", ErrGroundTruth, path, err)
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: %s: expected 2 columns, found %d", ErrGroundTruth, path, len(header))
	}

	truth := make(GroundTruth)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrGroundTruth, path, err)
		}

		query := strings.TrimSpace(row[0])
		key := strings.TrimSpace(row[1])
		if query == "" {
			return nil, fmt.Errorf("%w: %s: row with empty query", ErrGroundTruth, path)
		}
		if key == "" {
			// An empty key row declares the query with no relevant items.
			if _, ok := truth[query]; !ok {
				truth[query] = nil
			}
			continue
		}
		truth[query] = append(truth[query], key)
	}

	if len(truth) == 0 {
		return nil, fmt.Errorf("%w: %s contains no queries", ErrGroundTruth, path)
	}

	slog.Info("ground truth loaded", "path", path, "queries", len(truth))
	return truth, nil
}

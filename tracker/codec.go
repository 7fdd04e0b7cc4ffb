package tracker

import (
	"encoding/json"
	"fmt"
	"time"
)

// Wire format: a JSON array of daily records. Timestamps serialize as
// ISO-8601 strings and must round-trip losslessly, so encoding uses
// RFC3339 with nanoseconds. The decoder tolerates unknown fields and both
// absent and empty tag lists.

type problemWire struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  string   `json:"createdAt"`
}

type recordWire struct {
	Date     string        `json:"date"`
	Problems []problemWire `json:"problems"`
}

// Encode serializes the collection to its wire form.
func Encode(c Collection) ([]byte, error) {
	records := make([]recordWire, 0, len(c))
	for _, record := range c {
		problems := make([]problemWire, 0, len(record.Problems))
		for _, problem := range record.Problems {
			problems = append(problems, problemWire{
				ID:         problem.ID,
				Name:       problem.Name,
				Difficulty: string(problem.Difficulty),
				Tags:       problem.Tags,
				CreatedAt:  problem.CreatedAt.Format(time.RFC3339Nano),
			})
		}
		records = append(records, recordWire{
			Date:     record.Date.Format(time.RFC3339Nano),
			Problems: problems,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return data, nil
}

// Decode deserializes a collection from its wire form. Entries that fail
// rehydration are dropped rather than failing the whole load: a record
// with an unparseable date is skipped, as is a problem with an unparseable
// creation time or an unknown difficulty. Each drop is reported as a
// diagnostic. A malformed payload returns an error and no collection.
func Decode(data []byte) (Collection, []error, error) {
	var records []recordWire
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("unmarshal records: %w", err)
	}

	var (
		out   Collection
		diags []error
	)
	for i, record := range records {
		date, err := parseTimestamp(record.Date)
		if err != nil {
			diags = append(diags, fmt.Errorf("record %d: bad date %q: %w", i, record.Date, err))
			continue
		}

		problems := make([]Problem, 0, len(record.Problems))
		for _, problem := range record.Problems {
			createdAt, err := parseTimestamp(problem.CreatedAt)
			if err != nil {
				diags = append(diags, fmt.Errorf("problem %s: bad createdAt %q: %w", problem.ID, problem.CreatedAt, err))
				continue
			}
			difficulty := Difficulty(problem.Difficulty)
			if !difficulty.IsValid() {
				diags = append(diags, fmt.Errorf("problem %s: %w: %q", problem.ID, ErrInvalidDifficulty, problem.Difficulty))
				continue
			}
			problems = append(problems, Problem{
				ID:         problem.ID,
				Name:       problem.Name,
				Difficulty: difficulty,
				Tags:       NormalizeTags(problem.Tags),
				CreatedAt:  createdAt,
			})
		}

		// Dropping every problem leaves nothing worth keeping; the
		// non-empty record invariant holds on load.
		if len(problems) == 0 {
			if len(record.Problems) > 0 {
				diags = append(diags, fmt.Errorf("record %s: all problems dropped", record.Date))
			}
			continue
		}

		out = append(out, DailyRecord{Date: date, Problems: problems})
	}

	return out, diags, nil
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

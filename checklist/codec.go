package checklist

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/calev/grind/tracker"
)

type itemWire struct {
	ID         string `json:"id"`
	Index      int    `json:"index"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Completed  bool   `json:"completed"`
	Notes      string `json:"notes"`
}

type checklistWire struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Items     []itemWire `json:"items"`
	CreatedAt string     `json:"createdAt"`
}

// Encode serializes the checklists to their wire form.
func Encode(checklists []Checklist) ([]byte, error) {
	wires := make([]checklistWire, 0, len(checklists))
	for _, checklist := range checklists {
		items := make([]itemWire, 0, len(checklist.Items))
		for _, item := range checklist.Items {
			items = append(items, itemWire{
				ID:         item.ID,
				Index:      item.Index,
				Title:      item.Title,
				Difficulty: string(item.Difficulty),
				Completed:  item.Completed,
				Notes:      item.Notes,
			})
		}
		wires = append(wires, checklistWire{
			ID:        checklist.ID,
			Title:     checklist.Title,
			Items:     items,
			CreatedAt: checklist.CreatedAt.Format(time.RFC3339Nano),
		})
	}

	data, err := json.MarshalIndent(wires, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal checklists: %w", err)
	}
	return data, nil
}

// Decode deserializes checklists from their wire form. A checklist with an
// unparseable creation time is dropped, as is an item with an unknown
// difficulty; each drop is reported as a diagnostic. A malformed payload
// returns an error and no checklists.
func Decode(data []byte) ([]Checklist, []error, error) {
	var wires []checklistWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, nil, fmt.Errorf("unmarshal checklists: %w", err)
	}

	var (
		out   []Checklist
		diags []error
	)
	for _, wire := range wires {
		createdAt, err := time.Parse(time.RFC3339Nano, wire.CreatedAt)
		if err != nil {
			diags = append(diags, fmt.Errorf("checklist %s: bad createdAt %q: %w", wire.ID, wire.CreatedAt, err))
			continue
		}

		items := make([]Item, 0, len(wire.Items))
		for _, item := range wire.Items {
			difficulty := tracker.Difficulty(item.Difficulty)
			if !difficulty.IsValid() {
				diags = append(diags, fmt.Errorf("checklist %s item %s: %w: %q", wire.ID, item.ID, tracker.ErrInvalidDifficulty, item.Difficulty))
				continue
			}
			items = append(items, Item{
				ID:         item.ID,
				Index:      item.Index,
				Title:      item.Title,
				Difficulty: difficulty,
				Completed:  item.Completed,
				Notes:      item.Notes,
			})
		}

		out = append(out, Checklist{
			ID:        wire.ID,
			Title:     wire.Title,
			Items:     items,
			CreatedAt: createdAt,
		})
	}

	return out, diags, nil
}

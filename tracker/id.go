package tracker

import (
	"time"

	"github.com/calev/grind/internal/ids"
)

// newProblemID generates a problem ID that is unique within the collection.
func newProblemID(c Collection, name string, timestamp time.Time) string {
	for {
		id := ids.New(name, timestamp, ids.DefaultLength)
		if _, _, ok := c.FindProblem(id); !ok {
			return id
		}
	}
}

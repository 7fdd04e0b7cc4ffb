// Package checklist implements pre-generated problem checklists: a fixed
// sequence of slots grouped by difficulty, each toggleable and annotatable
// with free-form notes.
//
// Checklists share the tracker's difficulty enumeration and its blob-store
// persistence contract. Items are generated once at creation; only their
// completion state and notes change afterwards.
package checklist

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calev/grind/internal/ids"
	"github.com/calev/grind/tracker"
)

// Item is a single slot in a checklist.
type Item struct {
	// ID is a unique identifier within the checklist.
	ID string `json:"id"`

	// Index is the item's zero-based position in the full sequence at
	// creation time.
	Index int `json:"index"`

	// Title is the generated placeholder title, carrying the item's
	// ordinal within its difficulty group.
	Title string `json:"title"`

	// Difficulty is the item's difficulty bucket.
	Difficulty tracker.Difficulty `json:"difficulty"`

	// Completed reports whether the item has been checked off.
	Completed bool `json:"completed"`

	// Notes holds free-form multiline notes, stored verbatim.
	Notes string `json:"notes"`
}

// Checklist is an ordered sequence of items created in difficulty order.
type Checklist struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

// New constructs a checklist with easy+medium+hard items, appended in
// difficulty order. The title must be non-empty and at least one count
// must be positive.
func New(title string, easy, medium, hard int) (Checklist, error) {
	title = normalizeTitle(title)
	if title == "" {
		return Checklist{}, ErrEmptyTitle
	}
	if easy < 0 || medium < 0 || hard < 0 {
		return Checklist{}, ErrNegativeCount
	}
	if easy+medium+hard == 0 {
		return Checklist{}, ErrNoItems
	}

	now := time.Now()
	checklist := Checklist{
		ID:        ids.New(title, now, ids.DefaultLength),
		Title:     title,
		Items:     make([]Item, 0, easy+medium+hard),
		CreatedAt: now,
	}

	appendItems := func(count int, difficulty tracker.Difficulty) {
		for i := 0; i < count; i++ {
			checklist.Items = append(checklist.Items, Item{
				ID:         uuid.NewString(),
				Index:      len(checklist.Items),
				Title:      itemTitle(difficulty, i+1),
				Difficulty: difficulty,
			})
		}
	}
	appendItems(easy, tracker.DifficultyEasy)
	appendItems(medium, tracker.DifficultyMedium)
	appendItems(hard, tracker.DifficultyHard)

	return checklist, nil
}

// ensureUniqueID regenerates the checklist's ID until taken rejects it.
func ensureUniqueID(c Checklist, taken func(string) bool) Checklist {
	for taken(c.ID) {
		c.ID = ids.New(c.Title, c.CreatedAt, ids.DefaultLength)
	}
	return c
}

// Toggle flips the completed flag of the item with the given ID. Unknown
// IDs are a no-op; the second return reports whether an item changed.
func (c Checklist) Toggle(itemID string) (Checklist, bool) {
	return c.updateItem(itemID, func(item *Item) {
		item.Completed = !item.Completed
	})
}

// SetNotes overwrites the notes of the item with the given ID, verbatim.
// Unknown IDs are a no-op.
func (c Checklist) SetNotes(itemID, notes string) (Checklist, bool) {
	return c.updateItem(itemID, func(item *Item) {
		item.Notes = notes
	})
}

func (c Checklist) updateItem(itemID string, apply func(*Item)) (Checklist, bool) {
	for i := range c.Items {
		if c.Items[i].ID != itemID {
			continue
		}
		next := c.clone()
		apply(&next.Items[i])
		return next, true
	}
	return c, false
}

// ItemsByDifficulty returns the items in the given bucket, in sequence
// order.
func (c Checklist) ItemsByDifficulty(difficulty tracker.Difficulty) []Item {
	var out []Item
	for _, item := range c.Items {
		if item.Difficulty == difficulty {
			out = append(out, item)
		}
	}
	return out
}

func (c Checklist) clone() Checklist {
	out := c
	out.Items = append([]Item(nil), c.Items...)
	return out
}

func normalizeTitle(title string) string {
	fields := strings.Fields(title)
	return strings.Join(fields, " ")
}

func itemTitle(difficulty tracker.Difficulty, ordinal int) string {
	name := string(difficulty)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name + " Problem " + strconv.Itoa(ordinal)
}

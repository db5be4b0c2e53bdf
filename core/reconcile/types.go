package reconcile

import "strings"

// Outcome is the result of applying a single item against the store.
type Outcome string

const (
	// OutcomeInserted means the item created a new record.
	OutcomeInserted Outcome = "inserted"
	// OutcomeUpdated means the item updated an existing record in place.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means the item was ignored (e.g. a duplicate key).
	OutcomeSkipped Outcome = "skipped"
)

// ItemError describes a per-item failure that did not stop the batch.
type ItemError struct {
	// Key identifies the item (e.g. the country name).
	Key string `json:"key"`
	// Message is the underlying error text.
	Message string `json:"error"`
}

// Tally aggregates per-item outcomes of one batch.
type Tally struct {
	// Inserted counts newly created records.
	Inserted int `json:"inserted"`
	// Updated counts records updated in place.
	Updated int `json:"updated"`
	// Skipped counts items ignored as duplicates of an earlier key.
	Skipped int `json:"skipped"`
	// Failed lists the items whose processing failed.
	Failed []ItemError `json:"failed"`
}

// Processed returns the number of items that reached the store successfully.
func (t Tally) Processed() int {
	return t.Inserted + t.Updated
}

func (t *Tally) record(outcome Outcome) {
	switch outcome {
	case OutcomeInserted:
		t.Inserted++
	case OutcomeUpdated:
		t.Updated++
	case OutcomeSkipped:
		t.Skipped++
	}
}

// FoldKey normalizes a key for case-insensitive identity.
func FoldKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

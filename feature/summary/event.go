package summary

import (
	"time"

	"country-currency/feature/countries/models"
)

// Event is published after every completed refresh.
type Event struct {
	Total       int64             `json:"total"`
	Top         []models.TopEntry `json:"top"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

// Publisher accepts summary events.
type Publisher interface {
	// Publish hands off e and reports whether it was accepted.
	Publish(e Event) bool
}

// PublisherFunc adapts a plain function to Publisher.
type PublisherFunc func(e Event) bool

// Publish calls f.
func (f PublisherFunc) Publish(e Event) bool {
	return f(e)
}

// Discard drops every event.
var Discard Publisher = PublisherFunc(func(Event) bool { return false })

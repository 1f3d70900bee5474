package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rating bounds enforced by the input widget; the handler re-checks them at
// the API boundary.
const (
	RatingMin     = 1
	RatingMax     = 5
	RatingDefault = 3
)

// FeedbackEntry is a single explicit submission. Name and Comment are
// optional. Nothing is stored: the entry exists only long enough to be
// acknowledged.
type FeedbackEntry struct {
	Rating  int    `json:"rating"`
	Name    string `json:"name,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Validate checks the rating against the widget bounds.
func (e FeedbackEntry) Validate() error {
	if e.Rating < RatingMin || e.Rating > RatingMax {
		return fmt.Errorf("rating %d out of range [%d,%d]", e.Rating, RatingMin, RatingMax)
	}
	return nil
}

// Acknowledgment echoes a submission back to the user. Name and Comment are
// echoed only when non-empty.
type Acknowledgment struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Rating     int       `json:"rating"`
	Name       string    `json:"name,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// Acknowledge builds the echo for a submitted entry. The entry is discarded
// once the acknowledgment is rendered.
func Acknowledge(e FeedbackEntry) Acknowledgment {
	return Acknowledgment{
		ID:         uuid.NewString(),
		Message:    "Thank you for your feedback!",
		Rating:     e.Rating,
		Name:       e.Name,
		Comment:    e.Comment,
		ReceivedAt: clock.Now(),
	}
}

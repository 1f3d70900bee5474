package view

import "github.com/ktpham/nuclear-explorer/internal/domain"

// FeedbackForm describes the feedback section's inputs. It is independent of
// the dataset and the filters entirely; submissions go through the feedback
// endpoint, not through a renderer.
type FeedbackForm struct {
	Prompt        string `json:"prompt"`
	RatingMin     int    `json:"rating_min"`
	RatingMax     int    `json:"rating_max"`
	RatingDefault int    `json:"rating_default"`
	NameOptional  bool   `json:"name_optional"`
}

func renderFeedback(_ domain.Dataset, _ *domain.Summary, _ domain.Criteria) any {
	return FeedbackForm{
		Prompt:        "How useful is this tool?",
		RatingMin:     domain.RatingMin,
		RatingMax:     domain.RatingMax,
		RatingDefault: domain.RatingDefault,
		NameOptional:  true,
	}
}

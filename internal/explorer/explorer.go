// Package explorer runs the per-interaction pipeline: filter the loaded
// dataset, summarize the result, render the selected section. The Explorer
// owns the Dataset handle explicitly; there is no ambient global state.
package explorer

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/ktpham/nuclear-explorer/internal/domain"
	"github.com/ktpham/nuclear-explorer/internal/observability"
	"github.com/ktpham/nuclear-explorer/internal/view"
)

const (
	title       = "Nuclear Explosions Explorer"
	description = "Explore historical nuclear test data by country, depth, purpose, and type."
)

// Session defaults restored from the original dashboard.
var (
	defaultCountries = []string{"USA", "USSR"}
	defaultYearLo    = 1960
	defaultYearHi    = 1980
)

// Explorer serves a loaded dataset to stateless view requests. The dataset is
// immutable after construction and safe to share across requests; criteria
// live per request.
type Explorer struct {
	data    domain.Dataset
	dropped int
	loadErr error
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates an Explorer over an already-loaded dataset. A failed load is
// passed in as an empty dataset plus its error; the session stays up and the
// error surfaces through Status.
func New(data domain.Dataset, dropped int, loadErr error, logger *slog.Logger, metrics *observability.Metrics) *Explorer {
	e := &Explorer{
		data:    data,
		dropped: dropped,
		loadErr: loadErr,
		logger:  logger,
		metrics: metrics,
	}

	metrics.DatasetRows.Set(float64(len(data)))
	metrics.DatasetRowsDropped.Set(float64(dropped))
	if loadErr == nil {
		metrics.DatasetLoaded.Set(1)
	} else {
		metrics.DatasetLoaded.Set(0)
	}

	// The load attempt has completed either way; the session can serve.
	e.ready.Store(true)
	return e
}

// CheckReadiness reports whether the initial load attempt has completed.
func (e *Explorer) CheckReadiness(_ context.Context) error {
	if !e.ready.Load() {
		return errors.New("dataset load has not completed yet")
	}
	return nil
}

// Dataset returns the full loaded dataset. Callers must treat it as read-only.
func (e *Explorer) Dataset() domain.Dataset { return e.data }

// Status describes the session for the front-end's header and error banner.
type Status struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	RowsDropped int    `json:"rows_dropped"`
	LoadError   string `json:"load_error,omitempty"`
}

// Status returns the session descriptor, including the load error when the
// session is serving the empty fallback dataset.
func (e *Explorer) Status() Status {
	s := Status{
		Title:       title,
		Description: description,
		Rows:        len(e.data),
		RowsDropped: e.dropped,
	}
	if e.loadErr != nil {
		s.LoadError = "Error loading data: " + e.loadErr.Error()
	}
	return s
}

// FilterOptions drives the sidebar controls: available countries and
// categories plus the year slider bounds.
type FilterOptions struct {
	Countries  []string        `json:"countries"`
	Categories []string        `json:"categories"` // "All" sentinel first, rest sorted
	MinYear    int             `json:"min_year"`
	MaxYear    int             `json:"max_year"`
	Defaults   domain.Criteria `json:"defaults"`
	Sections   []view.Section  `json:"sections"`
}

// Options derives the selectable filter values from the dataset. Countries
// keep first-encountered order; categories are sorted behind the sentinel.
func (e *Explorer) Options() FilterOptions {
	var countries []string
	seenCountry := make(map[string]struct{})
	seenCategory := make(map[string]struct{})
	var categories []string
	for _, r := range e.data {
		if _, ok := seenCountry[r.Country]; !ok {
			seenCountry[r.Country] = struct{}{}
			countries = append(countries, r.Country)
		}
		if _, ok := seenCategory[r.Category]; !ok {
			seenCategory[r.Category] = struct{}{}
			categories = append(categories, r.Category)
		}
	}
	sort.Strings(categories)

	minYear, maxYear := e.yearBounds()
	return FilterOptions{
		Countries:  countries,
		Categories: append([]string{domain.AllCategories}, categories...),
		MinYear:    minYear,
		MaxYear:    maxYear,
		Defaults:   e.DefaultCriteria(),
		Sections:   view.Sections(),
	}
}

// DefaultCriteria restores the original session defaults (USA and USSR,
// 1960–1980, all categories, no search), clamped to the dataset's year span.
func (e *Explorer) DefaultCriteria() domain.Criteria {
	lo, hi := defaultYearLo, defaultYearHi
	if minYear, maxYear := e.yearBounds(); minYear != 0 {
		if lo < minYear {
			lo = minYear
		}
		if hi > maxYear {
			hi = maxYear
		}
	}
	return domain.Criteria{
		Countries:  append([]string(nil), defaultCountries...),
		YearLo:     lo,
		YearHi:     hi,
		Categories: []string{domain.AllCategories},
	}
}

func (e *Explorer) yearBounds() (int, int) {
	if len(e.data) == 0 {
		return 0, 0
	}
	minYear, maxYear := e.data[0].Year, e.data[0].Year
	for _, r := range e.data {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	return minYear, maxYear
}

// Explore runs filter and summarize for one interaction.
func (e *Explorer) Explore(c domain.Criteria) (domain.Dataset, *domain.Summary) {
	start := time.Now()
	filtered := domain.Filter(e.data, c)
	sum := domain.Summarize(filtered)

	e.metrics.FilterRequests.Inc()
	e.metrics.RequestDuration.Observe(time.Since(start).Seconds())
	if sum == nil {
		e.metrics.EmptyResults.Inc()
		e.logger.Debug("no data matches the selected filters",
			"countries", c.Countries, "year_lo", c.YearLo, "year_hi", c.YearHi)
	}
	return filtered, sum
}

// RenderSection runs the full pipeline for one section selection.
// Returns view.ErrUnknownSection for a section outside the catalog.
func (e *Explorer) RenderSection(s view.Section, c domain.Criteria) (any, error) {
	filtered, sum := e.Explore(c)
	model, err := view.Render(s, filtered, sum, c)
	if err != nil {
		return nil, err
	}
	e.metrics.ViewRenders.WithLabelValues(string(s)).Inc()
	return model, nil
}

// Summarize runs filter and summarize only, for the sidebar summary panel.
func (e *Explorer) Summarize(c domain.Criteria) *domain.Summary {
	_, sum := e.Explore(c)
	return sum
}

// SubmitFeedback validates and acknowledges one explicit submission.
// Nothing is persisted.
func (e *Explorer) SubmitFeedback(entry domain.FeedbackEntry) (domain.Acknowledgment, error) {
	if err := entry.Validate(); err != nil {
		return domain.Acknowledgment{}, err
	}
	ack := domain.Acknowledge(entry)
	e.metrics.FeedbackSubmissions.Inc()
	e.logger.Info("feedback received", "rating", entry.Rating, "id", ack.ID)
	return ack, nil
}

// Package view renders filtered datasets into the five dashboard sections.
// Each renderer is pure: it consumes a filtered view and its summary and
// produces a JSON-serializable view model for the front-end to draw. No
// renderer mutates the dataset or the criteria.
package view

import (
	"errors"

	"github.com/ktpham/nuclear-explorer/internal/domain"
)

// Section identifies one dashboard section.
type Section string

const (
	SectionOverview Section = "overview"
	SectionCharts   Section = "charts"
	SectionMap      Section = "map"
	SectionDetails  Section = "details"
	SectionFeedback Section = "feedback"
)

// ErrUnknownSection is returned by Render for a section outside the catalog.
var ErrUnknownSection = errors.New("unknown section")

// Renderer produces a section's view model from the current filtered view,
// its summary (nil when the view is empty), and the active criteria.
type Renderer func(view domain.Dataset, sum *domain.Summary, c domain.Criteria) any

// renderers is the section dispatch table. One handler per variant; no
// branching chain.
var renderers = map[Section]Renderer{
	SectionOverview: renderOverview,
	SectionCharts:   renderCharts,
	SectionMap:      renderMap,
	SectionDetails:  renderDetails,
	SectionFeedback: renderFeedback,
}

// Sections lists the selectable sections in display order.
func Sections() []Section {
	return []Section{SectionOverview, SectionCharts, SectionMap, SectionDetails, SectionFeedback}
}

// Render dispatches to the renderer for s.
func Render(s Section, view domain.Dataset, sum *domain.Summary, c domain.Criteria) (any, error) {
	r, ok := renderers[s]
	if !ok {
		return nil, ErrUnknownSection
	}
	return r(view, sum, c), nil
}

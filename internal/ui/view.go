// Package ui models the presentation state of the records screen: the
// list/detail view machine, the per-row charge breakdown toggles and the
// delete-confirmation gate. The embedded browser UI mirrors these rules; the
// package keeps them explicit and testable.
package ui

import (
	"github.com/dormledger/dormledger/internal/tenant"
)

// ViewState is the mutually exclusive screen state.
type ViewState int

const (
	// StateListing shows the searchable tenant list.
	StateListing ViewState = iota
	// StateViewingDetail shows one tenant's printable record instead of the list.
	StateViewingDetail
)

// Controller holds the list/search/detail state.
type Controller struct {
	state    ViewState
	detailID string
	query    string
	expanded map[string]bool
}

// NewController starts in the listing state with no filter.
func NewController() *Controller {
	return &Controller{
		state:    StateListing,
		expanded: make(map[string]bool),
	}
}

// State reports the current screen state.
func (c *Controller) State() ViewState {
	return c.state
}

// DetailID returns the tenant whose record is open, or "" when listing.
func (c *Controller) DetailID() string {
	if c.state != StateViewingDetail {
		return ""
	}
	return c.detailID
}

// SetQuery updates the search filter.
func (c *Controller) SetQuery(query string) {
	c.query = query
}

// Query returns the current search filter.
func (c *Controller) Query() string {
	return c.query
}

// Visible filters the collection by the current query, matching name or room
// number case-insensitively.
func (c *Controller) Visible(tenants []tenant.Tenant) []tenant.Tenant {
	return tenant.Filter(tenants, c.query)
}

// ToggleBreakdown flips the inline charge breakdown for one row and reports
// whether it is now shown.
func (c *Controller) ToggleBreakdown(id string) bool {
	if c.expanded == nil {
		c.expanded = make(map[string]bool)
	}
	c.expanded[id] = !c.expanded[id]
	return c.expanded[id]
}

// BreakdownShown reports whether a row's breakdown is expanded.
func (c *Controller) BreakdownShown(id string) bool {
	return c.expanded[id]
}

// OpenDetail replaces the list with one tenant's record view.
func (c *Controller) OpenDetail(id string) {
	c.state = StateViewingDetail
	c.detailID = id
}

// CloseDetail returns to the listing.
func (c *Controller) CloseDetail() {
	c.state = StateListing
	c.detailID = ""
}

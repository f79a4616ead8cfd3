package models

import (
	"fmt"
	"strings"
)

// DepthMode selects which depths a discovery query returns.
type DepthMode string

// Depth modes: everyone within max depth, or only the exact level.
const (
	DepthUpTo   DepthMode = "up_to"
	DepthOnlyAt DepthMode = "only_at"
)

// ParseDepthMode parses a depth mode string case-insensitively. An empty
// string defaults to up_to.
func ParseDepthMode(s string) (DepthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "up_to", "upto":
		return DepthUpTo, nil
	case "only_at", "onlyat", "exact":
		return DepthOnlyAt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDepthMode, s)
	}
}

// DiscoveryFilter holds the optional attribute predicates applied to
// discovered persons. Filters never affect traversal reachability — a
// filtered-out person can still be an intermediate hop.
type DiscoveryFilter struct {
	AliveOnly bool   `json:"alive_only,omitempty"`
	Gender    Gender `json:"gender,omitempty"`

	// Address hierarchy levels. Each given level must match exactly;
	// omitted levels are ignored.
	CountryID     string `json:"country_id,omitempty"`
	StateID       string `json:"state_id,omitempty"`
	DistrictID    string `json:"district_id,omitempty"`
	SubDistrictID string `json:"sub_district_id,omitempty"`
	LocalityID    string `json:"locality_id,omitempty"`
}

// Empty reports whether no predicate is set.
func (f DiscoveryFilter) Empty() bool {
	return !f.AliveOnly && f.Gender == "" &&
		f.CountryID == "" && f.StateID == "" && f.DistrictID == "" &&
		f.SubDistrictID == "" && f.LocalityID == ""
}

// NeedsAddress reports whether evaluating the filter requires the
// person's address record.
func (f DiscoveryFilter) NeedsAddress() bool {
	return f.CountryID != "" || f.StateID != "" || f.DistrictID != "" ||
		f.SubDistrictID != "" || f.LocalityID != ""
}

// Matches evaluates the filter against a person and their address. addr
// may be nil; address predicates then fail since they cannot be verified.
func (f DiscoveryFilter) Matches(p *Person, addr *Address) bool {
	if f.AliveOnly && !p.Alive() {
		return false
	}

	if f.Gender != "" && p.Gender != f.Gender {
		return false
	}

	if !f.NeedsAddress() {
		return true
	}

	if addr == nil {
		return false
	}

	for _, pair := range [][2]string{
		{f.CountryID, addr.CountryID},
		{f.StateID, addr.StateID},
		{f.DistrictID, addr.DistrictID},
		{f.SubDistrictID, addr.SubDistrictID},
		{f.LocalityID, addr.LocalityID},
	} {
		if pair[0] != "" && pair[0] != pair[1] {
			return false
		}
	}

	return true
}

// Relative is one enriched discovery result row.
type Relative struct {
	PersonID   string `json:"person_id"`
	Depth      int    `json:"depth"`
	FullName   string `json:"full_name"`
	Gender     Gender `json:"gender,omitempty"`
	Alive      bool   `json:"alive"`
	YearsAlive int    `json:"years_alive,omitempty"`
	Location   string `json:"location,omitempty"`
}

// DiscoverResult is the externally facing discovery response.
// TotalCount is the post-filter, pre-truncation match count so callers
// can tell when the result cap bit.
type DiscoverResult struct {
	Relatives  []Relative `json:"relatives"`
	TotalCount int        `json:"total_count"`
}

// PathStep is one node on a connection path. IncomingKind labels the
// relationship traversed to reach this person from the previous step; it
// is empty on the first step.
type PathStep struct {
	PersonID     string       `json:"person_id"`
	IncomingKind RelationKind `json:"incoming_kind,omitempty"`
	FullName     string       `json:"full_name,omitempty"`
}

// PathResult is the externally facing connection response. Trivial marks
// the degenerate from==to case, which is reported as no meaningful
// connection rather than a found one.
type PathResult struct {
	ConnectionFound bool       `json:"connection_found"`
	Trivial         bool       `json:"trivial,omitempty"`
	Path            []PathStep `json:"path"`
	PersonCount     int        `json:"person_count"`
}

package client

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// DiscoverOptions controls a relative discovery query. The zero value
// asks for direct relatives only with no filters.
type DiscoverOptions struct {
	// Depth is the traversal depth; the server clamps it to its
	// configured ceiling. Zero means 1.
	Depth int

	// Mode is "up_to" (default) or "only_at".
	Mode string

	// AliveOnly excludes deceased persons from the result.
	AliveOnly bool

	// Gender filters by recorded gender ("male", "female", "unknown").
	Gender string

	// Address hierarchy filters; each set level must match exactly.
	CountryID     string
	StateID       string
	DistrictID    string
	SubDistrictID string
	LocalityID    string
}

// Relative is one enriched discovery result row.
type Relative struct {
	PersonID   string `json:"person_id"`
	Depth      int    `json:"depth"`
	FullName   string `json:"full_name"`
	Gender     string `json:"gender,omitempty"`
	Alive      bool   `json:"alive"`
	YearsAlive int    `json:"years_alive,omitempty"`
	Location   string `json:"location,omitempty"`
}

// DiscoverResult is the discovery response. TotalCount may exceed
// len(Relatives) when the server's result cap truncated the list.
type DiscoverResult struct {
	Relatives  []Relative `json:"relatives"`
	TotalCount int        `json:"total_count"`
}

// PathStep is one node on a connection path.
type PathStep struct {
	PersonID     string `json:"person_id"`
	IncomingKind string `json:"incoming_kind,omitempty"`
	FullName     string `json:"full_name,omitempty"`
}

// PathResult is the connection path response.
type PathResult struct {
	ConnectionFound bool       `json:"connection_found"`
	Trivial         bool       `json:"trivial,omitempty"`
	Path            []PathStep `json:"path"`
	PersonCount     int        `json:"person_count"`
}

package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// KinshipService handles relative discovery and connection path queries.
type KinshipService struct {
	c *Client
}

// Relatives discovers a person's relatives up to the requested depth.
func (s *KinshipService) Relatives(ctx context.Context, personID string, opts DiscoverOptions) (*DiscoverResult, error) {
	params := url.Values{}
	if opts.Depth > 0 {
		params.Set("depth", strconv.Itoa(opts.Depth))
	}
	if opts.Mode != "" {
		params.Set("mode", opts.Mode)
	}
	if opts.AliveOnly {
		params.Set("alive", "true")
	}
	if opts.Gender != "" {
		params.Set("gender", opts.Gender)
	}
	for key, val := range map[string]string{
		"country_id":      opts.CountryID,
		"state_id":        opts.StateID,
		"district_id":     opts.DistrictID,
		"sub_district_id": opts.SubDistrictID,
		"locality_id":     opts.LocalityID,
	} {
		if val != "" {
			params.Set(key, val)
		}
	}

	var resp DiscoverResult
	if err := s.c.get(ctx, "/api/v1/persons/"+url.PathEscape(personID)+"/relatives", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Path finds the shortest labeled connection between two persons.
func (s *KinshipService) Path(ctx context.Context, fromID, toID string) (*PathResult, error) {
	path := fmt.Sprintf("/api/v1/path/%s/%s", url.PathEscape(fromID), url.PathEscape(toID))
	var resp PathResult
	if err := s.c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

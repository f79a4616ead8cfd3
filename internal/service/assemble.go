package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kinshiphq/kinship/internal/graph"
	"github.com/kinshiphq/kinship/internal/models"
)

// isSoftLookupMiss reports whether an enrichment error is a tolerated
// per-person miss rather than an infrastructure failure.
func isSoftLookupMiss(err error) bool {
	return errors.Is(err, models.ErrPersonNotFound) || errors.Is(err, models.ErrAddressNotFound)
}

// enriched pairs a discovered person with its resolved records. person
// and addr stay nil on lookup misses, which are tolerated per the
// partial-failure policy.
type enriched struct {
	id     string
	depth  int
	person *models.Person
	addr   *models.Address
}

// lookupPersons resolves person records (and, when withAddr is set,
// address records) concurrently. Lookup misses leave nil entries;
// infrastructure errors abort the whole query.
func (s *KinshipService) lookupPersons(ctx context.Context, rows []*enriched, withAddr bool) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limits.EnrichWorkers)

	for _, row := range rows {
		g.Go(func() error {
			p, err := s.persons.LookupPerson(gctx, row.id)
			switch {
			case err == nil:
				row.person = p
			case isSoftLookupMiss(err):
			default:
				return err
			}

			if !withAddr || row.person == nil {
				return nil
			}

			a, err := s.persons.LookupAddress(gctx, row.id)
			switch {
			case err == nil:
				row.addr = a
			case isSoftLookupMiss(err):
			default:
				return err
			}

			return nil
		})
	}

	return g.Wait()
}

// assembleDiscovery enriches the raw depth map into the final ordered,
// capped response. Sorting precedes truncation so that when more
// matches exist than the cap, the closest relatives are the ones
// surfaced.
func (s *KinshipService) assembleDiscovery(ctx context.Context, depths map[string]int, filter models.DiscoveryFilter) (*models.DiscoverResult, error) {
	rows := make([]*enriched, 0, len(depths))
	for id, d := range depths {
		rows = append(rows, &enriched{id: id, depth: d})
	}

	// Address records are only needed pre-cap when an address predicate
	// must be evaluated; otherwise they are fetched for the survivors.
	if err := s.lookupPersons(ctx, rows, filter.NeedsAddress()); err != nil {
		return nil, err
	}

	filtered := rows[:0]

	for _, row := range rows {
		if row.person == nil {
			// No record to test a predicate against: with filters active
			// the person is excluded, without them it is kept with empty
			// display fields.
			if filter.Empty() {
				filtered = append(filtered, row)
			}

			continue
		}

		if filter.Matches(row.person, row.addr) {
			filtered = append(filtered, row)
		}
	}

	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].depth != filtered[j].depth {
			return filtered[i].depth < filtered[j].depth
		}

		ni, nj := "", ""
		if filtered[i].person != nil {
			ni = filtered[i].person.FullName()
		}
		if filtered[j].person != nil {
			nj = filtered[j].person.FullName()
		}

		if ni != nj {
			return ni < nj
		}

		return filtered[i].id < filtered[j].id
	})

	if len(filtered) > s.limits.ResultCap {
		filtered = filtered[:s.limits.ResultCap]
	}

	// Location display for the capped survivors that don't have their
	// address yet.
	if !filter.NeedsAddress() {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.limits.EnrichWorkers)

		for _, row := range filtered {
			if row.person == nil {
				continue
			}

			g.Go(func() error {
				a, err := s.persons.LookupAddress(gctx, row.id)
				switch {
				case err == nil:
					row.addr = a
				case isSoftLookupMiss(err):
				default:
					return err
				}

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	relatives := make([]models.Relative, 0, len(filtered))

	for _, row := range filtered {
		r := models.Relative{PersonID: row.id, Depth: row.depth}

		if row.person != nil {
			r.FullName = row.person.FullName()
			r.Gender = row.person.Gender
			r.Alive = row.person.Alive()
			r.YearsAlive = row.person.YearsAlive(now)
		}

		if row.addr != nil {
			r.Location = row.addr.Summary()
		}

		relatives = append(relatives, r)
	}

	return &models.DiscoverResult{Relatives: relatives, TotalCount: total}, nil
}

// assemblePath enriches every node on a found path in one pass. Paths
// are naturally bounded by the endpoint distance, so there is no cap.
func (s *KinshipService) assemblePath(ctx context.Context, p *graph.Path) (*models.PathResult, error) {
	steps := make([]models.PathStep, len(p.Steps))
	rows := make([]*enriched, len(p.Steps))

	for i, st := range p.Steps {
		steps[i] = models.PathStep{PersonID: st.ID, IncomingKind: st.IncomingKind}
		rows[i] = &enriched{id: st.ID}
	}

	if err := s.lookupPersons(ctx, rows, false); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if row.person != nil {
			steps[i].FullName = row.person.FullName()
		}
	}

	return &models.PathResult{
		ConnectionFound: p.Found,
		Trivial:         p.Trivial,
		Path:            steps,
		PersonCount:     len(steps),
	}, nil
}

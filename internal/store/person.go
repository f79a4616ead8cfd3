package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kinshiphq/kinship/internal/models"
)

// PersonStore resolves person and address records for enrichment.
type PersonStore struct {
	Base
}

// NewPersonStore creates a PersonStore with the given shared base.
func NewPersonStore(base Base) *PersonStore {
	return &PersonStore{Base: base}
}

// LookupPerson returns a person by ID, or models.ErrPersonNotFound.
func (s *PersonStore) LookupPerson(ctx context.Context, personID string) (*models.Person, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, personID)

	p, err := scanPerson(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPersonNotFound
		}

		return nil, fmt.Errorf("scanning person: %w", err)
	}

	return p, nil
}

// LookupAddress returns the person's address with its location hierarchy
// names resolved, or models.ErrAddressNotFound when the person has no
// address record.
func (s *PersonStore) LookupAddress(ctx context.Context, personID string) (*models.Address, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	sql := `SELECT ` + addressColumns + `
		FROM persons p
		JOIN addresses a ON a.id = p.address_id
		LEFT JOIN locations co ON co.id = a.country_id
		LEFT JOIN locations st ON st.id = a.state_id
		LEFT JOIN locations di ON di.id = a.district_id
		LEFT JOIN locations sd ON sd.id = a.sub_district_id
		LEFT JOIN locations lo ON lo.id = a.locality_id
		WHERE p.id = $1`

	row := s.Pool.QueryRow(ctx, sql, personID)

	a, err := scanAddress(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAddressNotFound
		}

		return nil, fmt.Errorf("scanning address: %w", err)
	}

	return a, nil
}

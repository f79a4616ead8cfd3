package store

import (
	"time"

	"github.com/kinshiphq/kinship/internal/models"
)

// personColumns lists the columns selected for person queries.
const personColumns = `id, first_name, last_name, gender, birth_date,
	death_date, address_id, religion_id, created_at, updated_at`

// edgeColumns lists the columns selected for relationship queries.
const edgeColumns = `source_id, target_id, kind`

// addressColumns lists the columns selected for address queries, joined
// across the five location levels.
const addressColumns = `a.id, a.country_id, a.state_id, a.district_id,
	a.sub_district_id, a.locality_id,
	COALESCE(co.name, ''), COALESCE(st.name, ''), COALESCE(di.name, ''),
	COALESCE(sd.name, ''), COALESCE(lo.name, '')`

// scanPerson scans a single row into a models.Person.
func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	var p models.Person
	var gender string
	var birthDate, deathDate *time.Time
	var addressID, religionID *string

	err := scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&gender,
		&birthDate,
		&deathDate,
		&addressID,
		&religionID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Gender = models.ParseGender(gender)
	p.BirthDate = birthDate
	p.DeathDate = deathDate
	p.AddressID = addressID
	p.ReligionID = religionID

	return &p, nil
}

// scanEdge scans a single row into a models.RelationshipEdge.
func scanEdge(scan func(dest ...any) error) (*models.RelationshipEdge, error) {
	var e models.RelationshipEdge
	var kind string

	if err := scan(&e.Source, &e.Target, &kind); err != nil {
		return nil, err
	}

	e.Kind = models.RelationKind(kind)

	return &e, nil
}

// scanAddress scans a single row into a models.Address.
func scanAddress(scan func(dest ...any) error) (*models.Address, error) {
	var a models.Address

	err := scan(
		&a.ID,
		&a.CountryID,
		&a.StateID,
		&a.DistrictID,
		&a.SubDistrictID,
		&a.LocalityID,
		&a.Country,
		&a.State,
		&a.District,
		&a.SubDistrict,
		&a.Locality,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

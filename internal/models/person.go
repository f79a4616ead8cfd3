// Package models defines the domain types shared across the kinship
// engine, store, service, and API layers.
package models

import (
	"strings"
	"time"
)

// Gender is a person's recorded gender, used to pick gendered
// relationship labels (son vs daughter, father vs mother).
type Gender string

// Recognized gender values. Anything else normalizes to GenderUnknown,
// which falls back to the generic parent/child/spouse labels.
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// ParseGender normalizes a stored or user-supplied gender string.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// Person is a read-only view of a person record. The kinship engine
// never creates, mutates, or deletes persons; lifecycle belongs to the
// external person-management system.
type Person struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Gender     Gender     `json:"gender"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	DeathDate  *time.Time `json:"death_date,omitempty"`
	AddressID  *string    `json:"address_id,omitempty"`
	ReligionID *string    `json:"religion_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FullName joins the name parts, tolerating either being empty.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Alive reports whether the person has no recorded death date.
func (p *Person) Alive() bool {
	return p.DeathDate == nil
}

// YearsAlive returns whole years from birth to death (if deceased) or to
// now. Returns 0 when the birth date is unknown.
func (p *Person) YearsAlive(now time.Time) int {
	if p.BirthDate == nil {
		return 0
	}

	end := now
	if p.DeathDate != nil {
		end = *p.DeathDate
	}

	years := end.Year() - p.BirthDate.Year()
	if end.YearDay() < p.BirthDate.YearDay() {
		years--
	}

	if years < 0 {
		return 0
	}

	return years
}

// Address is a read-only view of a person's address record with its
// five-level location hierarchy.
type Address struct {
	ID            string `json:"id"`
	CountryID     string `json:"country_id"`
	StateID       string `json:"state_id"`
	DistrictID    string `json:"district_id"`
	SubDistrictID string `json:"sub_district_id"`
	LocalityID    string `json:"locality_id"`
	Country       string `json:"country"`
	State         string `json:"state"`
	District      string `json:"district"`
	SubDistrict   string `json:"sub_district"`
	Locality      string `json:"locality"`
}

// Summary renders the location as a display string, most specific level
// first, skipping empty levels.
func (a *Address) Summary() string {
	parts := make([]string, 0, 5)

	for _, s := range []string{a.Locality, a.SubDistrict, a.District, a.State, a.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, ", ")
}

package models

import "fmt"

// RelationKind labels a relationship edge. Stored edges carry only the
// closed set of gendered kinds; the generic parent/child labels appear
// solely on derived inverse entries when the gender needed for a
// specific label is unknown.
type RelationKind string

// Storable relationship kinds. An edge (source, target, kind) reads
// "target is source's <kind>".
const (
	KindFather   RelationKind = "father"
	KindMother   RelationKind = "mother"
	KindSon      RelationKind = "son"
	KindDaughter RelationKind = "daughter"
	KindWife     RelationKind = "wife"
	KindHusband  RelationKind = "husband"
	KindSpouse   RelationKind = "spouse"
)

// Derived-only labels, never valid on stored edges.
const (
	KindParent RelationKind = "parent"
	KindChild  RelationKind = "child"
)

// Valid reports whether the kind is storable.
func (k RelationKind) Valid() bool {
	switch k {
	case KindFather, KindMother, KindSon, KindDaughter, KindWife, KindHusband, KindSpouse:
		return true
	default:
		return false
	}
}

// Inverse returns the label for the reverse direction of an edge, given
// the gender of the person the reverse entry points back to (the stored
// edge's source). A father/mother edge inverts to son/daughter by that
// person's gender; son/daughter inverts to father/mother; all marriage
// kinds invert to the symmetric spouse.
func (k RelationKind) Inverse(sourceGender Gender) (RelationKind, error) {
	switch k {
	case KindFather, KindMother:
		switch sourceGender {
		case GenderMale:
			return KindSon, nil
		case GenderFemale:
			return KindDaughter, nil
		default:
			return KindChild, nil
		}
	case KindSon, KindDaughter:
		switch sourceGender {
		case GenderMale:
			return KindFather, nil
		case GenderFemale:
			return KindMother, nil
		default:
			return KindParent, nil
		}
	case KindWife, KindHusband, KindSpouse:
		return KindSpouse, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrMalformedEdge, string(k))
	}
}

// RelationshipEdge is a read-only view of one stored relationship row.
// Edges are directional and the storage layer may or may not materialize
// the inverse row; normalization always derives it.
type RelationshipEdge struct {
	Source string       `json:"source"`
	Target string       `json:"target"`
	Kind   RelationKind `json:"kind"`
}

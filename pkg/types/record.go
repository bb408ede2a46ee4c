// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RecordType classifies a research record by publication venue.
type RecordType string

const (
	TypeJournal    RecordType = "Journal"
	TypeConference RecordType = "Conference"
	TypeBook       RecordType = "Book"
)

// KnownTypes lists the record types the catalog recognizes by default, in
// display order.
var KnownTypes = []RecordType{TypeJournal, TypeConference, TypeBook}

// DisplayKeywordLimit is the number of keywords shown alongside a record.
const DisplayKeywordLimit = 3

// ResearchRecord is one immutable entry in the catalog. Records are created
// once when the catalog loads and never mutated afterwards.
type ResearchRecord struct {
	// ID is a unique positive identifier.
	ID int `json:"id" yaml:"id"`

	// Title is the record title.
	Title string `json:"title" yaml:"title"`

	// Authors is the author line as displayed (e.g. "Smith, J.; Lee, A.").
	Authors string `json:"authors" yaml:"authors"`

	// Abstract summarizes the record.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Type is the venue classification.
	Type RecordType `json:"type" yaml:"type"`

	// Subjects is the set of subject tags. Order carries no meaning.
	Subjects []string `json:"subjects" yaml:"subjects"`

	// Keywords is the ordered keyword list used for scoring and display.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Link is an opaque reference used only by rendering.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Image is an opaque cover reference used only by rendering.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// DisplayKeywords returns at most DisplayKeywordLimit leading keywords.
func (r ResearchRecord) DisplayKeywords() []string {
	if len(r.Keywords) <= DisplayKeywordLimit {
		return r.Keywords
	}
	return r.Keywords[:DisplayKeywordLimit]
}

// HasSubject reports whether the record carries any subject in subjects.
func (r ResearchRecord) HasSubject(subjects map[string]bool) bool {
	for _, s := range r.Subjects {
		if subjects[s] {
			return true
		}
	}
	return false
}

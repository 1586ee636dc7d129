package domain

import "time"

// NoReference is the surrogate id of a course that does not refer to any
// record in a category. It never matches a reference.
const NoReference = -1

// Course is a fact record as it is stored, referencing the category
// collections by surrogate id.
type Course struct {
	ID                string    `json:"_id,omitempty"`
	UniversityID      int       `json:"UniversityID"`
	CityID            int       `json:"CityID"`
	CountryID         int       `json:"CountryID"`
	CourseName        string    `json:"CourseName"`
	CourseDescription string    `json:"CourseDescription"`
	StartDate         string    `json:"StartDate"`
	EndDate           string    `json:"EndDate"`
	Price             float64   `json:"Price"`
	CurrencyID        int       `json:"CurrencyID"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CategoryID returns the surrogate id the course holds for category c.
func (c Course) CategoryID(cat Category) int {
	switch cat {
	case University:
		return c.UniversityID
	case City:
		return c.CityID
	case Country:
		return c.CountryID
	case Currency:
		return c.CurrencyID
	}
	return NoReference
}

// EnrichedCourse is the display form of a Course where every surrogate id
// has been replaced by the text it refers to.
type EnrichedCourse struct {
	ID                string    `json:"_id"`
	University        string    `json:"University"`
	City              string    `json:"City"`
	Country           string    `json:"Country"`
	CourseName        string    `json:"CourseName"`
	CourseDescription string    `json:"CourseDescription"`
	StartDate         string    `json:"StartDate"`
	EndDate           string    `json:"EndDate"`
	Price             float64   `json:"Price"`
	Currency          string    `json:"Currency"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CoursePatch carries the optional course fields accepted on create and update.
// A nil field is absent.
type CoursePatch struct {
	UniversityID      *int     `json:"UniversityID,omitempty"`
	CityID            *int     `json:"CityID,omitempty"`
	CountryID         *int     `json:"CountryID,omitempty"`
	CourseName        *string  `json:"CourseName,omitempty"`
	CourseDescription *string  `json:"CourseDescription,omitempty"`
	StartDate         *string  `json:"StartDate,omitempty"`
	EndDate           *string  `json:"EndDate,omitempty"`
	Price             *float64 `json:"Price,omitempty"`
	CurrencyID        *int     `json:"CurrencyID,omitempty"`
}

func (p CoursePatch) IsEmpty() bool {
	return p.UniversityID == nil && p.CityID == nil && p.CountryID == nil &&
		p.CourseName == nil && p.CourseDescription == nil &&
		p.StartDate == nil && p.EndDate == nil &&
		p.Price == nil && p.CurrencyID == nil
}

// Reference maps a surrogate id to the category text it was assigned to.
type Reference struct {
	ID        int       `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

package persistence

import (
	"time"

	"github.com/diwise/api-courses/internal/pkg/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//Course is the stored form of a course in the fact collection
type Course struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UniversityID      *int               `bson:"UniversityID,omitempty"`
	CityID            *int               `bson:"CityID,omitempty"`
	CountryID         *int               `bson:"CountryID,omitempty"`
	CourseName        string             `bson:"CourseName"`
	CourseDescription string             `bson:"CourseDescription"`
	StartDate         string             `bson:"StartDate"`
	EndDate           string             `bson:"EndDate"`
	Price             float64            `bson:"Price"`
	CurrencyID        *int               `bson:"CurrencyID,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt"`
}

func NewCourse(c domain.Course) Course {
	return Course{
		UniversityID:      &c.UniversityID,
		CityID:            &c.CityID,
		CountryID:         &c.CountryID,
		CourseName:        c.CourseName,
		CourseDescription: c.CourseDescription,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Price:             c.Price,
		CurrencyID:        &c.CurrencyID,
		CreatedAt:         c.CreatedAt,
	}
}

func (c Course) ToDomain() domain.Course {
	return domain.Course{
		ID:                c.ID.Hex(),
		UniversityID:      refOrNone(c.UniversityID),
		CityID:            refOrNone(c.CityID),
		CountryID:         refOrNone(c.CountryID),
		CourseName:        c.CourseName,
		CourseDescription: c.CourseDescription,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Price:             c.Price,
		CurrencyID:        refOrNone(c.CurrencyID),
		CreatedAt:         c.CreatedAt,
	}
}

func refOrNone(id *int) int {
	if id == nil {
		return domain.NoReference
	}
	return *id
}

// NewCourseFromPatch builds the document inserted on create. Absent
// references are left out of the document, other absent fields are stored
// with their zero value.
func NewCourseFromPatch(p domain.CoursePatch, createdAt time.Time) Course {
	c := Course{
		UniversityID: p.UniversityID,
		CityID:       p.CityID,
		CountryID:    p.CountryID,
		CurrencyID:   p.CurrencyID,
		CreatedAt:    createdAt,
	}

	if p.CourseName != nil {
		c.CourseName = *p.CourseName
	}
	if p.CourseDescription != nil {
		c.CourseDescription = *p.CourseDescription
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Price != nil {
		c.Price = *p.Price
	}

	return c
}

// SetFields returns the $set document for the fields present in p.
func SetFields(p domain.CoursePatch) bson.D {
	set := bson.D{}

	add := func(key string, value any) {
		set = append(set, bson.E{Key: key, Value: value})
	}

	if p.UniversityID != nil {
		add("UniversityID", *p.UniversityID)
	}
	if p.CityID != nil {
		add("CityID", *p.CityID)
	}
	if p.CountryID != nil {
		add("CountryID", *p.CountryID)
	}
	if p.CourseName != nil {
		add("CourseName", *p.CourseName)
	}
	if p.CourseDescription != nil {
		add("CourseDescription", *p.CourseDescription)
	}
	if p.StartDate != nil {
		add("StartDate", *p.StartDate)
	}
	if p.EndDate != nil {
		add("EndDate", *p.EndDate)
	}
	if p.Price != nil {
		add("Price", *p.Price)
	}
	if p.CurrencyID != nil {
		add("CurrencyID", *p.CurrencyID)
	}

	return set
}

// NewReference builds a reference document. The id and text fields are named
// after the category, e.g. {"UniversityID": 0, "University": "..."}.
func NewReference(cat domain.Category, r domain.Reference) bson.D {
	return bson.D{
		{Key: cat.IDField(), Value: r.ID},
		{Key: cat.Column(), Value: r.Value},
		{Key: "createdAt", Value: r.CreatedAt},
	}
}

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/api-courses/internal/pkg/domain"
)

const (
	colCourseName        = "CourseName"
	colCourseDescription = "CourseDescription"
	colStartDate         = "StartDate"
	colEndDate           = "EndDate"
	colPrice             = "Price"
)

// RequiredColumns are the columns a course catalog must contain. Their order
// in the source does not matter and any other column is ignored.
var RequiredColumns = []string{
	domain.University.Column(),
	domain.City.Column(),
	domain.Country.Column(),
	colCourseName,
	colCourseDescription,
	colStartDate,
	colEndDate,
	colPrice,
	domain.Currency.Column(),
}

// Dataset is the outcome of one normalization pass. The surrogate ids in
// Courses are only meaningful together with the References of the same pass.
type Dataset struct {
	Courses    []domain.Course
	References map[domain.Category][]domain.Reference
}

// Lookup returns the text a surrogate id was assigned to in this dataset.
func (ds *Dataset) Lookup(cat domain.Category, id int) (string, bool) {
	refs := ds.References[cat]
	if id < 0 || id >= len(refs) {
		return "", false
	}
	return refs[id].Value, true
}

// categoryIndex assigns 0-based ids to distinct values in the order they are
// first seen.
type categoryIndex struct {
	ids    map[string]int
	values []string
}

func newCategoryIndex() *categoryIndex {
	return &categoryIndex{ids: map[string]int{}}
}

func (ci *categoryIndex) idOf(value string) int {
	if id, ok := ci.ids[value]; ok {
		return id
	}

	id := len(ci.values)
	ci.ids[value] = id
	ci.values = append(ci.values, value)

	return id
}

func (ci *categoryIndex) references(createdAt time.Time) []domain.Reference {
	refs := make([]domain.Reference, 0, len(ci.values))
	for id, v := range ci.values {
		refs = append(refs, domain.Reference{ID: id, Value: v, CreatedAt: createdAt})
	}
	return refs
}

// Normalize reads a course catalog in CSV format and splits the university,
// city, country and currency columns out into reference tables.
func Normalize(r io.Reader, now time.Time) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.UpstreamError(err, "course catalog is empty")
		}
		return nil, domain.UpstreamError(err, "failed to read course catalog header")
	}

	columns, err := columnPositions(header)
	if err != nil {
		return nil, err
	}

	indexes := map[domain.Category]*categoryIndex{}
	for _, cat := range domain.Categories {
		indexes[cat] = newCategoryIndex()
	}

	courses := []domain.Course{}
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++

		if err != nil {
			return nil, domain.UpstreamError(err, "malformed course catalog at line %d", line)
		}

		field := func(name string) string {
			pos := columns[name]
			if pos >= len(record) {
				return ""
			}
			return record[pos]
		}

		price, err := parsePrice(field(colPrice))
		if err != nil {
			return nil, domain.UpstreamError(err, "invalid price at line %d", line)
		}

		courses = append(courses, domain.Course{
			UniversityID:      indexes[domain.University].idOf(field(domain.University.Column())),
			CityID:            indexes[domain.City].idOf(field(domain.City.Column())),
			CountryID:         indexes[domain.Country].idOf(field(domain.Country.Column())),
			CourseName:        field(colCourseName),
			CourseDescription: field(colCourseDescription),
			StartDate:         field(colStartDate),
			EndDate:           field(colEndDate),
			Price:             price,
			CurrencyID:        indexes[domain.Currency].idOf(field(domain.Currency.Column())),
			CreatedAt:         now,
		})
	}

	ds := &Dataset{
		Courses:    courses,
		References: map[domain.Category][]domain.Reference{},
	}

	for _, cat := range domain.Categories {
		ds.References[cat] = indexes[cat].references(now)
	}

	return ds, nil
}

func columnPositions(header []string) (map[string]int, error) {
	positions := map[string]int{}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	missing := []string{}
	for _, name := range RequiredColumns {
		if _, ok := positions[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, domain.UpstreamError(
			fmt.Errorf("header was %q", header),
			"course catalog is missing column(s) %s", strings.Join(missing, ", "),
		)
	}

	return positions, nil
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

package courses

import (
	"regexp"

	"github.com/diwise/api-courses/internal/pkg/domain"
)

const (
	DefaultPage  int = 1
	DefaultLimit int = 10
)

// Page translates a 1-based page number into a skip/limit pair. Pages below
// one are treated as the first page. The limit is not capped.
func Page(page, limit int) (skip, take int64, err error) {
	if limit < 0 {
		return 0, 0, domain.ValidationError("limit must not be negative")
	}

	if page < 1 {
		page = DefaultPage
	}

	return int64(page-1) * int64(limit), int64(limit), nil
}

// Search keeps the courses where query, used as a case insensitive regular
// expression, matches the university, city, country, name, description or
// currency.
func Search(courses []domain.EnrichedCourse, query string) ([]domain.EnrichedCourse, error) {
	if query == "" {
		return courses, nil
	}

	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return nil, domain.ValidationError("invalid query: %s", err.Error())
	}

	result := []domain.EnrichedCourse{}

	for _, c := range courses {
		if re.MatchString(c.University) ||
			re.MatchString(c.City) ||
			re.MatchString(c.Country) ||
			re.MatchString(c.CourseName) ||
			re.MatchString(c.CourseDescription) ||
			re.MatchString(c.Currency) {
			result = append(result, c)
		}
	}

	return result, nil
}

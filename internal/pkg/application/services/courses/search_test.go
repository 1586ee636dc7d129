package courses

import (
	"testing"

	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestPage(t *testing.T) {
	is := is.New(t)

	testCases := []struct {
		page, limit int
		skip, take  int64
	}{
		{1, 10, 0, 10},
		{2, 10, 10, 10},
		{3, 25, 50, 25},
		{0, 10, 0, 10},
		{-4, 10, 0, 10},
		{5, 0, 0, 0},
		{1, 100000, 0, 100000},
	}

	for _, tc := range testCases {
		skip, take, err := Page(tc.page, tc.limit)
		is.NoErr(err)
		is.Equal(skip, tc.skip)
		is.Equal(take, tc.take)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	is := is.New(t)

	courses := []domain.EnrichedCourse{
		{CourseName: "Machine Learning"},
		{CourseDescription: "an intro to MACHINES"},
		{City: "Machu Picchu"},
	}

	result, err := Search(courses, "machine")
	is.NoErr(err)
	is.Equal(len(result), 2)
}

func TestSearchChecksEveryTextField(t *testing.T) {
	is := is.New(t)

	courses := []domain.EnrichedCourse{
		{University: "needle"},
		{City: "needle"},
		{Country: "needle"},
		{CourseName: "needle"},
		{CourseDescription: "needle"},
		{Currency: "needle"},
		{StartDate: "needle", EndDate: "needle"},
	}

	result, err := Search(courses, "NEEDLE")
	is.NoErr(err)
	is.Equal(len(result), 6) // dates are not searched
}

func TestSearchWithoutQueryKeepsEverything(t *testing.T) {
	is := is.New(t)

	courses := []domain.EnrichedCourse{{CourseName: "a"}, {CourseName: "b"}}

	result, err := Search(courses, "")
	is.NoErr(err)
	is.Equal(len(result), 2)
}

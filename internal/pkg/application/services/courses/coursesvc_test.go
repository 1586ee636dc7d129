package courses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/diwise/api-courses/internal/pkg/application/catalog"
	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/diwise/api-courses/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
)

func TestListReturnsEnrichedPage(t *testing.T) {
	is, db, _ := testSetup(t, 25)
	svc := NewCourseService(db, nil)

	page, err := svc.List(context.Background(), "", 2, 10)
	is.NoErr(err)

	is.Equal(len(page), 10)
	is.Equal(page[0].CourseName, "Course 10") // page 2 starts with the 11th course
	is.Equal(page[9].CourseName, "Course 19")
	is.Equal(page[0].University, "Uni 1")
	is.Equal(page[0].Currency, "EUR")

	call := db.ReadPageCalls()[0]
	is.Equal(call.Skip, int64(10))
	is.Equal(call.Limit, int64(10))
}

func TestListWithZeroLimitIsEmpty(t *testing.T) {
	is, db, _ := testSetup(t, 5)
	svc := NewCourseService(db, nil)

	page, err := svc.List(context.Background(), "", 1, 0)
	is.NoErr(err)
	is.Equal(len(page), 0)
}

func TestListRejectsNegativeLimit(t *testing.T) {
	is, db, _ := testSetup(t, 5)
	svc := NewCourseService(db, nil)

	_, err := svc.List(context.Background(), "", 1, -1)
	is.Equal(domain.KindOf(err), domain.KindValidation)
	is.Equal(len(db.ReadPageCalls()), 0)
}

// The query filters the requested page only, it is not applied to the whole
// collection before paginating.
func TestListSearchIsLocalToThePage(t *testing.T) {
	is, db, _ := testSetup(t, 20)
	svc := NewCourseService(db, nil)

	firstPage, err := svc.List(context.Background(), "course 15", 1, 10)
	is.NoErr(err)
	is.Equal(len(firstPage), 0) // the only match lives on page 2

	secondPage, err := svc.List(context.Background(), "course 15", 2, 10)
	is.NoErr(err)
	is.Equal(len(secondPage), 1)
	is.Equal(secondPage[0].CourseName, "Course 15")
}

func TestListSearchMatchesEnrichedFields(t *testing.T) {
	is, db, _ := testSetup(t, 9)
	svc := NewCourseService(db, nil)

	page, err := svc.List(context.Background(), "^uni 2$", 1, 10)
	is.NoErr(err)
	is.Equal(len(page), 3) // every third course is at Uni 2
}

func TestListWithInvalidPatternIsValidationError(t *testing.T) {
	is, db, _ := testSetup(t, 3)
	svc := NewCourseService(db, nil)

	_, err := svc.List(context.Background(), "([", 1, 10)
	is.Equal(domain.KindOf(err), domain.KindValidation)
}

func TestListDanglingReferenceResolvesToEmptyName(t *testing.T) {
	is, db, store := testSetup(t, 1)
	store.courses[0].CityID = 42

	svc := NewCourseService(db, nil)

	page, err := svc.List(context.Background(), "", 1, 10)
	is.NoErr(err)
	is.Equal(page[0].City, "")
	is.Equal(page[0].University, "Uni 0")
}

func TestListStoreFailureIsInternalError(t *testing.T) {
	is, db, _ := testSetup(t, 1)
	db.ReadPageFunc = func(ctx context.Context, skip, limit int64) ([]domain.Course, error) {
		return nil, errors.New("connection reset")
	}

	_, err := NewCourseService(db, nil).List(context.Background(), "", 1, 10)
	is.Equal(domain.KindOf(err), domain.KindInternal)
}

func TestUpdateWithEmptyPatchNeverTouchesTheStore(t *testing.T) {
	is, db, _ := testSetup(t, 1)
	svc := NewCourseService(db, nil)

	err := svc.Update(context.Background(), "65a000000000000000000000", domain.CoursePatch{})
	is.Equal(domain.KindOf(err), domain.KindValidation)
	is.Equal(len(db.UpdateCourseCalls()), 0)
}

func TestUpdateWithInvalidIDIsValidationError(t *testing.T) {
	is, db, _ := testSetup(t, 1)
	svc := NewCourseService(db, nil)

	name := "x"
	err := svc.Update(context.Background(), "abc", domain.CoursePatch{CourseName: &name})
	is.Equal(domain.KindOf(err), domain.KindValidation)
	is.Equal(len(db.UpdateCourseCalls()), 0)
}

func TestUpdateMissingCourseIsNotFound(t *testing.T) {
	is, db, _ := testSetup(t, 1)
	svc := NewCourseService(db, nil)

	name := "x"
	err := svc.Update(context.Background(), "65a0000000000000000000ff", domain.CoursePatch{CourseName: &name})
	is.Equal(domain.KindOf(err), domain.KindNotFound)
}

func TestUpdateExistingCourse(t *testing.T) {
	is, db, store := testSetup(t, 2)
	svc := NewCourseService(db, nil)

	name := "Renamed"
	err := svc.Update(context.Background(), store.courses[1].ID, domain.CoursePatch{CourseName: &name})
	is.NoErr(err)
	is.Equal(store.courses[1].CourseName, "Renamed")
}

func TestDeleteMissingCourseIsNotFound(t *testing.T) {
	is, db, _ := testSetup(t, 1)
	svc := NewCourseService(db, nil)

	err := svc.Delete(context.Background(), "65a0000000000000000000ff")
	is.Equal(domain.KindOf(err), domain.KindNotFound)
}

func TestDeleteWithInvalidIDNeverTouchesTheStore(t *testing.T) {
	is, db, _ := testSetup(t, 1)
	svc := NewCourseService(db, nil)

	err := svc.Delete(context.Background(), "not-an-id")
	is.Equal(domain.KindOf(err), domain.KindValidation)
	is.Equal(len(db.DeleteCourseCalls()), 0)
}

func TestRefreshNormalizesAndStores(t *testing.T) {
	is, db, store := testSetup(t, 0)
	fetcher := &catalog.FetcherMock{
		FetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(catalogCSV), nil
		},
	}

	svc := NewCourseService(db, fetcher)
	is.NoErr(svc.Refresh(context.Background()))

	is.Equal(len(db.RefreshCalls()), 1)
	is.Equal(len(store.courses), 2)

	page, err := svc.List(context.Background(), "", 1, 10)
	is.NoErr(err)
	is.Equal(page[1].University, "Uni B")
	is.Equal(page[1].Country, "Sweden")
}

func TestRefreshDoesNotTouchStoreWhenFetchFails(t *testing.T) {
	is, db, _ := testSetup(t, 3)
	fetcher := &catalog.FetcherMock{
		FetchFunc: func(ctx context.Context) ([]byte, error) {
			return nil, domain.UpstreamError(errors.New("timeout"), "failed to fetch course catalog")
		},
	}

	err := NewCourseService(db, fetcher).Refresh(context.Background())
	is.Equal(domain.KindOf(err), domain.KindUpstream)
	is.Equal(len(db.RefreshCalls()), 0)
}

func TestRefreshWithMalformedCatalogFails(t *testing.T) {
	is, db, _ := testSetup(t, 3)
	fetcher := &catalog.FetcherMock{
		FetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte("University,City\nA,B\n"), nil
		},
	}

	err := NewCourseService(db, fetcher).Refresh(context.Background())
	is.Equal(domain.KindOf(err), domain.KindUpstream)
	is.Equal(len(db.RefreshCalls()), 0)
}

func TestEnsureSeededOnlyRefreshesEmptyStore(t *testing.T) {
	is, db, _ := testSetup(t, 0)
	fetcher := &catalog.FetcherMock{
		FetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(catalogCSV), nil
		},
	}

	svc := NewCourseService(db, fetcher)

	is.NoErr(svc.EnsureSeeded(context.Background()))
	is.NoErr(svc.EnsureSeeded(context.Background()))

	is.Equal(len(fetcher.FetchCalls()), 1) // second call should find the seeded courses
	is.Equal(len(db.CountCoursesCalls()), 2)
}

func TestEnrichRoundTripsNormalizedCatalog(t *testing.T) {
	is := is.New(t)

	ds, err := catalog.Normalize(strings.NewReader(catalogCSV), time.Now())
	is.NoErr(err)

	lookup := datasetLookup{ds}

	ec, err := Enrich(context.Background(), lookup, ds.Courses[0])
	is.NoErr(err)
	is.Equal(ec.University, "Uni A")
	is.Equal(ec.City, "Oslo")
	is.Equal(ec.Country, "Norway")
	is.Equal(ec.Currency, "NOK")
}

type datasetLookup struct {
	ds *catalog.Dataset
}

func (l datasetLookup) LookupReference(ctx context.Context, cat domain.Category, id int) (string, bool, error) {
	v, ok := l.ds.Lookup(cat, id)
	return v, ok, nil
}

// memstore backs a DatastoreMock with courses and references held in memory.
type memstore struct {
	courses    []domain.Course
	references map[domain.Category][]domain.Reference
}

func (m *memstore) lookup(cat domain.Category, id int) (string, bool) {
	for _, r := range m.references[cat] {
		if r.ID == id {
			return r.Value, true
		}
	}
	return "", false
}

func (m *memstore) indexOf(id string) int {
	for i, c := range m.courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func testSetup(t *testing.T, count int) (*is.I, *database.DatastoreMock, *memstore) {
	is := is.New(t)

	store := &memstore{references: map[domain.Category][]domain.Reference{
		domain.University: {{ID: 0, Value: "Uni 0"}, {ID: 1, Value: "Uni 1"}, {ID: 2, Value: "Uni 2"}},
		domain.City:       {{ID: 0, Value: "Oslo"}},
		domain.Country:    {{ID: 0, Value: "Norway"}},
		domain.Currency:   {{ID: 0, Value: "EUR"}},
	}}

	for i := 0; i < count; i++ {
		store.courses = append(store.courses, domain.Course{
			ID:                fmt.Sprintf("65a0000000000000000000%02d", i),
			UniversityID:      i % 3,
			CourseName:        fmt.Sprintf("Course %02d", i),
			CourseDescription: "A course",
		})
	}

	db := &database.DatastoreMock{
		CountCoursesFunc: func(ctx context.Context) (int64, error) {
			return int64(len(store.courses)), nil
		},
		ReadPageFunc: func(ctx context.Context, skip, limit int64) ([]domain.Course, error) {
			page := []domain.Course{}
			for i := skip; i < skip+limit && i < int64(len(store.courses)); i++ {
				page = append(page, store.courses[i])
			}
			return page, nil
		},
		LookupReferenceFunc: func(ctx context.Context, cat domain.Category, id int) (string, bool, error) {
			v, ok := store.lookup(cat, id)
			return v, ok, nil
		},
		GetCourseFunc: func(ctx context.Context, id string) (*domain.Course, error) {
			i := store.indexOf(id)
			if i < 0 {
				return nil, domain.NotFoundError("Course not found")
			}
			c := store.courses[i]
			return &c, nil
		},
		UpdateCourseFunc: func(ctx context.Context, id string, patch domain.CoursePatch) error {
			i := store.indexOf(id)
			if i < 0 {
				return domain.NotFoundError("Course not found")
			}
			if patch.CourseName != nil {
				store.courses[i].CourseName = *patch.CourseName
			}
			return nil
		},
		DeleteCourseFunc: func(ctx context.Context, id string) error {
			i := store.indexOf(id)
			if i < 0 {
				return domain.NotFoundError("Course not found")
			}
			store.courses = append(store.courses[:i], store.courses[i+1:]...)
			return nil
		},
		RefreshFunc: func(ctx context.Context, ds *catalog.Dataset) error {
			store.courses = ds.Courses
			store.references = ds.References
			return nil
		},
	}

	return is, db, store
}

const catalogCSV string = `University,City,Country,CourseName,CourseDescription,StartDate,EndDate,Price,Currency
Uni A,Oslo,Norway,Algorithms,Sorting and searching,2024-09-01,2024-12-20,1000,NOK
Uni B,Stockholm,Sweden,Databases,Storage engines,2024-09-01,2024-12-20,1200,SEK
`

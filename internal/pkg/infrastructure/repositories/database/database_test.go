package database

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/diwise/api-courses/internal/pkg/application/catalog"
	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/matryer/is"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const mongoImage = "mongo:7"

var (
	sharedMongoURL  string
	sharedMongoOnce sync.Once
	sharedMongoErr  error
)

// mongoURL starts a MongoDB container once per test run and returns its
// connection string.
func mongoURL(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedMongoOnce.Do(func() {
		ctx := context.Background()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        mongoImage,
				ExposedPorts: []string{"27017/tcp"},
				WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			sharedMongoErr = fmt.Errorf("failed to start mongo container: %w", err)
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			sharedMongoErr = err
			return
		}

		port, err := container.MappedPort(ctx, "27017")
		if err != nil {
			sharedMongoErr = err
			return
		}

		sharedMongoURL = fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	})

	if sharedMongoErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedMongoErr)
	}

	return sharedMongoURL
}

func testSetup(t *testing.T) (*is.I, context.Context, Datastore) {
	is := is.New(t)
	ctx := context.Background()

	dbName := "test_" + strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := NewDatabaseConnection(ctx, NewMongoConnector(mongoURL(t), dbName), Config{
		ReferenceTTL: DefaultReferenceTTL,
	})
	is.NoErr(err)

	t.Cleanup(func() {
		db.(*myDB).db.Drop(ctx)
		db.Close(ctx)
	})

	return is, ctx, db
}

func seed(is *is.I, ctx context.Context, db Datastore, rows int) *catalog.Dataset {
	b := strings.Builder{}
	b.WriteString(strings.Join(catalog.RequiredColumns, ",") + "\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "Uni %d,City %d,Country,Course %02d,Description of course %02d,2024-01-01,2024-06-01,%d,EUR\n", i%3, i%2, i, i, 100+i)
	}

	ds, err := catalog.Normalize(strings.NewReader(b.String()), time.Now().UTC())
	is.NoErr(err)
	is.NoErr(db.Refresh(ctx, ds))

	return ds
}

func TestRefreshStoresCoursesAndReferences(t *testing.T) {
	is, ctx, db := testSetup(t)
	ds := seed(is, ctx, db, 5)

	count, err := db.CountCourses(ctx)
	is.NoErr(err)
	is.Equal(count, int64(5))

	for _, cat := range domain.Categories {
		for _, ref := range ds.References[cat] {
			value, ok, err := db.LookupReference(ctx, cat, ref.ID)
			is.NoErr(err)
			is.True(ok)
			is.Equal(value, ref.Value)
		}
	}
}

func TestRefreshCreatesIndexes(t *testing.T) {
	is, ctx, db := testSetup(t)
	seed(is, ctx, db, 2)

	mdb := db.(*myDB)

	specs, err := mdb.courses.Indexes().ListSpecifications(ctx)
	is.NoErr(err)
	is.Equal(len(specs), 2) // _id and the text index

	for _, cat := range domain.Categories {
		specs, err := mdb.references[cat].Indexes().ListSpecifications(ctx)
		is.NoErr(err)

		found := false
		for _, s := range specs {
			if s.ExpireAfterSeconds != nil && *s.ExpireAfterSeconds == 600 {
				found = true
			}
		}
		is.True(found) // reference collection should have an expiry index
	}
}

func TestRefreshTwiceYieldsSameContent(t *testing.T) {
	is, ctx, db := testSetup(t)

	seed(is, ctx, db, 7)
	first, err := db.ReadPage(ctx, 0, 100)
	is.NoErr(err)

	seed(is, ctx, db, 7)
	second, err := db.ReadPage(ctx, 0, 100)
	is.NoErr(err)

	is.Equal(len(first), len(second))
	is.Equal(names(first), names(second))
}

func TestReadPageSkipsAndLimits(t *testing.T) {
	is, ctx, db := testSetup(t)
	seed(is, ctx, db, 25)

	page, err := db.ReadPage(ctx, 10, 10)
	is.NoErr(err)
	is.Equal(len(page), 10)
	is.Equal(page[0].CourseName, "Course 10")
	is.Equal(page[9].CourseName, "Course 19")

	empty, err := db.ReadPage(ctx, 0, 0)
	is.NoErr(err)
	is.Equal(len(empty), 0)
}

func TestCreateUpdateAndDeleteCourse(t *testing.T) {
	is, ctx, db := testSetup(t)

	name := "Distributed systems"
	id, err := db.CreateCourse(ctx, domain.CoursePatch{CourseName: &name})
	is.NoErr(err)
	is.True(IsValidID(id))

	created, err := db.GetCourse(ctx, id)
	is.NoErr(err)
	is.Equal(created.CourseName, name)
	is.Equal(created.UniversityID, domain.NoReference) // absent reference is not stored as 0

	price := 250.0
	is.NoErr(db.UpdateCourse(ctx, id, domain.CoursePatch{Price: &price}))

	updated, err := db.GetCourse(ctx, id)
	is.NoErr(err)
	is.Equal(updated.Price, price)
	is.Equal(updated.CourseName, name) // untouched fields are kept

	is.NoErr(db.DeleteCourse(ctx, id))

	err = db.DeleteCourse(ctx, id)
	is.Equal(domain.KindOf(err), domain.KindNotFound)
}

func TestUpdateMissingCourseIsNotFound(t *testing.T) {
	is, ctx, db := testSetup(t)

	name := "x"
	err := db.UpdateCourse(ctx, "65a000000000000000000000", domain.CoursePatch{CourseName: &name})
	is.Equal(domain.KindOf(err), domain.KindNotFound)
}

func TestLookupMissingReferenceIsNotAnError(t *testing.T) {
	is, ctx, db := testSetup(t)
	seed(is, ctx, db, 1)

	value, ok, err := db.LookupReference(ctx, domain.Currency, 99)
	is.NoErr(err)
	is.True(!ok)
	is.Equal(value, "")
}

func TestInvalidIDIsValidationError(t *testing.T) {
	is := is.New(t)
	db := &myDB{}

	err := db.DeleteCourse(context.Background(), "not-an-object-id")
	is.Equal(domain.KindOf(err), domain.KindValidation)

	is.True(!IsValidID("123"))
	is.True(IsValidID("65a000000000000000000000"))
}

func names(courses []domain.Course) []string {
	n := []string{}
	for _, c := range courses {
		n = append(n, c.CourseName)
	}
	sort.Strings(n)
	return n
}

package courses

import (
	"bytes"
	"context"
	"time"

	"github.com/diwise/api-courses/internal/pkg/application/catalog"
	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/diwise/api-courses/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-courses/svcs/courses")

//go:generate moq -rm -out coursesvc_mock.go . CourseService
type CourseService interface {
	List(ctx context.Context, query string, page, limit int) ([]domain.EnrichedCourse, error)
	Create(ctx context.Context, patch domain.CoursePatch) (string, error)
	Update(ctx context.Context, id string, patch domain.CoursePatch) error
	Delete(ctx context.Context, id string) error

	Refresh(ctx context.Context) error
	EnsureSeeded(ctx context.Context) error
}

func NewCourseService(db database.Datastore, fetcher catalog.Fetcher) CourseService {
	return &courseSvc{
		db:      db,
		fetcher: fetcher,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type courseSvc struct {
	db      database.Datastore
	fetcher catalog.Fetcher
	now     func() time.Time
}

// List returns one page of courses in storage order. When a query is given
// it is applied to the courses of that page only, so a page may hold fewer
// than limit courses even though later pages contain matches.
func (svc *courseSvc) List(ctx context.Context, query string, page, limit int) ([]domain.EnrichedCourse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-courses")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	skip, take, err := Page(page, limit)
	if err != nil {
		return nil, err
	}

	stored, err := svc.db.ReadPage(ctx, skip, take)
	if err != nil {
		err = domain.InternalError(err, "An error occurred while fetching courses")
		return nil, err
	}

	enriched := make([]domain.EnrichedCourse, 0, len(stored))
	for _, c := range stored {
		var ec domain.EnrichedCourse
		ec, err = Enrich(ctx, svc.db, c)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, ec)
	}

	result, err := Search(enriched, query)
	if err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("returning %d of %d courses on page %d", len(result), len(enriched), page)

	return result, nil
}

func (svc *courseSvc) Create(ctx context.Context, patch domain.CoursePatch) (string, error) {
	id, err := svc.db.CreateCourse(ctx, patch)
	if err != nil {
		return "", domain.InternalError(err, "An error occurred while creating the course")
	}

	log := logging.GetFromContext(ctx)
	log.Info().Str("courseID", id).Msg("course created")

	return id, nil
}

func (svc *courseSvc) Update(ctx context.Context, id string, patch domain.CoursePatch) error {
	if !database.IsValidID(id) {
		return domain.ValidationError("Invalid course ID")
	}

	if patch.IsEmpty() {
		return domain.ValidationError("No data provided for update")
	}

	if err := svc.db.UpdateCourse(ctx, id, patch); err != nil {
		return wrapStoreError(err, "An error occurred while updating the course")
	}

	log := logging.GetFromContext(ctx)

	updated, err := svc.db.GetCourse(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("courseID", id).Msg("failed to read back updated course")
		return nil
	}

	if ec, err := Enrich(ctx, svc.db, *updated); err == nil {
		log.Debug().Interface("course", ec).Msg("course updated")
	}

	return nil
}

func (svc *courseSvc) Delete(ctx context.Context, id string) error {
	if !database.IsValidID(id) {
		return domain.ValidationError("Invalid course ID")
	}

	if err := svc.db.DeleteCourse(ctx, id); err != nil {
		return wrapStoreError(err, "An error occurred while deleting the course")
	}

	log := logging.GetFromContext(ctx)
	log.Info().Str("courseID", id).Msg("course deleted")

	return nil
}

// Refresh rebuilds the fact and reference collections from the catalog
// source. The source is fetched and normalized before anything is dropped.
func (svc *courseSvc) Refresh(ctx context.Context) error {
	var err error
	ctx, span := tracer.Start(ctx, "refresh-courses")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	body, err := svc.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	ds, err := catalog.Normalize(bytes.NewReader(body), svc.now())
	if err != nil {
		return err
	}

	if err = svc.db.Refresh(ctx, ds); err != nil {
		err = domain.InternalError(err, "An error occurred while refreshing the database")
		return err
	}

	log.Info().Msgf("refreshed %d courses", len(ds.Courses))

	return nil
}

// EnsureSeeded refreshes the collections if there are no courses stored.
func (svc *courseSvc) EnsureSeeded(ctx context.Context) error {
	count, err := svc.db.CountCourses(ctx)
	if err != nil {
		return domain.InternalError(err, "failed to count courses")
	}

	if count > 0 {
		log := logging.GetFromContext(ctx)
		log.Info().Msgf("found %d courses, skipping initial refresh", count)
		return nil
	}

	return svc.Refresh(ctx)
}

func wrapStoreError(err error, msg string) error {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindNotFound:
		return err
	}
	return domain.InternalError(err, msg)
}

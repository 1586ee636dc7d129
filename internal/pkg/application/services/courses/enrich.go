package courses

import (
	"context"

	"github.com/diwise/api-courses/internal/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// ReferenceLookup resolves a surrogate id to the category text it refers to.
type ReferenceLookup interface {
	LookupReference(ctx context.Context, cat domain.Category, id int) (string, bool, error)
}

// Enrich replaces the surrogate ids of a course with the names they refer to.
// A reference that can not be found resolves to an empty name.
func Enrich(ctx context.Context, lookup ReferenceLookup, c domain.Course) (domain.EnrichedCourse, error) {
	names := make([]string, len(domain.Categories))

	g, gctx := errgroup.WithContext(ctx)

	for i, cat := range domain.Categories {
		i, cat := i, cat
		g.Go(func() error {
			name, _, err := lookup.LookupReference(gctx, cat, c.CategoryID(cat))
			if err != nil {
				return err
			}
			names[i] = name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.EnrichedCourse{}, domain.InternalError(err, "failed to resolve course references")
	}

	return domain.EnrichedCourse{
		ID:                c.ID,
		University:        names[domain.University],
		City:              names[domain.City],
		Country:           names[domain.Country],
		CourseName:        c.CourseName,
		CourseDescription: c.CourseDescription,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Price:             c.Price,
		Currency:          names[domain.Currency],
		CreatedAt:         c.CreatedAt,
	}, nil
}

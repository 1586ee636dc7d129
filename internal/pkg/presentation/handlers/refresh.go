package handlers

import (
	"net/http"

	"github.com/diwise/api-courses/internal/pkg/application/services/courses"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func NewRefreshCoursesHandler(logger zerolog.Logger, svc courses.CourseService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "refresh-courses")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		if err = svc.Refresh(ctx); err != nil {
			writeError(log, w, err)
			return
		}

		writeJSON(log, w, http.StatusOK, successResponse{Success: true})
	})
}

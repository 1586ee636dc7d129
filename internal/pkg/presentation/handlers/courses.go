package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/diwise/api-courses/internal/pkg/application/services/courses"
	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-courses/api")

type successResponse struct {
	Success bool `json:"success"`
}

type createdResponse struct {
	ID string `json:"_id"`
}

func NewRetrieveCoursesHandler(logger zerolog.Logger, svc courses.CourseService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-courses")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		params := r.URL.Query()

		page, err := intParam(params.Get("page"), "page", courses.DefaultPage)
		if err != nil {
			writeError(log, w, err)
			return
		}

		limit, err := intParam(params.Get("limit"), "limit", courses.DefaultLimit)
		if err != nil {
			writeError(log, w, err)
			return
		}

		result, err := svc.List(ctx, params.Get("query"), page, limit)
		if err != nil {
			writeError(log, w, err)
			return
		}

		writeJSON(log, w, http.StatusOK, result)
	})
}

func NewCreateCourseHandler(logger zerolog.Logger, svc courses.CourseService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-course")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		patch, err := readPatch(r.Body)
		if err != nil {
			writeError(log, w, err)
			return
		}

		id, err := svc.Create(ctx, patch)
		if err != nil {
			writeError(log, w, err)
			return
		}

		writeJSON(log, w, http.StatusOK, createdResponse{ID: id})
	})
}

func NewUpdateCourseHandler(logger zerolog.Logger, svc courses.CourseService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-course")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		courseID := chi.URLParam(r, "id")

		patch, err := readPatch(r.Body)
		if err != nil {
			writeError(log, w, err)
			return
		}

		if err = svc.Update(ctx, courseID, patch); err != nil {
			writeError(log, w, err)
			return
		}

		writeJSON(log, w, http.StatusOK, successResponse{Success: true})
	})
}

func NewDeleteCourseHandler(logger zerolog.Logger, svc courses.CourseService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-course")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		if err = svc.Delete(ctx, chi.URLParam(r, "id")); err != nil {
			writeError(log, w, err)
			return
		}

		writeJSON(log, w, http.StatusOK, successResponse{Success: true})
	})
}

func intParam(value, name string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.ValidationError("%s must be an integer", name)
	}

	return i, nil
}

func readPatch(body io.Reader) (domain.CoursePatch, error) {
	patch := domain.CoursePatch{}

	b, err := io.ReadAll(body)
	if err != nil {
		return patch, domain.ValidationError("failed to read request body")
	}

	if err = json.Unmarshal(b, &patch); err != nil {
		return patch, domain.ValidationError("Invalid JSON body")
	}

	return patch, nil
}

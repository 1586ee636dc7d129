package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/api-courses/internal/pkg/application/services/courses"
	"github.com/diwise/api-courses/internal/pkg/application/services/polygon"
	"github.com/diwise/api-courses/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type coursesAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, svc courses.CourseService, rpc polygon.Client) API {
	return newCoursesAPI(ctx, r, svc, rpc)
}

func newCoursesAPI(ctx context.Context, r chi.Router, svc courses.CourseService, rpc polygon.Client) *coursesAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(flate.DefaultCompression, "application/json")
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-courses", otelchi.WithChiRoutes(r)))

	a := &coursesAPI{
		router: r,
		log:    log,
	}

	a.addCourseHandlers(r, log, svc)
	a.addConnectHandlers(r, log, rpc)
	a.addProbeHandlers(r)

	return a
}

func (a *coursesAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-courses on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *coursesAPI) addCourseHandlers(r chi.Router, log zerolog.Logger, svc courses.CourseService) {
	// mounted, so /courses and /courses/ reach the same handlers
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", handlers.NewRetrieveCoursesHandler(log, svc))
		r.Post("/", handlers.NewCreateCourseHandler(log, svc))
		r.Put("/{id}", handlers.NewUpdateCourseHandler(log, svc))
		r.Delete("/{id}", handlers.NewDeleteCourseHandler(log, svc))
	})

	refresh := handlers.NewRefreshCoursesHandler(log, svc)
	r.Post("/refresh/", refresh)
	r.Post("/refresh", refresh)
}

func (a *coursesAPI) addConnectHandlers(r chi.Router, log zerolog.Logger, rpc polygon.Client) {
	r.HandleFunc("/api/connect", handlers.NewConnectHandler(log, rpc))
}

func (a *coursesAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

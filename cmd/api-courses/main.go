package main

import (
	"context"
	"flag"
	"strconv"
	"time"

	"github.com/diwise/api-courses/internal/pkg/application/catalog"
	"github.com/diwise/api-courses/internal/pkg/application/services/courses"
	"github.com/diwise/api-courses/internal/pkg/application/services/polygon"
	"github.com/diwise/api-courses/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/api-courses/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

var seedOnStartup bool

func main() {
	serviceName := "api-courses"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.BoolVar(&seedOnStartup, "seed", true, "Refresh the database from the course catalog on startup if it is empty")
	flag.Parse()

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	mongoURL := env.GetVariableOrDie(log, "MONGO_URL", "MongoDB connection string")
	mongoDatabase := env.GetVariableOrDefault(log, "MONGO_DATABASE", database.DefaultDatabaseName)
	mongoCollection := env.GetVariableOrDefault(log, "MONGO_COLLECTION", database.DefaultCourseCollection)
	csvURL := env.GetVariableOrDie(log, "COURSES_CSV_URL", "course catalog CSV URL")
	rpcURL := env.GetVariableOrDefault(log, "POLYGON_RPC_URL", polygon.DefaultRPCURL)

	db, err := database.NewDatabaseConnection(
		ctx,
		database.NewMongoConnector(mongoURL, mongoDatabase),
		database.Config{
			CourseCollection: mongoCollection,
			ReferenceTTL:     referenceTTL(log),
		},
	)
	if err != nil {
		log.Fatal().Msgf("failed to connect to database, shutting down... %s", err.Error())
	}
	defer db.Close(context.Background())

	svc := courses.NewCourseService(db, catalog.NewFetcher(csvURL))

	if seedOnStartup {
		if err = svc.EnsureSeeded(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed the database")
		}
	}

	app := presentation.NewAPI(ctx, chi.NewRouter(), svc, polygon.NewClient(rpcURL))
	err = app.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}

func referenceTTL(log zerolog.Logger) time.Duration {
	defaultSeconds := strconv.Itoa(int(database.DefaultReferenceTTL.Seconds()))
	value := env.GetVariableOrDefault(log, "REFERENCE_TTL_SECONDS", defaultSeconds)

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		log.Fatal().Msgf("REFERENCE_TTL_SECONDS must be a non negative integer, got %q", value)
	}

	return time.Duration(seconds) * time.Second
}

package handlers

import (
	"net/http"

	"github.com/diwise/api-courses/internal/pkg/application/services/polygon"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

type connectResponse struct {
	Status  string `json:"status"`
	Network string `json:"network"`
}

type methodErrorResponse struct {
	Error string `json:"error"`
}

// NewConnectHandler reports whether the configured blockchain node answers.
// Status is sent as the string "true" or "false".
func NewConnectHandler(logger zerolog.Logger, client polygon.Client) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "check-connection")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		if r.Method != http.MethodGet {
			writeJSON(log, w, http.StatusBadRequest, methodErrorResponse{Error: "Invalid request method"})
			return
		}

		if !client.IsConnected(ctx) {
			writeJSON(log, w, http.StatusInternalServerError, connectResponse{Status: "false", Network: client.Network()})
			return
		}

		writeJSON(log, w, http.StatusOK, connectResponse{Status: "true", Network: client.Network()})
	})
}

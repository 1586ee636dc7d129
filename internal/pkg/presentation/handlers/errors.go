package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/rs/zerolog"
)

const genericErrorMessage string = "Internal server error"

type errorResponse struct {
	Detail string `json:"detail"`
}

func statusFromKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status code and writes it as {"detail": ...}.
// Causes wrapped by server side errors are logged, never returned.
func writeError(log zerolog.Logger, w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	status := statusFromKind(kind)

	detail := domain.Message(err)

	var de *domain.Error
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("kind", kind.String()).Msg("request failed")
		if !errors.As(err, &de) {
			detail = genericErrorMessage
		}
	} else {
		log.Info().Str("kind", kind.String()).Msg(detail)
	}

	writeJSON(log, w, status, errorResponse{Detail: detail})
}

func writeJSON(log zerolog.Logger, w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

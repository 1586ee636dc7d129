package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-courses/catalog")

//go:generate moq -rm -out fetcher_mock.go . Fetcher
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

func NewFetcher(csvURL string) Fetcher {
	return &httpFetcher{
		url: csvURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type httpFetcher struct {
	url        string
	httpClient http.Client
}

func (f *httpFetcher) Fetch(ctx context.Context) ([]byte, error) {
	var err error
	ctx, span := tracer.Start(ctx, "fetch-course-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		err = domain.UpstreamError(err, "failed to create request for %s", f.url)
		return nil, err
	}

	req.Header.Add("Accept", "text/csv")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		err = domain.UpstreamError(err, "failed to fetch course catalog")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = domain.UpstreamError(err, "failed to read course catalog")
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("url", f.url).Msg("course catalog request failed")
		err = domain.UpstreamError(
			fmt.Errorf("status %d, body: %s", resp.StatusCode, snippet(body, 200)),
			"course catalog source returned an error",
		)
		return nil, err
	}

	log.Debug().Msgf("fetched %d bytes of course catalog from %s", len(body), f.url)

	return body, nil
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

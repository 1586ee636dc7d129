package polygon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-courses/svcs/polygon")

const (
	DefaultRPCURL  string = "https://polygon-mainnet.infura.io/v3/834cec7f01b84b05be1baea6d799fbd1"
	NetworkName    string = "Polygon Mainnet"
	DefaultTimeout        = 10 * time.Second
)

//go:generate moq -rm -out polygon_mock.go . Client
type Client interface {
	Network() string
	IsConnected(ctx context.Context) bool
}

func NewClient(rpcURL string) Client {
	return &rpcClient{
		url: rpcURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   DefaultTimeout,
		},
	}
}

type rpcClient struct {
	url        string
	httpClient http.Client
}

func (c *rpcClient) Network() string {
	return NetworkName
}

// IsConnected asks the node for its client version and reports whether it
// answered with a valid JSON-RPC result.
func (c *rpcClient) IsConnected(ctx context.Context) bool {
	var err error
	ctx, span := tracer.Start(ctx, "check-rpc-connection")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	version, err := c.clientVersion(ctx)
	if err != nil {
		log.Warn().Err(err).Msgf("%s is not reachable", NetworkName)
		return false
	}

	log.Debug().Msgf("connected to %s (%s)", NetworkName, version)

	return true
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *rpcClient) clientVersion(ctx context.Context) (string, error) {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: "web3_clientVersion", Params: []any{}, ID: 1})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %s", err.Error())
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %s", err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %s", err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rpc endpoint returned status code %d", resp.StatusCode)
	}

	rpcResp := rpcResponse{}
	if err = json.Unmarshal(respBody, &rpcResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %s", err.Error())
	}

	if rpcResp.Error != nil {
		return "", fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	var version string
	if err = json.Unmarshal(rpcResp.Result, &version); err != nil {
		return "", fmt.Errorf("unexpected result: %s", string(rpcResp.Result))
	}

	return version, nil
}

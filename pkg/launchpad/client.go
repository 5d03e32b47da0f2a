package launchpad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

type Client struct {
	baseURL         string
	apiKey          string
	network         string
	httpClient      *http.Client
	compressUploads bool
	eventsURL       string
	eventTimeout    time.Duration
	dialEvents      eventDialer
}

func NewClient(config Config) (*Client, error) {
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, fmt.Errorf("launchpad base URL is required")
	}
	baseURL, err := shared.NormalizeBaseURL(config.BaseURL, "")
	if err != nil {
		return nil, fmt.Errorf("invalid launchpad base URL: %w", err)
	}
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = shared.DefaultServiceTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	eventTimeout := config.EventTimeout
	if eventTimeout <= 0 {
		eventTimeout = defaultEventTimeout
	}

	return &Client{
		baseURL:         baseURL,
		apiKey:          strings.TrimSpace(config.APIKey),
		network:         network,
		httpClient:      httpClient,
		compressUploads: config.CompressUploads,
		eventsURL:       strings.TrimSpace(config.EventsURL),
		eventTimeout:    eventTimeout,
		dialEvents:      dialSocketIO,
	}, nil
}

// UploadMetadata pins the token metadata document and returns its URI.
func (c *Client) UploadMetadata(ctx context.Context, metadata TokenMetadata) (string, error) {
	if strings.TrimSpace(metadata.Name) == "" {
		return "", fmt.Errorf("token name is required")
	}
	if strings.TrimSpace(metadata.Symbol) == "" {
		return "", fmt.Errorf("token symbol is required")
	}

	encoded, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to encode token metadata: %w", err)
	}

	headers := c.headers()
	if c.compressUploads {
		compressed, compressErr := compress(encoded)
		if compressErr != nil {
			return "", compressErr
		}
		encoded = compressed
		headers["Content-Encoding"] = "br"
	}

	var response metadataResponse
	err = shared.DoJSON(ctx, c.httpClient, shared.Request{
		Service: "launchpad",
		Method:  http.MethodPost,
		URL:     c.baseURL + "/metadata",
		Headers: headers,
		Body:    encoded,
	}, &response)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(response.MetadataURI) == "" {
		return "", fmt.Errorf("launchpad response did not include metadata URI")
	}

	return response.MetadataURI, nil
}

// CreateLaunch builds the token creation transaction for request.Creator.
func (c *Client) CreateLaunch(ctx context.Context, request LaunchRequest) (LaunchTransaction, error) {
	if strings.TrimSpace(request.Name) == "" {
		return LaunchTransaction{}, fmt.Errorf("token name is required")
	}
	if strings.TrimSpace(request.Ticker) == "" {
		return LaunchTransaction{}, fmt.Errorf("token ticker is required")
	}
	if strings.TrimSpace(request.Creator) == "" {
		return LaunchTransaction{}, fmt.Errorf("creator account ID is required")
	}
	if request.InitialLiquidity < 0 {
		return LaunchTransaction{}, fmt.Errorf("initial liquidity cannot be negative")
	}

	payload := map[string]any{
		"name":             request.Name,
		"ticker":           request.Ticker,
		"metadataUri":      request.MetadataURI,
		"creator":          request.Creator,
		"initialLiquidity": request.InitialLiquidity,
		"network":          c.network,
	}
	if request.TokenID != "" {
		payload["tokenId"] = request.TokenID
	}
	if request.SlippageBps > 0 {
		payload["slippageBps"] = request.SlippageBps
	}

	headers := c.headers()
	headers["Idempotency-Key"] = uuid.NewString()

	var transaction LaunchTransaction
	err := shared.DoJSON(ctx, c.httpClient, shared.Request{
		Service: "launchpad",
		Method:  http.MethodPost,
		URL:     c.baseURL + "/launches",
		Headers: headers,
		Payload: payload,
	}, &transaction)
	if err != nil {
		return LaunchTransaction{}, err
	}
	if strings.TrimSpace(transaction.TransactionBytes) == "" {
		return LaunchTransaction{}, fmt.Errorf("launchpad response did not include transaction bytes")
	}

	return transaction, nil
}

func (c *Client) headers() map[string]string {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["x-api-key"] = c.apiKey
	}
	return headers
}

func compress(payload []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := brotli.NewWriterLevel(&buffer, brotli.DefaultCompression)
	if _, err := writer.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to compress token metadata: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress token metadata: %w", err)
	}
	return buffer.Bytes(), nil
}

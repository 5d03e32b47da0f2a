package faucet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

var ErrMainnetFaucet = errors.New("faucet funds are only available on test networks")

type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type FaucetRequest struct {
	AccountID string
	Network   string
}

type FaucetResponse struct {
	TransactionID string `json:"transactionId"`
	// Amount is in tinybars.
	Amount int64 `json:"amount"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(config Config) (*Client, error) {
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, fmt.Errorf("faucet base URL is required")
	}
	baseURL, err := shared.NormalizeBaseURL(config.BaseURL, "")
	if err != nil {
		return nil, fmt.Errorf("invalid faucet base URL: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = shared.DefaultServiceTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(config.APIKey),
		httpClient: httpClient,
	}, nil
}

// Request asks the faucet to fund request.AccountID.
func (c *Client) Request(ctx context.Context, request FaucetRequest) (FaucetResponse, error) {
	accountID := strings.TrimSpace(request.AccountID)
	if accountID == "" {
		return FaucetResponse{}, fmt.Errorf("account ID is required")
	}
	network, err := shared.NormalizeNetwork(request.Network)
	if err != nil {
		return FaucetResponse{}, err
	}
	if !shared.IsTestNetwork(network) {
		return FaucetResponse{}, ErrMainnetFaucet
	}

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["x-api-key"] = c.apiKey
	}

	var response FaucetResponse
	err = shared.DoJSON(ctx, c.httpClient, shared.Request{
		Service: "faucet",
		Method:  http.MethodPost,
		URL:     c.baseURL + "/drip",
		Headers: headers,
		Payload: map[string]any{
			"accountId": accountID,
			"network":   network,
		},
	}, &response)
	if err != nil {
		return FaucetResponse{}, err
	}

	return response, nil
}

package swap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

type Client struct {
	baseURL    string
	apiKey     string
	network    string
	httpClient *http.Client
}

// NewClient creates a router client. BaseURL is required.
func NewClient(config Config) (*Client, error) {
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, fmt.Errorf("swap router base URL is required")
	}
	baseURL, err := shared.NormalizeBaseURL(config.BaseURL, "")
	if err != nil {
		return nil, fmt.Errorf("invalid swap router base URL: %w", err)
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

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(config.APIKey),
		network:    network,
		httpClient: httpClient,
	}, nil
}

// Quote asks the router for the best route of Amount input units.
func (c *Client) Quote(ctx context.Context, request QuoteRequest) (Quote, error) {
	inputToken := strings.TrimSpace(request.InputToken)
	if inputToken == "" {
		inputToken = NativeToken
	}
	outputToken := strings.TrimSpace(request.OutputToken)
	if outputToken == "" {
		return Quote{}, fmt.Errorf("output token is required")
	}
	if strings.EqualFold(inputToken, outputToken) {
		return Quote{}, fmt.Errorf("input and output token must differ")
	}
	if request.Amount <= 0 {
		return Quote{}, fmt.Errorf("amount must be positive")
	}
	if request.SlippageBps < 0 || request.SlippageBps > 10_000 {
		return Quote{}, fmt.Errorf("slippage must be between 0 and 10000 basis points")
	}

	values := url.Values{}
	values.Set("inputToken", inputToken)
	values.Set("outputToken", outputToken)
	values.Set("amount", strconv.FormatInt(request.Amount, 10))
	values.Set("slippageBps", strconv.Itoa(request.SlippageBps))
	values.Set("network", c.network)

	var quote Quote
	err := shared.DoJSON(ctx, c.httpClient, shared.Request{
		Service: "swap router",
		Method:  http.MethodGet,
		URL:     c.baseURL + "/quote?" + values.Encode(),
		Headers: c.headers(),
	}, &quote)
	if err != nil {
		return Quote{}, err
	}
	if quote.OutAmount == "" {
		return Quote{}, fmt.Errorf("swap router returned no route from %s to %s", inputToken, outputToken)
	}

	return quote, nil
}

// BuildSwap turns a quote into a transaction paid by AccountID.
func (c *Client) BuildSwap(ctx context.Context, request SwapRequest) (SwapTransaction, error) {
	if strings.TrimSpace(request.AccountID) == "" {
		return SwapTransaction{}, fmt.Errorf("account ID is required")
	}

	headers := c.headers()
	headers["Idempotency-Key"] = uuid.NewString()

	var transaction SwapTransaction
	err := shared.DoJSON(ctx, c.httpClient, shared.Request{
		Service: "swap router",
		Method:  http.MethodPost,
		URL:     c.baseURL + "/swap",
		Headers: headers,
		Payload: map[string]any{
			"quote":     request.Quote,
			"accountId": strings.TrimSpace(request.AccountID),
			"network":   c.network,
		},
	}, &transaction)
	if err != nil {
		return SwapTransaction{}, err
	}
	if strings.TrimSpace(transaction.TransactionBytes) == "" {
		return SwapTransaction{}, fmt.Errorf("swap router response did not include transaction bytes")
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

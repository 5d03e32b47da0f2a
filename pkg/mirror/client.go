package mirror

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

var defaultBaseURLs = map[string]string{
	shared.NetworkMainnet:    "https://mainnet-public.mirrornode.hedera.com",
	shared.NetworkTestnet:    "https://testnet.mirrornode.hedera.com",
	shared.NetworkPreviewnet: "https://previewnet.mirrornode.hedera.com",
}

// NewClient creates a mirror client for the configured network or base URL.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL, err := shared.NormalizeBaseURL(config.BaseURL, defaultBaseURLs[network])
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAccount returns the account document for an account ID or EVM address.
func (c *Client) GetAccount(ctx context.Context, accountID string) (AccountInfo, error) {
	var accountInfo AccountInfo
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return accountInfo, fmt.Errorf("account ID is required")
	}

	path := fmt.Sprintf("/api/v1/accounts/%s", url.PathEscape(normalizedAccountID))
	if err := c.getJSON(ctx, path, &accountInfo); err != nil {
		return accountInfo, err
	}

	return accountInfo, nil
}

// GetToken returns the token detail document.
func (c *Client) GetToken(ctx context.Context, tokenID string) (TokenInfo, error) {
	var tokenInfo TokenInfo
	normalizedTokenID := strings.TrimSpace(tokenID)
	if normalizedTokenID == "" {
		return tokenInfo, fmt.Errorf("token ID is required")
	}

	path := fmt.Sprintf("/api/v1/tokens/%s", url.PathEscape(normalizedTokenID))
	if err := c.getJSON(ctx, path, &tokenInfo); err != nil {
		return tokenInfo, err
	}

	return tokenInfo, nil
}

// GetAccountTokens lists the account's token relationships, following
// pagination links. A non-empty tokenID narrows the list to that token.
func (c *Client) GetAccountTokens(
	ctx context.Context,
	accountID string,
	tokenID string,
) ([]TokenRelationship, error) {
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	values := url.Values{}
	if trimmed := strings.TrimSpace(tokenID); trimmed != "" {
		values.Set("token.id", trimmed)
	}

	next := fmt.Sprintf("/api/v1/accounts/%s/tokens", url.PathEscape(normalizedAccountID))
	if encoded := values.Encode(); encoded != "" {
		next = fmt.Sprintf("%s?%s", next, encoded)
	}

	result := make([]TokenRelationship, 0)
	for next != "" {
		var page tokenRelationshipsResponse
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, err
		}
		result = append(result, page.Tokens...)
		next = page.Links.Next
	}

	return result, nil
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) error {
	headers := make(map[string]string, len(c.headers)+1)
	if c.apiKey != "" {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", c.apiKey)
	}
	for key, value := range c.headers {
		headers[key] = value
	}

	return shared.DoJSON(ctx, c.httpClient, shared.Request{
		Service: "mirror node",
		Method:  http.MethodGet,
		URL:     c.resolveURL(pathOrURL),
		Headers: headers,
	}, target)
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

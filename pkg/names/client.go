package names

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

const DomainSuffix = ".hbar"

type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type RegisterRequest struct {
	Name string
	// SpaceKB is the storage reserved for the domain record; values below 1 become 1.
	SpaceKB   int
	AccountID string
	Network   string
}

type Registration struct {
	Domain           string `json:"domain"`
	TransactionBytes string `json:"transactionBytes"`
	ExpiresAt        string `json:"expiresAt"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(config Config) (*Client, error) {
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, fmt.Errorf("name service base URL is required")
	}
	baseURL, err := shared.NormalizeBaseURL(config.BaseURL, "")
	if err != nil {
		return nil, fmt.Errorf("invalid name service base URL: %w", err)
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

// NormalizeDomain lower-cases the name and appends the .hbar suffix. Labels
// may contain a-z, 0-9 and inner hyphens.
func NormalizeDomain(name string) (string, error) {
	domain := strings.ToLower(strings.TrimSpace(name))
	label := strings.TrimSuffix(domain, DomainSuffix)
	if label == "" {
		return "", fmt.Errorf("domain name is required")
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return "", fmt.Errorf("invalid domain name %q: hyphen at label edge", name)
	}
	for _, character := range label {
		if (character >= 'a' && character <= 'z') || (character >= '0' && character <= '9') || character == '-' {
			continue
		}
		return "", fmt.Errorf("invalid domain name %q: unsupported character %q", name, character)
	}
	return label + DomainSuffix, nil
}

// Register reserves the domain and returns the unsigned registration transaction.
func (c *Client) Register(ctx context.Context, request RegisterRequest) (Registration, error) {
	domain, err := NormalizeDomain(request.Name)
	if err != nil {
		return Registration{}, err
	}
	accountID := strings.TrimSpace(request.AccountID)
	if accountID == "" {
		return Registration{}, fmt.Errorf("account ID is required")
	}
	network, err := shared.NormalizeNetwork(request.Network)
	if err != nil {
		return Registration{}, err
	}
	spaceKB := request.SpaceKB
	if spaceKB < 1 {
		spaceKB = shared.DefaultDomainSpaceKB
	}

	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	if c.apiKey != "" {
		headers["x-api-key"] = c.apiKey
	}

	var registration Registration
	err = shared.DoJSON(ctx, c.httpClient, shared.Request{
		Service: "name service",
		Method:  http.MethodPost,
		URL:     c.baseURL + "/domains/register",
		Headers: headers,
		Payload: map[string]any{
			"domain":    domain,
			"spaceKb":   spaceKB,
			"accountId": accountID,
			"network":   network,
		},
	}, &registration)
	if err != nil {
		return Registration{}, err
	}
	if strings.TrimSpace(registration.TransactionBytes) == "" {
		return Registration{}, fmt.Errorf("name service response did not include transaction bytes")
	}
	if registration.Domain == "" {
		registration.Domain = domain
	}

	return registration, nil
}

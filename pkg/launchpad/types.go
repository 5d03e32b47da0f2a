package launchpad

import (
	"net/http"
	"time"
)

type Config struct {
	BaseURL         string
	APIKey          string
	Network         string
	HTTPClient      *http.Client
	Timeout         time.Duration
	CompressUploads bool
	// EventsURL is the launchpad's socket.io endpoint. Without it WaitForLaunch
	// is unavailable.
	EventsURL string
	// EventTimeout bounds the silence between two launch events.
	EventTimeout time.Duration
}

type TokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	Telegram    string `json:"telegram,omitempty"`
	Website     string `json:"website,omitempty"`
}

type LaunchRequest struct {
	Name        string
	Ticker      string
	MetadataURI string
	Creator     string
	// InitialLiquidity is the HBAR spent on the creator's first buy.
	InitialLiquidity float64
	// TokenID asks the launchpad to reuse a pre-created token.
	TokenID     string
	SlippageBps int
}

type LaunchTransaction struct {
	TokenID          string `json:"tokenId"`
	TransactionBytes string `json:"transactionBytes"`
}

type metadataResponse struct {
	MetadataURI string `json:"metadataUri"`
}

// LaunchEvent is a launch-progress or launch-complete notification.
type LaunchEvent struct {
	TransactionID string
	TokenID       string
	Status        string
	Progress      float64
	Completed     bool
	Error         string
}

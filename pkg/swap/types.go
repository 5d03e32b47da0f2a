package swap

import (
	"net/http"
	"time"
)

// NativeToken is the token identifier the router uses for HBAR.
const NativeToken = "HBAR"

type Config struct {
	BaseURL    string
	APIKey     string
	Network    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type QuoteRequest struct {
	InputToken  string
	OutputToken string
	// Amount is in the input token's smallest unit (tinybars for HBAR).
	Amount      int64
	SlippageBps int
}

type Quote struct {
	QuoteID     string   `json:"quoteId"`
	InputToken  string   `json:"inputToken"`
	OutputToken string   `json:"outputToken"`
	InAmount    string   `json:"inAmount"`
	OutAmount   string   `json:"outAmount"`
	MinOut      string   `json:"minimumOutAmount"`
	SlippageBps int      `json:"slippageBps"`
	PriceImpact float64  `json:"priceImpactPct"`
	Route       []string `json:"route"`
}

type SwapRequest struct {
	Quote     Quote
	AccountID string
}

type SwapTransaction struct {
	// TransactionBytes is the base64 protobuf of the frozen, unsigned transaction.
	TransactionBytes string `json:"transactionBytes"`
	TransactionID    string `json:"transactionId"`
}

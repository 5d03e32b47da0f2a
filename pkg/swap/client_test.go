package swap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	if _, err := NewClient(Config{BaseURL: "ftp://router"}); err == nil {
		t.Fatal("expected error for invalid scheme")
	}
	if _, err := NewClient(Config{BaseURL: "https://router.example.com", Network: "devnet"}); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestQuoteValidation(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://router.example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	cases := []QuoteRequest{
		{OutputToken: "", Amount: 1},
		{OutputToken: "HBAR", Amount: 1},
		{OutputToken: "0.0.5", Amount: 0},
		{OutputToken: "0.0.5", Amount: 1, SlippageBps: 10_001},
	}
	for _, request := range cases {
		if _, err := client.Quote(ctx, request); err == nil {
			t.Fatalf("expected validation error for %+v", request)
		}
	}
}

func TestQuoteAndBuildSwap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "router-key" {
			t.Fatalf("expected api key header")
		}
		switch r.URL.Path {
		case "/v1/quote":
			query := r.URL.Query()
			if query.Get("inputToken") != NativeToken || query.Get("outputToken") != "0.0.456858" {
				t.Fatalf("unexpected tokens %q", r.URL.RawQuery)
			}
			if query.Get("amount") != "100000000" || query.Get("slippageBps") != "300" {
				t.Fatalf("unexpected amount/slippage %q", r.URL.RawQuery)
			}
			if query.Get("network") != "testnet" {
				t.Fatalf("unexpected network %q", query.Get("network"))
			}
			json.NewEncoder(w).Encode(Quote{QuoteID: "q-1", InAmount: "100000000", OutAmount: "512", Route: []string{"HBAR", "0.0.456858"}})
		case "/v1/swap":
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if _, err := uuid.Parse(r.Header.Get("Idempotency-Key")); err != nil {
				t.Fatalf("expected uuid idempotency key, got %q", r.Header.Get("Idempotency-Key"))
			}
			var body struct {
				Quote     Quote  `json:"quote"`
				AccountID string `json:"accountId"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Quote.QuoteID != "q-1" || body.AccountID != "0.0.1234" {
				t.Fatalf("unexpected swap body %+v", body)
			}
			w.Write([]byte(`{"transactionBytes":"AQID"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL + "/v1/", APIKey: "router-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quote, err := client.Quote(context.Background(), QuoteRequest{
		OutputToken: "0.0.456858",
		Amount:      100_000_000,
		SlippageBps: 300,
	})
	if err != nil {
		t.Fatalf("unexpected quote error: %v", err)
	}
	if quote.OutAmount != "512" {
		t.Fatalf("unexpected out amount %q", quote.OutAmount)
	}

	transaction, err := client.BuildSwap(context.Background(), SwapRequest{Quote: quote, AccountID: "0.0.1234"})
	if err != nil {
		t.Fatalf("unexpected swap error: %v", err)
	}
	if transaction.TransactionBytes != "AQID" {
		t.Fatalf("unexpected transaction bytes %q", transaction.TransactionBytes)
	}
}

func TestQuoteNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	if _, err := client.Quote(context.Background(), QuoteRequest{OutputToken: "0.0.5", Amount: 10}); err == nil {
		t.Fatal("expected no-route error")
	}
}

func TestBuildSwapMissingBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transactionBytes":""}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	if _, err := client.BuildSwap(context.Background(), SwapRequest{AccountID: ""}); err == nil {
		t.Fatal("expected error for missing account")
	}
	if _, err := client.BuildSwap(context.Background(), SwapRequest{AccountID: "0.0.1"}); err == nil {
		t.Fatal("expected error for missing transaction bytes")
	}
}

package names

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeDomain(t *testing.T) {
	cases := map[string]string{
		"agent":        "agent.hbar",
		"  Agent.HBAR": "agent.hbar",
		"my-agent-42":  "my-agent-42.hbar",
	}
	for input, expected := range cases {
		result, err := NormalizeDomain(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if result != expected {
			t.Fatalf("expected %q for %q, got %q", expected, input, result)
		}
	}

	for _, invalid := range []string{"", ".hbar", "-agent", "agent-", "agent_1", "a.b"} {
		if _, err := NormalizeDomain(invalid); err == nil {
			t.Fatalf("expected error for %q", invalid)
		}
	}
}

func TestRegisterDefaultsSpace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/domains/register" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Idempotency-Key") == "" {
			t.Fatal("expected idempotency key")
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["domain"] != "agent.hbar" {
			t.Fatalf("unexpected domain %v", body["domain"])
		}
		if body["spaceKb"] != float64(1) {
			t.Fatalf("expected default space 1, got %v", body["spaceKb"])
		}
		w.Write([]byte(`{"transactionBytes":"AQID"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	registration, err := client.Register(context.Background(), RegisterRequest{
		Name:      "Agent",
		AccountID: "0.0.1234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registration.Domain != "agent.hbar" {
		t.Fatalf("expected domain to be filled, got %q", registration.Domain)
	}
}

func TestRegisterErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"DOMAIN_TAKEN","message":"agent.hbar is already registered"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	ctx := context.Background()

	if _, err := client.Register(ctx, RegisterRequest{Name: "agent"}); err == nil {
		t.Fatal("expected error for missing account")
	}
	if _, err := client.Register(ctx, RegisterRequest{Name: "agent", AccountID: "0.0.1"}); err == nil {
		t.Fatal("expected conflict error")
	}
}

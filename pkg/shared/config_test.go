package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	resetOperatorEnv(t)

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected testnet, got %q", config.Network)
	}
	if config.Defaults.SlippageBps != DefaultSlippageBps {
		t.Fatalf("expected slippage %d, got %d", DefaultSlippageBps, config.Defaults.SlippageBps)
	}
	if config.Defaults.Decimals() != DefaultTokenDecimals {
		t.Fatalf("expected decimals %d, got %d", DefaultTokenDecimals, config.Defaults.Decimals())
	}
	if config.Log.Level != "disabled" {
		t.Fatalf("expected disabled log level, got %q", config.Log.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.4444")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	path := filepath.Join(t.TempDir(), "agentkit.yaml")
	content := `network: MAINNET
services:
  swap:
    base_url: https://swap.example.com/
    api_key: swap-key
    timeout: 45s
  launchpad:
    base_url: https://launchpad.example.com
    events_url: wss://events.launchpad.example.com
defaults:
  slippage_bps: 150
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkMainnet || config.Operator.Network != NetworkMainnet {
		t.Fatalf("expected mainnet, got %q / %q", config.Network, config.Operator.Network)
	}
	if config.Operator.AccountID != "0.0.4444" {
		t.Fatalf("expected operator from env, got %q", config.Operator.AccountID)
	}
	if config.Services.Swap.APIKey != "swap-key" {
		t.Fatalf("unexpected swap api key %q", config.Services.Swap.APIKey)
	}
	if config.Services.Swap.Timeout != 45*time.Second {
		t.Fatalf("expected 45s timeout, got %s", config.Services.Swap.Timeout)
	}
	if config.Services.Launchpad.EventsURL != "wss://events.launchpad.example.com" {
		t.Fatalf("unexpected launchpad events URL %q", config.Services.Launchpad.EventsURL)
	}
	if config.Defaults.SlippageBps != 150 {
		t.Fatalf("expected slippage 150, got %d", config.Defaults.SlippageBps)
	}
	if config.Defaults.DomainSpaceKB != DefaultDomainSpaceKB {
		t.Fatalf("expected default domain space, got %d", config.Defaults.DomainSpaceKB)
	}
}

func TestLoadConfigKeepsZeroTokenDecimals(t *testing.T) {
	resetOperatorEnv(t)

	path := filepath.Join(t.TempDir(), "agentkit.yaml")
	if err := os.WriteFile(path, []byte("defaults:\n  token_decimals: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Defaults.TokenDecimals == nil || config.Defaults.Decimals() != 0 {
		t.Fatalf("expected explicit zero decimals, got %v", config.Defaults.TokenDecimals)
	}
}

func TestLoadConfigFileOperatorWins(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.4444")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	path := filepath.Join(t.TempDir(), "agentkit.yaml")
	content := "operator:\n  account_id: 0.0.5555\n  private_key: abc\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Operator.AccountID != "0.0.5555" || config.Operator.PrivateKey != "abc" {
		t.Fatalf("expected file operator to win, got %+v", config.Operator)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	resetOperatorEnv(t)

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	badYAML := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badYAML, []byte("network: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(badYAML); err == nil {
		t.Fatal("expected error for malformed YAML")
	}

	badNetwork := filepath.Join(t.TempDir(), "network.yaml")
	if err := os.WriteFile(badNetwork, []byte("network: devnet\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(badNetwork); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

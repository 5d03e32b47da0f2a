package shared

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const testPrivateKey = "302e020100300506032b65700422042091132178e72057a1d7528025956fe39b0b847f200ab59b2fdd367017f3087137"

func resetOperatorEnv(t *testing.T) {
	t.Helper()
	dotenvLoadOnce = sync.Once{}
	dotenvLoadOnce.Do(func() {})

	keys := []string{"HEDERA_NETWORK", "NETWORK"}
	keys = append(keys, accountIDEnvKeys...)
	keys = append(keys, privateKeyEnvKeys...)
	for _, network := range []string{"MAINNET_", "TESTNET_", "PREVIEWNET_"} {
		keys = append(keys, scopedKeys(network, accountIDEnvKeys)...)
		keys = append(keys, scopedKeys(network, privateKeyEnvKeys)...)
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestOperatorConfigFromEnvMissingAccountID(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing account ID")
	}
}

func TestOperatorConfigFromEnvMissingPrivateKey(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")

	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing private key")
	}
}

func TestOperatorConfigFromEnvDefaultNetwork(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected default network %q, got %q", NetworkTestnet, config.Network)
	}
	if config.AccountID != "0.0.12345" {
		t.Fatalf("expected account ID '0.0.12345', got %q", config.AccountID)
	}
}

func TestOperatorConfigFromEnvScopedOverrides(t *testing.T) {
	cases := []struct {
		network  string
		prefix   string
		expected string
	}{
		{NetworkMainnet, "MAINNET_", "0.0.99999"},
		{NetworkTestnet, "TESTNET_", "0.0.88888"},
		{NetworkPreviewnet, "PREVIEWNET_", "0.0.77777"},
	}

	for _, tc := range cases {
		t.Run(tc.network, func(t *testing.T) {
			resetOperatorEnv(t)
			t.Setenv("HEDERA_NETWORK", tc.network)
			t.Setenv("HEDERA_ACCOUNT_ID", "0.0.11111")
			t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)
			t.Setenv(tc.prefix+"OPERATOR_ID", tc.expected)

			config, err := OperatorConfigFromEnv()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config.AccountID != tc.expected {
				t.Fatalf("expected scoped account ID %q, got %q", tc.expected, config.AccountID)
			}
		})
	}
}

func TestOperatorConfigFromEnvFallbackOperatorKeys(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("OPERATOR_ID", "0.0.77777")
	t.Setenv("OPERATOR_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.77777" {
		t.Fatalf("expected '0.0.77777', got %q", config.AccountID)
	}
}

func TestParseDotEnvLine(t *testing.T) {
	cases := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{"FOO=bar", "FOO", "bar", true},
		{"export FOO=bar", "FOO", "bar", true},
		{`FOO="quoted value"`, "FOO", "quoted value", true},
		{"FOO='single'", "FOO", "single", true},
		{"  FOO = spaced  ", "FOO", "spaced", true},
		{"FOO=a=b", "FOO", "a=b", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"NOEQUALS", "", "", false},
		{"1BAD=value", "", "", false},
		{"=nokey", "", "", false},
	}

	for _, tc := range cases {
		key, value, ok := parseDotEnvLine(tc.line)
		if ok != tc.ok || key != tc.key || value != tc.value {
			t.Fatalf("parseDotEnvLine(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				tc.line, key, value, ok, tc.key, tc.value, tc.ok)
		}
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n_TEST_DOTENV_LOAD=loaded_value\nexport _TEST_DOTENV_EXPORT='exported'\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	defer os.Unsetenv("_TEST_DOTENV_LOAD")
	defer os.Unsetenv("_TEST_DOTENV_EXPORT")

	if !loadDotEnvFile(envPath) {
		t.Fatal("expected loadDotEnvFile to return true")
	}
	if os.Getenv("_TEST_DOTENV_LOAD") != "loaded_value" {
		t.Fatalf("expected 'loaded_value', got %q", os.Getenv("_TEST_DOTENV_LOAD"))
	}
	if os.Getenv("_TEST_DOTENV_EXPORT") != "exported" {
		t.Fatalf("expected 'exported', got %q", os.Getenv("_TEST_DOTENV_EXPORT"))
	}
}

func TestLoadDotEnvFileSkipsAlreadySet(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	t.Setenv("_TEST_DOTENV_PREEXIST", "original")
	if err := os.WriteFile(envPath, []byte("_TEST_DOTENV_PREEXIST=overridden\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	if loadDotEnvFile(envPath) {
		t.Fatal("expected nothing to be loaded")
	}
	if os.Getenv("_TEST_DOTENV_PREEXIST") != "original" {
		t.Fatalf("expected 'original' (not overridden), got %q", os.Getenv("_TEST_DOTENV_PREEXIST"))
	}
}

func TestLoadDotEnvFileNonexistent(t *testing.T) {
	if loadDotEnvFile(filepath.Join(t.TempDir(), "missing.env")) {
		t.Fatal("expected loadDotEnvFile to return false for nonexistent file")
	}
}

func TestIsValidEnvKey(t *testing.T) {
	for _, key := range []string{"A", "a_b", "A1", "HEDERA_NETWORK", "_LEADING"} {
		if !isValidEnvKey(key) {
			t.Fatalf("expected %q to be valid", key)
		}
	}
	for _, key := range []string{"", "1ABC", "A B", "A-B", "A.B"} {
		if isValidEnvKey(key) {
			t.Fatalf("expected %q to be invalid", key)
		}
	}
}

func TestParsePrivateKey(t *testing.T) {
	key, err := ParsePrivateKey(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.PublicKey().String() == "" {
		t.Fatal("expected non-empty public key")
	}

	for _, raw := range []string{"", "   ", "notavalidkey", "0xinvalidhex"} {
		if _, err := ParsePrivateKey(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

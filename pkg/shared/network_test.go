package shared

import "testing"

func TestNormalizeNetwork(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"mainnet", NetworkMainnet},
		{"MAINNET", NetworkMainnet},
		{"  testnet  ", NetworkTestnet},
		{"Previewnet", NetworkPreviewnet},
		{"", NetworkTestnet},
		{"   ", NetworkTestnet},
	}

	for _, tc := range cases {
		result, err := NormalizeNetwork(tc.input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.input, err)
		}
		if result != tc.expected {
			t.Fatalf("expected %q for input %q, got %q", tc.expected, tc.input, result)
		}
	}
}

func TestNormalizeNetworkUnsupported(t *testing.T) {
	if _, err := NormalizeNetwork("devnet"); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestIsTestNetwork(t *testing.T) {
	if IsTestNetwork("mainnet") {
		t.Fatal("mainnet is not a test network")
	}
	if !IsTestNetwork("testnet") || !IsTestNetwork("previewnet") || !IsTestNetwork("") {
		t.Fatal("expected testnet, previewnet and the default to be test networks")
	}
	if IsTestNetwork("devnet") {
		t.Fatal("unknown networks are not test networks")
	}
}

func TestNewHederaClient(t *testing.T) {
	for _, network := range []string{"mainnet", "testnet", "previewnet"} {
		client, err := NewHederaClient(network)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", network, err)
		}
		if client == nil {
			t.Fatalf("expected non-nil client for %s", network)
		}
	}

	if _, err := NewHederaClient("badnet"); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

package agentkit

import "testing"

func TestParseAccountID(t *testing.T) {
	cases := map[string]string{
		"0.0.1234": "0.0.1234",
		" 0.0.98 ": "0.0.98",
		"0x00000000000000000000000000000000000004d2": "0.0.1234",
	}
	for input, expected := range cases {
		accountID, err := ParseAccountID(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if accountID.String() != expected {
			t.Fatalf("expected %s for %q, got %s", expected, input, accountID.String())
		}
	}
}

func TestParseAccountIDEVMAlias(t *testing.T) {
	accountID, err := ParseAccountID("0x8Ba1f109551bD432803012645Ac136ddd64DBA72")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accountID.AliasEvmAddress == nil {
		t.Fatal("expected an EVM alias account ID")
	}
}

func TestParseAccountIDInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not-an-account", "0x1234"} {
		if _, err := ParseAccountID(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestParseTokenID(t *testing.T) {
	tokenID, err := ParseTokenID("0.0.5678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenID.String() != "0.0.5678" {
		t.Fatalf("unexpected token ID %s", tokenID.String())
	}

	tokenID, err = ParseTokenID("0x000000000000000000000000000000000000162e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenID.String() != "0.0.5678" {
		t.Fatalf("expected long-zero address to map to 0.0.5678, got %s", tokenID.String())
	}
}

func TestParseTokenIDRejectsNonEntityEVMAddress(t *testing.T) {
	if _, err := ParseTokenID("0x8Ba1f109551bD432803012645Ac136ddd64DBA72"); err == nil {
		t.Fatal("expected error for a non long-zero token address")
	}
	if _, err := ParseTokenID(""); err == nil {
		t.Fatal("expected error for empty token address")
	}
}

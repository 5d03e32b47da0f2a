package toolinput

import (
	"encoding/json"
	"testing"
)

func TestNormalizeRelaxed(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{name: "unquoted key", input: `{decimals: 6}`, expected: map[string]any{"decimals": float64(6)}},
		{name: "strict json untouched", input: `{"name":"Agent","decimals":6}`, expected: map[string]any{"name": "Agent", "decimals": float64(6)}},
		{name: "single quotes", input: `{name: 'Agent "A"', symbol: 'AGT'}`, expected: map[string]any{"name": `Agent "A"`, "symbol": "AGT"}},
		{name: "escaped single quote", input: `{name: 'it\'s'}`, expected: map[string]any{"name": "it's"}},
		{name: "trailing comma", input: `{a: 1, b: [1, 2,],}`, expected: map[string]any{"a": float64(1), "b": []any{float64(1), float64(2)}}},
		{name: "literals kept", input: `{flag: true, other: null}`, expected: map[string]any{"flag": true, "other": nil}},
		{name: "string content untouched", input: `{memo: "key: value, "}`, expected: map[string]any{"memo": "key: value, "}},
		{name: "nested", input: `{metadata: {uri: "ipfs://x"}}`, expected: map[string]any{"metadata": map[string]any{"uri": "ipfs://x"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, err := NormalizeRelaxed(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var decoded map[string]any
			if err := json.Unmarshal([]byte(normalized), &decoded); err != nil {
				t.Fatalf("normalized output %q is not JSON: %v", normalized, err)
			}
			expectedJSON, _ := json.Marshal(tc.expected)
			actualJSON, _ := json.Marshal(decoded)
			if string(expectedJSON) != string(actualJSON) {
				t.Fatalf("expected %s, got %s", expectedJSON, actualJSON)
			}
		})
	}
}

func TestNormalizeRelaxedRejectsUncoercibleInput(t *testing.T) {
	for _, input := range []string{`{decimals 6}`, `not json at all`, `{"open": "string}`, `{a: 'x}`} {
		if _, err := NormalizeRelaxed(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

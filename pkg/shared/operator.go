package shared

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// OperatorConfig is the account that pays for and signs every kit transaction.
type OperatorConfig struct {
	AccountID  string `yaml:"account_id"`
	PrivateKey string `yaml:"private_key"`
	Network    string `yaml:"network"`
}

var (
	accountIDEnvKeys  = []string{"HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "ACCOUNT_ID", "OPERATOR_ID"}
	privateKeyEnvKeys = []string{"HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "PRIVATE_KEY", "OPERATOR_KEY"}
)

var dotenvLoadOnce sync.Once

// OperatorConfigFromEnv reads operator credentials from the environment,
// loading the nearest .env file first. Variables prefixed with the upper-cased
// network name (TESTNET_HEDERA_ACCOUNT_ID, MAINNET_OPERATOR_KEY, ...) win over
// the unscoped ones.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	network := firstNonEmptyEnv("HEDERA_NETWORK", "NETWORK")
	if network == "" {
		network = NetworkTestnet
	}

	accountID := firstNonEmptyEnv(accountIDEnvKeys...)
	privateKey := firstNonEmptyEnv(privateKeyEnvKeys...)

	if normalized, err := NormalizeNetwork(network); err == nil {
		prefix := strings.ToUpper(normalized) + "_"
		if scoped := firstNonEmptyEnv(scopedKeys(prefix, accountIDEnvKeys)...); scoped != "" {
			accountID = scoped
		}
		if scoped := firstNonEmptyEnv(scopedKeys(prefix, privateKeyEnvKeys)...); scoped != "" {
			privateKey = scoped
		}
	}

	if accountID == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_ACCOUNT_ID is required")
	}
	if privateKey == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_PRIVATE_KEY is required")
	}

	return OperatorConfig{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    network,
	}, nil
}

func scopedKeys(prefix string, keys []string) []string {
	scoped := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "ACCOUNT_ID" || key == "PRIVATE_KEY" {
			continue
		}
		scoped = append(scoped, prefix+key)
	}
	return scoped
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}

		current := cwd
		for {
			candidate := filepath.Join(current, ".env")
			if _, statErr := os.Stat(candidate); statErr == nil {
				loadDotEnvFile(candidate)
				return
			}
			parent := filepath.Dir(current)
			if parent == current {
				return
			}
			current = parent
		}
	})
}

// loadDotEnvFile sets every valid KEY=value pair that is not already present
// in the environment and reports whether anything was set.
func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}
		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func parseDotEnvLine(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if !isValidEnvKey(key) {
		return "", "", false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		switch {
		case character >= 'A' && character <= 'Z',
			character >= 'a' && character <= 'z',
			character == '_':
		case index > 0 && character >= '0' && character <= '9':
		default:
			return false
		}
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey parses a DER or raw hex private key, trying ED25519 first,
// then ECDSA(secp256k1), then the SDK's generic parser.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	ed25519Key, edErr := hedera.PrivateKeyFromStringEd25519(candidate)
	if edErr == nil {
		return ed25519Key, nil
	}
	ecdsaKey, ecdsaErr := hedera.PrivateKeyFromStringECDSA(candidate)
	if ecdsaErr == nil {
		return ecdsaKey, nil
	}
	genericKey, genericErr := hedera.PrivateKeyFromString(candidate)
	if genericErr == nil {
		return genericKey, nil
	}

	return hedera.PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ED25519 (%v), ECDSA (%v), or generic (%v)",
		edErr,
		ecdsaErr,
		genericErr,
	)
}

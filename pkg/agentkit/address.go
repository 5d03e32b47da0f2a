package agentkit

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ParseAccountID accepts a Hedera account ID (0.0.1234, optionally with a
// checksum) or a 20-byte EVM address. Long-zero EVM addresses map back to
// their entity number; any other EVM address becomes an alias account ID.
func ParseAccountID(raw string) (hedera.AccountID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.AccountID{}, fmt.Errorf("account address is required")
	}

	if common.IsHexAddress(trimmed) {
		address := common.HexToAddress(trimmed)
		if isLongZero(address) {
			return hedera.AccountIDFromSolidityAddress(hexWithoutPrefix(address))
		}
		return hedera.AccountIDFromEvmAddress(0, 0, hexWithoutPrefix(address))
	}

	accountID, err := hedera.AccountIDFromString(trimmed)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("invalid account address %q: %w", raw, err)
	}
	return accountID, nil
}

// ParseTokenID accepts a Hedera token ID or its long-zero EVM address.
func ParseTokenID(raw string) (hedera.TokenID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.TokenID{}, fmt.Errorf("token address is required")
	}

	if common.IsHexAddress(trimmed) {
		address := common.HexToAddress(trimmed)
		if !isLongZero(address) {
			return hedera.TokenID{}, fmt.Errorf("invalid token address %q: not a Hedera token EVM address", raw)
		}
		return hedera.TokenIDFromSolidityAddress(hexWithoutPrefix(address))
	}

	tokenID, err := hedera.TokenIDFromString(trimmed)
	if err != nil {
		return hedera.TokenID{}, fmt.Errorf("invalid token address %q: %w", raw, err)
	}
	return tokenID, nil
}

// isLongZero reports whether the address encodes shard/realm/num, which on
// Hedera means the first 12 bytes hold only the shard and realm.
func isLongZero(address common.Address) bool {
	for _, value := range address[:12] {
		if value != 0 {
			return false
		}
	}
	return true
}

func hexWithoutPrefix(address common.Address) string {
	return strings.ToLower(strings.TrimPrefix(address.Hex(), "0x"))
}

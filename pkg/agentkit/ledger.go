package agentkit

import (
	"context"
	"fmt"
	"math"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// Balance returns the operator's HBAR balance when token is nil, otherwise its
// balance of the token in whole units. An unassociated token reads as zero,
// and so does an ID that names an account rather than a token: other
// accounts' balances are not queried.
func (k *Kit) Balance(ctx context.Context, token *hedera.TokenID) (float64, error) {
	accountID, err := k.operator()
	if err != nil {
		return 0, err
	}

	if token == nil {
		balance, err := hedera.NewAccountBalanceQuery().
			SetAccountID(accountID).
			Execute(k.hederaClient)
		if err != nil {
			return 0, fmt.Errorf("failed to query HBAR balance: %w", err)
		}
		return balance.Hbars.As(hedera.HbarUnits.Hbar), nil
	}

	relationships, err := k.mirrorClient.GetAccountTokens(ctx, accountID.String(), token.String())
	if err != nil {
		return 0, fmt.Errorf("failed to query token balance: %w", err)
	}
	for _, relationship := range relationships {
		if relationship.TokenID == token.String() {
			return fromSmallestUnit(relationship.Balance, relationship.Decimals), nil
		}
	}

	return 0, nil
}

// Transfer sends amount HBAR, or amount whole units of token, from the
// operator to the recipient and returns the transaction ID.
func (k *Kit) Transfer(
	ctx context.Context,
	to hedera.AccountID,
	amount float64,
	token *hedera.TokenID,
) (string, error) {
	from, err := k.operator()
	if err != nil {
		return "", err
	}
	if !(amount > 0) || math.IsInf(amount, 0) {
		return "", ErrAmount
	}

	transaction := hedera.NewTransferTransaction()
	if token == nil {
		hbar := hedera.HbarFrom(amount, hedera.HbarUnits.Hbar)
		transaction.
			AddHbarTransfer(from, hbar.Negated()).
			AddHbarTransfer(to, hbar)
	} else {
		decimals, err := k.tokenDecimals(ctx, *token)
		if err != nil {
			return "", err
		}
		units, err := toSmallestUnit(amount, decimals)
		if err != nil {
			return "", err
		}
		transaction.
			AddTokenTransfer(*token, from, -units).
			AddTokenTransfer(*token, to, units)
	}

	k.logger.Debug().
		Str("to", to.String()).
		Float64("amount", amount).
		Bool("token", token != nil).
		Msg("submitting transfer")

	response, err := transaction.Execute(k.hederaClient)
	if err != nil {
		return "", fmt.Errorf("failed to execute transfer: %w", err)
	}
	if _, err := k.awaitReceipt("transfer", response); err != nil {
		return "", err
	}

	return response.TransactionID.String(), nil
}

func (k *Kit) tokenDecimals(ctx context.Context, token hedera.TokenID) (int, error) {
	info, err := k.mirrorClient.GetToken(ctx, token.String())
	if err != nil {
		return 0, fmt.Errorf("failed to look up token %s: %w", token.String(), err)
	}
	decimals, err := info.DecimalPlaces()
	if err != nil {
		return 0, fmt.Errorf("token %s has invalid decimals %q: %w", token.String(), info.Decimals, err)
	}
	return decimals, nil
}

func toSmallestUnit(amount float64, decimals int) (int64, error) {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return 0, ErrAmount
	}
	scaled := math.Round(amount * math.Pow10(decimals))
	if scaled < 1 {
		return 0, fmt.Errorf("amount %v is below the token's smallest unit (%d decimals)", amount, decimals)
	}
	if scaled >= math.MaxInt64 {
		return 0, fmt.Errorf("amount %v overflows the token's supply range", amount)
	}
	return int64(scaled), nil
}

func fromSmallestUnit(units int64, decimals int) float64 {
	return float64(units) / math.Pow10(decimals)
}

package langchaingo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/toolinput"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/tmc/langchaingo/tools"
)

type balanceArgs struct {
	token *hedera.TokenID
}

// NewBalanceTool reports the operator's HBAR balance, or its balance of the
// token named by the input.
func NewBalanceTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[balanceArgs]{
		name: "hedera_balance",
		description: `Get the balance of the agent's Hedera wallet.
Input (optional): a token ID such as 0.0.5678 or its 0x EVM address.
With no input the HBAR balance is returned; otherwise the balance of that token in whole units.
Only the agent's own wallet is queried: an ID is always read as a token, never as another account.`,
		action: "getting balance",
		render: RenderText,
		parseRaw: func(input string) (balanceArgs, error) {
			if input == "" {
				return balanceArgs{}, nil
			}
			tokenID, err := agentkit.ParseTokenID(input)
			if err != nil {
				return balanceArgs{}, err
			}
			return balanceArgs{token: &tokenID}, nil
		},
		execute: func(ctx context.Context, args balanceArgs) Result {
			balance, err := kit.Balance(ctx, args.token)
			if err != nil {
				return Failure(err)
			}
			return Success(strconv.FormatFloat(balance, 'f', -1, 64), nil)
		},
		options: buildOptions(opts),
	}
}

type transferArgs struct {
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	TokenID string  `json:"tokenId"`
}

// NewTransferTool sends HBAR or a fungible token from the operator.
func NewTransferTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[transferArgs]{
		name: "hedera_transfer",
		description: `Transfer HBAR or a fungible token to another Hedera account.
Input (JSON):
  to: recipient account ID (0.0.1234) or EVM address (required)
  amount: amount in whole units, e.g. 1.5 (required)
  tokenId: token to send; omit to send HBAR (optional)`,
		action: "transferring tokens",
		render: RenderText,
		rules:  toolinput.Rules{toolinput.RequiredString("to"), toolinput.OptionalString("tokenId")},
		execute: func(ctx context.Context, args transferArgs) Result {
			recipient, err := agentkit.ParseAccountID(args.To)
			if err != nil {
				return Failure(err)
			}
			token, err := optionalTokenID(args.TokenID)
			if err != nil {
				return Failure(err)
			}

			transactionID, err := kit.Transfer(ctx, recipient, args.Amount, token)
			if err != nil {
				return Failure(err)
			}

			unit := "HBAR"
			if token != nil {
				unit = "of token " + token.String()
			}
			amount := strconv.FormatFloat(args.Amount, 'f', -1, 64)
			return Success(
				fmt.Sprintf("Successfully transferred %s %s to %s. Transaction ID: %s", amount, unit, strings.TrimSpace(args.To), transactionID),
				map[string]any{"transactionId": transactionID},
			)
		},
		options: buildOptions(opts),
	}
}

func optionalTokenID(raw string) (*hedera.TokenID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	tokenID, err := agentkit.ParseTokenID(raw)
	if err != nil {
		return nil, err
	}
	return &tokenID, nil
}

func optionalAccountID(raw string) (*hedera.AccountID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	accountID, err := agentkit.ParseAccountID(raw)
	if err != nil {
		return nil, err
	}
	return &accountID, nil
}

// normalizeRawInput trims whitespace and one pair of surrounding quotes, which
// agents often add around plain-text arguments.
func normalizeRawInput(input string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) >= 2 {
		first, last := trimmed[0], trimmed[len(trimmed)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		}
	}
	return trimmed
}

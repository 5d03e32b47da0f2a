package langchaingo

import (
	"context"
	"fmt"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/toolinput"
	"github.com/tmc/langchaingo/tools"
)

type tradeArgs struct {
	OutputTokenID string  `json:"outputTokenId"`
	InputAmount   float64 `json:"inputAmount"`
	InputTokenID  string  `json:"inputTokenId"`
	SlippageBps   int     `json:"slippageBps"`
}

// NewTradeTool swaps tokens through the configured swap router.
func NewTradeTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[tradeArgs]{
		name: "hedera_trade",
		description: `Swap tokens on Hedera through the DEX router.
Input (JSON):
  outputTokenId: token to buy (required)
  inputAmount: amount of the input token to sell, in whole units (required)
  inputTokenId: token to sell; omit to sell HBAR (optional)
  slippageBps: slippage tolerance in basis points, default 300 (optional)
Returns the transaction ID.`,
		action: "executing trade",
		render: RenderText,
		rules: toolinput.Rules{
			toolinput.RequiredString("outputTokenId"),
			toolinput.OptionalString("inputTokenId"),
			toolinput.OptionalCount("slippageBps"),
		},
		execute: func(ctx context.Context, args tradeArgs) Result {
			output, err := agentkit.ParseTokenID(args.OutputTokenID)
			if err != nil {
				return Failure(err)
			}
			input, err := optionalTokenID(args.InputTokenID)
			if err != nil {
				return Failure(err)
			}

			transactionID, err := kit.Trade(ctx, output, args.InputAmount, input, args.SlippageBps)
			if err != nil {
				return Failure(err)
			}
			return Success(
				fmt.Sprintf("Trade executed successfully. Transaction ID: %s", transactionID),
				map[string]any{"transactionId": transactionID},
			)
		},
		options: buildOptions(opts),
	}
}

// NewRequestFundsTool asks the network faucet for test HBAR. Input is ignored.
func NewRequestFundsTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[struct{}]{
		name:        "hedera_request_funds",
		description: "Request test HBAR from the faucet for the agent's wallet. Only works on testnet and previewnet. No input required.",
		action:      "requesting funds",
		render:      RenderText,
		parseRaw:    ignoreInput,
		execute: func(ctx context.Context, _ struct{}) Result {
			if err := kit.RequestFaucetFunds(ctx); err != nil {
				return Failure(err)
			}
			return Success("Successfully requested faucet funds", nil)
		},
		options: buildOptions(opts),
	}
}

type registerDomainArgs struct {
	Name    string `json:"name"`
	SpaceKB *int   `json:"spaceKB"`
}

// NewRegisterDomainTool registers a .hbar name for the agent.
func NewRegisterDomainTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[registerDomainArgs]{
		name: "hedera_register_domain",
		description: `Register a .hbar domain for the agent's wallet.
Input (JSON):
  name: domain name, with or without the .hbar suffix (required)
  spaceKB: storage to reserve in KB, default 1 (optional)
Returns the transaction ID.`,
		action: "registering domain",
		render: RenderText,
		rules:  toolinput.Rules{toolinput.RequiredString("name"), toolinput.OptionalCount("spaceKB")},
		execute: func(ctx context.Context, args registerDomainArgs) Result {
			spaceKB := kit.Defaults().DomainSpaceKB
			if args.SpaceKB != nil {
				spaceKB = *args.SpaceKB
			}

			transactionID, err := kit.RegisterDomain(ctx, args.Name, spaceKB)
			if err != nil {
				return Failure(err)
			}
			return Success(
				fmt.Sprintf("Domain registered successfully. Transaction ID: %s", transactionID),
				map[string]any{"transactionId": transactionID},
			)
		},
		options: buildOptions(opts),
	}
}

// NewWalletAddressTool returns the operator account ID. Unlike the other
// tools, a kit failure is returned as the error.
func NewWalletAddressTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[struct{}]{
		name:        "hedera_get_wallet_address",
		description: "Get the Hedera account ID of the agent's wallet. No input required.",
		action:      "getting wallet address",
		render:      RenderPropagate,
		parseRaw:    ignoreInput,
		execute: func(_ context.Context, _ struct{}) Result {
			accountID, err := kit.WalletAddress()
			if err != nil {
				return Failure(err)
			}
			return Success(accountID.String(), nil)
		},
		options: buildOptions(opts),
	}
}

type launchTokenArgs struct {
	TokenName        string  `json:"tokenName"`
	TokenTicker      string  `json:"tokenTicker"`
	Description      string  `json:"description"`
	Twitter          string  `json:"twitter"`
	Telegram         string  `json:"telegram"`
	Website          string  `json:"website"`
	ImageURL         string  `json:"imageUrl"`
	InitialLiquidity float64 `json:"initialLiquidityHBAR"`
	TokenID          string  `json:"tokenId"`
	SlippageBps      int     `json:"slippageBps"`
}

var launchTokenRules = toolinput.Rules{
	toolinput.RequiredString("tokenName"),
	toolinput.RequiredString("tokenTicker"),
	toolinput.OptionalString("description"),
	toolinput.OptionalString("twitter"),
	toolinput.OptionalString("telegram"),
	toolinput.OptionalString("website"),
	toolinput.OptionalString("imageUrl"),
	toolinput.OptionalNumber("initialLiquidityHBAR"),
	toolinput.OptionalString("tokenId"),
	toolinput.OptionalCount("slippageBps"),
}

// NewLaunchTokenTool launches a token on the launchpad. Both outcomes are
// rendered as JSON; failures carry a code, UNKNOWN_ERROR when none is known.
func NewLaunchTokenTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[launchTokenArgs]{
		name: "hedera_launch_token",
		description: `Launch a new token on the Hedera launchpad.
Input (JSON):
  tokenName: token name (required)
  tokenTicker: token ticker (required)
  description, twitter, telegram, website, imageUrl: metadata strings (optional)
  initialLiquidityHBAR: HBAR for the initial buy (optional)
  tokenId: launch an existing token instead of creating one (optional)
  slippageBps: slippage for the initial buy in basis points (optional)
Any other field is rejected.
Returns JSON with status, message, tokenId, transactionId and metadataUri, or status "error" with message and code.`,
		action: "launching token",
		render: RenderJSON,
		rules:  launchTokenRules,
		closed: true,
		execute: func(ctx context.Context, args launchTokenArgs) Result {
			tokenID, err := optionalTokenID(args.TokenID)
			if err != nil {
				return Failure(err)
			}

			result, err := kit.LaunchToken(ctx, args.TokenName, args.TokenTicker, agentkit.LaunchOptions{
				Description:      args.Description,
				Twitter:          args.Twitter,
				Telegram:         args.Telegram,
				Website:          args.Website,
				ImageURL:         args.ImageURL,
				InitialLiquidity: args.InitialLiquidity,
				TokenID:          tokenID,
				SlippageBps:      args.SlippageBps,
			})
			if err != nil {
				return Failure(err)
			}
			return Success("Token launched successfully", map[string]any{
				"tokenId":       result.TokenID,
				"transactionId": result.TransactionID,
				"metadataUri":   result.MetadataURI,
			})
		},
		options: buildOptions(opts),
	}
}

func ignoreInput(string) (struct{}, error) {
	return struct{}{}, nil
}

package langchaingo

import (
	"context"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// Kit is the subset of *agentkit.Kit the tools call. All tools built by
// NewTools share one Kit.
type Kit interface {
	Balance(ctx context.Context, token *hedera.TokenID) (float64, error)
	Transfer(ctx context.Context, to hedera.AccountID, amount float64, token *hedera.TokenID) (string, error)
	DeployToken(ctx context.Context, options agentkit.DeployTokenOptions) (agentkit.DeployTokenResult, error)
	DeployCollection(ctx context.Context, options agentkit.CollectionOptions) (agentkit.CollectionResult, error)
	MintNFT(
		ctx context.Context,
		collection hedera.TokenID,
		metadata agentkit.NFTMetadata,
		recipient *hedera.AccountID,
	) (agentkit.MintResult, error)
	Trade(
		ctx context.Context,
		output hedera.TokenID,
		inputAmount float64,
		input *hedera.TokenID,
		slippageBps int,
	) (string, error)
	RequestFaucetFunds(ctx context.Context) error
	RegisterDomain(ctx context.Context, name string, spaceKB int) (string, error)
	WalletAddress() (hedera.AccountID, error)
	LaunchToken(ctx context.Context, name, ticker string, options agentkit.LaunchOptions) (agentkit.LaunchResult, error)
	// Defaults supplies the values tools use when an argument is omitted.
	Defaults() shared.DefaultsConfig
}

var _ Kit = (*agentkit.Kit)(nil)

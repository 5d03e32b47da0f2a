package langchaingo

import (
	"context"
	"fmt"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/toolinput"
	"github.com/tmc/langchaingo/tools"
)

type deployTokenArgs struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Decimals      *uint   `json:"decimals"`
	InitialSupply float64 `json:"initialSupply"`
}

// NewDeployTokenTool creates a fungible token. It accepts relaxed JSON.
func NewDeployTokenTool(kit Kit, opts ...Option) tools.Tool {
	options := buildOptions(append([]Option{WithLenientInput()}, opts...))
	return &adapter[deployTokenArgs]{
		name: "hedera_deploy_token",
		description: `Deploy a new fungible token on Hedera with the agent as treasury.
Input (JSON, all optional):
  name: token name (default "Agent Token")
  symbol: token symbol (default "AGENT")
  decimals: decimal places, a non-negative integer (default 9)
  initialSupply: whole tokens minted to the agent
Returns the new token ID.`,
		action: "deploying token",
		render: RenderText,
		rules: toolinput.Rules{
			toolinput.OptionalString("name"),
			toolinput.OptionalString("symbol"),
			toolinput.OptionalCount("decimals"),
			toolinput.OptionalNumber("initialSupply"),
		},
		execute: func(ctx context.Context, args deployTokenArgs) Result {
			decimals := kit.Defaults().Decimals()
			if args.Decimals != nil {
				decimals = *args.Decimals
			}

			result, err := kit.DeployToken(ctx, agentkit.DeployTokenOptions{
				Name:          args.Name,
				Symbol:        args.Symbol,
				Decimals:      decimals,
				InitialSupply: args.InitialSupply,
			})
			if err != nil {
				return Failure(err)
			}
			return Success(
				fmt.Sprintf("Token deployed successfully. Token ID: %s", result.TokenID.String()),
				map[string]any{"tokenId": result.TokenID.String(), "transactionId": result.TransactionID},
			)
		},
		options: options,
	}
}

type creatorArgs struct {
	Address    string `json:"address"`
	Percentage int    `json:"percentage"`
}

type deployCollectionArgs struct {
	Name               string        `json:"name"`
	Symbol             string        `json:"symbol"`
	URI                string        `json:"uri"`
	RoyaltyBasisPoints int           `json:"royaltyBasisPoints"`
	Creators           []creatorArgs `json:"creators"`
}

// NewDeployCollectionTool creates an NFT collection. Creator percentages are
// forwarded without checking that they sum to 100.
func NewDeployCollectionTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[deployCollectionArgs]{
		name: "hedera_deploy_collection",
		description: `Deploy a new NFT collection on Hedera.
Input (JSON):
  name: collection name (required)
  uri: collection metadata URI (required)
  symbol: collection symbol (optional)
  royaltyBasisPoints: royalty on secondary sales, 500 = 5% (optional)
  creators: [{"address": "0.0.1234", "percentage": 100}] royalty split (optional)
Returns the collection token ID.`,
		action: "deploying collection",
		render: RenderText,
		rules: toolinput.Rules{
			toolinput.RequiredString("name"),
			toolinput.RequiredString("uri"),
			toolinput.OptionalString("symbol"),
			toolinput.OptionalCount("royaltyBasisPoints"),
			toolinput.OptionalArray("creators"),
		},
		execute: func(ctx context.Context, args deployCollectionArgs) Result {
			creators := make([]agentkit.Creator, 0, len(args.Creators))
			for _, creator := range args.Creators {
				accountID, err := agentkit.ParseAccountID(creator.Address)
				if err != nil {
					return Failure(err)
				}
				creators = append(creators, agentkit.Creator{AccountID: accountID, Percentage: creator.Percentage})
			}

			result, err := kit.DeployCollection(ctx, agentkit.CollectionOptions{
				Name:               args.Name,
				Symbol:             args.Symbol,
				URI:                args.URI,
				RoyaltyBasisPoints: args.RoyaltyBasisPoints,
				Creators:           creators,
			})
			if err != nil {
				return Failure(err)
			}
			return Success(
				fmt.Sprintf("Collection deployed successfully. Token ID: %s", result.TokenID.String()),
				map[string]any{"tokenId": result.TokenID.String(), "transactionId": result.TransactionID},
			)
		},
		options: buildOptions(opts),
	}
}

type mintNFTArgs struct {
	CollectionID string `json:"collectionId"`
	Metadata     struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		URI    string `json:"uri"`
	} `json:"metadata"`
	Recipient string `json:"recipient"`
}

// NewMintNFTTool mints one NFT. Without a recipient the agent keeps it.
func NewMintNFTTool(kit Kit, opts ...Option) tools.Tool {
	return &adapter[mintNFTArgs]{
		name: "hedera_mint_nft",
		description: `Mint an NFT into an existing Hedera collection.
Input (JSON):
  collectionId: collection token ID (required)
  metadata: {"uri": "ipfs://..."} (required); the uri is stored on chain as the NFT
    metadata, so name and symbol belong in the document it points to
    and are not recorded
  recipient: account to receive the NFT; defaults to the agent (optional)
Returns the NFT ID (serial@collection).`,
		action: "minting NFT",
		render: RenderText,
		rules: toolinput.Rules{
			toolinput.RequiredString("collectionId"),
			toolinput.RequiredObject("metadata"),
			toolinput.OptionalString("recipient"),
		},
		execute: func(ctx context.Context, args mintNFTArgs) Result {
			collection, err := agentkit.ParseTokenID(args.CollectionID)
			if err != nil {
				return Failure(err)
			}
			recipient, err := optionalAccountID(args.Recipient)
			if err != nil {
				return Failure(err)
			}

			result, err := kit.MintNFT(ctx, collection, agentkit.NFTMetadata{
				Name:   args.Metadata.Name,
				Symbol: args.Metadata.Symbol,
				URI:    args.Metadata.URI,
			}, recipient)
			if err != nil {
				return Failure(err)
			}
			return Success(
				fmt.Sprintf("NFT minted successfully. NFT ID: %s", result.NftID.String()),
				map[string]any{"nftId": result.NftID.String(), "transactionId": result.TransactionID},
			)
		},
		options: buildOptions(opts),
	}
}

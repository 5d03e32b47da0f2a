package agentkit

import hedera "github.com/hashgraph/hedera-sdk-go/v2"

type DeployTokenOptions struct {
	Name     string
	Symbol   string
	Decimals uint
	// InitialSupply is in whole tokens and is minted to the operator.
	InitialSupply float64
}

type DeployTokenResult struct {
	TokenID       hedera.TokenID
	TransactionID string
}

// Creator receives Percentage of the collection's royalty.
type Creator struct {
	AccountID  hedera.AccountID
	Percentage int
}

type CollectionOptions struct {
	Name               string
	Symbol             string
	URI                string
	RoyaltyBasisPoints int
	Creators           []Creator
}

type CollectionResult struct {
	TokenID       hedera.TokenID
	TransactionID string
}

// NFTMetadata describes a mint. Only URI goes on chain, as the serial's
// metadata bytes; Name and Symbol are logged and belong in the document at URI.
type NFTMetadata struct {
	Name   string
	Symbol string
	URI    string
}

type MintResult struct {
	NftID         hedera.NftID
	TransactionID string
}

type LaunchOptions struct {
	Description string
	Twitter     string
	Telegram    string
	Website     string
	ImageURL    string
	// InitialLiquidity is the HBAR spent on the creator's first buy.
	InitialLiquidity float64
	// TokenID reuses an existing token instead of creating a new one.
	TokenID     *hedera.TokenID
	SlippageBps int
}

type LaunchResult struct {
	TokenID       string
	TransactionID string
	MetadataURI   string
}

package agentkit

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	defaultTokenName      = "Agent Token"
	defaultTokenSymbol    = "AGENT"
	defaultCollectionSym  = "NFT"
	royaltyDenominator    = 10_000 * 100
	maxCustomFees         = 10
	tokenCreateMaxFeeHbar = 50
)

// DeployToken creates a fungible token with the operator as treasury, admin
// and supply key holder.
func (k *Kit) DeployToken(ctx context.Context, options DeployTokenOptions) (DeployTokenResult, error) {
	operatorID, err := k.operator()
	if err != nil {
		return DeployTokenResult{}, err
	}

	name := strings.TrimSpace(options.Name)
	if name == "" {
		name = defaultTokenName
	}
	symbol := strings.TrimSpace(options.Symbol)
	if symbol == "" {
		symbol = defaultTokenSymbol
	}

	var initialSupply int64
	if options.InitialSupply > 0 {
		initialSupply, err = toSmallestUnit(options.InitialSupply, int(options.Decimals))
		if err != nil {
			return DeployTokenResult{}, err
		}
	}

	operatorKey := k.operatorKey.PublicKey()
	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(name).
		SetTokenSymbol(symbol).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetSupplyType(hedera.TokenSupplyTypeInfinite).
		SetDecimals(options.Decimals).
		SetInitialSupply(uint64(initialSupply)).
		SetTreasuryAccountID(operatorID).
		SetAutoRenewAccount(operatorID).
		SetAdminKey(operatorKey).
		SetSupplyKey(operatorKey).
		SetMaxTransactionFee(hedera.NewHbar(tokenCreateMaxFeeHbar))

	k.logger.Debug().Str("name", name).Str("symbol", symbol).Uint("decimals", options.Decimals).Msg("creating token")

	response, err := transaction.Execute(k.hederaClient)
	if err != nil {
		return DeployTokenResult{}, fmt.Errorf("failed to execute token create transaction: %w", err)
	}
	receipt, err := k.awaitReceipt("token create", response)
	if err != nil {
		return DeployTokenResult{}, err
	}
	if receipt.TokenID == nil {
		return DeployTokenResult{}, fmt.Errorf("token create receipt did not include token ID")
	}

	return DeployTokenResult{
		TokenID:       *receipt.TokenID,
		TransactionID: response.TransactionID.String(),
	}, nil
}

// DeployCollection creates an NFT collection. The collection URI is stored as
// the token memo and the royalty is split across creators by percentage;
// percentages are passed through without checking their sum.
func (k *Kit) DeployCollection(ctx context.Context, options CollectionOptions) (CollectionResult, error) {
	operatorID, err := k.operator()
	if err != nil {
		return CollectionResult{}, err
	}

	name := strings.TrimSpace(options.Name)
	if name == "" {
		return CollectionResult{}, fmt.Errorf("collection name is required")
	}
	symbol := strings.TrimSpace(options.Symbol)
	if symbol == "" {
		symbol = defaultCollectionSym
	}

	fees, err := royaltyFees(options.RoyaltyBasisPoints, options.Creators, operatorID)
	if err != nil {
		return CollectionResult{}, err
	}

	operatorKey := k.operatorKey.PublicKey()
	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(name).
		SetTokenSymbol(symbol).
		SetTokenMemo(strings.TrimSpace(options.URI)).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetSupplyType(hedera.TokenSupplyTypeInfinite).
		SetDecimals(0).
		SetInitialSupply(0).
		SetTreasuryAccountID(operatorID).
		SetAutoRenewAccount(operatorID).
		SetAdminKey(operatorKey).
		SetSupplyKey(operatorKey).
		SetMaxTransactionFee(hedera.NewHbar(tokenCreateMaxFeeHbar))
	if len(fees) > 0 {
		transaction.SetCustomFees(fees)
	}

	k.logger.Debug().Str("name", name).Int("royalty_bps", options.RoyaltyBasisPoints).Int("creators", len(options.Creators)).Msg("creating collection")

	response, err := transaction.Execute(k.hederaClient)
	if err != nil {
		return CollectionResult{}, fmt.Errorf("failed to execute collection create transaction: %w", err)
	}
	receipt, err := k.awaitReceipt("collection create", response)
	if err != nil {
		return CollectionResult{}, err
	}
	if receipt.TokenID == nil {
		return CollectionResult{}, fmt.Errorf("collection create receipt did not include token ID")
	}

	return CollectionResult{
		TokenID:       *receipt.TokenID,
		TransactionID: response.TransactionID.String(),
	}, nil
}

func royaltyFees(basisPoints int, creators []Creator, fallback hedera.AccountID) ([]hedera.Fee, error) {
	if basisPoints <= 0 {
		return nil, nil
	}
	if basisPoints > 10_000 {
		return nil, fmt.Errorf("royalty must be at most 10000 basis points, got %d", basisPoints)
	}

	collectors := creators
	if len(collectors) == 0 {
		collectors = []Creator{{AccountID: fallback, Percentage: 100}}
	}
	if len(collectors) > maxCustomFees {
		return nil, fmt.Errorf("at most %d creators can receive royalties, got %d", maxCustomFees, len(collectors))
	}

	fees := make([]hedera.Fee, 0, len(collectors))
	for _, creator := range collectors {
		if creator.Percentage <= 0 {
			continue
		}
		fee := hedera.NewCustomRoyaltyFee().
			SetNumerator(int64(basisPoints) * int64(creator.Percentage)).
			SetDenominator(royaltyDenominator).
			SetFeeCollectorAccountID(creator.AccountID)
		fees = append(fees, fee)
	}

	return fees, nil
}

// MintNFT mints one serial of the collection carrying metadata.URI. The
// operator keeps the NFT when recipient is nil or is the operator itself;
// otherwise the serial is transferred, which requires the recipient to be
// associated with the collection.
func (k *Kit) MintNFT(
	ctx context.Context,
	collection hedera.TokenID,
	metadata NFTMetadata,
	recipient *hedera.AccountID,
) (MintResult, error) {
	operatorID, err := k.operator()
	if err != nil {
		return MintResult{}, err
	}
	uri := strings.TrimSpace(metadata.URI)
	if uri == "" {
		return MintResult{}, fmt.Errorf("metadata uri is required")
	}

	k.logger.Debug().Str("collection", collection.String()).Str("name", metadata.Name).Msg("minting NFT")

	response, err := hedera.NewTokenMintTransaction().
		SetTokenID(collection).
		SetMetadata([]byte(uri)).
		Execute(k.hederaClient)
	if err != nil {
		return MintResult{}, fmt.Errorf("failed to execute mint transaction: %w", err)
	}
	receipt, err := k.awaitReceipt("mint", response)
	if err != nil {
		return MintResult{}, err
	}
	if len(receipt.SerialNumbers) == 0 {
		return MintResult{}, fmt.Errorf("mint receipt did not include a serial number")
	}

	nftID := hedera.NftID{TokenID: collection, SerialNumber: receipt.SerialNumbers[0]}
	result := MintResult{NftID: nftID, TransactionID: response.TransactionID.String()}

	if recipient == nil || recipient.String() == operatorID.String() {
		return result, nil
	}

	transferResponse, err := hedera.NewTransferTransaction().
		AddNftTransfer(nftID, operatorID, *recipient).
		Execute(k.hederaClient)
	if err != nil {
		return MintResult{}, fmt.Errorf("minted %s but failed to transfer it to %s: %w", nftID.String(), recipient.String(), err)
	}
	if _, err := k.awaitReceipt("nft transfer", transferResponse); err != nil {
		return MintResult{}, fmt.Errorf("minted %s but failed to transfer it to %s: %w", nftID.String(), recipient.String(), err)
	}
	result.TransactionID = transferResponse.TransactionID.String()

	return result, nil
}

package agentkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashgraph-online/agent-kit-go/pkg/faucet"
	"github.com/hashgraph-online/agent-kit-go/pkg/launchpad"
	"github.com/hashgraph-online/agent-kit-go/pkg/names"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
	"github.com/hashgraph-online/agent-kit-go/pkg/swap"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const hbarDecimals = 8

// Trade swaps inputAmount of input (HBAR when nil) into output through the
// swap router. A slippage of zero uses the configured default.
func (k *Kit) Trade(
	ctx context.Context,
	output hedera.TokenID,
	inputAmount float64,
	input *hedera.TokenID,
	slippageBps int,
) (string, error) {
	accountID, err := k.operator()
	if err != nil {
		return "", err
	}
	if k.swapClient == nil {
		return "", ServiceNotConfiguredError{Service: "swap"}
	}
	if slippageBps <= 0 {
		slippageBps = k.defaults.SlippageBps
	}

	inputToken := swap.NativeToken
	decimals := hbarDecimals
	if input != nil {
		inputToken = input.String()
		decimals, err = k.tokenDecimals(ctx, *input)
		if err != nil {
			return "", err
		}
	}
	amount, err := toSmallestUnit(inputAmount, decimals)
	if err != nil {
		return "", err
	}

	quote, err := k.swapClient.Quote(ctx, swap.QuoteRequest{
		InputToken:  inputToken,
		OutputToken: output.String(),
		Amount:      amount,
		SlippageBps: slippageBps,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get swap quote: %w", err)
	}
	k.logger.Debug().
		Str("input", inputToken).
		Str("output", output.String()).
		Str("in_amount", quote.InAmount).
		Str("out_amount", quote.OutAmount).
		Int("slippage_bps", slippageBps).
		Msg("swap quote received")

	transaction, err := k.swapClient.BuildSwap(ctx, swap.SwapRequest{Quote: quote, AccountID: accountID.String()})
	if err != nil {
		return "", fmt.Errorf("failed to build swap transaction: %w", err)
	}

	return k.executeEncoded("swap", transaction.TransactionBytes)
}

// RequestFaucetFunds asks the test network faucet to fund the operator.
func (k *Kit) RequestFaucetFunds(ctx context.Context) error {
	accountID, err := k.operator()
	if err != nil {
		return err
	}
	if !shared.IsTestNetwork(k.network) {
		return faucet.ErrMainnetFaucet
	}
	if k.faucetClient == nil {
		return ServiceNotConfiguredError{Service: "faucet"}
	}

	response, err := k.faucetClient.Request(ctx, faucet.FaucetRequest{
		AccountID: accountID.String(),
		Network:   k.network,
	})
	if err != nil {
		return err
	}

	k.logger.Debug().
		Str("account", accountID.String()).
		Str("transaction", response.TransactionID).
		Int64("amount", response.Amount).
		Msg("faucet funds received")
	return nil
}

// RegisterDomain registers name (".hbar" appended when missing) for the
// operator and returns the registration transaction ID.
func (k *Kit) RegisterDomain(ctx context.Context, name string, spaceKB int) (string, error) {
	accountID, err := k.operator()
	if err != nil {
		return "", err
	}
	if k.namesClient == nil {
		return "", ServiceNotConfiguredError{Service: "name"}
	}
	if spaceKB <= 0 {
		spaceKB = k.defaults.DomainSpaceKB
	}

	registration, err := k.namesClient.Register(ctx, names.RegisterRequest{
		Name:      name,
		SpaceKB:   spaceKB,
		AccountID: accountID.String(),
		Network:   k.network,
	})
	if err != nil {
		return "", err
	}

	k.logger.Debug().Str("domain", registration.Domain).Int("space_kb", spaceKB).Msg("domain reserved")
	return k.executeEncoded("domain registration", registration.TransactionBytes)
}

// LaunchToken publishes the token's metadata to the launchpad, then signs and
// submits the launch transaction it returns.
func (k *Kit) LaunchToken(ctx context.Context, name, ticker string, options LaunchOptions) (LaunchResult, error) {
	accountID, err := k.operator()
	if err != nil {
		return LaunchResult{}, err
	}
	if k.launchpad == nil {
		return LaunchResult{}, ServiceNotConfiguredError{Service: "launchpad"}
	}

	metadataURI, err := k.launchpad.UploadMetadata(ctx, launchpad.TokenMetadata{
		Name:        strings.TrimSpace(name),
		Symbol:      strings.TrimSpace(ticker),
		Description: options.Description,
		ImageURL:    options.ImageURL,
		Twitter:     options.Twitter,
		Telegram:    options.Telegram,
		Website:     options.Website,
	})
	if err != nil {
		return LaunchResult{}, err
	}

	request := launchpad.LaunchRequest{
		Name:             strings.TrimSpace(name),
		Ticker:           strings.TrimSpace(ticker),
		MetadataURI:      metadataURI,
		Creator:          accountID.String(),
		InitialLiquidity: options.InitialLiquidity,
		SlippageBps:      options.SlippageBps,
	}
	if options.TokenID != nil {
		request.TokenID = options.TokenID.String()
	}

	launch, err := k.launchpad.CreateLaunch(ctx, request)
	if err != nil {
		return LaunchResult{}, err
	}

	transactionID, err := k.executeEncoded("token launch", launch.TransactionBytes)
	if err != nil {
		return LaunchResult{}, err
	}

	tokenID := launch.TokenID
	if tokenID == "" && options.TokenID != nil {
		tokenID = options.TokenID.String()
	}
	if tokenID == "" && k.launchpad.HasEvents() {
		event, waitErr := k.launchpad.WaitForLaunch(ctx, transactionID)
		if waitErr != nil {
			k.logger.Warn().Err(waitErr).Str("transaction", transactionID).Msg("launch submitted but token ID is not yet known")
		} else {
			tokenID = event.TokenID
		}
	}

	return LaunchResult{
		TokenID:       tokenID,
		TransactionID: transactionID,
		MetadataURI:   metadataURI,
	}, nil
}

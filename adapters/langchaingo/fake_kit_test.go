package langchaingo

import (
	"context"
	"sync"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

type kitCall struct {
	method string
	args   []any
}

// fakeKit records every call and returns the configured values.
type fakeKit struct {
	mu    sync.Mutex
	calls []kitCall

	err       error
	balance   float64
	txID      string
	token     hedera.TokenID
	nft       hedera.NftID
	wallet    hedera.AccountID
	launch    agentkit.LaunchResult
	walletErr error
	defaults  shared.DefaultsConfig
}

func newFakeKit() *fakeKit {
	return &fakeKit{
		balance: 42.5,
		txID:    "0.0.12345@1700000000.000000000",
		token:   hedera.TokenID{Token: 5678},
		nft:     hedera.NftID{TokenID: hedera.TokenID{Token: 5678}, SerialNumber: 1},
		wallet:  hedera.AccountID{Account: 12345},
		launch: agentkit.LaunchResult{
			TokenID:       "0.0.7777",
			TransactionID: "0.0.12345@1700000001.000000000",
			MetadataURI:   "ipfs://metadata",
		},
		defaults: shared.DefaultConfig().Defaults,
	}
}

func (f *fakeKit) record(method string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kitCall{method: method, args: args})
}

func (f *fakeKit) callsTo(method string) []kitCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	matching := make([]kitCall, 0)
	for _, call := range f.calls {
		if call.method == method {
			matching = append(matching, call)
		}
	}
	return matching
}

func (f *fakeKit) Balance(_ context.Context, token *hedera.TokenID) (float64, error) {
	f.record("Balance", token)
	return f.balance, f.err
}

func (f *fakeKit) Transfer(_ context.Context, to hedera.AccountID, amount float64, token *hedera.TokenID) (string, error) {
	f.record("Transfer", to, amount, token)
	return f.txID, f.err
}

func (f *fakeKit) DeployToken(_ context.Context, options agentkit.DeployTokenOptions) (agentkit.DeployTokenResult, error) {
	f.record("DeployToken", options)
	return agentkit.DeployTokenResult{TokenID: f.token, TransactionID: f.txID}, f.err
}

func (f *fakeKit) DeployCollection(_ context.Context, options agentkit.CollectionOptions) (agentkit.CollectionResult, error) {
	f.record("DeployCollection", options)
	return agentkit.CollectionResult{TokenID: f.token, TransactionID: f.txID}, f.err
}

func (f *fakeKit) MintNFT(
	_ context.Context,
	collection hedera.TokenID,
	metadata agentkit.NFTMetadata,
	recipient *hedera.AccountID,
) (agentkit.MintResult, error) {
	f.record("MintNFT", collection, metadata, recipient)
	return agentkit.MintResult{NftID: f.nft, TransactionID: f.txID}, f.err
}

func (f *fakeKit) Trade(
	_ context.Context,
	output hedera.TokenID,
	inputAmount float64,
	input *hedera.TokenID,
	slippageBps int,
) (string, error) {
	f.record("Trade", output, inputAmount, input, slippageBps)
	return f.txID, f.err
}

func (f *fakeKit) RequestFaucetFunds(_ context.Context) error {
	f.record("RequestFaucetFunds")
	return f.err
}

func (f *fakeKit) RegisterDomain(_ context.Context, name string, spaceKB int) (string, error) {
	f.record("RegisterDomain", name, spaceKB)
	return f.txID, f.err
}

func (f *fakeKit) WalletAddress() (hedera.AccountID, error) {
	f.record("WalletAddress")
	return f.wallet, f.walletErr
}

func (f *fakeKit) LaunchToken(
	_ context.Context,
	name, ticker string,
	options agentkit.LaunchOptions,
) (agentkit.LaunchResult, error) {
	f.record("LaunchToken", name, ticker, options)
	return f.launch, f.err
}

func (f *fakeKit) Defaults() shared.DefaultsConfig {
	return f.defaults
}

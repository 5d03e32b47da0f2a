package agentkit

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph-online/agent-kit-go/pkg/faucet"
	"github.com/hashgraph-online/agent-kit-go/pkg/launchpad"
	"github.com/hashgraph-online/agent-kit-go/pkg/mirror"
	"github.com/hashgraph-online/agent-kit-go/pkg/names"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
	"github.com/hashgraph-online/agent-kit-go/pkg/swap"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
)

type Kit struct {
	hederaClient *hedera.Client
	mirrorClient *mirror.Client
	swapClient   *swap.Client
	faucetClient *faucet.Client
	namesClient  *names.Client
	launchpad    *launchpad.Client

	operatorID  *hedera.AccountID
	operatorKey hedera.PrivateKey
	network     string
	defaults    shared.DefaultsConfig
	logger      zerolog.Logger
}

type Option func(*kitOptions)

type kitOptions struct {
	logger     *zerolog.Logger
	httpClient *http.Client
}

// WithLogger replaces the logger built from the configured log level.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *kitOptions) {
		options.logger = &logger
	}
}

// WithHTTPClient sets the HTTP client shared by the mirror and service clients.
func WithHTTPClient(client *http.Client) Option {
	return func(options *kitOptions) {
		options.httpClient = client
	}
}

// New builds a kit from configuration. The operator may be omitted, in which
// case every capability that needs an account fails with ErrNoOperator.
// Services without a base URL stay unconfigured.
func New(config shared.Config, opts ...Option) (*Kit, error) {
	options := kitOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	logger, err := buildLogger(config.Log, options.logger)
	if err != nil {
		return nil, err
	}

	hederaClient, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, err
	}

	kit := &Kit{
		hederaClient: hederaClient,
		network:      network,
		defaults:     config.Defaults,
		logger:       logger,
	}
	if kit.defaults.SlippageBps <= 0 {
		kit.defaults.SlippageBps = shared.DefaultSlippageBps
	}
	if kit.defaults.DomainSpaceKB <= 0 {
		kit.defaults.DomainSpaceKB = shared.DefaultDomainSpaceKB
	}

	if strings.TrimSpace(config.Operator.AccountID) != "" {
		accountID, parseErr := hedera.AccountIDFromString(strings.TrimSpace(config.Operator.AccountID))
		if parseErr != nil {
			return nil, fmt.Errorf("invalid operator account ID: %w", parseErr)
		}
		privateKey, parseErr := shared.ParsePrivateKey(config.Operator.PrivateKey)
		if parseErr != nil {
			return nil, parseErr
		}
		hederaClient.SetOperator(accountID, privateKey)
		kit.operatorID = &accountID
		kit.operatorKey = privateKey
	}

	kit.mirrorClient, err = mirror.NewClient(mirror.Config{
		Network:    network,
		BaseURL:    config.Mirror.BaseURL,
		APIKey:     config.Mirror.APIKey,
		HTTPClient: options.httpClient,
	})
	if err != nil {
		return nil, err
	}

	if err := kit.configureServices(config.Services, options.httpClient); err != nil {
		return nil, err
	}

	return kit, nil
}

func buildLogger(config shared.LogConfig, override *zerolog.Logger) (zerolog.Logger, error) {
	if override != nil {
		return override.With().Str("component", "agentkit").Logger(), nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(config.Level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}
	if level == zerolog.Disabled {
		return zerolog.Nop(), nil
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Str("component", "agentkit").
		Logger(), nil
}

func (k *Kit) configureServices(services shared.ServicesConfig, httpClient *http.Client) error {
	var err error

	if services.Swap.BaseURL != "" {
		k.swapClient, err = swap.NewClient(swap.Config{
			BaseURL:    services.Swap.BaseURL,
			APIKey:     services.Swap.APIKey,
			Network:    k.network,
			HTTPClient: httpClient,
			Timeout:    services.Swap.Timeout,
		})
		if err != nil {
			return err
		}
	}

	if services.Faucet.BaseURL != "" {
		k.faucetClient, err = faucet.NewClient(faucet.Config{
			BaseURL:    services.Faucet.BaseURL,
			APIKey:     services.Faucet.APIKey,
			HTTPClient: httpClient,
			Timeout:    services.Faucet.Timeout,
		})
		if err != nil {
			return err
		}
	}

	if services.Names.BaseURL != "" {
		k.namesClient, err = names.NewClient(names.Config{
			BaseURL:    services.Names.BaseURL,
			APIKey:     services.Names.APIKey,
			HTTPClient: httpClient,
			Timeout:    services.Names.Timeout,
		})
		if err != nil {
			return err
		}
	}

	if services.Launchpad.BaseURL != "" {
		k.launchpad, err = launchpad.NewClient(launchpad.Config{
			BaseURL:         services.Launchpad.BaseURL,
			APIKey:          services.Launchpad.APIKey,
			Network:         k.network,
			HTTPClient:      httpClient,
			Timeout:         services.Launchpad.Timeout,
			CompressUploads: true,
			EventsURL:       services.Launchpad.EventsURL,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Close releases the Hedera client's node connections.
func (k *Kit) Close() error {
	if k == nil || k.hederaClient == nil {
		return nil
	}
	return k.hederaClient.Close()
}

func (k *Kit) Network() string {
	return k.network
}

// WalletAddress returns the operator account.
func (k *Kit) WalletAddress() (hedera.AccountID, error) {
	return k.operator()
}

// WalletEVMAddress returns the operator's EVM address. ECDSA(secp256k1)
// operators get the key-derived alias; otherwise the mirror node's recorded
// address is used, falling back to the long-zero form of the account ID.
func (k *Kit) WalletEVMAddress(ctx context.Context) (string, error) {
	accountID, err := k.WalletAddress()
	if err != nil {
		return "", err
	}

	if address, ok := evmAddressFromKey(k.operatorKey.PublicKey()); ok {
		return address, nil
	}

	if accountInfo, mirrorErr := k.mirrorClient.GetAccount(ctx, accountID.String()); mirrorErr == nil &&
		strings.TrimSpace(accountInfo.EVMAddress) != "" {
		return strings.ToLower(accountInfo.EVMAddress), nil
	} else if mirrorErr != nil {
		k.logger.Debug().Err(mirrorErr).Str("account", accountID.String()).Msg("mirror account lookup failed")
	}

	return "0x" + accountID.ToSolidityAddress(), nil
}

// btcec/v2 only exports the compressed length.
const uncompressedPubKeyLen = 65

func evmAddressFromKey(publicKey hedera.PublicKey) (string, bool) {
	raw := publicKey.BytesRaw()
	if len(raw) != btcec.PubKeyBytesLenCompressed && len(raw) != uncompressedPubKeyLen {
		return "", false
	}
	parsed, err := btcec.ParsePubKey(raw)
	if err != nil {
		return "", false
	}
	return strings.ToLower(ethcrypto.PubkeyToAddress(*parsed.ToECDSA()).Hex()), true
}

// Defaults returns the configured argument defaults, with unset slippage and
// domain space filled in.
func (k *Kit) Defaults() shared.DefaultsConfig {
	return k.defaults
}

func (k *Kit) operator() (hedera.AccountID, error) {
	if k.operatorID == nil {
		return hedera.AccountID{}, ErrNoOperator
	}
	return *k.operatorID, nil
}

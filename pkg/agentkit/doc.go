// Package agentkit is the Hedera-backed kit that agent tools delegate to. A Kit
// owns one operator-signed Hedera client plus the read-only mirror client and
// the optional HTTP services (swap router, faucet, name service, launchpad),
// and exposes one method per agent capability:
//
//	kit, err := agentkit.New(config)
//	defer kit.Close()
//
//	balance, err := kit.Balance(ctx, nil) // HBAR
//	txID, err := kit.Transfer(ctx, recipient, 1.5, nil)
//	token, err := kit.DeployToken(ctx, agentkit.DeployTokenOptions{Decimals: 6})
//
// Every method performs its work synchronously and returns once the
// transaction receipt is known; the kit adds no retries of its own.
package agentkit

// Package langchaingo exposes the agent kit to the tmc/langchaingo agent
// framework as a set of tools.
//
// Every tool takes the single string argument the agent supplies, parses and
// validates it, calls one kit method and renders the outcome back to a string.
// Failures are reported in the returned string rather than as a Go error, so
// the agent can read them and recover. The wallet address tool is the
// exception: its failure is returned as the error.
//
// # Available Tools
//
//   - hedera_balance: HBAR or token balance of the operator.
//   - hedera_transfer: send HBAR or a fungible token.
//   - hedera_deploy_token: create a fungible token.
//   - hedera_deploy_collection: create an NFT collection with royalties.
//   - hedera_mint_nft: mint an NFT into a collection.
//   - hedera_trade: swap through the configured router.
//   - hedera_request_funds: ask the testnet faucet for HBAR.
//   - hedera_register_domain: register a .hbar name.
//   - hedera_get_wallet_address: the operator account ID.
//   - hedera_launch_token: launch a token on the launchpad (JSON output).
//
// # Usage
//
//	kit, err := agentkit.New(config)
//	if err != nil {
//		return err
//	}
//	defer kit.Close()
//
//	agentTools := langchaingo.NewTools(kit, langchaingo.WithLogger(logger))
//	agent := agents.NewOneShotAgent(llm, agentTools)
//
// Langchaingo: https://github.com/tmc/langchaingo
package langchaingo

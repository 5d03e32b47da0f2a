// Agent Kit for Go connects autonomous language-model agents to the Hedera
// public ledger. It is made of three layers:
//
//   - pkg/agentkit: the kit itself. It owns the operator account and performs
//     balance queries, transfers, token and NFT creation, swaps, faucet
//     requests, .hbar domain registration and launchpad launches.
//   - pkg/toolinput: parsing and validation of the single string argument an
//     agent hands to a tool, including relaxed JSON.
//   - adapters/langchaingo: the ten tools that expose the kit to
//     tmc/langchaingo agents.
//
// The HTTP services the kit talks to live in pkg/mirror, pkg/swap,
// pkg/faucet, pkg/names and pkg/launchpad; configuration, network and
// operator handling live in pkg/shared.
//
// # Installation
//
//	go get github.com/hashgraph-online/agent-kit-go@latest
package agentkit_go

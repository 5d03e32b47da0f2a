// Package shared holds the plumbing every agent kit package leans on: network
// normalization, operator credentials from the environment or a .env file,
// the YAML kit configuration, Hedera client construction, private key parsing
// and the JSON-over-HTTP round trip used by the service clients.
//
// # Environment Variables
//
// Operator credentials are read from HEDERA_ACCOUNT_ID and HEDERA_PRIVATE_KEY
// (with OPERATOR_ID / OPERATOR_KEY style aliases). Network scoped variables
// such as TESTNET_HEDERA_ACCOUNT_ID take precedence for the selected network.
// HEDERA_NETWORK selects mainnet, testnet or previewnet and defaults to testnet.
package shared

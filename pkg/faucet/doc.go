// Package faucet requests test HBAR for an account from a testnet or
// previewnet faucet. Mainnet requests are refused locally.
package faucet

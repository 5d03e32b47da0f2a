// Package mirror is a small Hedera Mirror Node REST client. The agent kit uses
// it for the read-only side of the ledger: token metadata (decimals), the
// token balances of an account and account details such as the EVM address.
//
// The mirror node serves a delayed, read-only view of consensus state, so a
// balance read right after a transfer may lag by a few seconds.
package mirror

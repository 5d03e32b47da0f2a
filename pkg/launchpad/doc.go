// Package launchpad is the client for an external token launchpad. A launch
// is two calls: the token's social metadata is uploaded and pinned, then the
// launchpad builds the creation transaction (optionally with an initial
// liquidity buy) for the creator to sign.
//
// Metadata uploads can be brotli-compressed (Content-Encoding: br); the
// launchpad stores the JSON document as-is once decompressed.
package launchpad

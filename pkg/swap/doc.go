// Package swap talks to a DEX aggregator that quotes a route between two
// Hedera tokens (or HBAR) and builds the unsigned swap transaction for it.
// Signing and submission stay with the caller.
//
//	client, err := swap.NewClient(swap.Config{BaseURL: "https://router.example.com/v1"})
//	quote, err := client.Quote(ctx, swap.QuoteRequest{
//		InputToken:  swap.NativeToken,
//		OutputToken: "0.0.456858",
//		Amount:      100_000_000,
//		SlippageBps: 300,
//	})
//	tx, err := client.BuildSwap(ctx, swap.SwapRequest{Quote: quote, AccountID: "0.0.1234"})
package swap

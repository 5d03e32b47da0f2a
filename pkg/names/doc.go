// Package names registers .hbar domains through a name service that returns
// the registration transaction for the buyer to sign.
package names

package agentkit

import (
	"errors"
	"fmt"
)

var (
	ErrNoOperator = errors.New("agent kit has no operator account configured")
	ErrAmount     = errors.New("amount must be a positive number")
)

// ServiceNotConfiguredError is returned by capabilities whose HTTP service has
// no base URL in the configuration.
type ServiceNotConfiguredError struct {
	Service string
}

func (e ServiceNotConfiguredError) Error() string {
	return fmt.Sprintf("%s service is not configured", e.Service)
}

func (e ServiceNotConfiguredError) ErrorCode() string {
	return "SERVICE_NOT_CONFIGURED"
}

// ReceiptError is a transaction that reached consensus with a non-SUCCESS status.
type ReceiptError struct {
	Operation     string
	TransactionID string
	Status        string
}

func (e ReceiptError) Error() string {
	return fmt.Sprintf("%s transaction %s failed with status %s", e.Operation, e.TransactionID, e.Status)
}

// ErrorCode returns the Hedera response code, e.g. INSUFFICIENT_PAYER_BALANCE.
func (e ReceiptError) ErrorCode() string {
	return e.Status
}

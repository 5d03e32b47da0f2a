package agentkit

import (
	"encoding/base64"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// awaitReceipt waits for consensus on a submitted transaction and turns any
// status other than SUCCESS into a ReceiptError.
func (k *Kit) awaitReceipt(operation string, response hedera.TransactionResponse) (hedera.TransactionReceipt, error) {
	transactionID := response.TransactionID.String()

	receipt, err := response.GetReceipt(k.hederaClient)
	if err != nil {
		if receipt.Status != hedera.StatusSuccess && receipt.Status != hedera.StatusOk {
			k.logger.Warn().Err(err).Str("operation", operation).Str("transaction", transactionID).Msg("transaction failed")
			return receipt, ReceiptError{Operation: operation, TransactionID: transactionID, Status: receipt.Status.String()}
		}
		return receipt, fmt.Errorf("failed to retrieve %s receipt: %w", operation, err)
	}
	if receipt.Status != hedera.StatusSuccess {
		k.logger.Warn().Str("operation", operation).Str("transaction", transactionID).Str("status", receipt.Status.String()).Msg("transaction failed")
		return receipt, ReceiptError{Operation: operation, TransactionID: transactionID, Status: receipt.Status.String()}
	}

	k.logger.Debug().Str("operation", operation).Str("transaction", transactionID).Msg("transaction succeeded")
	return receipt, nil
}

// executeEncoded signs and submits a frozen transaction produced by an
// external service and returns its transaction ID.
func (k *Kit) executeEncoded(operation string, encoded string) (string, error) {
	if k.operatorID == nil {
		return "", ErrNoOperator
	}

	rawBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s transaction bytes: %w", operation, err)
	}
	if len(rawBytes) == 0 {
		return "", fmt.Errorf("%s transaction bytes are empty", operation)
	}

	transaction, err := hedera.TransactionFromBytes(rawBytes)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s transaction: %w", operation, err)
	}

	signed, err := hedera.TransactionSign(transaction, k.operatorKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s transaction: %w", operation, err)
	}

	k.logger.Debug().Str("operation", operation).Msg("submitting external transaction")
	response, err := hedera.TransactionExecute(signed, k.hederaClient)
	if err != nil {
		return "", fmt.Errorf("failed to execute %s transaction: %w", operation, err)
	}

	if _, err := k.awaitReceipt(operation, response); err != nil {
		return "", err
	}

	return response.TransactionID.String(), nil
}

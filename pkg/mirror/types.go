package mirror

import "strconv"

type AccountInfo struct {
	Account    string         `json:"account"`
	Alias      string         `json:"alias"`
	EVMAddress string         `json:"evm_address"`
	Key        map[string]any `json:"key"`
	Memo       string         `json:"memo"`
	Balance    AccountBalance `json:"balance"`
	Deleted    bool           `json:"deleted"`
}

type AccountBalance struct {
	Balance   int64          `json:"balance"`
	Timestamp string         `json:"timestamp"`
	Tokens    []TokenBalance `json:"tokens"`
}

type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

// TokenInfo is the token detail document. The mirror node encodes decimals and
// supply figures as strings.
type TokenInfo struct {
	TokenID           string `json:"token_id"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Decimals          string `json:"decimals"`
	Type              string `json:"type"`
	TreasuryAccountID string `json:"treasury_account_id"`
	TotalSupply       string `json:"total_supply"`
	Memo              string `json:"memo"`
}

// DecimalPlaces parses Decimals.
func (t TokenInfo) DecimalPlaces() (int, error) {
	if t.Decimals == "" {
		return 0, nil
	}
	return strconv.Atoi(t.Decimals)
}

type TokenRelationship struct {
	TokenID              string `json:"token_id"`
	Balance              int64  `json:"balance"`
	Decimals             int    `json:"decimals"`
	AutomaticAssociation bool   `json:"automatic_association"`
	FreezeStatus         string `json:"freeze_status"`
	KYCStatus            string `json:"kyc_status"`
}

type tokenRelationshipsResponse struct {
	Tokens []TokenRelationship `json:"tokens"`
	Links  struct {
		Next string `json:"next"`
	} `json:"links"`
}

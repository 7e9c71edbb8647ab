package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// GetTokenInfoResponse carries every read-only token attribute. Amounts are
// base units as decimal integer strings, the *Formatted variants are token units.
type GetTokenInfoResponse struct {

	// Contract address
	// Required: true
	Address *string `json:"address"`

	// Required: true
	Decimals *string `json:"decimals"`

	// Fee in basis points, 100 = 1%
	// Required: true
	FeeBasisPoints *string `json:"feeBasisPoints"`

	// Fee in percent with two decimals
	// Required: true
	FeePercent *string `json:"feePercent"`

	// Required: true
	MaxTxAmount *string `json:"maxTxAmount"`

	// Required: true
	MaxTxAmountFormatted *string `json:"maxTxAmountFormatted"`

	// Required: true
	MaxWalletSize *string `json:"maxWalletSize"`

	// Required: true
	MaxWalletSizeFormatted *string `json:"maxWalletSizeFormatted"`

	// Required: true
	Name *string `json:"name"`

	// Required: true
	Symbol *string `json:"symbol"`

	// Required: true
	TotalSupply *string `json:"totalSupply"`

	// Required: true
	TotalSupplyFormatted *string `json:"totalSupplyFormatted"`

	// Required: true
	Treasury *string `json:"treasury"`
}

// Validate validates this get token info response
func (m *GetTokenInfoResponse) Validate(_ strfmt.Registry) error {
	return requireAll(map[string]*string{
		"address":                m.Address,
		"decimals":               m.Decimals,
		"feeBasisPoints":         m.FeeBasisPoints,
		"feePercent":             m.FeePercent,
		"maxTxAmount":            m.MaxTxAmount,
		"maxTxAmountFormatted":   m.MaxTxAmountFormatted,
		"maxWalletSize":          m.MaxWalletSize,
		"maxWalletSizeFormatted": m.MaxWalletSizeFormatted,
		"name":                   m.Name,
		"symbol":                 m.Symbol,
		"totalSupply":            m.TotalSupply,
		"totalSupplyFormatted":   m.TotalSupplyFormatted,
		"treasury":               m.Treasury,
	})
}

// GetBalanceResponse is the balance of one address.
type GetBalanceResponse struct {

	// Checksummed owner address
	// Required: true
	Address *string `json:"address"`

	// Base units
	// Required: true
	Balance *string `json:"balance"`

	// Token units
	// Required: true
	BalanceFormatted *string `json:"balanceFormatted"`
}

// Validate validates this get balance response
func (m *GetBalanceResponse) Validate(_ strfmt.Registry) error {
	return requireAll(map[string]*string{
		"address":          m.Address,
		"balance":          m.Balance,
		"balanceFormatted": m.BalanceFormatted,
	})
}

// GetAllowanceResponse is what spender may move on behalf of owner.
type GetAllowanceResponse struct {

	// Base units
	// Required: true
	Allowance *string `json:"allowance"`

	// Token units
	// Required: true
	AllowanceFormatted *string `json:"allowanceFormatted"`

	// Required: true
	Owner *string `json:"owner"`

	// Required: true
	Spender *string `json:"spender"`
}

// Validate validates this get allowance response
func (m *GetAllowanceResponse) Validate(_ strfmt.Registry) error {
	return requireAll(map[string]*string{
		"allowance":          m.Allowance,
		"allowanceFormatted": m.AllowanceFormatted,
		"owner":              m.Owner,
		"spender":            m.Spender,
	})
}

// PostTransferResponse is returned once the transfer is confirmed.
type PostTransferResponse struct {

	// Decimal token amount as requested
	// Required: true
	Amount *string `json:"amount"`

	// Block the transfer was included in
	BlockNumber int64 `json:"blockNumber,omitempty"`

	// Required: true
	Confirmed *bool `json:"confirmed"`

	// Required: true
	From *string `json:"from"`

	Message string `json:"message,omitempty"`

	// Required: true
	Success *bool `json:"success"`

	// Required: true
	To *string `json:"to"`

	// Required: true
	TransactionHash *string `json:"transactionHash"`
}

// Validate validates this post transfer response
func (m *PostTransferResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := requireAll(map[string]*string{
		"amount":          m.Amount,
		"from":            m.From,
		"to":              m.To,
		"transactionHash": m.TransactionHash,
	}); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("confirmed", "body", m.Confirmed); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("success", "body", m.Success); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetTransactionStatusResponse resolves a transaction hash.
type GetTransactionStatusResponse struct {

	BlockNumber int64 `json:"blockNumber,omitempty"`

	RevertReason string `json:"revertReason,omitempty"`

	// pending, confirmed, reverted or unknown
	// Required: true
	// Enum: [pending confirmed reverted unknown]
	Status *string `json:"status"`

	// Required: true
	TransactionHash *string `json:"transactionHash"`
}

var getTransactionStatusResponseStatusEnum = []interface{}{"pending", "confirmed", "reverted", "unknown"}

// Validate validates this get transaction status response
func (m *GetTransactionStatusResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("status", "body", m.Status); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("status", "body", *m.Status, getTransactionStatusResponseStatusEnum, true); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("transactionHash", "body", m.TransactionHash); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func requireAll(fields map[string]*string) error {
	var res []error

	for name, value := range fields {
		if err := validate.Required(name, "body", value); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

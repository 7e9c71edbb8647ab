package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"github/chapool/humtoken/internal/token"
)

// PostTransferPayload is the body of POST /api/token/transfer.
// PrivateKey redacts itself in every formatting and marshalling path.
type PostTransferPayload struct {

	// Decimal token amount, e.g. "1.5"
	// Required: true
	// Min Length: 1
	Amount *string `json:"amount"`

	// Sender address
	// Required: true
	// Min Length: 1
	FromAddress *string `json:"fromAddress"`

	// Hex private key controlling fromAddress
	// Required: true
	PrivateKey *token.SigningKey `json:"privateKey"`

	// Recipient address
	// Required: true
	// Min Length: 1
	ToAddress *string `json:"toAddress"`
}

// Validate validates this post transfer payload
func (m *PostTransferPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := m.validateRequiredString("amount", m.Amount); err != nil {
		res = append(res, err)
	}

	if err := m.validateRequiredString("fromAddress", m.FromAddress); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("privateKey", "body", m.PrivateKey); err != nil {
		res = append(res, err)
	} else if m.PrivateKey.IsZero() {
		res = append(res, errors.TooShort("privateKey", "body", 1, ""))
	}

	if err := m.validateRequiredString("toAddress", m.ToAddress); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostTransferPayload) validateRequiredString(name string, value *string) error {
	if err := validate.Required(name, "body", value); err != nil {
		return err
	}

	if err := validate.MinLength(name, "body", *value, 1); err != nil {
		return err
	}

	return nil
}

// TransferRequest converts the payload. Validate must have succeeded.
func (m *PostTransferPayload) TransferRequest() token.TransferRequest {
	return token.TransferRequest{
		From:       *m.FromAddress,
		To:         *m.ToAddress,
		Amount:     *m.Amount,
		SigningKey: *m.PrivateKey,
	}
}

package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// GetBalanceRouteParams are the path parameters of GET /api/token/balance/:address.
type GetBalanceRouteParams struct {

	// Required: true
	Address string `param:"address"`
}

// Validate validates the route params
func (o *GetBalanceRouteParams) Validate(_ strfmt.Registry) error {
	if err := validate.RequiredString("address", "path", o.Address); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// GetAllowanceRouteParams are the path parameters of
// GET /api/token/allowance/:owner/:spender.
type GetAllowanceRouteParams struct {

	// Required: true
	Owner string `param:"owner"`

	// Required: true
	Spender string `param:"spender"`
}

// Validate validates the route params
func (o *GetAllowanceRouteParams) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("owner", "path", o.Owner); err != nil {
		res = append(res, err)
	}

	if err := validate.RequiredString("spender", "path", o.Spender); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetTransactionStatusRouteParams are the path parameters of
// GET /api/token/transactions/:hash.
type GetTransactionStatusRouteParams struct {

	// Required: true
	Hash string `param:"hash"`
}

// Validate validates the route params
func (o *GetTransactionStatusRouteParams) Validate(_ strfmt.Registry) error {
	if err := validate.RequiredString("hash", "path", o.Hash); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

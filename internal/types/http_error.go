package types

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PublicHTTPErrorType is the machine readable error type of an HTTP error response.
type PublicHTTPErrorType string

const (
	PublicHTTPErrorTypeGeneric                PublicHTTPErrorType = "generic"
	PublicHTTPErrorTypeINVALIDADDRESS         PublicHTTPErrorType = "INVALID_ADDRESS"
	PublicHTTPErrorTypeINVALIDAMOUNT          PublicHTTPErrorType = "INVALID_AMOUNT"
	PublicHTTPErrorTypeINSUFFICIENTBALANCE    PublicHTTPErrorType = "INSUFFICIENT_BALANCE"
	PublicHTTPErrorTypeKEYMISMATCH            PublicHTTPErrorType = "KEY_MISMATCH"
	PublicHTTPErrorTypeCHAINREADFAILED        PublicHTTPErrorType = "CHAIN_READ_FAILED"
	PublicHTTPErrorTypeSUBMISSIONFAILED       PublicHTTPErrorType = "SUBMISSION_FAILED"
	PublicHTTPErrorTypeTRANSFERTIMEOUT        PublicHTTPErrorType = "TRANSFER_TIMEOUT"
	PublicHTTPErrorTypeTRANSFERREVERTED       PublicHTTPErrorType = "TRANSFER_REVERTED"
	PublicHTTPErrorTypeINVALIDTRANSACTIONHASH PublicHTTPErrorType = "INVALID_TRANSACTION_HASH"
)

var publicHTTPErrorTypeEnum []interface{}

func init() {
	var res []PublicHTTPErrorType
	if err := json.Unmarshal([]byte(`["generic","INVALID_ADDRESS","INVALID_AMOUNT","INSUFFICIENT_BALANCE","KEY_MISMATCH","CHAIN_READ_FAILED","SUBMISSION_FAILED","TRANSFER_TIMEOUT","TRANSFER_REVERTED","INVALID_TRANSACTION_HASH"]`), &res); err != nil {
		panic(err)
	}
	for _, v := range res {
		publicHTTPErrorTypeEnum = append(publicHTTPErrorTypeEnum, v)
	}
}

func (m PublicHTTPErrorType) Pointer() *PublicHTTPErrorType {
	return &m
}

// Validate validates this public HTTP error type
func (m PublicHTTPErrorType) Validate(_ strfmt.Registry) error {
	if err := validate.EnumCase("", "body", m, publicHTTPErrorTypeEnum, true); err != nil {
		return err
	}
	return nil
}

// PublicHTTPError is the body of every error response.
type PublicHTTPError struct {

	// More detailed, human-readable, optional explanation of the error
	Detail string `json:"detail,omitempty"`

	// Hint on how the caller may correct the request
	Hint string `json:"hint,omitempty"`

	// Additional machine readable context, e.g. the available balance
	Meta map[string]string `json:"meta,omitempty"`

	// HTTP status code returned for the error
	// Required: true
	Code *int64 `json:"status"`

	// Short, human-readable description of the error
	// Required: true
	Title *string `json:"title"`

	// type
	// Required: true
	Type *PublicHTTPErrorType `json:"type"`
}

// Validate validates this public HTTP error
func (m *PublicHTTPError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("status", "body", m.Code); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("title", "body", m.Title); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("type", "body", m.Type); err != nil {
		res = append(res, err)
	} else if err := m.Type.Validate(formats); err != nil {
		if ve, ok := err.(*errors.Validation); ok {
			return ve.ValidateName("type")
		}
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *PublicHTTPError) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PublicHTTPError) UnmarshalBinary(b []byte) error {
	var res PublicHTTPError
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// HTTPValidationErrorDetail describes one failed field.
type HTTPValidationErrorDetail struct {

	// Error describing field validation failure
	// Required: true
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	// Required: true
	In *string `json:"in"`

	// Key of field failing validation
	// Required: true
	Key *string `json:"key"`
}

// Validate validates this HTTP validation error detail
func (m *HTTPValidationErrorDetail) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("error", "body", m.Error); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("in", "body", m.In); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("key", "body", m.Key); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// HTTPValidationError is a PublicHTTPError carrying per-field details.
type HTTPValidationError struct {
	PublicHTTPError

	// List of errors received while validating payload against schema
	// Required: true
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this HTTP validation error
func (m *HTTPValidationError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.PublicHTTPError.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("validationErrors", "body", m.ValidationErrors); err != nil {
		res = append(res, err)
	}

	for i := range m.ValidationErrors {
		if swag.IsZero(m.ValidationErrors[i]) {
			continue
		}
		if err := m.ValidationErrors[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

package token

import (
	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// SigningKey holds a raw hex private key. Every formatting path redacts it;
// use Reveal to get the actual value.
type SigningKey string

func (k SigningKey) Reveal() string {
	return string(k)
}

func (k SigningKey) IsZero() bool {
	return k == ""
}

func (k SigningKey) String() string {
	return redacted
}

func (k SigningKey) GoString() string {
	return redacted
}

func (k SigningKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (k SigningKey) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (k SigningKey) MarshalZerologObject(e *zerolog.Event) {
	e.Str("signing_key", redacted)
}

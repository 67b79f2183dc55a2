package types

import (
	"github.com/go-playground/validator/v10"
)

// ConnectionDescriptor identifies a chain endpoint. The endpoint may use an
// http(s) or ws(s) scheme; both are served behind the same client interface.
// An optional access token is sent as a bearer Authorization header.
//
// Descriptors are immutable and constructed once per operation. Resolving a
// named network preset to an endpoint URL is configuration glue and happens in
// the calling layer, not here.
type ConnectionDescriptor struct {
	Endpoint  string `json:"endpoint" validate:"required,url"`
	AuthToken string `json:"authToken,omitempty"`
}

// Validate checks that the descriptor is well formed.
func (d ConnectionDescriptor) Validate() error {
	return validator.New().Struct(d)
}

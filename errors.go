package crossq

import (
	"fmt"
)

// InvalidAddressError is returned when a contract or account address is not a
// valid 20-byte hex string.
type InvalidAddressError struct {
	Received string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address: %q is not a 0x-prefixed 20-byte hex string", e.Received)
}

func NewInvalidAddressError(received string) *InvalidAddressError {
	return &InvalidAddressError{Received: received}
}

// InvalidTransactionHashError is returned when a transaction identifier is not
// a valid 0x-prefixed 32-byte hex string.
type InvalidTransactionHashError struct {
	Received string
}

func (e *InvalidTransactionHashError) Error() string {
	return fmt.Sprintf("invalid transaction hash: %q is not a 0x-prefixed 32-byte hex string", e.Received)
}

func NewInvalidTransactionHashError(received string) *InvalidTransactionHashError {
	return &InvalidTransactionHashError{Received: received}
}

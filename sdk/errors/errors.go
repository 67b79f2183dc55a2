package sdkerrors

import (
	"fmt"
)

// ConnectionError is returned when a chain client cannot be constructed from a
// connection descriptor, either because the descriptor is malformed or because
// the endpoint rejected the connection eagerly.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to connect to %q: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(endpoint string, err error) *ConnectionError {
	return &ConnectionError{Endpoint: endpoint, Err: err}
}

// NotFoundError is returned when a receipt or an expected log entry is absent.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewTransactionNotFoundError is returned when the chain reports no receipt
// for a transaction hash (unmined or unknown).
func NewTransactionNotFoundError() *NotFoundError {
	return &NotFoundError{Resource: "Transaction"}
}

// NewQueueTransactionNotFoundError is returned when no log in a receipt was
// emitted by the message queue contract.
func NewQueueTransactionNotFoundError() *NotFoundError {
	return &NotFoundError{Resource: "QueueTransaction event"}
}

// DecodeError is returned when an event payload does not match the expected
// ABI schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode event data: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewDecodeError(err error) *DecodeError {
	return &DecodeError{Err: err}
}

// ContractCallError is returned when a contract read call fails after any
// preceding receipt or log lookup already succeeded.
type ContractCallError struct {
	Method string
	Err    error
}

func (e *ContractCallError) Error() string {
	return fmt.Sprintf("contract call %s failed: %v", e.Method, e.Err)
}

func (e *ContractCallError) Unwrap() error {
	return e.Err
}

func NewContractCallError(method string, err error) *ContractCallError {
	return &ContractCallError{Method: method, Err: err}
}

// CancelledError is returned when a poll is aborted by its caller before the
// attempt budget ran out. It wraps the context error, so errors.Is against
// context.Canceled or context.DeadlineExceeded still holds.
type CancelledError struct {
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("balance poll cancelled: %v", e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

func NewCancelledError(err error) *CancelledError {
	return &CancelledError{Err: err}
}

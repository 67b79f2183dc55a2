package types

import (
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBalancePollAttempts is the attempt cap applied when a policy does
	// not set one.
	DefaultBalancePollAttempts = uint(5)

	// DefaultBalancePollInterval is the delay between attempts applied when a
	// policy does not set one.
	DefaultBalancePollInterval = 15 * time.Second
)

// BalancePollPolicy bounds a balance poll. OnAttempt, when set, observes each
// attempt with the balance it returned; it replaces the default progress
// logging so callers can assert on progress without capturing process output.
// The policy round-trips through JSON; the observer does not travel with it.
type BalancePollPolicy struct {
	MaxAttempts uint     `json:"maxAttempts" validate:"min=1"`
	Interval    Duration `json:"interval"`
	OnAttempt   func(attempt uint, balance *big.Int) `json:"-"`
}

// Validate checks that the policy's bounds are usable as given. AwaitBalance
// substitutes defaults for zero values, so validation is for callers that
// want explicit bounds rejected up front rather than silently defaulted.
func (p BalancePollPolicy) Validate() error {
	return validator.New().Struct(p)
}

// DefaultBalancePollPolicy returns the poll policy used when the caller does
// not supply one: 5 attempts, 15 seconds apart.
func DefaultBalancePollPolicy() BalancePollPolicy {
	return BalancePollPolicy{
		MaxAttempts: DefaultBalancePollAttempts,
		Interval:    NewDuration(DefaultBalancePollInterval),
	}
}

// BalancePollResult is the terminal state of a balance poll. A poll that ran
// out of attempts while the balance stayed at zero reports Exhausted with the
// last (zero) balance; exhaustion is an expected outcome, not an error.
type BalancePollResult struct {
	Balance   *big.Int
	Attempts  uint
	Exhausted bool
}

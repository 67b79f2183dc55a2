package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollup-tools/crossq/sdk"
	sdkerrors "github.com/rollup-tools/crossq/sdk/errors"
	"github.com/rollup-tools/crossq/sdk/evm/bindings"
	"github.com/rollup-tools/crossq/types"
)

type pollState int

const (
	statePolling pollState = iota
	stateSucceeded
	stateExhausted
)

var _ sdk.BalanceWatcher = (*BalancePoller)(nil)

// BalancePoller re-reads an account's token balance until it turns positive
// or the policy's attempt budget runs out. The balance is fetched fresh on
// every attempt; it is expected to change underneath us.
type BalancePoller struct {
	client ContractDeployBackend
	token  common.Address

	// after schedules the inter-attempt wait; tests swap it out.
	after func(d time.Duration) <-chan time.Time
}

// NewBalancePoller creates a poller against the token contract at
// tokenAddress.
func NewBalancePoller(client ContractDeployBackend, tokenAddress string) *BalancePoller {
	return &BalancePoller{
		client: client,
		token:  common.HexToAddress(tokenAddress),
		after:  time.After,
	}
}

// AwaitBalance polls balanceOf(holder) under the given policy.
//
// A positive balance returns immediately after the attempt that observed it,
// with no trailing wait. A balance that stays at zero through MaxAttempts
// returns the last (zero) balance with Exhausted set and a nil error;
// exhaustion is an expected terminal outcome. Only a failed read call or a
// cancelled context produces an error, and a failed read aborts immediately
// without consuming an attempt or waiting.
func (p *BalancePoller) AwaitBalance(ctx context.Context, holder common.Address, policy types.BalancePollPolicy) (types.BalancePollResult, error) {
	if policy.MaxAttempts == 0 {
		policy.MaxAttempts = types.DefaultBalancePollAttempts
	}
	if policy.Interval.Duration <= 0 {
		policy.Interval = types.NewDuration(types.DefaultBalancePollInterval)
	}
	observe := policy.OnAttempt
	if observe == nil {
		logger := sdk.LoggerFrom(ctx)
		observe = func(attempt uint, balance *big.Int) {
			logger.Infof("balance poll attempt %d/%d for %s: balance=%s",
				attempt, policy.MaxAttempts, holder, balance)
		}
	}

	token, err := bindings.NewERC20Caller(p.token, p.client)
	if err != nil {
		return types.BalancePollResult{}, err
	}

	var (
		state   = statePolling
		attempt uint
		last    = new(big.Int)
	)
	for state == statePolling {
		balance, err := token.BalanceOf(&bind.CallOpts{Context: ctx}, holder)
		if err != nil {
			return types.BalancePollResult{}, sdkerrors.NewContractCallError("balanceOf", err)
		}

		attempt++
		last = balance
		observe(attempt, balance)

		switch {
		case balance.Sign() > 0:
			state = stateSucceeded
		case attempt == policy.MaxAttempts:
			state = stateExhausted
		default:
			select {
			case <-ctx.Done():
				return types.BalancePollResult{Balance: last, Attempts: attempt},
					sdkerrors.NewCancelledError(ctx.Err())
			case <-p.after(policy.Interval.Duration):
			}
		}
	}

	return types.BalancePollResult{
		Balance:   last,
		Attempts:  attempt,
		Exhausted: state == stateExhausted,
	}, nil
}

package types

import (
	"encoding/json"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestDefaultBalancePollPolicy(t *testing.T) {
	t.Parallel()

	policy := DefaultBalancePollPolicy()

	assert.Equal(t, uint(5), policy.MaxAttempts)
	assert.Equal(t, 15*time.Second, policy.Interval.Duration)
	assert.Assert(t, policy.OnAttempt == nil)
}

func TestBalancePollPolicy_Validate(t *testing.T) {
	t.Parallel()

	valid := BalancePollPolicy{MaxAttempts: 1, Interval: NewDuration(time.Second)}
	assert.NilError(t, valid.Validate())

	zeroAttempts := BalancePollPolicy{Interval: NewDuration(time.Second)}
	assert.ErrorContains(t, zeroAttempts.Validate(), "min")
}

func TestBalancePollPolicy_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(BalancePollPolicy{
		MaxAttempts: 8,
		Interval:    NewDuration(150 * time.Second),
	})
	assert.NilError(t, err)
	assert.Equal(t, `{"maxAttempts":8,"interval":"2m30s"}`, string(b))

	var got BalancePollPolicy
	assert.NilError(t, json.Unmarshal(b, &got))
	assert.Equal(t, uint(8), got.MaxAttempts)
	assert.Equal(t, 150*time.Second, got.Interval.Duration)
}

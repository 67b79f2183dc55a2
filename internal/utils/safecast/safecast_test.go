package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint(t *testing.T) {
	t.Parallel()

	got, err := IntToUint(5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got)

	_, err = IntToUint(-1)
	require.Error(t, err)
}

func TestInt64ToUint64(t *testing.T) {
	t.Parallel()

	got, err := Int64ToUint64(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), got)

	_, err = Int64ToUint64(-7)
	require.Error(t, err)
}

func TestUint64ToInt64(t *testing.T) {
	t.Parallel()

	got, err := Uint64ToInt64(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = Uint64ToInt64(math.MaxUint64)
	require.Error(t, err)
}

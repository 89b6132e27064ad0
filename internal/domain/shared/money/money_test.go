package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesCurrency(t *testing.T) {
	m, err := New(1500, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)

	_, err = New(1500, "dollars")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestFromDollarsRounds(t *testing.T) {
	m, err := FromDollars(149.999, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), m.Amount)

	m, err = FromDollars(0.1+0.2, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(30), m.Amount)
}

func TestDollarsRoundTrip(t *testing.T) {
	assert.InDelta(t, 150.0, USD(15000).Dollars(), 1e-9)
}

func TestAddRequiresSameCurrency(t *testing.T) {
	sum, err := USD(100).Add(USD(250))
	require.NoError(t, err)
	assert.Equal(t, USD(350), sum)

	_, err = USD(100).Add(Must(100, "EUR"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, USD(45000), USD(15000).Multiply(3))
}

func TestString(t *testing.T) {
	assert.Equal(t, "150.00 USD", USD(15000).String())
}

package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToLocalMultipliesByRate(t *testing.T) {
	local := ToLocal(FromFloat(100, "USD"), decimal.NewFromInt(1350), "ZWL")
	require.True(t, local.Available())

	amount, ok := local.Amount()
	require.True(t, ok)
	require.Equal(t, "135000.00", amount.String())
	require.Equal(t, "ZWL", amount.Currency())
}

func TestToLocalZeroRateIsUnavailable(t *testing.T) {
	local := ToLocal(FromFloat(100, "USD"), decimal.Zero, "ZWL")
	require.False(t, local.Available())
	require.Equal(t, "N/A", local.Display())

	// A zero rate must not collapse into a zero amount.
	amount, ok := local.Amount()
	require.False(t, ok)
	require.True(t, amount.IsZero())
}

func TestToLocalNegativeRateIsUnavailable(t *testing.T) {
	local := ToLocalRate(FromFloat(100, "USD"), -1, "ZWL")
	require.False(t, local.Available())
}

func TestArithmeticIsExact(t *testing.T) {
	a := FromFloat(0.1, "USD")
	b := FromFloat(0.2, "USD")
	require.Equal(t, "0.30", a.Add(b).String())

	sum := Zero("USD")
	for i := 0; i < 10; i++ {
		sum = sum.Add(FromFloat(0.1, "USD"))
	}
	require.Equal(t, "1.00", sum.String())
}

func TestSubAndSigns(t *testing.T) {
	net := FromFloat(500, "USD").Sub(FromFloat(550, "USD"))
	require.True(t, net.IsNegative())
	require.Equal(t, "-50.00", net.String())
	require.False(t, Zero("USD").IsNegative())
	require.True(t, Zero("USD").IsZero())
}

func TestFormatIncludesCurrency(t *testing.T) {
	require.Equal(t, "USD 1234.50", FromFloat(1234.5, "USD").Format())
}

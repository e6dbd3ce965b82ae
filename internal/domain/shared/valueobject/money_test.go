package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), USD)
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("accepts zero", func(t *testing.T) {
		m, err := NewMoney(decimal.Zero, BRL)
		require.NoError(t, err)
		assert.True(t, m.Amount().IsZero())
	})

	t.Run("normalizes lowercase currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(1), "eur")
		require.NoError(t, err)
		assert.Equal(t, EUR, m.Currency())
	})

	t.Run("rejects missing currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		require.Error(t, err)
		assert.True(t, shared.IsInvalidArgument(err))
		assert.Equal(t, "Currency is required", err.Error())
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "ZZQ")
		require.Error(t, err)
		assert.Equal(t, "Currency is invalid: ZZQ", err.Error())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(-1), USD)
		require.Error(t, err)
		assert.True(t, shared.IsInvalidArgument(err))
		assert.Equal(t, "Amount must be greater than zero", err.Error())
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", USD)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("123.45")))
	})

	t.Run("missing amount", func(t *testing.T) {
		_, err := NewMoneyFromString("  ", USD)
		require.Error(t, err)
		assert.Equal(t, "Amount is required", err.Error())
	})

	t.Run("currency is checked before amount", func(t *testing.T) {
		_, err := NewMoneyFromString("", "")
		require.Error(t, err)
		assert.Equal(t, "Currency is required", err.Error())
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", USD)
		require.Error(t, err)
		assert.True(t, shared.IsInvalidArgument(err))
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := MustNewMoney("100.00", USD)
	b := MustNewMoney("30.50", USD)

	t.Run("add returns a new value", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.RequireFromString("130.50")))
		assert.True(t, a.Amount().Equal(decimal.RequireFromString("100")), "receiver is unchanged")
	})

	t.Run("add then subtract restores the original", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		back, err := sum.Subtract(b)
		require.NoError(t, err)
		assert.True(t, back.Equals(a))
	})

	t.Run("subtract may go negative", func(t *testing.T) {
		diff, err := b.Subtract(a)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
	})

	t.Run("replace takes the other amount", func(t *testing.T) {
		replaced, err := a.Replace(b)
		require.NoError(t, err)
		assert.True(t, replaced.Equals(b))
	})

	t.Run("operations reject currency mismatch", func(t *testing.T) {
		euros := MustNewMoney("1", EUR)
		_, err := a.Add(euros)
		assert.Equal(t, "Currency mismatch", err.Error())
		_, err = a.Subtract(euros)
		assert.Equal(t, "Currency mismatch", err.Error())
		_, err = a.Replace(euros)
		assert.True(t, shared.IsInvalidArgument(err))
	})

	t.Run("operations reject missing operand", func(t *testing.T) {
		_, err := a.Add(Money{})
		require.Error(t, err)
		assert.Equal(t, "Money is required", err.Error())
	})
}

func TestMoney_Multiply(t *testing.T) {
	m := MustNewMoney("12.25", USD)

	t.Run("by one leaves amount unchanged", func(t *testing.T) {
		same, err := m.Multiply(1)
		require.NoError(t, err)
		assert.True(t, same.Equals(m))
	})

	t.Run("by positive quantity", func(t *testing.T) {
		tripled, err := m.Multiply(3)
		require.NoError(t, err)
		assert.Equal(t, "36.75", tripled.StringFixed(2))
	})

	t.Run("zero and negative quantities fail", func(t *testing.T) {
		for _, q := range []int{0, -2} {
			_, err := m.Multiply(q)
			require.Error(t, err)
			assert.Equal(t, "quantity must be greater than zero", err.Error())
		}
	})
}

func TestMoney_Equals(t *testing.T) {
	assert.True(t, MustNewMoney("10.0", USD).Equals(MustNewMoney("10.00", USD)))
	assert.False(t, MustNewMoney("10", USD).Equals(MustNewMoney("10", EUR)))
	assert.False(t, MustNewMoney("10", USD).Equals(MustNewMoney("10.01", USD)))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "50.00 USD", MustNewMoney("50", USD).String())
}

func TestMoney_JSON(t *testing.T) {
	t.Run("marshals amount as string", func(t *testing.T) {
		data, err := json.Marshal(MustNewMoney("150.00", BRL))
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"150","currency":"BRL"}`, string(data))
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		var m Money
		err := json.Unmarshal([]byte(`{"amount":"1","currency":"??"}`), &m)
		assert.Error(t, err)
	})
}

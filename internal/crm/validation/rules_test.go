package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"", true},
		{"+1234567890", true},
		{"+1234567", true},
		{"+123456789012345", true},
		{"123-456-7890", true},
		{"+123456", false},
		{"+1234567890123456", false},
		{"1234567890", false},
		{"123-4567-890", false},
		{"abc", false},
		{"+1 234 567 890", false},
	}
	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			require.Equal(t, tc.want, ValidatePhone(tc.phone))
		})
	}
}

func TestPhoneError(t *testing.T) {
	err := Phone("abc")
	require.ErrorIs(t, err, ErrInvalidPhone)
	require.Equal(t, MsgInvalidPhone, Message(err))
	require.NoError(t, Phone("123-456-7890"))
}

type fakeLookup struct {
	emails map[string]bool
	err    error
}

func (f fakeLookup) EmailExists(_ dbctx.Context, email string) (bool, error) {
	return f.emails[email], f.err
}

func TestEnsureUniqueEmail(t *testing.T) {
	lookup := fakeLookup{emails: map[string]bool{"a@example.com": true}}

	err := EnsureUniqueEmail(dbctx.Context{}, lookup, "a@example.com")
	require.ErrorIs(t, err, ErrDuplicateEmail)
	require.Equal(t, MsgDuplicateEmail, Message(err))

	require.NoError(t, EnsureUniqueEmail(dbctx.Context{}, lookup, "b@example.com"))

	boom := errors.New("store down")
	err = EnsureUniqueEmail(dbctx.Context{}, fakeLookup{err: boom}, "a@example.com")
	require.ErrorIs(t, err, boom)
	require.False(t, IsValidation(err))
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("999.99", "price")
	require.NoError(t, err)
	require.True(t, d.Equal(decimal.RequireFromString("999.99")))

	d, err = ParseDecimal(" 5 ", "price")
	require.NoError(t, err)
	require.True(t, d.Equal(decimal.NewFromInt(5)))

	_, err = ParseDecimal("abc", "price")
	require.ErrorIs(t, err, ErrInvalidNumber)
	require.Equal(t, "price must be a valid number", Message(err))

	_, err = ParseDecimal("", "price")
	require.ErrorIs(t, err, ErrInvalidNumber)
}

func TestRangeRules(t *testing.T) {
	require.NoError(t, PricePositive(decimal.RequireFromString("0.01")))
	require.Equal(t, MsgPriceNotPositive, Message(PricePositive(decimal.Zero)))
	require.ErrorIs(t, PricePositive(decimal.RequireFromString("-1")), ErrOutOfRange)

	require.NoError(t, PriceInRange(decimal.RequireFromString("9999999999.99")))
	require.Equal(t, MsgPriceTooLarge, Message(PriceInRange(decimal.RequireFromString("10000000000"))))
	require.ErrorIs(t, PriceInRange(decimal.RequireFromString("1e20")), ErrOutOfRange)

	require.NoError(t, TotalInRange(decimal.RequireFromString("999999999999.99")))
	require.Equal(t, MsgTotalTooLarge, Message(TotalInRange(decimal.New(1, 12))))

	require.NoError(t, StockNonNegative(0))
	require.Equal(t, MsgStockNegative, Message(StockNonNegative(-1)))
}

func TestRequired(t *testing.T) {
	require.NoError(t, Required("Alice", "name", MsgNameRequired))
	err := Required("   ", "name", MsgNameRequired)
	require.ErrorIs(t, err, ErrRequired)
	require.Equal(t, MsgNameRequired, Message(err))
}

package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

// Either international "+" followed by 7-15 digits, or the US-style NNN-NNN-NNNN.
var phonePattern = regexp.MustCompile(`^(\+\d{7,15}|\d{3}-\d{3}-\d{4})$`)

// ValidatePhone reports whether phone is acceptable. An empty phone is.
func ValidatePhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}

func Phone(phone string) error {
	if ValidatePhone(phone) {
		return nil
	}
	return newError(ErrInvalidPhone, "phone", MsgInvalidPhone)
}

func Required(value, field, msg string) error {
	if strings.TrimSpace(value) == "" {
		return newError(ErrRequired, field, msg)
	}
	return nil
}

type EmailLookup interface {
	EmailExists(dbc dbctx.Context, email string) (bool, error)
}

// EnsureUniqueEmail fails with ErrDuplicateEmail when a customer already uses
// email. Lookup failures are returned unwrapped; they are not rule violations.
func EnsureUniqueEmail(dbc dbctx.Context, lookup EmailLookup, email string) error {
	exists, err := lookup.EmailExists(dbc, email)
	if err != nil {
		return err
	}
	if exists {
		return newError(ErrDuplicateEmail, "email", MsgDuplicateEmail)
	}
	return nil
}

// ParseDecimal accepts decimal text ("999.99", "1e2", " 5 ") and returns the
// exact fixed-point value.
func ParseDecimal(value, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, newError(ErrInvalidNumber, field, fmt.Sprintf(msgInvalidNumberTmpl, field))
	}
	return d, nil
}

func PricePositive(price decimal.Decimal) error {
	if price.IsPositive() {
		return nil
	}
	return newError(ErrOutOfRange, "price", MsgPriceNotPositive)
}

// maxPrice bounds the decimal(12,2) price column: ten integer digits.
var maxPrice = decimal.New(1, 10)

func PriceInRange(price decimal.Decimal) error {
	if price.Abs().LessThan(maxPrice) {
		return nil
	}
	return newError(ErrOutOfRange, "price", MsgPriceTooLarge)
}

// maxTotal bounds the decimal(14,2) total_amount column.
var maxTotal = decimal.New(1, 12)

func TotalInRange(total decimal.Decimal) error {
	if total.Abs().LessThan(maxTotal) {
		return nil
	}
	return newError(ErrOutOfRange, "total_amount", MsgTotalTooLarge)
}

func StockNonNegative(stock int) error {
	if stock >= 0 {
		return nil
	}
	return newError(ErrOutOfRange, "stock", MsgStockNegative)
}

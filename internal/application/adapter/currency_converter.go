// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// CurrencyConverter converts monetary amounts between arbitrary currencies and
// the configured base currency. All stored amounts are normalized to the base
// currency; conversion happens only at the boundary.
type CurrencyConverter interface {
	// ToBase converts an amount in the given currency to the base currency.
	ToBase(ctx context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error)

	// FromBase converts an amount in the base currency to the given currency.
	FromBase(ctx context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error)

	// BaseCurrency returns the configured base currency code.
	BaseCurrency() string
}

// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/config"
	"github.com/fundflow/backend/internal/application/adapter"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

const ratesCacheKey = "currency:rates"

// currencyConverter implements adapter.CurrencyConverter. Exchange rates are
// fetched from the configured provider and cached in Redis; the static table
// from configuration is the fallback when both cache and provider miss. Rates
// are expressed as units of base currency per unit of foreign currency.
type currencyConverter struct {
	cfg        config.CurrencyConfig
	redis      *redis.Client
	httpClient *http.Client
}

// NewCurrencyConverter creates a new currency converter instance.
func NewCurrencyConverter(cfg config.CurrencyConfig, redisClient *redis.Client) adapter.CurrencyConverter {
	return &currencyConverter{
		cfg:        cfg,
		redis:      redisClient,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ToBase converts an amount in the given currency to the base currency.
func (c *currencyConverter) ToBase(ctx context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == "" || currency == c.cfg.BaseCurrency {
		return amount, nil
	}

	rate, err := c.rateFor(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// FromBase converts an amount in the base currency to the given currency.
func (c *currencyConverter) FromBase(ctx context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == "" || currency == c.cfg.BaseCurrency {
		return amount, nil
	}

	rate, err := c.rateFor(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.IsZero() {
		return decimal.Zero, domainerror.NewCurrencyError(
			domainerror.ErrCodeUnsupportedCurrency,
			fmt.Sprintf("unsupported currency %q", currency),
			domainerror.ErrUnsupportedCurrency,
		)
	}
	return amount.Div(rate), nil
}

// BaseCurrency returns the configured base currency code.
func (c *currencyConverter) BaseCurrency() string {
	return c.cfg.BaseCurrency
}

// rateFor resolves the rate for one currency: Redis cache first, then the
// provider, then the static table.
func (c *currencyConverter) rateFor(ctx context.Context, currency string) (decimal.Decimal, error) {
	rates, err := c.cachedRates(ctx)
	if err != nil {
		slog.Warn("Falling back to static exchange rates", "error", err)
		rates = c.cfg.StaticRates
	}

	rate, ok := rates[currency]
	if !ok {
		// The provider may not cover every currency the static table does
		if rate, ok = c.cfg.StaticRates[currency]; !ok {
			return decimal.Zero, domainerror.NewCurrencyError(
				domainerror.ErrCodeUnsupportedCurrency,
				fmt.Sprintf("unsupported currency %q", currency),
				domainerror.ErrUnsupportedCurrency,
			)
		}
	}
	return decimal.NewFromFloat(rate), nil
}

// cachedRates returns the rate table from Redis, refreshing it from the
// provider on a cache miss.
func (c *currencyConverter) cachedRates(ctx context.Context) (map[string]float64, error) {
	if c.redis != nil {
		cached, err := c.redis.Get(ctx, ratesCacheKey).Result()
		if err == nil {
			var rates map[string]float64
			if err := json.Unmarshal([]byte(cached), &rates); err == nil {
				return rates, nil
			}
		} else if err != redis.Nil {
			slog.Warn("Failed to read exchange rates from cache", "error", err)
		}
	}

	rates, err := c.fetchRates(ctx)
	if err != nil {
		return nil, err
	}

	if c.redis != nil {
		payload, err := json.Marshal(rates)
		if err == nil {
			if err := c.redis.Set(ctx, ratesCacheKey, payload, c.cfg.CacheTTL).Err(); err != nil {
				slog.Warn("Failed to cache exchange rates", "error", err)
			}
		}
	}
	return rates, nil
}

// fetchRates pulls the rate table from the configured provider.
func (c *currencyConverter) fetchRates(ctx context.Context) (map[string]float64, error) {
	if c.cfg.RatesURL == "" {
		return nil, fmt.Errorf("no rates provider configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.RatesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerror.NewCurrencyError(
			domainerror.ErrCodeRateLookupFailed,
			"failed to fetch exchange rates",
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerror.NewCurrencyError(
			domainerror.ErrCodeRateLookupFailed,
			fmt.Sprintf("rates provider returned status %d", resp.StatusCode),
			domainerror.ErrRateLookupFailed,
		)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rates provider returned no rates")
	}
	return body.Rates, nil
}

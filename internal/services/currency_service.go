package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

// supportedCurrencies is the fixed catalog exposed by the converter. It is
// not persisted and no operation mutates it.
var supportedCurrencies = []response_models.CurrencyResponse{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
}

type CurrencyServiceInterface interface {
	ListCurrencies() []response_models.CurrencyResponse
	ListRates(ctx context.Context) ([]response_models.ExchangeRateResponse, error)
	Convert(ctx context.Context, amount float64, from, to string) (*response_models.ConversionResponse, error)
	UpsertRate(ctx context.Context, from, to string, rate float64) (*response_models.ExchangeRateResponse, error)
}

// CurrencyService resolves conversions through the stored directed edge or
// its reciprocal, never through multi-hop chains. Arithmetic runs on
// decimals so the 2-decimal amount and 4-decimal rate roundings are exact.
type CurrencyService struct {
	rateRepo repositories.ExchangeRateRepository
	newID    utils.IDGenerator
}

func NewCurrencyService(rateRepo repositories.ExchangeRateRepository, newID utils.IDGenerator) CurrencyServiceInterface {
	return &CurrencyService{
		rateRepo: rateRepo,
		newID:    newID,
	}
}

func (c *CurrencyService) ListCurrencies() []response_models.CurrencyResponse {
	currencies := make([]response_models.CurrencyResponse, len(supportedCurrencies))
	copy(currencies, supportedCurrencies)
	return currencies
}

func (c *CurrencyService) ListRates(ctx context.Context) ([]response_models.ExchangeRateResponse, error) {
	rates, err := c.rateRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ExchangeRateResponse, 0, len(rates))
	for _, rate := range rates {
		responses = append(responses, toExchangeRateResponse(&rate))
	}
	return responses, nil
}

func (c *CurrencyService) Convert(ctx context.Context, amount float64, from, to string) (*response_models.ConversionResponse, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	value := decimal.NewFromFloat(amount)

	direct, err := c.rateRepo.GetByPair(ctx, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if direct != nil {
		rate := decimal.NewFromFloat(direct.Rate)
		return &response_models.ConversionResponse{
			Amount:          amount,
			FromCurrency:    from,
			ToCurrency:      to,
			ConvertedAmount: value.Mul(rate).Round(2).InexactFloat64(),
			ExchangeRate:    direct.Rate,
		}, nil
	}

	inverse, err := c.rateRepo.GetByPair(ctx, to, from)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if inverse != nil {
		rate := decimal.NewFromFloat(inverse.Rate)
		return &response_models.ConversionResponse{
			Amount:          amount,
			FromCurrency:    from,
			ToCurrency:      to,
			ConvertedAmount: value.Div(rate).Round(2).InexactFloat64(),
			ExchangeRate:    decimal.NewFromInt(1).Div(rate).Round(4).InexactFloat64(),
		}, nil
	}

	return nil, utils.ErrRateNotFound
}

func (c *CurrencyService) UpsertRate(ctx context.Context, from, to string, rate float64) (*response_models.ExchangeRateResponse, error) {
	if rate <= 0 {
		return nil, utils.ErrInvalidInput
	}

	edge := db_models.ExchangeRate{
		ID:           c.newID(),
		FromCurrency: strings.ToUpper(from),
		ToCurrency:   strings.ToUpper(to),
		Rate:         rate,
		LastUpdated:  utils.Today(),
	}

	if err := c.rateRepo.Upsert(ctx, &edge); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toExchangeRateResponse(&edge)
	return &response, nil
}

func toExchangeRateResponse(rate *db_models.ExchangeRate) response_models.ExchangeRateResponse {
	return response_models.ExchangeRateResponse{
		ID:           rate.ID,
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		LastUpdated:  rate.LastUpdated,
	}
}

package currencyfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	NewCurrencyService, NewExchangeRateRepo)

func NewCurrencyService(repo repositories.ExchangeRateRepository, newID utils.IDGenerator) services.CurrencyServiceInterface {
	return services.NewCurrencyService(repo, newID)
}

func NewExchangeRateRepo(db *gorm.DB) repositories.ExchangeRateRepository {
	return repositories.NewExchangeRateRepository(db)
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type ExchangeRateRepository interface {
	List(ctx context.Context) ([]db_models.ExchangeRate, error)
	GetByPair(ctx context.Context, from, to string) (*db_models.ExchangeRate, error)

	// Upsert overwrites the rate and stamp of an existing directed edge,
	// or inserts the edge if the pair is new. The reciprocal edge is never
	// touched.
	Upsert(ctx context.Context, rate *db_models.ExchangeRate) error
}

type exchangeRateRepository struct {
	db *gorm.DB
}

func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepository {
	return &exchangeRateRepository{db: db}
}

func (r *exchangeRateRepository) List(ctx context.Context) ([]db_models.ExchangeRate, error) {
	var rates []db_models.ExchangeRate
	err := r.db.WithContext(ctx).
		Order("from_currency asc, to_currency asc").
		Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *exchangeRateRepository) GetByPair(ctx context.Context, from, to string) (*db_models.ExchangeRate, error) {
	var rate db_models.ExchangeRate
	err := r.db.WithContext(ctx).
		First(&rate, "from_currency = ? AND to_currency = ?", from, to).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *exchangeRateRepository) Upsert(ctx context.Context, rate *db_models.ExchangeRate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.ExchangeRate
		err := tx.First(&existing,
			"from_currency = ? AND to_currency = ?",
			rate.FromCurrency, rate.ToCurrency).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(rate).Error
			}
			return err
		}

		err = tx.Model(&existing).Updates(map[string]interface{}{
			"rate":         rate.Rate,
			"last_updated": rate.LastUpdated,
		}).Error
		if err != nil {
			return err
		}
		rate.ID = existing.ID
		return nil
	})
}

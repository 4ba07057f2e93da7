package db_models

// ExchangeRate is one directed conversion edge. The reverse direction is
// never stored implicitly; conversion derives it as the reciprocal at read
// time. Currency codes are stored uppercase.
type ExchangeRate struct {
	ID           string  `gorm:"primaryKey"`
	FromCurrency string  `gorm:"uniqueIndex:idx_rates_pair,priority:1"`
	ToCurrency   string  `gorm:"uniqueIndex:idx_rates_pair,priority:2"`
	Rate         float64 `gorm:"check:rate > 0"`
	LastUpdated  string
}

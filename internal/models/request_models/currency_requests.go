package request_models

type ConversionRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	FromCurrency string  `json:"from_currency" binding:"required"`
	ToCurrency   string  `json:"to_currency" binding:"required"`
}

type UpdateRateRequest struct {
	Rate float64 `json:"rate" binding:"required,gt=0"`
}

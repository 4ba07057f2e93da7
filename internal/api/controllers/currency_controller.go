package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type CurrencyController struct {
	currencyService services.CurrencyServiceInterface
}

func NewCurrencyController(currencyService services.CurrencyServiceInterface) *CurrencyController {
	return &CurrencyController{
		currencyService: currencyService,
	}
}

func (cc *CurrencyController) ListCurrenciesHandler(c *gin.Context) {
	utils.RespondSuccess(c, cc.currencyService.ListCurrencies(), "Fetched currencies successfully")
}

func (cc *CurrencyController) ListRatesHandler(c *gin.Context) {
	rates, err := cc.currencyService.ListRates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rates, "Fetched exchange rates successfully")
}

func (cc *CurrencyController) ConvertHandler(c *gin.Context) {
	var req request_models.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	conversion, err := cc.currencyService.Convert(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, conversion, "Converted currency successfully")
}

func (cc *CurrencyController) UpdateRateHandler(c *gin.Context) {
	var req request_models.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rate, err := cc.currencyService.UpsertRate(c.Request.Context(), c.Param("from"), c.Param("to"), req.Rate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rate, "Updated exchange rate successfully")
}

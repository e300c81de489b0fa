package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler serves the rate ledger, conversions and the historical series.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateReaderSvc
	historicalService   portssvc.HistoricalRateSvc
}

func newExchangeRateHandler(ers portssvc.ExchangeRateReaderSvc, hs portssvc.HistoricalRateSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		historicalService:   hs,
	}
}

// RegisterExchangeRateRoutes registers the public exchange rate routes.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, ers portssvc.ExchangeRateReaderSvc, hs portssvc.HistoricalRateSvc) {
	h := newExchangeRateHandler(ers, hs)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listExchangeRates)
		rates.POST("/convert", h.convertCurrency)
		rates.GET("/historical", h.getHistoricalRates)
		rates.GET("/:from/:to", h.getExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists stored rates, optionally filtered by source and/or target currency
// @Tags exchange-rates
// @Produce  json
// @Param   from_currency query string false "Source currency code"
// @Param   to_currency query string false "Target currency code"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListExchangeRatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	var from, to *string
	if query.FromCurrency != "" {
		from = &query.FromCurrency
	}
	if query.ToCurrency != "" {
		to = &query.ToCurrency
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list exchange rates")
		return
	}

	logger.Info("Exchange rates listed successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRate godoc
// @Summary Get the rate of a currency pair
// @Description Retrieves the rate for the exact direction from -> to; the inverse is never derived
// @Tags exchange-rates
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("from_currency", c.Param("from")),
		slog.String("to_currency", c.Param("to")),
	)

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// convertCurrency godoc
// @Summary Convert an amount
// @Description Converts amount over the direct rate, rounding the result to 6 decimal places
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertCurrencyRequest true "Conversion request"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Router /exchange-rates/convert [post]
func (h *exchangeRateHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	conversion, err := h.exchangeRateService.ConvertCurrency(c.Request.Context(), req.FromCurrency, req.ToCurrency, *req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Conversion requested for unknown pair",
				slog.String("from_currency", req.FromCurrency),
				slog.String("to_currency", req.ToCurrency))
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Exchange rate not found"})
			return
		}
		respondWithError(c, logger, err, "Failed to convert currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertCurrencyResponse(conversion))
}

// getHistoricalRates godoc
// @Summary Historical rates of a pair
// @Description Returns days+1 daily points ending today (UTC); days defaults to 7 and is clamped to [1, 365]
// @Tags exchange-rates
// @Produce  json
// @Param   from_currency query string true "Source currency code"
// @Param   to_currency query string true "Target currency code"
// @Param   days query int false "Number of days" default(7)
// @Success 200 {object} dto.HistoricalRatesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /exchange-rates/historical [get]
func (h *exchangeRateHandler) getHistoricalRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.HistoricalRatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	days := services.DefaultHistoricalDays
	if query.Days != "" {
		parsed, err := strconv.Atoi(query.Days)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "days must be an integer"})
			return
		}
		days = parsed
	}

	points, err := h.historicalService.GetHistoricalRates(c.Request.Context(), query.FromCurrency, query.ToCurrency, days)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build historical rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoricalRatesResponse(
		domain.NormalizeCurrencyCode(query.FromCurrency),
		domain.NormalizeCurrencyCode(query.ToCurrency),
		points,
	))
}

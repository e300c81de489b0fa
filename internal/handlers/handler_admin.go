package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type adminHandler struct {
	currencyService  portssvc.CurrencyWriterSvc
	ingestionService portssvc.IngestionSvc
}

func newAdminHandler(cs portssvc.CurrencyWriterSvc, is portssvc.IngestionSvc) *adminHandler {
	return &adminHandler{
		currencyService:  cs,
		ingestionService: is,
	}
}

// RegisterAdminRoutes registers admin routes; rg must already carry AdminKeyMiddleware.
func RegisterAdminRoutes(rg *gin.RouterGroup, cs portssvc.CurrencyWriterSvc, is portssvc.IngestionSvc) {
	h := newAdminHandler(cs, is)

	admin := rg.Group("/admin")
	{
		admin.POST("/exchange-rates/refresh", h.refreshRates)
		admin.POST("/currencies", h.createCurrency)
		admin.PUT("/currencies/:code", h.updateCurrency)
		admin.DELETE("/currencies/:code", h.deleteCurrency)
	}
}

// refreshRates godoc
// @Summary Refresh exchange rates
// @Description Pulls the latest snapshot for a base currency (default: the first configured base) and upserts it
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.RefreshRatesRequest false "Base currency"
// @Success 200 {object} dto.IngestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Provider failure"
// @Failure 503 {object} dto.ErrorResponse "Provider API key not configured"
// @Security AdminKey
// @Router /admin/exchange-rates/refresh [post]
func (h *adminHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithBindError(c, logger, err)
		return
	}

	result, err := h.ingestionService.RefreshRates(c.Request.Context(), req.BaseCurrency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to refresh exchange rates")
		return
	}

	logger.Info("Exchange rates refreshed",
		slog.String("base_currency", result.BaseCurrency),
		slog.Int("rates_upserted", result.RatesUpserted))
	c.JSON(http.StatusOK, dto.ToIngestionResponse(result))
}

// createCurrency godoc
// @Summary Create a currency
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Currency code already exists"
// @Security AdminKey
// @Router /admin/currencies [post]
func (h *adminHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create currency")
		return
	}

	logger.Info("Currency created successfully", slog.String("currency_code", currency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update currency display metadata
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency code"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security AdminKey
// @Router /admin/currencies/{code} [put]
func (h *adminHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Deletes a currency together with its exchange rates and favorites
// @Tags admin
// @Param   code path string true "Currency code"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security AdminKey
// @Router /admin/currencies/{code} [delete]
func (h *adminHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), c.Param("code")); err != nil {
		respondWithError(c, logger, err, "Failed to delete currency")
		return
	}

	logger.Info("Currency deleted")
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles public read requests on the currency registry.
type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
}

func newCurrencyHandler(cs portssvc.CurrencyReaderSvc) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// RegisterCurrencyRoutes registers the public currency routes.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyReaderSvc) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists currencies in insertion order, optionally filtered by a case-insensitive substring of code or name
// @Tags currencies
// @Produce  json
// @Param   search query string false "Substring of code or name"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	search := c.Query("search")

	currencies, err := h.currencyService.SearchCurrencies(c.Request.Context(), search)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves a currency by its 3-letter code (case-insensitive)
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "currencycode" binding rule to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return domain.IsValidCurrencyCode(domain.NormalizeCurrencyCode(fl.Field().String()))
	})
}

// respondWithError maps a service error onto its HTTP status and the {"error": ...} payload.
// Unexpected failures are logged and answered with internalMsg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	status := apperrors.StatusCode(err)
	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	switch {
	case status == http.StatusInternalServerError:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		msg = internalMsg
	case status >= http.StatusInternalServerError:
		logger.Error(msg, slog.String("error", err.Error()))
	default:
		logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

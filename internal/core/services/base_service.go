package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
}

// ServiceOption is a functional option shared by the services in this package
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(b *BaseService) {
		b.clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	b := BaseService{clock: time.Now}
	for _, option := range options {
		option(&b)
	}
	return b
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// normalizeCode upper-cases code and rejects anything but three letters.
func normalizeCode(field, code string) (string, error) {
	normalized := domain.NormalizeCurrencyCode(code)
	if !domain.IsValidCurrencyCode(normalized) {
		return "", apperrors.NewValidationError(field + " must be a 3-letter currency code")
	}
	return normalized, nil
}

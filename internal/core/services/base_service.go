package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now func() time.Time
}

// ServiceOption is a functional option shared by the ledger services
type ServiceOption func(*BaseService)

// WithClock overrides the time source used for audit fields and default dates.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{now: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current UTC time.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
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

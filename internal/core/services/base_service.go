package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/md_util/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Logger *slog.Logger
}

// GetLogger gets the request logger from context, then the service logger,
// and finally the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger := middleware.LoggerFromCtx(ctx); logger != nil {
			return logger
		}
	}
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
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
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

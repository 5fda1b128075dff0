package app

import (
	"log/slog"
	"os"

	"agrilink-fulfillment/internal/logx"
)

// NewLogger builds the process-wide JSON logger.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logx.NewSlogAdapter(base)
}

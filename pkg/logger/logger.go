// Package logger holds the process-wide structured logger for the portfolio
// backend. Transport failures and rate limiter fallbacks log through Log;
// the contact endpoint never puts that detail in a response body.
package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

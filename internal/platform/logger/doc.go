// Package logger provides structured JSON logging built on log/slog, along with
// helpers for carrying a request-scoped logger and trace ID through a context.
package logger

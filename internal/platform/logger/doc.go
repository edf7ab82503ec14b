// Package logger configures the application-wide slog JSON logger and
// provides helpers for carrying request-scoped loggers through context.
package logger

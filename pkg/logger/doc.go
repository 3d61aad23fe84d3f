// Package logger builds configured log/slog loggers and provides typed
// attribute helpers so log fields stay consistent across the codebase.
package logger

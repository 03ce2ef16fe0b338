// Package logger builds configured slog.Logger instances and provides a
// small vocabulary of attribute helpers used across the library. The
// library itself never logs; only boundary adapters such as the httperr
// middleware accept a logger built here (or any other *slog.Logger).
package logger

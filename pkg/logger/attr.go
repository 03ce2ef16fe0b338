package logger

import "log/slog"

// Error records a single error under the key "error"; nil yields an empty
// attribute that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the library component emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a discrete occurrence within a component.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Param records the argument name a guard failure refers to.
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

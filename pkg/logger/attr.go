package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier. Empty ids yield an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Input records the checked value. A nil value is logged as absent.
func Input(value *string) slog.Attr {
	if value == nil {
		return slog.Bool("input_absent", true)
	}
	return slog.String("input", *value)
}

// Verdict records whether a value passed validation.
func Verdict(valid bool) slog.Attr {
	return slog.Bool("valid", valid)
}

// Reason records a rejection reason code. Empty codes yield an empty Attr.
func Reason(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("reason", code)
}

// Rules groups the validator limits under the key "rules".
func Rules(precision, scale int, onlyPositive bool) slog.Attr {
	return slog.Group("rules",
		slog.Int("precision", precision),
		slog.Int("scale", scale),
		slog.Bool("only_positive", onlyPositive),
	)
}

// Count records a number of processed items.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

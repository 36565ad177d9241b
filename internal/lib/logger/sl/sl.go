// Package sl holds slog attribute helpers shared across packages.
package sl

import "log/slog"

// Err renders err under the "error" key. A nil error logs as an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// RequestID tags a record with the request id set by the HTTP middleware.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Op names the operation a log line belongs to.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}

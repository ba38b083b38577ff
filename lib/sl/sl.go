package sl

import (
	"log/slog"
)

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Wallet shortens a chain address for logs: first 6 and last 4 characters.
func Wallet(address string) slog.Attr {
	r := address
	if len(address) > 12 {
		r = address[:6] + "..." + address[len(address)-4:]
	}
	if address == "" {
		r = "?"
	}
	return slog.Attr{
		Key:   "wallet",
		Value: slog.StringValue(r),
	}
}

func Module(mod string) slog.Attr {
	return slog.Attr{
		Key:   "mod",
		Value: slog.StringValue(mod),
	}
}

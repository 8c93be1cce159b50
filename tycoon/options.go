package tycoon

import (
	"log/slog"
	"time"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal"
)

type Option func(*internal.Config)

func WithHost(host string) Option {
	return func(c *internal.Config) {
		c.Host = host
	}
}

func WithPort(port int) Option {
	return func(c *internal.Config) {
		c.Port = port
	}
}

// WithEncoding selects the column encoding used for request bodies.
func WithEncoding(enc Encoding) Option {
	return func(c *internal.Config) {
		c.Encoding = enc
	}
}

// WithTimeout bounds every call made through the default HTTP transport.
func WithTimeout(d time.Duration) Option {
	return func(c *internal.Config) {
		c.Timeout = d
	}
}

// WithTransport replaces the HTTP transport, e.g. with a stub in tests.
func WithTransport(t Transport) Option {
	return func(c *internal.Config) {
		c.Transport = t
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *internal.Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

package internal

import (
	"io"
	"log/slog"
	"time"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
	"github.com/0xRadioAc7iv/go-kyototycoon/internal/transport"
)

type Config struct {
	Host     string
	Port     int
	Encoding protocol.Encoding
	Timeout  time.Duration

	// Transport overrides the HTTP transport built from Host, Port and Timeout.
	Transport transport.Transport
	Logger    *slog.Logger
}

const DEFAULT_HOST = "127.0.0.1"
const DEFAULT_PORT = 1978
const DEFAULT_ENCODING = protocol.Base64Encoded
const DEFAULT_TIMEOUT = 10 * time.Second

func DefaultConfig() *Config {
	return &Config{
		Host:     DEFAULT_HOST,
		Port:     DEFAULT_PORT,
		Encoding: DEFAULT_ENCODING,
		Timeout:  DEFAULT_TIMEOUT,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

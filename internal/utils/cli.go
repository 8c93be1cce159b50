package utils

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xRadioAc7iv/go-kyototycoon/core"
	"github.com/0xRadioAc7iv/go-kyototycoon/internal"
	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
	shellquote "github.com/kballard/go-shellquote"
)

// HandleServerInputs parses the flags of the emulator binary.
func HandleServerInputs() (port *int, sweepInterval *uint, verbose *bool) {
	defaultPort := GetEnvIntOrDefault("KT_PORT", core.DefaultListenerPort)

	port = flag.Int("port", defaultPort, "Port to use for the HTTP server")
	sweepInterval = flag.Uint("sweep", core.DefaultSweepInterval, "Seconds between expired record sweeps")
	verbose = flag.Bool("v", false, "Log every request")
	flag.Parse()

	return port, sweepInterval, verbose
}

// ClientInputs holds the connection flags shared by client binaries.
type ClientInputs struct {
	Host     string
	Port     int
	Encoding protocol.Encoding
}

// HandleClientInputs parses -host, -port and -encoding. Defaults come from
// KT_HOST, KT_PORT and KT_ENCODING.
func HandleClientInputs() (*ClientInputs, error) {
	host := flag.String("host", GetEnvOrDefault("KT_HOST", internal.DEFAULT_HOST), "Kyoto Tycoon server host")
	port := flag.Int("port", GetEnvIntOrDefault("KT_PORT", internal.DEFAULT_PORT), "Kyoto Tycoon server port")
	encoding := flag.String("encoding", GetEnvOrDefault("KT_ENCODING", internal.DEFAULT_ENCODING.String()), "Column encoding: plain, base64 or url")
	flag.Parse()

	enc, err := protocol.ParseEncoding(*encoding)
	if err != nil {
		return nil, err
	}

	return &ClientInputs{Host: *host, Port: *port, Encoding: enc}, nil
}

// SplitCommandLine splits a REPL line shell-style into a lowercased command
// and its arguments, so quoted values may hold spaces.
func SplitCommandLine(line string) (cmd string, args []string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, err
	}

	if len(words) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}

	return strings.ToLower(words[0]), words[1:], nil
}

// ParseInt64Arg parses args[i] when present, returning def otherwise.
func ParseInt64Arg(args []string, i int, def int64) (int64, error) {
	if i >= len(args) {
		return def, nil
	}
	return strconv.ParseInt(args[i], 10, 64)
}

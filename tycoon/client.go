package tycoon

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal"
	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
	"github.com/0xRadioAc7iv/go-kyototycoon/internal/transport"
)

// Client issues RPC calls against one Kyoto Tycoon server. Its configuration
// is fixed at construction, so a Client is safe for concurrent use.
type Client struct {
	host      string
	port      int
	encoding  Encoding
	transport Transport
	logger    *slog.Logger
}

func New(opts ...Option) (*Client, error) {
	cfg := internal.DefaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is empty")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	tr := cfg.Transport
	if tr == nil {
		tr = transport.NewHTTPTransport(cfg.Host, cfg.Port, cfg.Timeout)
	}

	return &Client{
		host:      cfg.Host,
		port:      cfg.Port,
		encoding:  cfg.Encoding,
		transport: tr,
		logger:    cfg.Logger,
	}, nil
}

func (c *Client) Host() string { return c.host }

func (c *Client) Port() int { return c.port }

func (c *Client) Encoding() Encoding { return c.encoding }

// CallOption adds an optional parameter to a single call.
type CallOption func(*Pairs)

// Expire sets the expiration time. Positive values are seconds from now,
// negative values are an absolute epoch time.
func Expire(xt int64) CallOption {
	return func(p *Pairs) {
		p.Set("xt", strconv.FormatInt(xt, 10))
	}
}

// Origin sets the value an increment starts from when the record is missing.
func Origin(orig int64) CallOption {
	return func(p *Pairs) {
		p.Set("orig", strconv.FormatInt(orig, 10))
	}
}

// Database targets a named or numbered database on a multi-database server.
func Database(db string) CallOption {
	return func(p *Pairs) {
		p.Set("DB", db)
	}
}

// Call runs method with params sent as two-column rows and returns the
// response rows as key/value pairs.
func (c *Client) Call(ctx context.Context, method string, params Pairs) (Pairs, error) {
	rows, err := c.CallTable(ctx, method, protocol.PairsToTable(params))
	if err != nil {
		return nil, err
	}

	return protocol.TableToPairs(rows), nil
}

// CallTable runs method with a raw table and returns the raw response table.
func (c *Client) CallTable(ctx context.Context, method string, rows Table) (Table, error) {
	body := protocol.Serialize(rows, c.encoding)

	header := http.Header{}
	header.Set("Content-Type", c.encoding.ContentType())

	resp, err := c.transport.Post(ctx, "rpc/"+method, body, header)
	if err != nil {
		c.logger.Warn("rpc transport failed", "method", method, "error", err)
		return nil, &TransportError{Method: method, Err: err}
	}

	if resp.Status != http.StatusOK {
		c.logger.Warn("rpc returned error status", "method", method, "status", resp.Status)
		return nil, &TransportError{Method: method, Status: resp.Status, Body: resp.Body}
	}

	contentType := protocol.ContentTypePlain
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		contentType = ct
	}

	out, err := protocol.Deserialize(contentType, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rpc %s: %w", method, err)
	}

	c.logger.Debug("rpc call", "method", method, "rows", len(out))
	return out, nil
}

// Get returns the value stored under key. ok is false when the server sent
// no value field, which is how a missing record is reported.
func (c *Client) Get(ctx context.Context, key string, opts ...CallOption) (value string, ok bool, err error) {
	params := buildParams(opts, "key", key)

	res, err := c.Call(ctx, "get", params)
	if err != nil {
		return "", false, err
	}

	value, ok = res.Get("value")
	return value, ok, nil
}

func (c *Client) Set(ctx context.Context, key, value string, opts ...CallOption) error {
	params := buildParams(opts, "key", key, "value", value)

	_, err := c.Call(ctx, "set", params)
	return err
}

// Increment adds delta to the integer stored under key and returns the result.
func (c *Client) Increment(ctx context.Context, key string, delta int64, opts ...CallOption) (int64, error) {
	params := buildParams(opts, "key", key, "num", strconv.FormatInt(delta, 10))

	res, err := c.Call(ctx, "increment", params)
	if err != nil {
		return 0, err
	}

	num, ok := res.Get("num")
	if !ok {
		return 0, &MissingFieldError{Method: "increment", Field: "num"}
	}

	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("rpc increment: parse num %q: %w", num, err)
	}

	return n, nil
}

// IncrementDouble is Increment for records holding a decimal number.
func (c *Client) IncrementDouble(ctx context.Context, key string, delta float64, opts ...CallOption) (float64, error) {
	params := buildParams(opts, "key", key, "num", strconv.FormatFloat(delta, 'f', -1, 64))

	res, err := c.Call(ctx, "increment_double", params)
	if err != nil {
		return 0, err
	}

	num, ok := res.Get("num")
	if !ok {
		return 0, &MissingFieldError{Method: "increment_double", Field: "num"}
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("rpc increment_double: parse num %q: %w", num, err)
	}

	return f, nil
}

func (c *Client) Remove(ctx context.Context, key string, opts ...CallOption) error {
	_, err := c.Call(ctx, "remove", buildParams(opts, "key", key))
	return err
}

// Echo sends params and returns what the server echoed back.
func (c *Client) Echo(ctx context.Context, params Pairs) (Pairs, error) {
	return c.Call(ctx, "echo", params)
}

func (c *Client) Void(ctx context.Context) error {
	_, err := c.Call(ctx, "void", nil)
	return err
}

func (c *Client) Report(ctx context.Context) (Pairs, error) {
	return c.Call(ctx, "report", nil)
}

func (c *Client) Status(ctx context.Context, opts ...CallOption) (Pairs, error) {
	return c.Call(ctx, "status", buildParams(opts))
}

// buildParams sets the required key/value arguments in order, then applies
// the optional ones.
func buildParams(opts []CallOption, kv ...string) Pairs {
	var params Pairs

	for i := 0; i+1 < len(kv); i += 2 {
		params.Set(kv[i], kv[i+1])
	}

	for _, opt := range opts {
		opt(&params)
	}

	return params
}

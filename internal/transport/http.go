package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Transport performs one HTTP POST against the server. Non-2xx statuses are
// reported through Response.Status and never as an error.
type Transport interface {
	Post(ctx context.Context, path, body string, header http.Header) (*Response, error)
}

// Response is what the server sent back. Header lookups are case-insensitive.
type Response struct {
	Status int
	Header http.Header
	Body   string
}

// HTTPTransport posts to http://host:port/path using net/http.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport returns a transport bound to host:port. A zero timeout
// means requests only end through ctx.
func NewHTTPTransport(host string, port int, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		baseURL: "http://" + net.JoinHostPort(host, strconv.Itoa(port)),
		client:  &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) Post(ctx context.Context, path, body string, header http.Header) (*Response, error) {
	uri := t.baseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   string(data),
	}, nil
}

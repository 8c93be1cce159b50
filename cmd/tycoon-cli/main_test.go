package main

import (
	"context"
	"net"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/0xRadioAc7iv/go-kyototycoon/core"
	"github.com/0xRadioAc7iv/go-kyototycoon/tycoon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *tycoon.Client {
	t.Helper()

	srv := httptest.NewServer((&core.Tycoon{}).Handler())
	t.Cleanup(srv.Close)

	host, portStr, err := net.SplitHostPort(srv.Listener.Addr().String())
	require.NoError(t, err)
	port, _ := strconv.Atoi(portStr)

	client, err := tycoon.New(tycoon.WithHost(host), tycoon.WithPort(port))
	require.NoError(t, err)

	return client
}

func TestExecute(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	steps := []struct {
		cmd  string
		args []string
		want string
	}{
		{"get", []string{"city"}, "(nil)"},
		{"set", []string{"city", "new york"}, "OK"},
		{"get", []string{"city"}, "new york"},
		{"incr", []string{"hits"}, "1"},
		{"incr", []string{"hits", "9"}, "10"},
		{"incr", []string{"other", "1", "41"}, "42"},
		{"incrf", []string{"ratio", "0.5"}, "0.5"},
		{"remove", []string{"city"}, "OK"},
		{"get", []string{"city"}, "(nil)"},
		{"void", nil, "OK"},
	}

	for _, s := range steps {
		got, err := execute(ctx, client, s.cmd, s.args)
		require.NoError(t, err, "%s %v", s.cmd, s.args)
		assert.Equal(t, s.want, got, "%s %v", s.cmd, s.args)
	}

	status, err := execute(ctx, client, "status", nil)
	require.NoError(t, err)
	assert.Contains(t, status, "count: 3")
}

func TestExecute_Errors(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		cmd  string
		args []string
	}{
		{"get", nil},
		{"set", []string{"only-key"}},
		{"set", []string{"k", "v", "soon"}},
		{"incr", []string{"k", "lots"}},
		{"remove", []string{"missing"}},
		{"flushall", nil},
	}

	for _, tt := range tests {
		_, err := execute(ctx, client, tt.cmd, tt.args)
		assert.Error(t, err, "%s %v", tt.cmd, tt.args)
	}
}

func TestExecute_Help(t *testing.T) {
	got, err := execute(context.Background(), newTestClient(t), "help", nil)
	require.NoError(t, err)
	assert.Contains(t, got, "INCR <key>")
}

package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListen_SkipsPortInUse(t *testing.T) {
	taken, err := server.Listen(0)
	require.NoError(t, err)
	defer taken.Close()

	port := server.Port(taken)

	ln, err := server.Listen(port)
	require.NoError(t, err)
	defer ln.Close()

	assert.Greater(t, server.Port(ln), port)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	e := server.New()
	e.POST("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	ln, err := server.Listen(0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln, e)
	}()

	url := fmt.Sprintf("http://%s/ping", net.JoinHostPort("127.0.0.1", fmt.Sprint(server.Port(ln))))

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Post(url, "text/plain", nil)
		return err == nil
	}, time.Second, 10*time.Millisecond)

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

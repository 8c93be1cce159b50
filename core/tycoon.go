package core

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/server"
	"github.com/labstack/echo/v4"
)

// Tycoon is an in-memory server speaking the Kyoto Tycoon HTTP RPC protocol.
type Tycoon struct {
	keyDir   KeyDir
	keyDirMu sync.RWMutex

	echo      *echo.Echo
	initOnce  sync.Once
	startedAt time.Time

	serverCancel context.CancelFunc
	sweepCancel  context.CancelFunc

	cntSet       atomic.Int64
	cntGet       atomic.Int64
	cntGetMisses atomic.Int64
	cntRemove    atomic.Int64
	cntMisc      atomic.Int64

	ListenerPort  int
	SweepInterval uint
	Logger        *slog.Logger
}

func (tk *Tycoon) init() {
	tk.initOnce.Do(func() {
		if tk.Logger == nil {
			tk.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		if tk.SweepInterval < MinimumSweepInterval {
			tk.SweepInterval = DefaultSweepInterval
		}

		tk.keyDir = make(KeyDir)
		tk.startedAt = time.Now()

		tk.echo = server.New()
		tk.echo.POST("/rpc/:method", tk.rpcHandler)
	})
}

// Handler exposes the RPC routes without starting a listener.
func (tk *Tycoon) Handler() http.Handler {
	tk.init()
	return tk.echo
}

// Start binds ListenerPort (or the next free port) and serves in the
// background. ListenerPort is updated to the bound port.
func (tk *Tycoon) Start() error {
	tk.init()

	ln, err := server.Listen(tk.ListenerPort)
	if err != nil {
		tk.Logger.Error("failed to bind listener", "port", tk.ListenerPort, "error", err)
		return err
	}
	tk.ListenerPort = server.Port(ln)

	ctx, cancel := context.WithCancel(context.Background())
	tk.serverCancel = cancel
	go func() {
		if err := server.Serve(ctx, ln, tk.echo); err != nil {
			tk.Logger.Error("server stopped abruptly", "error", err)
		}
	}()

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	tk.sweepCancel = sweepCancel
	go tk.sweepExpiredInterval(sweepCtx, tk.SweepInterval)

	tk.Logger.Info("tycoon started", "port", tk.ListenerPort)
	return nil
}

func (tk *Tycoon) Stop() {
	if tk.serverCancel != nil {
		tk.serverCancel()
	}

	if tk.sweepCancel != nil {
		tk.sweepCancel()
	}
}

func (tk *Tycoon) sweepExpiredInterval(ctx context.Context, seconds uint) {
	ticker := time.NewTicker(time.Duration(seconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := tk.sweepExpired(time.Now()); n > 0 {
				tk.Logger.Debug("swept expired records", "count", n)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (tk *Tycoon) sweepExpired(now time.Time) int {
	tk.keyDirMu.Lock()
	defer tk.keyDirMu.Unlock()

	swept := 0
	for key, entry := range tk.keyDir {
		if entry.expired(now) {
			delete(tk.keyDir, key)
			swept++
		}
	}

	return swept
}

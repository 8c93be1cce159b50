package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0xRadioAc7iv/go-kyototycoon/core"
	"github.com/0xRadioAc7iv/go-kyototycoon/internal/utils"
)

func main() {
	port, sweepInterval, verbose := utils.HandleServerInputs()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	tycoon := core.Tycoon{
		ListenerPort:  *port,
		SweepInterval: *sweepInterval,
		Logger:        logger,
	}

	if err := tycoon.Start(); err != nil {
		fmt.Println("Error while starting:", err)
		os.Exit(1)
	}
	defer tycoon.Stop()

	fmt.Printf("Kyoto Tycoon emulator listening on :%d, press Ctrl+C to exit\n", tycoon.ListenerPort)

	sig := utils.WaitForShutdownSignal()
	logger.Info("shutting down", "signal", sig.String())
}

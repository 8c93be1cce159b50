package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// WaitForShutdownSignal blocks until it receives an interrupt (Ctrl+C) or a
// termination signal (SIGTERM) and returns the signal.
func WaitForShutdownSignal() os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	return <-sigChan
}

package core

const (
	DefaultListenerPort  = 1978
	DefaultSweepInterval = 5 // seconds
	MinimumSweepInterval = 1

	// Kyoto Tycoon answers 450 when a request is well formed but cannot be
	// applied to the current data.
	StatusLogicalInconsistency = 450

	Version = "0.9.56"
)

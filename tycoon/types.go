package tycoon

import (
	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
	"github.com/0xRadioAc7iv/go-kyototycoon/internal/transport"
)

type (
	Table    = protocol.Table
	Pair     = protocol.Pair
	Pairs    = protocol.Pairs
	Encoding = protocol.Encoding

	Transport = transport.Transport
	Response  = transport.Response
)

const (
	NotEncoded    = protocol.NotEncoded
	Base64Encoded = protocol.Base64Encoded
	URLEncoded    = protocol.URLEncoded
)

// StatusLogicalInconsistency is the status Kyoto Tycoon answers with when an
// operation cannot be applied, e.g. a missing record or a non-numeric value.
const StatusLogicalInconsistency = 450

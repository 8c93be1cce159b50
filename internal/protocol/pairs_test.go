package protocol_test

import (
	"testing"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
	"github.com/stretchr/testify/assert"
)

func TestPairsRoundTrip(t *testing.T) {
	var p protocol.Pairs
	p.Set("key", "counter")
	p.Set("num", "5")
	p.Set("xt", "1700000000")

	got := protocol.TableToPairs(protocol.PairsToTable(p))
	assert.Equal(t, p, got)
}

func TestPairsToTable_Order(t *testing.T) {
	var p protocol.Pairs
	p.Set("b", "2")
	p.Set("a", "1")
	p.Set("b", "3")

	assert.Equal(t, protocol.Table{{"b", "3"}, {"a", "1"}}, protocol.PairsToTable(p))
}

func TestTableToPairs_ShortRows(t *testing.T) {
	rows := protocol.Table{{"lonely"}, {"key", "value", "ignored"}, {}}

	pairs := protocol.TableToPairs(rows)
	assert.Len(t, pairs, 2)

	v, ok := pairs.Get("lonely")
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, pairs.Has("lonely"))

	v, ok = pairs.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	assert.Equal(t, protocol.Table{{"lonely"}, {"key", "value"}}, protocol.PairsToTable(pairs))
}

func TestPairsGet_Missing(t *testing.T) {
	pairs := protocol.TableToPairs(protocol.Table{{"num", "17"}})

	_, ok := pairs.Get("value")
	assert.False(t, ok)
	assert.False(t, pairs.Has("value"))
	assert.Equal(t, map[string]string{"num": "17"}, pairs.Map())
}

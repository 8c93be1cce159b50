package tycoon_test

import (
	"sync"
	"testing"

	"github.com/0xRadioAc7iv/go-kyototycoon/tycoon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGet(t *testing.T) {
	reg := tycoon.NewRegistry()

	a, err := reg.Get("sessions", tycoon.WithPort(2000))
	require.NoError(t, err)
	assert.Equal(t, 2000, a.Port())

	b, err := reg.Get("sessions", tycoon.WithPort(3000))
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 2000, b.Port())

	c, err := reg.Get("cache")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestRegistryGet_InvalidOptions(t *testing.T) {
	reg := tycoon.NewRegistry()

	_, err := reg.Get("broken", tycoon.WithPort(-1))
	require.Error(t, err)

	_, ok := reg.Lookup("broken")
	assert.False(t, ok)
}

func TestRegistryGet_ConcurrentFirstUse(t *testing.T) {
	reg := tycoon.NewRegistry()

	const workers = 50
	clients := make([]*tycoon.Client, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := reg.Get("shared")
			assert.NoError(t, err)
			clients[i] = c
		}(i)
	}
	wg.Wait()

	for _, c := range clients {
		assert.Same(t, clients[0], c)
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := tycoon.NewRegistry()

	a, err := reg.Get("x")
	require.NoError(t, err)

	reg.Remove("x")
	_, ok := reg.Lookup("x")
	assert.False(t, ok)

	b, err := reg.Get("x")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

/*
	Basic Script that generates concurrent set/get/increment traffic against a
	Kyoto Tycoon server (or the bundled emulator).
*/

package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/utils"
	"github.com/0xRadioAc7iv/go-kyototycoon/tycoon"
	"github.com/google/uuid"
)

const (
	concurrency = 6

	// Fixed universe
	totalKeys   = 100
	totalValues = 100

	// Per-cycle behavior
	keysPerCycleWrite  = 20
	keysPerCycleRead   = 20
	keysPerCycleRemove = 5
	cyclesPerWorker    = 500

	sleepBetweenCycles = 10 * time.Millisecond

	progressEvery = 100
)

func main() {
	inputs, err := utils.HandleClientInputs()
	if err != nil {
		fmt.Println(err)
		return
	}

	start := time.Now()
	fmt.Printf("Starting Kyoto Tycoon load generator against %s:%d\n", inputs.Host, inputs.Port)

	keys := makeKeys(totalKeys)
	values := makeValues(totalValues)

	// One shared client per name; every worker gets the same instance.
	registry := tycoon.NewRegistry()

	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(id, registry, inputs, keys, values)
		}(i)
	}

	wg.Wait()
	fmt.Printf("Load finished in %v\n", time.Since(start))
}

func runWorker(id int, registry *tycoon.Registry, inputs *utils.ClientInputs, keys []string, values []string) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	ctx := context.Background()

	client, err := registry.Get("default",
		tycoon.WithHost(inputs.Host),
		tycoon.WithPort(inputs.Port),
		tycoon.WithEncoding(inputs.Encoding),
	)
	if err != nil {
		fmt.Printf("[worker %d] client error: %v\n", id, err)
		return
	}

	counter := fmt.Sprintf("loadgen:worker:%d:cycles", id)

	for cycle := 1; cycle <= cyclesPerWorker; cycle++ {

		// ---- WRITE / OVERWRITE PHASE ----
		for i := 0; i < keysPerCycleWrite; i++ {
			key := keys[rng.Intn(len(keys))]
			val := values[rng.Intn(len(values))]

			if err := client.Set(ctx, key, val, tycoon.Expire(300)); err != nil {
				fmt.Printf("[worker %d] SET error: %v\n", id, err)
				return
			}
		}

		// ---- READ PHASE ----
		for i := 0; i < keysPerCycleRead; i++ {
			key := keys[rng.Intn(len(keys))]

			if _, _, err := client.Get(ctx, key); err != nil {
				fmt.Printf("[worker %d] GET error: %v\n", id, err)
				return
			}
		}

		// ---- REMOVE PHASE ----
		// Removing a key another worker already removed answers 450; ignore it.
		for i := 0; i < keysPerCycleRemove; i++ {
			key := keys[rng.Intn(len(keys))]
			_ = client.Remove(ctx, key)
		}

		n, err := client.Increment(ctx, counter, 1)
		if err != nil {
			fmt.Printf("[worker %d] INCREMENT error: %v\n", id, err)
			return
		}

		if cycle%progressEvery == 0 {
			fmt.Printf("[worker %d] completed %d cycles (counter=%d)\n", id, cycle, n)
		}

		time.Sleep(sleepBetweenCycles)
	}
}

func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "loadgen:" + uuid.NewString()
	}
	return keys
}

func makeValues(n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("value-%d\t%s", i, uuid.NewString())
	}
	return values
}

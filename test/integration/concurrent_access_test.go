// Package integration provides end-to-end tests for the reliability engine.
//
// This file contains concurrent access tests verifying that independent
// callers computing at the same time get identical results.
//
// Run with: go test ./test/integration/... -v -run Concurrent
package integration

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/reliability-calc/internal/reliability"
)

const (
	// numGoroutines is the number of concurrent goroutines for stress testing.
	numGoroutines = 150

	// numIterations is the number of iterations per goroutine.
	numIterations = 10
)

// TestConcurrentAccess_SharedEngine spawns 150 goroutines sharing one engine,
// each making 10 calls, and checks every result matches a sequential call.
func TestConcurrentAccess_SharedEngine(t *testing.T) {
	engine := reliability.NewEngine()
	in := reliability.Input{Connections: 6, AccidentPrice: 23.6, PlannedPrice: 17.6}
	want := engine.Calculate(in)

	var wg sync.WaitGroup
	results := make(chan reliability.CalculationResult, numGoroutines*numIterations)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				results <- engine.Calculate(in)
			}
		}()
	}

	wg.Wait()
	close(results)

	count := 0
	for got := range results {
		require.Equal(t, want, got, "all results should be identical for same input")
		count++
	}
	assert.Equal(t, numGoroutines*numIterations, count,
		"Should have received all expected results")
}

// TestConcurrentAccess_DistinctInputs runs different connection counts in
// parallel and compares each against its sequential result.
func TestConcurrentAccess_DistinctInputs(t *testing.T) {
	want := make([]reliability.CalculationResult, numGoroutines)
	for i := range want {
		want[i] = reliability.Compute(float32(i), 23.6, float32(i)/10)
	}

	got := make([]reliability.CalculationResult, numGoroutines)
	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				got[i] = reliability.Compute(float32(i), 23.6, float32(i)/10)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}

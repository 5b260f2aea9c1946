//go:build test

package mem

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/pkg/spell"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var testWords = []string{
	"teh", "korrect", "anwer", "speling", "recieve",
	"the", "correct", "answer", "spelling", "receive",
	"wierd", "seperate", "definately", "occured",
}

func mustSpell(t *testing.T) *spell.Spell {
	t.Helper()
	sp, err := spell.New(
		"../../pkg/spell/testdata/unigram.txt",
		spell.WithBigram("../../pkg/spell/testdata/bigram.txt"),
		spell.WithSoundex("../../pkg/spell/testdata/soundex.txt"),
	)
	if err != nil {
		t.Fatalf("spell.New: %v", err)
	}
	return sp
}

// TestMemoryLeakBasic runs repeated Suggest calls against a fixed Spell,
// logs the heap growth per call, and asserts that no goroutines leak.
func TestMemoryLeakBasic(t *testing.T) {
	for _, iterations := range []int{100, 500, 2000} {
		t.Run(fmt.Sprintf("iterations_%d", iterations), func(t *testing.T) {
			runBasicMemoryTest(t, iterations)
		})
	}
}

// TestMemoryLeakConcurrent runs Suggest from multiple goroutines over the
// same Spell, exercising the read-only-after-construction concurrency
// contract pkg/spell documents.
func TestMemoryLeakConcurrent(t *testing.T) {
	for _, cfg := range []struct{ workers, iterationsPerWorker int }{
		{workers: 1, iterationsPerWorker: 1000},
		{workers: 4, iterationsPerWorker: 250},
		{workers: 8, iterationsPerWorker: 125},
	} {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", cfg.workers, cfg.iterationsPerWorker), func(t *testing.T) {
			runConcurrentMemoryTest(t, cfg.workers, cfg.iterationsPerWorker)
		})
	}
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	sp := mustSpell(t)
	defer sp.Close()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		for _, word := range testWords {
			_ = sp.Suggest(word, 5)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

	totalOps := iterations * len(testWords)
	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, totalOps, memDelta, memPerOp, goroutineDelta)

	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func runConcurrentMemoryTest(t *testing.T, workers, iterationsPerWorker int) {
	sp := mustSpell(t)
	defer sp.Close()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var ops int64
	var mu sync.Mutex

	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := 0
			for iter := 0; iter < iterationsPerWorker; iter++ {
				for _, word := range testWords {
					_ = sp.Suggest(word, 5)
					local++
				}
			}
			mu.Lock()
			ops += int64(local)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	memPerOp := float64(memDelta) / float64(ops)

	t.Logf("workers=%d iter_per_worker=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		workers, iterationsPerWorker, ops, memDelta, memPerOp, goroutineDelta)

	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

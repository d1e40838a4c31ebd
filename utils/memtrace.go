package utils

import (
	"context"
	"runtime"
	"time"

	"github.com/consensys/gnark/logger"
)

// memTraceStep is the heap growth, in bytes, below which samples are not logged.
const memTraceStep = 10 << 10

// MemoryTraces samples the heap every interval until ctx is done, logging
// each sample that grew by more than memTraceStep since the last one logged.
// The returned channel is closed once sampling has stopped and yields the
// peak heap size observed.
func MemoryTraces(ctx context.Context, interval time.Duration) <-chan uint64 {
	done := make(chan uint64, 1)
	go func() {
		defer close(done)
		log := logger.Logger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var m runtime.MemStats
		var last, peak uint64
		for {
			runtime.ReadMemStats(&m)
			peak = max(peak, m.HeapAlloc)
			if m.HeapAlloc > last+memTraceStep {
				log.Debug().
					Uint64("heapAlloc", m.HeapAlloc).
					Uint64("sys", m.Sys).
					Uint32("numGC", m.NumGC).
					Msg("memory")
				last = m.HeapAlloc
			}
			select {
			case <-ctx.Done():
				done <- peak
				return
			case <-ticker.C:
			}
		}
	}()
	return done
}

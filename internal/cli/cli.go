// Package cli holds the flags and setup shared by the example programs.
package cli

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/yuwen01/gemini/utils"
)

type Options struct {
	LogSize    int
	TimeProver bool
	MemTrace   time.Duration
	Verbose    bool
}

// Register binds the common flags to fs.
func (o *Options) Register(fs *flag.FlagSet) {
	fs.IntVar(&o.LogSize, "logsize", 12, "log2 of the instance size")
	fs.BoolVar(&o.TimeProver, "time-prover", false, "accepted for compatibility with the prover's options; no prover runs here, so it has no effect")
	fs.DurationVar(&o.MemTrace, "memtrace", 0, "heap sampling interval, 0 disables tracing")
	fs.BoolVar(&o.Verbose, "v", false, "debug logging")
}

// Setup installs a console logger and starts the memory tracer if asked to.
// The returned function stops the tracer and logs the peak heap size.
func (o *Options) Setup() (stop func()) {
	level := zerolog.InfoLevel
	if o.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger.Set(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger())

	if o.MemTrace <= 0 {
		return func() {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := utils.MemoryTraces(ctx, o.MemTrace)
	return func() {
		cancel()
		peak := <-done
		log := logger.Logger()
		log.Info().Uint64("peakHeap", peak).Msg("memory")
	}
}

// Package config resolves the CLI surface into a validated Config,
// clamping an out-of-range frame count and falling back to OPT for an
// unrecognized algorithm name instead of rejecting either.
package config

import (
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/wechicken456/vmsim/internal/replacement"
	"github.com/wechicken456/vmsim/internal/vmerr"
)

// Config is the fully-resolved set of run parameters.
type Config struct {
	TraceFile        string
	Frames           int
	Algorithm        replacement.Algorithm
	BackingStorePath string
	Golden           string
	Verbose          bool
}

const defaultBackingStore = "BACKING_STORE.bin"

// Parse parses args (excluding the program name) into a Config. It never
// errors on an out-of-range --frames or an unrecognized --PRA value, both
// are silently resolved to a usable default, but does return an error
// when the positional trace file is missing.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("vmsim", flag.ContinueOnError)

	frames := fs.IntP("frames", "f", 256, "number of frames, 1..256 (out-of-range clamps to 256)")
	pra := fs.StringP("PRA", "p", string(replacement.FIFO), "page replacement algorithm: FIFO, LRU, OPT")
	backing := fs.StringP("backing-store", "b", defaultBackingStore, "path to the 65536-byte backing store image")
	golden := fs.String("golden", "", "optional path to diff rendered output against")
	verbose := fs.BoolP("verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Frames:           clampFrames(*frames),
		Algorithm:        resolveAlgorithm(*pra),
		BackingStorePath: *backing,
		Golden:           *golden,
		Verbose:          *verbose,
	}

	if fs.NArg() < 1 {
		return Config{}, vmerr.ErrMissingInput
	}
	cfg.TraceFile = fs.Arg(0)

	return cfg, nil
}

// clampFrames silently clamps an out-of-[1,256] value to 256, logging the
// clamp at warn level instead of failing the run.
func clampFrames(n int) int {
	if n < 1 || n > 256 {
		log.Warn().Int("requested_frames", n).Msg("frames out of [1,256], clamping to 256")
		return 256
	}
	return n
}

// resolveAlgorithm maps an unrecognized --PRA value to OPT rather than
// failing the run.
func resolveAlgorithm(s string) replacement.Algorithm {
	switch replacement.Algorithm(s) {
	case replacement.FIFO:
		return replacement.FIFO
	case replacement.LRU:
		return replacement.LRU
	case replacement.OPT:
		return replacement.OPT
	default:
		log.Warn().Str("requested_pra", s).Msg("unrecognized --PRA value, selecting OPT")
		return replacement.OPT
	}
}

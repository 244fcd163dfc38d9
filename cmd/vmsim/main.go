// Command vmsim simulates the address-translation pipeline of a
// demand-paged virtual-memory subsystem: given a trace of 16-bit logical
// addresses and a BACKING_STORE.bin image, it prints, per reference, the
// byte value, frame number, and frame contents, followed by aggregate
// statistics.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wechicken456/vmsim/internal/config"
	"github.com/wechicken456/vmsim/internal/output"
	"github.com/wechicken456/vmsim/internal/pagetable"
	"github.com/wechicken456/vmsim/internal/replacement"
	"github.com/wechicken456/vmsim/internal/store"
	"github.com/wechicken456/vmsim/internal/trace"
	"github.com/wechicken456/vmsim/internal/translator"
	"github.com/wechicken456/vmsim/internal/vmerr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	cfg, err := config.Parse(args)
	if err != nil {
		return reportAndExit(stderr, err)
	}

	log.Logger = zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if cfg.Verbose {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}

	traceFile, err := os.Open(cfg.TraceFile)
	if err != nil {
		return reportAndExit(stderr, vmerr.FileNotFound(cfg.TraceFile, err))
	}
	defer traceFile.Close()

	addrs, err := trace.Read(traceFile)
	if err != nil {
		return reportAndExit(stderr, err)
	}

	backingFile, err := os.Open(cfg.BackingStorePath)
	if err != nil {
		return reportAndExit(stderr, vmerr.FileNotFound(cfg.BackingStorePath, err))
	}
	defer backingFile.Close()

	future := make([]int, len(addrs))
	for i, a := range addrs {
		future[i] = int(a >> 8)
	}

	policy := replacement.New(cfg.Algorithm, future)
	table := pagetable.New(cfg.Frames, policy)
	reader := store.New(backingFile)
	tr := translator.New(table, policy, reader)

	var out bytes.Buffer
	for _, addr := range addrs {
		rec, err := tr.Translate(addr)
		if err != nil {
			return reportAndExit(stderr, err)
		}
		if err := output.WriteRecord(&out, rec); err != nil {
			return reportAndExit(stderr, err)
		}
	}
	if err := output.WriteSummary(&out, tr.Summary()); err != nil {
		return reportAndExit(stderr, err)
	}

	if _, err := stdout.Write(out.Bytes()); err != nil {
		return reportAndExit(stderr, err)
	}

	if cfg.Golden != "" {
		if err := diffGolden(cfg.Golden, out.Bytes()); err != nil {
			return reportAndExit(stderr, err)
		}
	}

	return 0
}

// diffGolden compares got byte-for-byte against the file at path, an
// optional self-check against a known-good recorded run.
func diffGolden(path string, got []byte) error {
	want, err := os.ReadFile(path)
	if err != nil {
		return vmerr.FileNotFound(path, err)
	}
	if !bytes.Equal(want, got) {
		return errors.New("output does not match --golden file " + path)
	}
	return nil
}

func reportAndExit(stderr *os.File, err error) int {
	fmt.Fprintln(stderr, "vmsim:", err)
	return 1
}

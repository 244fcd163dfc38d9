// Package translator implements the address-translation engine: it
// orchestrates the TLB, page table, replacement policy, and backing store
// for each logical reference and accumulates the aggregate translation
// statistics.
package translator

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wechicken456/vmsim/internal/pagetable"
	"github.com/wechicken456/vmsim/internal/replacement"
	"github.com/wechicken456/vmsim/internal/store"
	"github.com/wechicken456/vmsim/internal/tlb"
)

// Record is the per-reference result of one translation.
type Record struct {
	Addr        uint16
	Value       int8
	FrameNumber int
	Frame       store.Frame
}

// Summary is the terminal aggregate report.
type Summary struct {
	Translations int
	PageFaults   int
	TLBHits      int
	TLBMisses    int
}

// PageFaultRate is page_faults / page_table_lookups, where a page-table
// lookup is counted once per TLB miss. Returns 0 when there were no
// TLB misses, rather than dividing by zero.
func (s Summary) PageFaultRate() float64 {
	lookups := s.TLBMisses
	if lookups == 0 {
		return 0
	}
	return float64(s.PageFaults) / float64(lookups)
}

// TLBHitRate is tlb_hits / translations.
func (s Summary) TLBHitRate() float64 {
	if s.Translations == 0 {
		return 0
	}
	return float64(s.TLBHits) / float64(s.Translations)
}

// Reader is the subset of store.Reader the translator depends on.
type Reader interface {
	ReadPage(pageNumber int) (store.Frame, error)
}

// Translator is the address-translation engine. It is not safe for
// concurrent use, the simulator is single-threaded by design.
type Translator struct {
	tlb             *tlb.TLB
	table           *pagetable.Table
	policy          replacement.Policy
	reader          Reader
	logger          zerolog.Logger
	summary         Summary
	nextFrameNumber int
	t               int
}

// New wires a complete translator with a fresh, empty TLB of its own:
// table is assumed freshly constructed and empty; policy must be the same
// instance passed to the page table so eviction bookkeeping stays
// consistent.
func New(table *pagetable.Table, policy replacement.Policy, reader Reader) *Translator {
	return &Translator{
		tlb:    tlb.New(),
		table:  table,
		policy: policy,
		reader: reader,
		logger: log.Logger,
	}
}

// signedByte reinterprets a raw byte as a two's-complement signed 8-bit
// value: b >= 128 reports b - 256.
func signedByte(b byte) int8 {
	return int8(b)
}

// Translate executes one reference: TLB lookup, page-table lookup on a
// TLB miss, and fault servicing on a page-table miss. It returns the
// resulting record. The only error path is a backing-store fault
// (vmerr.BackingStoreShort, surfaced from the Reader).
func (tr *Translator) Translate(addr uint16) (Record, error) {
	tr.summary.Translations++
	tr.t++
	page := int(addr >> 8)
	offset := int(addr & 0xFF)

	if frameNumber, frame, ok := tr.tlb.Lookup(page); ok {
		tr.summary.TLBHits++
		return tr.emit(addr, offset, frameNumber, frame), nil
	}
	tr.summary.TLBMisses++

	if frameNumber, frame, ok := tr.table.Lookup(page); ok {
		tr.policy.OnHit(page, tr.t)
		tr.tlb.Insert(page, frameNumber, frame)
		return tr.emit(addr, offset, frameNumber, frame), nil
	}

	tr.summary.PageFaults++
	frame, err := tr.reader.ReadPage(page)
	if err != nil {
		return Record{}, err
	}

	frameNumber := tr.nextFrameNumber
	tr.nextFrameNumber++

	evicted, didEvict := tr.table.Install(page, frameNumber, frame, tr.t)
	if didEvict {
		tr.tlb.Invalidate(evicted)
		tr.logger.Debug().Int("evicted_page", evicted).Int("installed_page", page).Msg("page table eviction")
	}
	tr.tlb.Insert(page, frameNumber, frame)
	tr.logger.Debug().Int("page", page).Int("frame", frameNumber).Msg("page fault serviced")

	return tr.emit(addr, offset, frameNumber, frame), nil
}

func (tr *Translator) emit(addr uint16, offset int, frameNumber int, frame store.Frame) Record {
	return Record{
		Addr:        addr,
		Value:       signedByte(frame[offset]),
		FrameNumber: frameNumber,
		Frame:       frame,
	}
}

// Summary returns the aggregate report accumulated so far.
func (tr *Translator) Summary() Summary {
	return tr.summary
}

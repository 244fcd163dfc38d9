// Package pagetable implements the resident-set index: the currently
// resident logical pages, their assigned frames, and eviction delegated to
// a replacement.Policy.
package pagetable

import (
	"github.com/wechicken456/vmsim/internal/replacement"
	"github.com/wechicken456/vmsim/internal/store"
)

type entry struct {
	frameNumber int
	frame       store.Frame
}

// Table is the page table (resident set). It never touches the backing
// store itself; callers install already-fetched frames.
type Table struct {
	capacity int
	policy   replacement.Policy
	entries  map[int]*entry
}

// New constructs an empty table bounded to capacity resident pages,
// delegating victim selection to policy.
func New(capacity int, policy replacement.Policy) *Table {
	return &Table{
		capacity: capacity,
		policy:   policy,
		entries:  make(map[int]*entry, capacity),
	}
}

// Lookup returns the resident entry for page, if any. It never touches the
// backing store and never notifies the policy. Callers that count this as
// a hit must call policy.OnHit themselves; a lookup served entirely from
// the TLB never reaches here and so never does.
func (tbl *Table) Lookup(page int) (frameNumber int, frame store.Frame, ok bool) {
	e, ok := tbl.entries[page]
	if !ok {
		return 0, store.Frame{}, false
	}
	return e.frameNumber, e.frame, true
}

// Install admits page with the given frame contents and frame number,
// evicting a victim first if the table is already at capacity. It returns
// the evicted page number and true if an eviction occurred.
func (tbl *Table) Install(page int, frameNumber int, frame store.Frame, t int) (evicted int, didEvict bool) {
	if len(tbl.entries) >= tbl.capacity {
		candidates := make([]int, 0, len(tbl.entries))
		for p := range tbl.entries {
			candidates = append(candidates, p)
		}
		victim := tbl.policy.SelectVictim(candidates, t)
		delete(tbl.entries, victim)
		evicted, didEvict = victim, true
	}
	tbl.entries[page] = &entry{frameNumber: frameNumber, frame: frame}
	tbl.policy.OnInstall(page, t)
	return evicted, didEvict
}

// Len reports the number of currently resident pages.
func (tbl *Table) Len() int {
	return len(tbl.entries)
}

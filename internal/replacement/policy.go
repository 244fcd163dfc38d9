// Package replacement implements the pluggable page-replacement policies:
// FIFO, LRU, and OPT (Bélády). A policy holds only the bookkeeping needed
// to pick a victim. It never owns frame bytes or statistics; those belong
// to the page table and translator respectively.
package replacement

// Policy decides which resident page to evict when the resident set is
// full and a new page must be admitted.
type Policy interface {
	// OnHit informs the policy that page was referenced at logical time t
	// via a page-table hit, not a TLB hit (see the translator package).
	OnHit(page int, t int)

	// OnInstall records that page was just admitted to the resident set
	// at logical time t.
	OnInstall(page int, t int)

	// SelectVictim returns the resident page to evict, chosen from
	// candidates (the current resident-set membership). Only called when
	// the resident set is full.
	SelectVictim(candidates []int, t int) int
}

// Algorithm names the three variants a Policy may implement.
type Algorithm string

const (
	FIFO Algorithm = "FIFO"
	LRU  Algorithm = "LRU"
	OPT  Algorithm = "OPT"
)

// New builds the Policy for algo. OPT requires the full future reference
// trace at construction time (future); FIFO and LRU ignore it. Any algo
// other than FIFO or LRU falls back to OPT.
func New(algo Algorithm, future []int) Policy {
	switch algo {
	case FIFO:
		return NewFIFO()
	case LRU:
		return NewLRU()
	default:
		return NewOPT(future)
	}
}

// Package tlb implements the translation look-aside buffer: a small,
// fixed-capacity cache of recent (page -> frame) mappings with FIFO
// eviction, independent of the page table's own replacement policy.
package tlb

import (
	"container/list"

	"github.com/wechicken456/vmsim/internal/store"
)

// Capacity is the fixed TLB size.
const Capacity = 16

type entry struct {
	page        int
	frameNumber int
	frame       store.Frame
}

// TLB is a FIFO-evicted cache of recent page-to-frame mappings. A lookup
// hit never reorders the FIFO queue (FIFO, not LRU); an insert of an
// already-present page refreshes it to the tail.
type TLB struct {
	queue *list.List
	elems map[int]*list.Element
}

// New constructs an empty TLB.
func New() *TLB {
	return &TLB{
		queue: list.New(),
		elems: make(map[int]*list.Element, Capacity),
	}
}

// Lookup returns the cached mapping for page, if present. It does not
// reorder the eviction queue.
func (t *TLB) Lookup(page int) (frameNumber int, frame store.Frame, ok bool) {
	e, ok := t.elems[page]
	if !ok {
		return 0, store.Frame{}, false
	}
	ent := e.Value.(*entry)
	return ent.frameNumber, ent.frame, true
}

// Insert records page's mapping. If page is already present, the existing
// entry is refreshed to the tail instead of duplicated. When the TLB grows
// past Capacity, the oldest entry is evicted.
func (t *TLB) Insert(page int, frameNumber int, frame store.Frame) {
	if e, ok := t.elems[page]; ok {
		t.queue.Remove(e)
		delete(t.elems, page)
	}
	ent := &entry{page: page, frameNumber: frameNumber, frame: frame}
	t.elems[page] = t.queue.PushBack(ent)

	if t.queue.Len() > Capacity {
		head := t.queue.Front()
		t.queue.Remove(head)
		delete(t.elems, head.Value.(*entry).page)
	}
}

// Invalidate removes page's entry, if present. Called by the translator
// when the page table evicts the corresponding resident page.
func (t *TLB) Invalidate(page int) {
	if e, ok := t.elems[page]; ok {
		t.queue.Remove(e)
		delete(t.elems, page)
	}
}

package replacement

import "container/list"

// FIFOPolicy evicts the longest-resident page. Re-admission after an
// eviction counts as a fresh installation, moving the page to the tail
// of the queue again.
type FIFOPolicy struct {
	queue *list.List
	elems map[int]*list.Element
}

// NewFIFO constructs an empty FIFO policy.
func NewFIFO() *FIFOPolicy {
	return &FIFOPolicy{
		queue: list.New(),
		elems: make(map[int]*list.Element),
	}
}

// OnHit is a no-op for FIFO: recency never reorders the queue.
func (p *FIFOPolicy) OnHit(page int, t int) {}

// OnInstall appends page to the tail of the insertion-order queue.
func (p *FIFOPolicy) OnInstall(page int, t int) {
	if e, ok := p.elems[page]; ok {
		p.queue.Remove(e)
	}
	p.elems[page] = p.queue.PushBack(page)
}

// SelectVictim returns the oldest-admitted resident page.
func (p *FIFOPolicy) SelectVictim(candidates []int, t int) int {
	head := p.queue.Front()
	victim := head.Value.(int)
	p.queue.Remove(head)
	delete(p.elems, victim)
	return victim
}

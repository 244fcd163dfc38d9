package replacement

import "container/list"

// LRUPolicy evicts the least-recently-used resident page. Recency is
// tracked over page-table-visible references only: a TLB hit never calls
// OnHit, so this behaves as "LRU over page-table lookups," not "LRU over
// all translations."
type LRUPolicy struct {
	order *list.List // front = most-recently-used
	elems map[int]*list.Element
}

// NewLRU constructs an empty LRU policy.
func NewLRU() *LRUPolicy {
	return &LRUPolicy{
		order: list.New(),
		elems: make(map[int]*list.Element),
	}
}

// OnHit moves page to most-recently-used.
func (p *LRUPolicy) OnHit(page int, t int) {
	if e, ok := p.elems[page]; ok {
		p.order.MoveToFront(e)
	}
}

// OnInstall inserts page as most-recently-used.
func (p *LRUPolicy) OnInstall(page int, t int) {
	if e, ok := p.elems[page]; ok {
		p.order.MoveToFront(e)
		return
	}
	p.elems[page] = p.order.PushFront(page)
}

// SelectVictim returns the least-recently-used resident page.
func (p *LRUPolicy) SelectVictim(candidates []int, t int) int {
	tail := p.order.Back()
	victim := tail.Value.(int)
	p.order.Remove(tail)
	delete(p.elems, victim)
	return victim
}

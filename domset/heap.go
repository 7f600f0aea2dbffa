package domset

// item is one heap entry; key may be stale.
type item struct {
	dmr  int
	key  float64
	stat float64
}

// utilityPQ implements heap.Interface as a max-heap on key, then stat, then
// lower DMR ID.
type utilityPQ []item

// Len returns the number of items in the heap.
func (pq utilityPQ) Len() int { return len(pq) }

// Less puts the highest key first.
func (pq utilityPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key > pq[j].key
	}
	if pq[i].stat != pq[j].stat {
		return pq[i].stat > pq[j].stat
	}

	return pq[i].dmr < pq[j].dmr
}

// Swap exchanges two items.
func (pq utilityPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an item. Called by heap.Push.
func (pq *utilityPQ) Push(x interface{}) { *pq = append(*pq, x.(item)) }

// Pop removes the last item. Called by heap.Pop.
func (pq *utilityPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

package engine

import (
	"container/heap"

	"github.com/maximpopov11/pokeworld/internal/core/types"
)

// TurnItem is one scheduled agent.
type TurnItem struct {
	ID       types.AgentID
	Priority int    // Turn counter. Lower acts first.
	Seq      uint64 // Insertion sequence, breaks ties first-in first-out.
	Index    int    // Heap index, needed by heap.Fix.
}

// TurnQueue implements heap.Interface over TurnItems.
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[0 : n-1]
	return item
}

// Update changes the priority and sequence of an item already in the queue.
func (pq *TurnQueue) Update(item *TurnItem, priority int, seq uint64) {
	item.Priority = priority
	item.Seq = seq
	heap.Fix(pq, item.Index)
}

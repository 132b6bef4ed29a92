package engine

import (
	"container/heap"

	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/pkg/api"
	"github.com/maximpopov11/pokeworld/pkg/logger"
)

// TurnManager orders agent turns by their accumulated time cost.
// A session owns exactly one.
type TurnManager struct {
	queue   TurnQueue
	itemMap map[types.AgentID]*TurnItem
	seq     uint64
}

func NewTurnManager() *TurnManager {
	return &TurnManager{
		queue:   make(TurnQueue, 0),
		itemMap: make(map[types.AgentID]*TurnItem),
	}
}

func (tm *TurnManager) nextSeq() uint64 {
	tm.seq++
	return tm.seq
}

// Schedule inserts id with the given counter, or moves it if it is already
// queued. Either way it goes behind every agent already waiting on the same
// counter.
func (tm *TurnManager) Schedule(id types.AgentID, counter int) {
	if item, ok := tm.itemMap[id]; ok {
		tm.queue.Update(item, counter, tm.nextSeq())
		return
	}

	item := &TurnItem{ID: id, Priority: counter, Seq: tm.nextSeq()}
	heap.Push(&tm.queue, item)
	tm.itemMap[id] = item

	logger.Log.WithField("agent_id", id.String()).Debug("Agent added to TurnManager")
}

// PopNext removes and returns the agent with the lowest counter.
// ok is false when nothing is scheduled.
func (tm *TurnManager) PopNext() (id types.AgentID, counter int, ok bool) {
	if tm.queue.Len() == 0 {
		return types.NilAgentID, 0, false
	}
	item := heap.Pop(&tm.queue).(*TurnItem)
	delete(tm.itemMap, item.ID)
	return item.ID, item.Priority, true
}

// PeekNext returns the next item without removing it.
func (tm *TurnManager) PeekNext() *TurnItem {
	if tm.queue.Len() == 0 {
		return nil
	}
	return tm.queue[0]
}

// Remove takes id out of the queue. Unknown ids are ignored.
func (tm *TurnManager) Remove(id types.AgentID) {
	if item, ok := tm.itemMap[id]; ok {
		heap.Remove(&tm.queue, item.Index)
		delete(tm.itemMap, id)
	}
}

func (tm *TurnManager) Contains(id types.AgentID) bool {
	_, ok := tm.itemMap[id]
	return ok
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// Snapshot returns the queue in heap order for debugging.
func (tm *TurnManager) Snapshot() []api.QueueEntry {
	// Empty, not nil, so it encodes as [] rather than null.
	result := make([]api.QueueEntry, 0, len(tm.queue))
	for _, item := range tm.queue {
		result = append(result, api.QueueEntry{
			ID:       item.ID.String(),
			Kind:     item.ID.Kind().String(),
			Priority: item.Priority,
			Seq:      item.Seq,
			Index:    item.Index,
		})
	}
	return result
}

package network

import (
	"sort"
	"sync"

	"github.com/maximpopov11/pokeworld/pkg/api"
)

const subscriberBuffer = 16

// Broadcaster fans frames out to spectators. The session calls Render from
// its own goroutine; HTTP handlers read the latest state under the lock.
// Frames are never modified after they are handed in.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan api.Frame

	last    *api.Frame
	queue   []api.QueueEntry
	byTile  map[api.TileCoord]api.Frame
	renders int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Frame),
		byTile:      make(map[api.TileCoord]api.Frame),
	}
}

// Register opens a channel for a spectator. The latest frame, if any, is
// queued on it right away so the spectator has something to draw.
func (b *Broadcaster) Register(id string) chan api.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.Frame, subscriberBuffer)
	if b.last != nil {
		ch <- *b.last
	}
	b.subscribers[id] = ch
	return ch
}

// Unregister closes and drops a spectator channel.
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Render implements engine.Renderer.
func (b *Broadcaster) Render(f api.Frame) {
	b.mu.Lock()
	b.last = &f
	b.byTile[f.Tile] = f
	b.renders++
	b.mu.Unlock()

	b.Broadcast(f)
}

// ObserveQueue implements engine.QueueObserver.
func (b *Broadcaster) ObserveQueue(entries []api.QueueEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue = entries
}

// Broadcast sends f to every spectator. Slow spectators miss frames rather
// than stall the session.
func (b *Broadcaster) Broadcast(f api.Frame) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- f:
		default:
		}
	}
}

// LastFrame returns the most recent frame.
func (b *Broadcaster) LastFrame() (api.Frame, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.last == nil {
		return api.Frame{}, false
	}
	return *b.last, true
}

// Queue returns the last scheduler snapshot, never nil.
func (b *Broadcaster) Queue() []api.QueueEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.queue == nil {
		return []api.QueueEntry{}
	}
	return b.queue
}

// TileFrame returns the last frame rendered on tile c.
func (b *Broadcaster) TileFrame(c api.TileCoord) (api.Frame, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f, ok := b.byTile[c]
	return f, ok
}

// Tiles lists every tile a frame was rendered on, sorted by row then column.
func (b *Broadcaster) Tiles() []api.TileCoord {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]api.TileCoord, 0, len(b.byTile))
	for c := range b.byTile {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount returns the number of connected spectators.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Renders counts the frames seen so far.
func (b *Broadcaster) Renders() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.renders
}

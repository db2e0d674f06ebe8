// Package event is the in-process pub/sub channel between the sync subsystem
// and its collaborators. It replaces an ambient notification center with an
// explicitly constructed, typed bus: consumers subscribe to a kind and
// publishers emit events carrying an optional payload.
package event

import (
	"sync"

	"github.com/clipvault/clipvault/internal/logger"
)

// Kind names a category of event on the bus.
type Kind string

const (
	// KindRemoteChange is published when the backend signals that another
	// device wrote to the remote store.
	KindRemoteChange Kind = "remote-change"

	// KindAccountChange is published when the backend signals that the
	// device account credentials changed.
	KindAccountChange Kind = "account-change"

	// KindDataChanged is broadcast after local clipboard data changed
	// (local capture or ingested remote change) so UI consumers can refresh.
	KindDataChanged Kind = "data-changed"

	// KindSyncState carries a models.SyncState snapshot after every state
	// machine mutation.
	KindSyncState Kind = "sync-state"
)

// Event is a single bus message.
type Event struct {
	Kind    Kind
	Payload any
}

// Handler consumes one event. Handlers run on the publisher's goroutine and
// must not block.
type Handler func(Event)

// Bus routes published events to subscribed handlers.
type Bus interface {
	// Subscribe registers handler for kind and returns a function that
	// removes the subscription. Unsubscribing twice is a no-op.
	Subscribe(kind Kind, handler Handler) (unsubscribe func())

	// Publish delivers ev to every handler subscribed to ev.Kind.
	Publish(ev Event)
}

type memoryBus struct {
	logger *logger.Logger

	mu     sync.RWMutex
	nextID int64
	subs   map[Kind]map[int64]Handler
}

// NewBus constructs an in-memory [Bus].
func NewBus(log *logger.Logger) Bus {
	return &memoryBus{
		logger: log,
		subs:   make(map[Kind]map[int64]Handler),
	}
}

func (b *memoryBus) Subscribe(kind Kind, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[kind] == nil {
		b.subs[kind] = make(map[int64]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[kind][id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[kind], id)
		})
	}
}

func (b *memoryBus) Publish(ev Event) {
	// Snapshot the handler set so handlers may subscribe or unsubscribe
	// without deadlocking against this publish.
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[ev.Kind]))
	for _, h := range b.subs[ev.Kind] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	b.logger.Debug().Str("kind", string(ev.Kind)).Int("handlers", len(handlers)).Msg("publishing event")
	for _, h := range handlers {
		h(ev)
	}
}

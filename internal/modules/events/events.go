package events

import (
	"context"
	"sync"
	"time"
)

// Outcome of a reaction write.
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeRemoved = "removed"
)

// ReactionEvent is emitted exactly once per successful reaction write. It is
// the only integration point for downstream consumers (reputation scoring,
// activity feeds); none of them live in this service.
type ReactionEvent struct {
	ID             string    `json:"id"`
	ParentID       int64     `json:"parent_id"`
	ParentType     string    `json:"parent_type"`
	ParentAuthorID int64     `json:"parent_author_id"`
	InsertUserID   int64     `json:"insert_user_id"`
	ActionID       int64     `json:"action_id"`
	Outcome        string    `json:"outcome"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Subscriber receives reaction events. Subscribers run synchronously on the
// writing request; anything slow should hand off internally.
type Subscriber func(ctx context.Context, ev ReactionEvent)

// Dispatcher is a plain observer registry.
type Dispatcher struct {
	mu   sync.RWMutex
	subs []Subscriber
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.subs = append(d.subs, fn)
	d.mu.Unlock()
}

func (d *Dispatcher) Notify(ctx context.Context, ev ReactionEvent) {
	d.mu.RLock()
	subs := make([]Subscriber, len(d.subs))
	copy(subs, d.subs)
	d.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx, ev)
	}
}

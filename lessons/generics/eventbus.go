package generics

import (
	"context"
	"fmt"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

type handler func(ctx context.Context, event cloudevents.Event) error

// TypedEventBus routes payloads by an explicit event tag. Subscribers name
// the tag and the payload type they expect; every publication travels as a
// CloudEvent with a JSON body and is decoded into that type on delivery.
type TypedEventBus struct {
	source string

	mu       sync.RWMutex
	handlers map[string][]handler
}

func NewTypedEventBus(source string) *TypedEventBus {
	return &TypedEventBus{source: source, handlers: make(map[string][]handler)}
}

// Subscribe registers fn for tag. A payload that does not decode into T is
// reported by Publish and skips fn.
func Subscribe[T any](b *TypedEventBus, tag string, fn func(ctx context.Context, payload T)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[tag] = append(b.handlers[tag], func(ctx context.Context, event cloudevents.Event) error {
		var payload T
		if err := event.DataAs(&payload); err != nil {
			return fmt.Errorf("decoding %s payload: %w", tag, err)
		}
		fn(ctx, payload)
		return nil
	})
}

// Publish delivers payload to every subscriber of tag in subscription order
// and returns how many received it. Delivery continues past a failing
// subscriber; the first failure is returned.
func (b *TypedEventBus) Publish(ctx context.Context, tag string, payload any) (int, error) {
	event := cloudevents.NewEvent()
	event.SetID(uuid.NewString())
	event.SetSource(b.source)
	event.SetType(tag)
	event.SetTime(time.Now())
	if err := event.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return 0, fmt.Errorf("encoding %s payload: %w", tag, err)
	}

	b.mu.RLock()
	subs := append([]handler(nil), b.handlers[tag]...)
	b.mu.RUnlock()

	var firstErr error
	delivered := 0
	for _, h := range subs {
		if err := h(ctx, event); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		delivered++
	}
	return delivered, firstErr
}

func (b *TypedEventBus) SubscriberCount(tag string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[tag])
}

// Event payloads used by the lesson.
type UserRegistered struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderPlaced struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"freshmart/rdx"
)

const eventChannel = "freshmart-events"

// Event is a domain notification published over Redis pub/sub.
type Event struct {
	Name       string   `json:"name"`
	UserID     string   `json:"user_id,omitempty"`
	EntityID   string   `json:"entity_id,omitempty"`
	ProductIDs []string `json:"product_ids,omitempty"`
}

// Emit publishes the event; delivery is best-effort and never fails the
// request that triggered it.
func Emit(ctx context.Context, name string, event Event) {
	event.Name = name
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", name, err)
	}
}

// ProductCacheKey is the Redis key products are cached under.
func ProductCacheKey(productID string) string {
	return fmt.Sprintf("product:%s", productID)
}

// StartEventWorker drops stale product cache entries whenever an order
// mutates stock. Runs until the process exits.
func StartEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventChannel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for domain events...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}

		switch event.Name {
		case "order-placed", "order-cancelled":
			for _, pid := range event.ProductIDs {
				if _, err := rdx.RdxDel(ProductCacheKey(pid)); err != nil {
					log.Printf("[EventWorker] Cache invalidation failed for %s: %v", pid, err)
				}
			}
		}
	}
}

package feed

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"promptdeck/internal/ws"
)

// Refresher rebuilds the unfiltered trending feed on an interval and pushes
// the result to websocket subscribers as a {type: "trending"} message.
type Refresher struct {
	feed      *Service
	broadcast chan<- []byte
	interval  time.Duration
}

func NewRefresher(feed *Service, broadcast chan<- []byte, interval time.Duration) *Refresher {
	return &Refresher{feed: feed, broadcast: broadcast, interval: interval}
}

// Run blocks until ctx is cancelled. A failed rebuild is logged and the
// previous broadcast simply stands until the next tick.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			posts, err := r.feed.Trending(ctx, "")
			if err != nil {
				log.Printf("Error refreshing trending feed: %v", err)
				continue
			}
			payload, err := json.Marshal(ws.Message{Type: "trending", Data: posts})
			if err != nil {
				log.Printf("Error marshalling trending broadcast: %v", err)
				continue
			}
			select {
			case r.broadcast <- payload:
			case <-ctx.Done():
				return
			}
		}
	}
}

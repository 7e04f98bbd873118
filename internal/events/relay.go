package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"bookstore-storefront/pkg/logger"
)

// RelayChannel is the Redis pub/sub channel shared by api and worker processes
const RelayChannel = "storefront:events"

const relayPublishTimeout = 2 * time.Second

// Remote is an event received from another process. It serializes to the
// original payload so SSE clients see the same data either way.
type Remote struct {
	TopicName string
	SessionID string
	Data      json.RawMessage
}

func (e Remote) Topic() string   { return e.TopicName }
func (e Remote) Session() string { return e.SessionID }

func (e Remote) MarshalJSON() ([]byte, error) {
	if len(e.Data) == 0 {
		return []byte("null"), nil
	}
	return e.Data, nil
}

type envelope struct {
	Origin  string          `json:"origin"`
	Topic   string          `json:"topic"`
	Session string          `json:"session"`
	Data    json.RawMessage `json:"data"`
}

// RedisRelay publishes locally and mirrors selected topics to Redis, so a
// settle-check finished in the worker reaches the api's /events stream.
// Messages carrying its own origin are ignored on receive.
type RedisRelay struct {
	local   Publisher
	client  *redis.Client
	channel string
	origin  string
	topics  map[string]bool
}

func NewRedisRelay(local Publisher, client *redis.Client, channel string, topics ...string) *RedisRelay {
	set := make(map[string]bool, len(topics))
	for _, t := range topics {
		set[t] = true
	}
	return &RedisRelay{
		local:   local,
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		topics:  set,
	}
}

// Publish delivers evt to the local bus, then to Redis when its topic is relayed
func (r *RedisRelay) Publish(evt Event) {
	r.local.Publish(evt)

	payload, ok, err := r.encode(evt)
	if err != nil {
		logger.Error("Failed to encode relayed event", err)
		return
	}
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), relayPublishTimeout)
	defer cancel()
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		logger.ErrorWithFields("Failed to relay event", err, map[string]interface{}{
			"topic":   evt.Topic(),
			"channel": r.channel,
		})
	}
}

// Run subscribes to the channel and republishes foreign events locally
// until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}
	logger.Info("Event relay subscribed", map[string]interface{}{
		"channel": r.channel,
		"origin":  r.origin,
	})

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			r.deliver(msg.Payload)
		}
	}
}

func (r *RedisRelay) encode(evt Event) ([]byte, bool, error) {
	if !r.topics[evt.Topic()] {
		return nil, false, nil
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, false, err
	}
	payload, err := json.Marshal(envelope{
		Origin:  r.origin,
		Topic:   evt.Topic(),
		Session: evt.Session(),
		Data:    data,
	})
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// deliver reports whether payload was republished on the local bus
func (r *RedisRelay) deliver(payload string) bool {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		logger.Error("Dropping malformed relayed event", err)
		return false
	}
	if env.Origin == r.origin || !r.topics[env.Topic] {
		return false
	}
	r.local.Publish(Remote{TopicName: env.Topic, SessionID: env.Session, Data: env.Data})
	return true
}

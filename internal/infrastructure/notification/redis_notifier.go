package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const DefaultQueue = "notifications:email"

var ErrNotifierNotConfigured = errors.New("notifier not configured")

// message is the JSON document the mailer worker pops from the queue.
type message struct {
	Kind       string            `json:"kind"`
	To         string            `json:"to"`
	Subject    string            `json:"subject"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt string            `json:"occurred_at"`
}

// RedisNotifier pushes notifications onto a Redis list consumed by the mailer.
type RedisNotifier struct {
	client redis.Cmdable
	queue  string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client redis.Cmdable, queue string) *RedisNotifier {
	if queue == "" {
		queue = DefaultQueue
	}
	return &RedisNotifier{client: client, queue: queue}
}

func (n *RedisNotifier) Send(ctx context.Context, msg entities.Notification) error {
	if n == nil || n.client == nil {
		return ErrNotifierNotConfigured
	}

	body, err := json.Marshal(message{
		Kind:       string(msg.Kind),
		To:         msg.To,
		Subject:    msg.Subject,
		Data:       msg.Data,
		OccurredAt: msg.OccurredAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
	if err != nil {
		return err
	}

	if err := n.client.RPush(ctx, n.queue, string(body)).Err(); err != nil {
		return fmt.Errorf("push notification to %s: %w", n.queue, err)
	}
	log.Printf("[notification][redis] queued kind=%s to=%s queue=%s", msg.Kind, msg.To, n.queue)
	return nil
}

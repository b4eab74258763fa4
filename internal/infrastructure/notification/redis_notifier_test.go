package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"photo_studio/internal/domain/entities"

	"github.com/go-redis/redismock/v9"
)

func testNotification() entities.Notification {
	return entities.Notification{
		Kind:       entities.NotificationBookingConfirmed,
		To:         "ana@test.com",
		Subject:    "Sua sessão está confirmada",
		Data:       map[string]string{"booking_id": "b1"},
		OccurredAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisNotifier_Send(t *testing.T) {
	db, mock := redismock.NewClientMock()
	n := NewRedisNotifier(db, "")

	want := `{"kind":"booking_confirmed","to":"ana@test.com","subject":"Sua sessão está confirmada","data":{"booking_id":"b1"},"occurred_at":"2026-10-01T12:00:00Z"}`
	mock.ExpectRPush(DefaultQueue, want).SetVal(1)

	if err := n.Send(context.Background(), testNotification()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRedisNotifier_SendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	n := NewRedisNotifier(db, "custom:queue")

	mock.Regexp().ExpectRPush("custom:queue", `.*`).SetErr(errors.New("connection refused"))

	if err := n.Send(context.Background(), testNotification()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRedisNotifier_NotConfigured(t *testing.T) {
	var n *RedisNotifier
	if err := n.Send(context.Background(), testNotification()); !errors.Is(err, ErrNotifierNotConfigured) {
		t.Fatalf("expected ErrNotifierNotConfigured, got %v", err)
	}
}

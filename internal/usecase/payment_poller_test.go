package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"photo_studio/internal/domain/entities"
	mock_interfaces "photo_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentPoller_Run_ApprovesAfterPendingAndTransientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(10))

	gomock.InOrder(
		resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusPending, nil),
		resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatus(""), ErrTransientNetwork),
		resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusApproved, nil),
	)
	reconciler.EXPECT().Approve(gomock.Any(), gomock.Any()).Return(nil)
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.PaymentAttempt) error {
		if a.State != entities.PollStateApproved || a.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved attempt to be saved, got %s/%s", a.State, a.Status)
		}
		return nil
	})

	final, err := p.Run(context.Background(), depositAttempt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if final.State != entities.PollStateApproved {
		t.Fatalf("expected approved, got %s", final.State)
	}
}

func TestPaymentPoller_Run_RetriesFailedSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(10))

	resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusApproved, nil).Times(2)
	gomock.InOrder(
		reconciler.EXPECT().Approve(gomock.Any(), gomock.Any()).Return(errors.New("db")),
		reconciler.EXPECT().Approve(gomock.Any(), gomock.Any()).Return(nil),
	)
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	final, err := p.Run(context.Background(), depositAttempt())
	if err != nil || final.State != entities.PollStateApproved {
		t.Fatalf("expected approved, got %s %v", final.State, err)
	}
}

func TestPaymentPoller_Run_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(10))

	resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusRejected, nil)
	reconciler.EXPECT().Reject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.PaymentAttempt) error {
		if a.Status != entities.PaymentStatusRejected {
			t.Fatalf("expected rejected status to be passed, got %s", a.Status)
		}
		return nil
	})
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	final, err := p.Run(context.Background(), depositAttempt())
	if !errors.Is(err, ErrPaymentRejected) {
		t.Fatalf("expected ErrPaymentRejected, got %v", err)
	}
	if final.State != entities.PollStateRejected {
		t.Fatalf("expected rejected, got %s", final.State)
	}
}

func TestPaymentPoller_Run_TimesOutAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(3))

	resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusPending, nil).Times(3)
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	final, err := p.Run(context.Background(), depositAttempt())
	if !errors.Is(err, ErrPaymentTimedOut) {
		t.Fatalf("expected ErrPaymentTimedOut, got %v", err)
	}
	if final.State != entities.PollStateTimedOut {
		t.Fatalf("expected timed_out, got %s", final.State)
	}
}

func TestPaymentPoller_Run_TerminalAttemptIsNotPolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	p := NewPaymentPoller(resolver, nil, nil, fastPolicy(3))

	a := depositAttempt()
	a.State = entities.PollStateApproved

	_, err := p.Run(context.Background(), a)
	if !errors.Is(err, entities.ErrTerminalPollState) {
		t.Fatalf("expected ErrTerminalPollState, got %v", err)
	}
}

func TestPaymentPoller_Run_IdleAttemptIsMarkedAwaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(3))

	a := depositAttempt()
	a.State = entities.PollStateIdle

	gomock.InOrder(
		attempts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.PaymentAttempt) error {
			if a.State != entities.PollStateAwaitingPayment {
				t.Fatalf("expected awaiting_payment, got %s", a.State)
			}
			return nil
		}),
		attempts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)
	resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusApproved, nil)
	reconciler.EXPECT().Approve(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := p.Run(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentPoller_StartAndCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(0))

	polled := make(chan struct{}, 1)
	resolver.EXPECT().Resolve(gomock.Any(), "123").DoAndReturn(func(context.Context, string) (entities.PaymentStatus, error) {
		select {
		case polled <- struct{}{}:
		default:
		}
		return entities.PaymentStatusPending, nil
	}).AnyTimes()

	saved := make(chan entities.PaymentAttempt, 1)
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.PaymentAttempt) error {
		saved <- a
		return nil
	})

	p.Start(depositAttempt())
	p.Start(depositAttempt()) // already running: no second poll

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatalf("poller never polled")
	}

	if !p.Cancel(context.Background(), "att-1") {
		t.Fatalf("expected running poll to be cancelled")
	}

	// Cancel returns only after the poll persisted its final state.
	select {
	case a := <-saved:
		if a.State != entities.PollStateCancelled {
			t.Fatalf("expected cancelled, got %s", a.State)
		}
	default:
		t.Fatalf("cancelled attempt was not saved before Cancel returned")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
	if p.Cancel(context.Background(), "att-1") {
		t.Fatalf("finished poll must not be cancellable")
	}
}

func TestPaymentPoller_StartRunsToApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(10))

	resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusApproved, nil)
	reconciler.EXPECT().Approve(gomock.Any(), gomock.Any()).Return(nil)
	done := make(chan entities.PaymentAttempt, 1)
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.PaymentAttempt) error {
		done <- a
		return nil
	})

	p.Start(depositAttempt())

	select {
	case a := <-done:
		if a.State != entities.PollStateApproved {
			t.Fatalf("expected approved, got %s", a.State)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("poll did not finish")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
	if p.Cancel(context.Background(), "att-1") {
		t.Fatalf("approved attempt must not be cancellable")
	}
}

func TestPaymentPoller_RunKeepsStateSettledElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mock_interfaces.NewMockIStatusResolver(ctrl)
	reconciler := mock_interfaces.NewMockIPaymentReconciler(ctrl)
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	p := NewPaymentPoller(resolver, reconciler, attempts, fastPolicy(2))

	resolver.EXPECT().Resolve(gomock.Any(), "123").Return(entities.PaymentStatusPending, nil).Times(2)
	attempts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ErrTerminalPollState)

	stored := depositAttempt()
	stored.State = entities.PollStateApproved
	stored.Status = entities.PaymentStatusApproved
	attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(stored, nil)

	got, err := p.Run(context.Background(), depositAttempt())
	if !errors.Is(err, entities.ErrTerminalPollState) {
		t.Fatalf("expected ErrTerminalPollState, got %v", err)
	}
	if got.State != entities.PollStateApproved || got.Status != entities.PaymentStatusApproved {
		t.Fatalf("expected stored approval to win, got state=%s status=%s", got.State, got.Status)
	}
}

func TestPollPolicy_RetryOptionsAlwaysBoundElapsedTime(t *testing.T) {
	if got := len(PollPolicy{}.retryOptions()); got != 2 {
		t.Fatalf("expected backoff and max elapsed time options, got %d", got)
	}
	if got := len(PollPolicy{MaxAttempts: 3, Timeout: time.Minute}.retryOptions()); got != 3 {
		t.Fatalf("expected three options, got %d", got)
	}
}

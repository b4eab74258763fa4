package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v5"
)

var (
	ErrPaymentRejected  = errors.New("payment rejected")
	ErrPaymentTimedOut  = errors.New("payment confirmation timed out")
	ErrPaymentCancelled = errors.New("payment cancelled")

	errStillPending  = errors.New("payment still pending")
	errPollCancelled = errors.New("payment polling cancelled by client")
	errPollerStopped = errors.New("payment poller stopped")
)

// PollPolicy bounds how long an attempt may stay in awaiting_payment.
// A zero MaxAttempts or Timeout removes that bound.
type PollPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxAttempts     uint
	Timeout         time.Duration
}

func (p PollPolicy) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	if p.Multiplier >= 1 {
		b.Multiplier = p.Multiplier
	}
	b.RandomizationFactor = 0.2
	return b
}

func (p PollPolicy) retryOptions() []backoff.RetryOption {
	opts := []backoff.RetryOption{backoff.WithBackOff(p.newBackOff())}
	if p.MaxAttempts > 0 {
		opts = append(opts, backoff.WithMaxTries(p.MaxAttempts))
	}
	// Retry caps at 15 minutes without this option; zero means no cap.
	opts = append(opts, backoff.WithMaxElapsedTime(p.Timeout))
	return opts
}

// PaymentPoller runs one polling goroutine per payment attempt.
//
// Each tick asks the status resolver for the transaction status. Lookup failures
// are transient and retried; pending waits for the next tick; approved and
// rejected run the reconciler and end the poll. Running out of attempts or time
// ends it as timed_out.
type PaymentPoller struct {
	resolver   interfaces.IStatusResolver
	reconciler interfaces.IPaymentReconciler
	attempts   interfaces.IPaymentAttemptRepository
	policy     PollPolicy

	mu     sync.Mutex
	active map[string]pollHandle
	wg     sync.WaitGroup
	ctx    context.Context
	stop   context.CancelCauseFunc
}

type pollHandle struct {
	cancel context.CancelCauseFunc
	done   chan struct{}
}

var _ interfaces.IPaymentPoller = (*PaymentPoller)(nil)

func NewPaymentPoller(resolver interfaces.IStatusResolver, reconciler interfaces.IPaymentReconciler, attempts interfaces.IPaymentAttemptRepository, policy PollPolicy) *PaymentPoller {
	ctx, stop := context.WithCancelCause(context.Background())
	return &PaymentPoller{
		resolver:   resolver,
		reconciler: reconciler,
		attempts:   attempts,
		policy:     policy,
		active:     make(map[string]pollHandle),
		ctx:        ctx,
		stop:       stop,
	}
}

// Start polls the attempt in the background. Starting an attempt that is
// already being polled is a no-op.
func (p *PaymentPoller) Start(a entities.PaymentAttempt) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, running := p.active[a.ID]; running {
		log.Printf("[payment][poller] already polling attempt_id=%s", a.ID)
		return
	}
	if p.ctx.Err() != nil {
		log.Printf("[payment][poller] stopped; not polling attempt_id=%s", a.ID)
		return
	}

	ctx, cancel := context.WithCancelCause(p.ctx)
	done := make(chan struct{})
	p.active[a.ID] = pollHandle{cancel: cancel, done: done}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer close(done)
		defer p.forget(a.ID)
		defer cancel(nil)

		final, err := p.Run(ctx, a)
		if err != nil {
			log.Printf("[payment][poller] finished attempt_id=%s state=%s err=%v", a.ID, final.State, err)
			return
		}
		log.Printf("[payment][poller] finished attempt_id=%s state=%s", a.ID, final.State)
	}()
}

// Cancel stops polling the attempt and waits, bounded by ctx, until the poll
// has persisted its final state. It reports whether a poll was running.
//
// A tick that already settled the payment wins over the cancellation, so the
// caller must read the attempt back to learn the outcome.
func (p *PaymentPoller) Cancel(ctx context.Context, attemptID string) bool {
	p.mu.Lock()
	h, ok := p.active[attemptID]
	p.mu.Unlock()
	if !ok {
		return false
	}

	h.cancel(errPollCancelled)
	select {
	case <-h.done:
	case <-ctx.Done():
		log.Printf("[payment][poller] cancel wait interrupted attempt_id=%s err=%v", attemptID, ctx.Err())
	}
	return true
}

// Shutdown stops every running poll without changing the attempts' state, so a
// webhook can still settle them, and waits for the goroutines to exit.
func (p *PaymentPoller) Shutdown(ctx context.Context) error {
	p.stop(errPollerStopped)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *PaymentPoller) forget(attemptID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, attemptID)
}

// Run polls the attempt until it reaches a terminal state and returns the final attempt.
func (p *PaymentPoller) Run(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	if a.State.IsTerminal() {
		return a, entities.ErrTerminalPollState
	}
	if a.State != entities.PollStateAwaitingPayment {
		_ = a.Transition(entities.PollStateAwaitingPayment, time.Now().UTC())
		if settled, ok := p.save(ctx, a); !ok {
			return settled, entities.ErrTerminalPollState
		}
	}
	log.Printf("[payment][poller] start attempt_id=%s external_id=%s kind=%s", a.ID, a.ExternalID, a.Kind)

	tick := 0
	status, err := backoff.Retry(ctx, func() (entities.PaymentStatus, error) {
		tick++
		status, err := p.resolver.Resolve(ctx, a.ExternalID)
		if err != nil {
			log.Printf("[payment][poller] transient failure attempt_id=%s tick=%d err=%v", a.ID, tick, err)
			return "", err
		}

		switch status {
		case entities.PaymentStatusApproved:
			if err := p.reconciler.Approve(ctx, a); err != nil {
				log.Printf("[payment][poller] approve side effects failed attempt_id=%s err=%v", a.ID, err)
				return "", err
			}
		case entities.PaymentStatusRejected, entities.PaymentStatusCancelled:
			rejected := a
			rejected.Status = status
			if err := p.reconciler.Reject(ctx, rejected); err != nil {
				log.Printf("[payment][poller] reject side effects failed attempt_id=%s err=%v", a.ID, err)
				return "", err
			}
		default:
			return status, errStillPending
		}
		return status, nil
	}, p.policy.retryOptions()...)

	final := entities.PollStateTimedOut
	var result error
	switch {
	case err == nil && status == entities.PaymentStatusApproved:
		final = entities.PollStateApproved
	case err == nil:
		final = entities.PollStateRejected
		result = ErrPaymentRejected
	case errors.Is(context.Cause(ctx), errPollerStopped):
		log.Printf("[payment][poller] stopped attempt_id=%s ticks=%d", a.ID, tick)
		return a, errPollerStopped
	case errors.Is(context.Cause(ctx), errPollCancelled):
		final = entities.PollStateCancelled
		result = ErrPaymentCancelled
	default:
		result = ErrPaymentTimedOut
		log.Printf("[payment][poller] giving up attempt_id=%s ticks=%d last_err=%v", a.ID, tick, err)
	}

	if err := a.Transition(final, time.Now().UTC()); err != nil {
		return a, err
	}
	if final == entities.PollStateRejected {
		a.Status = status
	}
	if settled, ok := p.save(context.WithoutCancel(ctx), a); !ok {
		// Settled elsewhere (webhook or client cancel) while this poll was running.
		return settled, entities.ErrTerminalPollState
	}
	return a, result
}

// save persists the attempt. When the stored row is already terminal it
// returns that row and false.
func (p *PaymentPoller) save(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, bool) {
	if p.attempts == nil {
		return a, true
	}
	err := p.attempts.Save(ctx, a)
	switch {
	case err == nil:
		return a, true
	case errors.Is(err, entities.ErrTerminalPollState):
		stored, getErr := p.attempts.GetByID(ctx, a.ID)
		if getErr != nil || stored.ID == "" {
			log.Printf("[payment][poller] attempt settled elsewhere attempt_id=%s err=%v", a.ID, getErr)
			return a, false
		}
		log.Printf("[payment][poller] attempt settled elsewhere attempt_id=%s state=%s", a.ID, stored.State)
		return stored, false
	default:
		log.Printf("[payment][poller] failed saving attempt attempt_id=%s state=%s err=%v", a.ID, a.State, err)
		return a, true
	}
}

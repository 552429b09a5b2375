// Package payment drives the post-checkout payment flow: one initiation
// request, then status probes until a terminal answer.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/CM-market/cameroon-made-market-sub000/internal/api"
)

// Status is the backend's view of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// Terminal reports whether polling should stop on this status.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// State is the poller's own lifecycle: idle -> submitted -> polling ->
// completed | failed.
type State string

const (
	StateIdle      State = "idle"
	StateSubmitted State = "submitted"
	StatePolling   State = "polling"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

var ErrNotStarted = errors.New("payment: not started")

// Gateway is the slice of the payments API the poller needs.
type Gateway interface {
	CreateIndirect(ctx context.Context, req api.PaymentRequest) (api.Payment, error)
	Verify(ctx context.Context, transactionID string) (api.Payment, error)
}

// Poller owns one payment attempt. Each status probe is a single request
// whose answer drives the state directly; there is no retry-with-backoff.
// Cancellation is the context: abandoning the flow is cancelling it.
type Poller struct {
	gw     Gateway
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	current api.Payment
}

func NewPoller(gw Gateway, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{gw: gw, logger: logger, state: StateIdle}
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Current is the last payment snapshot the backend returned.
func (p *Poller) Current() api.Payment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Start fires the initiation request immediately on entering submitted. A
// returned payment_link is the caller's to surface; the poller only tracks
// status.
func (p *Poller) Start(ctx context.Context, req api.PaymentRequest) (api.Payment, error) {
	p.mu.Lock()
	if p.state != StateIdle {
		st := p.state
		p.mu.Unlock()
		return api.Payment{}, fmt.Errorf("payment: already started (state %s)", st)
	}
	p.state = StateSubmitted
	p.mu.Unlock()

	pay, err := p.gw.CreateIndirect(ctx, req)
	if err != nil {
		p.mu.Lock()
		p.state = StateFailed
		p.mu.Unlock()
		return api.Payment{}, fmt.Errorf("initiate payment: %w", err)
	}
	p.observe(pay)
	p.logger.Info("payment initiated",
		zap.String("transactionId", pay.TransactionID),
		zap.String("status", pay.Status))
	return pay, nil
}

// Check issues one status probe. Once a terminal state is reached it
// returns the held snapshot without another request. A transport error
// leaves the state untouched; the caller decides whether to ask again.
func (p *Poller) Check(ctx context.Context) (api.Payment, error) {
	p.mu.Lock()
	st := p.state
	txn := p.current.TransactionID
	p.mu.Unlock()

	switch st {
	case StateIdle:
		return api.Payment{}, ErrNotStarted
	case StateCompleted, StateFailed:
		return p.Current(), nil
	}

	pay, err := p.gw.Verify(ctx, txn)
	if err != nil {
		return api.Payment{}, err
	}
	p.observe(pay)
	return pay, nil
}

// DefaultWatchInterval paces Watch when the caller passes no usable
// interval.
const DefaultWatchInterval = time.Second

// Watch probes on a fixed interval until the payment is terminal or the
// context is cancelled. The first probe fires immediately.
func (p *Poller) Watch(ctx context.Context, interval time.Duration) (api.Payment, error) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		pay, err := p.Check(ctx)
		if err != nil {
			if errors.Is(err, ErrNotStarted) || ctx.Err() != nil {
				return api.Payment{}, err
			}
			p.logger.Warn("payment status check failed", zap.Error(err))
		} else if Status(pay.Status).Terminal() {
			return pay, nil
		}

		select {
		case <-ctx.Done():
			return p.Current(), ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Poller) observe(pay api.Payment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = pay
	switch Status(pay.Status) {
	case StatusCompleted:
		p.state = StateCompleted
	case StatusFailed, StatusRefunded:
		p.state = StateFailed
	default:
		p.state = StatePolling
	}
}

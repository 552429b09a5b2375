package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CM-market/cameroon-made-market-sub000/internal/api"
	"github.com/CM-market/cameroon-made-market-sub000/internal/payment"
)

type gatewayMock struct {
	CreateIndirectFunc func(ctx context.Context, req api.PaymentRequest) (api.Payment, error)
	VerifyFunc         func(ctx context.Context, transactionID string) (api.Payment, error)

	createCalls int
	verifyCalls int
}

func (m *gatewayMock) CreateIndirect(ctx context.Context, req api.PaymentRequest) (api.Payment, error) {
	m.createCalls++
	if m.CreateIndirectFunc == nil {
		return api.Payment{TransactionID: "txn-1", Status: "pending"}, nil
	}
	return m.CreateIndirectFunc(ctx, req)
}

func (m *gatewayMock) Verify(ctx context.Context, transactionID string) (api.Payment, error) {
	m.verifyCalls++
	if m.VerifyFunc == nil {
		return api.Payment{TransactionID: transactionID, Status: "pending"}, nil
	}
	return m.VerifyFunc(ctx, transactionID)
}

func TestPollerStart(t *testing.T) {
	t.Run("fires the initiation request immediately", func(t *testing.T) {
		gw := &gatewayMock{}
		p := payment.NewPoller(gw, nil)
		require.Equal(t, payment.StateIdle, p.State())

		pay, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)
		assert.Equal(t, 1, gw.createCalls)
		assert.Equal(t, "txn-1", pay.TransactionID)
		assert.Equal(t, payment.StatePolling, p.State())
	})

	t.Run("a second start is refused", func(t *testing.T) {
		p := payment.NewPoller(&gatewayMock{}, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)
		_, err = p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.Error(t, err)
	})

	t.Run("initiation failure ends in failed", func(t *testing.T) {
		gw := &gatewayMock{CreateIndirectFunc: func(ctx context.Context, req api.PaymentRequest) (api.Payment, error) {
			return api.Payment{}, errors.New("gateway down")
		}}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.Error(t, err)
		assert.Equal(t, payment.StateFailed, p.State())
	})

	t.Run("an immediately completed payment skips polling", func(t *testing.T) {
		gw := &gatewayMock{CreateIndirectFunc: func(ctx context.Context, req api.PaymentRequest) (api.Payment, error) {
			return api.Payment{TransactionID: "txn-1", Status: "completed"}, nil
		}}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)
		assert.Equal(t, payment.StateCompleted, p.State())
	})
}

func TestPollerCheck(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		p := payment.NewPoller(&gatewayMock{}, nil)
		_, err := p.Check(context.Background())
		require.ErrorIs(t, err, payment.ErrNotStarted)
	})

	t.Run("drives state from the answer", func(t *testing.T) {
		gw := &gatewayMock{}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)

		gw.VerifyFunc = func(ctx context.Context, transactionID string) (api.Payment, error) {
			return api.Payment{TransactionID: transactionID, Status: "failed"}, nil
		}
		pay, err := p.Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "failed", pay.Status)
		assert.Equal(t, payment.StateFailed, p.State())
	})

	t.Run("terminal state issues no further requests", func(t *testing.T) {
		gw := &gatewayMock{VerifyFunc: func(ctx context.Context, transactionID string) (api.Payment, error) {
			return api.Payment{TransactionID: transactionID, Status: "completed"}, nil
		}}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)

		_, err = p.Check(context.Background())
		require.NoError(t, err)
		require.Equal(t, payment.StateCompleted, p.State())
		verifies := gw.verifyCalls

		pay, err := p.Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "completed", pay.Status)
		assert.Equal(t, verifies, gw.verifyCalls, "no request after a terminal state")
	})

	t.Run("transport error leaves the state alone", func(t *testing.T) {
		gw := &gatewayMock{}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)

		gw.VerifyFunc = func(ctx context.Context, transactionID string) (api.Payment, error) {
			return api.Payment{}, errors.New("timeout")
		}
		_, err = p.Check(context.Background())
		require.Error(t, err)
		assert.Equal(t, payment.StatePolling, p.State())
	})
}

func TestPollerWatch(t *testing.T) {
	t.Run("polls until terminal", func(t *testing.T) {
		gw := &gatewayMock{}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)

		gw.VerifyFunc = func(ctx context.Context, transactionID string) (api.Payment, error) {
			status := "pending"
			if gw.verifyCalls >= 3 {
				status = "completed"
			}
			return api.Payment{TransactionID: transactionID, Status: status}, nil
		}

		pay, err := p.Watch(context.Background(), time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "completed", pay.Status)
		assert.Equal(t, payment.StateCompleted, p.State())
	})

	t.Run("a non-positive interval falls back to the default", func(t *testing.T) {
		gw := &gatewayMock{VerifyFunc: func(ctx context.Context, transactionID string) (api.Payment, error) {
			return api.Payment{TransactionID: transactionID, Status: "completed"}, nil
		}}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)

		pay, err := p.Watch(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, "completed", pay.Status)
	})

	t.Run("cancellation abandons the poll", func(t *testing.T) {
		gw := &gatewayMock{}
		p := payment.NewPoller(gw, nil)
		_, err := p.Start(context.Background(), api.PaymentRequest{OrderID: "o1"})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		_, err = p.Watch(ctx, time.Millisecond)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, payment.StatusPending.Terminal())
	assert.True(t, payment.StatusCompleted.Terminal())
	assert.True(t, payment.StatusFailed.Terminal())
	assert.True(t, payment.StatusRefunded.Terminal())
}

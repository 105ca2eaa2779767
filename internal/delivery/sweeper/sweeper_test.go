package sweeper

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"enroll/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingUsecase struct {
	sweeps atomic.Int32
	err    error
}

func (c *countingUsecase) IssueToken(context.Context, *entity.Account) error { return nil }

func (c *countingUsecase) Verify(context.Context, uuid.UUID, string) error { return nil }

func (c *countingUsecase) CleanupExpired(context.Context) (int, error) {
	c.sweeps.Add(1)

	return 1, c.err
}

func newTestSweeper(uc *countingUsecase, interval time.Duration) *sweeper {
	return &sweeper{
		interval:       interval,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		verificationUC: uc,
		stop:           make(chan struct{}),
	}
}

func TestServeSweepsOnInterval(t *testing.T) {
	t.Parallel()

	uc := &countingUsecase{}
	s := newTestSweeper(uc, 5*time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	require.Eventually(t, func() bool {
		return uc.sweeps.Load() >= 2
	}, time.Second, time.Millisecond)

	close(s.stop)
	require.NoError(t, <-done)
}

func TestServeDisabledWithZeroInterval(t *testing.T) {
	t.Parallel()

	uc := &countingUsecase{}
	s := newTestSweeper(uc, 0)

	require.NoError(t, s.Serve(context.Background()))
	assert.Zero(t, uc.sweeps.Load())
}

func TestServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	uc := &countingUsecase{}
	s := newTestSweeper(uc, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
}

func TestServeKeepsRunningAfterSweepError(t *testing.T) {
	t.Parallel()

	uc := &countingUsecase{err: assert.AnError}
	s := newTestSweeper(uc, 5*time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	require.Eventually(t, func() bool {
		return uc.sweeps.Load() >= 2
	}, time.Second, time.Millisecond)

	close(s.stop)
	require.NoError(t, <-done)
}

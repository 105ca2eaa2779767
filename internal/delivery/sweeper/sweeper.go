// Package sweeper runs the background removal of expired pending verifications.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"enroll/config"
	"enroll/internal/delivery"
	"enroll/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the sweeper, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config         *config.Config
	Logger         *slog.Logger
	VerificationUC usecase.VerificationUsecase
}

type sweeper struct {
	interval       time.Duration
	logger         *slog.Logger
	verificationUC usecase.VerificationUsecase
	stop           chan struct{}
}

// New creates the background sweeper delivery.
func New(params Params) (delivery.Delivery, error) {
	s := &sweeper{
		interval:       params.Config.Verification.SweepInterval,
		logger:         params.Logger,
		verificationUC: params.VerificationUC,
		stop:           make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(s.stop)

			return nil
		},
	})

	return s, nil
}

// Serve sweeps on a fixed interval until the context is cancelled or the
// application stops. Expired signups are removed so their email addresses
// become available again without waiting for a verify attempt.
// A non-positive interval disables the sweeper; lazy cleanup on verify
// attempts still applies.
func (s *sweeper) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Verification sweeper disabled")

		return nil
	}

	s.logger.Info("Starting verification sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			s.logger.Info("Verification sweeper stopped")

			return nil
		case <-ticker.C:
			removed, err := s.verificationUC.CleanupExpired(ctx)
			if err != nil {
				s.logger.Error("Verification sweep failed", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				s.logger.Debug("Verification sweep completed", slog.Int("removed", removed))
			}
		}
	}
}

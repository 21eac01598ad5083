// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service"
)

// ResetTokenSweeper periodically clears password-reset tokens that
// expired without being used.
type ResetTokenSweeper struct {
	resets   service.PasswordResetService
	interval time.Duration
	logger   *logger.Logger
}

func NewResetTokenSweeper(resets service.PasswordResetService, interval time.Duration, logger *logger.Logger) *ResetTokenSweeper {
	return &ResetTokenSweeper{
		resets:   resets,
		interval: interval,
		logger:   logger,
	}
}

func (s *ResetTokenSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Warn().Msg("reset token sweeper disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ResetTokenSweeper) sweep(ctx context.Context) {
	n, err := s.resets.SweepExpired(ctx)
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired reset tokens")
		return
	}
	if n > 0 {
		s.logger.Info().Int64("cleared", n).Msg("expired reset tokens cleared")
	}
}

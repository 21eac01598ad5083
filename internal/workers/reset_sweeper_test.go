package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service/mock"
)

func TestResetTokenSweeper_SweepsUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	resets := mock.NewMockPasswordResetService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	resets.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return 1, nil
	}).MinTimes(2)

	done := make(chan struct{})
	go func() {
		NewResetTokenSweeper(resets, time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("sweeper did not stop")
	}
}

func TestResetTokenSweeper_ErrorDoesNotStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	resets := mock.NewMockPasswordResetService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		resets.EXPECT().SweepExpired(gomock.Any()).Return(int64(0), errors.New("db down")),
		resets.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
			cancel()
			return 0, nil
		}).MinTimes(1),
	)

	sweeper := NewResetTokenSweeper(resets, time.Millisecond, logger.Nop())
	sweeper.Run(ctx)
}

func TestResetTokenSweeper_NonPositiveInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	resets := mock.NewMockPasswordResetService(ctrl)

	// returns at once without touching the service
	NewResetTokenSweeper(resets, 0, logger.Nop()).Run(context.Background())
	assert.True(t, ctrl.Satisfied())
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNextRun(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"later today", time.Date(2024, 3, 1, 1, 0, 0, 0, loc), time.Date(2024, 3, 1, 3, 0, 0, 0, loc)},
		{"already passed", time.Date(2024, 3, 1, 4, 0, 0, 0, loc), time.Date(2024, 3, 2, 3, 0, 0, 0, loc)},
		{"exactly now", time.Date(2024, 3, 1, 3, 0, 0, 0, loc), time.Date(2024, 3, 2, 3, 0, 0, 0, loc)},
		{"month end", time.Date(2024, 2, 29, 23, 0, 0, 0, loc), time.Date(2024, 3, 1, 3, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextRun(tt.now, 3, 0, 0))
		})
	}
}

func TestPurgeOperationLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		repo := new(mocks.AnalyticsRepository)
		n, err := PurgeOperationLogs(ctx, repo, 0)
		require.NoError(t, err)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "DeleteOperationLogsBefore", mock.Anything, mock.Anything)
	})

	t.Run("cutoff", func(t *testing.T) {
		repo := new(mocks.AnalyticsRepository)
		before := time.Now().AddDate(0, 0, -30)
		repo.On("DeleteOperationLogsBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			return cutoff.Sub(before) >= 0 && cutoff.Sub(before) < time.Minute
		})).Return(int64(7), nil)

		n, err := PurgeOperationLogs(ctx, repo, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
		repo.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		repo := new(mocks.AnalyticsRepository)
		repo.On("DeleteOperationLogsBefore", ctx, mock.Anything).Return(int64(0), errors.New("boom"))

		_, err := PurgeOperationLogs(ctx, repo, 7)
		assert.EqualError(t, err, "boom")
	})
}

func TestScheduleDailyTaskAtStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	called := make(chan struct{}, 1)
	ScheduleDailyTaskAt(ctx, 3, 0, 0, func(context.Context) { called <- struct{}{} })
	cancel()

	select {
	case <-called:
		t.Fatal("任务不应在取消后执行")
	case <-time.After(50 * time.Millisecond):
	}
}

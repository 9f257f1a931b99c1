package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network timeout code", mongo.CommandError{Code: 89}, true},
		{"not master", fmt.Errorf("wrapped: %w", mongo.CommandError{Code: 10107}), true},
		{"duplicate key code", mongo.CommandError{Code: 11000}, false},
		{"connection refused", errors.New("dial tcp: Connection Refused"), true},
		{"context canceled", context.Canceled, false},
		{"validation", errors.New("invalid document"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestExecuteDbOperation(t *testing.T) {
	t.Run("retries retryable errors", func(t *testing.T) {
		calls := 0
		result, err := ExecuteDbOperation(func() (interface{}, error) {
			calls++
			if calls < 2 {
				return nil, errors.New("server selection error")
			}
			return "ok", nil
		}, 3)

		assert.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 2, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		_, err := ExecuteDbOperation(func() (interface{}, error) {
			calls++
			return nil, errors.New("bad filter")
		}, 3)

		assert.EqualError(t, err, "bad filter")
		assert.Equal(t, 1, calls)
	})
}

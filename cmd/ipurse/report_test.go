package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/service"
)

type flakyAdvisor struct {
	reply    string
	err      error
	failures int
	calls    int
}

func (f *flakyAdvisor) Advise(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.err
	}
	return f.reply, nil
}

func testRetryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestRequestAdvice_RetriesTransientFailures(t *testing.T) {
	advisor := &flakyAdvisor{
		reply:    "1. Spend less on taxis.",
		err:      &common.RetryableError{Err: errors.New("transient"), Retryable: true},
		failures: 2,
	}

	advice, err := requestAdvice(context.Background(), advisor, testRetryOptions(), "Period: 2026-08")
	require.NoError(t, err)
	assert.Equal(t, "1. Spend less on taxis.", advice)
	assert.Equal(t, 3, advisor.calls)
}

func TestRequestAdvice_NonRetryableFailsFast(t *testing.T) {
	advisor := &flakyAdvisor{
		err:      errors.New("bad key"),
		failures: 5,
	}

	_, err := requestAdvice(context.Background(), advisor, testRetryOptions(), "Period: 2026-08")
	require.Error(t, err)
	assert.Equal(t, 1, advisor.calls, "a non-retryable failure should not be retried")
}

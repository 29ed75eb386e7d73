package main

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaitForWatcher(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
		defer cancel()

		// Arrange: the watcher finishes its last write after 2s
		done := make(chan error, 1)
		go func() {
			time.Sleep(2 * time.Second)
			done <- nil
		}()

		// Act
		start := time.Now()
		stopped := waitForWatcher(ctx, done)

		// Assert
		require.True(t, stopped)
		require.Equal(t, 2*time.Second, time.Since(start))
	})
}

func TestWaitForWatcher_Timeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
		defer cancel()

		stopped := waitForWatcher(ctx, make(chan error))

		require.False(t, stopped)
	})
}

package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/batch"
)

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazes.txt")
	require.NoError(t, os.WriteFile(path, []byte("SG\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	r := batch.New(batch.WithLogger(quietLogger()), batch.WithDebounce(20*time.Millisecond))
	go func() {
		done <- r.Watch(ctx, []string{path}, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// rewrite until the watcher is registered and fires
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("S_G\n"), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

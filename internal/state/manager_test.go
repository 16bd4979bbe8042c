package state_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leighmacdonald/tirek/internal/state"
	"github.com/stretchr/testify/require"
)

func TestManagerSnapshot(t *testing.T) {
	manager := state.NewManager(0)
	require.Equal(t, state.Placeholder(), manager.Snapshot())

	next := state.Snapshot{Connections: 3, ConnectionLimit: 50, DHTNodes: 9}
	manager.Update(next)
	require.Equal(t, next, manager.Snapshot())
}

func TestManagerStart(t *testing.T) {
	manager := state.NewManager(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan struct{})

	go func() {
		manager.Start(ctx, func() { calls.Add(1) })
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)

	manager.SetInterval(time.Millisecond)
	manager.SetInterval(-1)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}
}

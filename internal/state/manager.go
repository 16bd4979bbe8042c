// Package state holds the status values shown in the bottom bar. The real torrent engine is not part of
// this program; Manager starts out with placeholder figures and accepts updates from whatever feeds it.
package state

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultUpdateInterval = time.Second

// Snapshot is a read-only copy of the status values. Rates are in bytes per second.
type Snapshot struct {
	Connections      int
	ConnectionLimit  int
	DownloadRate     float64
	UploadRate       float64
	ProtocolDownload float64
	ProtocolUpload   float64
	DHTNodes         int
}

// Source provides the status values for a redraw.
type Source interface {
	Snapshot() Snapshot
}

// Placeholder is the snapshot shown until a data source reports real numbers.
func Placeholder() Snapshot {
	return Snapshot{
		Connections:      100,
		ConnectionLimit:  200,
		DownloadRate:     100e6,
		UploadRate:       100e6,
		ProtocolDownload: 12e3,
		ProtocolUpload:   12e3,
		DHTNodes:         150,
	}
}

// Manager stores the most recent Snapshot and periodically asks the ui to pick it up.
type Manager struct {
	mu       *sync.RWMutex
	snapshot Snapshot
	interval time.Duration
}

func NewManager(interval time.Duration) *Manager {
	if interval <= 0 {
		interval = defaultUpdateInterval
	}

	return &Manager{
		mu:       &sync.RWMutex{},
		snapshot: Placeholder(),
		interval: interval,
	}
}

func (s *Manager) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// Update replaces the current snapshot.
func (s *Manager) Update(snapshot Snapshot) {
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// SetInterval changes the refresh period used by Start. It takes effect on the next tick.
func (s *Manager) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}

	s.mu.Lock()
	s.interval = interval
	s.mu.Unlock()
}

func (s *Manager) currentInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.interval
}

// Start calls refresh every interval until ctx is done, so the status bar is redrawn with whatever
// the snapshot holds at that point.
func (s *Manager) Start(ctx context.Context, refresh func()) {
	interval := s.currentInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			refresh()

			if next := s.currentInterval(); next != interval {
				slog.Debug("Status refresh interval changed", slog.Duration("interval", next))
				interval = next
				ticker.Reset(interval)
			}
		case <-ctx.Done():
			return
		}
	}
}

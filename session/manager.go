// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ecosync/report"
	"github.com/danielhkuo/ecosync/seed"
)

// ErrNotMounted is returned when an action targets a view that is not the
// current one, so its local state does not exist.
var ErrNotMounted = errors.New("view not mounted")

var errNoChange = errors.New("no change")

type pendingReset struct {
	timer   *time.Timer
	receipt string
}

// Manager serialises every read-modify-write of session state and owns the
// report form's auto-dismiss timers.
type Manager struct {
	store      Store
	data       *seed.Seed
	resetDelay time.Duration
	now        func() time.Time

	mu     sync.Mutex
	resets map[string]pendingReset
	closed bool
}

func NewManager(store Store, data *seed.Seed, resetDelay time.Duration) *Manager {
	if resetDelay <= 0 {
		resetDelay = report.DefaultResetDelay
	}
	return &Manager{
		store:      store,
		data:       data,
		resetDelay: resetDelay,
		now:        time.Now,
		resets:     make(map[string]pendingReset),
	}
}

func (m *Manager) Seed() *seed.Seed {
	return m.data
}

func (m *Manager) ResetDelay() time.Duration {
	return m.resetDelay
}

// Create starts a new session on the resident login screen.
func (m *Manager) Create(ctx context.Context) (string, *State, error) {
	id := uuid.NewString()
	st := NewState()
	st.UpdatedAt = m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(ctx, id, st); err != nil {
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}
	return id, st, nil
}

func (m *Manager) Get(ctx context.Context, id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Load(ctx, id)
}

// Update loads the session, applies fn, remounts view-local state and saves.
// If fn returns an error nothing is saved.
func (m *Manager) Update(ctx context.Context, id string, fn func(*State) error) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.update(ctx, id, fn)
}

func (m *Manager) update(ctx context.Context, id string, fn func(*State) error) (*State, error) {
	st, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	st.Mount(m.data)
	st.UpdatedAt = m.now()
	if err := m.store.Save(ctx, id, st); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return st, nil
}

// SubmitReport submits the mounted report form and schedules it to clear
// after the reset delay.
func (m *Manager) SubmitReport(ctx context.Context, id string, in report.Input) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.update(ctx, id, func(s *State) error {
		if s.Report == nil {
			return ErrNotMounted
		}
		return s.Report.Submit(in, m.now(), m.knownIssue)
	})
	if err != nil {
		return nil, err
	}

	if m.closed {
		return st, nil
	}
	if prev, ok := m.resets[id]; ok {
		prev.timer.Stop()
	}
	receipt := st.Report.Receipt
	m.resets[id] = pendingReset{
		receipt: receipt,
		timer:   time.AfterFunc(m.resetDelay, func() { m.expireReport(id, receipt) }),
	}
	return st, nil
}

func (m *Manager) expireReport(id, receipt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if pending, ok := m.resets[id]; ok && pending.receipt == receipt {
		delete(m.resets, id)
	}

	_, err := m.update(context.Background(), id, func(s *State) error {
		if s.Report == nil || !s.Report.ResetIfReceipt(receipt) {
			return errNoChange
		}
		return nil
	})
	switch {
	case err == nil:
		slog.Debug("report form reset", "session_id", id, "receipt", receipt)
	case errors.Is(err, errNoChange), errors.Is(err, ErrNotFound):
	default:
		slog.Error("failed to reset report form", "session_id", id, "error", err)
	}
}

func (m *Manager) knownIssue(value string) bool {
	_, ok := m.data.IssueLabel(value)
	return ok
}

// Prune drops sessions idle for longer than ttl.
func (m *Manager) Prune(ctx context.Context, ttl time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Prune(ctx, m.now().Add(-ttl))
}

// RunJanitor prunes idle sessions every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := m.Prune(ctx, ttl)
			if err != nil {
				slog.Error("session prune failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("pruned idle sessions", "count", n)
			}
		}
	}
}

// Close stops pending report timers. Timers that have not fired never will.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for id, pending := range m.resets {
		pending.timer.Stop()
		delete(m.resets, id)
	}
}

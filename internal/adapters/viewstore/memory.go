// Package viewstore holds the submissions a page fetched when it was
// opened, keyed by a per-view id, so the page can re-filter and re-sort
// without calling the API again.
package viewstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/launchboard/internal/domain"
)

type entry struct {
	subs    []domain.Submission
	expires time.Time
}

// Memory is a process-local store. Views expire ttl after their last use.
type Memory struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	views map[string]entry
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now, views: make(map[string]entry)}
}


func (m *Memory) Save(_ context.Context, subs []domain.Submission) (string, error) {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, e := range m.views {
		if now.After(e.expires) {
			delete(m.views, k)
		}
	}
	m.views[id] = entry{subs: slices.Clone(subs), expires: now.Add(m.ttl)}
	return id, nil
}

func (m *Memory) Load(_ context.Context, id string) ([]domain.Submission, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.views[id]
	if !ok {
		return nil, false, nil
	}
	now := m.now()
	if now.After(e.expires) {
		delete(m.views, id)
		return nil, false, nil
	}
	e.expires = now.Add(m.ttl)
	m.views[id] = e
	return slices.Clone(e.subs), true, nil
}

// Len is the number of live and not yet pruned views.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.views)
}

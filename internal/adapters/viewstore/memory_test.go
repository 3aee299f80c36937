package viewstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/launchboard/internal/domain"
)

func TestMemory_SaveLoad(t *testing.T) {
	m := NewMemory(time.Minute)
	subs := []domain.Submission{{ID: 1, Status: domain.StatusPending}, {ID: 2, Status: domain.StatusFailed}}

	id, err := m.Save(context.Background(), subs)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, ok, err := m.Load(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, subs, got)

	// Callers get their own copy.
	got[0].Status = domain.StatusCompleted
	again, _, _ := m.Load(context.Background(), id)
	assert.Equal(t, domain.StatusPending, again[0].Status)
}

func TestMemory_UnknownView(t *testing.T) {
	_, ok, err := NewMemory(time.Minute).Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ExpiryIsSliding(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(10 * time.Minute)
	m.now = func() time.Time { return now }

	id, _ := m.Save(context.Background(), nil)

	now = now.Add(9 * time.Minute)
	_, ok, _ := m.Load(context.Background(), id)
	require.True(t, ok)

	now = now.Add(9 * time.Minute)
	_, ok, _ = m.Load(context.Background(), id)
	require.True(t, ok, "a read extends the view")

	now = now.Add(11 * time.Minute)
	_, ok, _ = m.Load(context.Background(), id)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_SavePrunesExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	_, _ = m.Save(context.Background(), nil)
	_, _ = m.Save(context.Background(), nil)
	now = now.Add(2 * time.Minute)
	_, _ = m.Save(context.Background(), nil)
	assert.Equal(t, 1, m.Len())
}

package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chorequest/internal/model"
	"chorequest/internal/pkg/lock"
	"chorequest/internal/store"
)

// newTestStore opens a fresh store backed by a temp database.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

// newTestLedger returns a ledger pinned to the given instant.
func newTestLedger(t *testing.T, st *store.Store, at time.Time) *LedgerService {
	t.Helper()
	s := NewLedgerService(st, lock.NewOwnerLock())
	s.clock = func() time.Time { return at }
	return s
}

// addTestProfile creates a profile directly in state and returns its owner.
func addTestProfile(t *testing.T, st *store.Store, name string) model.Owner {
	t.Helper()
	p := model.NewProfile(name, "🦊", time.Now())
	err := st.Update(func(state *model.AppState) error {
		state.Profiles = append(state.Profiles, p)
		if state.ActiveProfileID == "" {
			state.ActiveProfileID = p.ID
		}
		return nil
	})
	require.NoError(t, err)
	return model.ProfileOwner(p.ID)
}

// setCatalog replaces the quest catalog.
func setCatalog(t *testing.T, st *store.Store, quests []model.Quest) {
	t.Helper()
	err := st.Update(func(state *model.AppState) error {
		state.Quests = quests
		return nil
	})
	require.NoError(t, err)
}

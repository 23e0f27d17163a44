package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorequest/internal/model"
)

func TestCreateProfile(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	p, err := profiles.Create("ゆうしゃ", "🦸")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "ゆうしゃ", p.Name)
	assert.Equal(t, "🦸", p.Icon)
	assert.Zero(t, p.CurrentPoints)

	active, ok := profiles.Active()
	require.True(t, ok)
	assert.Equal(t, p.ID, active.ID, "first profile becomes active")
}

func TestCreateProfileDefaults(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	p, err := profiles.Create("", "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultProfileName, p.Name)
	assert.Equal(t, model.DefaultProfileIcon, p.Icon)
}

func TestProfileCap(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	for i := 0; i < 5; i++ {
		_, err := profiles.Create(fmt.Sprintf("こども%d", i), "🦊")
		require.NoError(t, err)
	}

	_, err := profiles.Create("むり", "🐻")
	assert.ErrorIs(t, err, ErrProfileCapReached)
	assert.Len(t, profiles.List(), 5)
}

func TestProfileNameLength(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	// Exactly ten runes is fine; eleven is not. Rune count, not bytes.
	_, err := profiles.Create("あいうえおかきくけこ", "🦊")
	require.NoError(t, err)
	_, err = profiles.Create("あいうえおかきくけこさ", "🦊")
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestFirstProfileAbsorbsLegacyLedger(t *testing.T) {
	st := newTestStore(t)
	ledger := newTestLedger(t, st, time.Now())

	_, err := ledger.Credit(model.LegacyOwner(), 120, model.KindQuest, "q1", "quest")
	require.NoError(t, err)
	_, err = ledger.Debit(model.LegacyOwner(), 20, model.KindReward, "r1", "reward")
	require.NoError(t, err)

	profiles := NewProfileService(st, 5)
	p, err := profiles.Create("ゆうしゃ", "🦸")
	require.NoError(t, err)

	assert.Equal(t, 100, p.CurrentPoints)
	assert.Equal(t, 120, p.TotalPointsEarned)
	require.Len(t, p.History, 2)
	for _, item := range p.History {
		assert.Equal(t, p.ID, item.ProfileID, "migrated entries carry the new profile id")
	}

	// Second profile starts clean.
	q, err := profiles.Create("まほうつかい", "🧙")
	require.NoError(t, err)
	assert.Zero(t, q.CurrentPoints)
	assert.Empty(t, q.History)
}

func TestRenameProfile(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	p, err := profiles.Create("ゆうしゃ", "🦸")
	require.NoError(t, err)

	require.NoError(t, profiles.Rename(p.ID, "きし", "🐻"))
	list := profiles.List()
	require.Len(t, list, 1)
	assert.Equal(t, "きし", list[0].Name)
	assert.Equal(t, "🐻", list[0].Icon)

	assert.ErrorIs(t, profiles.Rename("ghost", "x", "🦊"), ErrProfileNotFound)
	assert.ErrorIs(t, profiles.Rename(p.ID, "あいうえおかきくけこさ", "🦊"), ErrNameTooLong)
}

func TestDeleteProfileReassignsActive(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	a, err := profiles.Create("ひとり", "🦸")
	require.NoError(t, err)
	b, err := profiles.Create("ふたり", "🧙")
	require.NoError(t, err)

	require.NoError(t, profiles.Delete(a.ID))
	active, ok := profiles.Active()
	require.True(t, ok)
	assert.Equal(t, b.ID, active.ID)

	require.NoError(t, profiles.Delete(b.ID))
	_, ok = profiles.Active()
	assert.False(t, ok)
	assert.Empty(t, profiles.List())

	assert.ErrorIs(t, profiles.Delete(b.ID), ErrProfileNotFound)
}

func TestSetActive(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	a, err := profiles.Create("ひとり", "🦸")
	require.NoError(t, err)
	b, err := profiles.Create("ふたり", "🧙")
	require.NoError(t, err)

	active, _ := profiles.Active()
	assert.Equal(t, a.ID, active.ID)

	require.NoError(t, profiles.SetActive(b.ID))
	active, _ = profiles.Active()
	assert.Equal(t, b.ID, active.ID)

	assert.ErrorIs(t, profiles.SetActive("ghost"), ErrProfileNotFound)
}

func TestActiveOwnerFallsBackToLegacy(t *testing.T) {
	st := newTestStore(t)
	profiles := NewProfileService(st, 5)

	assert.True(t, profiles.ActiveOwner().IsLegacy())

	p, err := profiles.Create("ゆうしゃ", "🦸")
	require.NoError(t, err)
	owner := profiles.ActiveOwner()
	assert.False(t, owner.IsLegacy())
	assert.Equal(t, p.ID, owner.ProfileID())
}

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorequest/internal/model"
	"chorequest/internal/store"
)

func sampleCatalog(optional int) []model.Quest {
	quests := []model.Quest{
		{ID: "pin1", Title: "しゅくだい", Points: 30, AlwaysShow: true},
		{ID: "pin2", Title: "はみがき", Points: 10, AlwaysShow: true},
	}
	for i := 0; i < optional; i++ {
		quests = append(quests, model.Quest{
			ID:     fmt.Sprintf("opt%d", i),
			Title:  fmt.Sprintf("クエスト%d", i),
			Points: 20,
		})
	}
	return quests
}

func newTestSelector(st *store.Store, at time.Time, questCount, maxResets int) *DailyQuestService {
	s := NewDailyQuestService(st, questCount, maxResets)
	s.clock = func() time.Time { return at }
	return s
}

func TestDailyQuestsShape(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(10))

	daily := newTestSelector(st, time.Now(), 4, 2)

	quests, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	// 2 always-show plus a sample of 4 optional.
	require.Len(t, quests, 6)

	seen := map[string]bool{}
	for _, q := range quests {
		seen[q.ID] = true
	}
	assert.True(t, seen["pin1"])
	assert.True(t, seen["pin2"])
}

func TestDailyQuestsStableWithinDay(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(10))

	daily := newTestSelector(st, time.Now(), 4, 2)

	first, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	second, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDailyQuestsRedrawsOnNewDay(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(10))

	day1 := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	daily := newTestSelector(st, day1, 4, 2)
	_, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	ok, err := daily.Reshuffle(owner)
	require.NoError(t, err)
	require.True(t, ok)

	daily.clock = func() time.Time { return day2 }
	quests, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	assert.Len(t, quests, 6)
	// The stale entry is replaced, so the reset allowance is back.
	assert.Equal(t, 2, daily.RemainingResets(owner))
}

func TestDailyQuestsFewerThanSample(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(2))

	daily := newTestSelector(st, time.Now(), 4, 2)
	quests, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	// 2 always-show + only 2 optional available.
	assert.Len(t, quests, 4)
}

func TestReshuffleCap(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(10))

	daily := newTestSelector(st, time.Now(), 4, 2)
	_, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	assert.Equal(t, 2, daily.RemainingResets(owner))

	ok, err := daily.Reshuffle(owner)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, daily.RemainingResets(owner))

	ok, err = daily.Reshuffle(owner)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, daily.RemainingResets(owner))

	ok, err = daily.Reshuffle(owner)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, daily.RemainingResets(owner))
}

func TestReshufflePinsCompleted(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(10))

	now := time.Now()
	daily := newTestSelector(st, now, 4, 2)
	ledger := newTestLedger(t, st, now)

	quests, err := daily.DailyQuests(owner)
	require.NoError(t, err)

	var doneID string
	for _, q := range quests {
		if !q.AlwaysShow {
			doneID = q.ID
			break
		}
	}
	require.NotEmpty(t, doneID)
	_, err = ledger.Credit(owner, 20, model.KindQuest, doneID, "done")
	require.NoError(t, err)

	ok, err := daily.Reshuffle(owner)
	require.NoError(t, err)
	require.True(t, ok)

	after, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	found := false
	for _, q := range after {
		if q.ID == doneID {
			found = true
		}
	}
	assert.True(t, found, "completed quest must stay visible after reshuffle")
}

func TestDeletedQuestDropsFromSelection(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(10))

	daily := newTestSelector(st, time.Now(), 4, 2)
	quests, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	require.Len(t, quests, 6)

	removed := quests[0].ID
	err = st.Update(func(state *model.AppState) error {
		var kept []model.Quest
		for _, q := range state.Quests {
			if q.ID != removed {
				kept = append(kept, q)
			}
		}
		state.Quests = kept
		return nil
	})
	require.NoError(t, err)

	after, err := daily.DailyQuests(owner)
	require.NoError(t, err)
	assert.Len(t, after, 5)
	for _, q := range after {
		assert.NotEqual(t, removed, q.ID)
	}
}

func TestCompletedToday(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, sampleCatalog(4))

	now := time.Now()
	daily := newTestSelector(st, now, 4, 2)
	ledger := newTestLedger(t, st, now)

	assert.False(t, daily.CompletedToday(owner, "pin1"))
	_, err := ledger.Credit(owner, 30, model.KindQuest, "pin1", "しゅくだい")
	require.NoError(t, err)
	assert.True(t, daily.CompletedToday(owner, "pin1"))
	assert.False(t, daily.CompletedToday(owner, "pin2"))

	// Yesterday's completion does not count.
	daily.clock = func() time.Time { return now.AddDate(0, 0, 1) }
	assert.False(t, daily.CompletedToday(owner, "pin1"))
}

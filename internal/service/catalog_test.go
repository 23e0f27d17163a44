package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorequest/internal/model"
)

func TestAddQuest(t *testing.T) {
	st := newTestStore(t)
	setCatalog(t, st, nil)
	catalog := NewCatalogService(st)

	q, err := catalog.AddQuest(model.Quest{Title: "おふろそうじ", Points: 40, Icon: "🛁"})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID, "id is assigned when absent")

	got, ok := catalog.QuestByID(q.ID)
	require.True(t, ok)
	assert.Equal(t, q, got)

	_, err = catalog.AddQuest(model.Quest{Title: "  ", Points: 10})
	assert.ErrorIs(t, err, ErrEmptyTitle)
	_, err = catalog.AddQuest(model.Quest{Title: "x", Points: 0})
	assert.ErrorIs(t, err, ErrInvalidPoints)
}

func TestUpdateQuest(t *testing.T) {
	st := newTestStore(t)
	setCatalog(t, st, []model.Quest{{ID: "q1", Title: "そうじ", Points: 20}})
	catalog := NewCatalogService(st)

	require.NoError(t, catalog.UpdateQuest(model.Quest{ID: "q1", Title: "おおそうじ", Points: 60}))
	got, ok := catalog.QuestByID("q1")
	require.True(t, ok)
	assert.Equal(t, "おおそうじ", got.Title)
	assert.Equal(t, 60, got.Points)

	err := catalog.UpdateQuest(model.Quest{ID: "ghost", Title: "x", Points: 1})
	assert.ErrorIs(t, err, ErrQuestNotFound)
}

func TestDeleteQuestKeepsHistory(t *testing.T) {
	st := newTestStore(t)
	owner := addTestProfile(t, st, "あおい")
	setCatalog(t, st, []model.Quest{{ID: "q1", Title: "そうじ", Points: 20}})
	catalog := NewCatalogService(st)

	ledger := newTestLedger(t, st, time.Now())
	_, err := ledger.Credit(owner, 20, model.KindQuest, "q1", "そうじ")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteQuest("q1"))
	_, ok := catalog.QuestByID("q1")
	assert.False(t, ok)

	// The ledger entry survives with its snapshotted title.
	history, err := ledger.History(owner)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "そうじ", history[0].ItemTitle)

	current, _, err := ledger.Balance(owner)
	require.NoError(t, err)
	assert.Equal(t, 20, current)

	assert.ErrorIs(t, catalog.DeleteQuest("q1"), ErrQuestNotFound)
}

func TestRewardCRUD(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Update(func(state *model.AppState) error {
		state.Rewards = nil
		return nil
	}))
	catalog := NewCatalogService(st)

	r, err := catalog.AddReward(model.Reward{Title: "おかし", Cost: 30, Icon: "🍭"})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)

	require.NoError(t, catalog.UpdateReward(model.Reward{ID: r.ID, Title: "アイス", Cost: 50}))
	got, ok := catalog.RewardByID(r.ID)
	require.True(t, ok)
	assert.Equal(t, "アイス", got.Title)

	require.NoError(t, catalog.DeleteReward(r.ID))
	assert.Empty(t, catalog.Rewards())
	assert.ErrorIs(t, catalog.DeleteReward(r.ID), ErrRewardNotFound)

	_, err = catalog.AddReward(model.Reward{Title: "", Cost: 10})
	assert.ErrorIs(t, err, ErrEmptyTitle)
	_, err = catalog.AddReward(model.Reward{Title: "x", Cost: -1})
	assert.ErrorIs(t, err, ErrInvalidPoints)
}

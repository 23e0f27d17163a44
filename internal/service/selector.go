package service

import (
	"math/rand"
	"time"

	"chorequest/internal/model"
	"chorequest/internal/pkg/dates"
	"chorequest/internal/store"
)

// DailyQuestService derives the bounded daily quest set per owner: every
// always-show quest, a random sample of the rest, and any quest already
// completed today pinned in. A capped number of manual reshuffles is allowed
// per day.
type DailyQuestService struct {
	store      *store.Store
	questCount int
	maxResets  int
	clock      func() time.Time
}

// NewDailyQuestService creates a new DailyQuestService instance. questCount
// is the size of the random sample, maxResets the per-day reshuffle cap.
func NewDailyQuestService(st *store.Store, questCount, maxResets int) *DailyQuestService {
	return &DailyQuestService{
		store:      st,
		questCount: questCount,
		maxResets:  maxResets,
		clock:      time.Now,
	}
}

// completedTodayIDs returns the quest ids this owner completed today.
func completedTodayIDs(state *model.AppState, owner model.Owner, now time.Time) []string {
	var ids []string
	for _, item := range state.OwnerHistory(owner) {
		if item.Kind == model.KindQuest && item.ItemID != "" && dates.SameDay(item.Date, now) {
			ids = append(ids, item.ItemID)
		}
	}
	return ids
}

// drawSelection picks a fresh selection: all always-show quest ids plus a
// random sample of up to questCount optional quests, excluding the given ids.
// Fewer eligible quests than the sample size yields all of them.
func (s *DailyQuestService) drawSelection(state *model.AppState, exclude map[string]bool) []string {
	selected := []string{}
	var optional []model.Quest
	for _, q := range state.Quests {
		if q.AlwaysShow {
			selected = append(selected, q.ID)
			continue
		}
		if exclude[q.ID] {
			continue
		}
		optional = append(optional, q)
	}

	rand.Shuffle(len(optional), func(i, j int) {
		optional[i], optional[j] = optional[j], optional[i]
	})
	n := s.questCount
	if n > len(optional) {
		n = len(optional)
	}
	for _, q := range optional[:n] {
		selected = append(selected, q.ID)
	}
	return selected
}

// DailyQuests returns today's visible quests for an owner, drawing a fresh
// selection when none exists for the current day. Quests completed today are
// always included even if they fell outside the stored selection; ids whose
// catalog entry was deleted drop out naturally.
func (s *DailyQuestService) DailyQuests(owner model.Owner) ([]model.Quest, error) {
	now := s.clock()
	today := dates.DayKey(now)

	// Draw and persist a new selection if today has none yet.
	err := s.store.Update(func(state *model.AppState) error {
		if ds, ok := state.DailyQuestState[owner.Key()]; ok && ds.Date == today {
			return nil
		}
		state.DailyQuestState[owner.Key()] = model.DailyQuestState{
			Date:             today,
			SelectedQuestIDs: s.drawSelection(state, nil),
			ResetCount:       0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var result []model.Quest
	s.store.View(func(state *model.AppState) {
		visible := map[string]bool{}
		for _, id := range state.DailyQuestState[owner.Key()].SelectedQuestIDs {
			visible[id] = true
		}
		for _, id := range completedTodayIDs(state, owner, now) {
			visible[id] = true
		}
		for _, q := range state.Quests {
			if visible[q.ID] {
				result = append(result, q)
			}
		}
	})
	return result, nil
}

// Reshuffle replaces today's random sample with a fresh one, keeping
// always-show quests and pinning quests already completed today. Returns
// false without changing the selection once the daily reset cap is reached.
func (s *DailyQuestService) Reshuffle(owner model.Owner) (bool, error) {
	now := s.clock()
	today := dates.DayKey(now)

	capped := false
	s.store.View(func(state *model.AppState) {
		if ds, ok := state.DailyQuestState[owner.Key()]; ok && ds.Date == today && ds.ResetCount >= s.maxResets {
			capped = true
		}
	})
	if capped {
		return false, nil
	}

	err := s.store.Update(func(state *model.AppState) error {
		completed := completedTodayIDs(state, owner, now)
		exclude := map[string]bool{}
		for _, id := range completed {
			exclude[id] = true
		}

		selected := s.drawSelection(state, exclude)
		for _, id := range completed {
			selected = append(selected, id)
		}

		resetCount := 1
		if ds, ok := state.DailyQuestState[owner.Key()]; ok && ds.Date == today {
			resetCount = ds.ResetCount + 1
		}
		state.DailyQuestState[owner.Key()] = model.DailyQuestState{
			Date:             today,
			SelectedQuestIDs: selected,
			ResetCount:       resetCount,
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RemainingResets reports how many reshuffles remain today. A missing or
// stale entry means the full allowance.
func (s *DailyQuestService) RemainingResets(owner model.Owner) int {
	today := dates.DayKey(s.clock())

	remaining := s.maxResets
	s.store.View(func(state *model.AppState) {
		if ds, ok := state.DailyQuestState[owner.Key()]; ok && ds.Date == today {
			remaining = s.maxResets - ds.ResetCount
			if remaining < 0 {
				remaining = 0
			}
		}
	})
	return remaining
}

// CompletedToday reports whether the owner completed the given quest today.
func (s *DailyQuestService) CompletedToday(owner model.Owner, questID string) bool {
	now := s.clock()
	done := false
	s.store.View(func(state *model.AppState) {
		for _, item := range state.OwnerHistory(owner) {
			if item.Kind == model.KindQuest && item.ItemID == questID && dates.SameDay(item.Date, now) {
				done = true
				return
			}
		}
	})
	return done
}

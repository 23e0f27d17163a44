package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"chorequest/internal/model"
	"chorequest/internal/store"
)

// Common errors for catalog operations.
var (
	ErrQuestNotFound  = errors.New("quest not found")
	ErrRewardNotFound = errors.New("reward not found")
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrInvalidPoints  = errors.New("point value must be positive")
)

// CatalogService manages the quest and reward catalog (the parent-side CRUD
// store). History and daily selections keep referencing deleted ids; those
// references are weak and tolerated.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

func validateQuest(q model.Quest) error {
	if strings.TrimSpace(q.Title) == "" {
		return ErrEmptyTitle
	}
	if q.Points <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPoints, q.Points)
	}
	return nil
}

func validateReward(r model.Reward) error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.Cost <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPoints, r.Cost)
	}
	return nil
}

// AddQuest appends a quest to the catalog, assigning an id when none is set.
func (s *CatalogService) AddQuest(q model.Quest) (model.Quest, error) {
	if err := validateQuest(q); err != nil {
		return model.Quest{}, err
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	err := s.store.Update(func(state *model.AppState) error {
		state.Quests = append(state.Quests, q)
		return nil
	})
	if err != nil {
		return model.Quest{}, err
	}
	return q, nil
}

// UpdateQuest replaces the catalog entry with the same id. The id itself is
// immutable identity and never changes.
func (s *CatalogService) UpdateQuest(q model.Quest) error {
	if err := validateQuest(q); err != nil {
		return err
	}
	return s.store.Update(func(state *model.AppState) error {
		for i := range state.Quests {
			if state.Quests[i].ID == q.ID {
				state.Quests[i] = q
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrQuestNotFound, q.ID)
	})
}

// DeleteQuest removes a quest from the catalog.
func (s *CatalogService) DeleteQuest(id string) error {
	return s.store.Update(func(state *model.AppState) error {
		for i := range state.Quests {
			if state.Quests[i].ID == id {
				state.Quests = append(state.Quests[:i], state.Quests[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrQuestNotFound, id)
	})
}

// Quests returns a copy of the quest catalog.
func (s *CatalogService) Quests() []model.Quest {
	var out []model.Quest
	s.store.View(func(state *model.AppState) {
		out = append([]model.Quest(nil), state.Quests...)
	})
	return out
}

// QuestByID looks up one quest.
func (s *CatalogService) QuestByID(id string) (model.Quest, bool) {
	var q model.Quest
	var ok bool
	s.store.View(func(state *model.AppState) {
		q, ok = state.QuestByID(id)
	})
	return q, ok
}

// AddReward appends a reward to the catalog, assigning an id when none is set.
func (s *CatalogService) AddReward(r model.Reward) (model.Reward, error) {
	if err := validateReward(r); err != nil {
		return model.Reward{}, err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	err := s.store.Update(func(state *model.AppState) error {
		state.Rewards = append(state.Rewards, r)
		return nil
	})
	if err != nil {
		return model.Reward{}, err
	}
	return r, nil
}

// UpdateReward replaces the catalog entry with the same id.
func (s *CatalogService) UpdateReward(r model.Reward) error {
	if err := validateReward(r); err != nil {
		return err
	}
	return s.store.Update(func(state *model.AppState) error {
		for i := range state.Rewards {
			if state.Rewards[i].ID == r.ID {
				state.Rewards[i] = r
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrRewardNotFound, r.ID)
	})
}

// DeleteReward removes a reward from the catalog.
func (s *CatalogService) DeleteReward(id string) error {
	return s.store.Update(func(state *model.AppState) error {
		for i := range state.Rewards {
			if state.Rewards[i].ID == id {
				state.Rewards = append(state.Rewards[:i], state.Rewards[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrRewardNotFound, id)
	})
}

// Rewards returns a copy of the reward catalog.
func (s *CatalogService) Rewards() []model.Reward {
	var out []model.Reward
	s.store.View(func(state *model.AppState) {
		out = append([]model.Reward(nil), state.Rewards...)
	})
	return out
}

// RewardByID looks up one reward.
func (s *CatalogService) RewardByID(id string) (model.Reward, bool) {
	var r model.Reward
	var ok bool
	s.store.View(func(state *model.AppState) {
		r, ok = state.RewardByID(id)
	})
	return r, ok
}

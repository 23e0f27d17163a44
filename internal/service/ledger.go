// Package service provides business logic over the persisted app state.
package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"chorequest/internal/model"
	"chorequest/internal/pkg/dates"
	"chorequest/internal/pkg/lock"
	"chorequest/internal/store"
)

// Common errors for ledger operations.
var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrEntryNotFound   = errors.New("history entry not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// LedgerService owns point balances and the append-only history log for every
// owner (each profile, plus the legacy profile-less ledger).
type LedgerService struct {
	store *store.Store
	locks *lock.OwnerLock
	clock func() time.Time
}

// NewLedgerService creates a new LedgerService instance.
func NewLedgerService(st *store.Store, locks *lock.OwnerLock) *LedgerService {
	return &LedgerService{
		store: st,
		locks: locks,
		clock: time.Now,
	}
}

// ledgerRef points at the balance fields of one owner inside the state blob.
type ledgerRef struct {
	current *int
	total   *int
	history *[]model.HistoryItem
}

func ledgerOf(state *model.AppState, owner model.Owner) (ledgerRef, error) {
	if owner.IsLegacy() {
		return ledgerRef{
			current: &state.CurrentPoints,
			total:   &state.TotalPointsEarned,
			history: &state.History,
		}, nil
	}
	p := state.FindProfile(owner.ProfileID())
	if p == nil {
		return ledgerRef{}, fmt.Errorf("%w: %s", ErrProfileNotFound, owner.ProfileID())
	}
	return ledgerRef{
		current: &p.CurrentPoints,
		total:   &p.TotalPointsEarned,
		history: &p.History,
	}, nil
}

// Credit appends a positive ledger entry and raises both the balance and the
// lifetime earned total.
func (s *LedgerService) Credit(owner model.Owner, amount int, kind model.HistoryKind, itemID, itemTitle string) (model.HistoryItem, error) {
	if amount <= 0 {
		return model.HistoryItem{}, ErrInvalidAmount
	}

	item := model.HistoryItem{
		ID:        uuid.NewString(),
		Date:      s.clock(),
		Kind:      kind,
		ItemID:    itemID,
		ItemTitle: itemTitle,
		PointDiff: amount,
		ProfileID: owner.ProfileID(),
	}

	err := s.locks.WithLock(owner.Key(), func() error {
		return s.store.Update(func(state *model.AppState) error {
			ref, err := ledgerOf(state, owner)
			if err != nil {
				return err
			}
			*ref.current += amount
			*ref.total += amount
			*ref.history = append([]model.HistoryItem{item}, *ref.history...)
			return nil
		})
	})
	if err != nil {
		return model.HistoryItem{}, err
	}
	return item, nil
}

// Debit appends a negative ledger entry and lowers the balance, clamped at
// zero. The entry still records the full requested amount, so history deltas
// are not guaranteed to sum to the live balance after a clamp. That
// discrepancy is a documented behavior, not a bug. The lifetime earned total
// never changes on debit.
func (s *LedgerService) Debit(owner model.Owner, amount int, kind model.HistoryKind, itemID, itemTitle string) (model.HistoryItem, error) {
	if amount <= 0 {
		return model.HistoryItem{}, ErrInvalidAmount
	}

	item := model.HistoryItem{
		ID:        uuid.NewString(),
		Date:      s.clock(),
		Kind:      kind,
		ItemID:    itemID,
		ItemTitle: itemTitle,
		PointDiff: -amount,
		ProfileID: owner.ProfileID(),
	}

	err := s.locks.WithLock(owner.Key(), func() error {
		return s.store.Update(func(state *model.AppState) error {
			ref, err := ledgerOf(state, owner)
			if err != nil {
				return err
			}
			*ref.current -= amount
			if *ref.current < 0 {
				*ref.current = 0
			}
			*ref.history = append([]model.HistoryItem{item}, *ref.history...)
			return nil
		})
	})
	if err != nil {
		return model.HistoryItem{}, err
	}
	return item, nil
}

// DeleteEntry reverses one history entry and removes it: the balance moves by
// -PointDiff, and credits also come off the lifetime earned total. Returns
// ErrEntryNotFound when the id does not exist for this owner.
func (s *LedgerService) DeleteEntry(owner model.Owner, entryID string) error {
	return s.locks.WithLock(owner.Key(), func() error {
		return s.store.Update(func(state *model.AppState) error {
			ref, err := ledgerOf(state, owner)
			if err != nil {
				return err
			}

			history := *ref.history
			idx := -1
			for i := range history {
				if history[i].ID == entryID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
			}

			item := history[idx]
			*ref.current -= item.PointDiff
			if item.PointDiff > 0 {
				*ref.total -= item.PointDiff
			}
			*ref.history = append(history[:idx], history[idx+1:]...)
			return nil
		})
	})
}

// DeleteByDate reverses and removes every entry on the given local calendar
// day (YYYY-MM-DD) in one step. Returns the number of entries removed.
func (s *LedgerService) DeleteByDate(owner model.Owner, day string) (int, error) {
	target, err := dates.ParseDay(day)
	if err != nil {
		return 0, err
	}

	removed := 0
	err = s.locks.WithLock(owner.Key(), func() error {
		return s.store.Update(func(state *model.AppState) error {
			ref, err := ledgerOf(state, owner)
			if err != nil {
				return err
			}

			var kept []model.HistoryItem
			pointsToReverse := 0
			earnedToReverse := 0
			for _, item := range *ref.history {
				if !dates.SameDay(item.Date, target) {
					kept = append(kept, item)
					continue
				}
				pointsToReverse += item.PointDiff
				if item.PointDiff > 0 {
					earnedToReverse += item.PointDiff
				}
				removed++
			}
			if removed == 0 {
				return nil
			}

			*ref.current -= pointsToReverse
			*ref.total -= earnedToReverse
			if kept == nil {
				kept = []model.HistoryItem{}
			}
			*ref.history = kept
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Balance returns the current balance and lifetime earned total for an owner.
func (s *LedgerService) Balance(owner model.Owner) (current, total int, err error) {
	s.store.View(func(state *model.AppState) {
		ref, refErr := ledgerOf(state, owner)
		if refErr != nil {
			err = refErr
			return
		}
		current, total = *ref.current, *ref.total
	})
	return current, total, err
}

// History returns a copy of the owner's history, newest entry first.
func (s *LedgerService) History(owner model.Owner) ([]model.HistoryItem, error) {
	var out []model.HistoryItem
	var err error
	s.store.View(func(state *model.AppState) {
		ref, refErr := ledgerOf(state, owner)
		if refErr != nil {
			err = refErr
			return
		}
		out = append([]model.HistoryItem(nil), *ref.history...)
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// MonthlyQuestPoints sums the quest-kind credits whose timestamp falls in the
// calendar month of ref. Reward debits and manual adjustments are excluded;
// this is the input to the level calculator.
func (s *LedgerService) MonthlyQuestPoints(owner model.Owner, ref time.Time) (int, error) {
	sum := 0
	var err error
	s.store.View(func(state *model.AppState) {
		r, refErr := ledgerOf(state, owner)
		if refErr != nil {
			err = refErr
			return
		}
		for _, item := range *r.history {
			if item.Kind == model.KindQuest && item.PointDiff > 0 && dates.SameMonth(item.Date, ref) {
				sum += item.PointDiff
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return sum, nil
}

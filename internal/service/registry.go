package service

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"chorequest/internal/model"
	"chorequest/internal/store"
)

// MaxProfileNameLen is the profile name length cap in runes.
const MaxProfileNameLen = 10

// Common errors for profile registry operations.
var (
	ErrProfileCapReached = errors.New("profile limit reached")
	ErrNameTooLong       = errors.New("profile name too long")
)

// ProfileService owns the set of child profiles and the active-profile
// pointer.
type ProfileService struct {
	store       *store.Store
	maxProfiles int
	clock       func() time.Time
}

// NewProfileService creates a new ProfileService instance. maxProfiles bounds
// how many profiles may exist concurrently.
func NewProfileService(st *store.Store, maxProfiles int) *ProfileService {
	return &ProfileService{
		store:       st,
		maxProfiles: maxProfiles,
		clock:       time.Now,
	}
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) > MaxProfileNameLen {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrNameTooLong, name, MaxProfileNameLen)
	}
	return nil
}

// Create adds a profile. The very first profile absorbs the legacy
// profile-less ledger when that ledger has a balance or history; the legacy
// fields stay in place but stop being the active data path. The new profile
// becomes active when no profile was active before. Returns
// ErrProfileCapReached at the cap.
func (s *ProfileService) Create(name, icon string) (model.Profile, error) {
	if err := validateName(name); err != nil {
		return model.Profile{}, err
	}

	profile := model.NewProfile(name, icon, s.clock())
	err := s.store.Update(func(state *model.AppState) error {
		if len(state.Profiles) >= s.maxProfiles {
			return fmt.Errorf("%w: max %d", ErrProfileCapReached, s.maxProfiles)
		}

		if len(state.Profiles) == 0 && (state.CurrentPoints > 0 || len(state.History) > 0) {
			// Migrate the legacy ledger into the first profile.
			profile.CurrentPoints = state.CurrentPoints
			profile.TotalPointsEarned = state.TotalPointsEarned
			profile.History = make([]model.HistoryItem, len(state.History))
			for i, item := range state.History {
				item.ProfileID = profile.ID
				profile.History[i] = item
			}
		}

		state.Profiles = append(state.Profiles, profile)
		if state.ActiveProfileID == "" {
			state.ActiveProfileID = profile.ID
		}
		return nil
	})
	if err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// Rename updates a profile's name and icon in place.
func (s *ProfileService) Rename(id, name, icon string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.store.Update(func(state *model.AppState) error {
		p := state.FindProfile(id)
		if p == nil {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
		}
		p.Name = name
		p.Icon = icon
		return nil
	})
}

// Delete removes a profile and its history permanently. When the deleted
// profile was active, the pointer moves to the first remaining profile, or to
// none when the registry is empty.
func (s *ProfileService) Delete(id string) error {
	return s.store.Update(func(state *model.AppState) error {
		idx := -1
		for i := range state.Profiles {
			if state.Profiles[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
		}

		state.Profiles = append(state.Profiles[:idx], state.Profiles[idx+1:]...)
		if state.ActiveProfileID == id {
			if len(state.Profiles) > 0 {
				state.ActiveProfileID = state.Profiles[0].ID
			} else {
				state.ActiveProfileID = ""
			}
		}
		return nil
	})
}

// SetActive switches the active-profile pointer. All owner-scoped operations
// apply to this profile until changed.
func (s *ProfileService) SetActive(id string) error {
	return s.store.Update(func(state *model.AppState) error {
		if state.FindProfile(id) == nil {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
		}
		state.ActiveProfileID = id
		return nil
	})
}

// Active returns a copy of the active profile, or false when none is active.
func (s *ProfileService) Active() (model.Profile, bool) {
	var out model.Profile
	found := false
	s.store.View(func(state *model.AppState) {
		if p := state.ActiveProfile(); p != nil {
			out = *p
			out.History = append([]model.HistoryItem(nil), p.History...)
			found = true
		}
	})
	return out, found
}

// ActiveOwner returns the ledger owner for the active profile, falling back
// to the legacy profile-less ledger when no profile is active.
func (s *ProfileService) ActiveOwner() model.Owner {
	owner := model.LegacyOwner()
	s.store.View(func(state *model.AppState) {
		if state.ActiveProfile() != nil {
			owner = model.ProfileOwner(state.ActiveProfileID)
		}
	})
	return owner
}

// List returns copies of all profiles in creation order.
func (s *ProfileService) List() []model.Profile {
	var out []model.Profile
	s.store.View(func(state *model.AppState) {
		out = make([]model.Profile, len(state.Profiles))
		for i, p := range state.Profiles {
			p.History = append([]model.HistoryItem(nil), p.History...)
			out[i] = p
		}
	})
	return out
}

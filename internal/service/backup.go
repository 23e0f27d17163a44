package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"chorequest/internal/model"
	"chorequest/internal/store"
)

// ErrMalformedBackup is returned when an import document is not valid JSON.
// Malformed input is the only rejected case; field-level problems fall back
// to the existing state instead.
var ErrMalformedBackup = errors.New("malformed backup document")

// BackupService handles export, import and the destructive full reset.
type BackupService struct {
	store   *store.Store
	appName string
	clock   func() time.Time
}

// NewBackupService creates a new BackupService instance. appName is used in
// export filenames.
func NewBackupService(st *store.Store, appName string) *BackupService {
	return &BackupService{
		store:   st,
		appName: appName,
		clock:   time.Now,
	}
}

// ExportFileName returns the conventional backup filename for the given day:
// <appname>-backup-<ISO-date>.json.
func (s *BackupService) ExportFileName() string {
	return fmt.Sprintf("%s-backup-%s.json", s.appName, s.clock().Format("2006-01-02"))
}

// Export produces the full-fidelity backup document: catalog, profiles,
// active pointer, daily selections and the legacy ledger fields.
func (s *BackupService) Export() ([]byte, error) {
	snap := s.store.Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	log.Info().Int("bytes", len(data)).Msg("state exported")
	return data, nil
}

// importDoc defers field decoding so each field can fall back independently.
type importDoc struct {
	Profiles          json.RawMessage `json:"profiles"`
	ActiveProfileID   json.RawMessage `json:"activeProfileId"`
	Quests            json.RawMessage `json:"quests"`
	Rewards           json.RawMessage `json:"rewards"`
	DailyQuestState   json.RawMessage `json:"dailyQuestStates"`
	CurrentPoints     json.RawMessage `json:"currentPoints"`
	TotalPointsEarned json.RawMessage `json:"totalPointsEarned"`
	History           json.RawMessage `json:"history"`
}

// mergeField decodes raw into dst, leaving dst untouched when the field is
// absent, null, or of the wrong type.
func mergeField[T any](raw json.RawMessage, dst *T) {
	if len(raw) == 0 || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// Import merges a backup document onto the current state field by field. The
// document is parsed fully before any state is written, so a malformed
// document leaves the state untouched.
func (s *BackupService) Import(data []byte) error {
	var doc importDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	err := s.store.Update(func(state *model.AppState) error {
		mergeField(doc.Profiles, &state.Profiles)
		mergeField(doc.ActiveProfileID, &state.ActiveProfileID)
		mergeField(doc.Quests, &state.Quests)
		mergeField(doc.Rewards, &state.Rewards)
		mergeField(doc.DailyQuestState, &state.DailyQuestState)
		mergeField(doc.CurrentPoints, &state.CurrentPoints)
		mergeField(doc.TotalPointsEarned, &state.TotalPointsEarned)
		mergeField(doc.History, &state.History)
		if state.DailyQuestState == nil {
			state.DailyQuestState = map[string]model.DailyQuestState{}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Int("bytes", len(data)).Msg("state imported")
	return nil
}

// Reset restores the default catalog, clears all history and profiles, and
// creates one fresh default profile as active. Destructive and unrecoverable.
func (s *BackupService) Reset() error {
	err := s.store.Update(func(state *model.AppState) error {
		fresh := model.NewState()
		profile := model.NewProfile("", "", s.clock())
		fresh.Profiles = []model.Profile{profile}
		fresh.ActiveProfileID = profile.ID
		*state = *fresh
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Msg("state reset to defaults")
	return nil
}

package model

// LegacyOwnerKey is the daily-quest-state map key used when no profile is
// active. It matches the sentinel the persisted format has always used.
const LegacyOwnerKey = "default"

// Owner identifies which ledger a mutation applies to: a specific profile or
// the legacy profile-less ledger. Callers branch on the variant explicitly
// instead of null-coalescing between the two state regions.
type Owner struct {
	profileID string
}

// ProfileOwner returns the owner variant for the given profile id.
func ProfileOwner(id string) Owner {
	return Owner{profileID: id}
}

// LegacyOwner returns the owner variant for the legacy top-level ledger.
func LegacyOwner() Owner {
	return Owner{}
}

// IsLegacy reports whether the owner is the legacy profile-less ledger.
func (o Owner) IsLegacy() bool {
	return o.profileID == ""
}

// ProfileID returns the owning profile id, or "" for the legacy ledger.
func (o Owner) ProfileID() string {
	return o.profileID
}

// Key returns the daily-quest-state map key for this owner.
func (o Owner) Key() string {
	if o.IsLegacy() {
		return LegacyOwnerKey
	}
	return o.profileID
}

// OwnerHistory returns the history list for the given owner. The returned
// slice aliases state memory; callers that escape the store lock must copy.
func (s *AppState) OwnerHistory(o Owner) []HistoryItem {
	if o.IsLegacy() {
		return s.History
	}
	if p := s.FindProfile(o.ProfileID()); p != nil {
		return p.History
	}
	return nil
}

package account

import (
	"strings"
	"sync"
)

// RecoveryState remembers which member id passed identity verification on
// this page session. The reset step only runs for that id.
type RecoveryState struct {
	mu         sync.Mutex
	verifiedID string
}

// NewRecoveryState creates an unverified state
func NewRecoveryState() *RecoveryState {
	return &RecoveryState{}
}

// VerifiedID returns the verified id, or "" before verification
func (s *RecoveryState) VerifiedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verifiedID
}

// Matches reports whether id is the verified one
func (s *RecoveryState) Matches(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return id != "" && s.verifiedID != "" && id == s.verifiedID
}

func (s *RecoveryState) set(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifiedID = id
}

// JoinState tracks the id duplicate check of the sign-up form. Editing the
// id drops the check.
type JoinState struct {
	mu        sync.Mutex
	id        string
	checkedID string
}

// NewJoinState creates an unchecked state
func NewJoinState() *JoinState {
	return &JoinState{}
}

// SetID records the id typed into the form
func (s *JoinState) SetID(id string) {
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.id {
		s.checkedID = ""
	}
	s.id = id
}

// Checked reports whether id passed the duplicate check
func (s *JoinState) Checked(id string) bool {
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	return id != "" && s.checkedID == id
}

func (s *JoinState) markChecked(id string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	if ok {
		s.checkedID = id
		return
	}
	s.checkedID = ""
}

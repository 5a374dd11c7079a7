package repository

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"auction-web/internal/account"
	"auction-web/internal/backend"
	"auction-web/internal/bidform"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// SessionStore keeps the page state of each browser session
type SessionStore interface {
	OpenBidForm(sessionID, minBidAmount string) (formID string, st *bidform.PageState)
	BidForm(sessionID, formID string) (*bidform.PageState, error)
	Recovery(sessionID string) *account.RecoveryState
	Join(sessionID string) *account.JoinState
	Jar(sessionID string) http.CookieJar
	Sweep(idleSince time.Time) int
}

// MaxBidForms caps the open bid forms of one session; opening one more
// drops the oldest.
const MaxBidForms = 16

type session struct {
	bidForms  map[string]*bidform.PageState // key: formID
	formOrder []string                      // formIDs, oldest first
	recovery  *account.RecoveryState
	join      *account.JoinState
	jar       http.CookieJar
	touched   time.Time
}

// MemoryRepo is a concurrency-safe in-memory SessionStore
type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]*session // key: sessionID
	now      func() time.Time
}

// NewMemoryRepo creates a new in-memory session store
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// session returns the session for id, creating it. Caller holds the write lock.
func (r *MemoryRepo) session(id string) *session {
	s, ok := r.sessions[id]
	if !ok {
		s = &session{bidForms: make(map[string]*bidform.PageState)}
		r.sessions[id] = s
	}
	s.touched = r.now()
	return s
}

// OpenBidForm starts a fresh bid form for a page load
func (r *MemoryRepo) OpenBidForm(sessionID, minBidAmount string) (string, *bidform.PageState) {
	formID := utils.GenerateID()
	st := bidform.NewPageState(minBidAmount)

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(sessionID)
	if len(s.formOrder) >= MaxBidForms {
		oldest := s.formOrder[0]
		s.formOrder = s.formOrder[1:]
		delete(s.bidForms, oldest)
		utils.Debug("repository: oldest bid form dropped", map[string]any{"session_id": sessionID, "form_id": oldest})
	}
	s.bidForms[formID] = st
	s.formOrder = append(s.formOrder, formID)
	return formID, st
}

// BidForm returns an open bid form
func (r *MemoryRepo) BidForm(sessionID, formID string) (*bidform.PageState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("bid form %s: session %s: %w", formID, sessionID, pageerrors.ErrPageExpired)
	}
	st, ok := s.bidForms[formID]
	if !ok {
		return nil, fmt.Errorf("bid form %s: %w", formID, pageerrors.ErrPageExpired)
	}
	s.touched = r.now()
	return st, nil
}

// Recovery returns the session's recovery state, creating it
func (r *MemoryRepo) Recovery(sessionID string) *account.RecoveryState {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(sessionID)
	if s.recovery == nil {
		s.recovery = account.NewRecoveryState()
	}
	return s.recovery
}

// Join returns the session's sign-up state, creating it
func (r *MemoryRepo) Join(sessionID string) *account.JoinState {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(sessionID)
	if s.join == nil {
		s.join = account.NewJoinState()
	}
	return s.join
}

// Jar returns the session's backend cookie jar, creating it. It is nil only
// when the jar cannot be built, and then backend calls go without one.
func (r *MemoryRepo) Jar(sessionID string) http.CookieJar {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(sessionID)
	if s.jar == nil {
		jar, err := backend.NewJar()
		if err != nil {
			utils.Error("repository: cookie jar", map[string]any{"session_id": sessionID, "error": err.Error()})
			return nil
		}
		s.jar = jar
	}
	return s.jar
}

// Sweep drops sessions untouched since idleSince and returns how many went
func (r *MemoryRepo) Sweep(idleSince time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.touched.Before(idleSince) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

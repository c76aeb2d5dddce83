package qsim

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jaskrrish/Go-QSim/internal/models/qsim"
	"golang.org/x/exp/rand"
)

// SessionManager owns one Simulator per session and serialises access to
// each of them
type SessionManager struct {
	sessions  map[uuid.UUID]*session
	mutex     sync.RWMutex
	maxQubits int
	logger    *log.Logger
}

type session struct {
	mu   sync.Mutex
	info qsim.SimSession
	sim  *Simulator
}

// NewSessionManager creates a new session manager. maxQubits is clamped to
// MaxQubits.
func NewSessionManager(maxQubits int, logger *log.Logger) *SessionManager {
	if maxQubits < 1 || maxQubits > MaxQubits {
		maxQubits = MaxQubits
	}
	if logger == nil {
		logger = log.Default()
	}

	return &SessionManager{
		sessions:  make(map[uuid.UUID]*session),
		maxQubits: maxQubits,
		logger:    logger,
	}
}

// MaxQubits returns the largest register a session may request
func (sm *SessionManager) MaxQubits() int {
	return sm.maxQubits
}

// CreateSession creates a new simulator session
func (sm *SessionManager) CreateSession(req *qsim.SessionCreateRequest) (*qsim.SimSession, error) {
	if err := req.Validate(sm.maxQubits); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}

	sim, err := NewSimulatorWithSource(req.NumQubits, rand.NewSource(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator: %w", err)
	}

	now := time.Now()
	s := &session{
		info: qsim.SimSession{
			SessionID:  uuid.New(),
			NumQubits:  req.NumQubits,
			Seeded:     req.Seed != nil,
			CreatedAt:  now,
			LastUsedAt: now,
			ExpiresAt:  now.Add(time.Duration(req.TTLMinutes) * time.Minute),
		},
		sim: sim,
	}
	if req.Seed != nil {
		s.info.Seed = seed
	}

	sm.mutex.Lock()
	sm.sessions[s.info.SessionID] = s
	sm.mutex.Unlock()

	sm.logger.Info("session created", "session", s.info.SessionID, "qubits", req.NumQubits, "seeded", s.info.Seeded)

	info := s.info
	return &info, nil
}

// GetSession returns a snapshot of a session's metadata
func (sm *SessionManager) GetSession(sessionID uuid.UUID) (*qsim.SimSession, error) {
	s, err := sm.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	info := s.info
	s.mu.Unlock()

	return &info, nil
}

// WithSimulator runs fn with exclusive access to the session's simulator
func (sm *SessionManager) WithSimulator(sessionID uuid.UUID, fn func(sim *Simulator) error) error {
	s, err := sm.lookup(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.info.Operations++
	s.info.LastUsedAt = time.Now()

	return fn(s.sim)
}

// DeleteSession discards a session and its simulator
func (sm *SessionManager) DeleteSession(sessionID uuid.UUID) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if _, exists := sm.sessions[sessionID]; !exists {
		return qsim.ErrSessionNotFound
	}

	delete(sm.sessions, sessionID)
	sm.logger.Info("session deleted", "session", sessionID)
	return nil
}

// Count returns the number of live sessions
func (sm *SessionManager) Count() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	return len(sm.sessions)
}

// CleanupExpiredSessions removes expired sessions
func (sm *SessionManager) CleanupExpiredSessions() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := time.Now()
	removed := 0

	for id, s := range sm.sessions {
		if now.After(s.info.ExpiresAt) {
			delete(sm.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		sm.logger.Debug("expired sessions removed", "count", removed)
	}

	return removed
}

// lookup finds a live session, dropping it if it has expired
func (sm *SessionManager) lookup(sessionID uuid.UUID) (*session, error) {
	sm.mutex.RLock()
	s, exists := sm.sessions[sessionID]
	sm.mutex.RUnlock()

	if !exists {
		return nil, qsim.ErrSessionNotFound
	}

	if time.Now().After(s.info.ExpiresAt) {
		sm.mutex.Lock()
		delete(sm.sessions, sessionID)
		sm.mutex.Unlock()
		return nil, qsim.ErrSessionExpired
	}

	return s, nil
}

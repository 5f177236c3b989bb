package history

import (
	"sync"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Immutable once stored.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type session struct {
	turns   []Turn
	touched time.Time
}

// Store keeps per-session conversation history in memory. Each session holds
// at most maxTurns turns (oldest dropped first). The number of sessions is
// itself capped: when a new session would exceed maxSessions, the least
// recently touched one is evicted.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*session
	maxTurns    int
	maxSessions int
}

const (
	DefaultMaxTurns    = 10
	DefaultMaxSessions = 1000
)

func NewStore(maxTurns, maxSessions int) *Store {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Store{
		sessions:    make(map[string]*session),
		maxTurns:    maxTurns,
		maxSessions: maxSessions,
	}
}

// Append adds a turn to the session, creating it if absent, and truncates the
// session to the last maxTurns turns.
func (s *Store) Append(sessionID string, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		if len(s.sessions) >= s.maxSessions {
			s.evictOldestLocked()
		}
		sess = &session{}
		s.sessions[sessionID] = sess
	}

	sess.turns = append(sess.turns, turn)
	if len(sess.turns) > s.maxTurns {
		sess.turns = sess.turns[len(sess.turns)-s.maxTurns:]
	}
	sess.touched = time.Now()
}

// Get returns a copy of the session's turns in conversation order, oldest
// first. Unknown sessions yield an empty slice.
func (s *Store) Get(sessionID string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	sess.touched = time.Now()

	out := make([]Turn, len(sess.turns))
	copy(out, sess.turns)
	return out
}

// Sessions reports how many session keys are currently held.
func (s *Store) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.touched.Before(oldest) {
			oldestID = id
			oldest = sess.touched
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

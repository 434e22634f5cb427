package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one visitor's state. mu serializes actions, so a second
// translate from the same visitor waits for the first one.
type Session struct {
	ID string

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Store holds sessions in memory. Nothing is persisted; sessions idle for
// longer than idleTTL are dropped when new ones are created.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
	now      func() time.Time
}

func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Get returns the session for id and marks it as seen.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if st.expired(sess) {
		delete(st.sessions, id)
		return nil, false
	}
	sess.lastSeen = st.now()
	return sess, true
}

// Create starts a session with default state.
func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.prune()
	sess := &Session{
		ID:       uuid.NewString(),
		state:    NewState(),
		lastSeen: st.now(),
	}
	st.sessions[sess.ID] = sess
	return sess
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
// created reports whether a new session was started.
func (st *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, ok := st.Get(id); ok {
			return sess, false
		}
	}
	return st.Create(), true
}

// Delete ends a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// lastSeen is written under st.mu only, so reading it here is safe.
func (st *Store) expired(sess *Session) bool {
	return st.idleTTL > 0 && st.now().Sub(sess.lastSeen) > st.idleTTL
}

func (st *Store) prune() {
	for id, sess := range st.sessions {
		if st.expired(sess) {
			delete(st.sessions, id)
		}
	}
}

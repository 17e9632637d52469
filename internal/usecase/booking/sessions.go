package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/barbertime/barbertime-api/internal/domain/booking"
)

// Sessões do wizard vivem em memória: uma reserva dura minutos e não
// sobrevive a restart, como a sessão de navegador que substitui.
const sessionTTL = 2 * time.Hour

type sessionEntry struct {
	sess    domain.Session
	touched time.Time
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

func (s *SessionStore) Create() (string, domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	id := uuid.NewString()
	sess := domain.NewSession()
	s.sessions[id] = sessionEntry{sess: sess, touched: s.now()}
	return id, sess
}

func (s *SessionStore) Get(id string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || s.now().Sub(entry.touched) > sessionTTL {
		return domain.Session{}, false
	}
	return entry.sess, true
}

func (s *SessionStore) Put(id string, sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = sessionEntry{sess: sess, touched: s.now()}
}

func (s *SessionStore) pruneLocked() {
	cutoff := s.now().Add(-sessionTTL)
	for id, entry := range s.sessions {
		if entry.touched.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

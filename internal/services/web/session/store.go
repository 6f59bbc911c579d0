// Package session keeps each visitor's onboarding progress in a bounded,
// expiring in-memory store keyed by a random cookie id.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/empowereconomy/empower/internal/onboarding"
	"github.com/empowereconomy/empower/internal/platform/timeouts"
	"github.com/empowereconomy/empower/internal/services/web/platform/requestmeta"
	"github.com/empowereconomy/empower/internal/services/web/platform/sessioncookie"
)

// DefaultCapacity bounds how many visitor sessions are held at once.
const DefaultCapacity = 10000

// Session is one visitor's landing and wizard state.
type Session struct {
	ID             string
	ShowOnboarding bool
	Wizard         onboarding.State
}

// HasWizard reports whether a wizard snapshot has been stored.
func (s Session) HasWizard() bool {
	return s.Wizard.Variant != ""
}

// Store is a bounded map of sessions whose entries expire after an idle TTL.
type Store struct {
	cache *expirable.LRU[string, Session]
}

// NewStore builds a store. Non-positive arguments select the defaults.
func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = timeouts.SessionIdle
	}
	return &Store{cache: expirable.NewLRU[string, Session](capacity, nil, ttl)}
}

// Get returns a live session.
func (s *Store) Get(id string) (Session, bool) {
	if id == "" {
		return Session{}, false
	}
	return s.cache.Get(id)
}

// Put stores sess under its id and restarts its idle timer.
func (s *Store) Put(sess Session) {
	if sess.ID == "" {
		return
	}
	s.cache.Add(sess.ID, sess)
}

// Delete drops a session.
func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Manager binds the store to the session cookie.
type Manager struct {
	store  *Store
	policy requestmeta.SchemePolicy
	newID  func() string
}

// NewManager returns a cookie-backed session manager.
func NewManager(store *Store, policy requestmeta.SchemePolicy) *Manager {
	if store == nil {
		store = NewStore(0, 0)
	}
	return &Manager{store: store, policy: policy, newID: uuid.NewString}
}

// Policy returns the scheme policy used for cookies.
func (m *Manager) Policy() requestmeta.SchemePolicy {
	return m.policy
}

// Load returns the request's session, or an empty one when the cookie is
// missing or the entry expired. Loading refreshes the idle timer.
func (m *Manager) Load(r *http.Request) Session {
	id, ok := sessioncookie.Read(r)
	if !ok {
		return Session{}
	}
	sess, ok := m.store.Get(id)
	if !ok {
		return Session{}
	}
	m.store.Put(sess)
	return sess
}

// Save stores sess, assigning an id and setting the cookie when it is new.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, sess Session) Session {
	if strings.TrimSpace(sess.ID) == "" {
		sess.ID = m.newID()
	}
	if current, ok := sessioncookie.Read(r); !ok || current != sess.ID {
		sessioncookie.Write(w, r, sess.ID, m.policy)
	}
	m.store.Put(sess)
	return sess
}

// Discard forgets the session and expires the cookie.
func (m *Manager) Discard(w http.ResponseWriter, r *http.Request, sess Session) {
	if sess.ID != "" {
		m.store.Delete(sess.ID)
	}
	sessioncookie.Clear(w, r, m.policy)
}

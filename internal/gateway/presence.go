package gateway

import (
	"sync"
	"time"

	"github.com/s21platform/messaging-service/internal/model"
)

type presenceEntry struct {
	session  *session
	snapshot model.UserSnapshot
	lastSeen time.Time
}

// Presence is the process-wide registry of live connections. It holds one
// entry per user: a later connection for the same user overwrites the
// earlier one, so only the most recent socket is addressable. In a
// multi-process deployment this map is the scaling boundary and would have to
// move to a shared store.
type Presence struct {
	mu      sync.RWMutex
	entries map[string]*presenceEntry
}

func NewPresence() *Presence {
	return &Presence{
		entries: make(map[string]*presenceEntry),
	}
}

func (p *Presence) Register(userID string, s *session, snapshot model.UserSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries[userID] = &presenceEntry{
		session:  s,
		snapshot: snapshot,
		lastSeen: time.Now(),
	}
}

// Unregister removes the entry only when it still points at the given
// session; the teardown of an overwritten connection must not evict its
// replacement. Reports whether the entry was removed.
func (p *Presence) Unregister(userID string, s *session) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[userID]
	if !ok || entry.session != s {
		return false
	}

	delete(p.entries, userID)
	return true
}

func (p *Presence) Lookup(userID string) (*session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.entries[userID]
	if !ok {
		return nil, false
	}

	return entry.session, true
}

func (p *Presence) IsOnline(userID string) bool {
	_, ok := p.Lookup(userID)
	return ok
}

func (p *Presence) ListConnected() []model.OnlineUser {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]model.OnlineUser, 0, len(p.entries))
	for userID, entry := range p.entries {
		out = append(out, model.OnlineUser{
			UserID:    userID,
			Nickname:  entry.snapshot.Nickname,
			AvatarURL: entry.snapshot.AvatarURL,
			LastSeen:  entry.lastSeen,
		})
	}

	return out
}

// sessions snapshots every live connection for fan-out to all users.
func (p *Presence) sessions() []*session {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*session, 0, len(p.entries))
	for _, entry := range p.entries {
		out = append(out, entry.session)
	}

	return out
}

package resumes

import (
	"sync"
	"sync/atomic"
	"time"

	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
)

// DefaultSessionTTL is how long an untouched session is kept.
const DefaultSessionTTL = 30 * time.Minute

// Session holds the document of one identity. Edits are applied one at a
// time under the session lock.
type Session struct {
	mu       sync.Mutex
	doc      model.ResumeDocument
	lastUsed atomic.Int64
}

func newSession(doc model.ResumeDocument, now time.Time) *Session {
	s := &Session{doc: doc}
	s.touch(now)
	return s
}

func (s *Session) touch(now time.Time) { s.lastUsed.Store(now.UnixNano()) }

func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastUsed.Load()))
}

// Snapshot returns the current document.
func (s *Session) Snapshot() model.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Update replaces the document with fn(doc) and returns the new value.
func (s *Session) Update(fn func(model.ResumeDocument) model.ResumeDocument) model.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = fn(s.doc)
	return s.doc
}

// Replace swaps in doc wholesale.
func (s *Session) Replace(doc model.ResumeDocument) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

// Registry maps identities to their sessions. A session unused for longer
// than the TTL has ended: lookups no longer see it and it is pruned on the
// next Start. Its unsaved edits are gone.
type Registry struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	ttl       time.Duration
	now       func() time.Time
	lastPrune time.Time
}

// NewRegistry constructs an empty registry. A non-positive ttl falls back to
// DefaultSessionTTL.
func NewRegistry(ttl time.Duration, now func() time.Time) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Registry{sessions: make(map[string]*Session), ttl: ttl, now: now, lastPrune: now()}
}

// Lookup returns the live session of identity and marks it used.
func (r *Registry) Lookup(identity string) (*Session, bool) {
	now := r.now()
	r.mu.RLock()
	s, ok := r.sessions[identity]
	r.mu.RUnlock()
	if !ok || s.idleSince(now) > r.ttl {
		return nil, false
	}
	s.touch(now)
	return s, true
}

// Start stores a session seeded with doc unless a live one exists. created
// reports whether the returned session is the new one.
func (r *Registry) Start(identity string, doc model.ResumeDocument) (s *Session, created bool) {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if now.Sub(r.lastPrune) >= r.pruneEvery() {
		r.prune(now)
	}
	if existing, ok := r.sessions[identity]; ok && existing.idleSince(now) <= r.ttl {
		existing.touch(now)
		return existing, false
	}
	s = newSession(doc, now)
	r.sessions[identity] = s
	return s, true
}

// Len reports the number of tracked sessions, expired ones not yet pruned
// included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) pruneEvery() time.Duration {
	return min(r.ttl, time.Minute)
}

func (r *Registry) prune(now time.Time) {
	r.lastPrune = now
	dropped := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > r.ttl {
			delete(r.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		telemetry.Info("resume.sessions_pruned", map[string]any{"dropped": dropped, "live": len(r.sessions)})
	}
}

package contact

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry gives every browser session its own Controller and tears idle
// ones down.
type Registry struct {
	newController func() *Controller
	ttl           time.Duration
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry expires sessions idle for longer than ttl. newController is
// called once per session.
func NewRegistry(ttl time.Duration, newController func() *Controller) *Registry {
	return &Registry{
		newController: newController,
		ttl:           ttl,
		now:           time.Now,
		sessions:      make(map[string]*session),
	}
}

// New mints a session id with a fresh controller.
func (r *Registry) New() (string, *Controller) {
	id := uuid.NewString()
	return id, r.Get(id)
}

// Get returns the controller for id, creating it if needed.
func (r *Registry) Get(id string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = &session{ctrl: r.newController()}
		r.sessions[id] = s
	}
	s.lastSeen = r.now()
	return s.ctrl
}

// Lookup returns the controller for id without creating one.
func (r *Registry) Lookup(id string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.ctrl, true
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes and drops sessions idle for longer than the TTL.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	var stale []*Controller
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			stale = append(stale, s.ctrl)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	return len(stale)
}

// Run sweeps periodically until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if n := r.Sweep(t); n > 0 {
				log.Printf("contact: expired %d idle sessions", n)
			}
		}
	}
}

// Close tears down every session, cancelling pending resets.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.ctrl.Close()
	}
}

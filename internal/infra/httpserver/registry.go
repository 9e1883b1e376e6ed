package httpserver

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/visionlane/vision-board/internal/application/traversal"
)

// ErrUnknownSession means the id does not name a live traversal session.
var ErrUnknownSession = errors.New("unknown session")

// liveSession is one in-progress traversal. The mutex serializes the
// answer/back/read actions on it; independent sessions never contend.
type liveSession struct {
	mu       sync.Mutex
	state    *traversal.State
	lastSeen time.Time
}

// Registry holds live traversal sessions in memory. Sessions only reach
// the database once completed; an abandoned one is swept after idleTTL.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*liveSession
	engine   *traversal.Engine
	idleTTL  time.Duration
}

func NewRegistry(engine *traversal.Engine) *Registry {
	r := &Registry{
		sessions: make(map[string]*liveSession),
		engine:   engine,
		idleTTL:  2 * time.Hour,
	}
	go r.cleanup()
	return r
}

// Create starts a new traversal at the first question.
func (r *Registry) Create() (string, *liveSession) {
	id := uuid.New().String()
	s := &liveSession{
		state:    traversal.NewState(r.engine),
		lastSeen: time.Now(),
	}
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id, s
}

func (r *Registry) Get(id string) (*liveSession, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrUnknownSession
	}
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
	return s, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mu.Lock()
		for id, s := range r.sessions {
			s.mu.Lock()
			stale := now.Sub(s.lastSeen) > r.idleTTL
			s.mu.Unlock()
			if stale {
				delete(r.sessions, id)
			}
		}
		r.mu.Unlock()
	}
}

package session

import "sync"

// Registry owns the one-session-per-guild invariant. All creation and
// removal goes through it; two concurrent creations for the same guild can
// never both succeed.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the guild's session, creating one in the connecting
// state if none exists. created reports whether this call made it.
func (r *Registry) GetOrCreate(guildID string) (sess *Session, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[guildID]; ok {
		return s, false
	}

	s := newSession(guildID, r)
	r.sessions[guildID] = s
	return s, true
}

// Get returns the guild's session or nil. Never creates.
func (r *Registry) Get(guildID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[guildID]
}

// Remove detaches the guild's session. Removing an absent guild is a no-op.
func (r *Registry) Remove(guildID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, guildID)
}

// Info is a point-in-time view of one session, used by the status server.
type Info struct {
	GuildID string `json:"guild_id"`
	State   State  `json:"state"`
	Title   string `json:"title,omitempty"`
}

// Snapshot returns the current sessions. The result is a copy.
func (r *Registry) Snapshot() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		info := Info{GuildID: s.guildID, State: s.State()}
		if t := s.Track(); t != nil {
			info.Title = t.Title
		}
		infos = append(infos, info)
	}
	return infos
}

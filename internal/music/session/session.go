// Package session coordinates voice playback per guild: at most one session
// per guild, a small state machine around it, and exactly-once teardown of
// the underlying voice connection.
package session

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"euplay-bot/internal/music/resolver"
	"euplay-bot/internal/music/voice"
)

type State string

const (
	StateConnecting State = "connecting"
	StatePlaying    State = "playing"
	StatePaused     State = "paused"
	StateTerminated State = "terminated"
)

var (
	ErrEmptyQuery      = errors.New("empty play query")
	ErrNotInVoice      = errors.New("requester is not in a voice channel")
	ErrAlreadyPlaying  = errors.New("a track is already playing on this server")
	ErrNoActiveSession = errors.New("no active playback session")
	ErrNotPlaying      = errors.New("playback is not running")
	ErrNotPaused       = errors.New("playback is not paused")
)

// Session is the per-guild playback unit. It is created in the connecting
// state, moves to playing once audio starts, and terminates exactly once:
// on explicit stop, on the player's idle signal, or on a connect/resolve
// failure. Entering the terminated state removes it from the registry.
type Session struct {
	guildID  string
	registry *Registry

	mu     sync.Mutex
	state  State
	track  *resolver.Track
	conn   voice.Connection
	player voice.Player

	teardown sync.Once
}

func newSession(guildID string, registry *Registry) *Session {
	return &Session{
		guildID:  guildID,
		registry: registry,
		state:    StateConnecting,
	}
}

func (s *Session) GuildID() string {
	return s.guildID
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Track returns the current track, or nil while still connecting.
func (s *Session) Track() *resolver.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.track
}

// Pause suspends audio. Sessions still connecting are not yet addressable,
// so a pause racing the connect phase is rejected, not queued.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateConnecting, StateTerminated:
		return ErrNoActiveSession
	case StatePaused:
		return ErrNotPlaying
	}

	if err := s.player.Pause(); err != nil {
		return err
	}
	s.state = StatePaused
	log.Info().Str("guild", s.guildID).Msg("playback paused")
	return nil
}

// Resume restarts audio on a paused session.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateConnecting, StateTerminated:
		return ErrNoActiveSession
	case StatePlaying:
		return ErrNotPaused
	}

	if err := s.player.Resume(); err != nil {
		return err
	}
	s.state = StatePlaying
	log.Info().Str("guild", s.guildID).Msg("playback resumed")
	return nil
}

// Stop tears the session down. Repeated stops are safe; the transport is
// disconnected once.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state == StateConnecting || s.state == StateTerminated {
		s.mu.Unlock()
		return ErrNoActiveSession
	}
	s.mu.Unlock()

	s.terminate()
	return nil
}

// attach hands the session its resolved track and live transport handles.
// Called once, while still connecting.
func (s *Session) attach(track *resolver.Track, conn voice.Connection, player voice.Player) {
	s.mu.Lock()
	s.track = track
	s.conn = conn
	s.player = player
	s.mu.Unlock()
}

// setPlaying completes the connecting phase. A no-op if the session was
// already terminated (e.g. the track ended before the transition).
func (s *Session) setPlaying() {
	s.mu.Lock()
	if s.state == StateConnecting {
		s.state = StatePlaying
	}
	s.mu.Unlock()
}

// terminate releases the player and transport exactly once and removes the
// session from the registry. Both the idle signal and explicit stop land here.
func (s *Session) terminate() {
	s.teardown.Do(func() {
		s.mu.Lock()
		s.state = StateTerminated
		player, conn := s.player, s.conn
		s.mu.Unlock()

		if player != nil {
			player.Stop()
		}
		if conn != nil {
			if err := conn.Disconnect(); err != nil {
				log.Warn().Err(err).Str("guild", s.guildID).Msg("voice disconnect failed")
			}
		}

		s.registry.Remove(s.guildID)
		log.Info().Str("guild", s.guildID).Msg("playback session terminated")
	})
}

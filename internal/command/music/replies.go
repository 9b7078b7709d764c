package music

import (
	"errors"

	"euplay-bot/internal/music/session"
)

// replyForPlayError maps a failed play request to its one-line reply.
func replyForPlayError(err error) string {
	switch {
	case errors.Is(err, session.ErrEmptyQuery):
		return "Please provide a song name or link."
	case errors.Is(err, session.ErrNotInVoice):
		return "Join a voice channel first."
	case errors.Is(err, session.ErrAlreadyPlaying):
		return "Already playing a track. Use !stop first."
	default:
		// resolution and connection failures alike
		return "Failed to play song."
	}
}

// replyForControlError maps a failed pause/resume/stop to its one-line reply.
func replyForControlError(err error) string {
	switch {
	case errors.Is(err, session.ErrNoActiveSession):
		return "Not connected to any VC."
	case errors.Is(err, session.ErrNotPlaying):
		return "Nothing is playing."
	case errors.Is(err, session.ErrNotPaused):
		return "Playback is not paused."
	default:
		return "Failed to control playback."
	}
}

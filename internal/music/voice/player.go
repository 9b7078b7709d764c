package voice

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"layeh.com/gopus"

	"euplay-bot/internal/music/resolver"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// discordPlayer streams one track's PCM into a voice connection as opus
// frames. Pause parks the frame loop on a condition variable so the
// connection stays up with no audio flowing.
type discordPlayer struct {
	vc *discordgo.VoiceConnection

	mu      sync.Mutex
	cond    *sync.Cond
	paused  bool
	stopped bool
	idle    func()

	stop     chan struct{}
	stopOnce sync.Once
}

func newDiscordPlayer(vc *discordgo.VoiceConnection) *discordPlayer {
	p := &discordPlayer{
		vc:   vc,
		stop: make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *discordPlayer) OnIdle(fn func()) {
	p.mu.Lock()
	p.idle = fn
	p.mu.Unlock()
}

func (p *discordPlayer) Play(track *resolver.Track) error {
	stream, cleanup, err := openPCMStream(track.StreamURL)
	if err != nil {
		return fmt.Errorf("failed to open PCM stream: %w", err)
	}

	go p.run(stream, cleanup, track.Title)
	return nil
}

func (p *discordPlayer) Pause() error {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
	return p.vc.Speaking(false)
}

func (p *discordPlayer) Resume() error {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
	p.cond.Broadcast()
	return p.vc.Speaking(true)
}

func (p *discordPlayer) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()
		p.cond.Broadcast()
		close(p.stop)
	})
}

// run drives the frame loop and fires the idle callback when the stream
// ends on its own rather than by Stop.
func (p *discordPlayer) run(stream io.ReadCloser, cleanup func(), title string) {
	defer cleanup()
	defer stream.Close()

	if err := p.streamFrames(stream); err != nil {
		log.Error().Err(err).Str("track", title).Msg("playback error")
	}

	p.mu.Lock()
	idle := p.idle
	natural := !p.stopped
	p.mu.Unlock()

	if natural && idle != nil {
		idle()
	}
}

func (p *discordPlayer) streamFrames(stream io.Reader) error {
	encoder, err := gopus.NewEncoder(sampleRate, channels, gopus.Audio)
	if err != nil {
		return fmt.Errorf("encoder error: %w", err)
	}

	if err := p.vc.Speaking(true); err != nil {
		return fmt.Errorf("speaking error: %w", err)
	}
	defer p.vc.Speaking(false)

	pcmBuf := make([]byte, frameSize*channels*2)
	intBuf := make([]int16, frameSize*channels)

	for {
		p.mu.Lock()
		for p.paused && !p.stopped {
			p.cond.Wait()
		}
		stopped := p.stopped
		p.mu.Unlock()
		if stopped {
			return nil
		}

		if _, err := io.ReadFull(stream, pcmBuf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil // end of track
			}
			return fmt.Errorf("read error: %w", err)
		}

		for i := range intBuf {
			intBuf[i] = int16(binary.LittleEndian.Uint16(pcmBuf[i*2 : i*2+2]))
		}

		opus, err := encoder.Encode(intBuf, frameSize, len(pcmBuf))
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}

		select {
		case p.vc.OpusSend <- opus:
		case <-p.stop:
			return nil
		}
	}
}

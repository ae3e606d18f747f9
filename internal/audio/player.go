// Package audio plays the game's sound cues and background music through
// beep. All sounds are synthesised; nothing is loaded from disk.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-punchman/internal/config"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

// Player mixes cue sounds over a looping tune. It is itself a beep.Streamer
// so the speaker pulls from it directly; every method is safe to call from
// the game loop while the speaker goroutine streams.
type Player struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	rate    beep.SampleRate
	logger  *log.Logger
	mixer   *beep.Mixer
	music   *beep.Ctrl
	tune    *tune
	out     beep.Streamer
	muted   bool
	started bool
}

// New builds a player. No sound is produced until Start.
// A nil logger discards log output.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	rate := beep.SampleRate(cfg.SampleRate)

	p := &Player{
		cfg:    cfg,
		rate:   rate,
		logger: logger,
		mixer:  &beep.Mixer{},
		tune:   newTune(rate, cfg.MusicBPM),
	}
	p.music = &beep.Ctrl{Streamer: p.tune}
	p.mixer.Add(p.music)
	p.out = &effects.Volume{Streamer: p.mixer, Base: 2, Volume: cfg.Volume}
	return p
}

// Start opens the audio device and begins playback. A disabled config makes
// it a no-op. Failure is returned so the caller can carry on without sound.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p)
	p.started = true
	p.logger.Debug("audio started", "rate", int(p.rate), "bpm", p.cfg.MusicBPM)
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	started := p.started
	p.started = false
	p.mu.Unlock()

	if started {
		speaker.Clear()
		speaker.Close()
	}
}

// Play queues the sound for a cue. It never blocks on the device.
func (p *Player) Play(c world.Cue) {
	s := soundFor(c, p.rate)
	if s == nil {
		p.logger.Warn("no sound for cue", "cue", c)
		return
	}
	p.mu.Lock()
	p.mixer.Add(s)
	p.mu.Unlock()
}

// SetMuted pauses or resumes the music. Effects keep playing.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.music.Paused = muted
}

// SetDanger switches the music to double tempo.
func (p *Player) SetDanger(danger bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tune.danger = danger
}

// Playing returns the number of sounds in the mix, music included.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream fills samples with the current mix.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.Stream(samples)
}

// Err always returns nil; the mix never fails.
func (p *Player) Err() error {
	return nil
}

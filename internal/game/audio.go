package game

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/glyph-particles/internal/config"
	"github.com/iburimskiy/glyph-particles/internal/sound"
)

// cuePlayer plays phase-change cues on the default audio device. Without a
// device it stays silent.
type cuePlayer struct {
	sr     beep.SampleRate
	ready  bool
	muted  bool
	logger *slog.Logger
}

func newCuePlayer(logger *slog.Logger) *cuePlayer {
	p := &cuePlayer{sr: beep.SampleRate(config.SampleRate), logger: logger}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		logger.Warn("audio disabled", "err", err)
		return p
	}
	p.ready = true
	return p
}

func (p *cuePlayer) play(cue sound.Cue) {
	if !p.ready || p.muted {
		return
	}
	speaker.Play(sound.New(cue, p.sr, config.FadeDuration, config.CueVolume))
}

func (p *cuePlayer) toggleMute() {
	p.muted = !p.muted
	if p.muted && p.ready {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.logger.Info("audio cues", "muted", p.muted)
}

func (p *cuePlayer) close() {
	if !p.ready {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

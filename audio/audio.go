// Package audio plays short generated cues for game events. Everything
// is synthesized from sine tones; there are no sound assets. A nil
// *Player is valid and silent, so callers never branch on audio state.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. Failure is expected on headless
// systems; callers treat a nil player as muted and keep going.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{ready: true}, nil
}

// tone queues freq hertz for the given duration.
func (p *Player) tone(freq float64, d time.Duration) {
	if p == nil || !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// seq queues several tones back to back as one streamer.
func (p *Player) seq(freqs []float64, each time.Duration) {
	if p == nil || !p.ready {
		return
	}
	streamers := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return
		}
		streamers = append(streamers, beep.Take(sampleRate.N(each), sine))
	}
	speaker.Play(beep.Seq(streamers...))
}

// Reveal is the tick played when a safe region finishes expanding.
func (p *Player) Reveal() {
	p.tone(880, 40*time.Millisecond)
}

// Flag marks placing or removing a flag.
func (p *Player) Flag() {
	p.tone(660, 40*time.Millisecond)
}

// Detonate is the losing cue.
func (p *Player) Detonate() {
	p.seq([]float64{220, 110, 55}, 120*time.Millisecond)
}

// Fanfare is the winning cue.
func (p *Player) Fanfare() {
	p.seq([]float64{523.25, 659.25, 783.99, 1046.5}, 90*time.Millisecond)
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

// wave selects an oscillator shape.
type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// sweep is an enveloped oscillator whose pitch slides linearly from one
// frequency to another over its length.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	shape    wave
	length   int
	attack   int
	release  int
	pos      int
	phase    float64
	seed     uint32
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration, shape wave) *sweep {
	length := rate.N(d)
	return &sweep{
		rate:    rate,
		from:    from,
		to:      to,
		shape:   shape,
		length:  length,
		attack:  rate.N(5 * time.Millisecond),
		release: length / 4,
		seed:    0x9e3779b9,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.length)
		freq := s.from + (s.to-s.from)*progress

		var v float64
		switch s.shape {
		case waveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case waveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2*s.phase - 1
		case waveNoise:
			s.seed = s.seed*1664525 + 1013904223
			v = float64(s.seed)/float64(math.MaxUint32)*2 - 1
		}

		v *= s.envelope()
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope is a linear attack and release around a flat sustain.
func (s *sweep) envelope() float64 {
	if s.attack > 0 && s.pos < s.attack {
		return float64(s.pos) / float64(s.attack)
	}
	if left := s.length - s.pos; s.release > 0 && left < s.release {
		return float64(left) / float64(s.release)
	}
	return 1
}

// chime is a plain sine note of fixed length.
func chime(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Only fails above the Nyquist frequency
		return newSweep(rate, freq, freq, d, waveSine)
	}
	return beep.Take(rate.N(d), sine)
}

// gain scales a streamer; level is linear, 1 leaves it unchanged.
func gain(s beep.Streamer, level float64) beep.Streamer {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}

// soundFor synthesises the effect for a cue. Every sound is finite.
func soundFor(c world.Cue, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case world.CueJump:
		return gain(newSweep(rate, 300, 640, 120*ms, waveSquare), 0.25)
	case world.CueAttack:
		return gain(newSweep(rate, 0, 0, 80*ms, waveNoise), 0.35)
	case world.CueHit:
		return gain(beep.Mix(
			newSweep(rate, 160, 90, 110*ms, waveSaw),
			newSweep(rate, 0, 0, 60*ms, waveNoise),
		), 0.4)
	case world.CueHurt:
		return gain(newSweep(rate, 420, 140, 220*ms, waveSaw), 0.35)
	case world.CueCoin:
		return gain(beep.Seq(
			chime(rate, 987.77, 70*ms),
			chime(rate, 1318.51, 180*ms),
		), 0.3)
	case world.CueGem:
		return gain(beep.Seq(
			chime(rate, 659.25, 60*ms),
			chime(rate, 830.61, 60*ms),
			chime(rate, 987.77, 60*ms),
			chime(rate, 1318.51, 200*ms),
		), 0.3)
	case world.CuePortal:
		return gain(newSweep(rate, 200, 1200, 500*ms, waveSine), 0.35)
	case world.CueSwitch:
		return gain(newSweep(rate, 1000, 1000, 40*ms, waveSquare), 0.2)
	case world.CueDeath:
		return gain(beep.Seq(
			newSweep(rate, 392, 392, 150*ms, waveSquare),
			newSweep(rate, 311.13, 311.13, 150*ms, waveSquare),
			newSweep(rate, 261.63, 130, 400*ms, waveSquare),
		), 0.25)
	}
	return nil
}

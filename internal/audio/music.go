package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// bassline is the looping background tune, one eighth note per step.
// Zero is a rest.
var bassline = []float64{
	110.00, 0, 130.81, 110.00, 164.81, 146.83, 130.81, 98.00,
	110.00, 0, 130.81, 164.81, 196.00, 164.81, 146.83, 123.47,
}

// tune streams the bassline forever. In danger mode the steps are half as
// long, so the tune plays at double tempo.
type tune struct {
	rate   beep.SampleRate
	step   int // samples per step at normal tempo
	danger bool

	note  int
	pos   int // sample position inside the current step
	phase float64
}

func newTune(rate beep.SampleRate, bpm int) *tune {
	if bpm <= 0 {
		bpm = 112
	}
	eighth := time.Minute / time.Duration(bpm*2)
	return &tune{rate: rate, step: rate.N(eighth)}
}

// stepLen returns the length of one step at the current tempo.
func (t *tune) stepLen() int {
	if t.danger {
		return t.step / 2
	}
	return t.step
}

func (t *tune) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		length := t.stepLen()
		if t.pos >= length {
			t.pos = 0
			t.note = (t.note + 1) % len(bassline)
		}

		var v float64
		if freq := bassline[t.note]; freq > 0 {
			// Square with a per-note decay
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
			v *= 0.12 * math.Exp(-3*float64(t.pos)/float64(length))
			t.phase += freq / float64(t.rate)
			t.phase -= math.Floor(t.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tune) Err() error { return nil }

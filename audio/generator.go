package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/flanker/status"
)

// RumbleGenerator generates the explosion rumble: decaying noise over a falling tone
type RumbleGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewRumbleGenerator creates a rumble generator
func NewRumbleGenerator(sr beep.SampleRate, seed int64) *RumbleGenerator {
	return &RumbleGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, long tail
		envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*2.5)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Tone falls from 90Hz toward 30Hz
		freq := 30 + 60*math.Exp(-t*3)
		tone := 0.4 * math.Sin(2*math.Pi*freq*t)

		sample := envelope * (0.35*noise + tone) * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error {
	return nil
}

// EngineGenerator generates a continuous hum whose pitch follows Frequency
// Frequency may be changed from any goroutine while streaming
type EngineGenerator struct {
	sr        beep.SampleRate
	phase     float64
	Frequency status.AtomicFloat
	Volume    status.AtomicFloat
}

// NewEngineGenerator creates a hum at the given initial pitch
func NewEngineGenerator(sr beep.SampleRate, freq float64) *EngineGenerator {
	g := &EngineGenerator{sr: sr}
	g.Frequency.Set(freq)
	g.Volume.Set(0.08)
	return g
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	freq := g.Frequency.Get()
	vol := g.Volume.Get()
	step := freq / float64(g.sr)
	for i := range samples {
		// Sawtooth plus sub-octave sine for a propeller drone
		saw := 2*g.phase - 1
		sub := math.Sin(math.Pi * g.phase)
		sample := vol * (0.6*saw + 0.4*sub)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += step
		if g.phase >= 1 {
			g.phase -= math.Floor(g.phase)
		}
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}

// engineFrequency maps a speed ratio in [0, 1] to the hum pitch
func engineFrequency(ratio, base, span float64) float64 {
	ratio = math.Max(0, math.Min(ratio, 1))
	return base + span*ratio
}

// rumbleSamples is the length of one explosion sound
func rumbleSamples(sr beep.SampleRate, d time.Duration) int {
	return sr.N(d)
}

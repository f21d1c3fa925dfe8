// Package audio synthesizes short gameplay cues and plays them through the
// system speaker. Playback is fire-and-forget and best-effort: when the
// output device is unavailable every call degrades to a silent no-op.
package audio

import (
	"math"
	"time"

	"github.com/arcadehop/hopper/internal/core"
)

const (
	sampleRate = 44100

	attack = 4 * time.Millisecond

	// Release is a fraction of the tone length so short blips stay snappy
	// and longer cues fade out instead of clicking.
	releaseFraction = 0.25

	gain = 0.4
)

// oscillator generates raw mono waveform samples at unity gain.
func oscillator(wave core.Waveform, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch wave {
		case core.WaveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case core.WaveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case core.WaveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * sampleRate)
	releaseSamples := int(releaseSec * sampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// durationToSamples converts a duration to a sample count.
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * sampleRate)
}

// synthesize renders a tone into a mono sample buffer with envelope and
// output gain applied.
func synthesize(t core.Tone) []float64 {
	samples := durationToSamples(t.Duration)
	if samples <= 0 {
		return nil
	}

	buf := oscillator(t.Wave, t.Freq, samples)
	applyEnvelope(buf, attack.Seconds(), t.Duration.Seconds()*releaseFraction)
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

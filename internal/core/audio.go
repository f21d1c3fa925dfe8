package core

import "time"

// Waveform selects the oscillator shape for a synthesized tone.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
)

// String returns a human-readable name for the waveform.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	default:
		return "unknown"
	}
}

// Tone describes a single synthesized audio cue.
type Tone struct {
	Freq     float64 // Frequency in Hz
	Wave     Waveform
	Duration time.Duration
}

// ToneSink receives fire-and-forget audio cues from game logic.
// Implementations must never block gameplay; playback failures are
// swallowed, not surfaced. Overlapping cues may ring simultaneously.
type ToneSink interface {
	// PlayTone schedules a tone for playback and returns immediately.
	PlayTone(t Tone)

	// Resume attempts to (re)activate the output resource. The host audio
	// system may start suspended; games call this on session start.
	Resume()
}

// AudioAware is implemented by games that can emit audio cues.
// The platform attaches a sink where a local speaker exists; games must
// behave identically with no sink attached.
type AudioAware interface {
	AttachTones(sink ToneSink)
}

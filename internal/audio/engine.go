package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/arcadehop/hopper/internal/core"
)

// Engine implements core.ToneSink on top of the beep speaker. A single
// mixer owns the output stream; each cue is synthesized into a buffer and
// added to the mixer, so overlapping cues ring simultaneously.
type Engine struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	failed bool
}

// New creates an engine. The speaker is not opened until Resume; games
// trigger that on session start so a host that begins suspended still
// gets a second chance.
func New() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Resume opens the speaker if it is not already running. Failures are
// remembered so playback calls stay cheap no-ops, never surfaced.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ready || e.failed {
		return
	}

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Millisecond*50)); err != nil {
		e.failed = true
		return
	}

	speaker.Play(e.mixer)
	e.ready = true
}

// PlayTone schedules a tone for playback and returns immediately.
// With no usable output this is a no-op.
func (e *Engine) PlayTone(t core.Tone) {
	e.mu.Lock()
	ready := e.ready
	e.mu.Unlock()

	if !ready {
		return
	}

	buf := synthesize(t)
	if len(buf) == 0 {
		return
	}

	speaker.Lock()
	e.mixer.Add(&bufferStreamer{buf: buf})
	speaker.Unlock()
}

// Close stops all playback. The beep speaker has no close; draining the
// mixer silences the output.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.ready = false
}

var _ core.ToneSink = (*Engine)(nil)

// bufferStreamer streams a pre-rendered mono buffer to both channels and
// then reports drained, letting the mixer drop it.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error {
	return nil
}

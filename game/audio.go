package game

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// ImpactPlayer plays the wall-hit sound. The sample is synthesized once at
// startup (a short decaying thump) instead of loaded from disk, so there is
// nothing to fail at runtime; impact events carry their own volume.
type ImpactPlayer struct {
	ctx *audio.Context
	pcm []byte
}

// NewImpactPlayer sets up the audio context and synthesizes the impact
// sample.
func NewImpactPlayer() *ImpactPlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &ImpactPlayer{ctx: ctx, pcm: thudPCM()}
}

// Ready reports whether at least one playable sound exists.
func (p *ImpactPlayer) Ready() bool {
	return p != nil && len(p.pcm) > 0
}

// Play fires one impact at the given volume. Overlapping impacts each get
// their own player and mix naturally.
func (p *ImpactPlayer) Play(volume float64) {
	if !p.Ready() {
		return
	}
	player := p.ctx.NewPlayerFromBytes(p.pcm)
	player.SetVolume(clamp(volume, 0, 1))
	player.Play()
}

// thudPCM synthesizes the impact sample: a sine thump with a fast pitch
// drop and exponential decay, as 16-bit little-endian stereo.
func thudPCM() []byte {
	const (
		duration  = 0.09
		baseFreq  = 165.0
		freqDrop  = 140.0
		decayRate = 42.0
		peak      = 0.8
	)

	n := int(duration * sampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		freq := baseFreq - freqDrop*(t/duration)
		phase += 2 * math.Pi * freq / sampleRate
		v := math.Sin(phase) * math.Exp(-t*decayRate) * peak
		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(sample))
	}
	return buf
}

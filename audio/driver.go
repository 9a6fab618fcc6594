package audio

import (
	"sync"
	"sync/atomic"

	cfg "github.com/automoto/retrofolio/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Driver plays sound events fire-and-forget. The audio context is created on the first
// audible event; if the platform refuses, the driver disables itself and stays silent.
type Driver struct {
	mu       sync.Mutex
	ctx      *audio.Context
	disabled bool
	sfxCache map[cfg.SoundID][]byte
	muted    atomic.Bool
}

func NewDriver(muted bool) *Driver {
	d := &Driver{sfxCache: make(map[cfg.SoundID][]byte)}
	d.muted.Store(muted)
	return d
}

// Play starts the effect for id. Muted drivers, SoundNone and a disabled backend are no-ops.
func (d *Driver) Play(id cfg.SoundID) {
	if id == cfg.SoundNone || d.muted.Load() {
		return
	}
	pcm := d.samples(id)
	if len(pcm) == 0 {
		return
	}
	ctx := d.context()
	if ctx == nil {
		return
	}
	ctx.NewPlayerFromBytes(pcm).Play()
}

func (d *Driver) Muted() bool {
	return d.muted.Load()
}

func (d *Driver) SetMuted(muted bool) {
	d.muted.Store(muted)
}

// ToggleMute flips the mute flag and returns the new value
func (d *Driver) ToggleMute() bool {
	for {
		old := d.muted.Load()
		if d.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Preload synthesizes every configured effect so the first play has no delay.
func (d *Driver) Preload() {
	for id := range cfg.Sound.Tones {
		d.samples(id)
	}
}

// samples returns the cached PCM for id, synthesizing it on first use.
func (d *Driver) samples(id cfg.SoundID) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	if pcm, ok := d.sfxCache[id]; ok {
		return pcm
	}
	pcm := Synthesize(id)
	d.sfxCache[id] = pcm
	return pcm
}

func (d *Driver) context() (ctx *audio.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disabled {
		return nil
	}
	if d.ctx != nil {
		return d.ctx
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn("audio unavailable, continuing without sound", "err", r)
			d.disabled = true
			ctx = nil
		}
	}()
	if existing := audio.CurrentContext(); existing != nil {
		d.ctx = existing
	} else {
		d.ctx = audio.NewContext(cfg.Audio.SampleRate)
	}
	return d.ctx
}

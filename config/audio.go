package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundCoin
	SoundBump
	SoundBreak
	SoundPowerup
	SoundDie
)

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCoin:
		return "coin"
	case SoundBump:
		return "bump"
	case SoundBreak:
		return "break"
	case SoundPowerup:
		return "powerup"
	case SoundDie:
		return "die"
	}
	return "none"
}

// Waveform selects the oscillator shape for a tone
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// Tone is one oscillator voice of a sound effect. Frequency glides exponentially from StartHz
// to EndHz and gain decays exponentially to Floor over Duration.
type Tone struct {
	Wave     Waveform
	StartHz  float64
	EndHz    float64
	Delay    float64 // seconds after the effect starts
	Duration float64 // seconds
	Gain     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64
	Floor      float64 // gain the decay envelope ends at
	NoiseSeed  int64
}

// SoundConfig maps sound IDs to their synthesized voices
type SoundConfig struct {
	Tones map[SoundID][]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     0.8,
		Floor:      0.01,
		NoiseSeed:  7,
	}

	Sound = SoundConfig{
		Tones: map[SoundID][]Tone{
			SoundJump: {
				{Wave: WaveSquare, StartHz: 200, EndHz: 400, Duration: 0.1, Gain: 0.3},
			},
			SoundCoin: {
				{Wave: WaveSquare, StartHz: 987.77, EndHz: 987.77, Duration: 0.05, Gain: 0.2},
				{Wave: WaveSquare, StartHz: 1318.51, EndHz: 1318.51, Delay: 0.05, Duration: 0.1, Gain: 0.2},
			},
			SoundBump: {
				{Wave: WaveSquare, StartHz: 150, EndHz: 80, Duration: 0.05, Gain: 0.3},
			},
			SoundBreak: {
				{Wave: WaveNoise, Duration: 0.1, Gain: 0.3},
			},
			SoundPowerup: {
				{Wave: WaveSquare, StartHz: 523.25, EndHz: 523.25, Delay: 0.0, Duration: 0.08, Gain: 0.2},
				{Wave: WaveSquare, StartHz: 659.25, EndHz: 659.25, Delay: 0.1, Duration: 0.08, Gain: 0.2},
				{Wave: WaveSquare, StartHz: 783.99, EndHz: 783.99, Delay: 0.2, Duration: 0.08, Gain: 0.2},
				{Wave: WaveSquare, StartHz: 1046.50, EndHz: 1046.50, Delay: 0.3, Duration: 0.08, Gain: 0.2},
			},
			SoundDie: {
				{Wave: WaveSquare, StartHz: 400, EndHz: 100, Duration: 0.5, Gain: 0.3},
			},
		},
	}
}

package systems

import (
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer receives sound events. Implementations must not block.
type SoundPlayer interface {
	Play(sound cfg.SoundID)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// FlushAudio hands queued sounds to the player in the order they were raised.
func FlushAudio(e *ecs.ECS, player SoundPlayer) {
	audioData := GetOrCreateAudio(e)
	if player != nil {
		for _, soundID := range audioData.PendingSFX {
			player.Play(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// NewUpdateAudio creates the system that drains the sound queue at the end of a tick
func NewUpdateAudio(player SoundPlayer) ecs.System {
	return func(e *ecs.ECS) {
		FlushAudio(e, player)
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

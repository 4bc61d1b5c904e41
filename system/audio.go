package system

import (
	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
)

// AudioSystem forwards sound cue requests to the audio player
// A nil player (audio disabled, no output device) makes it a no-op
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) engine.System {
	return &AudioSystem{world: world}
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return constant.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventSoundRequest {
		return
	}
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	player := s.world.Resources.Audio.Player
	if player == nil || !player.IsRunning() {
		return
	}
	player.Play(payload.Sound)
}

func (s *AudioSystem) Update() {}

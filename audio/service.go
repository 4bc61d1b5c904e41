package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/config"
	"github.com/lixenwraith/card-grove/core"
)

// speakerBuffer is the output latency target
const speakerBuffer = 100 * time.Millisecond

// Service owns the speaker and a shared mixer, synthesizing each cue
// on demand. When the output device cannot be opened the service runs
// in silent mode: Play succeeds but produces no sound
type Service struct {
	mu         sync.Mutex
	mixer      *beep.Mixer
	rate       beep.SampleRate
	log        *zap.Logger
	running    atomic.Bool
	silentMode atomic.Bool
}

// NewService creates an uninitialized audio service
func NewService(cfg config.AudioConfig, log *zap.Logger) *Service {
	return &Service{
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(cfg.SampleRate),
		log:   log,
	}
}

// Start opens the speaker and attaches the mixer
// A device failure is not fatal: the service degrades to silent mode
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(speakerBuffer)); err != nil {
		s.log.Warn("audio device unavailable, running silent", zap.Error(err))
		s.silentMode.Store(true)
		s.running.Store(true)
		return nil
	}

	speaker.Play(s.mixer)
	s.running.Store(true)
	return nil
}

// Stop silences the mixer and marks the service stopped
// beep has no speaker close; clearing the mixer is the shutdown
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return
	}
	if !s.silentMode.Load() {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	}
	s.running.Store(false)
}

// IsRunning reports whether the service accepts cues
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

// Play synthesizes and queues the cue, returning false when the
// service is stopped or the cue is unknown
func (s *Service) Play(sound core.SoundType) bool {
	if !s.running.Load() {
		return false
	}
	if s.silentMode.Load() {
		return true
	}

	streamer := streamerFor(sound, s.rate)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// Package audio provides sound effect playback. Like the meshes, every
// sound is synthesized at runtime; there are no audio assets.
package audio

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager handles audio playback for the game.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64
	muted        bool

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer

	// Thrust loop control
	thrustCtrl *beep.Ctrl
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.thrustCtrl = nil
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// SetMuted silences all playback without losing volume settings.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// PlayCollect plays the fuel cell pickup cue: a quick rising two-tone.
func (m *Manager) PlayCollect() {
	m.playTone(660, 70*time.Millisecond)
	m.playTone(990, 110*time.Millisecond)
}

// PlayImpact plays the asteroid collision cue: a short low tone.
func (m *Manager) PlayImpact() {
	m.playTone(110, 160*time.Millisecond)
}

// PlayWin plays the batch-cleared fanfare.
func (m *Manager) PlayWin() {
	m.playTone(523, 120*time.Millisecond)
	m.playTone(659, 120*time.Millisecond)
	m.playTone(784, 240*time.Millisecond)
}

// PlayLose plays the game-over cue.
func (m *Manager) PlayLose() {
	m.playTone(220, 200*time.Millisecond)
	m.playTone(165, 320*time.Millisecond)
}

// SetThrusting starts or pauses the engine hum loop.
func (m *Manager) SetThrusting(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.thrustCtrl == nil {
		tone, err := generators.SinTone(m.sampleRate, 55)
		if err != nil {
			return
		}
		m.thrustCtrl = &beep.Ctrl{Streamer: tone, Paused: true}
		vol := &effects.Volume{
			Streamer: m.thrustCtrl,
			Base:     2,
			Volume:   -2,
		}
		m.sfxMixer.Add(vol)
	}
	speaker.Lock()
	m.thrustCtrl.Paused = !on
	speaker.Unlock()
}

// playTone queues a fixed-length sine tone on the SFX mixer.
func (m *Manager) playTone(freq int, d time.Duration) {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume * m.sfxVolLevel
	if m.muted {
		vol = 0
	}
	sr := m.sampleRate
	m.mu.RUnlock()

	if !initialized {
		return
	}

	tone, err := generators.SinTone(sr, freq)
	if err != nil {
		return
	}
	streamer := &effects.Volume{
		Streamer: beep.Take(sr.N(d), tone),
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   vol <= 0,
	}

	speaker.Lock()
	m.sfxMixer.Add(streamer)
	speaker.Unlock()
}

// volumeToDb converts a 0-1 volume to a decibel-style exponent for
// effects.Volume with Base 2.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return gomath.Log2(vol) * 2
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

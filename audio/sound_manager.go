// Package audio plays short sound cues for game events.
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/parry-123/fish-eating-game/config"
)

// SoundManager is a game.Sink that turns game events into tones. The speaker
// pulls samples on its own goroutine, so the mixer is guarded by mu.
type SoundManager struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64

	active    bool
	lastScore int
}

// NewSoundManager creates a silent manager. Call Initialize to open the device.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
	}
}

// Initialize opens the audio device and starts streaming the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	if sm.active {
		sm.mu.Unlock()
		return nil
	}
	sm.mu.Unlock()

	if err := speaker.Init(sm.rate, sm.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(sm)

	sm.mu.Lock()
	sm.active = true
	sm.mu.Unlock()
	return nil
}

// Start returns a manager for cfg, or nil when audio is off. A missing audio
// device is logged and the game carries on silently.
func Start(cfg config.AudioConfig, muted bool) *SoundManager {
	if !cfg.Enabled || muted {
		return nil
	}
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		slog.Warn("audio disabled", "error", err)
		return nil
	}
	return sm
}

// Close stops all cues and releases the device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	wasActive := sm.active
	sm.active = false
	sm.mixer.Clear()
	sm.mu.Unlock()

	if wasActive {
		speaker.Close()
	}
}

// Stream mixes the queued cues; silence when none are playing.
func (sm *SoundManager) Stream(samples [][2]float64) (n int, ok bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	clear(samples)
	if sm.mixer.Len() > 0 {
		sm.mixer.Stream(samples)
	}
	return len(samples), true
}

func (sm *SoundManager) Err() error {
	return nil
}

// Pending returns the number of cues still playing.
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}

func (sm *SoundManager) play(s beep.Streamer) {
	if s == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.active {
		return
	}
	sm.mixer.Add(withVolume(s, sm.volume))
}

// ScoreChanged plays the eat cue when the score went up. Its pitch follows
// the size level.
func (sm *SoundManager) ScoreChanged(score, sizeLevel int) {
	gained := score > sm.lastScore
	sm.lastScore = score
	if gained {
		sm.play(EatCue(sm.rate, sizeLevel))
	}
}

func (sm *SoundManager) GameOver(int) {
	sm.play(GameOverCue(sm.rate))
}

func (sm *SoundManager) PauseChanged(paused bool) {
	sm.play(PauseCue(sm.rate, paused))
}

func (sm *SoundManager) SessionReset() {
	sm.lastScore = 0
}

// Cues

const (
	eatNote      = 70 * time.Millisecond
	gameOverNote = 180 * time.Millisecond
	pauseNote    = 60 * time.Millisecond
)

// tone returns a sine of freq Hz lasting d.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		// Frequencies at or above Nyquist; play nothing for this note.
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), sine)
}

// EatCue is a rising two-note blip, a semitone higher per size level.
func EatCue(sr beep.SampleRate, sizeLevel int) beep.Streamer {
	base := 440 * math.Pow(2, float64(min(sizeLevel, 24))/12)
	return beep.Seq(tone(sr, base, eatNote), tone(sr, base*1.5, eatNote))
}

// GameOverCue is a falling three-note phrase.
func GameOverCue(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 392, gameOverNote),
		tone(sr, 330, gameOverNote),
		tone(sr, 262, 2*gameOverNote),
	)
}

// PauseCue is a single short note, lower when pausing.
func PauseCue(sr beep.SampleRate, paused bool) beep.Streamer {
	if paused {
		return tone(sr, 220, pauseNote)
	}
	return tone(sr, 330, pauseNote)
}

// withVolume scales s linearly by vol. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/absorb/config"
)

// SoundManager mixes sound effects into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool

	// closed when the most recent game-over sound finishes
	gameOverDone chan struct{}
}

// NewSoundManager creates a sound manager from the audio section of cfg.
// The speaker is not opened until Initialize.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.MasterVolume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Absorb plays the absorption blip for an object of the given radius.
func (sm *SoundManager) Absorb(radius float32) {
	sm.play(CreateAbsorbSound(sm.rate, sm.volume, radius))
}

// RoundCleared plays the round-cleared arpeggio.
func (sm *SoundManager) RoundCleared() {
	sm.play(CreateRoundSound(sm.rate, sm.volume))
}

// GameOver plays the game-over buzz. Use Wait to let it finish before exit.
func (sm *SoundManager) GameOver() {
	done := make(chan struct{})
	sm.mu.Lock()
	sm.gameOverDone = done
	sm.mu.Unlock()

	sm.play(beep.Seq(CreateGameOverSound(sm.rate, sm.volume), beep.Callback(func() {
		close(done)
	})))
}

// Wait blocks until the last game-over sound has finished or timeout elapses.
// Returns immediately if none was played or the speaker is not open.
func (sm *SoundManager) Wait(timeout time.Duration) {
	sm.mu.Lock()
	done := sm.gameOverDone
	ready := sm.initialized
	sm.mu.Unlock()

	if done == nil || !ready {
		return
	}

	select {
	case <-done:
	case <-time.After(timeout):
	}
}

package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/absorb/config"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the number of samples produced
// and the peak absolute amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for _, v := range buf[j] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream did not drain")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, testRate)
			n, peak := drain(t, osc)
			if n != testRate.N(100*time.Millisecond) {
				t.Errorf("samples = %d, want %d", n, testRate.N(100*time.Millisecond))
			}
			if peak > 1.0 {
				t.Errorf("peak %v exceeds 1.0", peak)
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %v, want ±1", i, v)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	osc := NewOscillator(0, 50*time.Millisecond, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := make([][2]float64, 4)
	env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at start of attack", samples[0][0])
	}
	if samples[3][0] <= samples[1][0] {
		t.Errorf("attack not rising: %v then %v", samples[1][0], samples[3][0])
	}
}

func TestAbsorbPitch(t *testing.T) {
	if AbsorbPitch(10) != absorbHighHz {
		t.Errorf("AbsorbPitch(10) = %v, want %v", AbsorbPitch(10), absorbHighHz)
	}
	if AbsorbPitch(60) != absorbLowHz {
		t.Errorf("AbsorbPitch(60) = %v, want %v", AbsorbPitch(60), absorbLowHz)
	}
	if AbsorbPitch(5) != AbsorbPitch(10) || AbsorbPitch(500) != AbsorbPitch(60) {
		t.Error("pitch not clamped outside radius range")
	}
	if AbsorbPitch(20) <= AbsorbPitch(40) {
		t.Error("smaller objects should sound higher")
	}
}

func TestEffectsDrain(t *testing.T) {
	tests := []struct {
		name    string
		s       beep.Streamer
		wantDur time.Duration
	}{
		{"absorb", CreateAbsorbSound(testRate, 0.5, 25), absorbDuration},
		{"round", CreateRoundSound(testRate, 0.5), 3 * roundNoteDuration},
		{"game over", CreateGameOverSound(testRate, 0.5), gameOverDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(t, tt.s)
			want := testRate.N(tt.wantDur)
			if n < want-2 || n > want+2 {
				t.Errorf("samples = %d, want about %d", n, want)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CreateAbsorbSound(testRate, 0, 25))
	if peak != 0 {
		t.Errorf("peak = %v, want 0 at zero volume", peak)
	}
}

func TestSoundManagerUninitializedIsQuiet(t *testing.T) {
	sm := NewSoundManager(config.Default().Audio)

	// None of these may block or touch the speaker before Initialize.
	sm.Absorb(20)
	sm.RoundCleared()
	sm.GameOver()

	start := time.Now()
	sm.Wait(time.Second)
	if time.Since(start) > 100*time.Millisecond {
		t.Error("Wait blocked without an open speaker")
	}
	sm.Cleanup()
}

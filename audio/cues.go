package audio

import (
	"fmt"
	"sync"
	"time"

	"grid-games/game"
	"grid-games/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues plays short tones on game events. Until Init succeeds every cue is a
// no-op, so the game runs the same without a sound device.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences pending cues.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// FoodEaten plays a short high chirp.
func (c *Cues) FoodEaten(types.Point) {
	if s, err := Tone(880, 60*time.Millisecond); err == nil {
		c.play(s)
	}
}

// GameOver plays a falling two-note buzz. Quitting is silent.
func (c *Cues) GameOver(reason game.OverReason) {
	if reason == game.OverQuit {
		return
	}
	high, err := Tone(220, 150*time.Millisecond)
	if err != nil {
		return
	}
	low, err := Tone(110, 250*time.Millisecond)
	if err != nil {
		return
	}
	c.play(beep.Seq(high, low))
}

// Tone returns a sine wave of freq Hz lasting d.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %vHz: %w", freq, err)
	}
	return beep.Take(sampleRate.N(d), sine), nil
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

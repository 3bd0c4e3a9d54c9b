package game

import (
	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/systems"
)

// FishView is everything a renderer needs to draw one fish.
type FishView struct {
	X, Y    float32
	Size    float32
	Heading float32
	Color   uint8 // palette index; ignored for the player
	Player  bool
}

// Renderer receives the draw calls of one tick.
type Renderer interface {
	Clear(width, height float32)
	DrawFish(f FishView)
}

// Presenter is implemented by renderers that buffer a frame and need to know
// when it is complete.
type Presenter interface {
	Present()
}

// InputSource reports the latest player input.
type InputSource interface {
	KeyDown(k systems.Key) bool
	// Pointer returns the active touch/mouse target in canvas coordinates.
	Pointer() (components.Position, bool)
}

// Sink receives display events (score line, overlays, sound cues).
type Sink interface {
	ScoreChanged(score, sizeLevel int)
	GameOver(finalScore int)
	PauseChanged(paused bool)
	SessionReset()
}

// Sinks fans events out to several sinks in order.
type Sinks []Sink

func (s Sinks) ScoreChanged(score, sizeLevel int) {
	for _, sink := range s {
		sink.ScoreChanged(score, sizeLevel)
	}
}

func (s Sinks) GameOver(finalScore int) {
	for _, sink := range s {
		sink.GameOver(finalScore)
	}
}

func (s Sinks) PauseChanged(paused bool) {
	for _, sink := range s {
		sink.PauseChanged(paused)
	}
}

func (s Sinks) SessionReset() {
	for _, sink := range s {
		sink.SessionReset()
	}
}

// Frame is one completed tick's draw list.
type Frame struct {
	Width, Height float32
	Fish          []FishView // player last
}

// FrameBuffer is a double-buffered recording Renderer. Frontends draw
// Frame() every display frame, so a paused game keeps its last picture.
type FrameBuffer struct {
	back, front Frame
}

// NewFrameBuffer creates an empty frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Clear starts recording a new frame.
func (fb *FrameBuffer) Clear(width, height float32) {
	fb.back.Width = width
	fb.back.Height = height
	fb.back.Fish = fb.back.Fish[:0]
}

// DrawFish records a fish into the frame being built.
func (fb *FrameBuffer) DrawFish(f FishView) {
	fb.back.Fish = append(fb.back.Fish, f)
}

// Present publishes the frame being built.
func (fb *FrameBuffer) Present() {
	fb.front, fb.back = fb.back, fb.front
}

// Frame returns the last presented frame. The Fish slice is reused after the
// next Present and must not be retained.
func (fb *FrameBuffer) Frame() Frame {
	return fb.front
}

type nopRenderer struct{}

func (nopRenderer) Clear(float32, float32) {}
func (nopRenderer) DrawFish(FishView)      {}

type nopInput struct{}

func (nopInput) KeyDown(systems.Key) bool             { return false }
func (nopInput) Pointer() (components.Position, bool) { return components.Position{}, false }

type nopSink struct{}

func (nopSink) ScoreChanged(int, int) {}
func (nopSink) GameOver(int)          {}
func (nopSink) PauseChanged(bool)     {}
func (nopSink) SessionReset()         {}

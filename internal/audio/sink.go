package audio

import (
	"log/slog"

	"hmactors/internal/vmath"
)

//go:generate go tool mockgen -destination=mock_audio/mock_sink.go -package=mock_audio . Sink

// Sink plays sound cues. Implementations must not block.
type Sink interface {
	Play(cue Cue, pos vmath.Vec3f)
}

// LogSink writes every cue to a logger at debug level.
type LogSink struct {
	Logger *slog.Logger
}

// Play implements Sink.
func (s LogSink) Play(cue Cue, pos vmath.Vec3f) {
	s.Logger.Debug("sfx", "cue", cue.String(), "x", pos.X, "y", pos.Y, "z", pos.Z)
}

// Event is one recorded cue.
type Event struct {
	Cue Cue
	Pos vmath.Vec3f
}

// Recorder keeps every cue it is asked to play.
type Recorder struct {
	Events []Event
}

// Play implements Sink.
func (r *Recorder) Play(cue Cue, pos vmath.Vec3f) {
	r.Events = append(r.Events, Event{Cue: cue, Pos: pos})
}

// Count returns how many times cue was played.
func (r *Recorder) Count(cue Cue) int {
	n := 0
	for _, e := range r.Events {
		if e.Cue == cue {
			n++
		}
	}
	return n
}

// Counts returns per-cue totals keyed by cue name.
func (r *Recorder) Counts() map[string]int {
	out := make(map[string]int)
	for _, e := range r.Events {
		out[e.Cue.String()]++
	}
	return out
}

// Reset drops recorded events.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

type multi []Sink

func (m multi) Play(cue Cue, pos vmath.Vec3f) {
	for _, s := range m {
		s.Play(cue, pos)
	}
}

// Multi fans each cue out to every sink.
func Multi(sinks ...Sink) Sink { return multi(sinks) }

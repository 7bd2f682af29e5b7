package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var walk = Clip{Name: "walk", Frames: 4}

func TestOnceReportsDoneAfterReachingEnd(t *testing.T) {
	var s SkelAnime
	s.PlayOnce(walk)

	var done []bool
	for range 5 {
		done = append(done, s.Update())
	}
	// Frames 1, 2, 3 are reached on ticks 1-3; tick 4 starts on the end frame.
	assert.Equal(t, []bool{false, false, false, true, true}, done)
	assert.Equal(t, 3.0, s.CurFrame)
}

func TestLoopWrapsAndNeverReportsDone(t *testing.T) {
	var s SkelAnime
	s.PlayLoop(walk)
	for range 4 {
		assert.False(t, s.Update())
	}
	assert.Equal(t, 0.0, s.CurFrame)
}

func TestFrozenAnimationHolds(t *testing.T) {
	var s SkelAnime
	s.Change(walk, 0, 3, 0, Once, 0)
	for range 10 {
		assert.False(t, s.Update())
	}
	assert.True(t, s.IsFrame(3))
}

func TestPartialRange(t *testing.T) {
	grab := Clip{Name: "grab", Frames: 26}
	var s SkelAnime
	s.Change(grab, 1, 0, 12, Once, 0)
	n := 0
	for !s.Update() {
		n++
	}
	assert.Equal(t, 12, n)
	assert.True(t, s.IsFrame(12))
}

func TestMorphHoldsFrameCounter(t *testing.T) {
	var s SkelAnime
	s.MorphToLoop(walk, 2)
	s.Update()
	s.Update()
	assert.Equal(t, 0.0, s.CurFrame)
	s.Update()
	assert.Equal(t, 1.0, s.CurFrame)

	s.Change(walk, 1, 0, 3, Loop, -4)
	s.Update()
	assert.Equal(t, 1.0, s.CurFrame, "taper does not hold frames")
}

// Package anim is a frame counter standing in for skeletal animation. It keeps
// the timing behaviours key off (current frame, end-of-clip) without poses.
package anim

// Mode selects what happens at the end frame.
type Mode uint8

const (
	Loop Mode = iota
	Once
)

// Clip is an animation with a fixed number of frames.
type Clip struct {
	Name   string
	Frames int
}

// LastFrame is the index of the clip's final frame.
func (c Clip) LastFrame() float64 { return float64(c.Frames - 1) }

// SkelAnime plays one clip at a time.
type SkelAnime struct {
	Clip       Clip
	CurFrame   float64
	StartFrame float64
	EndFrame   float64
	PlaySpeed  float64
	Mode       Mode
	// Morph counts down the blend ticks left from the previous clip. The
	// frame counter holds still while it runs.
	Morph float64
}

// Change starts clip c. A negative morph blends without holding the frame
// counter.
func (s *SkelAnime) Change(c Clip, speed, start, end float64, mode Mode, morph float64) {
	s.Clip = c
	s.PlaySpeed = speed
	s.StartFrame = start
	s.EndFrame = end
	s.CurFrame = start
	s.Mode = mode
	s.Morph = max(morph, 0)
}

// PlayOnce plays c from the start, stopping on its last frame.
func (s *SkelAnime) PlayOnce(c Clip) {
	s.Change(c, 1, 0, c.LastFrame(), Once, 0)
}

// PlayLoop plays c from the start, repeating.
func (s *SkelAnime) PlayLoop(c Clip) {
	s.Change(c, 1, 0, c.LastFrame(), Loop, 0)
}

// MorphToLoop blends into c over morph ticks, then loops it.
func (s *SkelAnime) MorphToLoop(c Clip, morph float64) {
	s.Change(c, 1, 0, c.LastFrame(), Loop, morph)
}

// MorphToPlayOnce blends into c over morph ticks, then plays it once.
func (s *SkelAnime) MorphToPlayOnce(c Clip, morph float64) {
	s.Change(c, 1, 0, c.LastFrame(), Once, morph)
}

// IsFrame reports whether the current frame is f.
func (s *SkelAnime) IsFrame(f float64) bool { return s.CurFrame == f }

// Update advances one tick. In Once mode it reports true on every tick that
// starts on the end frame; in Loop mode it never reports true.
func (s *SkelAnime) Update() bool {
	if s.Morph > 0 {
		s.Morph--
		return false
	}
	length := float64(s.Clip.Frames)
	if s.Mode == Once {
		if s.CurFrame == s.EndFrame {
			return true
		}
		s.CurFrame += s.PlaySpeed
		if (s.CurFrame-s.EndFrame)*s.PlaySpeed > 0 {
			s.CurFrame = s.EndFrame
		} else if s.CurFrame < 0 {
			s.CurFrame += length
		} else if length > 0 && s.CurFrame >= length {
			s.CurFrame -= length
		}
		return false
	}
	s.CurFrame += s.PlaySpeed
	if s.CurFrame < 0 {
		s.CurFrame += length
	} else if length > 0 && s.CurFrame >= length {
		s.CurFrame -= length
	}
	return false
}

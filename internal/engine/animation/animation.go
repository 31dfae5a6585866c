// Package animation owns skeletal animation state. The scene graph
// stores Pose and Instance values opaquely inside skeletal-mesh nodes
// and never inspects them; only this package and the renderer read
// their contents.
package animation

import (
	"github.com/Faultbox/vantage/pkg/math"
)

// LoopMode controls what happens when playback reaches the end of a clip.
type LoopMode uint8

const (
	LoopNone LoopMode = iota // Clamp to the last frame and stop
	LoopRepeat
	LoopPingPong
)

// Pose is the output of sampling a clip: one matrix per joint, in model
// space. Consumers upload it as-is.
type Pose struct {
	Joints []math.Mat4
}

// NewPose returns an identity pose for the given joint count.
func NewPose(jointCount int) *Pose {
	p := &Pose{Joints: make([]math.Mat4, jointCount)}
	for i := range p.Joints {
		p.Joints[i] = math.Identity()
	}
	return p
}

// PosKey is a position keyframe.
type PosKey struct {
	TimeMs   float32
	Position math.Vec3
}

// RotKey is a rotation keyframe.
type RotKey struct {
	TimeMs   float32
	Rotation math.Quat
}

// ScaleKey is a scale keyframe.
type ScaleKey struct {
	TimeMs float32
	Scale  math.Vec3
}

// JointTrack holds the keyframes animating a single joint.
type JointTrack struct {
	PosKeys   []PosKey
	RotKeys   []RotKey
	ScaleKeys []ScaleKey
}

// Clip is a named animation: one track per joint plus a duration.
type Clip struct {
	Name       string
	DurationMs float32
	Tracks     []JointTrack
}

// Instance is the playback state of one clip on one node.
type Instance struct {
	Clip    *Clip
	TimeMs  float32
	Speed   float32
	Loop    LoopMode
	Playing bool

	// PingPong direction: +1 forward, -1 backward
	direction float32
}

// NewInstance creates a paused instance at time zero.
func NewInstance(clip *Clip) *Instance {
	return &Instance{
		Clip:      clip,
		Speed:     1,
		Loop:      LoopRepeat,
		direction: 1,
	}
}

// Play starts or resumes playback.
func (in *Instance) Play() { in.Playing = true }

// Pause stops playback, keeping the current time.
func (in *Instance) Pause() { in.Playing = false }

// Stop stops playback and rewinds to time zero.
func (in *Instance) Stop() {
	in.Playing = false
	in.TimeMs = 0
	in.direction = 1
}

// SetLoopMode changes the loop behavior.
func (in *Instance) SetLoopMode(mode LoopMode) { in.Loop = mode }

// Advance moves playback forward by dt milliseconds (scaled by Speed)
// and writes the sampled joint matrices into pose. A paused instance
// leaves the pose untouched.
func (in *Instance) Advance(dtMs float32, pose *Pose) {
	if !in.Playing || in.Clip == nil || in.Clip.DurationMs <= 0 {
		return
	}

	if in.direction == 0 {
		in.direction = 1
	}
	in.TimeMs += dtMs * in.Speed * in.direction

	dur := in.Clip.DurationMs
	switch in.Loop {
	case LoopNone:
		if in.TimeMs >= dur {
			in.TimeMs = dur
			in.Playing = false
		}
		if in.TimeMs < 0 {
			in.TimeMs = 0
			in.Playing = false
		}
	case LoopRepeat:
		for in.TimeMs >= dur {
			in.TimeMs -= dur
		}
		for in.TimeMs < 0 {
			in.TimeMs += dur
		}
	case LoopPingPong:
		if in.TimeMs >= dur {
			in.TimeMs = dur
			in.direction = -1
		}
		if in.TimeMs < 0 {
			in.TimeMs = 0
			in.direction = 1
		}
	}

	in.Sample(pose)
}

// Sample writes the joint matrices for the current time into pose.
func (in *Instance) Sample(pose *Pose) {
	if in.Clip == nil || pose == nil {
		return
	}
	n := len(in.Clip.Tracks)
	if n > len(pose.Joints) {
		n = len(pose.Joints)
	}
	for i := 0; i < n; i++ {
		track := &in.Clip.Tracks[i]
		tr := math.Transform{
			Position: InterpolatePosKeys(track.PosKeys, in.TimeMs),
			Rotation: InterpolateRotKeys(track.RotKeys, in.TimeMs),
			Scale:    InterpolateScaleKeys(track.ScaleKeys, in.TimeMs),
		}
		pose.Joints[i] = tr.Mat4()
	}
}

// InterpolatePosKeys interpolates position keyframes at the given time.
func InterpolatePosKeys(keys []PosKey, timeMs float32) math.Vec3 {
	if len(keys) == 0 {
		return math.Vec3{}
	}
	prev, next := surroundingKeys(len(keys), func(i int) float32 { return keys[i].TimeMs }, timeMs)
	if prev == next {
		return keys[prev].Position
	}

	k0, k1 := keys[prev], keys[next]
	t := keyFraction(k0.TimeMs, k1.TimeMs, timeMs)
	return k0.Position.Lerp(k1.Position, t)
}

// InterpolateRotKeys interpolates rotation keyframes at the given time.
func InterpolateRotKeys(keys []RotKey, timeMs float32) math.Quat {
	if len(keys) == 0 {
		return math.QuatIdentity()
	}
	prev, next := surroundingKeys(len(keys), func(i int) float32 { return keys[i].TimeMs }, timeMs)
	if prev == next {
		return keys[prev].Rotation
	}

	k0, k1 := keys[prev], keys[next]
	t := keyFraction(k0.TimeMs, k1.TimeMs, timeMs)
	return k0.Rotation.Slerp(k1.Rotation, t)
}

// InterpolateScaleKeys interpolates scale keyframes at the given time.
func InterpolateScaleKeys(keys []ScaleKey, timeMs float32) math.Vec3 {
	if len(keys) == 0 {
		return math.Vec3{X: 1, Y: 1, Z: 1}
	}
	prev, next := surroundingKeys(len(keys), func(i int) float32 { return keys[i].TimeMs }, timeMs)
	if prev == next {
		return keys[prev].Scale
	}

	k0, k1 := keys[prev], keys[next]
	t := keyFraction(k0.TimeMs, k1.TimeMs, timeMs)
	return k0.Scale.Lerp(k1.Scale, t)
}

// surroundingKeys finds the keyframes bracketing timeMs (assuming keys
// are sorted by time). Returns equal indices when timeMs is at or past
// the last key, or before the first.
func surroundingKeys(n int, timeAt func(int) float32, timeMs float32) (prev, next int) {
	for i := 0; i < n; i++ {
		if timeAt(i) > timeMs {
			next = i
			return prev, next
		}
		prev = i
		next = i
	}
	return prev, next
}

func keyFraction(t0, t1, timeMs float32) float32 {
	if t1 == t0 {
		return 0
	}
	return (timeMs - t0) / (t1 - t0)
}

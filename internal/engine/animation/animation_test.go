package animation

import (
	"testing"

	"github.com/Faultbox/vantage/pkg/math"
)

func slideClip() *Clip {
	return &Clip{
		Name:       "slide",
		DurationMs: 1000,
		Tracks: []JointTrack{{
			PosKeys: []PosKey{
				{TimeMs: 0},
				{TimeMs: 1000, Position: math.Vec3{X: 10}},
			},
			RotKeys: []RotKey{
				{TimeMs: 0, Rotation: math.QuatIdentity()},
				{TimeMs: 1000, Rotation: math.QuatFromAxisAngle(math.Up(), math.Pi/2)},
			},
			ScaleKeys: []ScaleKey{
				{TimeMs: 0, Scale: math.Vec3{X: 1, Y: 1, Z: 1}},
				{TimeMs: 1000, Scale: math.Vec3{X: 2, Y: 2, Z: 2}},
			},
		}},
	}
}

func TestNewInstanceStartsPaused(t *testing.T) {
	in := NewInstance(slideClip())

	if in.Playing {
		t.Error("new instance should start paused")
	}
	if in.TimeMs != 0 {
		t.Errorf("new instance time = %v, want 0", in.TimeMs)
	}
	if in.Speed != 1 {
		t.Errorf("new instance speed = %v, want 1", in.Speed)
	}
}

func TestAdvanceSamplesMidway(t *testing.T) {
	in := NewInstance(slideClip())
	pose := NewPose(1)
	in.Play()

	in.Advance(500, pose)

	origin := pose.Joints[0].TransformPoint(math.Vec3{})
	if !origin.ApproxEqual(math.Vec3{X: 5}, 0.01) {
		t.Errorf("joint origin at t=500 = %v, want (5,0,0)", origin)
	}
}

func TestAdvancePausedLeavesTime(t *testing.T) {
	in := NewInstance(slideClip())
	pose := NewPose(1)

	in.Advance(500, pose)
	if in.TimeMs != 0 {
		t.Errorf("paused instance advanced to %v", in.TimeMs)
	}
}

func TestLoopNoneClampsAndStops(t *testing.T) {
	in := NewInstance(slideClip())
	in.SetLoopMode(LoopNone)
	pose := NewPose(1)
	in.Play()

	in.Advance(1500, pose)

	if in.TimeMs != 1000 {
		t.Errorf("time = %v, want clamped to 1000", in.TimeMs)
	}
	if in.Playing {
		t.Error("LoopNone should stop playback at the end")
	}
}

func TestLoopRepeatWraps(t *testing.T) {
	in := NewInstance(slideClip())
	pose := NewPose(1)
	in.Play()

	in.Advance(1250, pose)

	if in.TimeMs != 250 {
		t.Errorf("time = %v, want wrapped to 250", in.TimeMs)
	}
	if !in.Playing {
		t.Error("LoopRepeat should keep playing")
	}
}

func TestLoopPingPongReverses(t *testing.T) {
	in := NewInstance(slideClip())
	in.SetLoopMode(LoopPingPong)
	pose := NewPose(1)
	in.Play()

	in.Advance(1100, pose)
	if in.TimeMs != 1000 {
		t.Errorf("time = %v, want clamped to 1000 at the turn", in.TimeMs)
	}

	in.Advance(300, pose)
	if in.TimeMs != 700 {
		t.Errorf("time = %v, want 700 moving backward", in.TimeMs)
	}
}

func TestSpeedScalesAdvance(t *testing.T) {
	in := NewInstance(slideClip())
	in.Speed = 2
	pose := NewPose(1)
	in.Play()

	in.Advance(250, pose)
	if in.TimeMs != 500 {
		t.Errorf("time = %v, want 500 at double speed", in.TimeMs)
	}
}

func TestStopRewinds(t *testing.T) {
	in := NewInstance(slideClip())
	pose := NewPose(1)
	in.Play()
	in.Advance(400, pose)

	in.Stop()

	if in.Playing {
		t.Error("stopped instance still playing")
	}
	if in.TimeMs != 0 {
		t.Errorf("stopped instance time = %v, want 0", in.TimeMs)
	}
}

func TestInterpolateKeysEdgeCases(t *testing.T) {
	keys := []PosKey{
		{TimeMs: 100, Position: math.Vec3{X: 1}},
		{TimeMs: 200, Position: math.Vec3{X: 3}},
	}

	// Before the first key
	if got := InterpolatePosKeys(keys, 0); !got.ApproxEqual(math.Vec3{X: 1}, 0.001) {
		t.Errorf("before first key = %v, want (1,0,0)", got)
	}
	// After the last key
	if got := InterpolatePosKeys(keys, 500); !got.ApproxEqual(math.Vec3{X: 3}, 0.001) {
		t.Errorf("after last key = %v, want (3,0,0)", got)
	}
	// Between keys
	if got := InterpolatePosKeys(keys, 150); !got.ApproxEqual(math.Vec3{X: 2}, 0.001) {
		t.Errorf("between keys = %v, want (2,0,0)", got)
	}
	// No keys
	if got := InterpolatePosKeys(nil, 100); got != (math.Vec3{}) {
		t.Errorf("no keys = %v, want zero", got)
	}
}

func TestInterpolateRotKeysSlerps(t *testing.T) {
	keys := []RotKey{
		{TimeMs: 0, Rotation: math.QuatIdentity()},
		{TimeMs: 100, Rotation: math.QuatFromAxisAngle(math.Up(), math.Pi / 2)},
	}

	q := InterpolateRotKeys(keys, 50)
	want := math.QuatFromAxisAngle(math.Up(), math.Pi/4)
	rotated := q.Rotate(math.Vec3{X: 1})
	wantV := want.Rotate(math.Vec3{X: 1})
	if !rotated.ApproxEqual(wantV, 0.001) {
		t.Errorf("slerp midpoint rotates to %v, want %v", rotated, wantV)
	}
}

func TestSampleSkipsMissingJoints(t *testing.T) {
	in := NewInstance(slideClip())
	pose := NewPose(0) // No joints allocated
	in.Play()

	// Must not panic with a pose smaller than the track count.
	in.Advance(100, pose)
}

package math

// Transform is a position/rotation/scale triple.
// Rotation is kept as a unit quaternion by every mutator that derives it
// from a matrix; direct field writes are expected to store normalized
// quaternions as well.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		Position: Vec3{},
		Rotation: QuatIdentity(),
		Scale:    Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Mat4 composes the transform into a matrix, applying scale, then
// rotation, then translation.
func (t Transform) Mat4() Mat4 {
	m := t.Rotation.ToMat4().Mul(ScaleVec3(t.Scale))
	return TranslateVec3(t.Position).Mul(m)
}

// TransformFromMat4 decomposes a matrix into position, rotation and
// scale. Scale is taken from the lengths of the basis columns
// (non-uniform scale is fine); the rotation is extracted from the
// scale-normalized upper 3x3 block. Shear and negative scale are not
// recovered.
func TransformFromMat4(m Mat4) Transform {
	sx := (Vec3{m[0], m[1], m[2]}).Length()
	sy := (Vec3{m[4], m[5], m[6]}).Length()
	sz := (Vec3{m[8], m[9], m[10]}).Length()

	rot := Identity()
	if sx != 0 && sy != 0 && sz != 0 {
		rot = Mat4{
			m[0] / sx, m[1] / sx, m[2] / sx, 0,
			m[4] / sy, m[5] / sy, m[6] / sy, 0,
			m[8] / sz, m[9] / sz, m[10] / sz, 0,
			0, 0, 0, 1,
		}
	}

	return Transform{
		Position: Vec3{m[12], m[13], m[14]},
		Rotation: QuatFromMat4(rot),
		Scale:    Vec3{sx, sy, sz},
	}
}

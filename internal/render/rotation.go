package render

import (
	"math"

	"github.com/san-kum/shapemorph/internal/shape"
	"gonum.org/v1/gonum/num/quat"
)

// Rotation is composed once per frame and applied to every vertex.
type Rotation interface {
	Apply(v shape.Vec3) shape.Vec3
}

type Identity struct{}

func (Identity) Apply(v shape.Vec3) shape.Vec3 { return v }

// Matrix3 is a row-major 3x3 rotation applied to column vectors.
type Matrix3 [3][3]float64

// EulerMatrix rolls about Z, then pitches about X, then yaws about Y.
func EulerMatrix(yaw, pitch, roll float64) Matrix3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	sr, cr := math.Sincos(roll)

	ry := Matrix3{{cy, 0, sy}, {0, 1, 0}, {-sy, 0, cy}}
	rx := Matrix3{{1, 0, 0}, {0, cp, -sp}, {0, sp, cp}}
	rz := Matrix3{{cr, -sr, 0}, {sr, cr, 0}, {0, 0, 1}}
	return ry.Mul(rx).Mul(rz)
}

func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

func (m Matrix3) Apply(v shape.Vec3) shape.Vec3 {
	return shape.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Quaternion rotates by q·p·q̄ for a unit q.
type Quaternion struct {
	q quat.Number
}

// EulerQuaternion uses the same axis order as EulerMatrix.
func EulerQuaternion(yaw, pitch, roll float64) Quaternion {
	qy := axisAngle(shape.Vec3{Y: 1}, yaw)
	qx := axisAngle(shape.Vec3{X: 1}, pitch)
	qz := axisAngle(shape.Vec3{Z: 1}, roll)
	return Quaternion{q: quat.Mul(quat.Mul(qy, qx), qz)}
}

// AxisAngle builds a rotation of angle radians about a non-zero axis.
func AxisAngle(axis shape.Vec3, angle float64) Quaternion {
	return Quaternion{q: axisAngle(axis, angle)}
}

func axisAngle(axis shape.Vec3, angle float64) quat.Number {
	l := axis.Length()
	if l == 0 {
		return quat.Number{Real: 1}
	}
	s, c := math.Sincos(angle / 2)
	s /= l
	return quat.Number{Real: c, Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

func (r Quaternion) Apply(v shape.Vec3) shape.Vec3 {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	out := quat.Mul(quat.Mul(r.q, p), quat.Conj(r.q))
	return shape.Vec3{X: out.Imag, Y: out.Jmag, Z: out.Kmag}
}

// Number exposes the underlying quaternion.
func (r Quaternion) Number() quat.Number { return r.q }

// Package render projects morphing point clouds into a pixel buffer.
//
// A frame applies one [Rotation] to every interpolated vertex, divides by a
// fixed depth constant minus the rotated depth, and writes the resulting
// pixel into a [FrameBuffer]. Points that land outside the buffer or whose
// divisor is not positive are dropped without error.
//
// Three rotation forms are available and agree with each other:
//
//   - [Matrix3] from [EulerMatrix]
//   - [Quaternion] from [EulerQuaternion]
//   - [RotationTable], a precomputed ring of either, keyed by frame step
package render

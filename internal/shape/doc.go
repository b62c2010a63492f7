// Package shape provides the vertex sets that the morph pipeline animates.
//
// The package defines the geometric primitives and the two parametric
// generators:
//
//   - [Vec3]: a point in model space
//   - [Color]: a normalized RGBA value
//   - [GenerateSphere], [GenerateTorus]: fixed angular-grid point clouds
//   - [MorphPair]: two index-matched shapes that can be interpolated
//
// # Index Correspondence
//
// Both generators walk the grid vertical-outer, horizontal-inner. Vertex i of
// a sphere and vertex i of a torus built with the same sample counts describe
// the same (i, j) grid cell, which is what makes interpolation meaningful.
// [NewMorphPair] is the only way to build a pair and rejects shapes whose
// counts differ.
package shape

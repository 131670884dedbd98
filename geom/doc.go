// Package geom holds the geometry primitives shared by every stage of the
// extractor: points and vectors in three dimensions (z = 0 for planar images),
// distances, midpoints, polyline length and projection helpers.
//
// Point and Vector are aliases of fauxgl.Vector, so the full fauxgl vector
// algebra (Add, Sub, MulScalar, Dot, Cross, Length, Distance) is available.
package geom

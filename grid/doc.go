// Package grid treats a 2-D or 3-D image lattice as a set of voxel indices.
// It supports:
//
//   - Bounds checks and row-major offsets for (x, y, z) indices
//   - Axis-ordered scans (one axis outermost, the others in increasing order)
//   - Lateral neighbor offsets used when following a ridge one step forward
//   - A compact per-voxel, per-axis flag volume (ridge and candidate marks)
//
// A planar image has Size[2] == 1 and reports Dim() == 2.
package grid

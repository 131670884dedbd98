// Package volume provides the image services the extractor consumes: sampling
// intensity and gradient at arbitrary points, querying whether a voxel lies in
// the image region, and reporting the grid size.
//
// The core packages depend only on the Sampler interfaces. Field is the
// in-memory implementation: an Image (float voxels, trilinear interpolation)
// paired with its Gradient (central differences on the scaled image, with a
// separable Gaussian pre-smoothing for 3-D stacks). LoadImage decodes planar
// images through imaging, and Synthesize renders synthetic filament images
// for tests and benchmarks.
package volume

// Package soax extracts curvilinear networks (actin fibers, microtubules)
// from 2-D and 3-D intensity images with stretching open active contours.
//
// Snakes are seeded on intensity ridges, evolved on the image gradient until
// they trace filament centerlines, cut where filaments meet, and relinked
// across junctions into continuous filaments.
//
// Packages:
//
//	geom/       points, vectors and polyline helpers
//	matrix/     dense and banded matrices with a reusable LU factorization
//	solver/     cached stiffness systems of open and closed snakes
//	grid/       voxel lattice and per-axis voxel flags
//	volume/     images, gradients and synthetic filament images
//	config/     parameter set, text and YAML parameter files
//	snake/      a single active contour and its evolution
//	candidate/  initial snakes from ridge detection
//	junction/   T-junction cutting, tip clustering and segment relinking
//	network/    topology graph of an extracted network
//	analysis/   ground-truth comparison, orientation, curvature, local SNR
//	snakefile/  snake file and JFilament formats
//	store/      per-frame result store for sequences
//	multisnake/ the extraction pipeline
//	cmd/soax/   command line front end
package soax

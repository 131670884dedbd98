// Package analysis measures extracted networks.
//
// It compares a result against ground-truth curves (mean vertex error and
// Hausdorff distance), reports orientation of filament pieces about a center
// (radial r/theta for planar data, polar/azimuthal angles for stacks),
// curvature with coarse graining, radial snaxel density and intensity
// profiles, and the local signal-to-noise ratio along every snake.
//
// All functions are read-only over their inputs. Angles are in degrees.
package analysis

// Package snake implements stretching open active contours (snakes).
//
// A Snake is an ordered list of snaxels, open (head = index 0, tail = last
// index) or closed. Evolution repeatedly solves the stiffness system held by a
// solver.Bank with the image gradient as external force, lets open tips
// stretch along their tangent in proportion to local contrast, resamples the
// curve to a fixed spacing and resolves overlap with already converged snakes
// by hooking tips onto them or splitting into subsnakes.
//
// Life cycle:
//
//	Initial -> Evolving -> Converged
//	                    -> NonViable (too short, too few snaxels, fully
//	                       overlapped, or split into subsnakes)
//
// A snake is owned by exactly one container at a time and is not safe for
// concurrent mutation. The Env it reads (parameters and image samplers) is
// shared read-only.
package snake

// Package junction reconstructs filament network topology from converged
// snakes.
//
// Stages
//
//   - CutAtTJunctions: a snake whose interior is touched by the tip of another
//     snake is cut there, so every junction is a meeting of tips.
//
//   - Initialize / Union: every open segment contributes two tips (head, tail)
//     to an arena addressed by integer handles. Tips closer than the grouping
//     distance whose directions do not fold back (deviation from a straight
//     continuation below the direction threshold) are merged with a
//     disjoint-set forest (path compression, union by rank).
//
//   - Configure: each cluster of two or more tips yields a junction at the
//     centroid of the tip positions. Inside a cluster, tips are paired with
//     their best straight continuation and every tip is snapped onto the
//     junction.
//
//   - LinkSegments: paired tips are followed with an explicit worklist,
//     concatenating segments (reversing them when needed) into new snakes.
//     Revisiting a segment closes the chain.
//
//   - UpdateJunctions: a junction survives only when at least two final
//     snakes pass through it.
//
// Complexity
//
//   - Union: O(T² α(T)) for T tips.
//   - LinkSegments: O(S + P) for S segments and P snaxels.
//   - CutAtTJunctions: O(S² · P) in the worst case.
//
// The Manager is not safe for concurrent use.
package junction

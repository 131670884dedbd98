// Package multisnake runs the full extraction pipeline over one image or a
// sequence of frames.
//
// A Multisnake owns the parameter set, the image field, the solver bank and
// the snake containers:
//
//	InitializeSnakes      ridge candidates -> initial snakes (shortest first)
//	DeformSnakes          pop from the back, evolve, keep viable snakes,
//	                      feed subsnakes back into the queue
//	CutSnakesAtTJunctions split converged snakes where others end on them
//	GroupSnakes           cluster tips, relink segments, re-evolve with fixed
//	                      tips and confirm junctions
//
// Extract runs the four stages in order. ProcessSequence repeats them for
// every frame and optionally checkpoints each frame into a store.Store.
//
// A Multisnake is not safe for concurrent use. WithWorkers only parallelizes
// the evolution stage internally.
package multisnake

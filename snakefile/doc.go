// Package snakefile reads and writes extracted filament networks.
//
// A snake file starts with header lines "key<TAB>value" (the source image
// and the parameter set), followed by one block per snake:
//
//	#1
//	0           0              10              40               0               97.25
//	0           1              11              40               0               98.01
//	[40, 40, 0]
//
// "#<open>" opens a snake (1 open, 0 closed); point lines carry the snake
// index, the point index, x, y, z and optionally the image intensity at the
// point; bracketed lines are junctions. Sequences wrap every frame in
// "$<frame>" and end with a lone "$".
//
// Headerless files of bare point lines (ground-truth curves) are accepted
// too: a change of snake index starts a new open curve.
//
// The JFilament variant (ReadJFilament, WriteJFilament) has its own header
// keys and writes "#" and "0" before every snake.
package snakefile

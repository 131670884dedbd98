package snakefile

import "errors"

var (
	// ErrSyntax reports a line that matches none of the line forms.
	ErrSyntax = errors.New("snakefile: syntax error")

	// ErrNoCurve reports a junction or point before any frame could hold it.
	ErrNoCurve = errors.New("snakefile: point outside a curve")
)

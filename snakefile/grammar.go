package snakefile

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Punct", Pattern: `[\[\],#$]`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

// line is any non-header line of a snake file.
type line struct {
	Marker   *marker   `  @@`
	Junction *junction `| @@`
	Point    *point    `| @@`
}

type marker struct {
	Kind string `@("#" | "$")`
	Arg  *int   `@Number?`
}

type junction struct {
	X float64 `"[" @Number ","`
	Y float64 `@Number ","`
	Z float64 `@Number "]"`
}

type point struct {
	Snake     int      `@Number`
	Index     int      `@Number`
	X         float64  `@Number`
	Y         float64  `@Number`
	Z         float64  `@Number`
	Intensity *float64 `@Number?`
}

var lineParser = participle.MustBuild[line](participle.Lexer(lineLexer))

// jfLine is a non-header line of a JFilament file: "#", "0" or a point.
type jfLine struct {
	Pound  bool      `  @"#"`
	Fields []float64 `| @Number+`
}

var jfParser = participle.MustBuild[jfLine](participle.Lexer(lineLexer))

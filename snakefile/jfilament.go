package snakefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
)

// jfKeys are the parameters JFilament understands, in its header order.
var jfKeys = []string{"gamma", "weight", "zresolution", "background", "alpha",
	"smoothing", "stretch", "spacing", "beta", "foreground"}

// WriteJFilament stores curves in the JFilament format. JFilament curves are
// always open.
func WriteJFilament(w io.Writer, p config.Parameters, curves []Curve) error {
	bw := bufio.NewWriter(w)
	for _, k := range jfKeys {
		v := "1"
		if k != "zresolution" {
			var err error
			if v, err = p.Value(k); err != nil {
				return err
			}
		}
		fmt.Fprintf(bw, "%s\t%s\n", k, v)
	}
	for _, c := range curves {
		fmt.Fprint(bw, "#\n0\n")
		for j, pt := range c.Points {
			fmt.Fprintf(bw, "0\t%d\t%g\t%g\t%g\n", j, pt.X, pt.Y, pt.Z)
		}
	}

	return errors.Wrap(bw.Flush(), "write jfilament file")
}

// ReadJFilament parses a JFilament snake file. Header lines are returned
// as-is; the "0" line after each "#" is skipped.
func ReadJFilament(r io.Reader) ([]Curve, []Header, error) {
	var curves []Curve
	var headers []Header
	var cur *Curve
	pound := false
	flush := func() {
		if cur != nil && len(cur.Points) > 1 {
			curves = append(curves, *cur)
		}
		cur = nil
	}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if unicode.IsLetter(rune(text[0])) {
			k, v, _ := strings.Cut(text, "\t")
			headers = append(headers, Header{Key: strings.TrimSpace(k), Value: strings.TrimSpace(v)})
			continue
		}
		ln, err := jfParser.ParseString("", text)
		if err != nil {
			return nil, nil, errors.Wrapf(ErrSyntax, "line %d: %v", n, err)
		}
		switch {
		case ln.Pound:
			flush()
			cur = &Curve{Open: true}
			pound = true
		case pound && len(ln.Fields) == 1:
			pound = false
		case len(ln.Fields) >= 5:
			if cur == nil {
				return nil, nil, errors.Wrapf(ErrNoCurve, "line %d", n)
			}
			pound = false
			cur.Points = append(cur.Points, geom.P(ln.Fields[2], ln.Fields[3], ln.Fields[4]))
		default:
			return nil, nil, errors.Wrapf(ErrSyntax, "line %d", n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read jfilament file")
	}
	flush()

	return curves, headers, nil
}
